package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bear-adventure/internal/cartridge"
	"github.com/vovakirdan/bear-adventure/internal/platform/tui"
	"github.com/vovakirdan/bear-adventure/internal/storage"
)

var (
	flagRecordsLimit int
	flagRecordsTable bool
	flagRecordsMine  bool
	flagRecordsBest  bool
	flagRecordsClear bool
)

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Show the best runs",
	Long: `Display the best Bear Adventure runs. Cleared runs rank first, then
the furthest stage reached, then the fastest time.

Examples:
  bear records
  bear records --limit 20
  bear records --mine --player ann
  bear records --best
  bear records --table
  bear records --clear`,
	Args: cobra.NoArgs,
	Run:  runRecords,
}

func init() {
	recordsCmd.Flags().IntVar(&flagRecordsLimit, "limit", 10, "Number of runs to show")
	recordsCmd.Flags().BoolVar(&flagRecordsTable, "table", false, "Open the interactive table")
	recordsCmd.Flags().BoolVar(&flagRecordsMine, "mine", false, "Only show the latest runs of --player")
	recordsCmd.Flags().BoolVar(&flagRecordsBest, "best", false, "Only show the best run")
	recordsCmd.Flags().BoolVar(&flagRecordsClear, "clear", false, "Delete every recorded run")
}

func runRecords(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagRecordsClear:
		if err := store.ClearRuns(cartridge.ID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All runs deleted.")
		return
	case flagRecordsBest:
		if err := writeBest(os.Stdout, store); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if flagRecordsTable {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if _, err := tui.RunRecords(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var runs []storage.Run
	if flagRecordsMine {
		runs, err = store.PlayerRuns(cartridge.ID, flagPlayer, flagRecordsLimit)
	} else {
		runs, err = store.TopRuns(cartridge.ID, flagRecordsLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Best Runs - Bear Adventure")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'bear play' to set the first record!")
		return
	}

	fmt.Printf("  %-4s  %-12s  %-5s  %-9s  %-9s  %s\n", "Rank", "Player", "Stage", "Result", "Time", "Date")
	fmt.Printf("  %-4s  %-12s  %-5s  %-9s  %-9s  %s\n", "----", "------", "-----", "------", "----", "----")
	for _, row := range tui.RunRows(runs) {
		fmt.Printf("  %-4s  %-12s  %-5s  %-9s  %-9s  %s\n", row[0], row[1], row[2], row[3], row[4], row[5])
	}

	stats, err := store.GameStats(cartridge.ID)
	if err != nil {
		return
	}
	fmt.Println()
	fmt.Printf("Runs: %d  Clears: %d  Best stage: %d", stats.Runs, stats.Clears, stats.BestStage)
	if stats.FastestWin > 0 {
		fmt.Printf("  Fastest clear: %s", tui.FormatFrames(stats.FastestWin))
	}
	fmt.Println()
}

// writeBest prints the single best run to w.
func writeBest(w io.Writer, store *storage.Store) error {
	best, err := store.BestRun(cartridge.ID)
	if err != nil {
		return err
	}
	if best == nil {
		fmt.Fprintln(w, "No runs recorded yet.")
		return nil
	}

	result := "reached stage"
	if best.Cleared {
		result = "cleared at stage"
	}
	player := best.Player
	if player == "" {
		player = "-"
	}
	fmt.Fprintf(w, "Best run: %s %s %d in %s (%s)\n",
		player, result, best.Stage, tui.FormatFrames(best.Frames), best.CreatedAt.Format("2006-01-02 15:04"))
	return nil
}
