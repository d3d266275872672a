package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bear-adventure/internal/stage"
)

var stagesCmd = &cobra.Command{
	Use:   "stages [dir]",
	Short: "List and validate stages",
	Long: `Load every stage file in dir, or the built-in stages when no dir is
given, and report authoring mistakes: unknown tiles, stray stair heights,
a missing castle and enemies outside the stage.

With --check the command exits non-zero when any stage is invalid.

Examples:
  bear stages
  bear stages --check ./stages`,
	Args: cobra.MaximumNArgs(1),
	Run:  runStages,
}

var flagCheck bool

func init() {
	stagesCmd.Flags().BoolVar(&flagCheck, "check", false, "Exit non-zero when a stage is invalid")
}

func runStages(_ *cobra.Command, args []string) {
	var (
		stages []*stage.Stage
		err    error
	)
	if len(args) == 1 {
		stages, err = stage.LoadDir(args[0])
	} else {
		stages, err = stage.LoadEmbedded()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(stages) == 0 {
		fmt.Println("No stages found.")
		return
	}

	failed := 0
	for i, s := range stages {
		status := "ok"
		verr := stage.Validate(s)
		if verr != nil {
			status = "INVALID"
			failed++
		}
		fmt.Printf("  %2d  %-20s  %3d tiles  %2d enemies  %s\n", i+1, s.Name, len(s.Tiles), len(s.Enemies), status)
		if verr != nil {
			fmt.Printf("      %v\n", verr)
		}
	}

	if failed > 0 && flagCheck {
		fmt.Fprintf(os.Stderr, "\n%d of %d stages invalid\n", failed, len(stages))
		os.Exit(1)
	}
}
