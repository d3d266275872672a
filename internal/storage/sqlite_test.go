package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTest(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestSaveRunAssignsID(t *testing.T) {
	store := openTest(t)

	id, err := store.SaveRun(Run{GameID: "bear", Player: "ann", Stage: 1, Frames: 300, HP: 0})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if len(id) != 36 {
		t.Errorf("expected a UUID, got %q", id)
	}

	runs, err := store.TopRuns("bear", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	got := runs[0]
	if got.ID != id || got.Player != "ann" || got.Stage != 1 || got.Frames != 300 || got.Cleared {
		t.Errorf("unexpected run %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt was not set")
	}

	if _, err := store.SaveRun(Run{ID: id, GameID: "bear"}); err == nil {
		t.Error("expected duplicate id to fail")
	}
	if _, err := store.SaveRun(Run{Stage: 1}); err == nil {
		t.Error("expected empty game id to fail")
	}
}

func TestTopRunsOrder(t *testing.T) {
	store := openTest(t)

	runs := []Run{
		{ID: "stage1-slow", GameID: "bear", Stage: 1, Frames: 900},
		{ID: "cleared-slow", GameID: "bear", Stage: 2, Cleared: true, Frames: 5000},
		{ID: "stage2", GameID: "bear", Stage: 2, Frames: 2000},
		{ID: "cleared-fast", GameID: "bear", Stage: 2, Cleared: true, Frames: 4000},
		{ID: "stage1-fast", GameID: "bear", Stage: 1, Frames: 400},
		{ID: "other", GameID: "other", Stage: 9, Cleared: true, Frames: 1},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun(%s) failed: %v", r.ID, err)
		}
	}

	got, err := store.TopRuns("bear", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	want := []string{"cleared-fast", "cleared-slow", "stage2", "stage1-fast", "stage1-slow"}
	if len(got) != len(want) {
		t.Fatalf("expected %d runs, got %d", len(want), len(got))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("rank %d: got %s, expected %s", i+1, got[i].ID, id)
		}
	}

	limited, err := store.TopRuns("bear", 2)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("limit 2 returned %d runs", len(limited))
	}

	best, err := store.BestRun("bear")
	if err != nil {
		t.Fatalf("BestRun() failed: %v", err)
	}
	if best == nil || best.ID != "cleared-fast" {
		t.Errorf("BestRun() = %+v", best)
	}
}

func TestBestRunEmpty(t *testing.T) {
	store := openTest(t)

	best, err := store.BestRun("bear")
	if err != nil {
		t.Fatalf("BestRun() failed: %v", err)
	}
	if best != nil {
		t.Errorf("expected nil, got %+v", best)
	}
}

func TestPlayerRunsAndClear(t *testing.T) {
	store := openTest(t)

	for _, r := range []Run{
		{ID: "a1", GameID: "bear", Player: "ann", Stage: 1, Frames: 10},
		{ID: "b1", GameID: "bear", Player: "bob", Stage: 2, Frames: 20},
		{ID: "a2", GameID: "bear", Player: "ann", Stage: 2, Frames: 30},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	ann, err := store.PlayerRuns("bear", "ann", 10)
	if err != nil {
		t.Fatalf("PlayerRuns() failed: %v", err)
	}
	if len(ann) != 2 || ann[0].ID != "a2" || ann[1].ID != "a1" {
		t.Errorf("PlayerRuns(ann) = %+v", ann)
	}

	if err := store.ClearRuns("bear"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	left, err := store.TopRuns("bear", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(left) != 0 {
		t.Errorf("expected no runs after clear, got %d", len(left))
	}
}

func TestGameStats(t *testing.T) {
	store := openTest(t)

	stats, err := store.GameStats("bear")
	if err != nil {
		t.Fatalf("GameStats() failed: %v", err)
	}
	if stats.Runs != 0 || stats.FastestWin != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", stats)
	}

	for _, r := range []Run{
		{GameID: "bear", Stage: 1, Frames: 100},
		{GameID: "bear", Stage: 2, Cleared: true, Frames: 800},
		{GameID: "bear", Stage: 2, Cleared: true, Frames: 600},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	stats, err = store.GameStats("bear")
	if err != nil {
		t.Fatalf("GameStats() failed: %v", err)
	}
	tests := []struct {
		name      string
		got, want int
	}{
		{"runs", stats.Runs, 3},
		{"clears", stats.Clears, 2},
		{"best stage", stats.BestStage, 2},
		{"fastest win", stats.FastestWin, 600},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %d, expected %d", tt.name, tt.got, tt.want)
		}
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed was not set")
	}
}
