package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/skyrunner/internal/core"
)

func openTestStore(t *testing.T) *Store {
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

func TestStoreReopenKeepsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveRun("skyrunner", core.RunSummary{Score: 12}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	store.Close()

	// Migrations must be idempotent
	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("skyrunner")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 12 {
		t.Errorf("Expected high score 12 after reopen, got %d", high)
	}
}

func TestStoreSaveAndRetrieveRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []core.RunSummary{
		{Score: 10, PeakSpeed: 100, BoardsCleared: 7, Duration: 10.4},
		{Score: 31, PeakSpeed: 142, BoardsCleared: 25, Duration: 31.9},
		{Score: 10, PeakSpeed: 101, BoardsCleared: 7, Duration: 10.8},
	}
	for _, r := range runs {
		if _, err := store.SaveRun("skyrunner", r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	if _, err := store.SaveRun("other", core.RunSummary{Score: 99}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	top, err := store.TopRuns("skyrunner", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}
	if top[0].Score != 31 || top[0].BoardsCleared != 25 || top[0].PeakSpeed != 142 {
		t.Errorf("Unexpected best run: %+v", top[0])
	}
	// Equal scores rank the longer survival first
	if top[1].Duration != 10.8 || top[2].Duration != 10.4 {
		t.Errorf("Tie not broken by duration: %v then %v", top[1].Duration, top[2].Duration)
	}
	if top[0].CreatedAt.IsZero() {
		t.Error("Expected created_at to be populated")
	}

	limited, err := store.TopRuns("skyrunner", 1)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("Expected 1 run with limit, got %d", len(limited))
	}
}

func TestStoreHighScoreEmpty(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("skyrunner")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty table, got %d", high)
	}
}

func TestStoreTotals(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Totals("skyrunner")
	if err != nil {
		t.Fatalf("Totals() failed: %v", err)
	}
	if empty != (Totals{}) {
		t.Errorf("Expected zero totals, got %+v", empty)
	}

	store.SaveRun("skyrunner", core.RunSummary{Score: 5, PeakSpeed: 90, BoardsCleared: 3, Duration: 5.5})
	store.SaveRun("skyrunner", core.RunSummary{Score: 8, PeakSpeed: 96, BoardsCleared: 5, Duration: 8.25})

	got, err := store.Totals("skyrunner")
	if err != nil {
		t.Fatalf("Totals() failed: %v", err)
	}
	want := Totals{Runs: 2, BestScore: 8, BestSpeed: 96, BoardsCleared: 8, TimeAlive: 13.75}
	if got != want {
		t.Errorf("Totals() = %+v, expected %+v", got, want)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun("skyrunner", core.RunSummary{Score: 4})
	store.SaveRun("other", core.RunSummary{Score: 6})

	if err := store.ClearRuns("skyrunner"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, err := store.TopRuns("skyrunner", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("Expected no runs after clear, got %d", len(runs))
	}

	high, _ := store.HighScore("other")
	if high != 6 {
		t.Errorf("Clearing one game should keep others, got high %d", high)
	}
}
