package storage

import (
	"os"
	"path/filepath"
	"testing"
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
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
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
	if _, err := store.SaveRun(Run{GameID: "walk", Score: 42}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("walk")
	if err != nil || high != 42 {
		t.Errorf("HighScore() = %d, %v; want 42", high, err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{GameID: "walk", Score: 100, Distance: 1000, Seed: 7},
		{GameID: "walk", Score: 50, Distance: 500, Seed: 8},
		{GameID: "walk", Score: 200, Distance: 2000, Seed: 9},
		{GameID: "other", Score: 500, Distance: 5000},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns("walk", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}

	// Should be sorted descending
	wantScores := []int{200, 100, 50}
	for i, want := range wantScores {
		if top[i].Score != want {
			t.Errorf("run %d score = %d, want %d", i, top[i].Score, want)
		}
	}
	if top[0].Distance != 2000 || top[0].Seed != 9 {
		t.Errorf("best run lost its details: %+v", top[0])
	}
	if top[0].CreatedAt.IsZero() {
		t.Error("CreatedAt was not parsed")
	}

	other, err := store.TopRuns("other", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(other) != 1 {
		t.Errorf("Expected 1 run for other game, got %d", len(other))
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(Run{GameID: "walk", Score: (i + 1) * 100})
	}

	top, err := store.TopRuns("walk", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(top))
	}
	if top[0].Score != 500 || top[1].Score != 400 || top[2].Score != 300 {
		t.Errorf("Runs not in expected order: %v", top)
	}

	// Non-positive limit falls back to 10.
	all, err := store.TopRuns("walk", 0)
	if err != nil || len(all) != 5 {
		t.Errorf("TopRuns(0) = %d runs, %v", len(all), err)
	}
}

func TestStoreTiesKeepInsertOrder(t *testing.T) {
	store := openTestStore(t)

	first, _ := store.SaveRun(Run{GameID: "walk", Score: 10, Seed: 1})
	second, _ := store.SaveRun(Run{GameID: "walk", Score: 10, Seed: 2})

	top, err := store.TopRuns("walk", 2)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if top[0].ID != first || top[1].ID != second {
		t.Errorf("tie order = %d, %d; want %d, %d", top[0].ID, top[1].ID, first, second)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("walk")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveRun(Run{GameID: "walk", Score: 100})
	store.SaveRun(Run{GameID: "walk", Score: 300})
	store.SaveRun(Run{GameID: "walk", Score: 200})

	high, err = store.HighScore("walk")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{GameID: "walk", Score: 100})
	store.SaveRun(Run{GameID: "walk", Score: 200})
	store.SaveRun(Run{GameID: "other", Score: 300})

	if err := store.ClearRuns("walk"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	walkRuns, _ := store.AllRuns("walk")
	if len(walkRuns) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(walkRuns))
	}

	otherRuns, _ := store.AllRuns("other")
	if len(otherRuns) != 1 {
		t.Errorf("Other game's runs should not be affected")
	}
}

func TestStoreAllRuns(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveRun(Run{GameID: "walk", Score: i * 10})
	}

	runs, err := store.AllRuns("walk")
	if err != nil {
		t.Fatalf("AllRuns() failed: %v", err)
	}
	if len(runs) != 20 {
		t.Errorf("Expected 20 runs, got %d", len(runs))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("walk")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.RunsCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveRun(Run{GameID: "walk", Score: 10, Distance: 100})
	store.SaveRun(Run{GameID: "walk", Score: 30, Distance: 300})

	stats, err := store.Stats("walk")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.RunsCount != 2 || stats.HighScore != 30 || stats.AvgScore != 20 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.TotalDistance != 400 || stats.LongestRun != 300 {
		t.Errorf("distance stats = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not set")
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
