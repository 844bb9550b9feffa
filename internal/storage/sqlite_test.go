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
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveResult(Result{GameID: "toppa", Score: 42}); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("toppa")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 42 {
		t.Errorf("HighScore after reopen = %d, want 42", high)
	}
}

func TestStoreTopResults(t *testing.T) {
	store := openTestStore(t)

	saves := []Result{
		{GameID: "toppa", Score: 100, Merges: 10, HighestTile: 3},
		{GameID: "toppa", Score: 50, Merges: 8, HighestTile: 2},
		{GameID: "toppa", Score: 200, Merges: 15, HighestTile: 5},
		{GameID: "toppa", Score: 100, Merges: 12, HighestTile: 4},
		{GameID: "other", Score: 500},
	}
	for _, r := range saves {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	results, err := store.TopResults("toppa", 10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(results) != 4 {
		t.Fatalf("Expected 4 results, got %d", len(results))
	}

	want := []struct{ score, merges int }{{200, 15}, {100, 12}, {100, 10}, {50, 8}}
	for i, w := range want {
		if results[i].Score != w.score || results[i].Merges != w.merges {
			t.Errorf("results[%d] = %d/%d, want %d/%d", i, results[i].Score, results[i].Merges, w.score, w.merges)
		}
	}
	if results[0].HighestTile != 5 {
		t.Errorf("HighestTile = %d, want 5", results[0].HighestTile)
	}

	limited, err := store.TopResults("toppa", 2)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("Expected 2 results with limit, got %d", len(limited))
	}
}

func TestStoreRecentResults(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{10, 30, 20} {
		if _, err := store.SaveResult(Result{GameID: "toppa", Score: score}); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	recent, err := store.RecentResults("toppa", 0)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(recent) != 3 || recent[0].Score != 20 || recent[2].Score != 10 {
		t.Errorf("unexpected recent order: %+v", recent)
	}
}

func TestStoreHighScoreAndStats(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("toppa")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty log, got %d", high)
	}

	st, err := store.Stats("toppa")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st != (Stats{}) {
		t.Errorf("Expected zero stats, got %+v", st)
	}

	store.SaveResult(Result{GameID: "toppa", Score: 300, Merges: 20, HighestTile: 4})
	store.SaveResult(Result{GameID: "toppa", Score: 900, Merges: 31, HighestTile: 6})

	st, err = store.Stats("toppa")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	want := Stats{Games: 2, BestScore: 900, TotalMerges: 51, BestTile: 6}
	if st != want {
		t.Errorf("Stats = %+v, want %+v", st, want)
	}
}

func TestStoreClearResults(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(Result{GameID: "toppa", Score: 100})
	store.SaveResult(Result{GameID: "other", Score: 100})

	if err := store.ClearResults("toppa"); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}

	results, _ := store.TopResults("toppa", 10)
	if len(results) != 0 {
		t.Errorf("Expected 0 results after clear, got %d", len(results))
	}
	other, _ := store.TopResults("other", 10)
	if len(other) != 1 {
		t.Errorf("Clearing one game should not touch another, got %d", len(other))
	}
}
