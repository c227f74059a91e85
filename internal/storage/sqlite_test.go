package storage

import (
	"os"
	"path/filepath"
	"testing"
)

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

func TestStoreSaveAndRetrieve(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Results for 2-player duels
	if _, err := store.SaveResult(2, "Alfa", 0.5, 1, 2); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	if _, err := store.SaveResult(2, "Bravo", 0.25, 1, 4); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	if _, err := store.SaveResult(2, "Charlie", 1.0, 1, 1); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}

	// A 4-player match goes to a separate board
	if _, err := store.SaveResult(4, "Delta", 0.75, 3, 4); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}

	results, err := store.TopResults(2, 10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}

	if len(results) != 3 {
		t.Errorf("Expected 3 results, got %d", len(results))
	}

	// Should be sorted by score descending
	if results[0].Score != 1.0 || results[0].Name != "Charlie" {
		t.Errorf("Expected Charlie at 1.0 on top, got %s at %.2f", results[0].Name, results[0].Score)
	}
	if results[1].Score != 0.5 {
		t.Errorf("Expected second score 0.5, got %.2f", results[1].Score)
	}
	if results[2].Score != 0.25 {
		t.Errorf("Expected third score 0.25, got %.2f", results[2].Score)
	}

	fourPlayer, err := store.TopResults(4, 10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(fourPlayer) != 1 {
		t.Errorf("Expected 1 four-player result, got %d", len(fourPlayer))
	}
}

func TestStoreTopResultsLimitAndTies(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 5; i++ {
		store.SaveResult(3, "Echo", float64(i+1)/10, i+1, 10)
	}
	// Same score as the best, more kills: wins the tie
	store.SaveResult(3, "Foxtrot", 0.5, 8, 16)

	results, err := store.TopResults(3, 3)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}

	if len(results) != 3 {
		t.Errorf("Expected 3 results with limit, got %d", len(results))
	}
	if results[0].Name != "Foxtrot" {
		t.Errorf("Kills should break score ties, got %s on top", results[0].Name)
	}
}

func TestStoreBestScore(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No results yet
	best, err := store.BestScore(2)
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected best score 0 for empty board, got %.2f", best)
	}

	store.SaveResult(2, "Alfa", 0.2, 1, 5)
	store.SaveResult(2, "Bravo", 0.6, 3, 5)
	store.SaveResult(2, "Charlie", 0.4, 2, 5)

	best, err = store.BestScore(2)
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0.6 {
		t.Errorf("Expected best score 0.6, got %.2f", best)
	}
}

func TestStoreClearResults(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveResult(2, "Alfa", 0.5, 1, 2)
	store.SaveResult(2, "Bravo", 0.3, 1, 3)
	store.SaveResult(5, "Charlie", 0.8, 4, 5)

	// Clear only the 2-player board
	if err := store.ClearResults(2); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}

	duels, _ := store.TopResults(2, 10)
	if len(duels) != 0 {
		t.Errorf("Expected 0 duel results after clear, got %d", len(duels))
	}

	fives, _ := store.TopResults(5, 10)
	if len(fives) != 1 {
		t.Errorf("5-player results should not be affected by clearing duels")
	}
}

func TestStorePlayerStats(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveResult(2, "Alfa", 0.5, 1, 2)
	store.SaveResult(4, "Alfa", 0.75, 3, 4)
	store.SaveResult(2, "Bravo", 1.0, 1, 1)

	stats, err := store.GetPlayerStats("Alfa")
	if err != nil {
		t.Fatalf("GetPlayerStats() failed: %v", err)
	}
	if stats.Wins != 2 {
		t.Errorf("Expected 2 wins, got %d", stats.Wins)
	}
	if stats.BestScore != 0.75 {
		t.Errorf("Expected best score 0.75, got %.2f", stats.BestScore)
	}
	if stats.TotalKills != 4 || stats.TotalShots != 6 {
		t.Errorf("Expected 4 kills / 6 shots, got %d / %d", stats.TotalKills, stats.TotalShots)
	}

	sizes, err := store.PlayedSizes()
	if err != nil {
		t.Fatalf("PlayedSizes() failed: %v", err)
	}
	if len(sizes) != 2 || sizes[0] != 2 || sizes[1] != 4 {
		t.Errorf("Expected sizes [2 4], got %v", sizes)
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

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
