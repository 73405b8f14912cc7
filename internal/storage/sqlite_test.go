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
	dbPath := filepath.Join(tmpDir, "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Parent directories and the file itself must exist
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	matches := []MatchResult{
		{Mode: "cpu", ScoreLeft: 10, ScoreRight: 4, Winner: "left", Multiplier: 1.0, DurationSecs: 180},
		{Mode: "cpu", ScoreLeft: 7, ScoreRight: 10, Winner: "right", Multiplier: 1.5, DurationSecs: 240},
		{Mode: "duel", ScoreLeft: 10, ScoreRight: 8, Winner: "left", Multiplier: 2.0, DurationSecs: 300},
	}
	for _, m := range matches {
		if _, err := store.SaveMatch(m); err != nil {
			t.Fatalf("SaveMatch(%+v) failed: %v", m, err)
		}
	}

	recent, err := store.RecentMatches(10)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(recent))
	}

	// Newest first: the duel match was inserted last.
	if recent[0].Mode != "duel" || recent[0].ScoreLeft != 10 || recent[0].ScoreRight != 8 {
		t.Errorf("newest match = %+v, expected the duel 10:8", recent[0])
	}
	if recent[0].Multiplier != 2.0 {
		t.Errorf("multiplier = %v, expected 2.0", recent[0].Multiplier)
	}
	if recent[2].Winner != "left" || recent[2].Mode != "cpu" {
		t.Errorf("oldest match = %+v, expected the first cpu match", recent[2])
	}
}

func TestRecentMatchesLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 30; i++ {
		if _, err := store.SaveMatch(MatchResult{Mode: "cpu", ScoreLeft: 10, ScoreRight: i % 10, Winner: "left", Multiplier: 1.0}); err != nil {
			t.Fatal(err)
		}
	}

	recent, err := store.RecentMatches(5)
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 5 {
		t.Errorf("expected 5 matches with limit 5, got %d", len(recent))
	}

	// A non-positive limit falls back to the default of 20.
	recent, err = store.RecentMatches(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 20 {
		t.Errorf("expected 20 matches with limit 0, got %d", len(recent))
	}
}

func TestModeStats(t *testing.T) {
	store := openTestStore(t)

	seed := []MatchResult{
		{Mode: "cpu", ScoreLeft: 10, ScoreRight: 2, Winner: "left", Multiplier: 1.0},
		{Mode: "cpu", ScoreLeft: 3, ScoreRight: 10, Winner: "right", Multiplier: 1.0},
		{Mode: "cpu", ScoreLeft: 10, ScoreRight: 9, Winner: "left", Multiplier: 1.0},
		{Mode: "duel", ScoreLeft: 10, ScoreRight: 0, Winner: "left", Multiplier: 1.0},
	}
	for _, m := range seed {
		if _, err := store.SaveMatch(m); err != nil {
			t.Fatal(err)
		}
	}

	stats, err := store.ModeStats("cpu")
	if err != nil {
		t.Fatalf("ModeStats() failed: %v", err)
	}
	if stats.Matches != 3 {
		t.Errorf("cpu matches = %d, expected 3", stats.Matches)
	}
	if stats.LeftWins != 2 || stats.RightWins != 1 {
		t.Errorf("cpu wins = %d:%d, expected 2:1", stats.LeftWins, stats.RightWins)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("last played should be set")
	}

	empty, err := store.ModeStats("unknown")
	if err != nil {
		t.Fatalf("ModeStats on empty mode failed: %v", err)
	}
	if empty.Matches != 0 {
		t.Errorf("unknown mode matches = %d, expected 0", empty.Matches)
	}
}

func TestClearMatches(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveMatch(MatchResult{Mode: "cpu", ScoreLeft: 10, ScoreRight: 1, Winner: "left", Multiplier: 1.0}); err != nil {
		t.Fatal(err)
	}
	if err := store.ClearMatches(); err != nil {
		t.Fatalf("ClearMatches() failed: %v", err)
	}

	recent, err := store.RecentMatches(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 0 {
		t.Errorf("expected no matches after clear, got %d", len(recent))
	}
}
