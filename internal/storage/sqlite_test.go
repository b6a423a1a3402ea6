package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tank-battleground/internal/multiplayer"
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

	// Save some scores
	_, err = store.SaveScore("tanks", 100)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("tanks", 50)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("tanks", 200)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Different game
	_, err = store.SaveScore("tanks_survival", 500)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Retrieve top scores for campaign
	scores, err := store.TopScores("tanks", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 {
		t.Errorf("Expected highest score to be 200, got %d", scores[0].Score)
	}
	if scores[1].Score != 100 {
		t.Errorf("Expected second score to be 100, got %d", scores[1].Score)
	}
	if scores[2].Score != 50 {
		t.Errorf("Expected third score to be 50, got %d", scores[2].Score)
	}

	// Retrieve top scores for survival
	survivalScores, err := store.TopScores("tanks_survival", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(survivalScores) != 1 {
		t.Errorf("Expected 1 survival score, got %d", len(survivalScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save 5 scores
	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100)
	}

	// Request only top 3
	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No scores yet
	high, err := store.HighScore("tanks")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	// Add scores
	store.SaveScore("tanks", 100)
	store.SaveScore("tanks", 300)
	store.SaveScore("tanks", 200)

	high, err = store.HighScore("tanks")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore("tanks", 100)
	store.SaveScore("tanks", 200)
	store.SaveScore("tanks_survival", 300)

	// Clear only campaign scores
	err = store.ClearScores("tanks")
	if err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	// Campaign should be empty
	campaignScores, _ := store.TopScores("tanks", 10)
	if len(campaignScores) != 0 {
		t.Errorf("Expected 0 campaign scores after clear, got %d", len(campaignScores))
	}

	// Survival should still have scores
	survivalScores, _ := store.TopScores("tanks_survival", 10)
	if len(survivalScores) != 1 {
		t.Errorf("Survival scores should not be affected by clearing campaign")
	}
}

func TestStoreAllScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Add many scores
	for i := 0; i < 20; i++ {
		store.SaveScore("test", i*10)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	// Test that ~ expansion works (we won't actually write to home)
	// Just verify the function doesn't crash
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

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreSplitScore(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveSplitScore("tanks", 120, 30); err != nil {
		t.Fatalf("SaveSplitScore() failed: %v", err)
	}

	scores, err := store.TopScores("tanks", 1)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("Expected 1 score, got %d", len(scores))
	}
	e := scores[0]
	if e.Score != 150 || e.Score1 != 120 || e.Score2 != 30 {
		t.Errorf("entry = %d (%d+%d), expected 150 (120+30)", e.Score, e.Score1, e.Score2)
	}
}

func TestStoreSaveMatchResult(t *testing.T) {
	store := openTestStore(t)

	match := multiplayer.NewMatch("tanks", multiplayer.MatchModeCampaign, multiplayer.NewSessionID())
	data := match.Result(90, 40, 0, multiplayer.MatchEndReasonDiamondLost)
	data.DurationSecs = 75

	if err := store.SaveMatchResult(data); err != nil {
		t.Fatalf("SaveMatchResult() failed: %v", err)
	}

	got, err := store.MatchByID(data.MatchID)
	if err != nil {
		t.Fatalf("MatchByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("MatchByID() returned nil for a saved match")
	}
	if got.Mode != "Campaign" || got.EndReason != "diamond_lost" {
		t.Errorf("Mode/EndReason = %q/%q, expected Campaign/diamond_lost", got.Mode, got.EndReason)
	}
	if got.Total() != 130 || got.DurationSecs != 75 {
		t.Errorf("Total/Duration = %d/%d, expected 130/75", got.Total(), got.DurationSecs)
	}
	if got.SessionID != data.SessionID {
		t.Errorf("SessionID = %q, expected %q", got.SessionID, data.SessionID)
	}

	// The round also counts toward high scores
	high, err := store.HighScore("tanks")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 130 {
		t.Errorf("HighScore() = %d, expected 130", high)
	}

	// Match ids are unique
	if err := store.SaveMatchResult(data); err == nil {
		t.Error("saving the same match twice should fail")
	}
}

func TestStoreMatchByIDMissing(t *testing.T) {
	store := openTestStore(t)

	got, err := store.MatchByID("nope")
	if err != nil {
		t.Fatalf("MatchByID() failed: %v", err)
	}
	if got != nil {
		t.Errorf("MatchByID() = %+v, expected nil", got)
	}
}

func TestStoreRecentMatches(t *testing.T) {
	store := openTestStore(t)
	session := multiplayer.NewSessionID()

	games := []struct {
		gameID string
		mode   multiplayer.MatchMode
	}{
		{"tanks", multiplayer.MatchModeCampaign},
		{"tanks_survival", multiplayer.MatchModeSurvival},
		{"tanks", multiplayer.MatchModeCampaign},
	}
	for i, g := range games {
		m := multiplayer.NewMatch(g.gameID, g.mode, session)
		if err := store.SaveMatchResult(m.Result(i*10, 0, 0, multiplayer.MatchEndReasonWiped)); err != nil {
			t.Fatalf("SaveMatchResult() failed: %v", err)
		}
	}

	tests := []struct {
		gameID   string
		limit    int
		expected int
	}{
		{"", 10, 3},
		{"tanks", 10, 2},
		{"tanks_survival", 10, 1},
		{"", 2, 2},
	}

	for _, tt := range tests {
		got, err := store.RecentMatches(tt.gameID, tt.limit)
		if err != nil {
			t.Fatalf("RecentMatches(%q) failed: %v", tt.gameID, err)
		}
		if len(got) != tt.expected {
			t.Errorf("RecentMatches(%q, %d) = %d rows, expected %d", tt.gameID, tt.limit, len(got), tt.expected)
		}
	}

	// Newest first; rows inserted in the same second fall back to id order
	got, _ := store.RecentMatches("tanks", 10)
	if len(got) == 2 && got[0].Score1 != 20 {
		t.Errorf("first match Score1 = %d, expected the newest (20)", got[0].Score1)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("tanks", 100)
	store.SaveScore("tanks", 300)

	stats, err := store.GetGameStats("tanks")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.AvgScore != 200 {
		t.Errorf("stats = %+v, expected 2 games, high 300, avg 200", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}
