package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
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
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

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
	if _, err := store.SaveRun(RunRecord{GameID: "forest", Score: 12, EndReason: EndQuit}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("forest")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 12 {
		t.Errorf("Expected high score 12 after reopen, got %d", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveRun(RunRecord{GameID: "forest", Score: score, EndReason: EndQuit}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	// Different game id
	if _, err := store.SaveRun(RunRecord{GameID: "other", Score: 500, EndReason: EndQuit}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	scores, err := store.TopScores("forest", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
	for _, s := range scores {
		if s.RunID == uuid.Nil {
			t.Error("SaveRun should assign a run ID")
		}
	}
}

func TestStoreRunRoundTrip(t *testing.T) {
	store := openTestStore(t)

	run := RunRecord{
		RunID:     uuid.New(),
		GameID:    "forest",
		Player:    "alice",
		Score:     42,
		Turns:     77,
		EndReason: EndInputLost,
		Duration:  3 * time.Second,
	}
	if _, err := store.SaveRun(run); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	got, err := store.RunByID(run.RunID)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("RunByID() returned nil for a saved run")
	}
	if got.Player != "alice" || got.Score != 42 || got.Turns != 77 {
		t.Errorf("RunByID() = %+v", got)
	}
	if got.EndReason != EndInputLost {
		t.Errorf("EndReason = %q, expected %q", got.EndReason, EndInputLost)
	}
	if got.Duration != 3*time.Second {
		t.Errorf("Duration = %v, expected 3s", got.Duration)
	}

	missing, err := store.RunByID(uuid.New())
	if err != nil {
		t.Fatalf("RunByID() for unknown id failed: %v", err)
	}
	if missing != nil {
		t.Errorf("RunByID() for unknown id = %+v, expected nil", missing)
	}
}

func TestStoreDuplicateRunID(t *testing.T) {
	store := openTestStore(t)

	run := RunRecord{RunID: uuid.New(), GameID: "forest", Score: 1, EndReason: EndQuit}
	if _, err := store.SaveRun(run); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := store.SaveRun(run); err == nil {
		t.Error("saving the same run twice should fail")
	}
}

func TestStoreRejectsNegativeScore(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun(RunRecord{GameID: "forest", Score: -1, EndReason: EndQuit}); err == nil {
		t.Error("negative score should be rejected")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(RunRecord{GameID: "forest", Score: (i + 1) * 100, EndReason: EndQuit})
	}

	scores, err := store.TopScores("forest", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("forest")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveRun(RunRecord{GameID: "forest", Score: 100, EndReason: EndQuit})
	store.SaveRun(RunRecord{GameID: "forest", Score: 300, EndReason: EndQuit})
	store.SaveRun(RunRecord{GameID: "forest", Score: 200, EndReason: EndQuit})

	high, err = store.HighScore("forest")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{GameID: "forest", Score: 100, EndReason: EndQuit})
	store.SaveRun(RunRecord{GameID: "other", Score: 100, EndReason: EndQuit})

	if err := store.ClearScores("forest"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, err := store.TopScores("forest", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("Expected no forest scores after clear, got %d", len(scores))
	}

	other, err := store.TopScores("other", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(other) != 1 {
		t.Errorf("ClearScores should not touch other games, got %d", len(other))
	}
}
