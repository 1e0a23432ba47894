package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/vovakirdan/venue-arcade/internal/engine"
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

func save(t *testing.T, store *Store, gameID string, score int) Run {
	t.Helper()
	r, err := store.SaveRun(Run{GameID: gameID, Score: score, Level: 1})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	return r
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

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	save(t, store, "fruit-slice", 100)
	save(t, store, "fruit-slice", 50)
	save(t, store, "fruit-slice", 200)
	save(t, store, "neural-hack", 500)

	scores, err := store.TopScores("fruit-slice", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	for i, want := range []int{200, 100, 50} {
		if scores[i].Score != want {
			t.Errorf("scores[%d] = %d, want %d", i, scores[i].Score, want)
		}
	}

	hack, err := store.TopScores("neural-hack", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(hack) != 1 {
		t.Errorf("Expected 1 neural-hack score, got %d", len(hack))
	}
}

func TestSaveRunAssignsIDs(t *testing.T) {
	store := openTestStore(t)

	r := save(t, store, "word-connect", 90)
	if r.ID == 0 {
		t.Error("row id not set")
	}
	if _, err := uuid.Parse(r.RunID); err != nil {
		t.Errorf("run id %q is not a uuid: %v", r.RunID, err)
	}
	if r.Source != SourceTerminal {
		t.Errorf("default source = %q", r.Source)
	}

	got, err := store.RunByID(r.RunID)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got == nil || got.Score != 90 || got.GameID != "word-connect" {
		t.Errorf("RunByID() = %+v", got)
	}

	missing, err := store.RunByID(uuid.NewString())
	if err != nil || missing != nil {
		t.Errorf("RunByID() of unknown = %v, %v", missing, err)
	}

	if _, err := store.SaveRun(Run{GameID: "word-connect", RunID: r.RunID}); err == nil {
		t.Error("duplicate run id should fail")
	}
	if _, err := store.SaveRun(Run{Score: 1}); err == nil {
		t.Error("run without a game should fail")
	}
}

func TestNewRun(t *testing.T) {
	r := NewRun("fruit-slice", SourceBot, engine.Snapshot{
		Score:    340,
		Level:    2,
		MaxCombo: 7,
		Elapsed:  59.6,
	})
	if r.GameID != "fruit-slice" || r.Source != SourceBot {
		t.Errorf("NewRun() = %+v", r)
	}
	if r.Score != 340 || r.Level != 2 || r.MaxCombo != 7 || r.Duration != 60 {
		t.Errorf("NewRun() = %+v", r)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		save(t, store, "test", (i+1)*100)
	}

	// Request only top 3
	scores, err := store.TopScores("test", 3)
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

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 25; i++ {
		save(t, store, "test", i*10)
	}

	runs, err := store.RecentRuns("test", 0)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 20 {
		t.Fatalf("Expected default limit of 20, got %d", len(runs))
	}
	if runs[0].Score != 240 {
		t.Errorf("newest run score = %d, want 240", runs[0].Score)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No scores yet
	high, err := store.HighScore("fruit-slice")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	save(t, store, "fruit-slice", 100)
	save(t, store, "fruit-slice", 300)
	save(t, store, "fruit-slice", 200)

	high, err = store.HighScore("fruit-slice")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	save(t, store, "fruit-slice", 100)
	save(t, store, "fruit-slice", 200)
	save(t, store, "neural-hack", 300)

	if err := store.ClearScores("fruit-slice"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	fruit, _ := store.TopScores("fruit-slice", 10)
	if len(fruit) != 0 {
		t.Errorf("Expected 0 fruit-slice scores after clear, got %d", len(fruit))
	}

	hack, _ := store.TopScores("neural-hack", 10)
	if len(hack) != 1 {
		t.Errorf("neural-hack scores should not be affected by clearing fruit-slice")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("word-connect")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	runs := []Run{
		{GameID: "word-connect", Score: 100, Level: 2, MaxCombo: 3, Duration: 180},
		{GameID: "word-connect", Score: 300, Level: 4, MaxCombo: 2, Duration: 200},
		{GameID: "fruit-slice", Score: 50, Level: 1, MaxCombo: 9, Duration: 60},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	stats, err := store.GetGameStats("word-connect")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.AvgScore != 200 || stats.TotalScore != 400 {
		t.Errorf("score stats = %+v", stats)
	}
	if stats.BestCombo != 3 || stats.BestLevel != 4 || stats.PlaySecs != 380 {
		t.Errorf("run stats = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("last played not set")
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all["fruit-slice"].BestCombo != 9 {
		t.Errorf("all stats = %v", all)
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
