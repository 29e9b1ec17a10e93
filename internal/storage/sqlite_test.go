package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
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
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
	if err := store.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}
}

func TestStoreNestedAndHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/deep/dir/scores.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, "deep", "dir", "scores.db")); os.IsNotExist(err) {
		t.Error("Database file was not created under the home directory")
	}
}

func TestStoreBestScoreMissing(t *testing.T) {
	store := openTestStore(t)

	v, ok, err := store.BestScore("best")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if ok || v != 0 {
		t.Errorf("BestScore() = %v, %v; want 0, false", v, ok)
	}
}

func TestStoreBestScoreRoundTrip(t *testing.T) {
	store := openTestStore(t)

	for _, want := range []float64{3.25, 0.1 + 0.2, 30, 0} {
		if err := store.SetBestScore("best", want); err != nil {
			t.Fatalf("SetBestScore(%v) failed: %v", want, err)
		}
		got, ok, err := store.BestScore("best")
		if err != nil || !ok {
			t.Fatalf("BestScore() = %v, %v, %v", got, ok, err)
		}
		if got != want {
			t.Errorf("BestScore() = %v, want %v", got, want)
		}
	}
}

func TestStoreBestScoreKeysAreIndependent(t *testing.T) {
	store := openTestStore(t)

	if err := store.SetBestScore("best:alice", 4); err != nil {
		t.Fatal(err)
	}
	if err := store.SetBestScore("best:bob", 7.5); err != nil {
		t.Fatal(err)
	}

	if v, _, _ := store.BestScore("best:alice"); v != 4 {
		t.Errorf("alice = %v, want 4", v)
	}
	if v, _, _ := store.BestScore("best:bob"); v != 7.5 {
		t.Errorf("bob = %v, want 7.5", v)
	}
}

func TestStoreBestScoreUnparsable(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.db.Exec("INSERT INTO best_scores (key, value) VALUES ('best', 'abc')"); err != nil {
		t.Fatal(err)
	}

	v, ok, err := store.BestScore("best")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if ok || v != 0 {
		t.Errorf("unparsable value should read as absent, got %v, %v", v, ok)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []struct {
		game  string
		score float64
		level int
	}{
		{"splitjoin", 3.5, 3},
		{"splitjoin", 1, 1},
		{"splitjoin", 5.25, 5},
		{"splitjoin_setup", 30, 30},
	}
	for _, r := range runs {
		if _, err := store.SaveScore(r.game, r.score, r.level); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("splitjoin", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	want := []float64{5.25, 3.5, 1}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d].Score = %v, want %v", i, scores[i].Score, w)
		}
	}
	if scores[0].Level != 5 {
		t.Errorf("scores[0].Level = %d, want 5", scores[0].Level)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be populated")
	}

	setup, err := store.TopScores("splitjoin_setup", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(setup) != 1 || setup[0].Score != 30 {
		t.Errorf("setup scores = %+v", setup)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 20 {
		if _, err := store.SaveScore("splitjoin", float64(i)+0.5, i); err != nil {
			t.Fatal(err)
		}
	}

	scores, err := store.TopScores("splitjoin", 5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("Expected 5 scores, got %d", len(scores))
	}
	if scores[0].Score != 19.5 {
		t.Errorf("top score = %v, want 19.5", scores[0].Score)
	}

	// Non-positive limits fall back to 10.
	scores, err = store.TopScores("splitjoin", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 10 {
		t.Errorf("Expected default limit 10, got %d", len(scores))
	}

	all, err := store.AllScores("splitjoin")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(all) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(all))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("splitjoin")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty history, got %v", high)
	}

	store.SaveScore("splitjoin", 2.75, 2)
	store.SaveScore("splitjoin", 4.5, 4)

	high, err = store.HighScore("splitjoin")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 4.5 {
		t.Errorf("HighScore() = %v, want 4.5", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("splitjoin", 1, 1)
	store.SaveScore("splitjoin_setup", 2, 2)

	if err := store.ClearScores("splitjoin"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("splitjoin", 10); len(scores) != 0 {
		t.Errorf("Expected no scores after clear, got %d", len(scores))
	}
	if scores, _ := store.TopScores("splitjoin_setup", 10); len(scores) != 1 {
		t.Error("ClearScores removed another game's runs")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("splitjoin", 1, 1)
	store.SaveScore("splitjoin", 3, 3)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	st, ok := stats["splitjoin"]
	if !ok {
		t.Fatal("missing stats for splitjoin")
	}
	if st.Runs != 2 || st.HighScore != 3 || st.AvgScore != 2 || st.MaxLevel != 3 {
		t.Errorf("stats = %+v", st)
	}
}

func TestKeyedBestScore(t *testing.T) {
	store := openTestStore(t)
	keeper := NewKeyedBestScore(store, "best", log.New(os.Stderr))

	if _, ok := keeper.Load(); ok {
		t.Error("Load() on a fresh store should report absent")
	}

	keeper.Save(6.5)
	if v, ok := keeper.Load(); !ok || v != 6.5 {
		t.Errorf("Load() = %v, %v; want 6.5, true", v, ok)
	}

	other := NewKeyedBestScore(store, "other", nil)
	if _, ok := other.Load(); ok {
		t.Error("keys should not leak into each other")
	}
}

func TestKeyedBestScoreClosedStore(t *testing.T) {
	store := openTestStore(t)
	keeper := NewKeyedBestScore(store, "best", log.New(os.Stderr))
	store.Close()

	keeper.Save(1)
	if _, ok := keeper.Load(); ok {
		t.Error("Load() on a closed store should report absent")
	}
}
