package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/typefall/internal/progression"
	"github.com/vovakirdan/typefall/internal/ranking"
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

func TestStoreOpenCreatesFile(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestGetMissingKeyReturnsNil(t *testing.T) {
	store := openTestStore(t)

	data, err := store.Get("nothing")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if data != nil {
		t.Fatalf("Get() = %q, want nil for a missing key", data)
	}
}

func TestPutOverwrites(t *testing.T) {
	store := openTestStore(t)

	if err := store.Put("k", []byte("one")); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}
	if err := store.Put("k", []byte("two")); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}

	data, err := store.Get("k")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if string(data) != "two" {
		t.Fatalf("Get() = %q, want latest value", data)
	}
}

func TestProfilesRoundTrip(t *testing.T) {
	store := openTestStore(t)

	profiles := []*progression.UserProfile{
		{
			ID:           "p1-1",
			Name:         "Ada",
			Level:        3,
			XP:           500,
			Stats:        progression.GameStats{TotalScore: 4200, GamesPlayed: 7, MaxCombo: 19},
			Achievements: []string{"novice"},
			CreatedAt:    time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		},
		{ID: "p2-2", Name: "Grace", Level: 1},
	}

	if err := store.SaveProfiles(profiles, "p2-2"); err != nil {
		t.Fatalf("SaveProfiles() failed: %v", err)
	}

	loaded, activeID := store.LoadProfiles()
	if len(loaded) != 2 {
		t.Fatalf("loaded %d profiles, want 2", len(loaded))
	}
	if activeID != "p2-2" {
		t.Fatalf("activeID = %q, want p2-2", activeID)
	}
	if loaded[0].Name != "Ada" || loaded[0].Stats.TotalScore != 4200 || loaded[0].Level != 3 {
		t.Fatalf("loaded profile = %+v, does not match saved", loaded[0])
	}
	if !loaded[0].HasAchievement("novice") {
		t.Fatal("achievements lost in round trip")
	}
}

func TestLoadProfilesSurvivesCorruptData(t *testing.T) {
	store := openTestStore(t)

	if err := store.Put(KeyProfiles, []byte("{not json")); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}

	loaded, activeID := store.LoadProfiles()
	if loaded != nil || activeID != "" {
		t.Fatalf("LoadProfiles() = (%v, %q), want defaults for corrupt data", loaded, activeID)
	}
}

func TestRankingRoundTrip(t *testing.T) {
	store := openTestStore(t)

	entries := []ranking.Entry{
		{
			PlayerName: "Ada",
			Score:      310,
			Timestamp:  time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC),
			Config:     ranking.ConfigSnapshot{Speed: 0.25, SpawnIntervalMs: 2000, FontSize: 70},
		},
	}

	if err := store.SaveRanking(entries); err != nil {
		t.Fatalf("SaveRanking() failed: %v", err)
	}

	loaded := store.LoadRanking()
	if len(loaded) != 1 {
		t.Fatalf("loaded %d entries, want 1", len(loaded))
	}
	if loaded[0] != entries[0] {
		t.Fatalf("loaded entry = %+v, want %+v", loaded[0], entries[0])
	}
}

func TestLoadRankingSurvivesCorruptData(t *testing.T) {
	store := openTestStore(t)

	if err := store.Put(KeyRanking, []byte("[broken")); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}
	if got := store.LoadRanking(); got != nil {
		t.Fatalf("LoadRanking() = %v, want nil for corrupt data", got)
	}
}

func TestThemeRoundTripAndDefault(t *testing.T) {
	store := openTestStore(t)

	if got := store.LoadTheme(); got != "dark" {
		t.Fatalf("LoadTheme() = %q, want dark default", got)
	}

	if err := store.SaveTheme("light"); err != nil {
		t.Fatalf("SaveTheme() failed: %v", err)
	}
	if got := store.LoadTheme(); got != "light" {
		t.Fatalf("LoadTheme() = %q, want light", got)
	}

	// Unknown values fall back to dark instead of propagating garbage.
	if err := store.SaveTheme("neon"); err != nil {
		t.Fatalf("SaveTheme() failed: %v", err)
	}
	if got := store.LoadTheme(); got != "dark" {
		t.Fatalf("LoadTheme() = %q, want dark for unknown theme", got)
	}
}
