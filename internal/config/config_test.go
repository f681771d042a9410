package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	if s.Gameplay.Speed != 0.25 {
		t.Errorf("speed = %v, expected 0.25", s.Gameplay.Speed)
	}
	if s.Gameplay.SpawnIntervalMs != 2000 {
		t.Errorf("spawn interval = %d, expected 2000", s.Gameplay.SpawnIntervalMs)
	}
	if s.Display.Theme != "dark" {
		t.Errorf("theme = %q, expected dark", s.Display.Theme)
	}
	if s.Audio.Volume != 0.3 {
		t.Errorf("volume = %v, expected 0.3", s.Audio.Volume)
	}
}

func TestNormalizeClampsOutOfRangeValues(t *testing.T) {
	s := Settings{}
	s.Gameplay.Speed = 99
	s.Gameplay.SpawnIntervalMs = 1
	s.Display.FontSize = 500
	s.Display.Theme = "neon"
	s.Audio.Volume = -2

	s.Normalize()

	if s.Gameplay.Speed != MaxSpeed {
		t.Errorf("speed = %v, expected clamped to %v", s.Gameplay.Speed, MaxSpeed)
	}
	if s.Gameplay.SpawnIntervalMs != MinSpawnIntervalMs {
		t.Errorf("spawn interval = %d, expected clamped to %d", s.Gameplay.SpawnIntervalMs, MinSpawnIntervalMs)
	}
	if s.Display.FontSize != MaxFontSize {
		t.Errorf("font size = %d, expected clamped to %d", s.Display.FontSize, MaxFontSize)
	}
	if s.Display.Theme != "dark" {
		t.Errorf("theme = %q, expected dark fallback", s.Display.Theme)
	}
	if s.Audio.Volume != 0 {
		t.Errorf("volume = %v, expected floored at 0", s.Audio.Volume)
	}
}

func TestApplyPreset(t *testing.T) {
	cases := []struct {
		preset    DifficultyPreset
		wantSpeed float64
		wantSpawn int
	}{
		{DifficultyEasy, 0.15, 2800},
		{DifficultyNormal, 0.25, 2000},
		{DifficultyHard, 0.45, 1300},
	}
	for _, tc := range cases {
		t.Run(string(tc.preset), func(t *testing.T) {
			s := DefaultSettings()
			ApplyPreset(&s, tc.preset)
			if s.Gameplay.Speed != tc.wantSpeed || s.Gameplay.SpawnIntervalMs != tc.wantSpawn {
				t.Errorf("preset %s = %v/%d, want %v/%d",
					tc.preset, s.Gameplay.Speed, s.Gameplay.SpawnIntervalMs, tc.wantSpeed, tc.wantSpawn)
			}
		})
	}

	// Unknown presets leave settings untouched.
	s := DefaultSettings()
	ApplyPreset(&s, "nightmare")
	if s.Gameplay.Speed != 0.25 {
		t.Errorf("unknown preset changed speed to %v", s.Gameplay.Speed)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	content := []byte("gameplay:\n  speed: 0.5\n  spawn_interval_ms: 1500\ndisplay:\n  font_size: 40\n  theme: light\naudio:\n  volume: 0.9\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if s.Gameplay.Speed != 0.5 || s.Gameplay.SpawnIntervalMs != 1500 {
		t.Errorf("gameplay = %v/%d, want 0.5/1500", s.Gameplay.Speed, s.Gameplay.SpawnIntervalMs)
	}
	if s.Display.Theme != "light" {
		t.Errorf("theme = %q, want light", s.Display.Theme)
	}
}

func TestLoadCustomPathClampsValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	content := []byte("gameplay:\n  speed: 50\n  spawn_interval_ms: 1\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if s.Gameplay.Speed != MaxSpeed || s.Gameplay.SpawnIntervalMs != MinSpawnIntervalMs {
		t.Errorf("loaded gameplay = %v/%d, want clamped", s.Gameplay.Speed, s.Gameplay.SpawnIntervalMs)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("Load() succeeded for a missing explicit path")
	}
}

func TestLoadInvalidYAMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("gameplay: ["), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load() accepted invalid YAML")
	}
}
