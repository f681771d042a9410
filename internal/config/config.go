// Package config provides YAML-based settings loading and difficulty
// presets for the typefall platform.
package config

// Settings holds the tunable gameplay and presentation parameters.
// The engine reads the live values every tick, so changing a field
// mid-session takes effect on the next tick.
type Settings struct {
	Gameplay GameplaySettings `yaml:"gameplay"`
	Display  DisplaySettings  `yaml:"display"`
	Audio    AudioSettings    `yaml:"audio"`
}

// GameplaySettings control the falling-letter simulation.
type GameplaySettings struct {
	// Speed is the fall rate in percent of field height per tick.
	Speed float64 `yaml:"speed"`
	// SpawnIntervalMs is the minimum time between spawns in milliseconds.
	SpawnIntervalMs int `yaml:"spawn_interval_ms"`
}

// DisplaySettings control presentation hints.
type DisplaySettings struct {
	// FontSize is a glyph emphasis hint carried into ranking snapshots.
	FontSize int `yaml:"font_size"`
	// Theme is "dark" or "light".
	Theme string `yaml:"theme"`
}

// AudioSettings control sound cue playback.
type AudioSettings struct {
	// Volume in [0, 1]; 0 disables cues.
	Volume float64 `yaml:"volume"`
}

// Legal ranges. Values outside are clamped, never rejected: a bad config
// file degrades to the nearest playable value.
const (
	MinSpeed           = 0.05
	MaxSpeed           = 0.8
	MinSpawnIntervalMs = 200
	MaxSpawnIntervalMs = 10000
	MinFontSize        = 20
	MaxFontSize        = 80
)

// Normalize clamps all fields into their legal ranges and fills empty
// enumeration fields with defaults.
func (s *Settings) Normalize() {
	if s.Gameplay.Speed < MinSpeed {
		s.Gameplay.Speed = MinSpeed
	}
	if s.Gameplay.Speed > MaxSpeed {
		s.Gameplay.Speed = MaxSpeed
	}
	if s.Gameplay.SpawnIntervalMs < MinSpawnIntervalMs {
		s.Gameplay.SpawnIntervalMs = MinSpawnIntervalMs
	}
	if s.Gameplay.SpawnIntervalMs > MaxSpawnIntervalMs {
		s.Gameplay.SpawnIntervalMs = MaxSpawnIntervalMs
	}
	if s.Display.FontSize < MinFontSize {
		s.Display.FontSize = MinFontSize
	}
	if s.Display.FontSize > MaxFontSize {
		s.Display.FontSize = MaxFontSize
	}
	if s.Display.Theme != "light" {
		s.Display.Theme = "dark"
	}
	if s.Audio.Volume < 0 {
		s.Audio.Volume = 0
	}
	if s.Audio.Volume > 1 {
		s.Audio.Volume = 1
	}
}

// DifficultyPreset is a named gameplay tuning.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ApplyPreset overrides the gameplay settings with a preset tuning.
// Unknown presets leave the settings untouched.
func ApplyPreset(s *Settings, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		s.Gameplay.Speed = 0.15
		s.Gameplay.SpawnIntervalMs = 2800
	case DifficultyNormal:
		s.Gameplay.Speed = 0.25
		s.Gameplay.SpawnIntervalMs = 2000
	case DifficultyHard:
		s.Gameplay.Speed = 0.45
		s.Gameplay.SpawnIntervalMs = 1300
	}
}
