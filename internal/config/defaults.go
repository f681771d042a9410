package config

import (
	_ "embed"
)

//go:embed defaults/typefall.yaml
var defaultSettingsYAML []byte

// DefaultSettings returns the default configuration.
func DefaultSettings() Settings {
	return Settings{
		Gameplay: GameplaySettings{
			Speed:           0.25,
			SpawnIntervalMs: 2000,
		},
		Display: DisplaySettings{
			FontSize: 70,
			Theme:    "dark",
		},
		Audio: AudioSettings{
			Volume: 0.3,
		},
	}
}
