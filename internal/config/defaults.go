package config

import (
	_ "embed"
)

//go:embed defaults/splitjoin.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration.
// It mirrors defaults/splitjoin.yaml and is used if the embedded file fails to parse.
func Default() Config {
	return Config{
		Board: BoardConfig{
			MarkerGlyph:    "●",
			EmptyGlyph:     "·",
			HighlightGlyph: "◇",
			MarkerColor:    "bright_cyan",
			EmptyColor:     "gray",
			HighlightColor: "bright_yellow",
			CursorColor:    "bright_magenta",
			SelectionColor: "orange",
		},
		Gameplay: GameplayConfig{
			ConfirmReset: true,
			StartMode:    "play",
			FlashTicks:   45,
		},
		Storage: StorageConfig{
			DBPath:       "~/.splitjoin/scores.db",
			BestScoreKey: "best",
		},
		Server: ServerConfig{
			SSHAddress:         ":23234",
			HTTPAddress:        ":8080",
			IdleTimeoutMinutes: 30,
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.splitjoin/splitjoin.log",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
