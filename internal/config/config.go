// Package config provides YAML-based configuration loading for splitjoin.
package config

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/splitjoin/internal/core"
)

// Config is the complete application configuration.
type Config struct {
	Board    BoardConfig    `yaml:"board"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Storage  StorageConfig  `yaml:"storage"`
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
}

// BoardConfig defines how the board is drawn.
type BoardConfig struct {
	MarkerGlyph    string `yaml:"marker_glyph"`
	EmptyGlyph     string `yaml:"empty_glyph"`
	HighlightGlyph string `yaml:"highlight_glyph"` // Empty cell on the active diagonal
	MarkerColor    string `yaml:"marker_color"`
	EmptyColor     string `yaml:"empty_color"`
	HighlightColor string `yaml:"highlight_color"`
	CursorColor    string `yaml:"cursor_color"`
	SelectionColor string `yaml:"selection_color"` // Rectangle preview in edit mode
}

// GameplayConfig defines interaction behavior.
type GameplayConfig struct {
	ConfirmReset bool   `yaml:"confirm_reset"`
	StartMode    string `yaml:"start_mode"`  // "play" or "edit"
	FlashTicks   int    `yaml:"flash_ticks"` // How long status messages stay visible
}

// StorageConfig defines where scores are persisted.
type StorageConfig struct {
	DBPath       string `yaml:"db_path"`
	BestScoreKey string `yaml:"best_score_key"`
}

// ServerConfig defines the SSH and HTTP listeners.
type ServerConfig struct {
	SSHAddress         string `yaml:"ssh_address"`
	HTTPAddress        string `yaml:"http_address"`
	HostKeyPath        string `yaml:"host_key_path"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// LogConfig defines logger settings.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Log file for the interactive TUI
}

// Theme is the resolved form of BoardConfig.
type Theme struct {
	Marker         rune
	Empty          rune
	Highlight      rune
	MarkerColor    core.Color
	EmptyColor     core.Color
	HighlightColor core.Color
	CursorColor    core.Color
	SelectionColor core.Color
}

// Theme resolves glyphs and color names.
func (b BoardConfig) Theme() (Theme, error) {
	var t Theme
	var err error

	if t.Marker, err = parseGlyph("marker_glyph", b.MarkerGlyph); err != nil {
		return t, err
	}
	if t.Empty, err = parseGlyph("empty_glyph", b.EmptyGlyph); err != nil {
		return t, err
	}
	if t.Highlight, err = parseGlyph("highlight_glyph", b.HighlightGlyph); err != nil {
		return t, err
	}

	colors := []struct {
		field string
		name  string
		dst   *core.Color
	}{
		{"marker_color", b.MarkerColor, &t.MarkerColor},
		{"empty_color", b.EmptyColor, &t.EmptyColor},
		{"highlight_color", b.HighlightColor, &t.HighlightColor},
		{"cursor_color", b.CursorColor, &t.CursorColor},
		{"selection_color", b.SelectionColor, &t.SelectionColor},
	}
	for _, c := range colors {
		parsed, ok := core.ParseColor(c.name)
		if !ok {
			return t, fmt.Errorf("config: board.%s: unknown color %q", c.field, c.name)
		}
		*c.dst = parsed
	}

	return t, nil
}

func parseGlyph(field, s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("config: board.%s must be a single character, got %q", field, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// Validate checks the configuration for values the application cannot use.
func (c Config) Validate() error {
	if _, err := c.Board.Theme(); err != nil {
		return err
	}
	switch c.Gameplay.StartMode {
	case "play", "edit":
	default:
		return fmt.Errorf("config: gameplay.start_mode must be play or edit, got %q", c.Gameplay.StartMode)
	}
	if c.Gameplay.FlashTicks < 0 {
		return fmt.Errorf("config: gameplay.flash_ticks must not be negative")
	}
	if c.Storage.BestScoreKey == "" {
		return fmt.Errorf("config: storage.best_score_key must not be empty")
	}
	if c.Server.IdleTimeoutMinutes < 0 {
		return fmt.Errorf("config: server.idle_timeout_minutes must not be negative")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log.level must be debug, info, warn or error, got %q", c.Log.Level)
	}
	return nil
}
