// splitjoin is a terminal puzzle about splitting and joining markers on a
// 16x16 board, pushing them away from the bottom-left corner.
//
// Usage:
//
//	splitjoin list             - List game variants
//	splitjoin play [variant]   - Play in the terminal (default: splitjoin)
//	splitjoin scores [variant] - Show recorded runs
//	splitjoin serve            - Start SSH server for remote play
//	splitjoin api              - Serve one session over an HTTP JSON API
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 30)
//	--db <path>           - Set database path (default: ~/.splitjoin/scores.db)
//	--config <path>       - Use a custom YAML config
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/splitjoin/internal/config"
	"github.com/vovakirdan/splitjoin/internal/games/splitjoin"
)

var (
	// Global flags
	flagFPS      int
	flagDBPath   string
	flagConfig   string
	flagLogLevel string

	// appConfig is loaded once before any subcommand runs.
	appConfig config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "splitjoin",
	Short: "Split & Join - a marker puzzle for the terminal",
	Long: `Split & Join is a puzzle on a 16x16 board. Every marker can split into
two (one up, one right) or two markers can join back into one. Your level is
how far the closest marker is from the bottom-left corner.

Available commands:
  list     - Show game variants
  play     - Play in the terminal
  scores   - View recorded runs
  serve    - Start SSH server for remote play
  api      - Serve one session over HTTP

Examples:
  splitjoin play
  splitjoin play splitjoin_setup
  splitjoin scores -i
  splitjoin serve --ssh :2222
  splitjoin api --http :8080`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(apiCmd)
}

// loadConfig reads .env, the YAML config and environment overrides, then
// applies command-line flags on top.
func loadConfig(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("reading .env: %w", err)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	config.ApplyEnv(&cfg)

	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := splitjoin.SetConfig(cfg); err != nil {
		return err
	}

	appConfig = cfg
	return nil
}

// newLogger builds a logger at the configured level.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(appConfig.Log.Level)
	if err != nil {
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// fileLogger logs to the configured file, for commands that own the
// terminal. Falls back to discarding output if the file cannot be opened.
func fileLogger(prefix string) (*log.Logger, func()) {
	path, err := config.ExpandHome(appConfig.Log.File)
	if err != nil || path == "" {
		return newLogger(io.Discard, prefix), func() {}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return newLogger(io.Discard, prefix), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return newLogger(io.Discard, prefix), func() {}
	}
	return newLogger(f, prefix), func() { f.Close() }
}
