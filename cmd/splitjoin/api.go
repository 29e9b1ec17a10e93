package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/splitjoin/internal/games/splitjoin"
	"github.com/vovakirdan/splitjoin/internal/platform/httpapi"
	"github.com/vovakirdan/splitjoin/internal/storage"
)

var flagHTTPAddr string

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Serve one session over an HTTP JSON API",
	Long: `Start an HTTP server exposing a single board. All requests act on the
same session and are applied one at a time.

Endpoints:
  GET  /api/snapshot
  POST /api/move    {"row":15,"col":0}
  POST /api/cell    {"row":3,"col":4}
  POST /api/rect    {"r1":0,"c1":0,"r2":3,"c2":3}
  PUT  /api/mode    {"mode":"edit"}
  POST /api/reset   {"confirm":true}
  GET  /healthz

Examples:
  splitjoin api
  splitjoin api --http :9090
  curl -s localhost:8080/api/snapshot`,
	RunE: runAPI,
}

func init() {
	apiCmd.Flags().StringVar(&flagHTTPAddr, "http", "", "HTTP listen address (default from config)")
}

func runAPI(_ *cobra.Command, _ []string) error {
	logger := newLogger(os.Stderr, "splitjoin-api")

	addr := appConfig.Server.HTTPAddress
	if flagHTTPAddr != "" {
		addr = flagHTTPAddr
	}

	startMode, err := splitjoin.ParseMode(appConfig.Gameplay.StartMode)
	if err != nil {
		return err
	}
	opts := []splitjoin.Option{
		splitjoin.WithStartMode(startMode),
		splitjoin.WithRenderer(splitjoin.RendererFunc(func(s splitjoin.Snapshot) {
			logger.Debug("Board changed", "level", s.Level, "score", s.Score, "best", s.BestScore, "markers", len(s.Markers))
		})),
	}

	store, err := storage.Open(appConfig.Storage.DBPath)
	if err != nil {
		logger.Warn("Could not open scores database, best score will not persist", "err", err)
	} else {
		defer store.Close()
		opts = append(opts, splitjoin.WithBestScoreStore(
			storage.NewKeyedBestScore(store, appConfig.Storage.BestScoreKey, logger)))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := httpapi.New(splitjoin.NewSession(opts...), logger)
	return server.ListenAndServe(ctx, addr)
}
