package storage

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/splitjoin/internal/core"
)

// KeyedBestScore exposes one best-score key of a Store as a core.ScoreKeeper.
// The game loop has no way to surface storage failures, so errors are
// logged and otherwise ignored.
type KeyedBestScore struct {
	store  *Store
	key    string
	logger *log.Logger
}

var _ core.ScoreKeeper = (*KeyedBestScore)(nil)

// NewKeyedBestScore binds key in store. A nil logger uses the default one.
func NewKeyedBestScore(store *Store, key string, logger *log.Logger) *KeyedBestScore {
	if logger == nil {
		logger = log.Default()
	}
	return &KeyedBestScore{store: store, key: key, logger: logger}
}

// Load returns the persisted value, if any.
func (k *KeyedBestScore) Load() (float64, bool) {
	v, ok, err := k.store.BestScore(k.key)
	if err != nil {
		k.logger.Warn("Best score unavailable", "key", k.key, "err", err)
		return 0, false
	}
	return v, ok
}

// Save persists best.
func (k *KeyedBestScore) Save(best float64) {
	if err := k.store.SetBestScore(k.key, best); err != nil {
		k.logger.Error("Failed to save best score", "key", k.key, "value", best, "err", err)
	}
}
