// Package store persists a review topic collection. Two backends are
// provided: a single pretty-printed JSON file (the default) and a SQLite
// database. Both load an empty collection when no state has been saved yet
// and create the data directory on save.
package store

import (
	"fmt"

	"github.com/mesh-intelligence/sir/pkg/types"
)

// File names inside the data directory.
const (
	jsonFileName   = "storage.json"
	sqliteFileName = "storage.db"
)

// Store loads and saves the whole collection at once.
type Store interface {
	// Load returns the saved collection, or an empty one if nothing has been
	// saved. Undecodable state returns an error wrapping
	// types.ErrCorruptStorage.
	Load() (*types.Collection, error)

	// Save replaces the saved state with c.
	Save(c *types.Collection) error

	// Path returns the file backing the store.
	Path() string
}

// Open validates cfg and returns the store for the configured backend.
func Open(cfg types.Config) (Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = "."
	}

	switch cfg.Backend {
	case types.BackendJSON:
		return NewJSONStore(dataDir), nil
	case types.BackendSQLite:
		return NewSQLiteStore(dataDir), nil
	default:
		return nil, fmt.Errorf("%w %q", types.ErrBackendUnknown, cfg.Backend)
	}
}
