package database

import (
	"fmt"
	"log/slog"
	"time"

	bolt "go.etcd.io/bbolt"
)

// OpenBolt opens (or creates) the local bbolt file. A second process holding
// the file lock makes the open fail after a short wait instead of blocking.
func OpenBolt(path string) (*bolt.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("bolt path cannot be empty")
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt database %s: %w", path, err)
	}
	slog.Info("Opened local bolt store.", slog.String("path", path))
	return db, nil
}

// CloseBolt closes the bolt database, logging any failure.
func CloseBolt(db *bolt.DB) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		slog.Error("Error closing bolt database", slog.String("error", err.Error()))
		return
	}
	slog.Info("Local bolt store closed.")
}
