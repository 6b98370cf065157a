package database_test

import (
	"path/filepath"
	"testing"

	"github.com/Basri-akbas/Finance-Tracker/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenBolt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.db")

	db, err := database.OpenBolt(path)
	require.NoError(t, err)
	assert.Equal(t, path, db.Path())
	database.CloseBolt(db)

	// reopening an existing file works once the lock is released
	db, err = database.OpenBolt(path)
	require.NoError(t, err)
	database.CloseBolt(db)
}

func TestOpenBolt_EmptyPath(t *testing.T) {
	_, err := database.OpenBolt("")
	assert.Error(t, err)
}

func TestNewPgxPool_EmptyURL(t *testing.T) {
	_, err := database.NewPgxPool(t.Context(), "", false)
	assert.Error(t, err)
}
