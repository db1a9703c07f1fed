package database

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/alimgiray/elus/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenCreatesSchema(t *testing.T) {
	logger.SetOutput(io.Discard)

	db, err := Open(":memory:")
	require.NoError(t, err)
	defer db.Close()

	var name string
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'elus'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "elus", name)
	assert.Equal(t, 1, db.Stats().MaxOpenConnections)
}

func TestEmailIsUniqueInSchema(t *testing.T) {
	logger.SetOutput(io.Discard)

	db, err := Open(":memory:")
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`INSERT INTO elus (name, email, mandates) VALUES (?, ?, ?)`, "Jean Dupont", "jean.dupont@example.com", "[]")
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO elus (name, email, mandates) VALUES (?, ?, ?)`, "Jean Autre", "jean.dupont@example.com", "[]")
	assert.Error(t, err)
}

func TestInitAndCloseFileDatabase(t *testing.T) {
	logger.SetOutput(io.Discard)

	require.NoError(t, Init(filepath.Join(t.TempDir(), "elus.db")))
	assert.NotNil(t, DB)
	assert.NoError(t, DB.Ping())
	assert.NoError(t, Close())
}

func TestRunSQLScriptsIsRepeatable(t *testing.T) {
	logger.SetOutput(io.Discard)

	db, err := Open(":memory:")
	require.NoError(t, err)
	defer db.Close()

	assert.NoError(t, RunSQLScripts(db))
}
