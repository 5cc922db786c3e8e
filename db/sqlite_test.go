package db_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-buddy/db"
)

func TestOpenSQLite_InMemoryMigrates(t *testing.T) {
	conn, err := db.OpenSQLite(":memory:")
	require.NoError(t, err)
	defer conn.Close()

	var name string
	err = conn.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='users'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "users", name)

	// Migrations are idempotent.
	assert.NoError(t, db.Migrate(conn))
}

func TestOpenSQLite_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "travel.db")

	conn, err := db.OpenSQLite(path)
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.Exec(`INSERT INTO users (id, name, email, password_hash, created_at) VALUES ('1', 'a', 'a@b.c', 'h', CURRENT_TIMESTAMP)`)
	assert.NoError(t, err)
	_, err = conn.Exec(`INSERT INTO users (id, name, email, password_hash, created_at) VALUES ('2', 'b', 'a@b.c', 'h', CURRENT_TIMESTAMP)`)
	assert.Error(t, err)
}
