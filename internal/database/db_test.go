package database

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T, name string) *DB {
	t.Helper()

	db, err := New(Config{
		Path: filepath.Join(t.TempDir(), name+".db"),
		Name: name,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestNew(t *testing.T) {
	db := newTestDB(t, "documents")

	assert.Equal(t, "documents", db.Name())
	assert.True(t, filepath.IsAbs(db.Path()))
	assert.NoError(t, db.QuickCheck(context.Background()))
}

func TestQuickCheck_ClosedDatabase(t *testing.T) {
	db, err := New(Config{Path: filepath.Join(t.TempDir(), "x.db"), Name: "x"})
	require.NoError(t, err)
	require.NoError(t, db.Close())

	assert.Error(t, db.QuickCheck(context.Background()))
}

func TestMigrate_DocumentsSchema(t *testing.T) {
	db := newTestDB(t, "documents")

	require.NoError(t, db.Migrate())
	// Idempotent
	require.NoError(t, db.Migrate())

	for _, table := range []string{"tickers", "trending", "ticker_history"} {
		var name string
		err := db.Conn().QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_UnknownNameIsNoop(t *testing.T) {
	db := newTestDB(t, "scratch")
	assert.NoError(t, db.Migrate())
}

func TestBuildConnectionString(t *testing.T) {
	standard := buildConnectionString("/tmp/a.db")
	assert.Contains(t, standard, "/tmp/a.db?_pragma=journal_mode(WAL)")
	assert.Contains(t, standard, "synchronous(NORMAL)")
	assert.Contains(t, standard, "busy_timeout(5000)")

	uri := buildConnectionString("file:mem?mode=memory")
	assert.Contains(t, uri, "file:mem?mode=memory&_pragma=journal_mode(WAL)")
}

func TestWithTransaction(t *testing.T) {
	db := newTestDB(t, "tx")
	_, err := db.Conn().Exec("CREATE TABLE t (v INTEGER)")
	require.NoError(t, err)

	count := func() int {
		var n int
		require.NoError(t, db.Conn().QueryRow("SELECT COUNT(*) FROM t").Scan(&n))
		return n
	}

	t.Run("commits on success", func(t *testing.T) {
		err := WithTransaction(db.Conn(), func(tx *sql.Tx) error {
			_, err := tx.Exec("INSERT INTO t (v) VALUES (1)")
			return err
		})
		require.NoError(t, err)
		assert.Equal(t, 1, count())
	})

	t.Run("rolls back on error", func(t *testing.T) {
		boom := errors.New("boom")
		err := WithTransaction(db.Conn(), func(tx *sql.Tx) error {
			_, _ = tx.Exec("INSERT INTO t (v) VALUES (2)")
			return boom
		})
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 1, count())
	})

	t.Run("rolls back on panic", func(t *testing.T) {
		err := WithTransaction(db.Conn(), func(tx *sql.Tx) error {
			_, _ = tx.Exec("INSERT INTO t (v) VALUES (3)")
			panic("kaboom")
		})
		assert.ErrorContains(t, err, "panic in transaction")
		assert.Equal(t, 1, count())
	})

	t.Run("nil connection", func(t *testing.T) {
		assert.Error(t, WithTransaction(nil, func(tx *sql.Tx) error { return nil }))
	})
}

func TestSchema(t *testing.T) {
	schema, err := Schema("documents")
	require.NoError(t, err)
	assert.Contains(t, schema, "CREATE TABLE IF NOT EXISTS tickers")

	_, err = Schema("missing")
	assert.Error(t, err)
}
