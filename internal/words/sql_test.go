package words

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec(`CREATE TABLE words (word TEXT PRIMARY KEY)`)
	require.NoError(t, err)
	return db
}

func TestImportAndLoadSQL(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	d, err := New([]string{"bat", "bet", "bit", "ox"})
	require.NoError(t, err)
	require.NoError(t, ImportSQL(ctx, db, d))
	// Importing twice is a no-op.
	require.NoError(t, ImportSQL(ctx, db, d))

	n, err := CountSQL(ctx, db)
	require.NoError(t, err)
	require.Equal(t, 4, n)

	got, err := LoadSQL(ctx, db)
	require.NoError(t, err)
	require.Equal(t, d.Words(), got.Words())
	require.Equal(t, 3, got.Count(3))
}

func TestLoadSQLEmpty(t *testing.T) {
	db := openTestDB(t)
	_, err := LoadSQL(context.Background(), db)
	require.ErrorIs(t, err, ErrEmpty)
}
