package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/matryer/is"

	"github.com/robalobadob/evilhangman/internal/words"
)

func TestMigrateIsIdempotent(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()
	db, err := openDB(filepath.Join(t.TempDir(), "data", "words.db"))
	is.NoErr(err)
	defer db.Close()

	is.NoErr(migrate(ctx, db))
	is.NoErr(migrate(ctx, db))

	var n int
	is.NoErr(db.QueryRow(`SELECT COUNT(1) FROM _migrations`).Scan(&n))
	is.Equal(n, 1)
}

func TestLoadDictionaryDBSeedsOnce(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "words.db")

	seed, err := words.New([]string{"bat", "bet", "bit"})
	is.NoErr(err)
	d, err := loadDictionaryDB(ctx, dsn, seed)
	is.NoErr(err)
	is.Equal(d.Words(), []string{"bat", "bet", "bit"})

	// A populated table is not reseeded.
	other, err := words.New([]string{"ox"})
	is.NoErr(err)
	d, err = loadDictionaryDB(ctx, dsn, other)
	is.NoErr(err)
	is.Equal(d.Words(), []string{"bat", "bet", "bit"})
}
