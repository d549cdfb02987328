// internal/words/sql.go
//
// SQLite-backed dictionary source. The words table is created by the
// server's migrations (sql/001_words.sql):
//
//   CREATE TABLE words (word TEXT PRIMARY KEY);

package words

import (
	"context"
	"database/sql"
	"fmt"
)

// LoadSQL reads every row of the words table into a Dictionary.
func LoadSQL(ctx context.Context, db *sql.DB) (*Dictionary, error) {
	rows, err := db.QueryContext(ctx, `SELECT word FROM words`)
	if err != nil {
		return nil, fmt.Errorf("words: query: %w", err)
	}
	defer rows.Close()

	var list []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		list = append(list, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return New(list)
}

// CountSQL returns the number of rows in the words table.
func CountSQL(ctx context.Context, db *sql.DB) (int, error) {
	var n int
	err := db.QueryRowContext(ctx, `SELECT COUNT(1) FROM words`).Scan(&n)
	return n, err
}

// ImportSQL inserts every word of d into the words table inside a single
// transaction. Words already present are ignored.
func ImportSQL(ctx context.Context, db *sql.DB, d *Dictionary) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO words(word) VALUES (?)`)
	if err != nil {
		return fmt.Errorf("words: prepare: %w", err)
	}
	defer stmt.Close()
	for _, w := range d.words {
		if _, err := stmt.ExecContext(ctx, w); err != nil {
			return fmt.Errorf("words: insert %q: %w", w, err)
		}
	}
	return tx.Commit()
}
