package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// OpEntry is one recorded structural operation.
type OpEntry struct {
	Op       string
	Count    int
	IssuedAt time.Time
}

// openOpLog opens (and migrates) the per-document operation log. The log
// is an append-only audit of structural mutations, useful for debugging
// "how did my file end up like this" reports.
func (s *Store) openOpLog(ctx context.Context) (*sql.DB, error) {
	if err := os.MkdirAll(s.localDir(), 0o755); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", filepath.Join(s.localDir(), "oplog.sqlite"))
	if err != nil {
		return nil, err
	}
	// WAL enables one writer + many readers; busy_timeout avoids "database
	// is locked" flakiness when a CLI command runs next to the TUI.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS ops (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		op TEXT NOT NULL,
		item_count INTEGER NOT NULL,
		issued_at_unixms INTEGER NOT NULL
	);`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// AppendOp records one operation. Best effort: errors are returned for the
// caller to log, never to abort the operation itself.
func (s *Store) AppendOp(ctx context.Context, op string, count int) error {
	db, err := s.openOpLog(ctx)
	if err != nil {
		return err
	}
	defer db.Close()
	_, err = db.ExecContext(ctx,
		`INSERT INTO ops (op, item_count, issued_at_unixms) VALUES (?, ?, ?)`,
		op, count, time.Now().UnixMilli())
	return err
}

// ReadOps returns the most recent entries, newest first. limit == 0 means
// all.
func (s *Store) ReadOps(ctx context.Context, limit int) ([]OpEntry, error) {
	db, err := s.openOpLog(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	q := `SELECT op, item_count, issued_at_unixms FROM ops ORDER BY id DESC`
	var rows *sql.Rows
	if limit > 0 {
		rows, err = db.QueryContext(ctx, q+` LIMIT ?`, limit)
	} else {
		rows, err = db.QueryContext(ctx, q)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []OpEntry
	for rows.Next() {
		var (
			op       string
			count    int
			issuedMs int64
		)
		if err := rows.Scan(&op, &count, &issuedMs); err != nil {
			return nil, err
		}
		out = append(out, OpEntry{Op: op, Count: count, IssuedAt: time.UnixMilli(issuedMs).UTC()})
	}
	return out, rows.Err()
}
