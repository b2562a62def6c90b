// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package history persists Alex conversations in a local SQLite database
// so the /history command works across sessions.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joshua-lossner/lossner-term/internal/session"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const schema = `
CREATE TABLE IF NOT EXISTS exchanges (
	id       INTEGER PRIMARY KEY AUTOINCREMENT,
	question TEXT NOT NULL,
	answer   TEXT NOT NULL,
	asked_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_exchanges_asked_at ON exchanges(asked_at);
`

// Store implements session.ExchangeLog on SQLite.
type Store struct {
	db *sql.DB
}

// compile-time interface check
var _ session.ExchangeLog = (*Store)(nil)

// Open creates or opens the exchange database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record stores one question/answer pair.
func (s *Store) Record(ctx context.Context, question, answer string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO exchanges (question, answer, asked_at) VALUES (?, ?, ?)",
		question, answer, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("failed to record exchange: %w", err)
	}
	return nil
}

// Recent returns up to limit exchanges, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]session.Exchange, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT question, answer, asked_at FROM exchanges ORDER BY id DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query exchanges: %w", err)
	}
	defer rows.Close()

	var out []session.Exchange
	for rows.Next() {
		var ex session.Exchange
		var askedAt int64
		if err := rows.Scan(&ex.Question, &ex.Answer, &askedAt); err != nil {
			return nil, fmt.Errorf("failed to scan exchange: %w", err)
		}
		ex.At = time.Unix(askedAt, 0)
		out = append(out, ex)
	}
	return out, rows.Err()
}

// Prune deletes exchanges older than the retention window.
func (s *Store) Prune(ctx context.Context, retain time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retain).Unix()
	res, err := s.db.ExecContext(ctx, "DELETE FROM exchanges WHERE asked_at < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to prune exchanges: %w", err)
	}
	return res.RowsAffected()
}
