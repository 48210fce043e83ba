package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"profix/internal/models"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore keeps the session in a local file so it survives between
// command invocations.
type SQLiteStore struct {
	db *sql.DB
}

const currentSlot = "current"

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create session directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open session database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to session database: %w", err)
	}

	if err := createTables(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func createTables(db *sql.DB) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS sessions (
            slot TEXT PRIMARY KEY,
            id TEXT NOT NULL,
            role TEXT NOT NULL,
            account_id INTEGER NOT NULL,
            name TEXT,
            email TEXT,
            created_at DATETIME NOT NULL
        )`,
	}
	for _, q := range queries {
		if _, err := db.Exec(q); err != nil {
			return fmt.Errorf("error executing query %s: %w", q, err)
		}
	}
	return nil
}

func (s *SQLiteStore) Load(ctx context.Context) (*Session, error) {
	var (
		sess    Session
		account int64
		created string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, role, account_id, name, email, created_at FROM sessions WHERE slot = ?`, currentSlot,
	).Scan(&sess.ID, &sess.Role, &account, &sess.Name, &sess.Email, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query session: %w", err)
	}
	sess.UserID = models.ID(account)
	if sess.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
		return nil, fmt.Errorf("parse session time: %w", err)
	}
	return &sess, nil
}

func (s *SQLiteStore) Save(ctx context.Context, sess *Session) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO sessions (slot, id, role, account_id, name, email, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT(slot) DO UPDATE SET
            id = excluded.id,
            role = excluded.role,
            account_id = excluded.account_id,
            name = excluded.name,
            email = excluded.email,
            created_at = excluded.created_at`,
		currentSlot, sess.ID, sess.Role, int64(sess.UserID), sess.Name, sess.Email,
		sess.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE slot = ?`, currentSlot); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
