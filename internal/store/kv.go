package store

import (
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// KV is a string-keyed slot store backed by SQLite. Each key holds one
// opaque value written whole; there are no partial writes.
type KV struct {
	db *sql.DB
}

// DefaultDBPath returns the default database path (~/.todocal/todocal.db)
func DefaultDBPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".todocal", "todocal.db"), nil
}

// OpenKV opens or creates the slot store at dbPath.
func OpenKV(dbPath string) (*KV, error) {
	if dbPath == "" {
		return nil, errors.New("db path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", sqliteDSN(dbPath))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS slots (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &KV{db: db}, nil
}

// Get returns the value stored under key, and whether the slot exists.
func (kv *KV) Get(key string) (string, bool, error) {
	var value string
	err := kv.db.QueryRow(`SELECT value FROM slots WHERE key = ?;`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Set writes value under key, replacing any previous value.
func (kv *KV) Set(key, value string) error {
	_, err := kv.db.Exec(`INSERT INTO slots (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value;`, key, value)
	return err
}

// Delete removes the slot for key, if present.
func (kv *KV) Delete(key string) error {
	_, err := kv.db.Exec(`DELETE FROM slots WHERE key = ?;`, key)
	return err
}

// Close closes the underlying database.
func (kv *KV) Close() error {
	if kv.db == nil {
		return nil
	}
	return kv.db.Close()
}

func sqliteDSN(path string) string {
	if strings.HasPrefix(path, "file:") {
		return path
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		path = abs
	}
	u := url.URL{
		Scheme: "file",
		Path:   path,
	}
	q := u.Query()
	q.Set("mode", "rwc")
	q.Set("_pragma", "busy_timeout(5000)")
	u.RawQuery = q.Encode()
	return u.String()
}
