// Package transcache persists full-file recognition results in SQLite so
// repeated sync runs against the same media skip the expensive
// recognition step.
package transcache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"anchor/internal/transcript"
)

const (
	dbFileName   = "transcripts.db"
	lockFileName = "transcripts.lock"
)

// Key identifies one cached transcript. The same file recognized with a
// different model or language is a different entry.
type Key struct {
	Fingerprint string
	Model       string
	Language    string
}

// Store manages transcript persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	dir  string
	path string
}

// Open initializes or connects to the cache database in dir and applies
// the schema.
func Open(dir string) (*Store, error) {
	dbPath := filepath.Join(dir, dbFileName)
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, dir: dir, path: dbPath}
	if err := store.applySchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *Store) applySchema(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS transcripts (
    fingerprint   TEXT NOT NULL,
    model         TEXT NOT NULL,
    language      TEXT NOT NULL,
    segments_json TEXT NOT NULL,
    created_at    TEXT NOT NULL,
    PRIMARY KEY (fingerprint, model, language)
)`
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Get returns the cached segments for key, or ok=false on a miss.
func (s *Store) Get(ctx context.Context, key Key) ([]transcript.Segment, bool, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT segments_json FROM transcripts WHERE fingerprint = ? AND model = ? AND language = ?`,
		key.Fingerprint, key.Model, key.Language,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("query transcript: %w", err)
	}

	var segs []transcript.Segment
	if err := json.Unmarshal([]byte(payload), &segs); err != nil {
		return nil, false, fmt.Errorf("decode cached transcript: %w", err)
	}
	return segs, true, nil
}

// Put stores segments under key, replacing any previous entry.
func (s *Store) Put(ctx context.Context, key Key, segs []transcript.Segment) error {
	payload, err := json.Marshal(segs)
	if err != nil {
		return fmt.Errorf("encode transcript: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO transcripts (fingerprint, model, language, segments_json, created_at)
         VALUES (?, ?, ?, ?, ?)`,
		key.Fingerprint, key.Model, key.Language, string(payload),
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert transcript: %w", err)
	}
	return nil
}

// Prune deletes entries older than maxAge and returns the number removed.
// A file lock serializes pruning across processes sharing the cache.
func (s *Store) Prune(ctx context.Context, maxAge time.Duration) (int64, error) {
	lock := flock.New(filepath.Join(s.dir, lockFileName))
	locked, err := lock.TryLock()
	if err != nil {
		return 0, fmt.Errorf("acquire cache lock: %w", err)
	}
	if !locked {
		// Another process is already pruning.
		return 0, nil
	}
	defer func() { _ = lock.Unlock() }()

	cutoff := time.Now().UTC().Add(-maxAge).Format(time.RFC3339Nano)
	res, err := s.db.ExecContext(ctx, `DELETE FROM transcripts WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("prune transcripts: %w", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return removed, nil
}
