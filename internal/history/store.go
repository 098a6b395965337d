package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
    id            TEXT PRIMARY KEY,
    source_path   TEXT NOT NULL,
    output_path   TEXT NOT NULL,
    model         TEXT NOT NULL,
    device        TEXT NOT NULL,
    language      TEXT NOT NULL DEFAULT '',
    audio_track   INTEGER,
    media_seconds REAL NOT NULL DEFAULT 0,
    elapsed_ms    INTEGER NOT NULL DEFAULT 0,
    created_at    TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs (created_at DESC);
`

// Run is one completed transcription.
type Run struct {
	ID           string
	SourcePath   string
	OutputPath   string
	Model        string
	Device       string
	Language     string
	AudioTrack   *int
	MediaSeconds float64
	Elapsed      time.Duration
	CreatedAt    time.Time
}

// Store manages run history persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the history database and applies the schema.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("ensure history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
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

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Record inserts a completed run.
func (s *Store) Record(ctx context.Context, run Run) error {
	createdAt := run.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	var track sql.NullInt64
	if run.AudioTrack != nil {
		track = sql.NullInt64{Int64: int64(*run.AudioTrack), Valid: true}
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, source_path, output_path, model, device, language, audio_track, media_seconds, elapsed_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.SourcePath, run.OutputPath, run.Model, run.Device, run.Language,
		track, run.MediaSeconds, run.Elapsed.Milliseconds(), createdAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}

// Recent returns the most recent runs, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, source_path, output_path, model, device, language, audio_track, media_seconds, elapsed_ms, created_at
		 FROM runs ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			run       Run
			track     sql.NullInt64
			elapsedMS int64
			createdAt string
		)
		if err := rows.Scan(&run.ID, &run.SourcePath, &run.OutputPath, &run.Model, &run.Device,
			&run.Language, &track, &run.MediaSeconds, &elapsedMS, &createdAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if track.Valid {
			value := int(track.Int64)
			run.AudioTrack = &value
		}
		run.Elapsed = time.Duration(elapsedMS) * time.Millisecond
		if parsed, parseErr := time.Parse(time.RFC3339, createdAt); parseErr == nil {
			run.CreatedAt = parsed
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
