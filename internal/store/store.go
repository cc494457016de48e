// Package store provides SQLite-based persistence for generated floors, so
// a run can be replayed or audited later from its seed and room roster.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/duskhall/levelforge/internal/layout"
)

// Store wraps the SQLite connection and provides persistence operations.
type Store struct {
	db *sql.DB
}

// RunSummary is one recorded generation run.
type RunSummary struct {
	ID           int64
	Seed         int64
	Width        int
	Height       int
	RoomCount    int
	WarningCount int
	CreatedAt    time.Time
}

// RunRoom is one room of a recorded run.
type RunRoom struct {
	RoomID     int
	Type       string
	Access     string
	X, Y, W, H int
	Distance   int
	OnMainPath bool
	HasKey     bool
}

// Open opens or creates the SQLite database at the given path.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// Enable WAL mode for better concurrent access
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	// Set busy timeout to wait for locks instead of immediately failing
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	s := &Store{db: db}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			seed INTEGER NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			room_count INTEGER NOT NULL,
			warning_count INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS run_rooms (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			room_id INTEGER NOT NULL,
			type TEXT NOT NULL,
			access TEXT NOT NULL,
			x INTEGER NOT NULL,
			y INTEGER NOT NULL,
			w INTEGER NOT NULL,
			h INTEGER NOT NULL,
			distance INTEGER NOT NULL,
			on_main_path INTEGER NOT NULL DEFAULT 0,
			has_key INTEGER NOT NULL DEFAULT 0
		)`,

		`CREATE TABLE IF NOT EXISTS run_warnings (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			code TEXT NOT NULL,
			message TEXT NOT NULL
		)`,

		`CREATE INDEX IF NOT EXISTS idx_run_rooms_run ON run_rooms(run_id)`,
		`CREATE INDEX IF NOT EXISTS idx_run_warnings_run ON run_warnings(run_id)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}

// RecordRun persists one generated floor and returns the new run id.
// The run, its rooms, and its warnings are written in one transaction.
func (s *Store) RecordRun(lv *layout.Level) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`INSERT INTO runs (seed, width, height, room_count, warning_count) VALUES (?, ?, ?, ?, ?)`,
		lv.Seed, lv.Width, lv.Height, len(lv.Rooms), len(lv.Warnings),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run id: %w", err)
	}

	roomStmt, err := tx.Prepare(`INSERT INTO run_rooms
		(run_id, room_id, type, access, x, y, w, h, distance, on_main_path, has_key)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare room insert: %w", err)
	}
	defer roomStmt.Close()

	for _, r := range lv.Rooms {
		_, err := roomStmt.Exec(runID, r.ID, r.Type.String(), r.Access.String(),
			r.Bounds.X, r.Bounds.Y, r.Bounds.W, r.Bounds.H,
			r.Distance, boolToInt(r.OnMainPath), boolToInt(r.HasKey))
		if err != nil {
			return 0, fmt.Errorf("failed to insert room %d: %w", r.ID, err)
		}
	}

	for _, w := range lv.Warnings {
		_, err := tx.Exec(`INSERT INTO run_warnings (run_id, code, message) VALUES (?, ?, ?)`,
			runID, w.Code.String(), w.Message)
		if err != nil {
			return 0, fmt.Errorf("failed to insert warning: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit run: %w", err)
	}
	return runID, nil
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(limit int) ([]RunSummary, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, seed, width, height, room_count, warning_count, created_at
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		var r RunSummary
		if err := rows.Scan(&r.ID, &r.Seed, &r.Width, &r.Height,
			&r.RoomCount, &r.WarningCount, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// RunRooms returns the rooms of one recorded run in room id order.
func (s *Store) RunRooms(runID int64) ([]RunRoom, error) {
	rows, err := s.db.Query(
		`SELECT room_id, type, access, x, y, w, h, distance, on_main_path, has_key
		 FROM run_rooms WHERE run_id = ? ORDER BY room_id`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query rooms: %w", err)
	}
	defer rows.Close()

	var out []RunRoom
	for rows.Next() {
		var r RunRoom
		var onPath, hasKey int
		if err := rows.Scan(&r.RoomID, &r.Type, &r.Access,
			&r.X, &r.Y, &r.W, &r.H, &r.Distance, &onPath, &hasKey); err != nil {
			return nil, fmt.Errorf("failed to scan room: %w", err)
		}
		r.OnMainPath = onPath != 0
		r.HasKey = hasKey != 0
		out = append(out, r)
	}
	return out, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
