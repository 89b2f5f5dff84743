// Package storage provides SQLite-based persistence for board presets
// and run records. Uses the pure-Go modernc.org/sqlite driver to avoid
// CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrPresetNotFound is returned when no preset with the given name exists.
var ErrPresetNotFound = errors.New("storage: preset not found")

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Preset is a saved board: model, shape, edge policy, model parameters
// and the run-length encoded cell data. Names are unique; saving under
// an existing name replaces the preset.
type Preset struct {
	ID         int64
	Name       string
	Model      string
	Rows       int
	Cols       int
	Edge       string
	ParamsJSON string
	GridRLE    string
	CreatedAt  time.Time
}

// RunRecord is a snapshot of a finished session: how far it ran and
// the final statistics blob for that model.
type RunRecord struct {
	ID        int64
	Model     string
	Rows      int
	Cols      int
	Ticks     uint64
	StatsJSON string
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS presets (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			model TEXT NOT NULL,
			rows INTEGER NOT NULL,
			cols INTEGER NOT NULL,
			edge TEXT NOT NULL,
			params_json TEXT NOT NULL DEFAULT '{}',
			grid_rle TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_presets_model ON presets(model);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			model TEXT NOT NULL,
			rows INTEGER NOT NULL,
			cols INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			stats_json TEXT NOT NULL DEFAULT '{}',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_model ON runs(model);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SavePreset stores a preset, replacing any existing preset with the
// same name. Returns the ID of the stored record.
func (s *Store) SavePreset(p Preset) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO presets (name, model, rows, cols, edge, params_json, grid_rle)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET
			model = excluded.model,
			rows = excluded.rows,
			cols = excluded.cols,
			edge = excluded.edge,
			params_json = excluded.params_json,
			grid_rle = excluded.grid_rle,
			created_at = CURRENT_TIMESTAMP`,
		p.Name, p.Model, p.Rows, p.Cols, p.Edge, p.ParamsJSON, p.GridRLE,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save preset: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// PresetByName retrieves the preset with the given name.
func (s *Store) PresetByName(name string) (*Preset, error) {
	var p Preset
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, name, model, rows, cols, edge, params_json, grid_rle, created_at
		 FROM presets
		 WHERE name = ?`,
		name,
	).Scan(&p.ID, &p.Name, &p.Model, &p.Rows, &p.Cols, &p.Edge, &p.ParamsJSON, &p.GridRLE, &createdAt)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %q", ErrPresetNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query preset: %w", err)
	}

	p.CreatedAt = parseTimestamp(createdAt)
	return &p, nil
}

// ListPresets retrieves all presets, newest first. An empty model
// string lists every model.
func (s *Store) ListPresets(model string) ([]Preset, error) {
	query := `SELECT id, name, model, rows, cols, edge, params_json, grid_rle, created_at
		 FROM presets`
	args := []any{}
	if model != "" {
		query += ` WHERE model = ?`
		args = append(args, model)
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query presets: %w", err)
	}
	defer rows.Close()

	var presets []Preset
	for rows.Next() {
		var p Preset
		var createdAt any
		if err := rows.Scan(&p.ID, &p.Name, &p.Model, &p.Rows, &p.Cols, &p.Edge, &p.ParamsJSON, &p.GridRLE, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		p.CreatedAt = parseTimestamp(createdAt)
		presets = append(presets, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return presets, nil
}

// DeletePreset removes the preset with the given name.
func (s *Store) DeletePreset(name string) error {
	result, err := s.db.Exec("DELETE FROM presets WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("storage: cannot delete preset: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot count deleted rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", ErrPresetNotFound, name)
	}
	return nil
}

// SaveRun records a finished session. Returns the ID of the inserted
// record.
func (s *Store) SaveRun(r RunRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs (model, rows, cols, ticks, stats_json)
		 VALUES (?, ?, ?, ?, ?)`,
		r.Model, r.Rows, r.Cols, r.Ticks, r.StatsJSON,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRuns retrieves the most recent run records, newest first. An
// empty model string lists every model.
func (s *Store) RecentRuns(model string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `SELECT id, model, rows, cols, ticks, stats_json, created_at
		 FROM runs`
	args := []any{}
	if model != "" {
		query += ` WHERE model = ?`
		args = append(args, model)
	}
	query += ` ORDER BY id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var r RunRecord
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Model, &r.Rows, &r.Cols, &r.Ticks, &r.StatsJSON, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTimestamp(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// ClearRuns deletes run records. An empty model string clears every
// model.
func (s *Store) ClearRuns(model string) error {
	var err error
	if model == "" {
		_, err = s.db.Exec("DELETE FROM runs")
	} else {
		_, err = s.db.Exec("DELETE FROM runs WHERE model = ?", model)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// parseTimestamp handles both time.Time and string values the driver
// may return for DATETIME columns.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
