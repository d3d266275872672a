// Package storage provides SQLite-based persistence for finished runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run records.
type Store struct {
	db *sql.DB
}

// Run is one finished run: a game over or a clear of the last stage.
type Run struct {
	ID        string
	GameID    string
	Player    string
	Stage     int  // 1-based stage reached
	Cleared   bool // every stage was cleared
	Frames    int  // frames spent playing
	HP        int  // hit points left at the end
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
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			game_id TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			stage INTEGER NOT NULL,
			cleared INTEGER NOT NULL DEFAULT 0,
			frames INTEGER NOT NULL,
			hp INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_game_id ON runs(game_id);
		CREATE INDEX IF NOT EXISTS idx_runs_best ON runs(game_id, cleared DESC, stage DESC, frames ASC);
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

// SaveRun records a finished run. An empty ID is filled with a new UUID.
// Returns the ID of the stored record.
func (s *Store) SaveRun(run Run) (string, error) {
	if run.GameID == "" {
		return "", fmt.Errorf("storage: cannot save run: empty game id")
	}
	if run.ID == "" {
		run.ID = uuid.NewString()
	}

	_, err := s.db.Exec(
		`INSERT INTO runs (id, game_id, player, stage, cleared, frames, hp)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.GameID, run.Player, run.Stage, run.Cleared, run.Frames, run.HP,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return run.ID, nil
}

// TopRuns retrieves the best N runs for the given game: cleared runs
// first, then the furthest stage, then the fewest frames.
func (s *Store) TopRuns(gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, player, stage, cleared, frames, hp, created_at
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY cleared DESC, stage DESC, frames ASC, created_at ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

// PlayerRuns retrieves a player's most recent runs.
func (s *Store) PlayerRuns(gameID, player string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, player, stage, cleared, frames, hp, created_at
		 FROM runs
		 WHERE game_id = ? AND player = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		gameID, player, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query player runs: %w", err)
	}
	return scanRuns(rows)
}

// BestRun returns the best run for the given game, or nil when none exist.
func (s *Store) BestRun(gameID string) (*Run, error) {
	runs, err := s.TopRuns(gameID, 1)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}
	return &runs[0], nil
}

// ClearRuns deletes all runs for the given game.
func (s *Store) ClearRuns(gameID string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// Stats contains aggregated statistics for a game.
type Stats struct {
	GameID     string
	Runs       int
	Clears     int
	BestStage  int
	FastestWin int // fewest frames over cleared runs, 0 when never cleared
	LastPlayed time.Time
}

// GameStats retrieves aggregated statistics for a specific game.
func (s *Store) GameStats(gameID string) (*Stats, error) {
	stats := &Stats{GameID: gameID}

	var fastest sql.NullInt64
	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(cleared), 0), COALESCE(MAX(stage), 0),
		        MIN(CASE WHEN cleared = 1 THEN frames END), MAX(created_at)
		 FROM runs WHERE game_id = ?`,
		gameID,
	).Scan(&stats.Runs, &stats.Clears, &stats.BestStage, &fastest, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	if fastest.Valid {
		stats.FastestWin = int(fastest.Int64)
	}
	stats.LastPlayed = parseTime(lastPlayed)
	return stats, nil
}

func scanRuns(rows *sql.Rows) ([]Run, error) {
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(&r.ID, &r.GameID, &r.Player, &r.Stage, &r.Cleared, &r.Frames, &r.HP, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
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
