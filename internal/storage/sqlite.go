// Package storage provides a SQLite-based journal of solve runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
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

// Outcome values stored in the journal.
const (
	OutcomeFound     = "found"
	OutcomeExhausted = "exhausted"
)

// Store manages the SQLite database connection for the run journal.
type Store struct {
	db *sql.DB
}

// Run represents a single journaled search.
type Run struct {
	ID        int64
	MazeID    string
	Wind      string
	Strategy  string
	Outcome   string // OutcomeFound or OutcomeExhausted
	Cost      int    // 0 when exhausted
	PathLen   int
	Expanded  int
	Created   int
	CreatedAt time.Time
}

// Found reports whether the run reached the finish.
func (r Run) Found() bool {
	return r.Outcome == OutcomeFound
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
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			maze_id TEXT NOT NULL,
			wind TEXT NOT NULL,
			strategy TEXT NOT NULL,
			outcome TEXT NOT NULL,
			cost INTEGER NOT NULL DEFAULT 0,
			path_len INTEGER NOT NULL DEFAULT 0,
			expanded INTEGER NOT NULL DEFAULT 0,
			created INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_maze_id ON runs(maze_id);
		CREATE INDEX IF NOT EXISTS idx_runs_best ON runs(maze_id, outcome, wind, cost);
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

// SaveRun records a run. Returns the ID of the inserted record.
func (s *Store) SaveRun(r Run) (int64, error) {
	if r.MazeID == "" {
		return 0, errors.New("storage: run has no maze id")
	}
	if r.Outcome != OutcomeFound && r.Outcome != OutcomeExhausted {
		return 0, fmt.Errorf("storage: unknown outcome %q", r.Outcome)
	}

	result, err := s.db.Exec(
		`INSERT INTO runs (maze_id, wind, strategy, outcome, cost, path_len, expanded, created)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.MazeID, r.Wind, r.Strategy, r.Outcome, r.Cost, r.PathLen, r.Expanded, r.Created,
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

const runColumns = `id, maze_id, wind, strategy, outcome, cost, path_len, expanded, created, created_at`

// RecentRuns retrieves the most recent runs for the given maze, newest first.
func (s *Store) RecentRuns(mazeID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE maze_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		mazeID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

// BestRuns retrieves the cheapest successful runs for the given maze under
// the given wind. An empty wind matches every wind.
// Ties are broken by fewer expansions, then by age.
func (s *Store) BestRuns(mazeID, wind string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE maze_id = ? AND outcome = ? AND (? = '' OR wind = ?)
		 ORDER BY cost ASC, expanded ASC, id ASC
		 LIMIT ?`,
		mazeID, OutcomeFound, wind, wind, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

func scanRuns(rows *sql.Rows) ([]Run, error) {
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(&r.ID, &r.MazeID, &r.Wind, &r.Strategy, &r.Outcome,
			&r.Cost, &r.PathLen, &r.Expanded, &r.Created, &createdAt); err != nil {
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

// BestCosts returns the lowest cost of any successful run for the maze,
// keyed by wind. Winds without a successful run are absent.
func (s *Store) BestCosts(mazeID string) (map[string]int, error) {
	rows, err := s.db.Query(
		`SELECT wind, MIN(cost)
		 FROM runs
		 WHERE maze_id = ? AND outcome = ?
		 GROUP BY wind`,
		mazeID, OutcomeFound,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best costs: %w", err)
	}
	defer rows.Close()

	best := make(map[string]int)
	for rows.Next() {
		var wind string
		var cost int
		if err := rows.Scan(&wind, &cost); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		best[wind] = cost
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return best, nil
}

// ClearRuns deletes all runs for the given maze.
func (s *Store) ClearRuns(mazeID string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE maze_id = ?", mazeID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// MazeStats contains aggregated statistics for a maze.
type MazeStats struct {
	MazeID      string
	Runs        int
	Solved      int
	AvgExpanded float64
	LastRun     time.Time
}

// GetMazeStats retrieves aggregated statistics for a specific maze.
func (s *Store) GetMazeStats(mazeID string) (*MazeStats, error) {
	stats := &MazeStats{MazeID: mazeID}

	var lastRun any
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(AVG(expanded), 0),
		        MAX(created_at)
		 FROM runs WHERE maze_id = ?`,
		OutcomeFound, mazeID,
	).Scan(&stats.Runs, &stats.Solved, &stats.AvgExpanded, &lastRun)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get maze stats: %w", err)
	}
	stats.LastRun = parseTime(lastRun)

	return stats, nil
}

// GetAllMazeStats retrieves statistics for every maze in the journal.
func (s *Store) GetAllMazeStats() (map[string]*MazeStats, error) {
	rows, err := s.db.Query(
		`SELECT maze_id,
		        COUNT(*),
		        SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END),
		        AVG(expanded),
		        MAX(created_at)
		 FROM runs
		 GROUP BY maze_id`,
		OutcomeFound,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all maze stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*MazeStats)
	for rows.Next() {
		var ms MazeStats
		var lastRun any
		if err := rows.Scan(&ms.MazeID, &ms.Runs, &ms.Solved, &ms.AvgExpanded, &lastRun); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ms.LastRun = parseTime(lastRun)
		stats[ms.MazeID] = &ms
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
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
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
