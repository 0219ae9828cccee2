// Package storage provides SQLite-based persistence for finished game
// results. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies. Only outcomes are recorded; a game in progress is
// never persisted.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db *sql.DB
}

// GameResult is one finished game.
type GameResult struct {
	ID           int64
	Difficulty   string
	Won          bool
	DurationSecs int
	CellsDug     int
	FlagsPlaced  int
	CreatedAt    time.Time
}

// DifficultyStats aggregates results for one difficulty.
type DifficultyStats struct {
	Difficulty   string
	Games        int
	Wins         int
	BestDuration int // Fastest winning game in seconds; 0 if never won
}

// WinRate returns the fraction of games won, 0 when no games exist.
func (s DifficultyStats) WinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Games)
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

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			difficulty TEXT NOT NULL,
			won INTEGER NOT NULL,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			cells_dug INTEGER NOT NULL DEFAULT 0,
			flags_placed INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_difficulty ON results(difficulty);
		CREATE INDEX IF NOT EXISTS idx_results_wins ON results(difficulty, won, duration_secs);
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

// SaveResult records a finished game.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(res GameResult) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO results (difficulty, won, duration_secs, cells_dug, flags_placed)
		 VALUES (?, ?, ?, ?, ?)`,
		res.Difficulty, res.Won, res.DurationSecs, res.CellsDug, res.FlagsPlaced,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentResults retrieves the most recent results, newest first.
// An empty difficulty returns results for all difficulties.
func (s *Store) RecentResults(difficulty string, limit int) ([]GameResult, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `SELECT id, difficulty, won, duration_secs, cells_dug, flags_placed, created_at
		 FROM results`
	args := []any{}
	if difficulty != "" {
		query += " WHERE difficulty = ?"
		args = append(args, difficulty)
	}
	query += " ORDER BY created_at DESC, id DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []GameResult
	for rows.Next() {
		var r GameResult
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Difficulty, &r.Won, &r.DurationSecs, &r.CellsDug, &r.FlagsPlaced, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			r.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				r.CreatedAt = parsed
			}
		}
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// Stats retrieves aggregated statistics for one difficulty.
func (s *Store) Stats(difficulty string) (*DifficultyStats, error) {
	stats := &DifficultyStats{Difficulty: difficulty}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(won), 0)
		 FROM results WHERE difficulty = ?`,
		difficulty,
	).Scan(&stats.Games, &stats.Wins)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var best sql.NullInt64
	err = s.db.QueryRow(
		`SELECT MIN(duration_secs) FROM results WHERE difficulty = ? AND won = 1`,
		difficulty,
	).Scan(&best)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get best duration: %w", err)
	}
	if best.Valid {
		stats.BestDuration = int(best.Int64)
	}

	return stats, nil
}

// AllStats retrieves statistics for every difficulty that has results,
// ordered by difficulty name.
func (s *Store) AllStats() ([]DifficultyStats, error) {
	rows, err := s.db.Query(
		`SELECT difficulty, COUNT(*), COALESCE(SUM(won), 0),
		        COALESCE(MIN(CASE WHEN won = 1 THEN duration_secs END), 0)
		 FROM results
		 GROUP BY difficulty
		 ORDER BY difficulty`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all stats: %w", err)
	}
	defer rows.Close()

	var all []DifficultyStats
	for rows.Next() {
		var st DifficultyStats
		if err := rows.Scan(&st.Difficulty, &st.Games, &st.Wins, &st.BestDuration); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		all = append(all, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return all, nil
}
