// Package storage provides SQLite-based persistence for match results.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
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

// ResultEntry represents a single finished-match record. Leaderboards are
// kept per player count: a score earned in a 2-player duel is not comparable
// to one from an 8-player brawl.
type ResultEntry struct {
	ID          int64
	PlayerCount int
	Name        string
	Score       float64 // kills per shot, [0, 1]
	Kills       int
	Shots       int
	CreatedAt   time.Time
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
			player_count INTEGER NOT NULL,
			name TEXT NOT NULL,
			score REAL NOT NULL,
			kills INTEGER NOT NULL DEFAULT 0,
			shots INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_players ON results(player_count);
		CREATE INDEX IF NOT EXISTS idx_results_top ON results(player_count, score DESC);
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

// SaveResult records a finished match for the winner.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(playerCount int, name string, score float64, kills, shots int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO results (player_count, name, score, kills, shots) VALUES (?, ?, ?, ?, ?)",
		playerCount, name, score, kills, shots,
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

// TopResults retrieves the top N results for matches of the given size.
// Results are ordered by score descending, kills breaking ties.
func (s *Store) TopResults(playerCount, limit int) ([]ResultEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, player_count, name, score, kills, shots, created_at
		 FROM results
		 WHERE player_count = ?
		 ORDER BY score DESC, kills DESC
		 LIMIT ?`,
		playerCount, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var entries []ResultEntry
	for rows.Next() {
		var e ResultEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.PlayerCount, &e.Name, &e.Score, &e.Kills, &e.Shots, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseCreatedAt(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// BestScore returns the highest score recorded for matches of the given
// size. Returns 0 if no results exist.
func (s *Store) BestScore(playerCount int) (float64, error) {
	var score sql.NullFloat64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM results WHERE player_count = ?",
		playerCount,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return score.Float64, nil
}

// ClearResults deletes all results for matches of the given size.
func (s *Store) ClearResults(playerCount int) error {
	_, err := s.db.Exec("DELETE FROM results WHERE player_count = ?", playerCount)
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// PlayerStats contains aggregated statistics for a named player.
type PlayerStats struct {
	Name       string
	Wins       int
	BestScore  float64
	TotalKills int
	TotalShots int
	LastPlayed time.Time
}

// GetPlayerStats retrieves aggregated statistics for a player across all
// match sizes.
func (s *Store) GetPlayerStats(name string) (*PlayerStats, error) {
	stats := &PlayerStats{Name: name}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(SUM(kills), 0), COALESCE(SUM(shots), 0)
		 FROM results WHERE name = ?`,
		name,
	).Scan(&stats.Wins, &stats.BestScore, &stats.TotalKills, &stats.TotalShots)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get player stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM results WHERE name = ? ORDER BY created_at DESC LIMIT 1`,
		name,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseCreatedAt(lastPlayed)
	}

	return stats, nil
}

// PlayedSizes returns the distinct match sizes that have recorded results,
// ascending.
func (s *Store) PlayedSizes() ([]int, error) {
	rows, err := s.db.Query("SELECT DISTINCT player_count FROM results ORDER BY player_count")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query match sizes: %w", err)
	}
	defer rows.Close()

	var sizes []int
	for rows.Next() {
		var n int
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		sizes = append(sizes, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return sizes, nil
}

// parseCreatedAt handles the driver returning DATETIME columns as either
// time.Time or string.
func parseCreatedAt(v any) time.Time {
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
