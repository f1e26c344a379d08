// Package storage provides SQLite-based persistence for finished rounds.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/samber/lo"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for round persistence.
type Store struct {
	db *sql.DB
}

// RoundEntry represents a single finished round.
type RoundEntry struct {
	ID        int64
	SessionID string
	Word      string
	Won       bool
	Guesses   int // distinct letters guessed
	Wrong     int // guesses not in the word
	CreatedAt time.Time
}

// RoundStats contains aggregated statistics over all recorded rounds.
type RoundStats struct {
	RoundsPlayed  int
	RoundsWon     int
	CurrentStreak int // consecutive wins ending at the latest round
	BestStreak    int
}

// WordStat counts outcomes per secret word.
type WordStat struct {
	Word   string
	Played int
	Won    int
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
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			word TEXT NOT NULL,
			won INTEGER NOT NULL,
			guesses INTEGER NOT NULL,
			wrong INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_session ON rounds(session_id);
		CREATE INDEX IF NOT EXISTS idx_rounds_word ON rounds(word);
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

// SaveRound records a finished round.
// Returns the ID of the inserted record.
func (s *Store) SaveRound(e RoundEntry) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO rounds (session_id, word, won, guesses, wrong) VALUES (?, ?, ?, ?, ?)",
		e.SessionID, e.Word, e.Won, e.Guesses, e.Wrong,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save round: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRounds retrieves the most recent rounds, newest first.
func (s *Store) RecentRounds(limit int) ([]RoundEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, session_id, word, won, guesses, wrong, created_at
		 FROM rounds
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var entries []RoundEntry
	for rows.Next() {
		var e RoundEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Word, &e.Won, &e.Guesses, &e.Wrong, &createdAt); err != nil {
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

// SessionRounds retrieves the rounds of one session, newest first.
func (s *Store) SessionRounds(sessionID string, limit int) ([]RoundEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, session_id, word, won, guesses, wrong, created_at
		 FROM rounds
		 WHERE session_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		sessionID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query session rounds: %w", err)
	}
	defer rows.Close()

	var entries []RoundEntry
	for rows.Next() {
		var e RoundEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Word, &e.Won, &e.Guesses, &e.Wrong, &createdAt); err != nil {
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

// GetStats retrieves aggregated statistics over all recorded rounds.
// Streaks run in play order, so the outcomes are folded in Go rather
// than aggregated in SQL.
func (s *Store) GetStats() (*RoundStats, error) {
	rows, err := s.db.Query("SELECT won FROM rounds ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query outcomes: %w", err)
	}
	defer rows.Close()

	var outcomes []bool
	for rows.Next() {
		var won bool
		if err := rows.Scan(&won); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		outcomes = append(outcomes, won)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	stats := &RoundStats{
		RoundsPlayed: len(outcomes),
		RoundsWon:    lo.CountBy(outcomes, func(won bool) bool { return won }),
	}

	streak := 0
	for _, won := range outcomes {
		if !won {
			streak = 0
			continue
		}
		streak++
		if streak > stats.BestStreak {
			stats.BestStreak = streak
		}
	}
	stats.CurrentStreak = streak

	return stats, nil
}

// WordStats retrieves per-word outcome counts, most played first.
func (s *Store) WordStats(limit int) ([]WordStat, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT word, COUNT(*), COALESCE(SUM(won), 0)
		 FROM rounds
		 GROUP BY word
		 ORDER BY COUNT(*) DESC, word ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query word stats: %w", err)
	}
	defer rows.Close()

	var stats []WordStat
	for rows.Next() {
		var ws WordStat
		if err := rows.Scan(&ws.Word, &ws.Played, &ws.Won); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		stats = append(stats, ws)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// ClearRounds deletes all recorded rounds.
func (s *Store) ClearRounds() error {
	_, err := s.db.Exec("DELETE FROM rounds")
	if err != nil {
		return fmt.Errorf("storage: cannot clear rounds: %w", err)
	}
	return nil
}

// parseCreatedAt handles the datetime coming back as either time.Time or
// a string, depending on how the row was written.
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
