// Package storage provides SQLite-based persistence for finished runs.
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

// Run modes stored alongside each result.
const (
	ModeSolo = "solo"
	ModeDuet = "duet"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// RunEntry is one finished playthrough.
type RunEntry struct {
	ID            int64
	Player        string
	Score         int
	Rank          string
	LevelsCleared int
	Mode          string
	CreatedAt     time.Time
}

// DuetMatchEntry is the shared outcome of one two-player session.
type DuetMatchEntry struct {
	ID        int64
	Room      string
	Player1   string
	Player2   string
	Score1    int
	Score2    int
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path. It creates
// the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
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
			player TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL,
			rank_title TEXT NOT NULL,
			levels_cleared INTEGER NOT NULL DEFAULT 0,
			mode TEXT NOT NULL DEFAULT 'solo',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(score DESC);
		CREATE INDEX IF NOT EXISTS idx_runs_mode ON runs(mode);

		CREATE TABLE IF NOT EXISTS duet_matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			room TEXT NOT NULL,
			player1 TEXT NOT NULL,
			player2 TEXT NOT NULL,
			score1 INTEGER NOT NULL DEFAULT 0,
			score2 INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_duet_matches_room ON duet_matches(room);
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

// SaveRun records a finished playthrough. Returns the inserted row ID.
func (s *Store) SaveRun(player string, score int, rank string, levelsCleared int, mode string) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO runs (player, score, rank_title, levels_cleared, mode) VALUES (?, ?, ?, ?, ?)",
		player, score, rank, levelsCleared, mode,
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

// TopRuns retrieves the best runs, ordered by score descending with the
// newest first among ties.
func (s *Store) TopRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(
		"SELECT id, player, score, rank_title, levels_cleared, mode, created_at FROM runs ORDER BY score DESC, created_at DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		if err := rows.Scan(&e.ID, &e.Player, &e.Score, &e.Rank, &e.LevelsCleared, &e.Mode, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan run: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: run iteration failed: %w", err)
	}
	return entries, nil
}

// SaveDuetMatch records the outcome of a two-player session.
func (s *Store) SaveDuetMatch(room, player1, player2 string, score1, score2 int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO duet_matches (room, player1, player2, score1, score2) VALUES (?, ?, ?, ?, ?)",
		room, player1, player2, score1, score2,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save duet match: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecentDuetMatches retrieves the latest duet outcomes, newest first.
func (s *Store) RecentDuetMatches(limit int) ([]DuetMatchEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(
		"SELECT id, room, player1, player2, score1, score2, created_at FROM duet_matches ORDER BY created_at DESC, id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query duet matches: %w", err)
	}
	defer rows.Close()

	var entries []DuetMatchEntry
	for rows.Next() {
		var e DuetMatchEntry
		if err := rows.Scan(&e.ID, &e.Room, &e.Player1, &e.Player2, &e.Score1, &e.Score2, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan duet match: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: duet match iteration failed: %w", err)
	}
	return entries, nil
}
