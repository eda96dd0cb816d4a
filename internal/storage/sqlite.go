// Package storage provides SQLite-based persistence for game scores and
// per-level progress. Uses the pure-Go modernc.org/sqlite driver to avoid
// CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single high score record.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Score     int
	CreatedAt time.Time
}

// LevelProgress represents the best recorded outcome for one level of a
// campaign game.
type LevelProgress struct {
	GameID    string
	LevelID   string
	Completed bool
	BestMoves int
	BestTime  int // Milliseconds
	UpdatedAt time.Time
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
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_game_id ON scores(game_id);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);

		CREATE TABLE IF NOT EXISTS level_progress (
			game_id TEXT NOT NULL,
			level_id TEXT NOT NULL,
			completed INTEGER NOT NULL DEFAULT 0,
			best_moves INTEGER,
			best_time_ms INTEGER,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (game_id, level_id)
		);
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

// parseTime converts a scanned datetime column, which the driver may hand
// back as either a time.Time or a string.
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

// SaveScore records a new score for the given game.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(gameID string, score int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (game_id, score) VALUES (?, ?)",
		gameID, score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N scores for the given game.
// Results are ordered by score descending.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, score, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest score for the given game.
// Returns 0 if no scores exist.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE game_id = ?",
		gameID,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes all scores for the given game.
func (s *Store) ClearScores(gameID string) error {
	_, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// SaveLevelProgress records a level outcome, keeping the best values: once
// completed a level stays completed, and best moves/time only improve.
func (s *Store) SaveLevelProgress(p LevelProgress) error {
	_, err := s.db.Exec(
		`INSERT INTO level_progress (game_id, level_id, completed, best_moves, best_time_ms, updated_at)
		 VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(game_id, level_id) DO UPDATE SET
			completed = MAX(completed, excluded.completed),
			best_moves = CASE
				WHEN best_moves IS NULL OR (excluded.best_moves IS NOT NULL AND excluded.best_moves < best_moves)
				THEN excluded.best_moves ELSE best_moves END,
			best_time_ms = CASE
				WHEN best_time_ms IS NULL OR (excluded.best_time_ms IS NOT NULL AND excluded.best_time_ms < best_time_ms)
				THEN excluded.best_time_ms ELSE best_time_ms END,
			updated_at = CURRENT_TIMESTAMP`,
		p.GameID, p.LevelID, boolToInt(p.Completed), nullableInt(p.BestMoves), nullableInt(p.BestTime),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save level progress: %w", err)
	}
	return nil
}

// GetLevelProgress retrieves the recorded progress for one level.
// Returns nil when the level has never been played.
func (s *Store) GetLevelProgress(gameID, levelID string) (*LevelProgress, error) {
	var p LevelProgress
	var completed int
	var bestMoves, bestTime sql.NullInt64
	var updatedAt any

	err := s.db.QueryRow(
		`SELECT game_id, level_id, completed, best_moves, best_time_ms, updated_at
		 FROM level_progress
		 WHERE game_id = ? AND level_id = ?`,
		gameID, levelID,
	).Scan(&p.GameID, &p.LevelID, &completed, &bestMoves, &bestTime, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query level progress: %w", err)
	}

	p.Completed = completed != 0
	p.BestMoves = int(bestMoves.Int64)
	p.BestTime = int(bestTime.Int64)
	p.UpdatedAt = parseTime(updatedAt)
	return &p, nil
}

// AllLevelProgress retrieves every recorded level for a game, in level order.
func (s *Store) AllLevelProgress(gameID string) ([]LevelProgress, error) {
	rows, err := s.db.Query(
		`SELECT game_id, level_id, completed, best_moves, best_time_ms, updated_at
		 FROM level_progress
		 WHERE game_id = ?
		 ORDER BY level_id`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query level progress: %w", err)
	}
	defer rows.Close()

	var entries []LevelProgress
	for rows.Next() {
		var p LevelProgress
		var completed int
		var bestMoves, bestTime sql.NullInt64
		var updatedAt any
		if err := rows.Scan(&p.GameID, &p.LevelID, &completed, &bestMoves, &bestTime, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		p.Completed = completed != 0
		p.BestMoves = int(bestMoves.Int64)
		p.BestTime = int(bestTime.Int64)
		p.UpdatedAt = parseTime(updatedAt)
		entries = append(entries, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// nullableInt maps the zero value to NULL so an unplayed metric never
// beats a real one in the keep-best comparison.
func nullableInt(v int) any {
	if v <= 0 {
		return nil
	}
	return v
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0)
		 FROM scores WHERE game_id = ?`,
		gameID,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.TotalScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM scores WHERE game_id = ? ORDER BY created_at DESC LIMIT 1`,
		gameID,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// GetAllGamesStats retrieves statistics for all games that have been played.
func (s *Store) GetAllGamesStats() (map[string]*GameStats, error) {
	rows, err := s.db.Query(
		`SELECT game_id, COUNT(*), MAX(score), AVG(score), SUM(score), MAX(created_at)
		 FROM scores
		 GROUP BY game_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all games stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*GameStats)
	for rows.Next() {
		var gs GameStats
		var lastPlayed any
		if err := rows.Scan(&gs.GameID, &gs.GamesCount, &gs.HighScore, &gs.AvgScore, &gs.TotalScore, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		gs.LastPlayed = parseTime(lastPlayed)
		stats[gs.GameID] = &gs
	}

	return stats, nil
}
