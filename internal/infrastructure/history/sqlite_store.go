package history

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/doeshing/vyra-go/internal/domain"
	"github.com/doeshing/vyra-go/internal/ports"
)

// SQLiteStore keeps history in a private in-memory SQLite database.
// Nothing touches disk; the data disappears with the process.
type SQLiteStore struct {
	db        *sql.DB
	mu        sync.Mutex
	retention int
}

// NewSQLiteStore opens a fresh in-memory database and creates the schema.
func NewSQLiteStore() (*SQLiteStore, error) {
	dsn := fmt.Sprintf("file:vyra-%s?mode=memory&cache=shared", uuid.NewString())
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// A single connection keeps the in-memory database alive and serializes writers.
	db.SetMaxOpenConns(1)

	store := &SQLiteStore{db: db, retention: domain.HistoryRetention}
	if err := store.init(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init sqlite schema: %w", err)
	}
	return store, nil
}

func (s *SQLiteStore) init() error {
	_, err := s.db.Exec(`
	CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY
	);
	CREATE TABLE IF NOT EXISTS exchanges (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL,
		user_text TEXT NOT NULL,
		assistant_text TEXT NOT NULL,
		timestamp TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_exchanges_session ON exchanges(session_id, id);`)
	return err
}

// Ensure registers the session.
func (s *SQLiteStore) Ensure(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`INSERT OR IGNORE INTO sessions (id) VALUES (?)`, sessionID)
	return err
}

// Append inserts the exchange and prunes everything but the newest entries.
func (s *SQLiteStore) Append(sessionID string, exchange domain.Exchange) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`INSERT OR IGNORE INTO sessions (id) VALUES (?)`, sessionID); err != nil {
		return err
	}
	if _, err := tx.Exec(`INSERT INTO exchanges (session_id, user_text, assistant_text, timestamp) VALUES (?, ?, ?, ?)`,
		sessionID,
		exchange.UserText,
		exchange.AssistantText,
		exchange.Timestamp.Format(time.RFC3339Nano),
	); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM exchanges
		WHERE session_id = ? AND id NOT IN (
			SELECT id FROM exchanges WHERE session_id = ? ORDER BY id DESC LIMIT ?
		)`, sessionID, sessionID, s.retention); err != nil {
		return err
	}
	return tx.Commit()
}

// Recent returns the last n exchanges in insertion order.
func (s *SQLiteStore) Recent(sessionID string, n int) ([]domain.Exchange, error) {
	if n <= 0 {
		return []domain.Exchange{}, nil
	}
	return s.query(`SELECT user_text, assistant_text, timestamp FROM (
		SELECT id, user_text, assistant_text, timestamp FROM exchanges
		WHERE session_id = ? ORDER BY id DESC LIMIT ?
	) ORDER BY id ASC`, sessionID, n)
}

// All returns the whole session history.
func (s *SQLiteStore) All(sessionID string) ([]domain.Exchange, error) {
	return s.query(`SELECT user_text, assistant_text, timestamp FROM exchanges
		WHERE session_id = ? ORDER BY id ASC`, sessionID)
}

// Clear deletes the session's exchanges.
func (s *SQLiteStore) Clear(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`DELETE FROM exchanges WHERE session_id = ?`, sessionID)
	return err
}

// Sessions lists known session identifiers in sorted order.
func (s *SQLiteStore) Sessions() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows, err := s.db.Query(`SELECT id FROM sessions ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Close releases the database; all history is lost.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) query(stmt string, args ...interface{}) ([]domain.Exchange, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows, err := s.db.Query(stmt, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exchanges := []domain.Exchange{}
	for rows.Next() {
		var rec domain.Exchange
		var ts string
		if err := rows.Scan(&rec.UserText, &rec.AssistantText, &ts); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339Nano, ts); err == nil {
			rec.Timestamp = t
		}
		exchanges = append(exchanges, rec)
	}
	return exchanges, rows.Err()
}

var _ ports.HistoryRepository = (*SQLiteStore)(nil)
