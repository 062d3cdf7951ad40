package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// SQLiteJournalRepository implements JournalRepository for SQLite.
type SQLiteJournalRepository struct {
	db *sql.DB
}

func NewSQLiteJournalRepository(db *sql.DB) *SQLiteJournalRepository {
	return &SQLiteJournalRepository{db: db}
}

func (r *SQLiteJournalRepository) Append(ctx context.Context, entry JournalEntry) error {
	query := `
		INSERT INTO journal (id, session_id, text, type, game_clock, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		entry.ID, entry.SessionID, entry.Text, entry.Type, entry.GameClock, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to append journal entry: %w", err)
	}
	return nil
}

func (r *SQLiteJournalRepository) getMany(ctx context.Context, query string, args ...interface{}) ([]JournalEntry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []JournalEntry
	for rows.Next() {
		var e JournalEntry
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Text, &e.Type, &e.GameClock, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *SQLiteJournalRepository) GetBySessionID(ctx context.Context, sessionID string) ([]JournalEntry, error) {
	query := `SELECT id, session_id, text, type, game_clock, created_at FROM journal WHERE session_id = ? ORDER BY rowid ASC`
	return r.getMany(ctx, query, sessionID)
}

func (r *SQLiteJournalRepository) GetByType(ctx context.Context, sessionID, entryType string) ([]JournalEntry, error) {
	query := `SELECT id, session_id, text, type, game_clock, created_at FROM journal WHERE session_id = ? AND type = ? ORDER BY rowid ASC`
	return r.getMany(ctx, query, sessionID, entryType)
}

func (r *SQLiteJournalRepository) CountBySessionID(ctx context.Context, sessionID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM journal WHERE session_id = ?`, sessionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count journal entries: %w", err)
	}
	return count, nil
}
