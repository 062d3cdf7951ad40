// Package storage provides the persistence layer for the session journal.
// This package implements the repository pattern to keep the domain pure.
// Only the append-only audit trail is stored here; game state itself is
// never saved or loaded.
package storage

import (
	"context"
	"time"
)

// JournalEntry mirrors the domain journal entry for persistence.
// The journal package should NOT import this; use interfaces instead.
type JournalEntry struct {
	ID        string    `json:"id" db:"id"`
	SessionID string    `json:"session_id" db:"session_id"`
	Text      string    `json:"text" db:"text"`
	Type      string    `json:"type" db:"type"`
	GameClock string    `json:"game_clock" db:"game_clock"` // in-game "HH:MM"
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// JournalRepository defines the interface for journal persistence.
type JournalRepository interface {
	// Append adds a new entry to the immutable trail.
	Append(ctx context.Context, entry JournalEntry) error

	// GetBySessionID retrieves all entries for a session in insertion order.
	GetBySessionID(ctx context.Context, sessionID string) ([]JournalEntry, error)

	// GetByType retrieves all entries of one type for a session.
	GetByType(ctx context.Context, sessionID, entryType string) ([]JournalEntry, error)

	// CountBySessionID reports how many entries a session has written.
	CountBySessionID(ctx context.Context, sessionID string) (int, error)
}
