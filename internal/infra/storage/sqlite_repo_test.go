package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"
)

func newTestRepo(t *testing.T) *SQLiteJournalRepository {
	t.Helper()
	db, err := InitSQLite(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("InitSQLite failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewSQLiteJournalRepository(db)
}

func testEntry(i int, sessionID, entryType string) JournalEntry {
	return JournalEntry{
		ID:        fmt.Sprintf("entry-%d", i),
		SessionID: sessionID,
		Text:      fmt.Sprintf("note %d", i),
		Type:      entryType,
		GameClock: "06:30",
		CreatedAt: time.Now(),
	}
}

func TestAppendAndGetBySessionID(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := repo.Append(ctx, testEntry(i, "session-a", "info")); err != nil {
			t.Fatalf("Append %d failed: %v", i, err)
		}
	}
	if err := repo.Append(ctx, testEntry(99, "session-b", "info")); err != nil {
		t.Fatalf("Append to other session failed: %v", err)
	}

	entries, err := repo.GetBySessionID(ctx, "session-a")
	if err != nil {
		t.Fatalf("GetBySessionID failed: %v", err)
	}
	if len(entries) != 5 {
		t.Fatalf("Expected 5 entries, got %d", len(entries))
	}
	for i, e := range entries {
		if e.ID != fmt.Sprintf("entry-%d", i) {
			t.Errorf("Expected insertion order preserved at %d, got %s", i, e.ID)
		}
	}
}

func TestGetByType(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	repo.Append(ctx, testEntry(0, "session-a", "info"))
	repo.Append(ctx, testEntry(1, "session-a", "warning"))
	repo.Append(ctx, testEntry(2, "session-a", "warning"))

	warnings, err := repo.GetByType(ctx, "session-a", "warning")
	if err != nil {
		t.Fatalf("GetByType failed: %v", err)
	}
	if len(warnings) != 2 {
		t.Fatalf("Expected 2 warnings, got %d", len(warnings))
	}
	if warnings[0].ID != "entry-1" || warnings[1].ID != "entry-2" {
		t.Errorf("Expected warnings in insertion order, got %s, %s", warnings[0].ID, warnings[1].ID)
	}
}

func TestCountBySessionID(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	count, err := repo.CountBySessionID(ctx, "session-a")
	if err != nil {
		t.Fatalf("CountBySessionID failed: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected 0 for a fresh session, got %d", count)
	}

	for i := 0; i < 3; i++ {
		repo.Append(ctx, testEntry(i, "session-a", "info"))
	}
	count, err = repo.CountBySessionID(ctx, "session-a")
	if err != nil {
		t.Fatalf("CountBySessionID failed: %v", err)
	}
	if count != 3 {
		t.Errorf("Expected 3 entries, got %d", count)
	}
}

func TestDuplicateIDRejected(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.Append(ctx, testEntry(0, "session-a", "info")); err != nil {
		t.Fatalf("First append failed: %v", err)
	}
	if err := repo.Append(ctx, testEntry(0, "session-a", "info")); err == nil {
		t.Errorf("Expected a primary key violation on duplicate id")
	}
}
