// Package journal provides the append-only narration log of a session.
// Every user-visible effect, warning, and failure is communicated through
// journal entries; they are never mutated or removed once written.
package journal

import (
	"github.com/google/uuid"
)

// EntryType classifies an entry for presentation purposes.
type EntryType string

const (
	TypeInfo    EntryType = "info"
	TypeSuccess EntryType = "success"
	TypeWarning EntryType = "warning"
	TypeError   EntryType = "error"
	TypeEvent   EntryType = "event"
)

// Entry is one immutable narration record.
type Entry struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Type      EntryType `json:"type"`
	Timestamp string    `json:"timestamp"` // in-game clock, e.g. "07:05"
}

// Note is an entry before the engine stamps it: the interpreter produces
// notes, the engine assigns ids and the in-game timestamp.
type Note struct {
	Text string
	Type EntryType
}

// Infof-style constructors keep call sites short.

func Info(text string) Note    { return Note{Text: text, Type: TypeInfo} }
func Success(text string) Note { return Note{Text: text, Type: TypeSuccess} }
func Warning(text string) Note { return Note{Text: text, Type: TypeWarning} }
func Error(text string) Note   { return Note{Text: text, Type: TypeError} }
func Event(text string) Note   { return Note{Text: text, Type: TypeEvent} }

// Stamp turns a note into a full entry with a fresh opaque id.
func Stamp(n Note, timestamp string) Entry {
	return Entry{
		ID:        uuid.NewString(),
		Text:      n.Text,
		Type:      n.Type,
		Timestamp: timestamp,
	}
}

// Persister defines how an entry is durably stored. The engine writes
// through to it after appending; persistence failures never block play.
type Persister interface {
	Append(entry Entry) error
}
