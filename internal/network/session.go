package network

import (
	"sync"
	"time"

	"github.com/Future-R/PrivateDerby/internal/engine"
	"github.com/Future-R/PrivateDerby/internal/platform/metrics"
)

// Session serializes access to the Engine for concurrent transports.
// The simulation itself is strictly single-writer; the mutex only exists so
// the websocket and HTTP surfaces cannot interleave a dispatch with a read.
type Session struct {
	mu  sync.Mutex
	eng *engine.Engine
}

// NewSession wraps an engine for transport use.
func NewSession(eng *engine.Engine) *Session {
	return &Session{eng: eng}
}

// Snapshot returns the current state view.
func (s *Session) Snapshot() engine.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eng.Snapshot()
}

// Actions returns the current legal action list.
func (s *Session) Actions() []engine.Action {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eng.Actions()
}

// Dispatch runs one action to completion and returns the new snapshot.
func (s *Session) Dispatch(actionID string) (engine.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	snap, err := s.eng.Dispatch(actionID)
	metrics.Get().RecordDispatch(time.Since(start), err != nil)
	return snap, err
}
