package session

import (
	"sync"

	"library-assistant/internal/model"
)

// MaxHistoryLength caps the number of turns kept per in-memory session.
const MaxHistoryLength = 10

// Store holds the in-memory conversation window for each session id.
// It is process-lifetime only: nothing here survives a restart, and
// nothing here does I/O. Appends for the same session id serialize on
// a per-session mutex; different session ids never contend.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*entry
}

type entry struct {
	mu    sync.Mutex
	turns []model.Turn
}

// New creates an empty session store.
func New() *Store {
	return &Store{
		sessions: make(map[string]*entry),
	}
}

// Get returns a copy of the session's turns in insertion order.
// Unknown ids yield an empty slice, never an error.
func (s *Store) Get(sessionID string) []model.Turn {
	s.mu.RLock()
	e, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]model.Turn, len(e.turns))
	copy(out, e.turns)
	return out
}

// Append adds turns at the tail, evicting the oldest turns when the
// window would exceed MaxHistoryLength. All turns of one call land
// under a single lock acquisition, so a reader never observes a
// partially appended pair. The cap holds after every append, never
// only eventually.
func (s *Store) Append(sessionID string, turns ...model.Turn) {
	if len(turns) == 0 {
		return
	}
	e := s.getOrCreate(sessionID)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.turns = append(e.turns, turns...)
	if len(e.turns) > MaxHistoryLength {
		e.turns = e.turns[len(e.turns)-MaxHistoryLength:]
	}
}

// Delete removes the session entirely. Absent ids are a no-op. A
// message edit also lands here: the window is rebuilt from retention
// on the next request rather than patched in place.
func (s *Store) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

// Len reports the current turn count for a session id.
func (s *Store) Len(sessionID string) int {
	s.mu.RLock()
	e, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return 0
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.turns)
}

func (s *Store) getOrCreate(sessionID string) *entry {
	s.mu.RLock()
	e, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if ok {
		return e
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok = s.sessions[sessionID]; ok {
		return e
	}
	e = &entry{}
	s.sessions[sessionID] = e
	return e
}
