package flow

import "sync"

// SessionStore is the process-wide mapping from user id to session.
//
// It is constructed once per process and passed into the Engine rather than
// living as package state, so tests get a fresh store each. The Engine is
// the sole mutator.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[int64]*Session
}

// NewSessionStore returns an empty store.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[int64]*Session)}
}

// Get returns the session for userID, or (nil, false).
func (st *SessionStore) Get(userID int64) (*Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[userID]
	return s, ok
}

// Put stores (or replaces) the session for userID.
func (st *SessionStore) Put(userID int64, s *Session) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[userID] = s
}

// Delete removes the session for userID, if any.
func (st *SessionStore) Delete(userID int64) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, userID)
}

// Len returns the number of active sessions (used by /health).
func (st *SessionStore) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}
