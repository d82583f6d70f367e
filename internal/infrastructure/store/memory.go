package store

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/joycehq/joyce/internal/domain/session"
)

var (
	// ErrSessionNotFound is returned when a session is not found.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionAlreadyExists is returned when trying to create a session that already exists.
	ErrSessionAlreadyExists = errors.New("session already exists")
)

// MemoryStore is a mutex-based in-memory session store. Several sessions can
// share a room: every participant of the assistant room holds its own token.
// Thread-safe via sync.RWMutex.
type MemoryStore struct {
	mu        sync.RWMutex
	sessions  map[string]*session.Session
	roomIndex map[string]map[string]struct{} // room -> session IDs
	log       zerolog.Logger
}

// NewMemoryStore creates a new in-memory session store.
func NewMemoryStore(log zerolog.Logger) *MemoryStore {
	return &MemoryStore{
		sessions:  make(map[string]*session.Session),
		roomIndex: make(map[string]map[string]struct{}),
		log:       log.With().Str("component", "session-store").Logger(),
	}
}

// Create stores a new session.
func (s *MemoryStore) Create(ctx context.Context, sess *session.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.sessions[sess.ID]; exists {
		return ErrSessionAlreadyExists
	}

	s.sessions[sess.ID] = sess
	if s.roomIndex[sess.RoomName] == nil {
		s.roomIndex[sess.RoomName] = make(map[string]struct{})
	}
	s.roomIndex[sess.RoomName][sess.ID] = struct{}{}
	return nil
}

// Get retrieves a session by ID.
func (s *MemoryStore) Get(ctx context.Context, id string) (*session.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// GetByRoom retrieves all sessions for a room.
func (s *MemoryStore) GetByRoom(ctx context.Context, room string) ([]*session.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids, ok := s.roomIndex[room]
	if !ok || len(ids) == 0 {
		return nil, nil
	}

	result := make([]*session.Session, 0, len(ids))
	for id := range ids {
		if sess, ok := s.sessions[id]; ok {
			result = append(result, sess)
		}
	}
	return result, nil
}

// Delete removes a session by ID.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}

	if ids, ok := s.roomIndex[sess.RoomName]; ok {
		delete(ids, id)
		if len(ids) == 0 {
			delete(s.roomIndex, sess.RoomName)
		}
	}
	delete(s.sessions, id)
	return nil
}

// List returns all sessions.
func (s *MemoryStore) List(ctx context.Context) ([]*session.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*session.Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		result = append(result, sess)
	}
	return result, nil
}

// UpdateState updates the state of a session.
func (s *MemoryStore) UpdateState(ctx context.Context, id string, state session.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	sess.State = state
	return nil
}
