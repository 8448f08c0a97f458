// Package memory holds process-local implementations of the storage ports.
// Everything is lost on restart; the collection store is only selected
// explicitly with STORE_DRIVER=memory.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/barfigueiras/reservas/internal/core/domain"
)

// CollectionStore keeps serialized collections in a map.
type CollectionStore struct {
	mu       sync.RWMutex
	payloads map[string][]byte
}

func NewCollectionStore() *CollectionStore {
	return &CollectionStore{payloads: make(map[string][]byte)}
}

func (s *CollectionStore) Load(_ context.Context, name string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.payloads[name]
	if !ok {
		return nil, domain.ErrCollectionNotFound
	}
	return append([]byte(nil), p...), nil
}

func (s *CollectionStore) Save(_ context.Context, name string, payload []byte) error {
	s.mu.Lock()
	s.payloads[name] = append([]byte(nil), payload...)
	s.mu.Unlock()
	return nil
}

func (s *CollectionStore) Ping(context.Context) error { return nil }

type sessionEntry struct {
	session   domain.Session
	expiresAt time.Time
}

// SessionStore keeps sessions until Delete or until their ttl elapses.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]sessionEntry
	now      func() time.Time
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]sessionEntry), now: time.Now}
}

func (s *SessionStore) Put(_ context.Context, sess *domain.Session, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := sessionEntry{session: *sess}
	if ttl > 0 {
		entry.expiresAt = s.now().Add(ttl)
	}
	s.sessions[sess.ID] = entry
	return nil
}

func (s *SessionStore) Get(_ context.Context, id string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	if !entry.expiresAt.IsZero() && !s.now().Before(entry.expiresAt) {
		delete(s.sessions, id)
		return nil, domain.ErrSessionNotFound
	}
	out := entry.session
	return &out, nil
}

func (s *SessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	return nil
}

// PendingStore keeps one pending reservation per session id.
type PendingStore struct {
	mu    sync.Mutex
	items map[string]domain.PendingReservation
}

func NewPendingStore() *PendingStore {
	return &PendingStore{items: make(map[string]domain.PendingReservation)}
}

func (s *PendingStore) Get(_ context.Context, sessionID string) (*domain.PendingReservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.items[sessionID]
	if !ok {
		return nil, domain.ErrNoPendingReservation
	}
	return &p, nil
}

func (s *PendingStore) Put(_ context.Context, p *domain.PendingReservation) error {
	s.mu.Lock()
	s.items[p.SessionID] = *p
	s.mu.Unlock()
	return nil
}

func (s *PendingStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[sessionID]; !ok {
		return domain.ErrNoPendingReservation
	}
	delete(s.items, sessionID)
	return nil
}

func (s *PendingStore) DeleteByReservation(_ context.Context, reservationID int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for id, p := range s.items {
		if p.Represents(reservationID) {
			delete(s.items, id)
			n++
		}
	}
	return n, nil
}

// SuggestionStore keeps the latest suggestion per reservation id.
type SuggestionStore struct {
	mu    sync.Mutex
	items map[int64]domain.Suggestion
}

func NewSuggestionStore() *SuggestionStore {
	return &SuggestionStore{items: make(map[int64]domain.Suggestion)}
}

func (s *SuggestionStore) Get(_ context.Context, reservationID int64) (*domain.Suggestion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sug, ok := s.items[reservationID]
	if !ok {
		return nil, domain.ErrSuggestionNotFound
	}
	return &sug, nil
}

func (s *SuggestionStore) Put(_ context.Context, sug *domain.Suggestion) error {
	s.mu.Lock()
	s.items[sug.ReservationID] = *sug
	s.mu.Unlock()
	return nil
}

func (s *SuggestionStore) Delete(_ context.Context, reservationID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[reservationID]; !ok {
		return domain.ErrSuggestionNotFound
	}
	delete(s.items, reservationID)
	return nil
}
