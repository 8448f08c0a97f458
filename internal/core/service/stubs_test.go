package service

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/barfigueiras/reservas/internal/core/domain"
	"github.com/barfigueiras/reservas/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stubs shared by the service tests
// ---------------------------------------------------------------------------

type stubCollectionStore struct {
	mu       sync.Mutex
	payloads map[string][]byte
	loadErr  error // if set, Load returns this error
	saveErr  error // if set, Save returns this error
	saves    int
}

func newStubCollectionStore() *stubCollectionStore {
	return &stubCollectionStore{payloads: make(map[string][]byte)}
}

func (s *stubCollectionStore) Load(_ context.Context, name string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	p, ok := s.payloads[name]
	if !ok {
		return nil, domain.ErrCollectionNotFound
	}
	return append([]byte(nil), p...), nil
}

func (s *stubCollectionStore) Save(_ context.Context, name string, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saves++
	if s.saveErr != nil {
		return s.saveErr
	}
	s.payloads[name] = append([]byte(nil), payload...)
	return nil
}

type stubSessionStore struct {
	mu       sync.Mutex
	sessions map[string]domain.Session
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]domain.Session)}
}

func (s *stubSessionStore) Put(_ context.Context, sess *domain.Session, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = *sess
	return nil
}

func (s *stubSessionStore) Get(_ context.Context, id string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return &sess, nil
}

func (s *stubSessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

type stubPendingStore struct {
	mu    sync.Mutex
	items map[string]domain.PendingReservation
}

func newStubPendingStore() *stubPendingStore {
	return &stubPendingStore{items: make(map[string]domain.PendingReservation)}
}

func (s *stubPendingStore) Get(_ context.Context, sessionID string) (*domain.PendingReservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.items[sessionID]
	if !ok {
		return nil, domain.ErrNoPendingReservation
	}
	return &p, nil
}

func (s *stubPendingStore) Put(_ context.Context, p *domain.PendingReservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[p.SessionID] = *p
	return nil
}

func (s *stubPendingStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[sessionID]; !ok {
		return domain.ErrNoPendingReservation
	}
	delete(s.items, sessionID)
	return nil
}

func (s *stubPendingStore) DeleteByReservation(_ context.Context, reservationID int64) (int, error) {
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

type stubSuggestionStore struct {
	mu    sync.Mutex
	items map[int64]domain.Suggestion
}

func newStubSuggestionStore() *stubSuggestionStore {
	return &stubSuggestionStore{items: make(map[int64]domain.Suggestion)}
}

func (s *stubSuggestionStore) Get(_ context.Context, id int64) (*domain.Suggestion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sug, ok := s.items[id]
	if !ok {
		return nil, domain.ErrSuggestionNotFound
	}
	return &sug, nil
}

func (s *stubSuggestionStore) Put(_ context.Context, sug *domain.Suggestion) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[sug.ReservationID] = *sug
	return nil
}

func (s *stubSuggestionStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return domain.ErrSuggestionNotFound
	}
	delete(s.items, id)
	return nil
}

type stubPublisher struct {
	mu     sync.Mutex
	events []domain.ReservationEvent
	err    error
}

func (p *stubPublisher) Publish(_ context.Context, e domain.ReservationEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, e)
	return nil
}

func (p *stubPublisher) Close() error { return nil }

func (p *stubPublisher) types() []domain.ReservationEventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]domain.ReservationEventType, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

// stubScheduler records jobs instead of running them.
type stubScheduler struct {
	mu   sync.Mutex
	jobs []ports.SuggestionJob
}

func (s *stubScheduler) Enqueue(job ports.SuggestionJob) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs = append(s.jobs, job)
}

func (s *stubScheduler) taken() []ports.SuggestionJob {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.jobs
	s.jobs = nil
	return out
}

// stubGateway answers with a text derived from the reservation, or fails.
type stubGateway struct {
	err   error
	text  string
	calls int
}

func (g *stubGateway) Suggest(_ context.Context, r domain.Reservation) (string, error) {
	g.calls++
	if g.err != nil {
		return "", g.err
	}
	if g.text != "" {
		return g.text, nil
	}
	return "Tema para " + r.Occasion + " com " + strconv.Itoa(r.GuestCount) + " convidados", nil
}

var errBoom = errors.New("boom")

// ---------------------------------------------------------------------------
// Fixtures
// ---------------------------------------------------------------------------

func validDraft() domain.ReservationDraft {
	return domain.ReservationDraft{
		Name:       "Ana",
		Phone:      "11999990000",
		GuestCount: 10,
		Date:       "2030-05-01",
		Time:       "19:00",
		Occasion:   "aniversário",
		EventType:  domain.EventTypeCommon,
	}
}

func clientSession(id, username string) *domain.Session {
	return &domain.Session{ID: id, User: domain.User{Username: username, Name: username}}
}

func adminSession(id string) *domain.Session {
	return &domain.Session{ID: id, User: domain.User{Username: domain.AdminUsername, Name: "Administrador"}}
}
