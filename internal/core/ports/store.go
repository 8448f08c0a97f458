package ports

import (
	"context"
	"time"

	"github.com/barfigueiras/reservas/internal/core/domain"
)

// Durable collection names.
const (
	CollectionUsers        = "users"
	CollectionReservations = "reservations"
)

// CollectionStore persists whole collections as opaque serialized payloads.
// Save replaces the previous payload of the collection entirely.
type CollectionStore interface {
	// Load returns domain.ErrCollectionNotFound when nothing was saved under name.
	Load(ctx context.Context, name string) ([]byte, error)
	Save(ctx context.Context, name string, payload []byte) error
}

// Pinger is implemented by stores that can report connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// SessionStore keeps authenticated sessions until logout or expiry.
type SessionStore interface {
	Put(ctx context.Context, s *domain.Session, ttl time.Duration) error
	// Get returns domain.ErrSessionNotFound for unknown or expired sessions.
	Get(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}

// PendingStore keeps at most one pending reservation per session.
type PendingStore interface {
	// Get returns domain.ErrNoPendingReservation when the session has none.
	Get(ctx context.Context, sessionID string) (*domain.PendingReservation, error)
	Put(ctx context.Context, p *domain.PendingReservation) error
	Delete(ctx context.Context, sessionID string) error
	// DeleteByReservation discards every pending record, of any session, that
	// represents reservationID and reports how many were removed.
	DeleteByReservation(ctx context.Context, reservationID int64) (int, error)
}

// SuggestionStore keeps the latest suggestion per reservation id.
type SuggestionStore interface {
	// Get returns domain.ErrSuggestionNotFound when none was requested.
	Get(ctx context.Context, reservationID int64) (*domain.Suggestion, error)
	Put(ctx context.Context, s *domain.Suggestion) error
	Delete(ctx context.Context, reservationID int64) error
}
