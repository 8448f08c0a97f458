package ports

import (
	"context"

	"github.com/barfigueiras/reservas/internal/core/domain"
)

// ListOrder selects the ordering of a reservation projection.
type ListOrder string

const (
	// OrderInsertion keeps creation order.
	OrderInsertion ListOrder = "insertion"
	// OrderDateDesc sorts by reservation date, newest first, ties kept in creation order.
	OrderDateDesc ListOrder = "date_desc"
)

// ReservationService owns the canonical reservation collection.
type ReservationService interface {
	Create(ctx context.Context, owner string, draft domain.ReservationDraft) (*domain.Reservation, error)
	Update(ctx context.Context, id int64, draft domain.ReservationDraft) (*domain.Reservation, error)
	Cancel(ctx context.Context, id int64) error
	ListFor(ctx context.Context, viewer domain.Viewer, order ListOrder) ([]domain.Reservation, error)
	// GetFor returns domain.ErrReservationNotFound when id is absent or not visible to viewer.
	GetFor(ctx context.Context, viewer domain.Viewer, id int64) (*domain.Reservation, error)
	Occasions() domain.OccasionSet
	// Degraded reports whether the last write of the collection failed.
	Degraded() bool
}

// PendingService drives the per-session reservation flow:
// Drafting -> Confirmed -> {Editing -> Confirmed | Cancelled}.
type PendingService interface {
	Current(ctx context.Context, session *domain.Session) (*domain.PendingReservation, error)
	SaveDraft(ctx context.Context, session *domain.Session, draft domain.ReservationDraft) (*domain.PendingReservation, error)
	Confirm(ctx context.Context, session *domain.Session) (*domain.PendingReservation, *domain.Reservation, error)
	Edit(ctx context.Context, session *domain.Session) (*domain.PendingReservation, error)
	EditReservation(ctx context.Context, session *domain.Session, id int64) (*domain.PendingReservation, error)
	CancelConfirmed(ctx context.Context, session *domain.Session) error
	Reset(ctx context.Context, session *domain.Session) error
	// Forget discards every session's pending record that represents
	// reservation id.
	Forget(ctx context.Context, id int64) error
}
