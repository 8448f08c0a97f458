package ports

import (
	"context"

	"github.com/barfigueiras/reservas/internal/core/domain"
)

// SuggestionGateway is the external text-generation boundary.
type SuggestionGateway interface {
	Suggest(ctx context.Context, r domain.Reservation) (string, error)
}

// SuggestionJob is one queued gateway call.
type SuggestionJob struct {
	RequestID   string
	Reservation domain.Reservation
}

// SuggestionService tracks suggestion requests per reservation.
type SuggestionService interface {
	// Request records a pending suggestion and schedules the gateway call.
	Request(ctx context.Context, r domain.Reservation) (*domain.Suggestion, error)
	// Process runs a scheduled job; it is called by the dispatcher workers.
	Process(ctx context.Context, job SuggestionJob) error
	// Reject settles a job that could not be scheduled as failed.
	Reject(ctx context.Context, job SuggestionJob, reason error) error
	Get(ctx context.Context, reservationID int64) (*domain.Suggestion, error)
	Forget(ctx context.Context, reservationID int64) error
}
