package ports

import (
	"context"

	"github.com/barfigueiras/reservas/internal/core/domain"
)

// EventPublisher announces reservation lifecycle changes to other systems.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.ReservationEvent) error
	Close() error
}
