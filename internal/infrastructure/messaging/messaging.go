// Package messaging holds the shared encoding of reservation events and the
// publisher used when no broker is configured.
package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/barfigueiras/reservas/internal/core/domain"
)

// Encode serializes an event as the JSON body sent to brokers.
func Encode(e domain.ReservationEvent) ([]byte, error) {
	body, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", e.Type, err)
	}
	return body, nil
}

// Noop drops every event.
type Noop struct{}

func (Noop) Publish(context.Context, domain.ReservationEvent) error { return nil }

func (Noop) Close() error { return nil }
