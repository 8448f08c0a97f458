// Package gateway holds the suggestion gateways that do not talk to a provider.
package gateway

import (
	"context"
	"errors"

	"github.com/barfigueiras/reservas/internal/core/domain"
)

// ErrDisabled is returned when no suggestion provider is configured.
var ErrDisabled = errors.New("suggestion provider disabled")

// Disabled fails every request, so suggestions end in the failed state.
type Disabled struct{}

func (Disabled) Suggest(context.Context, domain.Reservation) (string, error) {
	return "", ErrDisabled
}
