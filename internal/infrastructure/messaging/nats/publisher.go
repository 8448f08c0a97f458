// Package nats publishes reservation events to NATS subjects.
package nats

import (
	"context"
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/barfigueiras/reservas/internal/core/domain"
	"github.com/barfigueiras/reservas/internal/infrastructure/messaging"
)

// Publisher sends each event to <prefix>.<event type>, for example
// reservas.reservation.created.
type Publisher struct {
	nc     *nats.Conn
	prefix string
}

func Connect(url, prefix string) (*Publisher, error) {
	if url == "" {
		url = nats.DefaultURL
	}
	nc, err := nats.Connect(url, nats.Name("reservas"))
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}
	return &Publisher{nc: nc, prefix: prefix}, nil
}

// Subject returns the subject of an event type.
func Subject(prefix string, typ domain.ReservationEventType) string {
	if prefix == "" {
		return string(typ)
	}
	return prefix + "." + string(typ)
}

func (p *Publisher) Publish(ctx context.Context, e domain.ReservationEvent) error {
	if p.nc == nil || !p.nc.IsConnected() {
		return nats.ErrConnectionClosed
	}
	body, err := messaging.Encode(e)
	if err != nil {
		return err
	}
	if err := p.nc.Publish(Subject(p.prefix, e.Type), body); err != nil {
		return fmt.Errorf("nats publish: %w", err)
	}
	return p.nc.FlushWithContext(ctx)
}

func (p *Publisher) Close() error {
	if p.nc != nil {
		return p.nc.Drain()
	}
	return nil
}
