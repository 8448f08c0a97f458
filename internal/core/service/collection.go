package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/barfigueiras/reservas/internal/core/domain"
	"github.com/barfigueiras/reservas/internal/core/ports"
	"github.com/barfigueiras/reservas/internal/pkg/metrics"
)

const saveTimeout = 5 * time.Second

// collection binds one named collection to its store. Write failures are logged
// and flag the collection as degraded; they never abort the caller's mutation.
type collection struct {
	name     string
	store    ports.CollectionStore
	log      zerolog.Logger
	degraded atomic.Bool
}

func newCollection(name string, store ports.CollectionStore, log zerolog.Logger) *collection {
	return &collection{name: name, store: store, log: log.With().Str("collection", name).Logger()}
}

// load decodes the stored payload into v. It reports false when the collection
// is missing, unreadable or corrupt, so the caller falls back to its seed.
func (c *collection) load(ctx context.Context, v any) bool {
	payload, err := c.store.Load(ctx, c.name)
	if err != nil {
		if errors.Is(err, domain.ErrCollectionNotFound) {
			c.log.Info().Msg("collection not found, using seed")
		} else {
			c.log.Error().Err(err).Msg("failed to read collection, using seed")
		}
		return false
	}
	if err := json.Unmarshal(payload, v); err != nil {
		c.log.Error().Err(err).Msg("corrupt collection payload, using seed")
		return false
	}
	return true
}

// save rewrites the whole collection. The write outlives request cancellation.
func (c *collection) save(ctx context.Context, v any) {
	if err := c.write(ctx, v); err != nil {
		c.degraded.Store(true)
		metrics.StorageFailuresTotal.WithLabelValues(c.name).Inc()
		c.log.Error().Err(err).Msg("failed to persist collection")
		return
	}
	if c.degraded.Swap(false) {
		c.log.Info().Msg("collection persisted again")
	}
}

func (c *collection) write(ctx context.Context, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.name, err)
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), saveTimeout)
	defer cancel()
	if err := c.store.Save(ctx, c.name, payload); err != nil {
		return fmt.Errorf("save %s: %w", c.name, err)
	}
	return nil
}

// userRecord is the stored form of a user; unlike domain.User it keeps the credential.
type userRecord struct {
	Username      string `json:"username"`
	Password      string `json:"password"`
	Name          string `json:"name"`
	Establishment string `json:"establishment"`
}

func toUserRecords(users []domain.User) []userRecord {
	out := make([]userRecord, 0, len(users))
	for _, u := range users {
		out = append(out, userRecord{
			Username:      u.Username,
			Password:      u.Password,
			Name:          u.Name,
			Establishment: u.Establishment,
		})
	}
	return out
}

func fromUserRecords(records []userRecord) []domain.User {
	out := make([]domain.User, 0, len(records))
	for _, r := range records {
		out = append(out, domain.User{
			Username:      r.Username,
			Password:      r.Password,
			Name:          r.Name,
			Establishment: r.Establishment,
		})
	}
	return out
}

// reservationRecord is the stored form of a reservation.
type reservationRecord struct {
	ID         int64  `json:"id"`
	Owner      string `json:"owner"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	GuestCount int    `json:"guestCount"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Occasion   string `json:"occasion"`
	EventType  string `json:"eventType"`
}

func toReservationRecords(items []domain.Reservation) []reservationRecord {
	out := make([]reservationRecord, 0, len(items))
	for _, r := range items {
		out = append(out, reservationRecord{
			ID:         r.ID,
			Owner:      r.Owner,
			Name:       r.Name,
			Phone:      r.Phone,
			GuestCount: r.GuestCount,
			Date:       r.Date,
			Time:       r.Time,
			Occasion:   r.Occasion,
			EventType:  string(r.EventType),
		})
	}
	return out
}

func fromReservationRecords(records []reservationRecord) []domain.Reservation {
	out := make([]domain.Reservation, 0, len(records))
	for _, r := range records {
		out = append(out, domain.Reservation{
			ID:         r.ID,
			Owner:      r.Owner,
			Name:       r.Name,
			Phone:      r.Phone,
			GuestCount: r.GuestCount,
			Date:       r.Date,
			Time:       r.Time,
			Occasion:   r.Occasion,
			EventType:  domain.EventType(r.EventType),
		})
	}
	return out
}
