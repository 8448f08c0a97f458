package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/barfigueiras/reservas/internal/core/domain"
	"github.com/barfigueiras/reservas/internal/core/ports"
	"github.com/barfigueiras/reservas/internal/pkg/metrics"
)

const publishTimeout = 5 * time.Second

// ReservationService owns the canonical reservation collection. The in-memory
// slice is authoritative; every mutation rewrites the stored collection.
type ReservationService struct {
	mu    sync.RWMutex
	items []domain.Reservation

	coll      *collection
	ids       *IDAllocator
	occasions domain.OccasionSet
	events    ports.EventPublisher
	logger    zerolog.Logger
	now       func() time.Time
}

func NewReservationService(store ports.CollectionStore, occasions domain.OccasionSet, events ports.EventPublisher, logger zerolog.Logger) *ReservationService {
	return &ReservationService{
		coll:      newCollection(ports.CollectionReservations, store, logger),
		ids:       NewIDAllocator(nil),
		occasions: occasions,
		events:    events,
		logger:    logger,
		now:       time.Now,
	}
}

// Load reads the stored collection; missing or corrupt data starts empty.
func (s *ReservationService) Load(ctx context.Context) error {
	var records []reservationRecord
	items := []domain.Reservation{}
	if s.coll.load(ctx, &records) {
		items = fromReservationRecords(records)
	}
	for _, r := range items {
		s.ids.Observe(r.ID)
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()

	s.logger.Info().Int("reservations", len(items)).Msg("reservations loaded")
	return nil
}

// Create stamps a new id and the owner, appends and persists the reservation.
func (s *ReservationService) Create(ctx context.Context, owner string, draft domain.ReservationDraft) (*domain.Reservation, error) {
	draft, err := draft.Normalize(s.occasions)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	r := domain.NewReservation(s.ids.Next(), owner, draft)
	s.items = append(s.items, r)
	s.coll.save(ctx, toReservationRecords(s.items))
	s.mu.Unlock()

	metrics.ReservationsCreatedTotal.WithLabelValues(string(r.EventType)).Inc()
	s.logger.Info().Int64("reservation_id", r.ID).Str("owner", owner).Msg("reservation created")
	s.publish(ctx, domain.EventReservationCreated, r)

	return &r, nil
}

// Update replaces the mutable fields of reservation id, keeping id and owner.
func (s *ReservationService) Update(ctx context.Context, id int64, draft domain.ReservationDraft) (*domain.Reservation, error) {
	draft, err := draft.Normalize(s.occasions)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		s.logger.Warn().Int64("reservation_id", id).Msg("update of unknown reservation")
		return nil, domain.ErrReservationNotFound
	}
	s.items[idx].Apply(draft)
	r := s.items[idx]
	s.coll.save(ctx, toReservationRecords(s.items))
	s.mu.Unlock()

	metrics.ReservationsUpdatedTotal.Inc()
	s.logger.Info().Int64("reservation_id", id).Msg("reservation updated")
	s.publish(ctx, domain.EventReservationUpdated, r)

	return &r, nil
}

// Cancel removes reservation id permanently.
func (s *ReservationService) Cancel(ctx context.Context, id int64) error {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		s.logger.Warn().Int64("reservation_id", id).Msg("cancel of unknown reservation")
		return domain.ErrReservationNotFound
	}
	r := s.items[idx]
	s.items = append(s.items[:idx:idx], s.items[idx+1:]...)
	s.coll.save(ctx, toReservationRecords(s.items))
	s.mu.Unlock()

	metrics.ReservationsCancelledTotal.Inc()
	s.logger.Info().Int64("reservation_id", id).Msg("reservation cancelled")
	s.publish(ctx, domain.EventReservationCancelled, r)

	return nil
}

// ListFor returns the reservations visible to viewer: every reservation for the
// administrator, only owned ones for a client and none for anonymous callers.
func (s *ReservationService) ListFor(_ context.Context, viewer domain.Viewer, order ports.ListOrder) ([]domain.Reservation, error) {
	if viewer.Role == domain.RoleAnonymous {
		return nil, domain.ErrForbidden
	}

	s.mu.RLock()
	out := make([]domain.Reservation, 0, len(s.items))
	for _, r := range s.items {
		if viewer.Sees(r.Owner) {
			out = append(out, r)
		}
	}
	s.mu.RUnlock()

	if order == ports.OrderDateDesc {
		sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	}
	return out, nil
}

func (s *ReservationService) GetFor(_ context.Context, viewer domain.Viewer, id int64) (*domain.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx < 0 || !viewer.Sees(s.items[idx].Owner) {
		return nil, domain.ErrReservationNotFound
	}
	r := s.items[idx]
	return &r, nil
}

func (s *ReservationService) Occasions() domain.OccasionSet { return s.occasions }

func (s *ReservationService) Degraded() bool { return s.coll.degraded.Load() }

// indexOf must be called with s.mu held.
func (s *ReservationService) indexOf(id int64) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

// publish announces a lifecycle change. Failures are logged only: the
// reservation is already persisted.
func (s *ReservationService) publish(ctx context.Context, typ domain.ReservationEventType, r domain.Reservation) {
	if s.events == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	event := domain.ReservationEvent{Type: typ, Reservation: r, OccurredAt: s.now().UTC()}
	if err := s.events.Publish(ctx, event); err != nil {
		metrics.EventsPublishedTotal.WithLabelValues("error").Inc()
		s.logger.Warn().Err(err).Str("event", string(typ)).Int64("reservation_id", r.ID).Msg("failed to publish reservation event")
		return
	}
	metrics.EventsPublishedTotal.WithLabelValues("ok").Inc()
}
