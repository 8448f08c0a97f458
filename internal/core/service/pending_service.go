package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/barfigueiras/reservas/internal/core/domain"
	"github.com/barfigueiras/reservas/internal/core/ports"
)

// PendingService keeps the single in-progress reservation of each session and
// moves it through Drafting -> Confirmed -> {Editing -> Confirmed | Cancelled}.
type PendingService struct {
	store        ports.PendingStore
	reservations ports.ReservationService
	suggestions  ports.SuggestionService
	logger       zerolog.Logger
	now          func() time.Time
}

func NewPendingService(store ports.PendingStore, reservations ports.ReservationService, suggestions ports.SuggestionService, logger zerolog.Logger) *PendingService {
	return &PendingService{
		store:        store,
		reservations: reservations,
		suggestions:  suggestions,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *PendingService) Current(ctx context.Context, session *domain.Session) (*domain.PendingReservation, error) {
	return s.store.Get(ctx, session.ID)
}

// SaveDraft stores the form fields. The draft is validated on Confirm, so
// partially filled forms are accepted here.
func (s *PendingService) SaveDraft(ctx context.Context, session *domain.Session, draft domain.ReservationDraft) (*domain.PendingReservation, error) {
	p, err := s.store.Get(ctx, session.ID)
	switch {
	case errors.Is(err, domain.ErrNoPendingReservation):
		p = &domain.PendingReservation{SessionID: session.ID, Stage: domain.StageDrafting}
	case err != nil:
		return nil, fmt.Errorf("save draft: %w", err)
	case p.Stage == domain.StageConfirmed:
		return nil, domain.ErrInvalidTransition
	}

	p.Draft = draft
	p.UpdatedAt = s.now().UTC()
	if err := s.store.Put(ctx, p); err != nil {
		return nil, fmt.Errorf("save draft: %w", err)
	}
	return p, nil
}

// Confirm creates (Drafting) or updates (Editing) the reservation, then asks
// for a suggestion. The suggestion is requested only after persistence.
func (s *PendingService) Confirm(ctx context.Context, session *domain.Session) (*domain.PendingReservation, *domain.Reservation, error) {
	p, err := s.store.Get(ctx, session.ID)
	if err != nil {
		return nil, nil, err
	}

	var r *domain.Reservation
	switch p.Stage {
	case domain.StageDrafting:
		r, err = s.reservations.Create(ctx, session.User.Username, p.Draft)
	case domain.StageEditing:
		if _, err = s.reservations.GetFor(ctx, session.Viewer(), p.ReservationID); err == nil {
			r, err = s.reservations.Update(ctx, p.ReservationID, p.Draft)
		}
	default:
		return nil, nil, domain.ErrInvalidTransition
	}
	if err != nil {
		return nil, nil, fmt.Errorf("confirm: %w", err)
	}

	p.Stage = domain.StageConfirmed
	p.ReservationID = r.ID
	p.Draft = r.Draft()
	p.UpdatedAt = s.now().UTC()
	if err := s.store.Put(ctx, p); err != nil {
		s.logger.Warn().Err(err).Str("session_id", session.ID).Msg("failed to store confirmed pending reservation")
	}

	s.requestSuggestion(ctx, *r)
	return p, r, nil
}

// Edit re-opens the confirmed reservation for changes. Nothing is persisted
// until Confirm succeeds again.
func (s *PendingService) Edit(ctx context.Context, session *domain.Session) (*domain.PendingReservation, error) {
	p, err := s.store.Get(ctx, session.ID)
	if err != nil {
		return nil, err
	}
	if p.Stage != domain.StageConfirmed {
		return nil, domain.ErrInvalidTransition
	}

	p.Stage = domain.StageEditing
	p.UpdatedAt = s.now().UTC()
	if err := s.store.Put(ctx, p); err != nil {
		return nil, fmt.Errorf("edit: %w", err)
	}
	return p, nil
}

// EditReservation starts editing a reservation picked from a listing. It
// replaces whatever the session had pending.
func (s *PendingService) EditReservation(ctx context.Context, session *domain.Session, id int64) (*domain.PendingReservation, error) {
	r, err := s.reservations.GetFor(ctx, session.Viewer(), id)
	if err != nil {
		return nil, err
	}

	p := &domain.PendingReservation{
		SessionID:     session.ID,
		Stage:         domain.StageEditing,
		ReservationID: r.ID,
		Draft:         r.Draft(),
		UpdatedAt:     s.now().UTC(),
	}
	if err := s.store.Put(ctx, p); err != nil {
		return nil, fmt.Errorf("edit reservation: %w", err)
	}
	return p, nil
}

// CancelConfirmed removes the confirmed reservation the session is looking at
// and discards the pending record.
func (s *PendingService) CancelConfirmed(ctx context.Context, session *domain.Session) error {
	p, err := s.store.Get(ctx, session.ID)
	if err != nil {
		return err
	}
	if p.Stage != domain.StageConfirmed {
		return domain.ErrInvalidTransition
	}

	if _, err := s.reservations.GetFor(ctx, session.Viewer(), p.ReservationID); err != nil {
		return fmt.Errorf("cancel: %w", err)
	}
	if err := s.reservations.Cancel(ctx, p.ReservationID); err != nil {
		return fmt.Errorf("cancel: %w", err)
	}
	if err := s.suggestions.Forget(ctx, p.ReservationID); err != nil {
		s.logger.Warn().Err(err).Int64("reservation_id", p.ReservationID).Msg("failed to forget suggestion")
	}
	if err := s.Forget(ctx, p.ReservationID); err != nil {
		s.logger.Warn().Err(err).Int64("reservation_id", p.ReservationID).Msg("failed to discard pending reservations")
	}
	return s.Reset(ctx, session)
}

// Reset discards the pending record, if any.
func (s *PendingService) Reset(ctx context.Context, session *domain.Session) error {
	if err := s.store.Delete(ctx, session.ID); err != nil && !errors.Is(err, domain.ErrNoPendingReservation) {
		return fmt.Errorf("reset: %w", err)
	}
	return nil
}

// Forget discards the pending record of every session that still represents
// reservation id. Called after the reservation is cancelled.
func (s *PendingService) Forget(ctx context.Context, id int64) error {
	n, err := s.store.DeleteByReservation(ctx, id)
	if err != nil {
		return fmt.Errorf("forget pending: %w", err)
	}
	if n > 0 {
		s.logger.Debug().Int64("reservation_id", id).Int("discarded", n).Msg("discarded pending reservations")
	}
	return nil
}

func (s *PendingService) requestSuggestion(ctx context.Context, r domain.Reservation) {
	if _, err := s.suggestions.Request(ctx, r); err != nil {
		s.logger.Warn().Err(err).Int64("reservation_id", r.ID).Msg("failed to request suggestion")
	}
}
