package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/barfigueiras/reservas/internal/core/domain"
	"github.com/barfigueiras/reservas/internal/core/ports"
	"github.com/barfigueiras/reservas/internal/pkg/metrics"
)

// Scheduler abstracts the worker pool that runs suggestion jobs.
type Scheduler interface {
	Enqueue(job ports.SuggestionJob)
}

type suggestionService struct {
	mu        sync.Mutex
	store     ports.SuggestionStore
	gateway   ports.SuggestionGateway
	scheduler Scheduler
	log       zerolog.Logger
	now       func() time.Time
}

// NewSuggestionService returns a SuggestionService implementation.
func NewSuggestionService(
	store ports.SuggestionStore,
	gateway ports.SuggestionGateway,
	scheduler Scheduler,
	log zerolog.Logger,
) ports.SuggestionService {
	return &suggestionService{
		store:     store,
		gateway:   gateway,
		scheduler: scheduler,
		log:       log,
		now:       time.Now,
	}
}

// Request supersedes any earlier request for the same reservation.
func (s *suggestionService) Request(ctx context.Context, r domain.Reservation) (*domain.Suggestion, error) {
	sug := &domain.Suggestion{
		ReservationID: r.ID,
		RequestID:     uuid.NewString(),
		State:         domain.SuggestionPending,
		RequestedAt:   s.now().UTC(),
	}

	s.mu.Lock()
	err := s.store.Put(ctx, sug)
	s.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("request suggestion: %w", err)
	}

	s.scheduler.Enqueue(ports.SuggestionJob{RequestID: sug.RequestID, Reservation: r})
	s.log.Debug().Int64("reservation_id", r.ID).Str("request_id", sug.RequestID).Msg("suggestion requested")
	return sug, nil
}

// Process calls the gateway and records the outcome, unless the request was
// superseded or forgotten meanwhile.
func (s *suggestionService) Process(ctx context.Context, job ports.SuggestionJob) error {
	// Any gateway failure becomes the fixed user-facing message.
	start := s.now()
	text, err := s.gateway.Suggest(ctx, job.Reservation)
	metrics.SuggestionDuration.Observe(s.now().Sub(start).Seconds())

	result := domain.SuggestionReady
	text = strings.TrimSpace(text)
	if err != nil || text == "" {
		if err == nil {
			err = errors.New("empty suggestion")
		}
		s.log.Warn().Err(err).Int64("reservation_id", job.Reservation.ID).Msg("suggestion gateway failed")
		result = domain.SuggestionFailed
	}

	return s.complete(ctx, job, result, text)
}

// Reject marks a job that never reached the gateway as failed.
func (s *suggestionService) Reject(ctx context.Context, job ports.SuggestionJob, reason error) error {
	s.log.Warn().Err(reason).Int64("reservation_id", job.Reservation.ID).Msg("suggestion job rejected")
	return s.complete(ctx, job, domain.SuggestionFailed, "")
}

// complete records exactly one terminal state, unless the request was
// superseded or forgotten meanwhile.
func (s *suggestionService) complete(ctx context.Context, job ports.SuggestionJob, result domain.SuggestionState, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.store.Get(ctx, job.Reservation.ID)
	if errors.Is(err, domain.ErrSuggestionNotFound) || (err == nil && current.RequestID != job.RequestID) {
		metrics.SuggestionsTotal.WithLabelValues("stale").Inc()
		s.log.Debug().Int64("reservation_id", job.Reservation.ID).Str("request_id", job.RequestID).Msg("stale suggestion dropped")
		return nil
	}
	if err != nil {
		return fmt.Errorf("process suggestion: %w", err)
	}

	current.State = result
	current.CompletedAt = s.now().UTC()
	if result == domain.SuggestionReady {
		current.Text = text
		current.Error = ""
	} else {
		current.Text = ""
		current.Error = domain.MsgSuggestionFailure
	}
	if err := s.store.Put(ctx, current); err != nil {
		return fmt.Errorf("process suggestion: %w", err)
	}

	metrics.SuggestionsTotal.WithLabelValues(string(result)).Inc()
	s.log.Info().
		Int64("reservation_id", job.Reservation.ID).
		Str("state", string(result)).
		Msg("suggestion processed")
	return nil
}

func (s *suggestionService) Get(ctx context.Context, reservationID int64) (*domain.Suggestion, error) {
	return s.store.Get(ctx, reservationID)
}

func (s *suggestionService) Forget(ctx context.Context, reservationID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Delete(ctx, reservationID); err != nil && !errors.Is(err, domain.ErrSuggestionNotFound) {
		return fmt.Errorf("forget suggestion: %w", err)
	}
	return nil
}
