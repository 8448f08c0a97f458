package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/barfigueiras/reservas/internal/core/domain"
)

// getJSON decodes the value at key into v, returning notFound when absent.
func getJSON(ctx context.Context, client *redis.Client, key string, v any, notFound error) error {
	raw, err := client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return notFound
	}
	if err != nil {
		return fmt.Errorf("redis get: %w", err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("redis decode %s: %w", key, err)
	}
	return nil
}

func setJSON(ctx context.Context, client *redis.Client, key string, v any, ttl time.Duration) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("redis encode %s: %w", key, err)
	}
	return client.Set(ctx, key, raw, ttl).Err()
}

// del removes key and reports notFound when nothing was deleted.
func del(ctx context.Context, client *redis.Client, key string, notFound error) error {
	n, err := client.Del(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}

// SessionStore keeps sessions until logout; Redis expires them with the token.
// Key format: <prefix>:session:<id>
type SessionStore struct {
	client *redis.Client
	keys   keyspace
}

func NewSessionStore(client *redis.Client, prefix string) *SessionStore {
	return &SessionStore{client: client, keys: keyspace(prefix)}
}

func (s *SessionStore) Put(ctx context.Context, sess *domain.Session, ttl time.Duration) error {
	return setJSON(ctx, s.client, s.keys.session(sess.ID), sess, ttl)
}

func (s *SessionStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	var sess domain.Session
	if err := getJSON(ctx, s.client, s.keys.session(id), &sess, domain.ErrSessionNotFound); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *SessionStore) Delete(ctx context.Context, id string) error {
	err := del(ctx, s.client, s.keys.session(id), domain.ErrSessionNotFound)
	if errors.Is(err, domain.ErrSessionNotFound) {
		return nil
	}
	return err
}

// PendingStore keeps the in-progress reservation of each session.
// Key format: <prefix>:pending:<session_id>
// Sessions whose record represents a persisted reservation are also indexed
// under <prefix>:pending:by-res:<reservation_id>.
type PendingStore struct {
	client *redis.Client
	keys   keyspace
	ttl    time.Duration
}

// NewPendingStore expires pending records after ttl, normally the session lifetime.
func NewPendingStore(client *redis.Client, prefix string, ttl time.Duration) *PendingStore {
	return &PendingStore{client: client, keys: keyspace(prefix), ttl: ttl}
}

func (s *PendingStore) Get(ctx context.Context, sessionID string) (*domain.PendingReservation, error) {
	var p domain.PendingReservation
	if err := getJSON(ctx, s.client, s.keys.pending(sessionID), &p, domain.ErrNoPendingReservation); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *PendingStore) Put(ctx context.Context, p *domain.PendingReservation) error {
	prev, err := s.Get(ctx, p.SessionID)
	if err != nil && !errors.Is(err, domain.ErrNoPendingReservation) {
		return err
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("redis encode pending: %w", err)
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, s.keys.pending(p.SessionID), raw, s.ttl)
		if prev != nil && prev.ReservationID != 0 && prev.ReservationID != p.ReservationID {
			pipe.SRem(ctx, s.keys.pendingByReservation(prev.ReservationID), p.SessionID)
		}
		if p.ReservationID != 0 {
			idx := s.keys.pendingByReservation(p.ReservationID)
			pipe.SAdd(ctx, idx, p.SessionID)
			if s.ttl > 0 {
				pipe.Expire(ctx, idx, s.ttl)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis put pending: %w", err)
	}
	return nil
}

func (s *PendingStore) Delete(ctx context.Context, sessionID string) error {
	prev, err := s.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	if prev.ReservationID != 0 {
		if err := s.client.SRem(ctx, s.keys.pendingByReservation(prev.ReservationID), sessionID).Err(); err != nil {
			return fmt.Errorf("redis srem: %w", err)
		}
	}
	return del(ctx, s.client, s.keys.pending(sessionID), domain.ErrNoPendingReservation)
}

func (s *PendingStore) DeleteByReservation(ctx context.Context, reservationID int64) (int, error) {
	idx := s.keys.pendingByReservation(reservationID)
	sessionIDs, err := s.client.SMembers(ctx, idx).Result()
	if err != nil {
		return 0, fmt.Errorf("redis smembers: %w", err)
	}

	n := 0
	for _, id := range sessionIDs {
		p, err := s.Get(ctx, id)
		if errors.Is(err, domain.ErrNoPendingReservation) {
			continue
		}
		if err != nil {
			return n, err
		}
		// The index may lag a Put that moved the session elsewhere.
		if !p.Represents(reservationID) {
			continue
		}
		if err := s.client.Del(ctx, s.keys.pending(id)).Err(); err != nil {
			return n, fmt.Errorf("redis del: %w", err)
		}
		n++
	}
	if err := s.client.Del(ctx, idx).Err(); err != nil {
		return n, fmt.Errorf("redis del: %w", err)
	}
	return n, nil
}

// SuggestionStore keeps the latest suggestion of each reservation.
// Key format: <prefix>:suggestion:<reservation_id>
type SuggestionStore struct {
	client *redis.Client
	keys   keyspace
	ttl    time.Duration
}

func NewSuggestionStore(client *redis.Client, prefix string, ttl time.Duration) *SuggestionStore {
	return &SuggestionStore{client: client, keys: keyspace(prefix), ttl: ttl}
}

func (s *SuggestionStore) Get(ctx context.Context, reservationID int64) (*domain.Suggestion, error) {
	var sug domain.Suggestion
	if err := getJSON(ctx, s.client, s.keys.suggestion(reservationID), &sug, domain.ErrSuggestionNotFound); err != nil {
		return nil, err
	}
	return &sug, nil
}

func (s *SuggestionStore) Put(ctx context.Context, sug *domain.Suggestion) error {
	return setJSON(ctx, s.client, s.keys.suggestion(sug.ReservationID), sug, s.ttl)
}

func (s *SuggestionStore) Delete(ctx context.Context, reservationID int64) error {
	return del(ctx, s.client, s.keys.suggestion(reservationID), domain.ErrSuggestionNotFound)
}
