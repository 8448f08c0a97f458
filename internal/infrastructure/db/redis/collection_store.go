package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/barfigueiras/reservas/internal/core/domain"
)

// CollectionStore keeps each collection as one string value.
// Key format: <prefix>:<collection>
type CollectionStore struct {
	client *redis.Client
	keys   keyspace
}

func NewCollectionStore(client *redis.Client, prefix string) *CollectionStore {
	return &CollectionStore{client: client, keys: keyspace(prefix)}
}

func (s *CollectionStore) Load(ctx context.Context, name string) ([]byte, error) {
	payload, err := s.client.Get(ctx, s.keys.collection(name)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrCollectionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis load %s: %w", name, err)
	}
	return payload, nil
}

func (s *CollectionStore) Save(ctx context.Context, name string, payload []byte) error {
	if err := s.client.Set(ctx, s.keys.collection(name), payload, 0).Err(); err != nil {
		return fmt.Errorf("redis save %s: %w", name, err)
	}
	return nil
}

func (s *CollectionStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
