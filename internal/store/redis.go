package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"listinglab/internal/dataset"
)

const keyPrefix = "dataset:"

type RedisStore struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewRedisStore aceita tanto uma URL redis:// quanto um endereço host:porta.
func NewRedisStore(addr string, ttl time.Duration) *RedisStore {
	opt, err := redis.ParseURL(addr)
	if err != nil {
		opt = &redis.Options{Addr: addr}
	}
	return &RedisStore{
		Client: redis.NewClient(opt),
		TTL:    ttl,
	}
}

func (s *RedisStore) Put(ctx context.Context, t *dataset.Table) (string, error) {
	b, err := json.Marshal(t)
	if err != nil {
		return "", fmt.Errorf("failed to encode dataset: %w", err)
	}

	id := uuid.New().String()
	if err := s.Client.Set(ctx, keyPrefix+id, b, s.TTL).Err(); err != nil {
		return "", fmt.Errorf("failed to store dataset: %w", err)
	}
	return id, nil
}

// Get renova a expiração sempre que a planilha é lida.
func (s *RedisStore) Get(ctx context.Context, id string) (*dataset.Table, error) {
	val, err := s.Client.Get(ctx, keyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset %s: %w", id, err)
	}

	var t dataset.Table
	if err := json.Unmarshal(val, &t); err != nil {
		return nil, fmt.Errorf("failed to decode dataset %s: %w", id, err)
	}

	// a leitura vale mesmo se a renovação falhar; a chave só expira antes
	if err := s.Client.Expire(ctx, keyPrefix+id, s.TTL).Err(); err != nil {
		log.Printf("[Store] falha ao renovar expiração de %s: %v", id, err)
	}
	return &t, nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.Client.Ping(ctx).Err()
}
