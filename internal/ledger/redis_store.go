package ledger

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps the key/value space in Redis under a namespace prefix.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisStore creates a RedisStore. Every key is stored as prefix+key.
func NewRedisStore(client redis.UniversalClient, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) key(k string) string {
	return s.prefix + k
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := s.client.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %q: %w", key, err)
	}
	return value, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %q: %w", key, err)
	}
	return nil
}

// Commit WATCHes the keys in reads, verifies their values and applies every
// write inside a MULTI/EXEC block. A watched key modified before EXEC aborts
// the transaction with ErrConflict.
func (s *RedisStore) Commit(ctx context.Context, reads []Read, writes []Write) error {
	watched := make([]string, 0, len(reads))
	for _, r := range reads {
		watched = append(watched, s.key(r.Key))
	}

	err := s.client.Watch(ctx, func(tx *redis.Tx) error {
		for _, r := range reads {
			current, err := tx.Get(ctx, s.key(r.Key)).Bytes()
			found := true
			if errors.Is(err, redis.Nil) {
				found = false
			} else if err != nil {
				return fmt.Errorf("redis verify %q: %w", r.Key, err)
			}
			if found != r.Found || !bytes.Equal(current, r.Value) {
				return ErrConflict
			}
		}

		_, err := tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			for _, w := range writes {
				pipe.Set(ctx, s.key(w.Key), w.Value, 0)
			}
			return nil
		})
		return err
	}, watched...)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrConflict), errors.Is(err, redis.TxFailedErr):
		return ErrConflict
	default:
		return fmt.Errorf("redis commit: %w", err)
	}
}
