package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache TTLs
const (
	TTLWorks      = 10 * time.Minute // work list changes rarely
	TTLCharacters = 1 * time.Minute  // published character lists
	TTLDefault    = 5 * time.Minute
)

// Cache key prefixes
const (
	PrefixWorks      = "works:"
	PrefixCharacters = "characters:work:"
)

// ErrMiss is returned when a key is not cached
var ErrMiss = errors.New("cache miss")

// Service is a thin JSON cache over Redis
type Service interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error

	// InvalidateWorkCharacters drops all cached published-character pages
	// for a work. Called after a review decision or deletion changes what
	// the public listing shows.
	InvalidateWorkCharacters(ctx context.Context, workID uint64) error
}

type service struct {
	client *redis.Client
}

// NewService creates a Redis-backed cache service
func NewService(client *redis.Client) Service {
	return &service{client: client}
}

func (s *service) Get(ctx context.Context, key string, dest interface{}) error {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrMiss
		}
		return err
	}
	return json.Unmarshal(data, dest)
}

func (s *service) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if ttl <= 0 {
		ttl = TTLDefault
	}
	return s.client.Set(ctx, key, data, ttl).Err()
}

func (s *service) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return s.client.Del(ctx, keys...).Err()
}

func (s *service) InvalidateWorkCharacters(ctx context.Context, workID uint64) error {
	pattern := fmt.Sprintf("%s%d:*", PrefixCharacters, workID)
	iter := s.client.Scan(ctx, 0, pattern, 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	return s.Delete(ctx, keys...)
}

// CharactersKey builds the cache key for one page of a work's published list
func CharactersKey(workID uint64, page, limit int) string {
	return fmt.Sprintf("%s%d:%d:%d", PrefixCharacters, workID, page, limit)
}
