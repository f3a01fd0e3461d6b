package editor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"campusmarket/internal/models"
)

// Store keeps per-session page state: the editor draft and the search
// generation counter that guards against stale result overwrites.
type Store interface {
	Draft(ctx context.Context, sessionID string) (models.Draft, error)
	SaveDraft(ctx context.Context, sessionID string, d models.Draft) error
	NextSearchGeneration(ctx context.Context, sessionID string) (int64, error)
	SearchGeneration(ctx context.Context, sessionID string) (int64, error)
}

func draftKey(sessionID string) string {
	return fmt.Sprintf("draft:%s", sessionID)
}

func searchGenKey(sessionID string) string {
	return fmt.Sprintf("searchgen:%s", sessionID)
}

// RedisStore is the production Store. Keys expire with the session TTL so
// abandoned drafts clean themselves up.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func (s *RedisStore) Draft(ctx context.Context, sessionID string) (models.Draft, error) {
	data, err := s.rdb.Get(ctx, draftKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.Draft{Tab: TabUpload}, nil
	}
	if err != nil {
		return models.Draft{}, fmt.Errorf("load draft: %w", err)
	}
	var d models.Draft
	if err := json.Unmarshal(data, &d); err != nil {
		return models.Draft{}, fmt.Errorf("decode draft: %w", err)
	}
	return d, nil
}

func (s *RedisStore) SaveDraft(ctx context.Context, sessionID string, d models.Draft) error {
	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}
	if err := s.rdb.Set(ctx, draftKey(sessionID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	return nil
}

func (s *RedisStore) NextSearchGeneration(ctx context.Context, sessionID string) (int64, error) {
	gen, err := s.rdb.Incr(ctx, searchGenKey(sessionID)).Result()
	if err != nil {
		return 0, fmt.Errorf("bump search generation: %w", err)
	}
	s.rdb.Expire(ctx, searchGenKey(sessionID), s.ttl)
	return gen, nil
}

func (s *RedisStore) SearchGeneration(ctx context.Context, sessionID string) (int64, error) {
	gen, err := s.rdb.Get(ctx, searchGenKey(sessionID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read search generation: %w", err)
	}
	return gen, nil
}

// MemoryStore backs Store without Redis. Used when no Redis address is
// configured and throughout the tests.
type MemoryStore struct {
	mu     sync.Mutex
	drafts map[string]models.Draft
	gens   map[string]int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		drafts: make(map[string]models.Draft),
		gens:   make(map[string]int64),
	}
}

func (s *MemoryStore) Draft(ctx context.Context, sessionID string) (models.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.drafts[sessionID]
	if !ok {
		return models.Draft{Tab: TabUpload}, nil
	}
	return d, nil
}

func (s *MemoryStore) SaveDraft(ctx context.Context, sessionID string, d models.Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[sessionID] = d
	return nil
}

func (s *MemoryStore) NextSearchGeneration(ctx context.Context, sessionID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gens[sessionID]++
	return s.gens[sessionID], nil
}

func (s *MemoryStore) SearchGeneration(ctx context.Context, sessionID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gens[sessionID], nil
}
