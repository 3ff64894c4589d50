package vocabulary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	cacheKeyPrefix     = "wordquiz:words"
	cacheGenerationKey = cacheKeyPrefix + ":generation"
)

// CachedWordRepository caches FindVisibleTo results in Redis.
//
// Every write bumps a catalog generation counter that is part of the cache key,
// so stale pools are never read after a word is added.
type CachedWordRepository struct {
	next   WordRepository
	client redis.Cmdable
	ttl    time.Duration
}

// NewCachedWordRepository wraps next with a Redis read-through cache.
func NewCachedWordRepository(next WordRepository, client redis.Cmdable, ttl time.Duration) *CachedWordRepository {
	return &CachedWordRepository{
		next:   next,
		client: client,
		ttl:    ttl,
	}
}

func (r *CachedWordRepository) FindVisibleTo(ctx context.Context, learnerID uuid.UUID) ([]Word, error) {
	generation, err := r.generation(ctx)
	if err != nil {
		slog.Default().Warn("failed to read the word cache generation",
			"learnerID", learnerID,
			"error", err)
		return r.next.FindVisibleTo(ctx, learnerID)
	}

	key := visibleWordsKey(generation, learnerID)
	cached, err := r.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var words []Word
		if err := json.Unmarshal(cached, &words); err == nil {
			return words, nil
		}
		slog.Default().Warn("discarding a corrupted word cache entry",
			"key", key,
			"error", err)
	case !errors.Is(err, redis.Nil):
		slog.Default().Warn("failed to read the word cache",
			"key", key,
			"error", err)
	}

	words, err := r.next.FindVisibleTo(ctx, learnerID)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(words)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal(words) > %w", err)
	}
	if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
		slog.Default().Warn("failed to write the word cache",
			"key", key,
			"error", err)
	}
	return words, nil
}

func (r *CachedWordRepository) FindByID(ctx context.Context, learnerID uuid.UUID, id int64) (*Word, error) {
	return r.next.FindByID(ctx, learnerID, id)
}

func (r *CachedWordRepository) FindByName(ctx context.Context, learnerID uuid.UUID, name string) (*Word, error) {
	return r.next.FindByName(ctx, learnerID, name)
}

func (r *CachedWordRepository) Create(ctx context.Context, word *Word) error {
	if err := r.next.Create(ctx, word); err != nil {
		return err
	}
	if err := r.client.Incr(ctx, cacheGenerationKey).Err(); err != nil {
		// Entries still expire after the TTL.
		slog.Default().Warn("failed to invalidate the word cache",
			"wordID", word.ID,
			"error", err)
	}
	return nil
}

func (r *CachedWordRepository) generation(ctx context.Context) (int64, error) {
	generation, err := r.client.Get(ctx, cacheGenerationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("client.Get(%s) > %w", cacheGenerationKey, err)
	}
	return generation, nil
}

func visibleWordsKey(generation int64, learnerID uuid.UUID) string {
	return fmt.Sprintf("%s:%d:%s", cacheKeyPrefix, generation, learnerID)
}
