package vocabulary_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_vocabulary "github.com/at-ishikawa/wordquiz/internal/mocks/vocabulary"
	"github.com/at-ishikawa/wordquiz/internal/vocabulary"
)

// fakeRedis keeps string values in memory. Unused commands panic through the nil embedded interface.
type fakeRedis struct {
	redis.Cmdable
	values map[string]string
	err    error
	ttls   map[string]time.Duration
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{
		values: map[string]string{},
		ttls:   map[string]time.Duration{},
	}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.err != nil {
		return redis.NewStringResult("", f.err)
	}
	v, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	if f.err != nil {
		return redis.NewStatusResult("", f.err)
	}
	switch v := value.(type) {
	case []byte:
		f.values[key] = string(v)
	case string:
		f.values[key] = v
	}
	f.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Incr(_ context.Context, key string) *redis.IntCmd {
	if f.err != nil {
		return redis.NewIntResult(0, f.err)
	}
	var n int64
	if v, ok := f.values[key]; ok {
		_ = json.Unmarshal([]byte(v), &n)
	}
	n++
	b, _ := json.Marshal(n)
	f.values[key] = string(b)
	return redis.NewIntResult(n, nil)
}

func cachedWords() []vocabulary.Word {
	return []vocabulary.Word{
		{
			ID: 1, Name: "abandon", PartOfSpeech: "verb", Meaning: "to leave behind",
			Examples: vocabulary.Examples{"They had to ____ the car."}, Level: vocabulary.LevelB2,
			Source: vocabulary.SourceOxford, CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}
}

func TestCachedWordRepository_FindVisibleTo(t *testing.T) {
	learnerID := uuid.MustParse("5b0f8f3e-8a36-4c55-9d7c-0d1f1e0c2a11")

	t.Run("second read is served from the cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		inner := mock_vocabulary.NewMockWordRepository(ctrl)
		inner.EXPECT().FindVisibleTo(gomock.Any(), learnerID).Return(cachedWords(), nil).Times(1)

		client := newFakeRedis()
		repo := vocabulary.NewCachedWordRepository(inner, client, time.Minute)

		first, err := repo.FindVisibleTo(context.Background(), learnerID)
		require.NoError(t, err)
		second, err := repo.FindVisibleTo(context.Background(), learnerID)
		require.NoError(t, err)

		assert.Equal(t, cachedWords(), first)
		assert.Equal(t, first, second)
		assert.Equal(t, time.Minute, client.ttls["wordquiz:words:0:"+learnerID.String()])
	})

	t.Run("create invalidates cached pools", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		inner := mock_vocabulary.NewMockWordRepository(ctrl)
		added := vocabulary.Word{
			Name: "serendipity", PartOfSpeech: "noun", Meaning: "a happy accident",
			Examples: vocabulary.Examples{"It was pure ____."}, Level: vocabulary.LevelC1,
			Source: vocabulary.SourceCustom, OwnerID: uuid.NullUUID{UUID: learnerID, Valid: true},
		}
		gomock.InOrder(
			inner.EXPECT().FindVisibleTo(gomock.Any(), learnerID).Return(cachedWords(), nil),
			inner.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, w *vocabulary.Word) error {
				w.ID = 2
				return nil
			}),
			inner.EXPECT().FindVisibleTo(gomock.Any(), learnerID).Return(append(cachedWords(), added), nil),
		)

		client := newFakeRedis()
		repo := vocabulary.NewCachedWordRepository(inner, client, time.Minute)

		before, err := repo.FindVisibleTo(context.Background(), learnerID)
		require.NoError(t, err)
		require.Len(t, before, 1)

		require.NoError(t, repo.Create(context.Background(), &added))
		assert.Equal(t, int64(2), added.ID)

		after, err := repo.FindVisibleTo(context.Background(), learnerID)
		require.NoError(t, err)
		assert.Len(t, after, 2)
	})

	t.Run("redis failure falls back to the database", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		inner := mock_vocabulary.NewMockWordRepository(ctrl)
		inner.EXPECT().FindVisibleTo(gomock.Any(), learnerID).Return(cachedWords(), nil).Times(2)

		client := newFakeRedis()
		client.err = errors.New("connection refused")
		repo := vocabulary.NewCachedWordRepository(inner, client, time.Minute)

		for range 2 {
			got, err := repo.FindVisibleTo(context.Background(), learnerID)
			require.NoError(t, err)
			assert.Equal(t, cachedWords(), got)
		}
	})

	t.Run("corrupted entry is reloaded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		inner := mock_vocabulary.NewMockWordRepository(ctrl)
		inner.EXPECT().FindVisibleTo(gomock.Any(), learnerID).Return(cachedWords(), nil)

		client := newFakeRedis()
		client.values["wordquiz:words:0:"+learnerID.String()] = "{not json"
		repo := vocabulary.NewCachedWordRepository(inner, client, time.Minute)

		got, err := repo.FindVisibleTo(context.Background(), learnerID)
		require.NoError(t, err)
		assert.Equal(t, cachedWords(), got)
	})

	t.Run("database error is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		inner := mock_vocabulary.NewMockWordRepository(ctrl)
		inner.EXPECT().FindVisibleTo(gomock.Any(), learnerID).Return(nil, errors.New("db down"))

		repo := vocabulary.NewCachedWordRepository(inner, newFakeRedis(), time.Minute)
		_, err := repo.FindVisibleTo(context.Background(), learnerID)
		assert.Error(t, err)
	})
}

func TestCachedWordRepository_Create_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock_vocabulary.NewMockWordRepository(ctrl)
	inner.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("duplicate"))

	client := newFakeRedis()
	repo := vocabulary.NewCachedWordRepository(inner, client, time.Minute)

	err := repo.Create(context.Background(), &vocabulary.Word{Name: "abandon"})
	assert.Error(t, err)
	assert.NotContains(t, client.values, "wordquiz:words:generation")
}
