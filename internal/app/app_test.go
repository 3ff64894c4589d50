package app

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/wordquiz/internal/config"
	"github.com/at-ishikawa/wordquiz/internal/testutil"
	"github.com/at-ishikawa/wordquiz/internal/vocabulary"
)

func loadTestConfig(t *testing.T) *config.Config {
	t.Helper()
	t.Setenv("WORDQUIZ_JWT_SECRET", "")
	t.Setenv("OPENAI_API_KEY", "")
	cfg, err := config.Load(testutil.SetupTestConfig(t, t.TempDir()))
	require.NoError(t, err)
	return cfg
}

func TestWire(t *testing.T) {
	tests := []struct {
		name      string
		withCache bool
		wantWords any
	}{
		{name: "without cache", wantWords: &vocabulary.DBWordRepository{}},
		{name: "with cache", withCache: true, wantWords: &vocabulary.CachedWordRepository{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := loadTestConfig(t)
			db, _ := testutil.NewMockDB(t)

			var cache redis.Cmdable
			if tt.withCache {
				client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:6379"})
				t.Cleanup(func() {
					_ = client.Close()
				})
				cache = client
			}

			got, err := Wire(cfg, db, cache, nil)
			require.NoError(t, err)

			assert.IsType(t, tt.wantWords, got.Words)
			assert.Nil(t, got.Generator)
			assert.Equal(t, "Asia/Tokyo", got.Location.String())

			learnerID := uuid.New()
			token, err := got.Auth.Issue(learnerID)
			require.NoError(t, err)
			verified, err := got.Auth.Verify(token)
			require.NoError(t, err)
			assert.Equal(t, learnerID, verified)
		})
	}
}

func TestWire_InvalidTimezone(t *testing.T) {
	cfg := loadTestConfig(t)
	cfg.Quiz.Timezone = "Mars/Olympus"
	db, _ := testutil.NewMockDB(t)

	_, err := Wire(cfg, db, nil, nil)
	assert.ErrorContains(t, err, "time.LoadLocation")
}

func TestApp_HistoryAndClose(t *testing.T) {
	cfg := loadTestConfig(t)
	db, mock := testutil.NewMockDB(t)
	learnerID := uuid.MustParse("6f1c2a8e-3b4d-4e5f-8a9b-0c1d2e3f4a5b")
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM words WHERE id = ?")).
		WithArgs(int64(1), learnerID.String()).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "part_of_speech", "meaning", "examples", "level", "source", "owner_id", "created_at",
		}).AddRow(1, "abandon", "verb", "to leave behind", []byte(`["They had to ____ the car."]`), "B2", "oxford", nil, now))
	mock.ExpectQuery(regexp.QuoteMeta("FROM attempts WHERE learner_id = ? AND word_id = ?")).
		WithArgs(learnerID.String(), int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "learner_id", "word_id", "result", "created_at"}).
			AddRow(3, learnerID.String(), 1, 1, now))
	mock.ExpectClose()

	a, err := Wire(cfg, db, nil, nil)
	require.NoError(t, err)

	attempts, err := a.Quiz.History(context.Background(), learnerID, 1)
	require.NoError(t, err)
	require.Len(t, attempts, 1)
	assert.True(t, attempts[0].IsCorrect())

	assert.NoError(t, a.Close())
	assert.NoError(t, a.Close())
}
