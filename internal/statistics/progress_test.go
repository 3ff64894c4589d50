package statistics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/at-ishikawa/wordquiz/internal/learning"
)

func attemptAt(wordID int64, result int, at time.Time) learning.Attempt {
	return learning.Attempt{WordID: wordID, Result: result, CreatedAt: at}
}

func TestCalculateDailyProgress(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	to := time.Date(2025, 3, 10, 20, 0, 0, 0, time.UTC)
	from := to.AddDate(0, 0, -6)

	tests := []struct {
		name     string
		attempts []learning.Attempt
		loc      *time.Location
		want     ProgressResult
	}{
		{
			name:     "no attempts",
			attempts: nil,
			want: ProgressResult{
				Days: []DailyProgress{},
			},
		},
		{
			name: "groups by day, newest first",
			attempts: []learning.Attempt{
				attemptAt(1, 1, time.Date(2025, 3, 8, 9, 0, 0, 0, time.UTC)),
				attemptAt(1, 0, time.Date(2025, 3, 8, 9, 5, 0, 0, time.UTC)),
				attemptAt(2, 1, time.Date(2025, 3, 9, 9, 0, 0, 0, time.UTC)),
				attemptAt(3, 1, time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)),
				attemptAt(2, 0, time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)),
			},
			want: ProgressResult{
				Days: []DailyProgress{
					{Date: "2025-03-10", Attempts: 2, Correct: 1, Accuracy: 0.5, UniqueWords: 2},
					{Date: "2025-03-09", Attempts: 1, Correct: 1, Accuracy: 1, UniqueWords: 1},
					{Date: "2025-03-08", Attempts: 2, Correct: 1, Accuracy: 0.5, UniqueWords: 1},
				},
				Aggregate: AggregateProgress{
					Attempts:    5,
					Correct:     3,
					Accuracy:    0.6,
					UniqueWords: 3,
					StreakDays:  3,
				},
			},
		},
		{
			name: "gap breaks the streak and out of range attempts are ignored",
			attempts: []learning.Attempt{
				attemptAt(1, 1, time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC)),
				attemptAt(1, 1, time.Date(2025, 3, 7, 9, 0, 0, 0, time.UTC)),
				attemptAt(2, 0, time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)),
				attemptAt(2, 0, time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC)),
			},
			want: ProgressResult{
				Days: []DailyProgress{
					{Date: "2025-03-10", Attempts: 1, Correct: 0, Accuracy: 0, UniqueWords: 1},
					{Date: "2025-03-07", Attempts: 1, Correct: 1, Accuracy: 1, UniqueWords: 1},
				},
				Aggregate: AggregateProgress{
					Attempts:    2,
					Correct:     1,
					Accuracy:    0.5,
					UniqueWords: 2,
					StreakDays:  1,
				},
			},
		},
		{
			name: "no attempt on the last day means no streak",
			attempts: []learning.Attempt{
				attemptAt(1, 1, time.Date(2025, 3, 9, 9, 0, 0, 0, time.UTC)),
			},
			want: ProgressResult{
				Days: []DailyProgress{
					{Date: "2025-03-09", Attempts: 1, Correct: 1, Accuracy: 1, UniqueWords: 1},
				},
				Aggregate: AggregateProgress{
					Attempts:    1,
					Correct:     1,
					Accuracy:    1,
					UniqueWords: 1,
				},
			},
		},
		{
			name: "days follow the location",
			loc:  tokyo,
			attempts: []learning.Attempt{
				// 2025-03-10 23:30 UTC is 2025-03-11 in Tokyo, and so is the end of the range
				attemptAt(1, 1, time.Date(2025, 3, 10, 23, 30, 0, 0, time.UTC)),
				attemptAt(1, 1, time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)),
			},
			want: ProgressResult{
				Days: []DailyProgress{
					{Date: "2025-03-11", Attempts: 1, Correct: 1, Accuracy: 1, UniqueWords: 1},
					{Date: "2025-03-10", Attempts: 1, Correct: 1, Accuracy: 1, UniqueWords: 1},
				},
				Aggregate: AggregateProgress{
					Attempts:    2,
					Correct:     2,
					Accuracy:    1,
					UniqueWords: 1,
					StreakDays:  2,
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateDailyProgress(tt.attempts, from, to, tt.loc)
			assert.Equal(t, tt.want.Days, got.Days)
			assert.Equal(t, tt.want.Aggregate.Attempts, got.Aggregate.Attempts)
			assert.Equal(t, tt.want.Aggregate.Correct, got.Aggregate.Correct)
			assert.InDelta(t, tt.want.Aggregate.Accuracy, got.Aggregate.Accuracy, 1e-9)
			assert.Equal(t, tt.want.Aggregate.UniqueWords, got.Aggregate.UniqueWords)
			assert.Equal(t, tt.want.Aggregate.StreakDays, got.Aggregate.StreakDays)
		})
	}
}
