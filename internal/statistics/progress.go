// Package statistics aggregates a learner's attempt log into progress reports.
package statistics

import (
	"sort"
	"time"

	"github.com/at-ishikawa/wordquiz/internal/learning"
)

const dateLayout = "2006-01-02"

// DailyProgress holds the attempt counts for one calendar day
type DailyProgress struct {
	Date        string  `json:"date"` // "2025-01-31" in the report's location
	Attempts    int     `json:"attempts"`
	Correct     int     `json:"correct"`
	Accuracy    float64 `json:"accuracy"` // Correct / Attempts, 0 when there are no attempts
	UniqueWords int     `json:"unique_words"`
}

// AggregateProgress holds totals across the whole report range
type AggregateProgress struct {
	Attempts    int     `json:"attempts"`
	Correct     int     `json:"correct"`
	Accuracy    float64 `json:"accuracy"`
	UniqueWords int     `json:"unique_words"` // Words practiced at least once, deduplicated across days
	StreakDays  int     `json:"streak_days"`  // Consecutive days with an attempt, ending on the last day of the range
}

// ProgressResult holds both per-day and aggregate progress
type ProgressResult struct {
	Days      []DailyProgress   `json:"days"` // Newest first; days without attempts are omitted
	Aggregate AggregateProgress `json:"aggregate"`
}

type dayData struct {
	attempts int
	correct  int
	words    map[int64]struct{}
}

// CalculateDailyProgress groups attempts by calendar day in loc.
// Only attempts whose day falls between the days of from and to, inclusive, are counted.
func CalculateDailyProgress(attempts []learning.Attempt, from, to time.Time, loc *time.Location) ProgressResult {
	if loc == nil {
		loc = time.UTC
	}
	firstDay := from.In(loc).Format(dateLayout)
	lastDay := to.In(loc).Format(dateLayout)

	days := make(map[string]*dayData)
	words := make(map[int64]struct{})
	var aggregate AggregateProgress
	for _, attempt := range attempts {
		day := attempt.CreatedAt.In(loc).Format(dateLayout)
		// ISO dates compare lexically
		if day < firstDay || day > lastDay {
			continue
		}
		if days[day] == nil {
			days[day] = &dayData{words: make(map[int64]struct{})}
		}
		days[day].attempts++
		days[day].words[attempt.WordID] = struct{}{}
		words[attempt.WordID] = struct{}{}
		aggregate.Attempts++
		if attempt.IsCorrect() {
			days[day].correct++
			aggregate.Correct++
		}
	}

	result := ProgressResult{
		Days: make([]DailyProgress, 0, len(days)),
	}
	for day, data := range days {
		result.Days = append(result.Days, DailyProgress{
			Date:        day,
			Attempts:    data.attempts,
			Correct:     data.correct,
			Accuracy:    accuracy(data.correct, data.attempts),
			UniqueWords: len(data.words),
		})
	}
	sort.Slice(result.Days, func(i, j int) bool {
		return result.Days[i].Date > result.Days[j].Date
	})

	aggregate.Accuracy = accuracy(aggregate.Correct, aggregate.Attempts)
	aggregate.UniqueWords = len(words)
	aggregate.StreakDays = streak(days, to.In(loc))
	result.Aggregate = aggregate
	return result
}

func accuracy(correct, attempts int) float64 {
	if attempts == 0 {
		return 0
	}
	return float64(correct) / float64(attempts)
}

func streak(days map[string]*dayData, last time.Time) int {
	var count int
	for day := last; days[day.Format(dateLayout)] != nil; day = day.AddDate(0, 0, -1) {
		count++
	}
	return count
}
