// Package learning stores per-learner word weights and the attempt log.
package learning

import (
	"time"

	"github.com/google/uuid"
)

// WordWeight is a learner's selection weight for a word.
type WordWeight struct {
	LearnerID uuid.UUID `db:"learner_id" json:"learner_id"`
	WordID    int64     `db:"word_id" json:"word_id"`
	Weight    float64   `db:"weight" json:"weight"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Attempt is one graded answer. Attempts are append-only.
type Attempt struct {
	ID        int64     `db:"id" json:"id"`
	LearnerID uuid.UUID `db:"learner_id" json:"learner_id"`
	WordID    int64     `db:"word_id" json:"word_id"`
	// Result is 1 for a correct answer and 0 otherwise.
	Result    int       `db:"result" json:"result"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// IsCorrect reports whether the attempt was answered correctly.
func (a Attempt) IsCorrect() bool {
	return a.Result == 1
}
