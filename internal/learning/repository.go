package learning

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=repository.go -destination=../mocks/learning/mock_repository.go -package=mock_learning

// DefaultBatchSize is the number of rows written per statement by InsertMissing.
const DefaultBatchSize = 100

// WeightRepository defines operations for reading and writing word weights.
type WeightRepository interface {
	FindByLearner(ctx context.Context, learnerID uuid.UUID) ([]WordWeight, error)
	// Find returns the weight record, or nil if the learner has none for the word.
	Find(ctx context.Context, learnerID uuid.UUID, wordID int64) (*WordWeight, error)
	Upsert(ctx context.Context, weight WordWeight) error
	InsertMissing(ctx context.Context, weights []WordWeight, chunkSize int) error
}

// Recorder stores a graded attempt together with the resulting weight.
type Recorder interface {
	// Record writes both rows or neither.
	Record(ctx context.Context, weight WordWeight, attempt *Attempt) error
}

// AttemptRepository defines operations for the attempt log.
type AttemptRepository interface {
	Create(ctx context.Context, attempt *Attempt) error
	FindByLearnerAndWord(ctx context.Context, learnerID uuid.UUID, wordID int64) ([]Attempt, error)
	FindByLearnerSince(ctx context.Context, learnerID uuid.UUID, since time.Time) ([]Attempt, error)
}

const (
	upsertWeightQuery  = "INSERT INTO learner_word_weights (learner_id, word_id, weight, updated_at) VALUES (?, ?, ?, ?)" + upsertWeightSuffix
	upsertWeightSuffix = " ON DUPLICATE KEY UPDATE weight = VALUES(weight), updated_at = VALUES(updated_at)"
	insertAttemptQuery = "INSERT INTO attempts (learner_id, word_id, result, created_at) VALUES (?, ?, ?, ?)"
)

// insertMissingSuffix turns a duplicate row into a no-op so that a concurrently recorded weight is kept.
const insertMissingSuffix = " ON DUPLICATE KEY UPDATE word_id = word_id"

// DBWeightRepository implements WeightRepository using MySQL.
type DBWeightRepository struct {
	db *sqlx.DB
}

// NewDBWeightRepository creates a new DBWeightRepository.
func NewDBWeightRepository(db *sqlx.DB) *DBWeightRepository {
	return &DBWeightRepository{db: db}
}

func (r *DBWeightRepository) FindByLearner(ctx context.Context, learnerID uuid.UUID) ([]WordWeight, error) {
	var weights []WordWeight
	if err := r.db.SelectContext(ctx, &weights,
		"SELECT learner_id, word_id, weight, updated_at FROM learner_word_weights WHERE learner_id = ? ORDER BY word_id",
		learnerID); err != nil {
		return nil, fmt.Errorf("db.SelectContext(learner_word_weights) > %w", err)
	}
	return weights, nil
}

func (r *DBWeightRepository) Find(ctx context.Context, learnerID uuid.UUID, wordID int64) (*WordWeight, error) {
	var weight WordWeight
	err := r.db.GetContext(ctx, &weight,
		"SELECT learner_id, word_id, weight, updated_at FROM learner_word_weights WHERE learner_id = ? AND word_id = ?",
		learnerID, wordID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(learner_word_weight) > %w", err)
	}
	return &weight, nil
}

// Upsert inserts the weight or replaces the existing one for the same learner and word.
func (r *DBWeightRepository) Upsert(ctx context.Context, weight WordWeight) error {
	if _, err := r.db.ExecContext(ctx, upsertWeightQuery,
		weight.LearnerID, weight.WordID, weight.Weight, weight.UpdatedAt); err != nil {
		return fmt.Errorf("db.ExecContext(upsert learner_word_weight) > %w", err)
	}
	return nil
}

// InsertMissing creates the weights that do not exist yet, in multi-row statements of at most chunkSize rows.
// Existing rows for the same learner and word are left unchanged.
// A non-positive chunkSize uses DefaultBatchSize.
func (r *DBWeightRepository) InsertMissing(ctx context.Context, weights []WordWeight, chunkSize int) error {
	if chunkSize <= 0 {
		chunkSize = DefaultBatchSize
	}
	for start := 0; start < len(weights); start += chunkSize {
		end := min(start+chunkSize, len(weights))
		chunk := weights[start:end]

		placeholders := make([]string, 0, len(chunk))
		args := make([]any, 0, len(chunk)*4)
		for _, w := range chunk {
			placeholders = append(placeholders, "(?, ?, ?, ?)")
			args = append(args, w.LearnerID, w.WordID, w.Weight, w.UpdatedAt)
		}
		query := "INSERT INTO learner_word_weights (learner_id, word_id, weight, updated_at) VALUES " +
			strings.Join(placeholders, ", ") + insertMissingSuffix
		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("db.ExecContext(insert learner_word_weights %d-%d) > %w", start, end, err)
		}
	}
	return nil
}

// DBAttemptRepository implements AttemptRepository using MySQL.
type DBAttemptRepository struct {
	db *sqlx.DB
}

// NewDBAttemptRepository creates a new DBAttemptRepository.
func NewDBAttemptRepository(db *sqlx.DB) *DBAttemptRepository {
	return &DBAttemptRepository{db: db}
}

// Create appends an attempt and sets its ID.
func (r *DBAttemptRepository) Create(ctx context.Context, attempt *Attempt) error {
	result, err := r.db.ExecContext(ctx, insertAttemptQuery,
		attempt.LearnerID, attempt.WordID, attempt.Result, attempt.CreatedAt)
	if err != nil {
		return fmt.Errorf("db.ExecContext(insert attempt) > %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("result.LastInsertId() > %w", err)
	}
	attempt.ID = id
	return nil
}

// FindByLearnerAndWord returns the attempts for a word, oldest first.
func (r *DBAttemptRepository) FindByLearnerAndWord(ctx context.Context, learnerID uuid.UUID, wordID int64) ([]Attempt, error) {
	var attempts []Attempt
	if err := r.db.SelectContext(ctx, &attempts,
		"SELECT id, learner_id, word_id, result, created_at FROM attempts WHERE learner_id = ? AND word_id = ? ORDER BY created_at, id",
		learnerID, wordID); err != nil {
		return nil, fmt.Errorf("db.SelectContext(attempts by word) > %w", err)
	}
	return attempts, nil
}

// FindByLearnerSince returns the learner's attempts created at or after since, oldest first.
func (r *DBAttemptRepository) FindByLearnerSince(ctx context.Context, learnerID uuid.UUID, since time.Time) ([]Attempt, error) {
	var attempts []Attempt
	if err := r.db.SelectContext(ctx, &attempts,
		"SELECT id, learner_id, word_id, result, created_at FROM attempts WHERE learner_id = ? AND created_at >= ? ORDER BY created_at, id",
		learnerID, since); err != nil {
		return nil, fmt.Errorf("db.SelectContext(attempts since) > %w", err)
	}
	return attempts, nil
}

// DBRecorder implements Recorder with a MySQL transaction.
type DBRecorder struct {
	db *sqlx.DB
}

// NewDBRecorder creates a new DBRecorder.
func NewDBRecorder(db *sqlx.DB) *DBRecorder {
	return &DBRecorder{db: db}
}

func (r *DBRecorder) Record(ctx context.Context, weight WordWeight, attempt *Attempt) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("db.BeginTxx() > %w", err)
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				err = errors.Join(err, fmt.Errorf("tx.Rollback() > %w", rollbackErr))
			}
		}
	}()

	if _, err = tx.ExecContext(ctx, upsertWeightQuery,
		weight.LearnerID, weight.WordID, weight.Weight, weight.UpdatedAt); err != nil {
		return fmt.Errorf("tx.ExecContext(upsert learner_word_weight) > %w", err)
	}
	result, err := tx.ExecContext(ctx, insertAttemptQuery,
		attempt.LearnerID, attempt.WordID, attempt.Result, attempt.CreatedAt)
	if err != nil {
		return fmt.Errorf("tx.ExecContext(insert attempt) > %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("result.LastInsertId() > %w", err)
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("tx.Commit() > %w", err)
	}
	attempt.ID = id
	return nil
}
