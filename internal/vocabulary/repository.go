package vocabulary

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=repository.go -destination=../mocks/vocabulary/mock_repository.go -package=mock_vocabulary

// WordRepository defines operations for reading and adding words.
type WordRepository interface {
	// FindVisibleTo returns the catalog words and the learner's own custom words, ordered by ID.
	FindVisibleTo(ctx context.Context, learnerID uuid.UUID) ([]Word, error)
	// FindByID returns the word visible to the learner with the given ID, or nil if not found.
	FindByID(ctx context.Context, learnerID uuid.UUID, id int64) (*Word, error)
	// FindByName returns the word visible to the learner with the given name, or nil if not found.
	FindByName(ctx context.Context, learnerID uuid.UUID, name string) (*Word, error)
	Create(ctx context.Context, word *Word) error
}

const (
	wordColumns = "id, name, part_of_speech, meaning, examples, level, source, owner_id, created_at"
	visibleTo   = "(source = 'oxford' OR (source = 'custom' AND owner_id = ?))"
)

// DBWordRepository implements WordRepository using MySQL.
type DBWordRepository struct {
	db *sqlx.DB
}

// NewDBWordRepository creates a new DBWordRepository.
func NewDBWordRepository(db *sqlx.DB) *DBWordRepository {
	return &DBWordRepository{db: db}
}

func (r *DBWordRepository) FindVisibleTo(ctx context.Context, learnerID uuid.UUID) ([]Word, error) {
	var words []Word
	if err := r.db.SelectContext(ctx, &words,
		"SELECT "+wordColumns+" FROM words WHERE "+visibleTo+" ORDER BY id",
		learnerID); err != nil {
		return nil, fmt.Errorf("db.SelectContext(visible words) > %w", err)
	}
	return words, nil
}

func (r *DBWordRepository) FindByID(ctx context.Context, learnerID uuid.UUID, id int64) (*Word, error) {
	var word Word
	err := r.db.GetContext(ctx, &word,
		"SELECT "+wordColumns+" FROM words WHERE id = ? AND "+visibleTo,
		id, learnerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(word by id) > %w", err)
	}
	return &word, nil
}

func (r *DBWordRepository) FindByName(ctx context.Context, learnerID uuid.UUID, name string) (*Word, error) {
	var word Word
	err := r.db.GetContext(ctx, &word,
		"SELECT "+wordColumns+" FROM words WHERE name = ? AND "+visibleTo+" ORDER BY id LIMIT 1",
		name, learnerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(word by name) > %w", err)
	}
	return &word, nil
}

// Create inserts a new word and sets its ID.
func (r *DBWordRepository) Create(ctx context.Context, word *Word) error {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO words (name, part_of_speech, meaning, examples, level, source, owner_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		word.Name, word.PartOfSpeech, word.Meaning, word.Examples, word.Level,
		word.Source, word.OwnerID, word.CreatedAt)
	if err != nil {
		return fmt.Errorf("db.ExecContext(insert word) > %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("result.LastInsertId() > %w", err)
	}
	word.ID = id
	return nil
}
