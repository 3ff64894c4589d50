package vocabulary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/at-ishikawa/wordquiz/internal/inference"
)

// Service adds words to the catalog, optionally drafting them with an AI generator.
type Service struct {
	words     WordRepository
	generator inference.Client
	now       func() time.Time
}

// NewService creates a Service. generator may be nil when drafting is not needed.
func NewService(words WordRepository, generator inference.Client) *Service {
	return &Service{
		words:     words,
		generator: generator,
		now:       time.Now,
	}
}

// Draft generates an unsaved custom word for the learner.
func (s *Service) Draft(ctx context.Context, learnerID uuid.UUID, raw string) (Word, error) {
	name := NormalizeName(raw)
	if name == "" {
		return Word{}, fmt.Errorf("%w: word is required", ErrInvalidWord)
	}
	if s.generator == nil {
		return Word{}, ErrNoGenerator
	}
	if err := s.ensureNotExists(ctx, learnerID, name); err != nil {
		return Word{}, err
	}

	generated, err := s.generator.GenerateWord(ctx, inference.GenerateWordRequest{Word: name})
	if err != nil {
		return Word{}, fmt.Errorf("generator.GenerateWord(%s) > %w", name, err)
	}
	level, err := ParseLevel(generated.Level)
	if err != nil {
		return Word{}, fmt.Errorf("generated data for %s > %w", name, err)
	}

	return Word{
		Name:         name,
		PartOfSpeech: strings.TrimSpace(generated.PartOfSpeech),
		Meaning:      strings.TrimSpace(generated.Meaning),
		Examples:     Examples(generated.ExampleSentences),
		Level:        level,
		Source:       SourceCustom,
		OwnerID:      uuid.NullUUID{UUID: learnerID, Valid: true},
	}, nil
}

// Add validates and stores a word. Custom words are checked for duplicates among the owner's visible words.
func (s *Service) Add(ctx context.Context, word *Word) error {
	word.Name = NormalizeName(word.Name)
	if err := word.Validate(); err != nil {
		return err
	}
	owner := uuid.Nil
	if word.OwnerID.Valid {
		owner = word.OwnerID.UUID
	}
	if err := s.ensureNotExists(ctx, owner, word.Name); err != nil {
		return err
	}

	if word.CreatedAt.IsZero() {
		word.CreatedAt = s.now()
	}
	if err := s.words.Create(ctx, word); err != nil {
		return fmt.Errorf("words.Create(%s) > %w", word.Name, err)
	}
	slog.Default().Info("word added",
		"wordID", word.ID,
		"name", word.Name,
		"source", word.Source)
	return nil
}

// Import adds catalog words, skipping names that already exist. It returns the number of words added.
func (s *Service) Import(ctx context.Context, words []Word) (int, error) {
	var added int
	for i := range words {
		word := words[i]
		word.Source = SourceOxford
		word.OwnerID = uuid.NullUUID{}
		if err := s.Add(ctx, &word); err != nil {
			if errors.Is(err, ErrWordExists) {
				slog.Default().Debug("skipping an existing word", "name", word.Name)
				continue
			}
			return added, fmt.Errorf("import %s > %w", words[i].Name, err)
		}
		added++
	}
	return added, nil
}

func (s *Service) ensureNotExists(ctx context.Context, learnerID uuid.UUID, name string) error {
	existing, err := s.words.FindByName(ctx, learnerID, name)
	if err != nil {
		return fmt.Errorf("words.FindByName(%s) > %w", name, err)
	}
	if existing != nil {
		return fmt.Errorf("%w: %q", ErrWordExists, name)
	}
	return nil
}
