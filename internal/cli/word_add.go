package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/at-ishikawa/wordquiz/internal/vocabulary"
)

// WordAddCLI drafts a word with the generator and stores it after the learner confirms.
type WordAddCLI struct {
	*InteractiveQuizCLI
	learnerID uuid.UUID
	words     WordService
	level     vocabulary.Level
}

func NewWordAddCLI(cli *InteractiveQuizCLI, learnerID uuid.UUID, words WordService) *WordAddCLI {
	return &WordAddCLI{
		InteractiveQuizCLI: cli,
		learnerID:          learnerID,
		words:              words,
	}
}

// WithLevel replaces the generated level of every draft. The zero Level keeps the generated one.
func (c *WordAddCLI) WithLevel(level vocabulary.Level) *WordAddCLI {
	c.level = level
	return c
}

// Add returns the stored word, or nil when the learner discards the draft.
func (c *WordAddCLI) Add(ctx context.Context, raw string) (*vocabulary.Word, error) {
	draft, err := c.words.Draft(ctx, c.learnerID, raw)
	if err != nil {
		return nil, fmt.Errorf("words.Draft(%s) > %w", raw, err)
	}
	if c.level.IsValid() {
		draft.Level = c.level
	}
	c.printWord(draft)

	ok, err := c.confirm("Add this word?")
	if err != nil {
		return nil, err
	}
	if !ok {
		_, _ = fmt.Fprintln(c.stdoutWriter, "Discarded.")
		return nil, nil
	}

	if err := c.words.Add(ctx, &draft); err != nil {
		return nil, fmt.Errorf("words.Add(%s) > %w", draft.Name, err)
	}
	_, _ = c.green.Fprintf(c.stdoutWriter, "Added %s (id %d)\n", draft.Name, draft.ID)
	return &draft, nil
}

func (c *WordAddCLI) printWord(word vocabulary.Word) {
	out := c.stdoutWriter
	_, _ = c.bold.Fprintf(out, "%s", word.Name)
	_, _ = fmt.Fprintf(out, " (%s, %s)\n", word.PartOfSpeech, word.Level)
	_, _ = fmt.Fprintf(out, "Meaning: %s\n", word.Meaning)
	for _, example := range word.Examples {
		_, _ = fmt.Fprintf(out, "  - %s\n", c.italic.Sprint(strings.TrimSpace(example)))
	}
}
