package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/at-ishikawa/wordquiz/internal/quiz"
)

const (
	hintCommand = "?"
)

// SessionStats counts what happened in one terminal quiz.
type SessionStats struct {
	Questions int
	Correct   int
	Wrong     int
	Skipped   int
	Hints     int
}

// QuizSession asks one question per round.
// "?" reveals letters, an empty line skips the word and "quit" ends the quiz.
// A wrong answer is recorded and the same word is asked again.
type QuizSession struct {
	*InteractiveQuizCLI
	learnerID uuid.UUID
	quiz      QuizService
	stats     SessionStats
}

func NewQuizSession(cli *InteractiveQuizCLI, learnerID uuid.UUID, service QuizService) *QuizSession {
	return &QuizSession{
		InteractiveQuizCLI: cli,
		learnerID:          learnerID,
		quiz:               service,
	}
}

func (s *QuizSession) Stats() SessionStats {
	return s.stats
}

func (s *QuizSession) Session(ctx context.Context) error {
	question, err := s.quiz.NextQuestion(ctx, s.learnerID)
	if err != nil {
		if errors.Is(err, quiz.ErrNoWords) {
			_, _ = fmt.Fprintln(s.stdoutWriter, "No words to practice. Import the catalog or add a word first.")
			return errEnd
		}
		return fmt.Errorf("quiz.NextQuestion() > %w", err)
	}
	s.stats.Questions++
	s.printQuestion(question)

	pattern := strings.Repeat("_", question.Length)
	var revealed []int
	for {
		_, _ = s.bold.Fprintf(s.stdoutWriter, "Answer %s: ", pattern)
		input, err := s.readLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return errEnd
			}
			return fmt.Errorf("readLine() > %w", err)
		}

		switch strings.ToLower(input) {
		case "quit", "exit":
			return errEnd
		case hintCommand:
			hint, err := s.quiz.Hint(ctx, s.learnerID, question.WordID, revealed)
			if err != nil {
				return fmt.Errorf("quiz.Hint() > %w", err)
			}
			if len(hint.Positions) == 0 {
				_, _ = fmt.Fprintln(s.stdoutWriter, "Every letter is already revealed.")
			} else {
				s.stats.Hints++
			}
			revealed = hint.Revealed
			pattern = hint.Pattern
		case "":
			result, err := s.quiz.Skip(ctx, s.learnerID, question.WordID)
			if err != nil {
				return fmt.Errorf("quiz.Skip() > %w", err)
			}
			s.stats.Skipped++
			_, _ = fmt.Fprintf(s.stdoutWriter, "⏭  Skipped. The answer was %s %s\n\n",
				s.bold.Sprint(result.Answer),
				s.faint.Sprintf("(weight %g → %g)", result.PreviousWeight, result.Weight))
			return nil
		default:
			result, err := s.quiz.Submit(ctx, s.learnerID, question.WordID, input)
			if err != nil {
				return fmt.Errorf("quiz.Submit() > %w", err)
			}
			if result.Correct {
				s.stats.Correct++
				_, _ = s.green.Fprintf(s.stdoutWriter, "✅ Correct! %s ", s.bold.Sprint(result.Answer))
				_, _ = s.faint.Fprintf(s.stdoutWriter, "(weight %g → %g)\n\n", result.PreviousWeight, result.Weight)
				return nil
			}
			s.stats.Wrong++
			_, _ = s.red.Fprintf(s.stdoutWriter, "❌ Wrong. ")
			_, _ = fmt.Fprintln(s.stdoutWriter, "Try again, \"?\" for a hint or an empty line to skip.")
		}
	}
}

func (s *QuizSession) printQuestion(question quiz.Question) {
	out := s.stdoutWriter
	_, _ = s.bold.Fprintf(out, "[%s] %s\n", question.Level, question.PartOfSpeech)
	_, _ = fmt.Fprintf(out, "Meaning: %s\n", question.Meaning)
	if question.Example != "" {
		_, _ = fmt.Fprintf(out, "Example: %s\n", s.italic.Sprint(question.Example))
	}
	_, _ = s.faint.Fprintf(out, "%d letters\n", question.Length)
}

// PrintSummary writes the counts of the finished quiz.
func (s *QuizSession) PrintSummary() {
	stats := s.stats
	_, _ = s.bold.Fprintln(s.stdoutWriter, "Summary")
	_, _ = fmt.Fprintf(s.stdoutWriter, "Questions: %d, correct: %d, wrong: %d, skipped: %d, hints: %d\n",
		stats.Questions, stats.Correct, stats.Wrong, stats.Skipped, stats.Hints)
}
