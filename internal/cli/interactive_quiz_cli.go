// Package cli implements the interactive terminal front end.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"

	"github.com/at-ishikawa/wordquiz/internal/quiz"
	"github.com/at-ishikawa/wordquiz/internal/vocabulary"
)

//go:generate mockgen -source=interactive_quiz_cli.go -destination=../mocks/cli/mock_session.go -package=mock_cli

// Session runs one round of an interactive loop. It returns errEnd when the loop should stop.
type Session interface {
	Session(ctx context.Context) error
}

// QuizService is the part of quiz.Service used by the terminal quiz.
type QuizService interface {
	NextQuestion(ctx context.Context, learnerID uuid.UUID) (quiz.Question, error)
	Submit(ctx context.Context, learnerID uuid.UUID, wordID int64, answer string) (quiz.Result, error)
	Skip(ctx context.Context, learnerID uuid.UUID, wordID int64) (quiz.Result, error)
	Hint(ctx context.Context, learnerID uuid.UUID, wordID int64, revealed []int) (quiz.Hint, error)
}

// WordService is the part of vocabulary.Service used to add words.
type WordService interface {
	Draft(ctx context.Context, learnerID uuid.UUID, raw string) (vocabulary.Word, error)
	Add(ctx context.Context, word *vocabulary.Word) error
}

var errEnd = errors.New("end")

// InteractiveQuizCLI holds the terminal state shared by the interactive commands
type InteractiveQuizCLI struct {
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	bold         *color.Color
	italic       *color.Color
	faint        *color.Color
	green        *color.Color
	red          *color.Color
}

func NewInteractiveQuizCLI(stdin io.Reader, stdout io.Writer) *InteractiveQuizCLI {
	if stdin == nil {
		stdin = os.Stdin
	}
	if stdout == nil {
		stdout = os.Stdout
	}
	return &InteractiveQuizCLI{
		stdinReader:  bufio.NewReader(stdin),
		stdoutWriter: stdout,
		bold:         color.New(color.Bold),
		italic:       color.New(color.Italic),
		faint:        color.New(color.Faint),
		green:        color.New(color.FgGreen),
		red:          color.New(color.FgRed),
	}
}

// Run repeats session until it ends, fails, or the process is interrupted.
func (cli *InteractiveQuizCLI) Run(ctx context.Context, session Session) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		for ctx.Err() == nil {
			if err := session.Session(ctx); err != nil {
				if !errors.Is(err, errEnd) {
					errCh <- err
				}
				return
			}
		}
	}()

	select {
	case <-ctx.Done():
		_, _ = fmt.Fprintln(cli.stdoutWriter, "\nReceived interrupt signal, exiting...")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("session > %w", err)
		}
	}
	return nil
}

// readLine returns the next input line without surrounding whitespace.
// A last line without a newline is still returned; io.EOF is returned only when nothing was read.
func (cli *InteractiveQuizCLI) readLine() (string, error) {
	line, err := cli.stdinReader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// confirm asks a yes/no question. Anything but "y" or "yes" is a no.
func (cli *InteractiveQuizCLI) confirm(prompt string) (bool, error) {
	_, _ = cli.bold.Fprintf(cli.stdoutWriter, "%s [y/N]: ", prompt)
	answer, err := cli.readLine()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, fmt.Errorf("readLine() > %w", err)
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
