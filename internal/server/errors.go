package server

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/at-ishikawa/wordquiz/internal/auth"
	"github.com/at-ishikawa/wordquiz/internal/quiz"
	"github.com/at-ishikawa/wordquiz/internal/scoring"
	"github.com/at-ishikawa/wordquiz/internal/vocabulary"
)

// toConnectError maps domain errors to Connect codes.
// Unknown errors are logged and returned as internal errors.
func toConnectError(ctx context.Context, procedure string, err error) error {
	var connectErr *connect.Error
	switch {
	case errors.As(err, &connectErr):
		return connectErr
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	case errors.Is(err, quiz.ErrInvalidAnswer):
		return newInvalidArgumentError("answer", err.Error())
	case errors.Is(err, quiz.ErrInvalidHint):
		return newInvalidArgumentError("revealed", err.Error())
	case errors.Is(err, vocabulary.ErrInvalidWord), errors.Is(err, scoring.ErrInvalidInput):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, quiz.ErrWordNotFound), errors.Is(err, quiz.ErrNoWords):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, vocabulary.ErrWordExists):
		return connect.NewError(connect.CodeAlreadyExists, err)
	case errors.Is(err, vocabulary.ErrNoGenerator):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	case errors.Is(err, auth.ErrUnauthenticated):
		return connect.NewError(connect.CodeUnauthenticated, err)
	}

	slog.Default().ErrorContext(ctx, "request failed",
		"procedure", procedure,
		"error", err)
	return connect.NewError(connect.CodeInternal, errors.New("internal error"))
}
