package server

import (
	"context"
	"errors"
	"strings"

	"connectrpc.com/connect"
	"github.com/google/uuid"

	"github.com/at-ishikawa/wordquiz/internal/auth"
)

// TokenVerifier resolves a bearer token to a learner ID.
type TokenVerifier interface {
	Verify(token string) (uuid.UUID, error)
}

// NewAuthInterceptor rejects requests without a valid bearer token
// and stores the learner ID in the request context.
func NewAuthInterceptor(verifier TokenVerifier) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			token, ok := bearerToken(req.Header().Get("Authorization"))
			if !ok {
				return nil, connect.NewError(connect.CodeUnauthenticated, errors.New("missing bearer token"))
			}
			learnerID, err := verifier.Verify(token)
			if err != nil {
				if errors.Is(err, auth.ErrUnauthenticated) {
					return nil, connect.NewError(connect.CodeUnauthenticated, err)
				}
				return nil, toConnectError(ctx, req.Spec().Procedure, err)
			}
			return next(auth.WithLearnerID(ctx, learnerID), req)
		}
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func learnerFromContext(ctx context.Context) (uuid.UUID, error) {
	learnerID, ok := auth.LearnerIDFromContext(ctx)
	if !ok {
		return uuid.Nil, connect.NewError(connect.CodeUnauthenticated, errors.New("no learner in context"))
	}
	return learnerID, nil
}
