// Package auth issues and verifies learner bearer tokens.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrUnauthenticated is returned for a missing, malformed or expired token.
	ErrUnauthenticated = errors.New("auth: unauthenticated")
	// ErrNoSecret is returned when no signing secret is configured.
	ErrNoSecret = errors.New("auth: no signing secret is configured")
)

// Claims are the JWT claims of a learner token. The subject is the learner ID.
type Claims struct {
	jwt.RegisteredClaims
}

// Authenticator signs and verifies HS256 tokens.
type Authenticator struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

func NewAuthenticator(secret, issuer string, ttl time.Duration) *Authenticator {
	return &Authenticator{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue signs a token for the learner.
func (a *Authenticator) Issue(learnerID uuid.UUID) (string, error) {
	if len(a.secret) == 0 {
		return "", ErrNoSecret
	}
	now := a.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   learnerID.String(),
			Issuer:    a.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("token.SignedString() > %w", err)
	}
	return token, nil
}

// Verify returns the learner ID of a valid token.
func (a *Authenticator) Verify(tokenString string) (uuid.UUID, error) {
	if len(a.secret) == 0 {
		return uuid.Nil, ErrNoSecret
	}
	if tokenString == "" {
		return uuid.Nil, fmt.Errorf("%w: empty token", ErrUnauthenticated)
	}

	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(a.now),
	}
	if a.issuer != "" {
		options = append(options, jwt.WithIssuer(a.issuer))
	}
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		return a.secret, nil
	}, options...)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return uuid.Nil, fmt.Errorf("%w: invalid claims", ErrUnauthenticated)
	}
	learnerID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: subject %q > %w", ErrUnauthenticated, claims.Subject, err)
	}
	if learnerID == uuid.Nil {
		return uuid.Nil, fmt.Errorf("%w: empty learner ID", ErrUnauthenticated)
	}
	return learnerID, nil
}

type learnerKey struct{}

// WithLearnerID returns a context carrying the authenticated learner.
func WithLearnerID(ctx context.Context, learnerID uuid.UUID) context.Context {
	return context.WithValue(ctx, learnerKey{}, learnerID)
}

// LearnerIDFromContext returns the learner stored by WithLearnerID.
func LearnerIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	learnerID, ok := ctx.Value(learnerKey{}).(uuid.UUID)
	return learnerID, ok && learnerID != uuid.Nil
}
