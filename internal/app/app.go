// Package app wires configuration, storage and services for the command line tool and the server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/at-ishikawa/wordquiz/internal/auth"
	"github.com/at-ishikawa/wordquiz/internal/config"
	"github.com/at-ishikawa/wordquiz/internal/database"
	"github.com/at-ishikawa/wordquiz/internal/inference"
	"github.com/at-ishikawa/wordquiz/internal/inference/openai"
	"github.com/at-ishikawa/wordquiz/internal/learning"
	"github.com/at-ishikawa/wordquiz/internal/quiz"
	"github.com/at-ishikawa/wordquiz/internal/scoring"
	"github.com/at-ishikawa/wordquiz/internal/vocabulary"
)

type App struct {
	Config *config.Config
	DB     *sqlx.DB
	// Generator is nil when no OpenAI API key is configured.
	Generator inference.Client
	Words     vocabulary.WordRepository
	Quiz      *quiz.Service
	Catalog   *vocabulary.Service
	Auth      *auth.Authenticator
	Location  *time.Location

	closers []func() error
}

// New connects to MySQL and, when configured, Redis and OpenAI.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("database.Open() > %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db.PingContext() > %w", err)
	}

	var cache redis.Cmdable
	var closers []func() error
	if cfg.Redis.Enabled() {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			// the cache falls back to MySQL on every Redis error
			slog.Default().Warn("redis is unreachable",
				"address", cfg.Redis.Address,
				"error", err)
		}
		cache = client
		closers = append(closers, client.Close)
	}

	var generator inference.Client
	if cfg.OpenAI.APIKey != "" {
		client := openai.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model, cfg.OpenAI.MaxRetryAttempts)
		generator = client
		closers = append(closers, client.Close)
	}

	a, err := Wire(cfg, db, cache, generator)
	if err != nil {
		_ = db.Close()
		for _, closer := range closers {
			_ = closer()
		}
		return nil, err
	}
	a.closers = append(a.closers, closers...)
	return a, nil
}

// Wire builds the services on top of open connections. cache and generator may be nil.
// Close releases db along with anything New opened.
func Wire(cfg *config.Config, db *sqlx.DB, cache redis.Cmdable, generator inference.Client) (*App, error) {
	loc, err := cfg.Quiz.Location()
	if err != nil {
		return nil, err
	}
	policy := cfg.Quiz.Policy.Policy()
	if err := policy.Validate(); err != nil {
		return nil, fmt.Errorf("policy.Validate() > %w", err)
	}

	var words vocabulary.WordRepository = vocabulary.NewDBWordRepository(db)
	if cache != nil {
		words = vocabulary.NewCachedWordRepository(words, cache, cfg.Redis.CacheTTL())
	}

	quizService := quiz.NewService(quiz.Repositories{
		Words:    words,
		Weights:  learning.NewDBWeightRepository(db),
		Attempts: learning.NewDBAttemptRepository(db),
		Recorder: learning.NewDBRecorder(db),
	}, policy, scoring.NewSource(), quiz.Options{
		InitialWeight: cfg.Quiz.InitialWeight,
		InitBatchSize: cfg.Quiz.InitBatchSize,
	})

	return &App{
		Config:    cfg,
		DB:        db,
		Generator: generator,
		Words:     words,
		Quiz:      quizService,
		Catalog:   vocabulary.NewService(words, generator),
		Auth: auth.NewAuthenticator(
			cfg.Auth.JWTSecret,
			cfg.Auth.Issuer,
			time.Duration(cfg.Auth.TokenTTLHours)*time.Hour,
		),
		Location: loc,
		closers:  []func() error{db.Close},
	}, nil
}

// Close releases connections in reverse order of opening.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
