//go:build integration

package openai_test

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/wordquiz/internal/inference"
	"github.com/at-ishikawa/wordquiz/internal/inference/openai"
	"github.com/at-ishikawa/wordquiz/internal/vocabulary"
)

// Run with: OPENAI_API_KEY=your-key go test -tags integration -v ./internal/inference/openai
func TestClient_GenerateWord_Integration(t *testing.T) {
	slog.SetDefault(
		slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level:     slog.LevelDebug,
			AddSource: true,
		})),
	)

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		t.Skip("OPENAI_API_KEY environment variable not set, skipping integration test")
	}
	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}

	client := openai.NewClient(apiKey, model, inference.DefaultMaxRetryAttempts)
	defer func() {
		_ = client.Close()
	}()

	for _, word := range []string{"abandon", "meticulous", "run"} {
		t.Run(word, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
			defer cancel()

			got, err := client.GenerateWord(ctx, inference.GenerateWordRequest{Word: word})
			require.NoError(t, err)
			assert.NotEmpty(t, got.PartOfSpeech)
			assert.NotEmpty(t, got.Meaning)
			assert.NotEmpty(t, got.ExampleSentences)

			_, err = vocabulary.ParseLevel(got.Level)
			assert.NoError(t, err, "level %q", got.Level)
		})
	}
}
