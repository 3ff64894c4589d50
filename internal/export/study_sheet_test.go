package export

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/wordquiz/internal/assets"
	"github.com/at-ishikawa/wordquiz/internal/quiz"
	"github.com/at-ishikawa/wordquiz/internal/scoring"
	"github.com/at-ishikawa/wordquiz/internal/vocabulary"
)

type finderFunc func(ctx context.Context, learnerID uuid.UUID, limit int) ([]scoring.Candidate, error)

func (f finderFunc) HardestWords(ctx context.Context, learnerID uuid.UUID, limit int) ([]scoring.Candidate, error) {
	return f(ctx, learnerID, limit)
}

func TestStudySheetExporter_Export(t *testing.T) {
	learnerID := uuid.MustParse("6f1c2a8e-3b4d-4e5f-8a9b-0c1d2e3f4a5b")
	candidates := []scoring.Candidate{
		{
			Word: vocabulary.Word{
				ID: 1, Name: "abandon", PartOfSpeech: "verb", Meaning: "to leave behind",
				Examples: vocabulary.Examples{"They had to ____ the car."}, Level: vocabulary.LevelB2,
			},
			Weight: 4,
		},
	}

	tests := []struct {
		name    string
		finder  finderFunc
		withPDF bool

		wantErr   error
		wantWords int
	}{
		{
			name: "markdown only",
			finder: func(_ context.Context, gotLearner uuid.UUID, limit int) ([]scoring.Candidate, error) {
				assert.Equal(t, learnerID, gotLearner)
				assert.Equal(t, 20, limit)
				return candidates, nil
			},
			wantWords: 1,
		},
		{
			name: "with pdf",
			finder: func(context.Context, uuid.UUID, int) ([]scoring.Candidate, error) {
				return candidates, nil
			},
			withPDF:   true,
			wantWords: 1,
		},
		{
			name: "no words",
			finder: func(context.Context, uuid.UUID, int) ([]scoring.Candidate, error) {
				return nil, nil
			},
			wantErr: quiz.ErrNoWords,
		},
		{
			name: "finder failure",
			finder: func(context.Context, uuid.UUID, int) ([]scoring.Candidate, error) {
				return nil, errTest
			},
			wantErr: errTest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, err := assets.ParseStudySheetTemplate("")
			require.NoError(t, err)
			outputDir := filepath.Join(t.TempDir(), "outputs")

			exporter := NewStudySheetExporter(tt.finder, tmpl, outputDir)
			exporter.now = func() time.Time { return time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC) }

			got, err := exporter.Export(context.Background(), learnerID, 20, tt.withPDF)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantWords, got.Words)
			assert.Equal(t, filepath.Join(outputDir, "study-sheet-"+learnerID.String()+"-20260310.md"), got.MarkdownPath)

			content, err := os.ReadFile(got.MarkdownPath)
			require.NoError(t, err)
			assert.Contains(t, string(content), "## 1. abandon")

			if !tt.withPDF {
				assert.Empty(t, got.PDFPath)
				return
			}
			_, err = os.Stat(got.PDFPath)
			assert.NoError(t, err)
		})
	}
}

var errTest = errors.New("connection reset")
