// Package export writes a learner's hardest words to a markdown study sheet, optionally as PDF.
package export

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"text/template"
	"time"

	"github.com/google/uuid"

	"github.com/at-ishikawa/wordquiz/internal/assets"
	"github.com/at-ishikawa/wordquiz/internal/pdf"
	"github.com/at-ishikawa/wordquiz/internal/quiz"
	"github.com/at-ishikawa/wordquiz/internal/scoring"
)

// HardestWordsFinder is implemented by quiz.Service.
type HardestWordsFinder interface {
	HardestWords(ctx context.Context, learnerID uuid.UUID, limit int) ([]scoring.Candidate, error)
}

type StudySheetExporter struct {
	finder    HardestWordsFinder
	tmpl      *template.Template
	outputDir string
	now       func() time.Time
}

func NewStudySheetExporter(finder HardestWordsFinder, tmpl *template.Template, outputDir string) *StudySheetExporter {
	return &StudySheetExporter{
		finder:    finder,
		tmpl:      tmpl,
		outputDir: outputDir,
		now:       time.Now,
	}
}

type Result struct {
	MarkdownPath string
	// PDFPath is empty unless a PDF was requested.
	PDFPath string
	Words   int
}

// Export writes up to limit of the learner's heaviest words.
func (e *StudySheetExporter) Export(ctx context.Context, learnerID uuid.UUID, limit int, withPDF bool) (Result, error) {
	candidates, err := e.finder.HardestWords(ctx, learnerID, limit)
	if err != nil {
		return Result{}, fmt.Errorf("finder.HardestWords(%s) > %w", learnerID, err)
	}
	if len(candidates) == 0 {
		return Result{}, quiz.ErrNoWords
	}

	now := e.now()
	sheet := assets.NewStudySheet("Hardest words", candidates, now)
	var buf bytes.Buffer
	if err := assets.WriteStudySheet(&buf, e.tmpl, sheet); err != nil {
		return Result{}, err
	}

	if err := os.MkdirAll(e.outputDir, 0755); err != nil {
		return Result{}, fmt.Errorf("os.MkdirAll(%s) > %w", e.outputDir, err)
	}
	fileName := fmt.Sprintf("study-sheet-%s-%s.md", learnerID, now.Format("20060102"))
	markdownPath := filepath.Join(e.outputDir, fileName)
	if err := os.WriteFile(markdownPath, buf.Bytes(), 0644); err != nil {
		return Result{}, fmt.Errorf("os.WriteFile(%s) > %w", markdownPath, err)
	}
	result := Result{
		MarkdownPath: markdownPath,
		Words:        len(candidates),
	}

	if withPDF {
		pdfPath, err := pdf.ConvertMarkdownToPDF(markdownPath)
		if err != nil {
			return result, fmt.Errorf("pdf.ConvertMarkdownToPDF(%s) > %w", markdownPath, err)
		}
		result.PDFPath = pdfPath
	}
	slog.Default().Info("study sheet exported",
		"learnerID", learnerID,
		"words", result.Words,
		"markdown", result.MarkdownPath,
		"pdf", result.PDFPath)
	return result, nil
}
