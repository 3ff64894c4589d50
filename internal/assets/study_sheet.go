package assets

import (
	"fmt"
	"io"
	"regexp"
	"text/template"
	"time"

	"github.com/at-ishikawa/wordquiz/internal/scoring"
)

// placeholder matches the blank that example sentences use for the word.
var placeholder = regexp.MustCompile(`_{2,}`)

// StudySheet lists a learner's hardest words.
type StudySheet struct {
	Title       string
	GeneratedAt time.Time
	Entries     []StudySheetEntry
}

type StudySheetEntry struct {
	Rank         int
	Name         string
	PartOfSpeech string
	Level        string
	Meaning      string
	Examples     []string
	Weight       float64
}

// NewStudySheet keeps the order of candidates. Example placeholders are filled with the word.
func NewStudySheet(title string, candidates []scoring.Candidate, generatedAt time.Time) StudySheet {
	sheet := StudySheet{
		Title:       title,
		GeneratedAt: generatedAt,
		Entries:     make([]StudySheetEntry, 0, len(candidates)),
	}
	for i, candidate := range candidates {
		word := candidate.Word
		examples := make([]string, 0, len(word.Examples))
		for _, example := range word.Examples {
			examples = append(examples, placeholder.ReplaceAllLiteralString(example, "**"+word.Name+"**"))
		}
		sheet.Entries = append(sheet.Entries, StudySheetEntry{
			Rank:         i + 1,
			Name:         word.Name,
			PartOfSpeech: word.PartOfSpeech,
			Level:        word.Level.String(),
			Meaning:      word.Meaning,
			Examples:     examples,
			Weight:       candidate.Weight,
		})
	}
	return sheet
}

// WriteStudySheet renders the sheet as markdown.
func WriteStudySheet(w io.Writer, tmpl *template.Template, sheet StudySheet) error {
	if err := tmpl.Execute(w, sheet); err != nil {
		return fmt.Errorf("tmpl.Execute() > %w", err)
	}
	return nil
}
