package quiz

import (
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/at-ishikawa/wordquiz/internal/scoring"
	"github.com/at-ishikawa/wordquiz/internal/vocabulary"
)

// Question is what the learner sees. The word itself is never included.
type Question struct {
	WordID       int64            `json:"word_id"`
	PartOfSpeech string           `json:"part_of_speech"`
	Level        vocabulary.Level `json:"level"`
	Meaning      string           `json:"meaning"`
	// Example has the word replaced with one underscore per letter.
	Example string  `json:"example"`
	Length  int     `json:"length"`
	Weight  float64 `json:"weight"`
}

// Result is the outcome of a submitted or skipped word.
type Result struct {
	WordID  int64           `json:"word_id"`
	Outcome scoring.Outcome `json:"outcome"`
	Correct bool            `json:"correct"`
	Skipped bool            `json:"skipped"`
	// Answer is set when the answer was correct or the word was skipped.
	Answer         string  `json:"answer,omitempty"`
	PreviousWeight float64 `json:"previous_weight"`
	Weight         float64 `json:"weight"`
	AttemptID      int64   `json:"attempt_id"`
}

// Hint reveals some letters of a word.
type Hint struct {
	WordID    int64    `json:"word_id"`
	Positions []int    `json:"positions"`
	Letters   []string `json:"letters"`
	// Revealed is every revealed position so far, in ascending order.
	Revealed []int `json:"revealed"`
	// Pattern shows revealed letters and "_" for the others.
	Pattern string `json:"pattern"`
}

var placeholderPattern = regexp.MustCompile(`_{2,}`)

func newQuestion(candidate scoring.Candidate, src scoring.Source) Question {
	word := candidate.Word
	var example string
	if len(word.Examples) > 0 {
		example = blankOut(word.Examples[scoring.Intn(src, len(word.Examples))], word.Name)
	}
	return Question{
		WordID:       word.ID,
		PartOfSpeech: word.PartOfSpeech,
		Level:        word.Level,
		Meaning:      word.Meaning,
		Example:      example,
		Length:       utf8.RuneCountInString(word.Name),
		Weight:       candidate.Weight,
	}
}

// blankOut hides every occurrence of name, and any "____" placeholder, in the sentence.
func blankOut(sentence, name string) string {
	mask := strings.Repeat("_", utf8.RuneCountInString(name))
	sentence = placeholderPattern.ReplaceAllLiteralString(sentence, mask)
	if name == "" {
		return sentence
	}
	re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(name))
	return re.ReplaceAllLiteralString(sentence, mask)
}

// hintCount is the number of letters revealed per hint.
func hintCount(length int) int {
	return int(math.Ceil(float64(length) / 3))
}

func newHint(word vocabulary.Word, revealed []int, src scoring.Source) (Hint, error) {
	letters := []rune(word.Name)
	seen := make(map[int]struct{}, len(revealed))
	for _, pos := range revealed {
		if pos < 0 || pos >= len(letters) {
			return Hint{}, ErrInvalidHint
		}
		seen[pos] = struct{}{}
	}

	unrevealed := make([]int, 0, len(letters)-len(seen))
	for i := range letters {
		if _, ok := seen[i]; !ok {
			unrevealed = append(unrevealed, i)
		}
	}

	count := min(hintCount(len(letters)), len(unrevealed))
	for i := 0; i < count; i++ {
		j := i + scoring.Intn(src, len(unrevealed)-i)
		unrevealed[i], unrevealed[j] = unrevealed[j], unrevealed[i]
	}
	picked := append([]int(nil), unrevealed[:count]...)
	sort.Ints(picked)

	hint := Hint{
		WordID:    word.ID,
		Positions: picked,
		Letters:   make([]string, 0, count),
		Revealed:  make([]int, 0, len(seen)+count),
	}
	for _, pos := range picked {
		hint.Letters = append(hint.Letters, string(letters[pos]))
		seen[pos] = struct{}{}
	}

	var pattern strings.Builder
	for i, letter := range letters {
		if _, ok := seen[i]; ok {
			hint.Revealed = append(hint.Revealed, i)
			pattern.WriteRune(letter)
			continue
		}
		pattern.WriteByte('_')
	}
	hint.Pattern = pattern.String()
	return hint, nil
}
