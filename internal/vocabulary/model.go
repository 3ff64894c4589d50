// Package vocabulary provides the word catalog: models, storage, caching and AI-assisted creation.
package vocabulary

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrInvalidWord is returned when a word fails validation.
	ErrInvalidWord = errors.New("vocabulary: invalid word")
	// ErrWordExists is returned when a learner adds a word that is already visible to them.
	ErrWordExists = errors.New("vocabulary: word already exists")
	// ErrNoGenerator is returned by Draft when no AI generator is configured.
	ErrNoGenerator = errors.New("vocabulary: no word generator is configured")
)

// Word is a learnable vocabulary item.
type Word struct {
	ID           int64         `db:"id" json:"id"`
	Name         string        `db:"name" json:"name"`
	PartOfSpeech string        `db:"part_of_speech" json:"part_of_speech"`
	Meaning      string        `db:"meaning" json:"meaning"`
	Examples     Examples      `db:"examples" json:"examples"`
	Level        Level         `db:"level" json:"level"`
	Source       Source        `db:"source" json:"source"`
	OwnerID      uuid.NullUUID `db:"owner_id" json:"owner_id"`
	CreatedAt    time.Time     `db:"created_at" json:"created_at"`
}

// Validate checks the invariants of a word before it is stored.
func (w Word) Validate() error {
	if w.Name == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidWord)
	}
	if NormalizeName(w.Name) != w.Name {
		return fmt.Errorf("%w: name %q is not normalized", ErrInvalidWord, w.Name)
	}
	if strings.TrimSpace(w.Meaning) == "" {
		return fmt.Errorf("%w: meaning of %q is empty", ErrInvalidWord, w.Name)
	}
	if len(w.Examples) == 0 {
		return fmt.Errorf("%w: %q has no example sentences", ErrInvalidWord, w.Name)
	}
	if !w.Level.IsValid() {
		return fmt.Errorf("%w: %q has level %q", ErrInvalidWord, w.Name, w.Level)
	}
	switch w.Source {
	case SourceOxford:
	case SourceCustom:
		if !w.OwnerID.Valid || w.OwnerID.UUID == uuid.Nil {
			return fmt.Errorf("%w: custom word %q has no owner", ErrInvalidWord, w.Name)
		}
	default:
		return fmt.Errorf("%w: %q has source %q", ErrInvalidWord, w.Name, w.Source)
	}
	return nil
}

// Source tells where a word came from.
type Source string

const (
	// SourceOxford words form the shared catalog visible to every learner.
	SourceOxford Source = "oxford"
	// SourceCustom words are added by a learner and visible only to them.
	SourceCustom Source = "custom"
)

// Examples holds example sentences, stored as a JSON array.
type Examples []string

var (
	_ driver.Valuer = Examples(nil)
)

// Value implements driver.Valuer.
func (e Examples) Value() (driver.Value, error) {
	if e == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(e))
	if err != nil {
		return nil, fmt.Errorf("json.Marshal(examples) > %w", err)
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (e *Examples) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*e = nil
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for examples", src)
	}

	var sentences []string
	if err := json.Unmarshal(data, &sentences); err != nil {
		return fmt.Errorf("json.Unmarshal(examples) > %w", err)
	}
	*e = sentences
	return nil
}

// NormalizeName lowercases a word and removes all whitespace.
func NormalizeName(raw string) string {
	return strings.ToLower(strings.Join(strings.Fields(raw), ""))
}
