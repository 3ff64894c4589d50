package vocabulary

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// Level is a CEFR proficiency level. Levels are ordered: A1 < A2 < B1 < B2 < C1 < C2.
type Level int

const (
	LevelA1 Level = iota + 1
	LevelA2
	LevelB1
	LevelB2
	LevelC1
	LevelC2
)

var levelNames = [...]string{
	LevelA1: "A1",
	LevelA2: "A2",
	LevelB1: "B1",
	LevelB2: "B2",
	LevelC1: "C1",
	LevelC2: "C2",
}

// AllLevels returns every level in ascending order.
func AllLevels() []Level {
	return []Level{LevelA1, LevelA2, LevelB1, LevelB2, LevelC1, LevelC2}
}

// ParseLevel parses a level name such as "b2". Surrounding whitespace and case are ignored.
func ParseLevel(s string) (Level, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for _, l := range AllLevels() {
		if levelNames[l] == name {
			return l, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown level %q", ErrInvalidWord, s)
}

// IsValid reports whether l is one of A1..C2.
func (l Level) IsValid() bool {
	return l >= LevelA1 && l <= LevelC2
}

func (l Level) String() string {
	if l.IsValid() {
		return levelNames[l]
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	if !l.IsValid() {
		return nil, fmt.Errorf("%w: level %d", ErrInvalidWord, int(l))
	}
	return []byte(levelNames[l]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// Set implements pflag.Value.
func (l *Level) Set(s string) error {
	return l.UnmarshalText([]byte(s))
}

// Type implements pflag.Value.
func (l *Level) Type() string {
	return "level"
}

// Value implements driver.Valuer.
func (l Level) Value() (driver.Value, error) {
	if !l.IsValid() {
		return nil, fmt.Errorf("%w: level %d", ErrInvalidWord, int(l))
	}
	return levelNames[l], nil
}

// Scan implements sql.Scanner.
func (l *Level) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return l.UnmarshalText(v)
	case string:
		return l.UnmarshalText([]byte(v))
	default:
		return fmt.Errorf("unsupported type %T for level", src)
	}
}
