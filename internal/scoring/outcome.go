package scoring

import (
	"encoding"
	"fmt"
)

// Outcome is the graded result of a quiz attempt.
type Outcome int

const (
	Incorrect Outcome = iota + 1 // Wrong or skipped answer.
	Correct                      // The learner recalled the word.
)

var (
	outcomeNames  = [...]string{Incorrect: "incorrect", Correct: "correct"}
	outcomeByName = map[string]Outcome{
		"incorrect": Incorrect,
		"correct":   Correct,
	}
)

var (
	_ fmt.Stringer             = Outcome(0)
	_ encoding.TextMarshaler   = Outcome(0)
	_ encoding.TextUnmarshaler = (*Outcome)(nil)
)

// OutcomeFromResult converts a grading result into an Outcome.
func OutcomeFromResult(correct bool) Outcome {
	if correct {
		return Correct
	}
	return Incorrect
}

// IsValid reports whether o is Correct or Incorrect.
func (o Outcome) IsValid() bool {
	return o == Correct || o == Incorrect
}

func (o Outcome) String() string {
	if o.IsValid() {
		return outcomeNames[o]
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Result returns the value stored in the attempt log: 1 for Correct, 0 otherwise.
func (o Outcome) Result() int {
	if o == Correct {
		return 1
	}
	return 0
}

// MarshalText implements encoding.TextMarshaler.
func (o Outcome) MarshalText() ([]byte, error) {
	if !o.IsValid() {
		return nil, fmt.Errorf("%w: outcome %d", ErrInvalidInput, int(o))
	}
	return []byte(outcomeNames[o]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Outcome) UnmarshalText(text []byte) error {
	v, ok := outcomeByName[string(text)]
	if !ok {
		return fmt.Errorf("%w: outcome %q", ErrInvalidInput, text)
	}
	*o = v
	return nil
}
