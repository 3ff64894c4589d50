package scoring

import (
	"fmt"
	"math"
)

// DefaultWeight is the weight given to a word the learner has never been graded on.
const DefaultWeight = 1.0

// Policy holds the constants of the weight update rule.
type Policy struct {
	// Increment is added after an incorrect answer.
	Increment float64 `json:"increment"`
	// Decrement is subtracted after a correct answer.
	Decrement float64 `json:"decrement"`
	// Floor is the lowest weight a word can have.
	Floor float64 `json:"floor"`
}

// DefaultPolicy raises a weight by one on a mistake and lowers it by one on a correct answer, never below 1.
var DefaultPolicy = Policy{
	Increment: 1,
	Decrement: 1,
	Floor:     1,
}

// Validate reports whether the policy keeps weights positive and moving in the right direction.
func (p Policy) Validate() error {
	if !isFinite(p.Floor) || p.Floor < 1 {
		return fmt.Errorf("%w: floor %v must be at least 1", ErrInvalidInput, p.Floor)
	}
	if !isFinite(p.Increment) || p.Increment <= 0 {
		return fmt.Errorf("%w: increment %v must be positive", ErrInvalidInput, p.Increment)
	}
	if !isFinite(p.Decrement) || p.Decrement <= 0 {
		return fmt.Errorf("%w: decrement %v must be positive", ErrInvalidInput, p.Decrement)
	}
	return nil
}

// NextWeight returns the weight a word should have after an attempt with the given outcome.
//
// Correct answers lower the weight toward the floor; incorrect answers raise it without bound.
func (p Policy) NextWeight(current float64, outcome Outcome) (float64, error) {
	if !isFinite(current) || current < p.Floor {
		return 0, fmt.Errorf("%w: current weight %v is below the floor %v", ErrInvalidInput, current, p.Floor)
	}

	switch outcome {
	case Correct:
		return math.Max(p.Floor, current-p.Decrement), nil
	case Incorrect:
		return current + p.Increment, nil
	default:
		return 0, fmt.Errorf("%w: unknown outcome %d", ErrInvalidInput, int(outcome))
	}
}

// NextWeight applies DefaultPolicy.
func NextWeight(current float64, outcome Outcome) (float64, error) {
	return DefaultPolicy.NextWeight(current, outcome)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
