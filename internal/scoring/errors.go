// Package scoring implements the adaptive word selection and weight update policies.
package scoring

import "errors"

// ErrInvalidInput is returned when a policy is called with arguments outside its contract.
// Check with errors.Is(err, scoring.ErrInvalidInput).
var ErrInvalidInput = errors.New("scoring: invalid input")
