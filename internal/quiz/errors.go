// Package quiz runs the question, answer and weight update cycle for a learner.
package quiz

import "errors"

var (
	// ErrNoWords is returned when no word is visible to the learner.
	ErrNoWords = errors.New("quiz: no words available")
	// ErrWordNotFound is returned when the word does not exist or is not visible to the learner.
	ErrWordNotFound = errors.New("quiz: word not found")
	// ErrInvalidAnswer is returned for an empty answer.
	ErrInvalidAnswer = errors.New("quiz: invalid answer")
	// ErrInvalidHint is returned when already revealed positions are outside the word.
	ErrInvalidHint = errors.New("quiz: invalid hint request")
)
