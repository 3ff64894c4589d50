package inference

import (
	"context"
)

//go:generate mockgen -source=interface.go -destination=../mocks/inference/mock_client.go -package=mock_inference

// Client interface defines the methods for AI-assisted content generation
type Client interface {
	GenerateWord(ctx context.Context, params GenerateWordRequest) (GenerateWordResponse, error)
}

// GenerateWordRequest holds the word to describe
type GenerateWordRequest struct {
	Word string `json:"word"`
}

// GenerateWordResponse is the generated dictionary data for a word
type GenerateWordResponse struct {
	PartOfSpeech string `json:"part_of_speech"`
	// Meaning never contains the word itself
	Meaning string `json:"meaning"`
	// ExampleSentences use "____" in place of the word
	ExampleSentences []string `json:"example_sentences"`
	// Level is a CEFR level from A1 to C2
	Level string `json:"level"`
}

const (
	DefaultMaxRetryAttempts = 3
)
