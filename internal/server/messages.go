package server

import (
	"github.com/at-ishikawa/wordquiz/internal/learning"
	"github.com/at-ishikawa/wordquiz/internal/quiz"
	"github.com/at-ishikawa/wordquiz/internal/statistics"
	"github.com/at-ishikawa/wordquiz/internal/vocabulary"
)

type NextQuestionRequest struct{}

type NextQuestionResponse struct {
	Question quiz.Question `json:"question"`
}

type SubmitAnswerRequest struct {
	WordID int64  `json:"word_id" validate:"required,min=1"`
	Answer string `json:"answer" validate:"required,max=255"`
}

type SubmitAnswerResponse struct {
	Result quiz.Result `json:"result"`
}

type SkipWordRequest struct {
	WordID int64 `json:"word_id" validate:"required,min=1"`
}

type SkipWordResponse struct {
	Result quiz.Result `json:"result"`
}

type GetHintRequest struct {
	WordID int64 `json:"word_id" validate:"required,min=1"`
	// Revealed lists positions revealed by earlier hints.
	Revealed []int `json:"revealed" validate:"max=255,dive,min=0"`
}

type GetHintResponse struct {
	Hint quiz.Hint `json:"hint"`
}

type GetHistoryRequest struct {
	WordID int64 `json:"word_id" validate:"required,min=1"`
}

type GetHistoryResponse struct {
	Attempts []learning.Attempt `json:"attempts"`
}

type GetProgressRequest struct {
	// Days defaults to the configured range when zero.
	Days int `json:"days" validate:"min=0,max=366"`
}

type GetProgressResponse struct {
	Progress statistics.ProgressResult `json:"progress"`
}

type GenerateWordRequest struct {
	Word string `json:"word" validate:"required,max=64"`
}

type GenerateWordResponse struct {
	Word vocabulary.Word `json:"word"`
}

type AddWordRequest struct {
	Name         string   `json:"name" validate:"required,max=64"`
	PartOfSpeech string   `json:"part_of_speech" validate:"max=64"`
	Meaning      string   `json:"meaning" validate:"required,max=1000"`
	Examples     []string `json:"examples" validate:"required,min=1,max=10,dive,required,max=500"`
	Level        string   `json:"level" validate:"required,oneof=A1 A2 B1 B2 C1 C2 a1 a2 b1 b2 c1 c2"`
}

type AddWordResponse struct {
	Word vocabulary.Word `json:"word"`
}
