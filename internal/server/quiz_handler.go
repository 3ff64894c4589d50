package server

import (
	"context"
	"time"

	"connectrpc.com/connect"

	"github.com/at-ishikawa/wordquiz/internal/quiz"
)

type QuizHandler struct {
	quiz         *quiz.Service
	progressDays int
	location     *time.Location
}

// NewQuizHandler creates a handler. progressDays is used when a progress request gives no range.
func NewQuizHandler(service *quiz.Service, progressDays int, location *time.Location) *QuizHandler {
	if location == nil {
		location = time.UTC
	}
	return &QuizHandler{
		quiz:         service,
		progressDays: progressDays,
		location:     location,
	}
}

func (h *QuizHandler) NextQuestion(
	ctx context.Context,
	req *connect.Request[NextQuestionRequest],
) (*connect.Response[NextQuestionResponse], error) {
	learnerID, err := learnerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	question, err := h.quiz.NextQuestion(ctx, learnerID)
	if err != nil {
		return nil, toConnectError(ctx, NextQuestionProcedure, err)
	}
	return connect.NewResponse(&NextQuestionResponse{Question: question}), nil
}

func (h *QuizHandler) SubmitAnswer(
	ctx context.Context,
	req *connect.Request[SubmitAnswerRequest],
) (*connect.Response[SubmitAnswerResponse], error) {
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}
	learnerID, err := learnerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	result, err := h.quiz.Submit(ctx, learnerID, req.Msg.WordID, req.Msg.Answer)
	if err != nil {
		return nil, toConnectError(ctx, SubmitAnswerProcedure, err)
	}
	return connect.NewResponse(&SubmitAnswerResponse{Result: result}), nil
}

func (h *QuizHandler) SkipWord(
	ctx context.Context,
	req *connect.Request[SkipWordRequest],
) (*connect.Response[SkipWordResponse], error) {
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}
	learnerID, err := learnerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	result, err := h.quiz.Skip(ctx, learnerID, req.Msg.WordID)
	if err != nil {
		return nil, toConnectError(ctx, SkipWordProcedure, err)
	}
	return connect.NewResponse(&SkipWordResponse{Result: result}), nil
}

func (h *QuizHandler) GetHint(
	ctx context.Context,
	req *connect.Request[GetHintRequest],
) (*connect.Response[GetHintResponse], error) {
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}
	learnerID, err := learnerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	hint, err := h.quiz.Hint(ctx, learnerID, req.Msg.WordID, req.Msg.Revealed)
	if err != nil {
		return nil, toConnectError(ctx, GetHintProcedure, err)
	}
	return connect.NewResponse(&GetHintResponse{Hint: hint}), nil
}

func (h *QuizHandler) GetHistory(
	ctx context.Context,
	req *connect.Request[GetHistoryRequest],
) (*connect.Response[GetHistoryResponse], error) {
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}
	learnerID, err := learnerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	attempts, err := h.quiz.History(ctx, learnerID, req.Msg.WordID)
	if err != nil {
		return nil, toConnectError(ctx, GetHistoryProcedure, err)
	}
	return connect.NewResponse(&GetHistoryResponse{Attempts: attempts}), nil
}

func (h *QuizHandler) GetProgress(
	ctx context.Context,
	req *connect.Request[GetProgressRequest],
) (*connect.Response[GetProgressResponse], error) {
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}
	learnerID, err := learnerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	days := req.Msg.Days
	if days == 0 {
		days = h.progressDays
	}
	progress, err := h.quiz.Progress(ctx, learnerID, days, h.location)
	if err != nil {
		return nil, toConnectError(ctx, GetProgressProcedure, err)
	}
	return connect.NewResponse(&GetProgressResponse{Progress: progress}), nil
}
