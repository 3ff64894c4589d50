package server

import (
	"context"

	"connectrpc.com/connect"
	"github.com/google/uuid"

	"github.com/at-ishikawa/wordquiz/internal/vocabulary"
)

// WordHandler lets a learner draft and add custom words.
type WordHandler struct {
	words *vocabulary.Service
}

func NewWordHandler(service *vocabulary.Service) *WordHandler {
	return &WordHandler{words: service}
}

// GenerateWord drafts a word with the AI generator. The draft is not stored.
func (h *WordHandler) GenerateWord(
	ctx context.Context,
	req *connect.Request[GenerateWordRequest],
) (*connect.Response[GenerateWordResponse], error) {
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}
	learnerID, err := learnerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	word, err := h.words.Draft(ctx, learnerID, req.Msg.Word)
	if err != nil {
		return nil, toConnectError(ctx, GenerateWordProcedure, err)
	}
	return connect.NewResponse(&GenerateWordResponse{Word: word}), nil
}

// AddWord stores a custom word owned by the learner.
func (h *WordHandler) AddWord(
	ctx context.Context,
	req *connect.Request[AddWordRequest],
) (*connect.Response[AddWordResponse], error) {
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}
	learnerID, err := learnerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	level, err := vocabulary.ParseLevel(req.Msg.Level)
	if err != nil {
		return nil, newInvalidArgumentError("level", err.Error())
	}
	word := vocabulary.Word{
		Name:         req.Msg.Name,
		PartOfSpeech: req.Msg.PartOfSpeech,
		Meaning:      req.Msg.Meaning,
		Examples:     vocabulary.Examples(req.Msg.Examples),
		Level:        level,
		Source:       vocabulary.SourceCustom,
		OwnerID:      uuid.NullUUID{UUID: learnerID, Valid: true},
	}
	if err := h.words.Add(ctx, &word); err != nil {
		return nil, toConnectError(ctx, AddWordProcedure, err)
	}
	return connect.NewResponse(&AddWordResponse{Word: word}), nil
}
