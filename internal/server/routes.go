// Package server exposes the quiz and word services over the Connect protocol.
package server

import (
	"net/http"

	"connectrpc.com/connect"
)

const (
	QuizServiceName = "wordquiz.v1.QuizService"
	WordServiceName = "wordquiz.v1.WordService"

	NextQuestionProcedure = "/" + QuizServiceName + "/NextQuestion"
	SubmitAnswerProcedure = "/" + QuizServiceName + "/SubmitAnswer"
	SkipWordProcedure     = "/" + QuizServiceName + "/SkipWord"
	GetHintProcedure      = "/" + QuizServiceName + "/GetHint"
	GetHistoryProcedure   = "/" + QuizServiceName + "/GetHistory"
	GetProgressProcedure  = "/" + QuizServiceName + "/GetProgress"

	GenerateWordProcedure = "/" + WordServiceName + "/GenerateWord"
	AddWordProcedure      = "/" + WordServiceName + "/AddWord"
)

// NewServeMux registers every procedure. Handler options such as interceptors apply to all of them.
func NewServeMux(quizHandler *QuizHandler, wordHandler *WordHandler, options ...connect.HandlerOption) *http.ServeMux {
	opts := append([]connect.HandlerOption{connect.WithCodec(Codec())}, options...)

	mux := http.NewServeMux()
	mux.Handle(NextQuestionProcedure, connect.NewUnaryHandler(NextQuestionProcedure, quizHandler.NextQuestion, opts...))
	mux.Handle(SubmitAnswerProcedure, connect.NewUnaryHandler(SubmitAnswerProcedure, quizHandler.SubmitAnswer, opts...))
	mux.Handle(SkipWordProcedure, connect.NewUnaryHandler(SkipWordProcedure, quizHandler.SkipWord, opts...))
	mux.Handle(GetHintProcedure, connect.NewUnaryHandler(GetHintProcedure, quizHandler.GetHint, opts...))
	mux.Handle(GetHistoryProcedure, connect.NewUnaryHandler(GetHistoryProcedure, quizHandler.GetHistory, opts...))
	mux.Handle(GetProgressProcedure, connect.NewUnaryHandler(GetProgressProcedure, quizHandler.GetProgress, opts...))
	mux.Handle(GenerateWordProcedure, connect.NewUnaryHandler(GenerateWordProcedure, wordHandler.GenerateWord, opts...))
	mux.Handle(AddWordProcedure, connect.NewUnaryHandler(AddWordProcedure, wordHandler.AddWord, opts...))
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

// CORSMiddleware allows browser clients from the given origins.
func CORSMiddleware(next http.Handler, allowedOrigins []string) http.Handler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if allowed[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Max-Age", "3600")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
