package handler

import (
	"context"
	"net/http"
	"wordlab/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name WordService . WordService
type WordService interface {
	Register(ctx context.Context, msg core.RegisterMessage) error
	Login(ctx context.Context, msg core.AuthMessage) (string, error)
	Logout(token string)
	UserInfo(ctx context.Context, token string) (core.UserInfo, error)
	AnalyzeBasic(ctx context.Context, token, word string) (core.AnalysisResult, error)
	AnalyzeAdvanced(ctx context.Context, token, word string) (core.AnalysisResult, error)
	History(ctx context.Context, token string) ([]core.HistoryEntry, error)
	DebugHistory(ctx context.Context, token string) (core.DebugReport, error)
	TestCompletion(ctx context.Context) (string, error)
	Status(ctx context.Context) core.Status
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
