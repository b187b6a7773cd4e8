package core

import (
	"context"
	"wordlab/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	CreateUser(ctx context.Context, user repository.User) error
	GetUser(ctx context.Context, username string) (repository.User, error)
	UpsertAnalysis(ctx context.Context, username, word string, kind repository.AnalysisKind, text string) (repository.AnalysisRecord, error)
	GetHistory(ctx context.Context, username string) ([]repository.AnalysisRecord, error)
	CountUsers(ctx context.Context) (int64, error)
}

//counterfeiter:generate -o fake -fake-name Sessions . Sessions
type Sessions interface {
	Create(username string) string
	Resolve(token string) (string, bool)
	Destroy(token string)
	Count() int
}

//counterfeiter:generate -o fake -fake-name Completer . Completer
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
	URL() string
}
