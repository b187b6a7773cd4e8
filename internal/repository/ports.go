package repository

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Database . Database
type Database interface {
	MigrateTable(tbl ...any) error
	Create(ctx context.Context, record any) error
	Save(ctx context.Context, record any) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	GetOneWhere(ctx context.Context, query string, entity any, args ...any) error
	GetAllByOrdered(ctx context.Context, column string, value any, order string, entity any) error
	CountModel(ctx context.Context, model any) (int64, error)
}
