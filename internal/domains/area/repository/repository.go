package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"github.com/GioMjds/paynal-prajik/infras/otel"
	"github.com/GioMjds/paynal-prajik/infras/postgres"
	"github.com/GioMjds/paynal-prajik/internal/domains/area/model"
	gDto "github.com/GioMjds/paynal-prajik/shared/dto"
	gRepo "github.com/GioMjds/paynal-prajik/shared/repository"
)

type Area interface {
	Insert(ctx context.Context, model model.Area) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Area, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Area, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Area]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Area {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Area](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
