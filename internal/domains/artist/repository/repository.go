package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"gearbase/infras/otel"
	"gearbase/infras/postgres"
	"gearbase/internal/domains/artist/model"
	gDto "gearbase/shared/dto"
	gRepo "gearbase/shared/repository"
)

type Artist interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Artist, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Artist]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Artist {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Artist](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
