package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"gearbase/infras/otel"
	"gearbase/infras/postgres"
	"gearbase/internal/domains/brand/model"
	gDto "gearbase/shared/dto"
	gRepo "gearbase/shared/repository"
)

type Brand interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Brand, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Brand]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Brand {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Brand](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
