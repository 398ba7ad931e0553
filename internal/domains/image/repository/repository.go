package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"gearbase/infras/otel"
	"gearbase/infras/surreal"
	"gearbase/internal/domains/image/model"
	"gearbase/shared/constant"
	"gearbase/shared/logger"
)

type Image interface {
	GetAll(ctx context.Context) ([]model.Image, error)
}

type repositoryImpl struct {
	db   *surreal.Connection
	otel otel.Otel
}

func New(db *surreal.Connection, otel otel.Otel) Image {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func (repo *repositoryImpl) GetAll(ctx context.Context) ([]model.Image, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.GetAll", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	raw, err := repo.db.DB.Select(model.TableName)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get all data (%s): %w", model.EntityName, err)
	}

	var images []model.Image
	if err := surreal.Unmarshal(raw, &images); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to decode data (%s): %w", model.EntityName, err)
	}

	return images, nil
}
