package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Brand=MockBrandService

import (
	"context"

	"gearbase/infras/otel"
	"gearbase/internal/domains/brand/model"
	"gearbase/internal/domains/brand/repository"
	"gearbase/shared/constant"
	gDto "gearbase/shared/dto"

	"github.com/rs/zerolog/log"
)

type Brand interface {
	GetAll(ctx context.Context) ([]model.Brand, error)
}

type serviceImpl struct {
	repo repository.Brand
	otel otel.Otel
}

func New(repo repository.Brand, otel otel.Otel) Brand {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []model.Brand, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	params := gDto.QueryParams{
		SortBy:  model.TableName + "." + model.FieldName,
		SortDir: gDto.SortDirAsc,
	}

	brands, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get brands")

		return nil, err
	}

	if brands == nil {
		brands = []model.Brand{}
	}

	return brands, nil
}
