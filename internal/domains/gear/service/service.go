package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Gear=MockGearService

import (
	"context"

	"gearbase/infras/otel"
	"gearbase/internal/domains/gear/model"
	"gearbase/internal/domains/gear/model/dto"
	"gearbase/internal/domains/gear/repository"
	"gearbase/shared"
	"gearbase/shared/constant"
	gDto "gearbase/shared/dto"
	"gearbase/shared/failure"

	"github.com/rs/zerolog/log"
)

type Gear interface {
	Create(ctx context.Context, req dto.CreateGearRequest) (dto.GearResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetGearResponse, error)
	GetBySlug(ctx context.Context, slug string) (dto.GearResponse, error)
}

type serviceImpl struct {
	repo repository.Gear
	otel otel.Otel
}

func New(repo repository.Gear, otel otel.Otel) Gear {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateGearRequest) (res dto.GearResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	gear := req.ToModel()

	if err = s.repo.Insert(ctx, gear, req.BrandName, req.CategoryName); err != nil {
		log.Error().Err(err).Msg("failed to create gear")

		return res, err
	}

	created, err := s.repo.Get(ctx, slugFilter(gear.Slug))
	if err != nil {
		log.Error().Err(err).Msg("failed to read back created gear")

		return res, err
	}

	res.FromModel(created)

	return res, nil
}

// GetAll lists gear with a deterministic ascending order on name. Ties on
// equal names are broken arbitrarily by the store.
func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetGearResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	params.SortBy = model.TableName + "." + model.FieldName
	params.SortDir = gDto.SortDirAsc

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count gear")

		return res, err
	}

	gear, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get gear")

		return res, err
	}

	res.FromModels(gear, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) GetBySlug(ctx context.Context, slug string) (res dto.GearResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBySlug")
	defer scope.End()
	defer scope.TraceIfError(err)

	gear, err := s.repo.Get(ctx, slugFilter(slug))
	if err != nil {
		log.Error().Err(err).Msg("failed to get gear by slug")

		return res, err
	}

	if gear.ID == constant.Empty {
		return res, failure.NotFound("gear not found")
	}

	res.FromModel(gear)

	return res, nil
}

func slugFilter(slug string) gDto.FilterGroup {
	return shared.FilterEq(slug, model.FieldSlug, model.TableName)
}
