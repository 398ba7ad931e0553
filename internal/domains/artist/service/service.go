package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Artist=MockArtistService

import (
	"context"

	"gearbase/infras/otel"
	"gearbase/internal/domains/artist/model"
	"gearbase/internal/domains/artist/repository"
	"gearbase/shared/constant"
	gDto "gearbase/shared/dto"

	"github.com/rs/zerolog/log"
)

type Artist interface {
	GetAll(ctx context.Context) ([]model.Artist, error)
}

type serviceImpl struct {
	repo repository.Artist
	otel otel.Otel
}

func New(repo repository.Artist, otel otel.Otel) Artist {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []model.Artist, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	params := gDto.QueryParams{
		SortBy:  model.TableName + "." + model.FieldName,
		SortDir: gDto.SortDirAsc,
	}
	artists, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get artists")
		return nil, err
	}
	if artists == nil {
		artists = []model.Artist{}
	}
	return artists, nil
}
