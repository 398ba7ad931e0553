package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Image=MockImageService

import (
	"context"

	"gearbase/infras/otel"
	"gearbase/internal/domains/image/model"
	"gearbase/internal/domains/image/repository"
	"gearbase/shared/constant"

	"github.com/rs/zerolog/log"
)

type Image interface {
	GetAll(ctx context.Context, limit int, cursor string) ([]model.Image, error)
}

type serviceImpl struct {
	repo repository.Image
	otel otel.Otel
}

func New(repo repository.Image, otel otel.Otel) Image {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

// GetAll lists images with cursor pagination: a linear scan locates the
// cursor id in the store's current enumeration order, results start strictly
// after it and are truncated to limit. There is no snapshot consistency
// across calls if the table changes in between.
func (s *serviceImpl) GetAll(ctx context.Context, limit int, cursor string) (res []model.Image, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	images, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get images")

		return nil, err
	}

	if cursor != "" {
		for i := range images {
			if images[i].ID == cursor {
				images = images[i+1:]

				break
			}
		}
	}

	if limit < 0 {
		limit = constant.DefaultImageLimit
	}

	if len(images) > limit {
		images = images[:limit]
	}

	if images == nil {
		images = []model.Image{}
	}

	return images, nil
}
