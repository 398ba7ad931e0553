package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Guitar=MockGuitarService

import (
	"context"

	"gearbase/infras/otel"
	"gearbase/internal/domains/guitar/model"
	"gearbase/internal/domains/guitar/model/dto"
	"gearbase/internal/domains/guitar/repository"
	"gearbase/shared/constant"
	"gearbase/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	msgNotFound            = "not found"
	msgNotFoundAfterUpdate = "Guitar not found after update"
)

type Guitar interface {
	GetAll(ctx context.Context) ([]dto.GuitarResponse, error)
	GetByID(ctx context.Context, id string) (dto.GuitarResponse, error)
	GetBySlug(ctx context.Context, slug string) (dto.GuitarResponse, error)
	UpdateImages(ctx context.Context, id string, req dto.ImageUpdateRequest) (dto.GuitarResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo repository.Guitar
	otel otel.Otel
}

func New(repo repository.Guitar, otel otel.Otel) Guitar {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.GuitarResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	guitars, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get guitars")

		return res, err
	}

	return dto.GuitarResponsesFromModels(guitars), nil
}

func (s *serviceImpl) GetByID(ctx context.Context, id string) (res dto.GuitarResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByID")
	defer scope.End()
	defer scope.TraceIfError(err)

	rid := model.NormalizeRecordID(id)

	guitar, found, err := s.repo.Get(ctx, rid)
	if err != nil {
		log.Error().Err(err).Str("rid", rid).Msg("failed to get guitar")

		return res, err
	}

	if !found {
		return res, failure.NotFound(msgNotFound)
	}

	res.FromModel(guitar)

	return res, nil
}

// GetBySlug scans the whole table and matches on the derived slug, because
// the derived slug is not stored and cannot be indexed. O(n) per request.
// When two rows derive the same slug, the first in the store's enumeration
// order wins and the second is unreachable by slug.
func (s *serviceImpl) GetBySlug(ctx context.Context, slug string) (res dto.GuitarResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBySlug")
	defer scope.End()
	defer scope.TraceIfError(err)

	guitars, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get guitars for slug lookup")

		return res, err
	}

	for i := range guitars {
		if guitars[i].GetSlug() == slug {
			res.FromModel(guitars[i])

			return res, nil
		}
	}

	return res, failure.NotFound(msgNotFound)
}

func (s *serviceImpl) UpdateImages(ctx context.Context, id string, req dto.ImageUpdateRequest) (res dto.GuitarResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateImages")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.IsEmpty() {
		return res, failure.EmptyImagePatch
	}

	rid := model.NormalizeRecordID(id)

	if err = s.repo.UpdateImages(ctx, rid, req); err != nil {
		log.Error().Err(err).Str("rid", rid).Msg("failed to update guitar images")

		return res, err
	}

	// Read-back after the write. If the record vanished in between, this
	// reports 404 even though the mutation itself succeeded.
	guitar, found, err := s.repo.Get(ctx, rid)
	if err != nil {
		log.Error().Err(err).Str("rid", rid).Msg("failed to read back guitar after image update")

		return res, err
	}

	if !found {
		return res, failure.NotFound(msgNotFoundAfterUpdate)
	}

	res.FromModel(guitar)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	rid := model.NormalizeRecordID(id)

	if err = s.repo.Delete(ctx, rid); err != nil {
		log.Error().Err(err).Str("rid", rid).Msg("failed to delete guitar")

		return err
	}

	return nil
}
