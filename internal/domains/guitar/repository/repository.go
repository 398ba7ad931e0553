package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gearbase/infras/otel"
	"gearbase/infras/surreal"
	"gearbase/internal/domains/guitar/model"
	"gearbase/internal/domains/guitar/model/dto"
	"gearbase/shared/constant"
	"gearbase/shared/logger"

	"github.com/surrealdb/surrealdb.go"
)

type Guitar interface {
	GetAll(ctx context.Context) ([]model.Guitar, error)
	Get(ctx context.Context, rid string) (model.Guitar, bool, error)
	UpdateImages(ctx context.Context, rid string, req dto.ImageUpdateRequest) error
	Delete(ctx context.Context, rid string) error
}

type repositoryImpl struct {
	db   *surreal.Connection
	otel otel.Otel
}

func New(db *surreal.Connection, otel otel.Otel) Guitar {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func (repo *repositoryImpl) GetAll(ctx context.Context) ([]model.Guitar, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.GetAll", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	raw, err := repo.db.DB.Select(model.TableName)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get all data (%s): %w", model.EntityName, err)
	}

	var guitars []model.Guitar
	if err := surreal.Unmarshal(raw, &guitars); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to decode data (%s): %w", model.EntityName, err)
	}

	return guitars, nil
}

// Get selects a single record by fully-qualified id. A missing record is not
// an error; the second return value reports whether it was found.
func (repo *repositoryImpl) Get(ctx context.Context, rid string) (model.Guitar, bool, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Get", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	var guitar model.Guitar

	raw, err := repo.db.DB.Select(rid)
	if err != nil {
		var permErr surrealdb.PermissionError
		if errors.As(err, &permErr) {
			return guitar, false, nil
		}

		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return guitar, false, fmt.Errorf("failed to get data (%s): %w", model.EntityName, err)
	}

	if raw == nil {
		return guitar, false, nil
	}

	if err := surreal.Unmarshal(raw, &guitar); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return guitar, false, fmt.Errorf("failed to decode data (%s): %w", model.EntityName, err)
	}

	return guitar, true, nil
}

// UpdateImages patches only the fields present in the request. The SET clause
// is composed from a fixed field list and every value is bound as a query
// variable; request data never reaches the statement text.
func (repo *repositoryImpl) UpdateImages(ctx context.Context, rid string, req dto.ImageUpdateRequest) error {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.UpdateImages", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	assignments := []string{}
	table, id := model.SplitRecordID(rid)
	vars := map[string]any{
		"tb": table,
		"id": id,
	}

	setField := func(field string, value any) {
		assignments = append(assignments, fmt.Sprintf("%s = $%s", field, field))
		vars[field] = value
	}

	if req.HeroImageURL != nil {
		setField(model.FieldHeroImageURL, *req.HeroImageURL)
	}

	if len(req.ImageGallery) > 0 {
		setField(model.FieldImageGallery, req.ImageGallery)
	}

	if req.ImageSource != nil {
		setField(model.FieldImageSource, *req.ImageSource)
	}

	if req.Condition != nil {
		setField(model.FieldCondition, *req.Condition)
	}

	if req.Status != nil {
		setField(model.FieldStatus, *req.Status)
	}

	assignments = append(assignments, "updated_at = time::now()")

	query := fmt.Sprintf("UPDATE type::thing($tb, $id) SET %s", strings.Join(assignments, ", "))
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := repo.db.DB.Query(query, vars); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to update data (%s): %w", model.EntityName, err)
	}

	return nil
}

// Delete removes the record by id. Deleting an absent record succeeds; the
// operation is idempotent.
func (repo *repositoryImpl) Delete(ctx context.Context, rid string) error {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Delete", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	if _, err := repo.db.DB.Delete(rid); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to delete data (%s): %w", model.EntityName, err)
	}

	return nil
}
