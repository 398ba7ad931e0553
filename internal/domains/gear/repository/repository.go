package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"gearbase/infras/otel"
	"gearbase/infras/postgres"
	"gearbase/internal/domains/gear/model"
	"gearbase/shared/constant"
	gDto "gearbase/shared/dto"
	"gearbase/shared/failure"
	"gearbase/shared/logger"
	gRepo "gearbase/shared/repository"

	"github.com/lib/pq"
)

type Gear interface {
	Insert(ctx context.Context, model model.Gear, brandName, categoryName *string) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Gear, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Gear, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Gear]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Gear {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Gear](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Insert persists a gear row, resolving brand and category display names to
// foreign-key ids with correlated scalar subqueries. A name that matches no
// row yields a NULL foreign key; the insert itself still succeeds.
func (repo *repositoryImpl) Insert(ctx context.Context, gear model.Gear, brandName, categoryName *string) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Insert", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	query := fmt.Sprintf(`INSERT INTO %s (id, name, slug, gear_type, brand_id, category_id, year_from, year_to, description)
		VALUES (:id, :name, :slug, :gear_type,
			(SELECT b.id FROM %s b WHERE LOWER(b.name) = LOWER(:brand_name)),
			(SELECT c.id FROM %s c WHERE LOWER(c.name) = LOWER(:category_name)),
			:year_from, :year_to, :description)`,
		model.TableName, model.BrandsTableName, model.CategoriesTableName)

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"id":            gear.ID,
		"name":          gear.Name,
		"slug":          gear.Slug,
		"gear_type":     gear.Type,
		"brand_name":    brandName,
		"category_name": categoryName,
		"year_from":     gear.YearFrom,
		"year_to":       gear.YearTo,
		"description":   gear.Description,
	}

	_, err := repo.db.Write.NamedExecContext(ctx, query, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return insertFailure(err)
	}

	return nil
}

// insertFailure maps a unique violation on the slug to a 409; anything else
// stays a wrapped store error.
func insertFailure(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
		return failure.Conflict("gear with this slug already exists")
	}

	return fmt.Errorf("failed to insert data (%s): %w", model.EntityName, err)
}
