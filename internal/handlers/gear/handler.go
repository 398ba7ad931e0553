package gear

import (
	"net/http"

	"gearbase/infras/otel"
	"gearbase/internal/domains/gear/model"
	"gearbase/internal/domains/gear/model/dto"
	"gearbase/internal/domains/gear/service"
	"gearbase/shared/constant"
	"gearbase/shared/failure"
	gDto "gearbase/shared/dto"
	"gearbase/shared/validator"
	"gearbase/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Gear
	otel    otel.Otel
}

func New(service service.Gear, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/gear", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetGear)
		routerGroup.Get("/{slug}", handler.GetGearBySlug)
		routerGroup.Post("/", handler.CreateGear)
	})
}

// GetGear retrieves gear with optional filters and pagination.
// @Summary List gear
// @Description Retrieve gear filtered by name substring, exact type and brand name, paginated and ordered by name.
// @Tags Gear
// @Produce json
// @Param name query string false "Name substring, case-insensitive"
// @Param gear_type query string false "Exact gear type" Enums(guitar, effect)
// @Param brand query string false "Brand name, case-insensitive"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} dto.GetGearResponse "Page of gear"
// @Failure 500 {object} response.Error
// @Router /gear [get]
func (handler *Handler) GetGear(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGear")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if name := r.URL.Query().Get(model.FieldName); name != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.TableName,
		})
	}

	if gearType := r.URL.Query().Get(model.FieldType); gearType != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldType,
			Operator: gDto.FilterOperatorEq,
			Value:    gearType,
			Table:    model.TableName,
		})
	}

	if brand := r.URL.Query().Get(constant.RequestParamBrand); brand != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			ArgName:  model.FieldBrandName,
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorEqFold,
			Value:    brand,
			Table:    model.BrandsTableName,
		})
	}

	gear, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get gear")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Gear retrieved successfully")

	response.WithJSON(w, http.StatusOK, gear)
}

// GetGearBySlug retrieves a single piece of gear by its stored slug.
// @Summary Get gear by slug
// @Description Retrieve a single piece of gear by its stored slug.
// @Tags Gear
// @Produce json
// @Param slug path string true "Gear slug"
// @Success 200 {object} dto.GearResponse "Gear details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /gear/{slug} [get]
func (handler *Handler) GetGearBySlug(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGearBySlug")
	defer scope.End()

	slug := chi.URLParam(r, constant.RequestParamSlug)

	gear, err := handler.service.GetBySlug(ctx, slug)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("slug", slug).Msg("failed to get gear by slug")

		if failure.IsNotFound(err) {
			response.WithNotFound(w, constant.RequestParamSlug, slug)

			return
		}

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Gear retrieved successfully")

	response.WithJSON(w, http.StatusOK, gear)
}

// CreateGear inserts a new piece of gear.
// @Summary Create gear
// @Description Create a new piece of gear. Brand and category are given as display names and resolved to foreign keys; unresolved names leave the foreign key null.
// @Tags Gear
// @Accept json
// @Produce json
// @Param request body dto.CreateGearRequest true "Create Gear Request"
// @Success 201 {object} dto.GearResponse "Created gear"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /gear [post]
func (handler *Handler) CreateGear(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateGear")
	defer scope.End()

	req := dto.CreateGearRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	gear, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create gear")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Gear created successfully")

	response.WithJSON(w, http.StatusCreated, gear)
}
