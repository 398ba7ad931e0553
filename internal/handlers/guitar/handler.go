package guitar

import (
	"net/http"

	"gearbase/infras/otel"
	"gearbase/internal/domains/guitar/model"
	"gearbase/internal/domains/guitar/model/dto"
	"gearbase/internal/domains/guitar/service"
	"gearbase/shared/constant"
	"gearbase/shared/failure"
	"gearbase/shared/validator"
	"gearbase/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

const redirectAfterDelete = "/guitars"

type Handler struct {
	service service.Guitar
	otel    otel.Otel
}

func New(service service.Guitar, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/api/guitars", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetGuitars)
		routerGroup.Get("/slug/{slug}", handler.GetGuitarBySlug)
		routerGroup.Get("/{id}", handler.GetGuitarByID)
		routerGroup.Put("/{id}/images", handler.UpdateGuitarImages)
		routerGroup.Delete("/{id}", handler.DeleteGuitar)
		routerGroup.Post("/{id}/delete", handler.DeleteGuitarAndRedirect)
	})
}

// GetGuitars retrieves the full catalog.
// @Summary List all guitars
// @Description Retrieve every guitar in the catalog with derived display fields.
// @Tags Guitar
// @Produce json
// @Success 200 {array} dto.GuitarResponse "List of guitars"
// @Failure 500 {object} response.Error
// @Router /api/guitars [get]
func (handler *Handler) GetGuitars(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuitars")
	defer scope.End()

	guitars, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get guitars")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Guitars retrieved successfully")

	response.WithJSON(w, http.StatusOK, guitars)
}

// GetGuitarByID retrieves a guitar by its record id.
// @Summary Get a guitar by id
// @Description Retrieve a guitar by its record id. A bare id fragment is accepted and qualified with the table name.
// @Tags Guitar
// @Produce json
// @Param id path string true "Guitar record id or id fragment"
// @Success 200 {object} dto.GuitarResponse "Guitar details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/guitars/{id} [get]
func (handler *Handler) GetGuitarByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuitarByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	guitar, err := handler.service.GetByID(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to get guitar by id")

		if failure.IsNotFound(err) {
			response.WithNotFound(w, constant.RequestParamID, model.NormalizeRecordID(id))

			return
		}

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Guitar retrieved successfully")

	response.WithJSON(w, http.StatusOK, guitar)
}

// GetGuitarBySlug retrieves a guitar by its derived slug.
// @Summary Get a guitar by slug
// @Description Retrieve a guitar whose derived slug matches. Slugs are computed from brand, model and year reference.
// @Tags Guitar
// @Produce json
// @Param slug path string true "Guitar slug"
// @Success 200 {object} dto.GuitarResponse "Guitar details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/guitars/slug/{slug} [get]
func (handler *Handler) GetGuitarBySlug(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuitarBySlug")
	defer scope.End()

	slug := chi.URLParam(r, constant.RequestParamSlug)

	guitar, err := handler.service.GetBySlug(ctx, slug)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("slug", slug).Msg("failed to get guitar by slug")

		if failure.IsNotFound(err) {
			response.WithNotFound(w, constant.RequestParamSlug, slug)

			return
		}

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Guitar retrieved successfully")

	response.WithJSON(w, http.StatusOK, guitar)
}

// UpdateGuitarImages patches the image fields of a guitar.
// @Summary Update guitar images
// @Description Replace any of hero_image_url, image_gallery, image_source, condition or status. At least one field must be present.
// @Tags Guitar
// @Accept json
// @Produce json
// @Param id path string true "Guitar record id or id fragment"
// @Param request body dto.ImageUpdateRequest true "Image Update Request"
// @Success 200 {object} dto.GuitarResponse "Updated guitar"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/guitars/{id}/images [put]
func (handler *Handler) UpdateGuitarImages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateGuitarImages")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.ImageUpdateRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	guitar, err := handler.service.UpdateImages(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to update guitar images")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Guitar images updated successfully")

	response.WithJSON(w, http.StatusOK, guitar)
}

// DeleteGuitar deletes a guitar by its record id.
// @Summary Delete a guitar
// @Description Delete a guitar by record id. Deleting an absent record still succeeds.
// @Tags Guitar
// @Param id path string true "Guitar record id or id fragment"
// @Success 204 "Guitar deleted"
// @Failure 500 {object} response.Error
// @Router /api/guitars/{id} [delete]
func (handler *Handler) DeleteGuitar(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteGuitar")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to delete guitar")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Guitar deleted successfully")

	response.WithNoContent(w)
}

// DeleteGuitarAndRedirect deletes a guitar and redirects to the listing page.
// @Summary Delete a guitar via form post
// @Description Delete a guitar by record id and redirect to /guitars. Intended for HTML form submissions.
// @Tags Guitar
// @Param id path string true "Guitar record id or id fragment"
// @Success 303 "Redirect to /guitars"
// @Failure 500 {object} response.Error
// @Router /api/guitars/{id}/delete [post]
func (handler *Handler) DeleteGuitarAndRedirect(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteGuitarAndRedirect")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to delete guitar")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Guitar deleted successfully")

	response.WithRedirect(w, http.StatusSeeOther, redirectAfterDelete)
}
