package brand

import (
	"net/http"

	"gearbase/infras/otel"
	"gearbase/internal/domains/brand/service"
	"gearbase/shared/constant"
	"gearbase/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Brand
	otel    otel.Otel
}

func New(service service.Brand, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/brands", handler.GetBrands)
}

// GetBrands retrieves all brands.
// @Summary List brands
// @Description Retrieve all brands ordered by name.
// @Tags Brand
// @Produce json
// @Success 200 {array} model.Brand "List of brands"
// @Failure 500 {object} response.Error
// @Router /brands [get]
func (handler *Handler) GetBrands(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBrands")
	defer scope.End()

	brands, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get brands")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Brands retrieved successfully")

	response.WithJSON(w, http.StatusOK, brands)
}
