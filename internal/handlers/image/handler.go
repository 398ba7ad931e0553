package image

import (
	"net/http"
	"strconv"

	"gearbase/infras/otel"
	"gearbase/internal/domains/image/service"
	"gearbase/shared/constant"
	"gearbase/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Image
	otel    otel.Otel
}

func New(service service.Image, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/api/images", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetImages)
	})
}

// GetImages retrieves a page of images.
// @Summary List images
// @Description Retrieve images with cursor pagination. The cursor is the id of the last image from the previous page; an unparseable limit falls back to the default.
// @Tags Image
// @Produce json
// @Param limit query int false "Maximum number of images to return" default(60)
// @Param cursor query string false "Id of the last image of the previous page"
// @Success 200 {array} model.Image "List of images"
// @Failure 500 {object} response.Error
// @Router /api/images [get]
func (handler *Handler) GetImages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetImages")
	defer scope.End()

	limit, err := strconv.Atoi(r.URL.Query().Get(constant.RequestParamLimit))
	if err != nil {
		limit = constant.DefaultImageLimit
	}

	cursor := r.URL.Query().Get(constant.RequestParamCursor)

	images, err := handler.service.GetAll(ctx, limit, cursor)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get images")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Images retrieved successfully")

	response.WithJSON(w, http.StatusOK, images)
}
