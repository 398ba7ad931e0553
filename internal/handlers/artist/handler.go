package artist

import (
	"net/http"

	"gearbase/infras/otel"
	"gearbase/internal/domains/artist/service"
	"gearbase/shared/constant"
	"gearbase/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Artist
	otel    otel.Otel
}

func New(service service.Artist, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/artists", handler.GetArtists)
}

// GetArtists retrieves all artists.
// @Summary List artists
// @Description Retrieve all artists ordered by name.
// @Tags Artist
// @Produce json
// @Success 200 {array} model.Artist "List of artists"
// @Failure 500 {object} response.Error
// @Router /artists [get]
func (handler *Handler) GetArtists(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetArtists")
	defer scope.End()

	artists, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get artists")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Artists retrieved successfully")

	response.WithJSON(w, http.StatusOK, artists)
}
