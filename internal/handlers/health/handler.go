package health

import (
	"net/http"

	"gearbase/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type healthResponse struct {
	OK bool `json:"ok"`
}

type Handler struct{}

func New() Handler {
	return Handler{}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/health", handler.GetHealth)
}

// GetHealth reports liveness. It never touches a backing store.
// @Summary Health check
// @Description Report service liveness.
// @Tags Health
// @Produce json
// @Success 200 {object} healthResponse
// @Router /health [get]
func (handler *Handler) GetHealth(w http.ResponseWriter, r *http.Request) {
	response.WithJSON(w, http.StatusOK, healthResponse{OK: true})
}
