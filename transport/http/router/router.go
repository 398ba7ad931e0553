package router

import (
	"gearbase/internal/handlers/artist"
	"gearbase/internal/handlers/brand"
	"gearbase/internal/handlers/gear"
	"gearbase/internal/handlers/guitar"
	"gearbase/internal/handlers/health"
	"gearbase/internal/handlers/image"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Health health.Handler
	Guitar guitar.Handler
	Image  image.Handler
	Gear   gear.Handler
	Brand  brand.Handler
	Artist artist.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

// SetupRoutes mounts every handler unversioned at the root.
func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Health.Router(router)
	r.DomainHandlers.Guitar.Router(router)
	r.DomainHandlers.Image.Router(router)
	r.DomainHandlers.Gear.Router(router)
	r.DomainHandlers.Brand.Router(router)
	r.DomainHandlers.Artist.Router(router)

	router.Get("/swagger/*", httpSwagger.WrapHandler)
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
