//go:build wireinject
// +build wireinject

package di

import (
	"gearbase/config"
	"gearbase/infras/otel"
	"gearbase/infras/postgres"
	"gearbase/infras/redis"
	"gearbase/infras/surreal"
	"gearbase/shared/cache"
	"gearbase/transport/http"
	"gearbase/transport/http/middleware"
	"gearbase/transport/http/router"

	artistRepository "gearbase/internal/domains/artist/repository"
	artistService "gearbase/internal/domains/artist/service"
	brandRepository "gearbase/internal/domains/brand/repository"
	brandService "gearbase/internal/domains/brand/service"
	gearRepository "gearbase/internal/domains/gear/repository"
	gearService "gearbase/internal/domains/gear/service"
	guitarRepository "gearbase/internal/domains/guitar/repository"
	guitarService "gearbase/internal/domains/guitar/service"
	imageRepository "gearbase/internal/domains/image/repository"
	imageService "gearbase/internal/domains/image/service"

	artistHandler "gearbase/internal/handlers/artist"
	brandHandler "gearbase/internal/handlers/brand"
	gearHandler "gearbase/internal/handlers/gear"
	guitarHandler "gearbase/internal/handlers/guitar"
	healthHandler "gearbase/internal/handlers/health"
	imageHandler "gearbase/internal/handlers/image"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	surreal.New,
	otel.New,
	redis.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var guitarDomain = wire.NewSet(
	guitarRepository.New,
	guitarService.New,
)

var imageDomain = wire.NewSet(
	imageRepository.New,
	imageService.New,
)

var gearDomain = wire.NewSet(
	gearRepository.New,
	gearService.New,
)

var brandDomain = wire.NewSet(
	brandRepository.New,
	brandService.New,
)

var artistDomain = wire.NewSet(
	artistRepository.New,
	artistService.New,
)

var domains = wire.NewSet(
	guitarDomain,
	imageDomain,
	gearDomain,
	brandDomain,
	artistDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	healthHandler.New,
	guitarHandler.New,
	imageHandler.New,
	gearHandler.New,
	brandHandler.New,
	artistHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
