//go:build wireinject
// +build wireinject

package di

import (
	"reservo/config"
	"reservo/infras/jwt"
	"reservo/infras/kafka"
	"reservo/infras/otel"
	"reservo/infras/postgres"
	"reservo/infras/redis"
	"reservo/infras/s3"
	"reservo/permissions"
	"reservo/shared/cache"
	"reservo/transport/http"
	"reservo/transport/http/middleware"
	"reservo/transport/http/router"

	"github.com/google/wire"

	authService "reservo/internal/domains/auth/service"
	bookingRepository "reservo/internal/domains/booking/repository"
	bookingService "reservo/internal/domains/booking/service"
	catalogRepository "reservo/internal/domains/catalog/repository"
	catalogService "reservo/internal/domains/catalog/service"
	settingsRepository "reservo/internal/domains/settings/repository"
	settingsService "reservo/internal/domains/settings/service"
	userRepository "reservo/internal/domains/user/repository"
	userService "reservo/internal/domains/user/service"
	authHandler "reservo/internal/handlers/auth"
	bookingHandler "reservo/internal/handlers/booking"
	catalogHandler "reservo/internal/handlers/catalog"
	settingsHandler "reservo/internal/handlers/settings"
	userHandler "reservo/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
	permissions.Get,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	userRepository.New,
	userService.New,
	authService.New,
)

var catalogDomain = wire.NewSet(
	catalogRepository.New,
	catalogService.New,
)

var settingsDomain = wire.NewSet(
	settingsRepository.New,
	settingsService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var domains = wire.NewSet(
	authDomain,
	catalogDomain,
	settingsDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	catalogHandler.New,
	settingsHandler.New,
	bookingHandler.New,
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
