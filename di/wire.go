//go:build wireinject
// +build wireinject

package di

import (
	"github.com/GioMjds/paynal-prajik/config"
	"github.com/GioMjds/paynal-prajik/infras/jwt"
	"github.com/GioMjds/paynal-prajik/infras/kafka"
	"github.com/GioMjds/paynal-prajik/infras/otel"
	"github.com/GioMjds/paynal-prajik/infras/postgres"
	"github.com/GioMjds/paynal-prajik/infras/redis"
	"github.com/GioMjds/paynal-prajik/infras/s3"
	"github.com/GioMjds/paynal-prajik/permissions"
	"github.com/GioMjds/paynal-prajik/shared/cache"
	"github.com/GioMjds/paynal-prajik/transport/consumer"
	"github.com/GioMjds/paynal-prajik/transport/http"
	"github.com/GioMjds/paynal-prajik/transport/http/middleware"
	"github.com/GioMjds/paynal-prajik/transport/http/router"

	amenityRepository "github.com/GioMjds/paynal-prajik/internal/domains/amenity/repository"
	amenityService "github.com/GioMjds/paynal-prajik/internal/domains/amenity/service"
	areaRepository "github.com/GioMjds/paynal-prajik/internal/domains/area/repository"
	areaService "github.com/GioMjds/paynal-prajik/internal/domains/area/service"
	authService "github.com/GioMjds/paynal-prajik/internal/domains/auth/service"
	"github.com/GioMjds/paynal-prajik/internal/domains/booking/conflict"
	bookingRepository "github.com/GioMjds/paynal-prajik/internal/domains/booking/repository"
	bookingService "github.com/GioMjds/paynal-prajik/internal/domains/booking/service"
	"github.com/GioMjds/paynal-prajik/internal/domains/booking/validation"
	commissionRepository "github.com/GioMjds/paynal-prajik/internal/domains/commission/repository"
	commissionService "github.com/GioMjds/paynal-prajik/internal/domains/commission/service"
	reviewRepository "github.com/GioMjds/paynal-prajik/internal/domains/review/repository"
	reviewService "github.com/GioMjds/paynal-prajik/internal/domains/review/service"
	roomRepository "github.com/GioMjds/paynal-prajik/internal/domains/room/repository"
	roomService "github.com/GioMjds/paynal-prajik/internal/domains/room/service"
	userRepository "github.com/GioMjds/paynal-prajik/internal/domains/user/repository"
	userService "github.com/GioMjds/paynal-prajik/internal/domains/user/service"

	amenityHandler "github.com/GioMjds/paynal-prajik/internal/handlers/amenity"
	areaHandler "github.com/GioMjds/paynal-prajik/internal/handlers/area"
	authHandler "github.com/GioMjds/paynal-prajik/internal/handlers/auth"
	bookingHandler "github.com/GioMjds/paynal-prajik/internal/handlers/booking"
	commissionHandler "github.com/GioMjds/paynal-prajik/internal/handlers/commission"
	consumerHandler "github.com/GioMjds/paynal-prajik/internal/handlers/consumer"
	reviewHandler "github.com/GioMjds/paynal-prajik/internal/handlers/review"
	roomHandler "github.com/GioMjds/paynal-prajik/internal/handlers/room"
	userHandler "github.com/GioMjds/paynal-prajik/internal/handlers/user"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var repositories = wire.NewSet(
	userRepository.New,
	roomRepository.New,
	areaRepository.New,
	bookingRepository.New,
	commissionRepository.New,
	amenityRepository.New,
	reviewRepository.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.NewStore,
	conflict.New,
	validation.New,
	bookingService.New,
)

var domains = wire.NewSet(
	authService.New,
	userService.New,
	roomService.New,
	areaService.New,
	bookingDomain,
	commissionService.New,
	amenityService.New,
	reviewService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	roomHandler.New,
	areaHandler.New,
	bookingHandler.New,
	userHandler.New,
	commissionHandler.New,
	amenityHandler.New,
	reviewHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		repositories,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

func InitializeWorker() *consumer.Worker {
	wire.Build(
		config.Get,
		postgres.New,
		otel.New,
		redis.New,
		kafka.New,
		sharedHelpers,
		commissionRepository.New,
		commissionService.New,
		consumerHandler.New,
		consumer.New,
	)

	return &consumer.Worker{}
}
