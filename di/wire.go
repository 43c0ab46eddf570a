//go:build wireinject
// +build wireinject

package di

import (
	"hms/config"
	"hms/infras/jwt"
	"hms/infras/kafka"
	"hms/infras/metrics"
	"hms/infras/otel"
	"hms/infras/postgres"
	"hms/infras/redis"
	"hms/permissions"
	"hms/shared/cache"
	"hms/transport/event"
	"hms/transport/http"
	"hms/transport/http/middleware"
	"hms/transport/http/router"

	appointmentRepository "hms/internal/domains/appointment/repository"
	appointmentService "hms/internal/domains/appointment/service"
	authService "hms/internal/domains/auth/service"
	billingRepository "hms/internal/domains/billing/repository"
	billingService "hms/internal/domains/billing/service"
	clinicalRepository "hms/internal/domains/clinical/repository"
	clinicalService "hms/internal/domains/clinical/service"
	departmentRepository "hms/internal/domains/department/repository"
	departmentService "hms/internal/domains/department/service"
	pharmacyRepository "hms/internal/domains/pharmacy/repository"
	pharmacyService "hms/internal/domains/pharmacy/service"
	roomRepository "hms/internal/domains/room/repository"
	roomService "hms/internal/domains/room/service"
	schedulingService "hms/internal/domains/scheduling/service"
	searchService "hms/internal/domains/search/service"
	userRepository "hms/internal/domains/user/repository"
	userService "hms/internal/domains/user/service"

	appointmentHandler "hms/internal/handlers/appointment"
	authHandler "hms/internal/handlers/auth"
	billingHandler "hms/internal/handlers/billing"
	clinicalHandler "hms/internal/handlers/clinical"
	departmentHandler "hms/internal/handlers/department"
	pharmacyHandler "hms/internal/handlers/pharmacy"
	roomHandler "hms/internal/handlers/room"
	searchHandler "hms/internal/handlers/search"
	userHandler "hms/internal/handlers/user"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	wire.Bind(new(postgres.Transactor), new(*postgres.Connection)),
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	metrics.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
	authService.New,
)

var departmentDomain = wire.NewSet(
	departmentRepository.New,
	departmentService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var appointmentDomain = wire.NewSet(
	appointmentRepository.New,
	appointmentService.New,
)

var billingDomain = wire.NewSet(
	billingRepository.New,
	billingService.New,
)

var pharmacyDomain = wire.NewSet(
	pharmacyRepository.New,
	pharmacyService.New,
)

var clinicalDomain = wire.NewSet(
	clinicalRepository.New,
	clinicalService.New,
)

var domains = wire.NewSet(
	userDomain,
	departmentDomain,
	roomDomain,
	appointmentDomain,
	billingDomain,
	pharmacyDomain,
	clinicalDomain,
	schedulingService.New,
	searchService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	departmentHandler.New,
	roomHandler.New,
	appointmentHandler.New,
	billingHandler.New,
	pharmacyHandler.New,
	clinicalHandler.New,
	searchHandler.New,
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

func InitializeWorker() *event.Consumer {
	wire.Build(
		configurations,
		infrastructures,
		sharedHelpers,
		billingDomain,
		event.New,
	)

	return &event.Consumer{}
}
