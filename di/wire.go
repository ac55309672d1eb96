//go:build wireinject
// +build wireinject

package di

import (
	"clubhouse/config"
	"clubhouse/infras/kafka"
	"clubhouse/infras/otel"
	"clubhouse/infras/postgres"
	"clubhouse/transport/http"
	"clubhouse/transport/http/middleware"
	"clubhouse/transport/http/router"

	bookingCommand "clubhouse/internal/domains/booking/command"
	bookingRepository "clubhouse/internal/domains/booking/repository"
	bookingService "clubhouse/internal/domains/booking/service"
	courtRepository "clubhouse/internal/domains/court/repository"
	courtService "clubhouse/internal/domains/court/service"
	personRepository "clubhouse/internal/domains/person/repository"
	scheduleRepository "clubhouse/internal/domains/schedule/repository"
	scheduleService "clubhouse/internal/domains/schedule/service"
	bookingHandler "clubhouse/internal/handlers/booking"
	courtHandler "clubhouse/internal/handlers/court"
	scheduleHandler "clubhouse/internal/handlers/schedule"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	wire.Bind(new(postgres.TxRunner), new(*postgres.Connection)),
	otel.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	personRepository.New,
	bookingCommand.New,
	bookingService.New,
)

var courtDomain = wire.NewSet(
	courtRepository.New,
	courtService.New,
)

var scheduleDomain = wire.NewSet(
	scheduleRepository.New,
	scheduleService.New,
)

var domains = wire.NewSet(
	bookingDomain,
	courtDomain,
	scheduleDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	bookingHandler.New,
	courtHandler.New,
	scheduleHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
