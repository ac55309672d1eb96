package router

import (
	"clubhouse/internal/handlers/booking"
	"clubhouse/internal/handlers/court"
	"clubhouse/internal/handlers/schedule"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Booking  booking.Handler
	Court    court.Handler
	Schedule schedule.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Court.Router(routerGroup)
		r.DomainHandlers.Schedule.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
