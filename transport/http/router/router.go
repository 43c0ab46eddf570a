package router

import (
	"hms/internal/handlers/appointment"
	"hms/internal/handlers/auth"
	"hms/internal/handlers/billing"
	"hms/internal/handlers/clinical"
	"hms/internal/handlers/department"
	"hms/internal/handlers/pharmacy"
	"hms/internal/handlers/room"
	"hms/internal/handlers/search"
	"hms/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth        auth.Handler
	User        user.Handler
	Department  department.Handler
	Room        room.Handler
	Appointment appointment.Handler
	Billing     billing.Handler
	Pharmacy    pharmacy.Handler
	Clinical    clinical.Handler
	Search      search.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Department.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Appointment.Router(routerGroup)
		r.DomainHandlers.Billing.Router(routerGroup)
		r.DomainHandlers.Pharmacy.Router(routerGroup)
		r.DomainHandlers.Clinical.Router(routerGroup)
		r.DomainHandlers.Search.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
