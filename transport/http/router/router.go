package router

import (
	"github.com/GioMjds/paynal-prajik/internal/handlers/amenity"
	"github.com/GioMjds/paynal-prajik/internal/handlers/area"
	"github.com/GioMjds/paynal-prajik/internal/handlers/auth"
	"github.com/GioMjds/paynal-prajik/internal/handlers/booking"
	"github.com/GioMjds/paynal-prajik/internal/handlers/commission"
	"github.com/GioMjds/paynal-prajik/internal/handlers/review"
	"github.com/GioMjds/paynal-prajik/internal/handlers/room"
	"github.com/GioMjds/paynal-prajik/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth       auth.Handler
	Room       room.Handler
	Area       area.Handler
	Booking    booking.Handler
	User       user.Handler
	Commission commission.Handler
	Amenity    amenity.Handler
	Review     review.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Area.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Commission.Router(routerGroup)
		r.DomainHandlers.Amenity.Router(routerGroup)
		r.DomainHandlers.Review.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
