package router_test

import (
	"net/http"
	"testing"

	"github.com/GioMjds/paynal-prajik/transport/http/router"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestRouter_SetupRoutes(t *testing.T) {
	r := router.New(router.DomainHandlers{})
	mux := chi.NewRouter()
	r.SetupRoutes(mux)

	tests := []struct {
		method string
		path   string
		want   string
	}{
		{method: http.MethodGet, path: "/v1/rooms/room-1", want: "/v1/rooms/{id}"},
		{method: http.MethodGet, path: "/v1/rooms/room-1/bookings", want: "/v1/rooms/{id}/bookings"},
		{method: http.MethodGet, path: "/v1/rooms/room-1/reviews", want: "/v1/rooms/{id}/reviews"},
		{method: http.MethodGet, path: "/v1/areas/area-1", want: "/v1/areas/{id}"},
		{method: http.MethodGet, path: "/v1/areas/area-1/bookings", want: "/v1/areas/{id}/bookings"},
		{method: http.MethodGet, path: "/v1/areas/area-1/reviews", want: "/v1/areas/{id}/reviews"},
		{method: http.MethodPost, path: "/v1/bookings/booking-1/cancel", want: "/v1/bookings/{id}/cancel"},
		{method: http.MethodPost, path: "/v1/bookings/booking-1/reviews", want: "/v1/bookings/{id}/reviews"},
		{method: http.MethodGet, path: "/v1/reviews/mine", want: "/v1/reviews/mine"},
		{method: http.MethodDelete, path: "/v1/reviews/review-1", want: "/v1/reviews/{id}"},
		{method: http.MethodPatch, path: "/v1/amenities/amenity-1", want: "/v1/amenities/{id}"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, mux.Find(chi.NewRouteContext(), tt.method, tt.path))
		})
	}
}
