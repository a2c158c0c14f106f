package permissions_test

import (
	"net/http"
	"testing"

	"github.com/GioMjds/paynal-prajik/permissions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	tests := []struct {
		name         string
		path         string
		method       string
		wantSkip     bool
		wantOptional bool
		wantRoles    []string
	}{
		{name: "login is public", path: "/v1/auth/login", method: http.MethodPost, wantSkip: true},
		{name: "room list is public", path: "/v1/rooms/", method: http.MethodGet, wantSkip: true},
		{name: "room list without trailing slash", path: "/v1/rooms", method: http.MethodGet, wantSkip: true},
		{name: "booking accepts anonymous guests", path: "/v1/bookings/", method: http.MethodPost, wantOptional: true},
		{
			name:      "guests can cancel",
			path:      "/v1/bookings/{id}/cancel",
			method:    http.MethodPost,
			wantRoles: []string{"guest", "admin", "superadmin"},
		},
		{
			name:      "only staff move booking status",
			path:      "/v1/bookings/{id}/status",
			method:    http.MethodPatch,
			wantRoles: []string{"admin", "superadmin"},
		},
		{
			name:      "only staff mark commissions paid",
			path:      "/v1/commissions/{id}/paid",
			method:    "patch",
			wantRoles: []string{"admin", "superadmin"},
		},
		{name: "room reviews are public", path: "/v1/rooms/{id}/reviews", method: http.MethodGet, wantSkip: true},
		{
			name:      "only staff list bookings of a room",
			path:      "/v1/rooms/{id}/bookings",
			method:    http.MethodGet,
			wantRoles: []string{"admin", "superadmin"},
		},
		{
			name:      "signed in guests review bookings",
			path:      "/v1/bookings/{id}/reviews",
			method:    http.MethodPost,
			wantRoles: []string{"guest", "admin", "superadmin"},
		},
		{
			name:      "only staff edit amenities",
			path:      "/v1/amenities/{id}",
			method:    http.MethodPatch,
			wantRoles: []string{"admin", "superadmin"},
		},
		{name: "unknown route", path: "/v1/unknown", method: http.MethodGet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			permission := data.FindPermissions(tt.path, tt.method)

			assert.Equal(t, tt.wantSkip, permission.Skip)
			assert.Equal(t, tt.wantOptional, permission.Optional)
			assert.Equal(t, tt.wantRoles, permission.Permissions)
		})
	}
}

func TestFindPermissions_BuildsIndexLazily(t *testing.T) {
	data := &permissions.PermissionData{
		Endpoints: []permissions.Permission{
			{Path: "/v1/users/{id}", Method: http.MethodDelete, Permissions: []string{"superadmin"}},
			{Path: "/v1/users/{id}", Method: http.MethodDelete, Permissions: []string{"admin"}},
		},
	}

	assert.Equal(t, []string{"superadmin"}, data.FindPermissions("/v1/users/{id}", http.MethodDelete).Permissions)
}
