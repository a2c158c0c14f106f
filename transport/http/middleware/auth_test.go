package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GioMjds/paynal-prajik/config"
	"github.com/GioMjds/paynal-prajik/infras/jwt"
	jwtMocks "github.com/GioMjds/paynal-prajik/infras/jwt/mocks"
	otelMocks "github.com/GioMjds/paynal-prajik/infras/otel/mocks"
	"github.com/GioMjds/paynal-prajik/permissions"
	"github.com/GioMjds/paynal-prajik/shared/constant"
	"github.com/GioMjds/paynal-prajik/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const apiKey = "internal-key"

func newRouter(t *testing.T, setupMock func(mockJWT *jwtMocks.MockJWT)) *chi.Mux {
	ctrl := gomock.NewController(t)
	mockJWT := jwtMocks.NewMockJWT(ctrl)

	if setupMock != nil {
		setupMock(mockJWT)
	}

	cfg := &config.Config{}
	cfg.App.APIKey = apiKey

	perms := &permissions.PermissionData{
		Endpoints: []permissions.Permission{
			{Path: "/v1/rooms", Method: http.MethodGet, Skip: true},
			{Path: "/v1/bookings", Method: http.MethodPost, Optional: true},
			{Path: "/v1/bookings/mybookings", Method: http.MethodGet, Permissions: []string{constant.RoleGuest, constant.RoleAdmin}},
			{Path: "/v1/users/{id}", Method: http.MethodDelete, Permissions: []string{constant.RoleAdmin, constant.RoleSuperAdmin}},
		},
	}

	authRole := middleware.NewAuthRoleMiddleware(mockJWT, otelMocks.NewOtel(), perms, cfg)

	echoUser := func(w http.ResponseWriter, r *http.Request) {
		user, _ := r.Context().Value(constant.ContextKeyUserID).(string)

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(user))
	}

	mux := chi.NewRouter()
	mux.Group(func(r chi.Router) {
		r.Use(authRole.APIKey)
		r.Use(authRole.Auth)
		r.Use(authRole.RBAC)

		r.Get("/v1/rooms", echoUser)
		r.Post("/v1/bookings", echoUser)
		r.Get("/v1/bookings/mybookings", echoUser)
		r.Delete("/v1/users/{id}", echoUser)
	})

	return mux
}

func claims(role string) *jwt.Claims {
	return &jwt.Claims{UserID: "user-1", Email: "juan@example.com", Role: role, Type: jwt.AccessToken}
}

func TestAuthRole(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		path      string
		header    map[string]string
		setupMock func(mockJWT *jwtMocks.MockJWT)
		wantCode  int
		wantUser  string
	}{
		{
			name:     "public route without token",
			method:   http.MethodGet,
			path:     "/v1/rooms",
			wantCode: http.StatusOK,
		},
		{
			name:     "optional route as anonymous",
			method:   http.MethodPost,
			path:     "/v1/bookings",
			wantCode: http.StatusOK,
		},
		{
			name:   "optional route reads the token when sent",
			method: http.MethodPost,
			path:   "/v1/bookings",
			header: map[string]string{constant.RequestHeaderAuthorization: "Bearer access"},
			setupMock: func(mockJWT *jwtMocks.MockJWT) {
				mockJWT.EXPECT().ValidateToken("access", jwt.AccessToken).Return(claims(constant.RoleGuest), nil)
			},
			wantCode: http.StatusOK,
			wantUser: "user-1",
		},
		{
			name:   "optional route rejects a bad token",
			method: http.MethodPost,
			path:   "/v1/bookings",
			header: map[string]string{constant.RequestHeaderAuthorization: "Bearer expired"},
			setupMock: func(mockJWT *jwtMocks.MockJWT) {
				mockJWT.EXPECT().ValidateToken("expired", jwt.AccessToken).Return(nil, jwt.ErrExpiredToken)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "protected route without token",
			method:   http.MethodGet,
			path:     "/v1/bookings/mybookings",
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "malformed header",
			method:   http.MethodGet,
			path:     "/v1/bookings/mybookings",
			header:   map[string]string{constant.RequestHeaderAuthorization: "Token abc"},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:   "claims without email",
			method: http.MethodGet,
			path:   "/v1/bookings/mybookings",
			header: map[string]string{constant.RequestHeaderAuthorization: "Bearer access"},
			setupMock: func(mockJWT *jwtMocks.MockJWT) {
				mockJWT.EXPECT().ValidateToken("access", jwt.AccessToken).Return(&jwt.Claims{UserID: "user-1"}, nil)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:   "guest reaches own bookings",
			method: http.MethodGet,
			path:   "/v1/bookings/mybookings",
			header: map[string]string{constant.RequestHeaderAuthorization: "Bearer access"},
			setupMock: func(mockJWT *jwtMocks.MockJWT) {
				mockJWT.EXPECT().ValidateToken("access", jwt.AccessToken).Return(claims(constant.RoleGuest), nil)
			},
			wantCode: http.StatusOK,
			wantUser: "user-1",
		},
		{
			name:   "guest cannot delete users",
			method: http.MethodDelete,
			path:   "/v1/users/user-2",
			header: map[string]string{constant.RequestHeaderAuthorization: "Bearer access"},
			setupMock: func(mockJWT *jwtMocks.MockJWT) {
				mockJWT.EXPECT().ValidateToken("access", jwt.AccessToken).Return(claims(constant.RoleGuest), nil)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name:     "internal api key skips auth",
			method:   http.MethodDelete,
			path:     "/v1/users/user-2",
			header:   map[string]string{constant.RequestHeaderAPIKey: apiKey},
			wantCode: http.StatusOK,
		},
		{
			name:     "wrong api key",
			method:   http.MethodDelete,
			path:     "/v1/users/user-2",
			header:   map[string]string{constant.RequestHeaderAPIKey: "guess"},
			wantCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := newRouter(t, tt.setupMock)

			req := httptest.NewRequest(tt.method, tt.path, nil)
			for key, value := range tt.header {
				req.Header.Set(key, value)
			}

			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantCode == http.StatusOK {
				assert.Equal(t, tt.wantUser, rec.Body.String())
			}
		})
	}
}
