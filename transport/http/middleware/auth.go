package middleware

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"slices"

	"github.com/GioMjds/paynal-prajik/config"
	"github.com/GioMjds/paynal-prajik/infras/jwt"
	"github.com/GioMjds/paynal-prajik/infras/otel"
	"github.com/GioMjds/paynal-prajik/permissions"
	"github.com/GioMjds/paynal-prajik/shared"
	"github.com/GioMjds/paynal-prajik/shared/constant"
	"github.com/GioMjds/paynal-prajik/shared/failure"
	"github.com/GioMjds/paynal-prajik/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// internalCallKey marks requests that presented the service API key.
type internalCallKey struct{}

type Auth interface {
	Auth(http.Handler) http.Handler
	APIKey(http.Handler) http.Handler
}

type Role interface {
	RBAC(http.Handler) http.Handler
}

type AuthRole interface {
	Auth
	Role
}

type authRoleImpl struct {
	jwtService jwt.JWT
	otel       otel.Otel
	permission *permissions.PermissionData
	cfg        *config.Config
}

func NewAuthRoleMiddleware(jwtService jwt.JWT, otel otel.Otel, permissions *permissions.PermissionData, cfg *config.Config) AuthRole {
	return &authRoleImpl{
		jwtService: jwtService,
		otel:       otel,
		permission: permissions,
		cfg:        cfg,
	}
}

var tokenErrors = []struct {
	err     error
	message string
}{
	{jwt.ErrExpiredToken, "Token has expired"},
	{jwt.ErrInvalidToken, "Invalid token"},
	{jwt.ErrInvalidClaim, "Invalid token claims"},
}

// Auth resolves the bearer token into the request context. Public routes pass untouched,
// optional routes pass anonymously without a header but still reject a bad token.
func (m *authRoleImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, err := m.authenticate(request)
		if err != nil {
			response.WithError(writer, err)

			return
		}

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// RBAC rejects roles the permission table does not list for the route. Routes without a
// role list admit any authenticated caller.
func (m *authRoleImpl) RBAC(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if err := m.authorize(request); err != nil {
			response.WithError(writer, err)

			return
		}

		next.ServeHTTP(writer, request)
	})
}

// APIKey lets internal services bypass Auth and RBAC with the shared key. Requests without
// the header are treated as regular clients.
func (m *authRoleImpl) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		internal, err := m.checkAPIKey(request)
		if err != nil {
			response.WithError(writer, err)

			return
		}

		ctx := context.WithValue(request.Context(), internalCallKey{}, internal)
		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

func (m *authRoleImpl) authenticate(request *http.Request) (ctx context.Context, err error) {
	ctx = request.Context()

	_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "auth.middleware")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if isInternal(ctx) {
		return ctx, nil
	}

	path := m.routePattern(request)
	permission := m.findPermission(path, request.Method)

	if permission.Skip {
		return ctx, nil
	}

	scope.SetAttributes(map[string]any{
		"middleware.type": "auth",
		"http.path":       path,
		"http.method":     request.Method,
	})

	header := request.Header.Get(constant.RequestHeaderAuthorization)
	if header == constant.Empty {
		if permission.Optional {
			return ctx, nil
		}

		return ctx, failure.Unauthorized("Missing authorization header")
	}

	token, err := jwt.ExtractTokenFromHeader(header)
	if err != nil {
		return ctx, failure.Unauthorized("Invalid authorization header format")
	}

	claims, err := m.jwtService.ValidateToken(token, jwt.AccessToken)
	if err != nil {
		return ctx, failure.Unauthorized(tokenMessage(err))
	}

	if claims.UserID == constant.Empty || claims.Email == constant.Empty {
		log.Error().Str("token_id", claims.ID).Msg("access token without user or email")

		return ctx, failure.Unauthorized("Invalid token claims")
	}

	return withClaims(ctx, claims), nil
}

func (m *authRoleImpl) authorize(request *http.Request) (err error) {
	ctx := request.Context()

	_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "rbac.middleware")
	defer scope.End()
	defer scope.TraceIfError(&err)

	switch {
	case isInternal(ctx):
		return nil
	case m.permission == nil:
		return failure.ForbiddenError
	case m.permission.Skip:
		return nil
	}

	allowed := m.findPermission(m.routePattern(request), request.Method)
	if allowed.Skip || len(allowed.Permissions) == 0 {
		return nil
	}

	role := shared.RoleFrom(ctx)
	if slices.Contains(allowed.Permissions, role) {
		return nil
	}

	scope.SetAttributes(map[string]any{
		"user_role":     role,
		"allowed_roles": allowed.Permissions,
	})

	return failure.ForbiddenError
}

func (m *authRoleImpl) checkAPIKey(request *http.Request) (internal bool, err error) {
	_, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "api_key.middleware")
	defer scope.End()
	defer scope.TraceIfError(&err)

	key := request.Header.Get(constant.RequestHeaderAPIKey)
	if key == constant.Empty {
		scope.SetAttribute("http.source", "client")

		return false, nil
	}

	scope.SetAttribute("http.source", "internal")

	if m.cfg.App.APIKey == constant.Empty || subtle.ConstantTimeCompare([]byte(key), []byte(m.cfg.App.APIKey)) != 1 {
		return false, failure.ForbiddenError
	}

	return true, nil
}

// routePattern resolves the registered pattern of a request, e.g. /v1/bookings/{id}.
func (m *authRoleImpl) routePattern(request *http.Request) string {
	rctx := chi.RouteContext(request.Context())
	if rctx == nil || rctx.Routes == nil {
		return request.URL.Path
	}

	return rctx.Routes.Find(chi.NewRouteContext(), request.Method, request.URL.Path)
}

func (m *authRoleImpl) findPermission(path, method string) permissions.Permission {
	if m.permission == nil {
		return permissions.Permission{}
	}

	return m.permission.FindPermissions(path, method)
}

func isInternal(ctx context.Context) bool {
	internal, _ := ctx.Value(internalCallKey{}).(bool)

	return internal
}

func tokenMessage(err error) string {
	for _, known := range tokenErrors {
		if errors.Is(err, known.err) {
			return known.message
		}
	}

	return "Token validation failed"
}

func withClaims(ctx context.Context, claims *jwt.Claims) context.Context {
	ctx = context.WithValue(ctx, constant.ContextKeyUserID, claims.UserID)
	ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, claims.Email)
	ctx = context.WithValue(ctx, constant.ContextKeyUserRole, claims.Role)

	return context.WithValue(ctx, constant.ContextKeyTokenID, claims.ID)
}
