package user

import (
	"context"
	"net/http"

	"github.com/GioMjds/paynal-prajik/infras/otel"
	"github.com/GioMjds/paynal-prajik/internal/domains/user/model"
	"github.com/GioMjds/paynal-prajik/internal/domains/user/model/dto"
	"github.com/GioMjds/paynal-prajik/internal/domains/user/service"
	"github.com/GioMjds/paynal-prajik/shared"
	"github.com/GioMjds/paynal-prajik/shared/constant"
	gDto "github.com/GioMjds/paynal-prajik/shared/dto"
	"github.com/GioMjds/paynal-prajik/shared/failure"
	"github.com/GioMjds/paynal-prajik/shared/validator"
	"github.com/GioMjds/paynal-prajik/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.User
	otel    otel.Otel
}

func New(service service.User, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/users", func(users chi.Router) {
		users.Get("/", handler.ListUsers)
		users.Get("/me", handler.GetProfile)
		users.Get("/{id}", handler.GetUser)
		users.Patch("/{id}", handler.UpdateUser)
		users.Delete("/{id}", handler.DeleteUser)
	})
}

func (handler *Handler) scope(r *http.Request, operation string) (context.Context, otel.Scope) {
	return handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".User."+operation)
}

// ListUsers godoc
// @Summary List user accounts
// @Description Paginated accounts, filterable by email (partial match), role and active flag.
// @Tags User
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination and sorting"
// @Param email query string false "Email contains"
// @Param role query string false "guest, admin or superadmin"
// @Param active query bool false "Active flag"
// @Success 200 {object} response.Data[dto.GetUsersResponse]
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/users [get]
// @Security BearerAuth
func (handler *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.scope(r, "List")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(r, true)
	params.AllowSort(model.SortableColumns...)

	users, err := handler.service.GetAll(ctx, params, dto.FilterFromRequest(r))
	if err != nil {
		response.WithFailure(w, scope, err, "failed to list users")

		return
	}

	response.WithJSON(w, http.StatusOK, users)
}

// GetProfile godoc
// @Summary Signed-in account
// @Tags User
// @Produce json
// @Success 200 {object} response.Data[dto.UserResponse]
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/users/me [get]
// @Security BearerAuth
func (handler *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.scope(r, "Profile")
	defer scope.End()

	id := shared.UserIDFrom(ctx)
	if id == constant.Empty {
		response.WithFailure(w, scope, failure.Unauthorized("Authentication required"), constant.Empty)

		return
	}

	user, err := handler.service.Get(ctx, id)
	if err != nil {
		response.WithFailure(w, scope, err, "failed to get profile of "+id)

		return
	}

	response.WithJSON(w, http.StatusOK, user)
}

// GetUser godoc
// @Summary Account by ID
// @Tags User
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Data[dto.UserResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/users/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.scope(r, "Get")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	user, err := handler.service.Get(ctx, id)
	if err != nil {
		response.WithFailure(w, scope, err, "failed to get user "+id)

		return
	}

	response.WithJSON(w, http.StatusOK, user)
}

// UpdateUser godoc
// @Summary Change role or activation
// @Description Admins cannot change their own account. Granting superadmin, or touching a superadmin account, needs a superadmin.
// @Tags User
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body dto.UpdateUserRequest true "Role and active flag"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/users/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.scope(r, "Update")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateUserRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		response.WithFailure(w, scope, err, constant.Empty)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		response.WithFailure(w, scope, err, "failed to update user "+id)

		return
	}

	scope.AddEvent("user " + id + " updated by " + shared.UserIDFrom(ctx))

	response.WithMessage(w, http.StatusOK, "User updated successfully")
}

// DeleteUser godoc
// @Summary Remove an account
// @Description Accounts that still own bookings cannot be removed; deactivate them instead.
// @Tags User
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/users/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.scope(r, "Delete")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		response.WithFailure(w, scope, err, "failed to delete user "+id)

		return
	}

	scope.AddEvent("user " + id + " deleted by " + shared.UserIDFrom(ctx))

	response.WithMessage(w, http.StatusOK, "User deleted successfully")
}
