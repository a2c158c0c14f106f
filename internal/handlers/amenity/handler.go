package amenity

import (
	"context"
	"net/http"

	"github.com/GioMjds/paynal-prajik/infras/otel"
	"github.com/GioMjds/paynal-prajik/internal/domains/amenity/model"
	"github.com/GioMjds/paynal-prajik/internal/domains/amenity/model/dto"
	"github.com/GioMjds/paynal-prajik/internal/domains/amenity/service"
	"github.com/GioMjds/paynal-prajik/shared/constant"
	gDto "github.com/GioMjds/paynal-prajik/shared/dto"
	"github.com/GioMjds/paynal-prajik/shared/validator"
	"github.com/GioMjds/paynal-prajik/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Amenity
	otel    otel.Otel
}

func New(service service.Amenity, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/amenities", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateAmenity)
		routerGroup.Get("/", handler.GetAmenities)
		routerGroup.Get("/{id}", handler.GetAmenityByID)
		routerGroup.Patch("/{id}", handler.UpdateAmenity)
		routerGroup.Delete("/{id}", handler.DeleteAmenity)
	})
}

func (handler *Handler) scope(r *http.Request, operation string) (context.Context, otel.Scope) {
	return handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Amenity."+operation)
}

// CreateAmenity adds an entry to the amenity catalog.
// @Summary Create an amenity
// @Tags Amenity
// @Accept json
// @Produce json
// @Param request body dto.CreateAmenityRequest true "Create Amenity Request"
// @Success 201 {object} response.Data[dto.AmenityResponse] "Amenity created"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/amenities [post]
// @Security BearerAuth
func (handler *Handler) CreateAmenity(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.scope(r, "CreateAmenity")
	defer scope.End()

	req := dto.CreateAmenityRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		response.WithFailure(w, scope, err, "failed to validate request body")

		return
	}

	amenity, err := handler.service.Create(ctx, req)
	if err != nil {
		response.WithFailure(w, scope, err, "failed to create amenity")

		return
	}

	response.WithJSON(w, http.StatusCreated, amenity)
}

// GetAmenities lists the amenity catalog.
// @Summary Get all amenities
// @Tags Amenity
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param description query string false "Filter by description"
// @Success 200 {object} response.Data[dto.GetAmenitiesResponse] "List of amenities"
// @Failure 500 {object} response.Error
// @Router /v1/amenities [get]
func (handler *Handler) GetAmenities(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.scope(r, "GetAmenities")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.AllowSort(model.SortableColumns...)

	amenities, err := handler.service.GetAll(ctx, queryParams, dto.FilterFromRequest(r))
	if err != nil {
		response.WithFailure(w, scope, err, "failed to get amenities")

		return
	}

	response.WithJSON(w, http.StatusOK, amenities)
}

// GetAmenityByID retrieves an amenity by its ID.
// @Summary Get an amenity by ID
// @Tags Amenity
// @Produce json
// @Param id path string true "Amenity ID"
// @Success 200 {object} response.Data[dto.AmenityResponse] "Amenity details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/amenities/{id} [get]
func (handler *Handler) GetAmenityByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.scope(r, "GetAmenityByID")
	defer scope.End()

	amenity, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithFailure(w, scope, err, "failed to get amenity by ID")

		return
	}

	response.WithJSON(w, http.StatusOK, amenity)
}

// UpdateAmenity renames an amenity.
// @Summary Update an amenity by ID
// @Tags Amenity
// @Accept json
// @Produce json
// @Param id path string true "Amenity ID"
// @Param request body dto.UpdateAmenityRequest true "Update Amenity Request"
// @Success 200 {object} response.Message "Amenity updated"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/amenities/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateAmenity(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.scope(r, "UpdateAmenity")
	defer scope.End()

	req := dto.UpdateAmenityRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		response.WithFailure(w, scope, err, "failed to validate request body")

		return
	}

	if err := handler.service.Update(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		response.WithFailure(w, scope, err, "failed to update amenity")

		return
	}

	response.WithMessage(w, http.StatusOK, "Amenity updated successfully")
}

// DeleteAmenity removes an amenity from the catalog.
// @Summary Delete an amenity by ID
// @Tags Amenity
// @Produce json
// @Param id path string true "Amenity ID"
// @Success 200 {object} response.Message "Amenity deleted"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/amenities/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteAmenity(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.scope(r, "DeleteAmenity")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		response.WithFailure(w, scope, err, "failed to delete amenity")

		return
	}

	response.WithMessage(w, http.StatusOK, "Amenity deleted successfully")
}
