package area

import (
	"context"
	"net/http"

	"github.com/GioMjds/paynal-prajik/infras/otel"
	"github.com/GioMjds/paynal-prajik/internal/domains/area/model"
	"github.com/GioMjds/paynal-prajik/internal/domains/area/model/dto"
	"github.com/GioMjds/paynal-prajik/internal/domains/area/service"
	"github.com/GioMjds/paynal-prajik/shared/constant"
	gDto "github.com/GioMjds/paynal-prajik/shared/dto"
	"github.com/GioMjds/paynal-prajik/shared/validator"
	"github.com/GioMjds/paynal-prajik/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Area
	otel    otel.Otel
}

func New(service service.Area, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/areas", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateArea)
		routerGroup.Get("/", handler.GetAreas)
		routerGroup.Get("/{id}", handler.GetAreaByID)
	})
}

func (handler *Handler) scope(r *http.Request, operation string) (context.Context, otel.Scope) {
	return handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Area."+operation)
}

// CreateArea handles the creation of a new bookable area.
// @Summary Create a new area
// @Description Create a venue area. The image is sent as a base64 data URL.
// @Tags Area
// @Accept json
// @Produce json
// @Param request body dto.CreateAreaRequest true "Create Area Request"
// @Success 201 {object} response.Data[dto.AreaResponse] "Area created"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/areas [post]
// @Security BearerAuth
func (handler *Handler) CreateArea(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.scope(r, "CreateArea")
	defer scope.End()

	req := dto.CreateAreaRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		response.WithFailure(w, scope, err, "failed to validate request body")

		return
	}

	area, err := handler.service.Create(ctx, req)
	if err != nil {
		response.WithFailure(w, scope, err, "failed to create area")

		return
	}

	response.WithJSON(w, http.StatusCreated, area)
}

// GetAreas retrieves all areas.
// @Summary Get all areas
// @Tags Area
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param status query string false "Filter by status"
// @Success 200 {object} response.Data[dto.GetAreasResponse] "List of areas"
// @Failure 500 {object} response.Error
// @Router /v1/areas [get]
func (handler *Handler) GetAreas(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.scope(r, "GetAreas")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.AllowSort(model.SortableColumns...)

	areas, err := handler.service.GetAll(ctx, queryParams, dto.FilterFromRequest(r))
	if err != nil {
		response.WithFailure(w, scope, err, "failed to get areas")

		return
	}

	response.WithJSON(w, http.StatusOK, areas)
}

// GetAreaByID retrieves an area by its ID.
// @Summary Get an area by ID
// @Tags Area
// @Produce json
// @Param id path string true "Area ID"
// @Success 200 {object} response.Data[dto.AreaResponse] "Area details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/areas/{id} [get]
func (handler *Handler) GetAreaByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.scope(r, "GetAreaByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	area, err := handler.service.Get(ctx, id)
	if err != nil {
		response.WithFailure(w, scope, err, "failed to get area by ID")

		return
	}

	response.WithJSON(w, http.StatusOK, area)
}
