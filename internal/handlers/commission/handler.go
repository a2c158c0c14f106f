package commission

import (
	"context"
	"net/http"

	"github.com/GioMjds/paynal-prajik/infras/otel"
	"github.com/GioMjds/paynal-prajik/internal/domains/commission/model"
	"github.com/GioMjds/paynal-prajik/internal/domains/commission/model/dto"
	"github.com/GioMjds/paynal-prajik/internal/domains/commission/service"
	"github.com/GioMjds/paynal-prajik/shared/constant"
	gDto "github.com/GioMjds/paynal-prajik/shared/dto"
	"github.com/GioMjds/paynal-prajik/shared/failure"
	"github.com/GioMjds/paynal-prajik/shared/validator"
	"github.com/GioMjds/paynal-prajik/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Commission
	otel    otel.Otel
}

func New(service service.Commission, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/commissions", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetCommissions)
		routerGroup.Get("/summary", handler.GetSummary)
		routerGroup.Get("/{id}", handler.GetCommissionByID)
		routerGroup.Patch("/{id}/paid", handler.MarkPaid)
	})
}

func (handler *Handler) scope(r *http.Request, operation string) (context.Context, otel.Scope) {
	return handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Commission."+operation)
}

// GetCommissions lists food-order commissions.
// @Summary Get all commissions
// @Tags Commission
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param order_status query string false "Filter by order status"
// @Param is_paid query bool false "Filter by payout state"
// @Param room_id query string false "Filter by room ID"
// @Param area_id query string false "Filter by area ID"
// @Param from query string false "Ordered on or after (YYYY-MM-DD)"
// @Param to query string false "Ordered on or before (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.GetCommissionsResponse] "List of commissions"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/commissions [get]
// @Security BearerAuth
func (handler *Handler) GetCommissions(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.scope(r, "GetCommissions")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.AllowSort(model.SortableColumns...)

	filter := dto.ListFilter{}
	filter.FromRequest(r)

	filterGroup, err := filter.ToFilterGroup()
	if err != nil {
		response.WithError(w, failure.BadRequest(err))

		return
	}

	commissions, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		response.WithFailure(w, scope, err, "failed to get commissions")

		return
	}

	response.WithJSON(w, http.StatusOK, commissions)
}

// GetSummary aggregates orders and commissions.
// @Summary Commission summary
// @Tags Commission
// @Produce json
// @Param room_id query string false "Filter by room ID"
// @Param area_id query string false "Filter by area ID"
// @Param from query string false "Ordered on or after (YYYY-MM-DD)"
// @Param to query string false "Ordered on or before (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.SummaryResponse] "Summary"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/commissions/summary [get]
// @Security BearerAuth
func (handler *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.scope(r, "GetSummary")
	defer scope.End()

	filter := dto.ListFilter{}
	filter.FromRequest(r)
	filter.OrderStatus, filter.IsPaid = constant.Empty, nil

	filterGroup, err := filter.ToFilterGroup()
	if err != nil {
		response.WithError(w, failure.BadRequest(err))

		return
	}

	summary, err := handler.service.Summary(ctx, filterGroup)
	if err != nil {
		response.WithFailure(w, scope, err, "failed to get commission summary")

		return
	}

	response.WithJSON(w, http.StatusOK, summary)
}

// GetCommissionByID retrieves a commission by its ID.
// @Summary Get commission by ID
// @Tags Commission
// @Produce json
// @Param id path string true "Commission ID"
// @Success 200 {object} response.Data[dto.CommissionResponse] "Commission"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/commissions/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetCommissionByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.scope(r, "GetCommissionByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	commission, err := handler.service.Get(ctx, id)
	if err != nil {
		response.WithFailure(w, scope, err, "failed to get commission "+id)

		return
	}

	response.WithJSON(w, http.StatusOK, commission)
}

// MarkPaid records the payout of a commission.
// @Summary Mark commission as paid
// @Tags Commission
// @Accept json
// @Produce json
// @Param id path string true "Commission ID"
// @Param request body dto.MarkPaidRequest false "Payout notes"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/commissions/{id}/paid [patch]
// @Security BearerAuth
func (handler *Handler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.scope(r, "MarkPaid")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	req := dto.MarkPaidRequest{}

	if r.ContentLength != 0 {
		if err := validator.Validate(r.Body, &req); err != nil {
			response.WithFailure(w, scope, err, "")

			return
		}
	}

	if err := handler.service.MarkPaid(ctx, id, req); err != nil {
		response.WithFailure(w, scope, err, "failed to mark commission as paid "+id)

		return
	}

	response.WithMessage(w, http.StatusOK, "Commission marked as paid")
}
