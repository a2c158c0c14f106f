package review

import (
	"context"
	"net/http"

	"github.com/GioMjds/paynal-prajik/infras/otel"
	"github.com/GioMjds/paynal-prajik/internal/domains/review/model"
	"github.com/GioMjds/paynal-prajik/internal/domains/review/model/dto"
	"github.com/GioMjds/paynal-prajik/internal/domains/review/service"
	"github.com/GioMjds/paynal-prajik/shared"
	"github.com/GioMjds/paynal-prajik/shared/constant"
	gDto "github.com/GioMjds/paynal-prajik/shared/dto"
	"github.com/GioMjds/paynal-prajik/shared/failure"
	"github.com/GioMjds/paynal-prajik/shared/validator"
	"github.com/GioMjds/paynal-prajik/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Review
	otel    otel.Otel
}

func New(service service.Review, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router registers the review routes. The per-resource lists hang off the booking, room and area paths.
func (handler *Handler) Router(router chi.Router) {
	router.Post("/bookings/{id}/reviews", handler.CreateReview)
	router.Get("/bookings/{id}/reviews", handler.GetBookingReviews)
	router.Get("/rooms/{id}/reviews", handler.GetRoomReviews)
	router.Get("/areas/{id}/reviews", handler.GetAreaReviews)

	router.Route("/reviews", func(routerGroup chi.Router) {
		routerGroup.Get("/mine", handler.GetMyReviews)
		routerGroup.Get("/{id}", handler.GetReviewByID)
		routerGroup.Patch("/{id}", handler.UpdateReview)
		routerGroup.Delete("/{id}", handler.DeleteReview)
	})
}

func (handler *Handler) scope(r *http.Request, operation string) (context.Context, otel.Scope) {
	return handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Review."+operation)
}

// CreateReview rates a checked out booking.
// @Summary Review a booking
// @Tags Review
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.CreateReviewRequest true "Create Review Request"
// @Success 201 {object} response.Data[dto.ReviewResponse] "Review created"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/reviews [post]
// @Security BearerAuth
func (handler *Handler) CreateReview(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.scope(r, "CreateReview")
	defer scope.End()

	req := dto.CreateReviewRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		response.WithFailure(w, scope, err, "failed to validate request body")

		return
	}

	review, err := handler.service.Create(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		response.WithFailure(w, scope, err, "failed to create review")

		return
	}

	response.WithJSON(w, http.StatusCreated, review)
}

// GetBookingReviews lists the review of a booking.
// @Summary Get booking reviews
// @Tags Review
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.GetReviewsResponse] "List of reviews"
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/reviews [get]
func (handler *Handler) GetBookingReviews(w http.ResponseWriter, r *http.Request) {
	handler.list(w, r, "GetBookingReviews", dto.ListFilter{BookingID: chi.URLParam(r, constant.RequestParamID)})
}

// GetRoomReviews lists the reviews left for a room.
// @Summary Get room reviews
// @Tags Review
// @Produce json
// @Param id path string true "Room ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param rating query int false "Filter by rating"
// @Success 200 {object} response.Data[dto.GetReviewsResponse] "List of reviews"
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id}/reviews [get]
func (handler *Handler) GetRoomReviews(w http.ResponseWriter, r *http.Request) {
	handler.list(w, r, "GetRoomReviews", dto.ListFilter{RoomID: chi.URLParam(r, constant.RequestParamID)})
}

// GetAreaReviews lists the reviews left for a venue area.
// @Summary Get area reviews
// @Tags Review
// @Produce json
// @Param id path string true "Area ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param rating query int false "Filter by rating"
// @Success 200 {object} response.Data[dto.GetReviewsResponse] "List of reviews"
// @Failure 500 {object} response.Error
// @Router /v1/areas/{id}/reviews [get]
func (handler *Handler) GetAreaReviews(w http.ResponseWriter, r *http.Request) {
	handler.list(w, r, "GetAreaReviews", dto.ListFilter{AreaID: chi.URLParam(r, constant.RequestParamID)})
}

// GetMyReviews lists the reviews written by the signed in user.
// @Summary Get my reviews
// @Tags Review
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetReviewsResponse] "List of reviews"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reviews/mine [get]
// @Security BearerAuth
func (handler *Handler) GetMyReviews(w http.ResponseWriter, r *http.Request) {
	userID := shared.UserIDFrom(r.Context())
	if userID == constant.Empty {
		response.WithError(w, failure.Unauthorized("Authentication required"))

		return
	}

	handler.list(w, r, "GetMyReviews", dto.ListFilter{UserID: userID})
}

func (handler *Handler) list(w http.ResponseWriter, r *http.Request, operation string, filter dto.ListFilter) {
	ctx, scope := handler.scope(r, operation)
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.AllowSort(model.SortableColumns...)

	filter.FromRequest(r)

	reviews, err := handler.service.GetAll(ctx, queryParams, filter.ToFilterGroup())
	if err != nil {
		response.WithFailure(w, scope, err, "failed to get reviews")

		return
	}

	response.WithJSON(w, http.StatusOK, reviews)
}

// GetReviewByID retrieves a review by its ID.
// @Summary Get a review by ID
// @Tags Review
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} response.Data[dto.ReviewResponse] "Review details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reviews/{id} [get]
func (handler *Handler) GetReviewByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.scope(r, "GetReviewByID")
	defer scope.End()

	review, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithFailure(w, scope, err, "failed to get review by ID")

		return
	}

	response.WithJSON(w, http.StatusOK, review)
}

// UpdateReview changes the rating or comment of the caller's review.
// @Summary Update a review
// @Tags Review
// @Accept json
// @Produce json
// @Param id path string true "Review ID"
// @Param request body dto.UpdateReviewRequest true "Update Review Request"
// @Success 200 {object} response.Message "Review updated"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reviews/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.scope(r, "UpdateReview")
	defer scope.End()

	req := dto.UpdateReviewRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		response.WithFailure(w, scope, err, "failed to validate request body")

		return
	}

	if err := handler.service.Update(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		response.WithFailure(w, scope, err, "failed to update review")

		return
	}

	response.WithMessage(w, http.StatusOK, "Review updated successfully")
}

// DeleteReview removes a review.
// @Summary Delete a review
// @Tags Review
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} response.Message "Review deleted"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reviews/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.scope(r, "DeleteReview")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		response.WithFailure(w, scope, err, "failed to delete review")

		return
	}

	response.WithMessage(w, http.StatusOK, "Review deleted successfully")
}
