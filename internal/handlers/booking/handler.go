package booking

import (
	"context"
	"net/http"
	"strings"

	"github.com/GioMjds/paynal-prajik/infras/otel"
	"github.com/GioMjds/paynal-prajik/internal/domains/booking/model"
	"github.com/GioMjds/paynal-prajik/internal/domains/booking/model/dto"
	"github.com/GioMjds/paynal-prajik/internal/domains/booking/service"
	"github.com/GioMjds/paynal-prajik/shared"
	"github.com/GioMjds/paynal-prajik/shared/constant"
	gDto "github.com/GioMjds/paynal-prajik/shared/dto"
	"github.com/GioMjds/paynal-prajik/shared/failure"
	"github.com/GioMjds/paynal-prajik/shared/validator"
	"github.com/GioMjds/paynal-prajik/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/availability", handler.GetAvailability)
		routerGroup.Get("/mybookings", handler.GetMyBookings)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Patch("/{id}/status", handler.UpdateBookingStatus)
		routerGroup.Post("/{id}/cancel", handler.CancelBooking)
	})

	router.Get("/rooms/{id}/bookings", handler.GetRoomBookings)
	router.Get("/areas/{id}/bookings", handler.GetAreaBookings)
}

func (handler *Handler) scope(r *http.Request, operation string) (context.Context, otel.Scope) {
	return handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Booking."+operation)
}

// CreateBooking handles the creation of a new booking.
// @Summary Create a new booking
// @Description Validate and create a room or venue booking. Accepts JSON (validId as a data URL) or multipart form data (validId as a file).
// @Tags Booking
// @Accept json,mpfd
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.BookingResponse] "Booking created"
// @Failure 400 {object} response.Error "Field errors keyed by field"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.scope(request, "CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	var err error
	if strings.HasPrefix(request.Header.Get(constant.RequestHeaderContentType), constant.ContentTypeMultipartFormData) {
		if err = req.FromForm(request); err == nil {
			err = validator.ValidateStruct(&req)
		}
	} else {
		err = validator.Validate(request.Body, &req)
	}

	if err != nil {
		response.WithFailure(writer, scope, failure.BadRequest(err), "failed to validate request body")

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		response.WithFailure(writer, scope, err, "failed to create booking")

		return
	}

	scope.AddEvent("Booking created " + res.ID)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetBookings retrieves all bookings based on query parameters.
// @Summary Get all bookings
// @Description Retrieve all bookings with optional filtering and pagination.
// @Tags Booking
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status"
// @Param room_id query string false "Filter by room ID"
// @Param area_id query string false "Filter by area ID"
// @Param is_venue_booking query bool false "Filter venue bookings"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of bookings"
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.scope(request, "GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)
	queryParams.AllowSort(model.SortableColumns...)

	filter := dto.ListFilter{}
	filter.FromRequest(request)

	bookings, err := handler.service.GetAll(ctx, queryParams, filter.ToFilterGroup())
	if err != nil {
		response.WithFailure(writer, scope, err, "failed to get bookings")

		return
	}

	response.WithJSON(writer, http.StatusOK, bookings)
}

// GetMyBookings retrieves the bookings of the signed in user.
// @Summary Get my bookings
// @Tags Booking
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of bookings"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/mybookings [get]
// @Security BearerAuth
func (handler *Handler) GetMyBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.scope(request, "GetMyBookings")
	defer scope.End()

	userID := shared.UserIDFrom(ctx)
	if userID == constant.Empty {
		response.WithError(writer, failure.Unauthorized("Authentication required"))

		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)
	queryParams.AllowSort(model.SortableColumns...)

	filter := dto.ListFilter{}
	filter.FromRequest(request)
	filter.UserID = userID

	bookings, err := handler.service.GetAll(ctx, queryParams, filter.ToFilterGroup())
	if err != nil {
		response.WithFailure(writer, scope, err, "failed to get user bookings")

		return
	}

	response.WithJSON(writer, http.StatusOK, bookings)
}

// GetRoomBookings lists the bookings of one room.
// @Summary Get room bookings
// @Tags Booking
// @Produce json
// @Param id path string true "Room ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of bookings"
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id}/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetRoomBookings(writer http.ResponseWriter, request *http.Request) {
	filter := dto.ListFilter{}
	filter.FromRequest(request)
	filter.RoomID = chi.URLParam(request, constant.RequestParamID)

	handler.listFor(writer, request, "GetRoomBookings", filter)
}

// GetAreaBookings lists the bookings of one venue area.
// @Summary Get area bookings
// @Tags Booking
// @Produce json
// @Param id path string true "Area ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of bookings"
// @Failure 500 {object} response.Error
// @Router /v1/areas/{id}/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetAreaBookings(writer http.ResponseWriter, request *http.Request) {
	filter := dto.ListFilter{}
	filter.FromRequest(request)
	filter.AreaID = chi.URLParam(request, constant.RequestParamID)

	handler.listFor(writer, request, "GetAreaBookings", filter)
}

func (handler *Handler) listFor(writer http.ResponseWriter, request *http.Request, operation string, filter dto.ListFilter) {
	ctx, scope := handler.scope(request, operation)
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)
	queryParams.AllowSort(model.SortableColumns...)

	bookings, err := handler.service.GetAll(ctx, queryParams, filter.ToFilterGroup())
	if err != nil {
		response.WithFailure(writer, scope, err, "failed to get bookings")

		return
	}

	response.WithJSON(writer, http.StatusOK, bookings)
}

// GetAvailability lists the active bookings of a room or area within a date window.
// @Summary Check availability
// @Tags Booking
// @Produce json
// @Param room_id query string false "Room ID"
// @Param area_id query string false "Area ID"
// @Param from query string true "Window start (YYYY-MM-DD)"
// @Param to query string true "Window end (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.AvailabilityResponse] "Availability"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/availability [get]
func (handler *Handler) GetAvailability(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.scope(request, "GetAvailability")
	defer scope.End()

	req := dto.AvailabilityRequest{}
	req.FromRequest(request)

	if err := validator.ValidateStruct(&req); err != nil {
		response.WithFailure(writer, scope, err, "")

		return
	}

	res, err := handler.service.Availability(ctx, req)
	if err != nil {
		response.WithFailure(writer, scope, err, "failed to get availability")

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetBookingByID retrieves a booking by its ID.
// @Summary Get booking by ID
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBookingByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.scope(request, "GetBookingByID")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	booking, err := handler.service.Get(ctx, id)
	if err != nil {
		response.WithFailure(writer, scope, err, "failed to get booking "+id)

		return
	}

	response.WithJSON(writer, http.StatusOK, booking)
}

// UpdateBookingStatus moves a booking to a new lifecycle status.
// @Summary Update booking status
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateStatusRequest true "New status"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateBookingStatus(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.scope(request, "UpdateBookingStatus")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)
	req := dto.UpdateStatusRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		response.WithFailure(writer, scope, err, "")

		return
	}

	if err := handler.service.UpdateStatus(ctx, id, req); err != nil {
		response.WithFailure(writer, scope, err, "failed to update booking status "+id)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Booking status updated to "+req.Status)
}

// CancelBooking cancels a booking that has not started yet.
// @Summary Cancel booking
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.CancelBookingRequest true "Cancellation reason"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/cancel [post]
// @Security BearerAuth
func (handler *Handler) CancelBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.scope(request, "CancelBooking")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)
	req := dto.CancelBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		response.WithFailure(writer, scope, err, "")

		return
	}

	if err := handler.service.Cancel(ctx, id, req); err != nil {
		response.WithFailure(writer, scope, err, "failed to cancel booking "+id)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Booking cancelled successfully")
}
