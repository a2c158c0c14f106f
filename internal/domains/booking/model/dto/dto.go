package dto

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/GioMjds/paynal-prajik/internal/domains/booking/conflict"
	"github.com/GioMjds/paynal-prajik/internal/domains/booking/model"
	"github.com/GioMjds/paynal-prajik/internal/domains/booking/validation"
	"github.com/GioMjds/paynal-prajik/shared"
	"github.com/GioMjds/paynal-prajik/shared/base64"
	"github.com/GioMjds/paynal-prajik/shared/constant"
	gDto "github.com/GioMjds/paynal-prajik/shared/dto"
	gModel "github.com/GioMjds/paynal-prajik/shared/model"
	"github.com/GioMjds/paynal-prajik/shared/timezone"

	"github.com/google/uuid"
)

const (
	formValidID     = "validId"
	validIDFileName = "valid-id"
)

const (
	EventTypeCreated       = "booking.created"
	EventTypeStatusChanged = "booking.status_changed"
	EventTypeCancelled     = "booking.cancelled"
)

// GuestCount accepts the head count as either a JSON number or a string.
type GuestCount string

func (g *GuestCount) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(bytes.TrimSpace(data)), `"`)
	if raw == "null" {
		raw = ""
	}

	*g = GuestCount(raw)

	return nil
}

type CreateBookingRequest struct {
	FirstName       string     `json:"firstName"`
	LastName        string     `json:"lastName"`
	EmailAddress    string     `json:"emailAddress"`
	PhoneNumber     string     `json:"phoneNumber"`
	CheckIn         string     `json:"checkIn"`
	CheckOut        string     `json:"checkOut"`
	ArrivalTime     string     `json:"arrivalTime"`
	NumberOfGuests  GuestCount `json:"numberOfGuests"`
	SpecialRequests string     `json:"specialRequests"`
	IsVenueBooking  bool       `json:"isVenueBooking"`
	RoomID          string     `json:"roomId"          validate:"omitempty,uuid"`
	AreaID          string     `json:"areaId"          validate:"omitempty,uuid"`
	StartTime       string     `json:"startTime"       validate:"omitempty,clock"`
	EndTime         string     `json:"endTime"         validate:"omitempty,clock"`
	// ValidID is a base64 data URL when the booking is sent as JSON.
	ValidID string `json:"validId"`

	document *validation.Document
}

// FromForm reads a multipart booking form, including the optional validId file.
func (c *CreateBookingRequest) FromForm(r *http.Request) error {
	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		return fmt.Errorf("failed to parse multipart form: %w", err)
	}

	c.FirstName = r.FormValue("firstName")
	c.LastName = r.FormValue("lastName")
	c.EmailAddress = r.FormValue("emailAddress")
	c.PhoneNumber = r.FormValue("phoneNumber")
	c.CheckIn = r.FormValue("checkIn")
	c.CheckOut = r.FormValue("checkOut")
	c.ArrivalTime = r.FormValue("arrivalTime")
	c.NumberOfGuests = GuestCount(r.FormValue("numberOfGuests"))
	c.SpecialRequests = r.FormValue("specialRequests")
	c.RoomID = r.FormValue("roomId")
	c.AreaID = r.FormValue("areaId")
	c.StartTime = r.FormValue("startTime")
	c.EndTime = r.FormValue("endTime")

	if venue := shared.ConvertStringToBool(r.FormValue("isVenueBooking")); venue != nil {
		c.IsVenueBooking = *venue
	}

	file, header, err := r.FormFile(formValidID)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			c.ValidID = r.FormValue(formValidID)

			return nil
		}

		return fmt.Errorf("failed to read valid ID: %w", err)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return fmt.Errorf("failed to read valid ID: %w", err)
	}

	c.document = &validation.Document{
		FileName:    header.Filename,
		ContentType: header.Header.Get(constant.RequestHeaderContentType),
		Size:        header.Size,
		Content:     content,
	}

	return nil
}

// Document returns the uploaded ID, decoding a data URL when one was sent. Nil when no ID was supplied.
func (c *CreateBookingRequest) Document() *validation.Document {
	if c.document != nil {
		return c.document
	}

	if c.ValidID == "" {
		return nil
	}

	contentType, content, err := base64.Decode(c.ValidID)
	if err != nil {
		return &validation.Document{FileName: validIDFileName, Size: int64(len(c.ValidID))}
	}

	c.document = &validation.Document{
		FileName:    validIDFileName,
		ContentType: contentType,
		Size:        int64(len(content)),
		Content:     content,
	}

	return c.document
}

func (c *CreateBookingRequest) ToValidation() validation.BookingRequest {
	return validation.BookingRequest{
		FirstName:       c.FirstName,
		LastName:        c.LastName,
		EmailAddress:    c.EmailAddress,
		PhoneNumber:     c.PhoneNumber,
		CheckIn:         c.CheckIn,
		CheckOut:        c.CheckOut,
		ArrivalTime:     c.ArrivalTime,
		NumberOfGuests:  string(c.NumberOfGuests),
		SpecialRequests: c.SpecialRequests,
		IsVenueBooking:  c.IsVenueBooking,
		ValidID:         c.Document(),
	}
}

// ToModel builds a pending booking from a request that already passed validation.
func (c *CreateBookingRequest) ToModel(userID, validIDURL string) (model.Booking, error) {
	checkIn, err := timezone.Parse(constant.DateFormat, c.CheckIn)
	if err != nil {
		return model.Booking{}, fmt.Errorf("invalid check-in date: %w", err)
	}

	checkOut, err := timezone.Parse(constant.DateFormat, c.CheckOut)
	if err != nil {
		return model.Booking{}, fmt.Errorf("invalid check-out date: %w", err)
	}

	guests, err := validation.GuestCount(string(c.NumberOfGuests), nil)
	if err != nil {
		return model.Booking{}, err
	}

	actor := userID
	if actor == "" {
		actor = constant.ContextGuest
	}

	booking := model.Booking{
		ID:             uuid.NewString(),
		UserID:         optional(userID),
		FirstName:      strings.TrimSpace(c.FirstName),
		LastName:       strings.TrimSpace(c.LastName),
		Email:          strings.TrimSpace(c.EmailAddress),
		ValidID:        optional(validIDURL),
		IsVenueBooking: c.IsVenueBooking,
		CheckInDate:    checkIn,
		CheckOutDate:   checkOut,
		NumberOfGuests: guests,
		SpecialRequest: optional(c.SpecialRequests),
		Status:         model.StatusPending,
		PaymentStatus:  model.PaymentStatusUnpaid,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  actor,
			ModifiedBy: actor,
		},
	}

	booking.PhoneNumber, _ = validation.PhoneNumber(c.PhoneNumber)

	if c.IsVenueBooking {
		booking.AreaID = optional(c.AreaID)
		booking.StartTime = optional(c.StartTime)
		booking.EndTime = optional(c.EndTime)
	} else {
		booking.RoomID = optional(c.RoomID)

		arrival, _ := validation.ArrivalTime(c.ArrivalTime)
		booking.TimeOfArrival = optional(arrival)
	}

	return booking, nil
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=reserved confirmed checked_in checked_out cancelled rejected missed_reservation"`
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

type AvailabilityRequest struct {
	RoomID string `json:"room_id" validate:"omitempty,uuid"`
	AreaID string `json:"area_id" validate:"omitempty,uuid"`
	From   string `json:"from"    validate:"required,date"`
	To     string `json:"to"      validate:"required,date"`
}

func (a *AvailabilityRequest) FromRequest(r *http.Request) {
	query := r.URL.Query()

	a.RoomID = query.Get(model.FieldRoomID)
	a.AreaID = query.Get(model.FieldAreaID)
	a.From = query.Get("from")
	a.To = query.Get("to")
}

// Window parses the requested range. A single day window is widened to one night.
func (a *AvailabilityRequest) Window() (conflict.Stay, error) {
	from, err := timezone.Parse(constant.DateFormat, a.From)
	if err != nil {
		return conflict.Stay{}, fmt.Errorf("invalid from date: %w", err)
	}

	to, err := timezone.Parse(constant.DateFormat, a.To)
	if err != nil {
		return conflict.Stay{}, fmt.Errorf("invalid to date: %w", err)
	}

	if to.Before(from) {
		return conflict.Stay{}, errors.New("to date must not be before from date")
	}

	if to.Equal(from) {
		to = to.AddDate(0, 0, 1)
	}

	return conflict.Stay{CheckIn: from, CheckOut: to}, nil
}

type BookedSlot struct {
	ID        string  `json:"id"`
	CheckIn   string  `json:"check_in"`
	CheckOut  string  `json:"check_out"`
	StartTime *string `json:"start_time,omitempty"`
	EndTime   *string `json:"end_time,omitempty"`
	Status    string  `json:"status"`
}

type AvailabilityResponse struct {
	RoomID    string       `json:"room_id,omitempty"`
	AreaID    string       `json:"area_id,omitempty"`
	From      string       `json:"from"`
	To        string       `json:"to"`
	Available bool         `json:"available"`
	Bookings  []BookedSlot `json:"bookings"`
}

func (r *AvailabilityResponse) FromModels(req AvailabilityRequest, models []model.Booking) {
	r.RoomID = req.RoomID
	r.AreaID = req.AreaID
	r.From = req.From
	r.To = req.To
	r.Available = len(models) == 0

	r.Bookings = make([]BookedSlot, len(models))
	for i, mod := range models {
		r.Bookings[i] = BookedSlot{
			ID:        mod.ID,
			CheckIn:   mod.CheckInDate.Format(constant.DateFormat),
			CheckOut:  mod.CheckOutDate.Format(constant.DateFormat),
			StartTime: clock(mod.StartTime),
			EndTime:   clock(mod.EndTime),
			Status:    mod.Status,
		}
	}
}

type BookingResponse struct {
	ID                 string  `json:"id"`
	UserID             *string `json:"user_id"`
	RoomID             *string `json:"room_id"`
	AreaID             *string `json:"area_id"`
	FirstName          string  `json:"first_name"`
	LastName           string  `json:"last_name"`
	Email              string  `json:"email"`
	PhoneNumber        string  `json:"phone_number"`
	ValidID            *string `json:"valid_id"`
	IsVenueBooking     bool    `json:"is_venue_booking"`
	CheckInDate        string  `json:"check_in_date"`
	CheckOutDate       string  `json:"check_out_date"`
	Nights             int     `json:"nights"`
	StartTime          *string `json:"start_time"`
	EndTime            *string `json:"end_time"`
	TimeOfArrival      *string `json:"time_of_arrival"`
	NumberOfGuests     int     `json:"number_of_guests"`
	SpecialRequest     *string `json:"special_request"`
	Status             string  `json:"status"`
	PaymentStatus      string  `json:"payment_status"`
	CancellationReason *string `json:"cancellation_reason"`
	CancellationDate   *string `json:"cancellation_date"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	stay := conflict.Stay{CheckIn: model.CheckInDate, CheckOut: model.CheckOutDate}

	r.ID = model.ID
	r.UserID = model.UserID
	r.RoomID = model.RoomID
	r.AreaID = model.AreaID
	r.FirstName = model.FirstName
	r.LastName = model.LastName
	r.Email = model.Email
	r.PhoneNumber = model.PhoneNumber
	r.ValidID = model.ValidID
	r.IsVenueBooking = model.IsVenueBooking
	r.CheckInDate = stay.CheckInDate()
	r.CheckOutDate = stay.CheckOutDate()
	r.Nights = stay.Nights()
	r.StartTime = clock(model.StartTime)
	r.EndTime = clock(model.EndTime)
	r.TimeOfArrival = clock(model.TimeOfArrival)
	r.NumberOfGuests = model.NumberOfGuests
	r.SpecialRequest = model.SpecialRequest
	r.Status = model.Status
	r.PaymentStatus = model.PaymentStatus
	r.CancellationReason = model.CancellationReason

	if model.CancellationDate != nil {
		cancelled := timezone.Format(*model.CancellationDate, constant.DateTimeFormat)
		r.CancellationDate = &cancelled
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// Event is published to the booking events topic on every lifecycle change.
type Event struct {
	Type       string  `json:"type"`
	BookingID  string  `json:"booking_id"`
	UserID     *string `json:"user_id,omitempty"`
	RoomID     *string `json:"room_id,omitempty"`
	AreaID     *string `json:"area_id,omitempty"`
	Status     string  `json:"status"`
	CheckIn    string  `json:"check_in"`
	CheckOut   string  `json:"check_out"`
	OccurredAt string  `json:"occurred_at"`
}

func NewEvent(eventType string, booking model.Booking) Event {
	return Event{
		Type:       eventType,
		BookingID:  booking.ID,
		UserID:     booking.UserID,
		RoomID:     booking.RoomID,
		AreaID:     booking.AreaID,
		Status:     booking.Status,
		CheckIn:    booking.CheckInDate.Format(constant.DateFormat),
		CheckOut:   booking.CheckOutDate.Format(constant.DateFormat),
		OccurredAt: timezone.Format(timezone.Now(), constant.DateTimeFormat),
	}
}

// ListFilter narrows the booking list. Empty fields are ignored.
type ListFilter struct {
	UserID         string
	Status         string
	RoomID         string
	AreaID         string
	IsVenueBooking *bool
}

func (f *ListFilter) FromRequest(r *http.Request) {
	query := r.URL.Query()

	f.Status = query.Get(model.FieldStatus)
	f.RoomID = query.Get(model.FieldRoomID)
	f.AreaID = query.Get(model.FieldAreaID)
	f.IsVenueBooking = shared.ConvertStringToBool(query.Get(model.FieldIsVenueBooking))
}

func (f *ListFilter) ToFilterGroup() gDto.FilterGroup {
	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	eq := map[string]string{
		model.FieldUserID: f.UserID,
		model.FieldStatus: f.Status,
		model.FieldRoomID: f.RoomID,
		model.FieldAreaID: f.AreaID,
	}

	for _, field := range []string{model.FieldUserID, model.FieldStatus, model.FieldRoomID, model.FieldAreaID} {
		if eq[field] == "" {
			continue
		}

		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    field,
			Operator: gDto.FilterOperatorEq,
			Value:    eq[field],
			Table:    model.TableName,
		})
	}

	if f.IsVenueBooking != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldIsVenueBooking,
			Operator: gDto.FilterOperatorEq,
			Value:    *f.IsVenueBooking,
			Table:    model.TableName,
		})
	}

	return filterGroup
}

func optional(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	return &value
}

// clock trims a postgres TIME value such as 14:00:00 to HH:MM.
func clock(value *string) *string {
	if value == nil {
		return nil
	}

	trimmed := *value
	if len(trimmed) > len(constant.TimeFormat) {
		trimmed = trimmed[:len(constant.TimeFormat)]
	}

	return &trimmed
}
