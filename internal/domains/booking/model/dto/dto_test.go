package dto_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GioMjds/paynal-prajik/internal/domains/booking/model"
	"github.com/GioMjds/paynal-prajik/internal/domains/booking/model/dto"
	"github.com/GioMjds/paynal-prajik/shared/constant"
	gDto "github.com/GioMjds/paynal-prajik/shared/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuestCountUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		body string
		want dto.GuestCount
	}{
		{name: "number", body: `{"numberOfGuests": 3}`, want: "3"},
		{name: "string", body: `{"numberOfGuests": "3"}`, want: "3"},
		{name: "null", body: `{"numberOfGuests": null}`, want: ""},
		{name: "absent", body: `{}`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req dto.CreateBookingRequest

			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			assert.Equal(t, tt.want, req.NumberOfGuests)
		})
	}
}

func TestCreateBookingRequest_Document(t *testing.T) {
	req := dto.CreateBookingRequest{}
	assert.Nil(t, req.Document())

	req.ValidID = "data:image/png;base64,iVBORw0KGgo="
	doc := req.Document()
	require.NotNil(t, doc)
	assert.Equal(t, "image/png", doc.ContentType)
	assert.Equal(t, int64(8), doc.Size)

	broken := dto.CreateBookingRequest{ValidID: "not a data url"}
	doc = broken.Document()
	require.NotNil(t, doc)
	assert.Empty(t, doc.ContentType)
}

func TestCreateBookingRequest_FromForm(t *testing.T) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	fields := map[string]string{
		"firstName":      "Juan",
		"lastName":       "Dela Cruz",
		"emailAddress":   "juan@example.com",
		"phoneNumber":    "09171234567",
		"checkIn":        "2099-06-03",
		"checkOut":       "2099-06-04",
		"arrivalTime":    "15:00",
		"numberOfGuests": "2",
		"roomId":         "room-1",
		"isVenueBooking": "false",
	}

	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}

	part, err := writer.CreateFormFile("validId", "id.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	r := httptest.NewRequest(http.MethodPost, "/v1/bookings", body)
	r.Header.Set(constant.RequestHeaderContentType, writer.FormDataContentType())

	var req dto.CreateBookingRequest
	require.NoError(t, req.FromForm(r))

	assert.Equal(t, "Juan", req.FirstName)
	assert.Equal(t, dto.GuestCount("2"), req.NumberOfGuests)
	assert.False(t, req.IsVenueBooking)

	validationReq := req.ToValidation()
	require.NotNil(t, validationReq.ValidID)
	assert.Equal(t, "id.png", validationReq.ValidID.FileName)
	assert.Equal(t, []byte("png-bytes"), validationReq.ValidID.Content)
}

func TestCreateBookingRequest_ToModel(t *testing.T) {
	room := dto.CreateBookingRequest{
		FirstName:       " Juan ",
		LastName:        "Dela Cruz",
		EmailAddress:    "juan@example.com",
		PhoneNumber:     "+63 917 123 4567",
		CheckIn:         "2099-06-03",
		CheckOut:        "2099-06-05",
		ArrivalTime:     "15:30",
		NumberOfGuests:  "2",
		SpecialRequests: "Extra pillows",
		RoomID:          "room-1",
	}

	booking, err := room.ToModel("user-1", "https://cdn.example.com/valid-ids/a.png")
	require.NoError(t, err)

	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, "Juan", booking.FirstName)
	assert.Equal(t, "+639171234567", booking.PhoneNumber)
	assert.Equal(t, model.StatusPending, booking.Status)
	assert.Equal(t, model.PaymentStatusUnpaid, booking.PaymentStatus)
	assert.Equal(t, 2, booking.NumberOfGuests)
	assert.Equal(t, "room-1", *booking.RoomID)
	assert.Equal(t, "15:30", *booking.TimeOfArrival)
	assert.Equal(t, "user-1", booking.CreatedBy)
	assert.Nil(t, booking.StartTime)

	venue := room
	venue.IsVenueBooking = true
	venue.AreaID = "area-1"
	venue.StartTime = "09:00"
	venue.EndTime = "17:00"

	booking, err = venue.ToModel("", "")
	require.NoError(t, err)

	assert.Nil(t, booking.UserID)
	assert.Nil(t, booking.ValidID)
	assert.Nil(t, booking.RoomID)
	assert.Nil(t, booking.TimeOfArrival)
	assert.Equal(t, "area-1", *booking.AreaID)
	assert.Equal(t, "09:00", *booking.StartTime)
	assert.Equal(t, constant.ContextGuest, booking.CreatedBy)

	invalid := room
	invalid.CheckIn = "tomorrow"

	_, err = invalid.ToModel("", "")
	assert.Error(t, err)
}

func TestAvailabilityRequest_Window(t *testing.T) {
	tests := []struct {
		name     string
		from     string
		to       string
		checkOut string
		wantErr  bool
	}{
		{name: "range", from: "2025-06-03", to: "2025-06-05", checkOut: "2025-06-05"},
		{name: "single day widened", from: "2025-06-03", to: "2025-06-03", checkOut: "2025-06-04"},
		{name: "inverted", from: "2025-06-05", to: "2025-06-03", wantErr: true},
		{name: "bad date", from: "June", to: "2025-06-03", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.AvailabilityRequest{From: tt.from, To: tt.to}

			window, err := req.Window()

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.from, window.CheckInDate())
			assert.Equal(t, tt.checkOut, window.CheckOutDate())
		})
	}
}

func TestListFilter_ToFilterGroup(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/v1/bookings?status=pending&is_venue_booking=true", nil)

	var filter dto.ListFilter
	filter.FromRequest(r)
	filter.UserID = "user-1"

	group := filter.ToFilterGroup()

	assert.Equal(t, gDto.FilterGroupOperatorAnd, group.Operator)
	assert.Equal(t, []any{
		gDto.Filter{Field: model.FieldUserID, Operator: gDto.FilterOperatorEq, Value: "user-1", Table: model.TableName},
		gDto.Filter{Field: model.FieldStatus, Operator: gDto.FilterOperatorEq, Value: "pending", Table: model.TableName},
		gDto.Filter{Field: model.FieldIsVenueBooking, Operator: gDto.FilterOperatorEq, Value: true, Table: model.TableName},
	}, group.Filters)
}
