package validation_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GioMjds/paynal-prajik/internal/domains/booking/conflict"
	"github.com/GioMjds/paynal-prajik/internal/domains/booking/validation"
	"github.com/GioMjds/paynal-prajik/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type storedBooking struct {
	roomID   string
	email    string
	status   string
	isVenue  bool
	checkIn  string
	checkOut string
}

// memStore answers conflict queries from a slice of bookings.
type memStore struct {
	bookings     []storedBooking
	createdToday map[string]int
	users        map[string]conflict.User
	failWith     error
}

func (s *memStore) overlapping(checkIn, checkOut time.Time, statuses []string, match func(storedBooking) bool) int {
	requested := conflict.Stay{CheckIn: checkIn, CheckOut: checkOut}
	count := 0

	for _, b := range s.bookings {
		in, _ := time.ParseInLocation(time.DateOnly, b.checkIn, checkIn.Location())
		out, _ := time.ParseInLocation(time.DateOnly, b.checkOut, checkIn.Location())

		held := false
		for _, status := range statuses {
			held = held || status == b.status
		}

		if held && match(b) && requested.Overlaps(conflict.Stay{CheckIn: in, CheckOut: out}) {
			count++
		}
	}

	return count
}

func (s *memStore) FindOverlapping(_ context.Context, roomID string, checkIn, checkOut time.Time,
	statuses []string) (int, error) {
	if s.failWith != nil {
		return 0, s.failWith
	}

	return s.overlapping(checkIn, checkOut, statuses, func(b storedBooking) bool {
		return b.roomID == roomID
	}), nil
}

func (s *memStore) FindOverlappingByEmail(_ context.Context, email string, checkIn, checkOut time.Time,
	statuses []string, excludeVenue bool) (int, error) {
	return s.overlapping(checkIn, checkOut, statuses, func(b storedBooking) bool {
		return b.email == email && !(excludeVenue && b.isVenue)
	}), nil
}

func (s *memStore) CountCreatedToday(_ context.Context, userID string, _ time.Time) (int, error) {
	return s.createdToday[userID], nil
}

func (s *memStore) GetUser(_ context.Context, id string) (conflict.User, error) {
	return s.users[id], nil
}

func (s *memStore) GetRoomCapacity(_ context.Context, _ string) (*int, error) {
	return nil, nil
}

func now() time.Time {
	return time.Date(2025, 6, 1, 10, 0, 0, 0, timezone.GetLocation())
}

func validRequest() validation.BookingRequest {
	return validation.BookingRequest{
		FirstName:      "Juan",
		LastName:       "Dela Cruz",
		EmailAddress:   "juan@example.com",
		PhoneNumber:    "+63 917 123 4567",
		CheckIn:        "2025-06-03",
		CheckOut:       "2025-06-04",
		ArrivalTime:    "15:00",
		NumberOfGuests: "2",
	}
}

func TestValidate(t *testing.T) {
	today := timezone.DateOf(now())
	room := &validation.Resource{ID: "room-1", MaxGuests: intPtr(2)}
	confirmed := []storedBooking{
		{roomID: "room-1", email: "other@example.com", status: "confirmed", checkIn: "2025-06-01", checkOut: "2025-06-05"},
	}

	tests := []struct {
		name      string
		store     *memStore
		req       func() validation.BookingRequest
		resource  *validation.Resource
		requester *validation.Requester
		want      validation.Errors
		wantErr   bool
	}{
		{
			name:     "accepted",
			store:    &memStore{},
			req:      validRequest,
			resource: room,
			want:     validation.Errors{},
		},
		{
			name:     "room held by confirmed booking",
			store:    &memStore{bookings: confirmed},
			req:      validRequest,
			resource: room,
			want: validation.Errors{
				validation.FieldRoom: "This room is not available for the selected dates",
			},
		},
		{
			name: "pending booking does not hold the room",
			store: &memStore{bookings: []storedBooking{
				{roomID: "room-1", email: "other@example.com", status: "pending", checkIn: "2025-06-01", checkOut: "2025-06-05"},
			}},
			req:      validRequest,
			resource: room,
			want:     validation.Errors{},
		},
		{
			name: "guest already staying elsewhere",
			store: &memStore{bookings: []storedBooking{
				{roomID: "room-2", email: "juan@example.com", status: "pending", checkIn: "2025-06-02", checkOut: "2025-06-04"},
			}},
			req:      validRequest,
			resource: room,
			want: validation.Errors{
				validation.FieldEmail: "You already have an active booking during this period",
			},
		},
		{
			name:  "every field rejected at once",
			store: &memStore{bookings: confirmed},
			req: func() validation.BookingRequest {
				return validation.BookingRequest{
					FirstName:      "J",
					PhoneNumber:    "12345",
					CheckIn:        "2025-05-30",
					CheckOut:       "2025-06-04",
					ArrivalTime:    "23:00",
					NumberOfGuests: "3",
					ValidID:        &validation.Document{ContentType: "application/pdf", Size: 10},
				}
			},
			resource: room,
			want: validation.Errors{
				validation.FieldDates:       "Check-in date cannot be in the past",
				validation.FieldFirstName:   "Name must be at least 2 characters long",
				validation.FieldLastName:    "Guest name is required",
				validation.FieldPhoneNumber: "Phone number must be in Philippine format: (+63) 9XX XXX XXXX",
				validation.FieldValidID:     "ID must be an image file (JPEG, PNG, or GIF)",
				validation.FieldArrivalTime: "Late arrivals not accepted after 10:00 PM.",
				validation.FieldGuests:      "Maximum capacity for this room is 2 guests",
				validation.FieldRoom:        "This room is not available for the selected dates",
			},
		},
		{
			name:  "unparseable dates skip the room check",
			store: &memStore{bookings: confirmed},
			req: func() validation.BookingRequest {
				req := validRequest()
				req.CheckIn = "June 3"

				return req
			},
			resource: room,
			want: validation.Errors{
				validation.FieldDates: "Invalid date format",
			},
		},
		{
			name:  "venue booking skips arrival time and room overlap",
			store: &memStore{bookings: confirmed},
			req: func() validation.BookingRequest {
				req := validRequest()
				req.IsVenueBooking = true
				req.ArrivalTime = ""
				req.CheckOut = req.CheckIn

				return req
			},
			resource: &validation.Resource{ID: "room-1", MaxGuests: intPtr(50)},
			want:     validation.Errors{},
		},
		{
			name: "daily cap reached",
			store: &memStore{
				createdToday: map[string]int{"user-1": 3},
				users:        map[string]conflict.User{"user-1": {ID: "user-1", Role: "guest"}},
			},
			req:       validRequest,
			resource:  room,
			requester: &validation.Requester{UserID: "user-1"},
			want: validation.Errors{
				validation.FieldBookingLimit: "You have reached the maximum limit of 3 bookings per day. Please try again tomorrow.",
			},
		},
		{
			name: "guest already booked for today",
			store: &memStore{
				users: map[string]conflict.User{"user-1": {ID: "user-1", Role: "guest", LastBookingDate: &today}},
			},
			req: func() validation.BookingRequest {
				req := validRequest()
				req.CheckIn = "2025-06-01"
				req.CheckOut = "2025-06-02"

				return req
			},
			resource:  room,
			requester: &validation.Requester{UserID: "user-1"},
			want: validation.Errors{
				validation.FieldBookingLimit: "You can only make one booking per day. Please try again tomorrow.",
			},
		},
		{
			name: "anonymous request skips quota checks",
			store: &memStore{
				createdToday: map[string]int{"": 10},
			},
			req:      validRequest,
			resource: room,
			want:     validation.Errors{},
		},
		{
			name:     "store failure is an internal error",
			store:    &memStore{failWith: errors.New("connection refused")},
			req:      validRequest,
			resource: room,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validator := validation.NewWithClock(conflict.NewWithClock(tt.store, now), now)

			got, err := validator.Validate(context.Background(), tt.req(), tt.resource, tt.requester)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
