package validation_test

import (
	"strings"
	"testing"
	"time"

	"github.com/GioMjds/paynal-prajik/internal/domains/booking/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int {
	return &v
}

func TestGuestName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		kind    error
		message string
	}{
		{name: "plain name", input: "Juan"},
		{name: "name with space", input: "Maria Clara"},
		{name: "empty", input: "", kind: validation.ErrMissingField, message: "Guest name is required"},
		{name: "single letter", input: "J", kind: validation.ErrFieldFormat, message: "Name must be at least 2 characters long"},
		{name: "digits", input: "Juan2", kind: validation.ErrFieldFormat, message: "Name should contain only letters and spaces"},
		{name: "hyphen", input: "Dela-Cruz", kind: validation.ErrFieldFormat, message: "Name should contain only letters and spaces"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validation.GuestName(tt.input)

			if tt.kind != nil {
				assert.ErrorIs(t, err, tt.kind)
				assert.EqualError(t, err, tt.message)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.input, got)
		})
	}
}

func TestEmail(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		message string
	}{
		{name: "valid", input: "juan.delacruz+stay@example.com.ph"},
		{name: "empty", input: "", message: "Email address is required"},
		{name: "missing domain", input: "juan@", message: "Invalid email format"},
		{name: "short tld", input: "juan@example.c", message: "Invalid email format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := validation.Email(tt.input)

			if tt.message != "" {
				assert.EqualError(t, err, tt.message)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPhoneNumber(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		message string
	}{
		{name: "international with spaces", input: "+63 917 123 4567", want: "+639171234567"},
		{name: "local with dashes", input: "0917-123-4567", want: "09171234567"},
		{name: "empty", input: "", message: "Phone number is required"},
		{name: "international too short", input: "+63 917 123 456", message: "Philippine phone number must start with +63 followed by 9 and 9 more digits"},
		{name: "international not mobile", input: "+63 817 123 4567", message: "Philippine phone number must start with +63 followed by 9 and 9 more digits"},
		{name: "missing plus", input: "639171234567", message: "Phone number must be in Philippine format: (+63) 9XX XXX XXXX"},
		{name: "local too long", input: "091712345678", message: "Phone number must be in Philippine format: (+63) 9XX XXX XXXX"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validation.PhoneNumber(tt.input)

			if tt.message != "" {
				assert.EqualError(t, err, tt.message)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidID(t *testing.T) {
	tests := []struct {
		name    string
		doc     *validation.Document
		kind    error
		message string
	}{
		{name: "png", doc: &validation.Document{ContentType: "image/png", Size: 1024}},
		{name: "exactly two megabytes", doc: &validation.Document{ContentType: "image/jpeg", Size: validation.MaxIDFileSize}},
		{name: "missing", doc: nil, kind: validation.ErrMissingField, message: "Valid ID is required"},
		{name: "too large", doc: &validation.Document{ContentType: "image/gif", Size: validation.MaxIDFileSize + 1}, kind: validation.ErrFieldFormat, message: "ID file size exceeds the limit (2MB max)"},
		{name: "pdf", doc: &validation.Document{ContentType: "application/pdf", Size: 1024}, kind: validation.ErrFieldFormat, message: "ID must be an image file (JPEG, PNG, or GIF)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validation.ValidID(tt.doc)

			if tt.kind != nil {
				assert.ErrorIs(t, err, tt.kind)
				assert.EqualError(t, err, tt.message)

				return
			}

			require.NoError(t, err)
			assert.Same(t, tt.doc, got)
		})
	}
}

func TestGuestCount(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		maxGuests *int
		want      int
		kind      error
		message   string
	}{
		{name: "within capacity", raw: "2", maxGuests: intPtr(2), want: 2},
		{name: "unknown capacity", raw: " 8 ", want: 8},
		{name: "empty", raw: "", kind: validation.ErrMissingField, message: "Number of guests is required"},
		{name: "not a number", raw: "two", kind: validation.ErrFieldFormat, message: "Number of guests must be a number"},
		{name: "zero", raw: "0", kind: validation.ErrFieldFormat, message: "At least 1 guest is required"},
		{name: "over capacity", raw: "5", maxGuests: intPtr(4), kind: validation.ErrCapacityExceeded, message: "Maximum capacity for this room is 4 guests"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validation.GuestCount(tt.raw, tt.maxGuests)

			if tt.kind != nil {
				assert.ErrorIs(t, err, tt.kind)
				assert.EqualError(t, err, tt.message)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDates(t *testing.T) {
	today := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		isVenue  bool
		nights   int
		kind     error
		message  string
	}{
		{name: "one night from today", checkIn: "2025-06-01", checkOut: "2025-06-02", nights: 1},
		{name: "thirty nights", checkIn: "2025-06-01", checkOut: "2025-07-01", nights: 30},
		{name: "venue same day", checkIn: "2025-06-03", checkOut: "2025-06-03", isVenue: true},
		{name: "missing check-in", checkOut: "2025-06-02", kind: validation.ErrMissingField, message: "Check-in date is required"},
		{name: "missing check-out", checkIn: "2025-06-01", kind: validation.ErrMissingField, message: "Check-out date is required"},
		{name: "wrong layout", checkIn: "06/01/2025", checkOut: "2025-06-02", kind: validation.ErrFieldFormat, message: "Invalid date format"},
		{name: "yesterday", checkIn: "2025-05-31", checkOut: "2025-06-02", kind: validation.ErrFieldFormat, message: "Check-in date cannot be in the past"},
		{name: "room same day", checkIn: "2025-06-02", checkOut: "2025-06-02", kind: validation.ErrFieldFormat, message: "Check-out date must be after check-in date"},
		{name: "venue ends before start", checkIn: "2025-06-03", checkOut: "2025-06-02", isVenue: true, kind: validation.ErrFieldFormat, message: "Check-out date must be on or after check-in date"},
		{name: "thirty one nights", checkIn: "2025-06-01", checkOut: "2025-07-02", kind: validation.ErrFieldFormat, message: "Maximum stay duration is 30 days"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stay, err := validation.Dates(tt.checkIn, tt.checkOut, tt.isVenue, today)

			if tt.kind != nil {
				assert.ErrorIs(t, err, tt.kind)
				assert.EqualError(t, err, tt.message)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.nights, stay.Nights())
			assert.Equal(t, tt.checkIn, stay.CheckInDate())
			assert.Equal(t, tt.checkOut, stay.CheckOutDate())
		})
	}
}

func TestDates_IgnoresClockOfToday(t *testing.T) {
	manila, err := time.LoadLocation("Asia/Manila")
	require.NoError(t, err)

	morning := time.Date(2025, 6, 1, 10, 0, 0, 0, manila)
	lateNight := time.Date(2025, 6, 1, 23, 59, 0, 0, manila)

	for _, today := range []time.Time{morning, lateNight} {
		stay, err := validation.Dates("2025-06-01", "2025-06-02", false, today)

		require.NoError(t, err, today.String())
		assert.Equal(t, 1, stay.Nights())
	}

	_, err = validation.Dates("2025-05-31", "2025-06-02", false, morning)
	assert.EqualError(t, err, "Check-in date cannot be in the past")
}

func TestArrivalTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		message string
	}{
		{name: "earliest", input: "14:00", want: "14:00"},
		{name: "latest", input: "22:00", want: "22:00"},
		{name: "single digit hour", input: "9:30", message: "Early check-in is not allowed. Arrival time must be after 2:00 PM."},
		{name: "one minute early", input: "13:59", message: "Early check-in is not allowed. Arrival time must be after 2:00 PM."},
		{name: "one minute late", input: "22:01", message: "Late arrivals not accepted after 10:00 PM."},
		{name: "empty", input: "", message: "Expected time of arrival is required"},
		{name: "twelve hour clock", input: "2:00 PM", message: "Invalid time format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validation.ArrivalTime(tt.input)

			if tt.message != "" {
				assert.EqualError(t, err, tt.message)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSpecialRequest(t *testing.T) {
	_, err := validation.SpecialRequest("")
	assert.NoError(t, err)

	_, err = validation.SpecialRequest(strings.Repeat("ñ", validation.MaxSpecialRequest))
	assert.NoError(t, err)

	_, err = validation.SpecialRequest(strings.Repeat("a", validation.MaxSpecialRequest+1))
	assert.ErrorIs(t, err, validation.ErrFieldFormat)
	assert.EqualError(t, err, "Special request text cannot exceed 500 characters")
}

func TestErrorsAdd(t *testing.T) {
	errs := validation.Errors{}

	errs.Add(validation.FieldDates, nil)
	assert.True(t, errs.Empty())

	_, first := validation.GuestName("")
	_, second := validation.GuestName("J")

	errs.Add(validation.FieldFirstName, first)
	errs.Add(validation.FieldFirstName, second)

	assert.Equal(t, validation.Errors{validation.FieldFirstName: "Guest name is required"}, errs)
}
