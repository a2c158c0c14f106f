package model

import (
	"time"

	"github.com/GioMjds/paynal-prajik/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID                 = "id"
	FieldUserID             = "user_id"
	FieldRoomID             = "room_id"
	FieldAreaID             = "area_id"
	FieldEmail              = "email"
	FieldIsVenueBooking     = "is_venue_booking"
	FieldCheckInDate        = "check_in_date"
	FieldCheckOutDate       = "check_out_date"
	FieldStatus             = "status"
	FieldPaymentStatus      = "payment_status"
	FieldCancellationReason = "cancellation_reason"
	FieldCancellationDate   = "cancellation_date"
	FieldCreatedAt          = "created_at"
)

// SortableColumns are the columns a list request may order by.
var SortableColumns = []string{FieldCheckInDate, FieldCheckOutDate, FieldStatus, FieldCreatedAt}

const (
	StatusPending           = "pending"
	StatusReserved          = "reserved"
	StatusConfirmed         = "confirmed"
	StatusCheckedIn         = "checked_in"
	StatusCheckedOut        = "checked_out"
	StatusCancelled         = "cancelled"
	StatusRejected          = "rejected"
	StatusMissedReservation = "missed_reservation"

	PaymentStatusUnpaid = "unpaid"
)

var (
	// HeldStatuses block a room for their stay.
	HeldStatuses = []string{StatusReserved, StatusConfirmed, StatusCheckedIn}
	// ActiveStatuses are bookings that still count against a guest's email.
	ActiveStatuses = []string{StatusPending, StatusReserved, StatusConfirmed, StatusCheckedIn}
	// CancellableStatuses can still be withdrawn by the guest.
	CancellableStatuses = []string{StatusPending, StatusReserved, StatusConfirmed}
)

var transitions = map[string][]string{
	StatusPending:   {StatusReserved, StatusConfirmed, StatusRejected, StatusCancelled},
	StatusReserved:  {StatusConfirmed, StatusCheckedIn, StatusCancelled, StatusRejected, StatusMissedReservation},
	StatusConfirmed: {StatusCheckedIn, StatusCancelled, StatusMissedReservation},
	StatusCheckedIn: {StatusCheckedOut},
}

// CanTransition reports whether a booking may move from one status to another.
func CanTransition(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}

	return false
}

type Booking struct {
	ID                 string     `db:"id"`
	UserID             *string    `db:"user_id"`
	RoomID             *string    `db:"room_id"`
	AreaID             *string    `db:"area_id"`
	FirstName          string     `db:"first_name"`
	LastName           string     `db:"last_name"`
	Email              string     `db:"email"`
	PhoneNumber        string     `db:"phone_number"`
	ValidID            *string    `db:"valid_id"`
	IsVenueBooking     bool       `db:"is_venue_booking"`
	CheckInDate        time.Time  `db:"check_in_date"`
	CheckOutDate       time.Time  `db:"check_out_date"`
	StartTime          *string    `db:"start_time"`
	EndTime            *string    `db:"end_time"`
	TimeOfArrival      *string    `db:"time_of_arrival"`
	NumberOfGuests     int        `db:"number_of_guests"`
	SpecialRequest     *string    `db:"special_request"`
	Status             string     `db:"status"`
	PaymentStatus      string     `db:"payment_status"`
	CancellationReason *string    `db:"cancellation_reason"`
	CancellationDate   *time.Time `db:"cancellation_date"`
	model.Metadata
}
