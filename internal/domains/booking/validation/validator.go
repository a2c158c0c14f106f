package validation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/GioMjds/paynal-prajik/internal/domains/booking/conflict"
	"github.com/GioMjds/paynal-prajik/shared/timezone"
)

//go:generate go run go.uber.org/mock/mockgen -source=./validator.go -destination=../mocks/validator_mock.go -package=mocks

var (
	errRoomTaken   = &Error{Kind: KindConflict, Message: "This room is not available for the selected dates"}
	errEmailTaken  = &Error{Kind: KindConflict, Message: "You already have an active booking during this period"}
	errDailyLimit  = &Error{Kind: KindQuotaExceeded, Message: fmt.Sprintf("You have reached the maximum limit of %d bookings per day. Please try again tomorrow.", conflict.DailyLimit)}
	errBookedToday = &Error{Kind: KindQuotaExceeded, Message: "You can only make one booking per day. Please try again tomorrow."}
)

// BookingRequest is the raw booking input as submitted.
type BookingRequest struct {
	FirstName       string
	LastName        string
	EmailAddress    string
	PhoneNumber     string
	CheckIn         string
	CheckOut        string
	ArrivalTime     string
	NumberOfGuests  string
	SpecialRequests string
	IsVenueBooking  bool
	ValidID         *Document
}

// Resource is the room or area being booked.
type Resource struct {
	ID        string
	MaxGuests *int
}

type Requester struct {
	UserID string
}

type Validator interface {
	// Validate returns every rejected field at once. The error is only set for store failures.
	Validate(ctx context.Context, req BookingRequest, resource *Resource, requester *Requester) (Errors, error)
}

type validatorImpl struct {
	detector conflict.Detector
	now      func() time.Time
}

func New(detector conflict.Detector) Validator {
	return NewWithClock(detector, timezone.Now)
}

func NewWithClock(detector conflict.Detector, now func() time.Time) Validator {
	return &validatorImpl{
		detector: detector,
		now:      now,
	}
}

func (v *validatorImpl) Validate(ctx context.Context, req BookingRequest, resource *Resource,
	requester *Requester) (Errors, error) {
	errs := Errors{}
	today := timezone.DateOf(v.now())

	_, err := Dates(req.CheckIn, req.CheckOut, req.IsVenueBooking, today)
	errs.Add(FieldDates, err)

	_, err = GuestName(req.FirstName)
	errs.Add(FieldFirstName, err)

	_, err = GuestName(req.LastName)
	errs.Add(FieldLastName, err)

	_, err = PhoneNumber(req.PhoneNumber)
	errs.Add(FieldPhoneNumber, err)

	_, err = SpecialRequest(req.SpecialRequests)
	errs.Add(FieldSpecialRequests, err)

	if req.ValidID != nil {
		_, err = ValidID(req.ValidID)
		errs.Add(FieldValidID, err)
	}

	if !req.IsVenueBooking {
		_, err = ArrivalTime(req.ArrivalTime)
		errs.Add(FieldArrivalTime, err)
	}

	var maxGuests *int
	if resource != nil {
		maxGuests = resource.MaxGuests
	}

	_, err = GuestCount(req.NumberOfGuests, maxGuests)
	errs.Add(FieldGuests, err)

	// A stay is only checked for conflicts when both dates parse into a non-empty range.
	stay, hasStay := parseStay(req.CheckIn, req.CheckOut, today.Location())
	hasStay = hasStay && !stay.Empty()

	if strings.TrimSpace(req.EmailAddress) != "" {
		err = v.checkEmail(ctx, req, stay, hasStay, errs)
		if err != nil {
			return nil, err
		}
	}

	if !req.IsVenueBooking && hasStay && resource != nil && resource.ID != "" {
		taken, err := v.detector.RoomOverlaps(ctx, resource.ID, stay)
		if err != nil {
			return nil, err
		}

		if taken {
			errs.Add(FieldRoom, errRoomTaken)
		}
	}

	if requester != nil && requester.UserID != "" {
		reached, err := v.detector.DailyCapReached(ctx, requester.UserID)
		if err != nil {
			return nil, err
		}

		if reached {
			errs.Add(FieldBookingLimit, errDailyLimit)
		}

		if v.detector.GuestBookedToday(ctx, requester.UserID, req.CheckIn) {
			errs.Add(FieldBookingLimit, errBookedToday)
		}
	}

	return errs, nil
}

func (v *validatorImpl) checkEmail(ctx context.Context, req BookingRequest, stay conflict.Stay, hasStay bool,
	errs Errors) error {
	email, err := Email(strings.TrimSpace(req.EmailAddress))
	if err != nil {
		errs.Add(FieldEmail, err)

		return nil
	}

	if req.IsVenueBooking || !hasStay {
		return nil
	}

	taken, err := v.detector.EmailOverlaps(ctx, email, stay)
	if err != nil {
		return err
	}

	if taken {
		errs.Add(FieldEmail, errEmailTaken)
	}

	return nil
}
