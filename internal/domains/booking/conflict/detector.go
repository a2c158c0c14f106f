package conflict

import (
	"context"
	"fmt"
	"time"

	"github.com/GioMjds/paynal-prajik/internal/domains/booking/model"
	"github.com/GioMjds/paynal-prajik/shared/constant"
	"github.com/GioMjds/paynal-prajik/shared/timezone"

	"github.com/rs/zerolog/log"
)

// DailyLimit is how many bookings one user may create per calendar day.
const DailyLimit = 3

type Detector interface {
	RoomOverlaps(ctx context.Context, roomID string, stay Stay) (bool, error)
	EmailOverlaps(ctx context.Context, email string, stay Stay) (bool, error)
	DailyCapReached(ctx context.Context, userID string) (bool, error)
	GuestBookedToday(ctx context.Context, userID, checkIn string) bool
}

type detectorImpl struct {
	store Store
	now   func() time.Time
}

func New(store Store) Detector {
	return NewWithClock(store, timezone.Now)
}

func NewWithClock(store Store, now func() time.Time) Detector {
	return &detectorImpl{
		store: store,
		now:   now,
	}
}

func (d *detectorImpl) RoomOverlaps(ctx context.Context, roomID string, stay Stay) (bool, error) {
	count, err := d.store.FindOverlapping(ctx, roomID, stay.CheckIn, stay.CheckOut, model.HeldStatuses)
	if err != nil {
		return false, fmt.Errorf("find overlapping room bookings: %w", err)
	}

	return count > 0, nil
}

func (d *detectorImpl) EmailOverlaps(ctx context.Context, email string, stay Stay) (bool, error) {
	count, err := d.store.FindOverlappingByEmail(ctx, email, stay.CheckIn, stay.CheckOut, model.ActiveStatuses, true)
	if err != nil {
		return false, fmt.Errorf("find overlapping email bookings: %w", err)
	}

	return count > 0, nil
}

func (d *detectorImpl) DailyCapReached(ctx context.Context, userID string) (bool, error) {
	count, err := d.store.CountCreatedToday(ctx, userID, timezone.DateOf(d.now()))
	if err != nil {
		return false, fmt.Errorf("count bookings created today: %w", err)
	}

	return count >= DailyLimit, nil
}

// GuestBookedToday never fails; lookup errors are logged and treated as not booked.
func (d *detectorImpl) GuestBookedToday(ctx context.Context, userID, checkIn string) bool {
	user, err := d.store.GetUser(ctx, userID)
	if err != nil {
		log.Warn().Err(err).Str("user_id", userID).Msg("failed to check guest booking for today")

		return false
	}

	if user.Role != constant.RoleGuest || user.LastBookingDate == nil {
		return false
	}

	today := timezone.DateOf(d.now()).Format(constant.DateFormat)
	lastBooked := user.LastBookingDate.Format(constant.DateFormat)

	return lastBooked == today && checkIn == today
}
