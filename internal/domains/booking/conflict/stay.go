package conflict

import (
	"time"

	"github.com/GioMjds/paynal-prajik/shared/constant"
)

// Stay is the half-open range of calendar dates [CheckIn, CheckOut).
type Stay struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// Nights is the number of calendar days between check-in and check-out.
func (s Stay) Nights() int {
	return daysBetween(s.CheckIn, s.CheckOut)
}

// Overlaps reports whether both stays share at least one night.
func (s Stay) Overlaps(other Stay) bool {
	return s.CheckIn.Before(other.CheckOut) && other.CheckIn.Before(s.CheckOut)
}

// Empty is true when check-out does not come after check-in.
func (s Stay) Empty() bool {
	return !s.CheckOut.After(s.CheckIn)
}

func (s Stay) CheckInDate() string {
	return s.CheckIn.Format(constant.DateFormat)
}

func (s Stay) CheckOutDate() string {
	return s.CheckOut.Format(constant.DateFormat)
}

func daysBetween(from, to time.Time) int {
	start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)

	return int(end.Sub(start).Hours() / 24)
}
