package validation

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/GioMjds/paynal-prajik/internal/domains/booking/conflict"
	"github.com/GioMjds/paynal-prajik/shared/constant"
)

const (
	MaxStayNights     = 30
	MaxSpecialRequest = 500
	MaxIDFileSize     = 2 * 1024 * 1024
)

var (
	namePattern       = regexp.MustCompile(`^[A-Za-z\s]+$`)
	emailPattern      = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneStrip        = regexp.MustCompile(`[^\d+]`)
	localPhonePattern = regexp.MustCompile(`^09\d{9}$`)

	idContentTypes = []string{"image/jpeg", "image/png", "image/jpg", "image/gif"}

	earliestArrival = 14 * time.Hour
	latestArrival   = 22 * time.Hour
)

// Document is an uploaded identity document.
type Document struct {
	FileName    string
	ContentType string
	Size        int64
	Content     []byte
}

func GuestName(name string) (string, error) {
	if name == "" {
		return "", missingField("Guest name is required")
	}

	if len(name) < 2 {
		return "", fieldFormat("Name must be at least 2 characters long")
	}

	if !namePattern.MatchString(name) {
		return "", fieldFormat("Name should contain only letters and spaces")
	}

	return name, nil
}

func Email(email string) (string, error) {
	if email == "" {
		return "", missingField("Email address is required")
	}

	if !emailPattern.MatchString(email) {
		return "", fieldFormat("Invalid email format")
	}

	return email, nil
}

// PhoneNumber accepts +63 9XXXXXXXXX or 09XXXXXXXXX once separators are removed and returns the cleaned number.
func PhoneNumber(phone string) (string, error) {
	if phone == "" {
		return "", missingField("Phone number is required")
	}

	cleaned := phoneStrip.ReplaceAllString(phone, "")

	if local, ok := strings.CutPrefix(cleaned, "+63"); ok {
		if len(local) != 10 || !strings.HasPrefix(local, "9") {
			return "", fieldFormat("Philippine phone number must start with +63 followed by 9 and 9 more digits")
		}

		return cleaned, nil
	}

	if !localPhonePattern.MatchString(cleaned) {
		return "", fieldFormat("Phone number must be in Philippine format: (+63) 9XX XXX XXXX")
	}

	return cleaned, nil
}

func ValidID(doc *Document) (*Document, error) {
	if doc == nil {
		return nil, missingField("Valid ID is required")
	}

	if doc.Size > MaxIDFileSize {
		return nil, fieldFormat("ID file size exceeds the limit (2MB max)")
	}

	if !slices.Contains(idContentTypes, doc.ContentType) {
		return nil, fieldFormat("ID must be an image file (JPEG, PNG, or GIF)")
	}

	return doc, nil
}

// GuestCount parses the requested head count. A nil maxGuests skips the capacity check.
func GuestCount(raw string, maxGuests *int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, missingField("Number of guests is required")
	}

	count, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fieldFormat("Number of guests must be a number")
	}

	if count < 1 {
		return 0, fieldFormat("At least 1 guest is required")
	}

	if maxGuests != nil && count > *maxGuests {
		return 0, &Error{
			Kind:    KindCapacityExceeded,
			Message: fmt.Sprintf("Maximum capacity for this room is %d guests", *maxGuests),
		}
	}

	return count, nil
}

// Dates checks a stay against the calendar day of today, in today's location. Any clock
// time on today is ignored. Venue bookings may start and end on the same day.
func Dates(checkIn, checkOut string, isVenue bool, today time.Time) (conflict.Stay, error) {
	year, month, day := today.Date()
	today = time.Date(year, month, day, 0, 0, 0, 0, today.Location())

	if checkIn == "" {
		return conflict.Stay{}, missingField("Check-in date is required")
	}

	if checkOut == "" {
		return conflict.Stay{}, missingField("Check-out date is required")
	}

	stay, ok := parseStay(checkIn, checkOut, today.Location())
	if !ok {
		return conflict.Stay{}, fieldFormat("Invalid date format")
	}

	if stay.CheckIn.Before(today) {
		return conflict.Stay{}, fieldFormat("Check-in date cannot be in the past")
	}

	if isVenue {
		if stay.CheckOut.Before(stay.CheckIn) {
			return conflict.Stay{}, fieldFormat("Check-out date must be on or after check-in date")
		}
	} else if !stay.CheckOut.After(stay.CheckIn) {
		return conflict.Stay{}, fieldFormat("Check-out date must be after check-in date")
	}

	if stay.Nights() > MaxStayNights {
		return conflict.Stay{}, fieldFormat(fmt.Sprintf("Maximum stay duration is %d days", MaxStayNights))
	}

	return stay, nil
}

// ArrivalTime accepts HH:MM between 14:00 and 22:00 inclusive and returns it normalised.
func ArrivalTime(value string) (string, error) {
	if value == "" {
		return "", missingField("Expected time of arrival is required")
	}

	parsed, err := time.Parse(constant.TimeFormat, value)
	if err != nil {
		return "", fieldFormat("Invalid time format")
	}

	offset := time.Duration(parsed.Hour())*time.Hour + time.Duration(parsed.Minute())*time.Minute

	if offset < earliestArrival {
		return "", fieldFormat("Early check-in is not allowed. Arrival time must be after 2:00 PM.")
	}

	if offset > latestArrival {
		return "", fieldFormat("Late arrivals not accepted after 10:00 PM.")
	}

	return parsed.Format(constant.TimeFormat), nil
}

func SpecialRequest(text string) (string, error) {
	if utf8.RuneCountInString(text) > MaxSpecialRequest {
		return "", fieldFormat(fmt.Sprintf("Special request text cannot exceed %d characters", MaxSpecialRequest))
	}

	return text, nil
}

func parseStay(checkIn, checkOut string, loc *time.Location) (conflict.Stay, bool) {
	in, err := time.ParseInLocation(constant.DateFormat, checkIn, loc)
	if err != nil {
		return conflict.Stay{}, false
	}

	out, err := time.ParseInLocation(constant.DateFormat, checkOut, loc)
	if err != nil {
		return conflict.Stay{}, false
	}

	return conflict.Stay{CheckIn: in, CheckOut: out}, true
}
