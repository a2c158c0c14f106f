package validation

// Kind classifies why a booking field was rejected.
type Kind int

const (
	KindFieldFormat Kind = iota + 1
	KindMissingField
	KindCapacityExceeded
	KindConflict
	KindQuotaExceeded
)

// Error is a rejected booking input. Match the kind with errors.Is against the Err* values.
type Error struct {
	Kind    Kind
	Message string
}

var (
	ErrFieldFormat      = &Error{Kind: KindFieldFormat}
	ErrMissingField     = &Error{Kind: KindMissingField}
	ErrCapacityExceeded = &Error{Kind: KindCapacityExceeded}
	ErrConflict         = &Error{Kind: KindConflict}
	ErrQuotaExceeded    = &Error{Kind: KindQuotaExceeded}
)

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t.Kind == e.Kind && (t.Message == "" || t.Message == e.Message)
}

func fieldFormat(msg string) error {
	return &Error{Kind: KindFieldFormat, Message: msg}
}

func missingField(msg string) error {
	return &Error{Kind: KindMissingField, Message: msg}
}

const (
	FieldDates           = "dates"
	FieldFirstName       = "firstName"
	FieldLastName        = "lastName"
	FieldEmail           = "emailAddress"
	FieldPhoneNumber     = "phoneNumber"
	FieldSpecialRequests = "specialRequests"
	FieldValidID         = "validId"
	FieldArrivalTime     = "arrivalTime"
	FieldGuests          = "guests"
	FieldRoom            = "room"
	FieldBookingLimit    = "booking_limit"
)

// Errors maps a request field to its first failure message.
type Errors map[string]string

// Add records err under field unless the field already failed.
func (e Errors) Add(field string, err error) {
	if err == nil {
		return
	}

	if _, ok := e[field]; ok {
		return
	}

	e[field] = err.Error()
}

func (e Errors) Empty() bool {
	return len(e) == 0
}
