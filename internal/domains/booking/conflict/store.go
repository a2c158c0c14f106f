package conflict

import (
	"context"
	"time"
)

//go:generate go run go.uber.org/mock/mockgen -source=./store.go -destination=../mocks/store_mock.go -package=mocks

// User is the slice of a user record the booking checks need.
type User struct {
	ID              string
	Role            string
	LastBookingDate *time.Time
}

// Store is the read-only persistence the detector queries.
type Store interface {
	// FindOverlapping counts bookings of roomID in one of statuses whose stay intersects [checkIn, checkOut).
	FindOverlapping(ctx context.Context, roomID string, checkIn, checkOut time.Time, statuses []string) (int, error)
	FindOverlappingByEmail(ctx context.Context, email string, checkIn, checkOut time.Time, statuses []string, excludeVenue bool) (int, error)
	CountCreatedToday(ctx context.Context, userID string, today time.Time) (int, error)
	// GetUser returns a zero User when the id is unknown.
	GetUser(ctx context.Context, id string) (User, error)
	// GetRoomCapacity returns nil when the room is unknown.
	GetRoomCapacity(ctx context.Context, roomID string) (*int, error)
}
