package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/GioMjds/paynal-prajik/internal/domains/booking/conflict"
	"github.com/GioMjds/paynal-prajik/internal/domains/booking/model"
	roomModel "github.com/GioMjds/paynal-prajik/internal/domains/room/model"
	roomRepo "github.com/GioMjds/paynal-prajik/internal/domains/room/repository"
	userModel "github.com/GioMjds/paynal-prajik/internal/domains/user/model"
	userRepo "github.com/GioMjds/paynal-prajik/internal/domains/user/repository"
	"github.com/GioMjds/paynal-prajik/shared"
	"github.com/GioMjds/paynal-prajik/shared/constant"
	gDto "github.com/GioMjds/paynal-prajik/shared/dto"
)

type storeImpl struct {
	bookings Booking
	users    userRepo.User
	rooms    roomRepo.Room
}

// NewStore answers the booking conflict queries from the booking, user and room tables.
func NewStore(bookings Booking, users userRepo.User, rooms roomRepo.Room) conflict.Store {
	return &storeImpl{
		bookings: bookings,
		users:    users,
		rooms:    rooms,
	}
}

// OverlapFilter matches bookings in statuses whose [check_in, check_out) intersects [checkIn, checkOut).
func OverlapFilter(checkIn, checkOut time.Time, statuses []string) gDto.FilterGroup {
	return overlapFilter(checkIn, checkOut, statuses, gDto.FilterOperatorGreater)
}

// VenueOverlapFilter treats check-out as inclusive so same-day venue bookings are matched.
func VenueOverlapFilter(checkIn, checkOut time.Time, statuses []string) gDto.FilterGroup {
	return overlapFilter(checkIn, checkOut, statuses, gDto.FilterOperatorGreaterEq)
}

func overlapFilter(checkIn, checkOut time.Time, statuses []string, checkOutOperator string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStatus,
				Value:    statuses,
				Operator: gDto.FilterOperatorIn,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "stay_end",
				Field:    model.FieldCheckInDate,
				Value:    checkOut.Format(constant.DateFormat),
				Operator: gDto.FilterOperatorLess,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "stay_start",
				Field:    model.FieldCheckOutDate,
				Value:    checkIn.Format(constant.DateFormat),
				Operator: checkOutOperator,
				Table:    model.TableName,
			},
		},
		Operator: gDto.FilterGroupOperatorAnd,
	}
}

func (s *storeImpl) FindOverlapping(ctx context.Context, roomID string, checkIn, checkOut time.Time,
	statuses []string) (int, error) {
	filter := OverlapFilter(checkIn, checkOut, statuses)
	filter.Filters = append(filter.Filters, gDto.Filter{
		Field:    model.FieldRoomID,
		Value:    roomID,
		Operator: gDto.FilterOperatorEq,
		Table:    model.TableName,
	})

	return s.bookings.Count(ctx, filter)
}

func (s *storeImpl) FindOverlappingByEmail(ctx context.Context, email string, checkIn, checkOut time.Time,
	statuses []string, excludeVenue bool) (int, error) {
	filter := OverlapFilter(checkIn, checkOut, statuses)
	filter.Filters = append(filter.Filters, gDto.Filter{
		Field:    model.FieldEmail,
		Value:    email,
		Operator: gDto.FilterOperatorEq,
		Table:    model.TableName,
	})

	if excludeVenue {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldIsVenueBooking,
			Value:    false,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	return s.bookings.Count(ctx, filter)
}

func (s *storeImpl) CountCreatedToday(ctx context.Context, userID string, today time.Time) (int, error) {
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUserID,
				Value:    userID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "day_start",
				Field:    model.FieldCreatedAt,
				Value:    today,
				Operator: gDto.FilterOperatorGreaterEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "day_end",
				Field:    model.FieldCreatedAt,
				Value:    today.AddDate(0, 0, 1),
				Operator: gDto.FilterOperatorLess,
				Table:    model.TableName,
			},
		},
		Operator: gDto.FilterGroupOperatorAnd,
	}

	return s.bookings.Count(ctx, filter)
}

func (s *storeImpl) GetUser(ctx context.Context, id string) (conflict.User, error) {
	user, err := s.users.Get(ctx, shared.FilterByID(id, userModel.FieldID, userModel.TableName))
	if err != nil {
		return conflict.User{}, fmt.Errorf("get user: %w", err)
	}

	return conflict.User{
		ID:              user.ID,
		Role:            user.Role,
		LastBookingDate: user.LastBookingDate,
	}, nil
}

// GetRoomCapacity completes the conflict.Store contract for callers that only hold a room ID.
// Booking creation reads the whole room row instead because it also checks the room status.
func (s *storeImpl) GetRoomCapacity(ctx context.Context, roomID string) (*int, error) {
	room, err := s.rooms.Get(ctx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		return nil, fmt.Errorf("get room: %w", err)
	}

	if room.ID == "" {
		return nil, nil
	}

	return &room.MaxGuests, nil
}
