package model

import (
	"github.com/GioMjds/paynal-prajik/shared/constant"
	"github.com/GioMjds/paynal-prajik/shared/model"
)

const (
	TableName  = "reviews"
	EntityName = "review"

	FieldID        = "id"
	FieldBookingID = "booking_id"
	FieldUserID    = "user_id"
	FieldRoomID    = "room_id"
	FieldAreaID    = "area_id"
	FieldRating    = "rating"
	FieldComment   = "comment"
)

var SortableColumns = []string{FieldRating, constant.FieldCreatedAt}

const (
	MinRating = 1
	MaxRating = 5
)

// Review is a guest's rating of a completed stay. A booking has at most one review.
type Review struct {
	ID        string  `db:"id"`
	BookingID string  `db:"booking_id"`
	UserID    string  `db:"user_id"`
	RoomID    *string `db:"room_id"`
	AreaID    *string `db:"area_id"`
	Rating    int     `db:"rating"`
	Comment   *string `db:"comment"`
	model.Metadata
}
