package model

import (
	"github.com/GioMjds/paynal-prajik/shared/constant"
	"github.com/GioMjds/paynal-prajik/shared/model"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID          = "id"
	FieldName        = "name"
	FieldRoomType    = "room_type"
	FieldDescription = "description"
	FieldPrice       = "price"
	FieldMaxGuests   = "max_guests"
	FieldImage       = "image"
	FieldStatus      = "status"
)

// SortableColumns are the columns a list request may order by.
var SortableColumns = []string{FieldName, FieldRoomType, FieldPrice, FieldMaxGuests, constant.FieldCreatedAt}

const (
	StatusAvailable   = "available"
	StatusMaintenance = "maintenance"
)

type Room struct {
	ID          string  `db:"id"`
	Name        string  `db:"name"`
	RoomType    string  `db:"room_type"`
	Description *string `db:"description"`
	Price       float64 `db:"price"`
	MaxGuests   int     `db:"max_guests"`
	Image       *string `db:"image"`
	Status      string  `db:"status"`
	model.Metadata
}
