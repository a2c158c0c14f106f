package model

import (
	"github.com/GioMjds/paynal-prajik/shared/constant"
	"github.com/GioMjds/paynal-prajik/shared/model"
)

const (
	TableName  = "areas"
	EntityName = "area"

	FieldID           = "id"
	FieldName         = "name"
	FieldDescription  = "description"
	FieldCapacity     = "capacity"
	FieldPricePerHour = "price_per_hour"
	FieldImage        = "image"
	FieldStatus       = "status"
)

// SortableColumns are the columns a list request may order by.
var SortableColumns = []string{FieldName, FieldCapacity, FieldPricePerHour, constant.FieldCreatedAt}

const (
	StatusAvailable   = "available"
	StatusMaintenance = "maintenance"
)

type Area struct {
	ID           string  `db:"id"`
	Name         string  `db:"name"`
	Description  *string `db:"description"`
	Capacity     int     `db:"capacity"`
	PricePerHour float64 `db:"price_per_hour"`
	Image        *string `db:"image"`
	Status       string  `db:"status"`
	model.Metadata
}
