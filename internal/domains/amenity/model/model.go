package model

import (
	"github.com/GioMjds/paynal-prajik/shared/constant"
	"github.com/GioMjds/paynal-prajik/shared/model"
)

const (
	TableName  = "amenities"
	EntityName = "amenity"

	FieldID          = "id"
	FieldDescription = "description"
)

var SortableColumns = []string{FieldDescription, constant.FieldCreatedAt}

type Amenity struct {
	ID          string `db:"id"`
	Description string `db:"description"`
	model.Metadata
}
