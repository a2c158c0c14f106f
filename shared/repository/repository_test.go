package repository

import (
	"testing"

	"github.com/GioMjds/paynal-prajik/shared/dto"
	gModel "github.com/GioMjds/paynal-prajik/shared/model"

	"github.com/stretchr/testify/assert"
)

type room struct {
	ID       string  `db:"id"`
	Name     string  `db:"name"`
	Price    float64 `db:"price"`
	internal string
	gModel.Metadata
}

func newRoomRepository() Repository[room] {
	return NewRepository[room]("room", "rooms", "id", nil, nil)
}

func TestGetColumns(t *testing.T) {
	repo := newRoomRepository()

	assert.Equal(t, []string{"id", "name", "price", "created_at", "modified_at", "created_by", "modified_by"}, repo.columns)
}

func TestRepository_Queries(t *testing.T) {
	repo := newRoomRepository()

	assert.Equal(t,
		"INSERT INTO rooms (id, name, price, created_at, modified_at, created_by, modified_by) "+
			"VALUES (:id, :name, :price, :created_at, :modified_at, :created_by, :modified_by)",
		repo.insertQuery())

	assert.Equal(t, "rooms.id, rooms.price", repo.selectClause("price", "id"))

	update := repo.updateQuery(map[string]any{"price": 10.0, "name": "Suite", "modified_at": nil}, " WHERE (rooms.id = :id)")
	assert.Equal(t, "UPDATE rooms SET modified_at = :modified_at, name = :name, price = :price WHERE (rooms.id = :id)", update)
}

func TestRepository_BuildWhereClause(t *testing.T) {
	repo := newRoomRepository()

	where, args := repo.BuildWhereClause(dto.FilterGroup{})
	assert.Empty(t, where)
	assert.NotNil(t, args)

	where, args = repo.BuildWhereClause(dto.FilterGroup{
		Filters: []any{dto.Filter{Field: "id", Value: "room-1", Operator: dto.FilterOperatorEq, Table: "rooms"}},
	})
	assert.Equal(t, " WHERE (rooms.id = :id)", where)
	assert.Equal(t, map[string]any{"id": "room-1"}, args)
}
