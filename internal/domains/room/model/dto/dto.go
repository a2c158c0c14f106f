package dto

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/GioMjds/paynal-prajik/internal/domains/room/model"
	"github.com/GioMjds/paynal-prajik/shared"
	"github.com/GioMjds/paynal-prajik/shared/constant"
	gDto "github.com/GioMjds/paynal-prajik/shared/dto"
	gModel "github.com/GioMjds/paynal-prajik/shared/model"
	"github.com/GioMjds/paynal-prajik/shared/timezone"

	"github.com/google/uuid"
)

const formImage = "image"

type CreateRoomRequest struct {
	Name        string                `json:"name"        validate:"required,max=100"`
	RoomType    string                `json:"room_type"   validate:"required,max=50"`
	Description string                `json:"description" validate:"omitempty,max=1000"`
	Price       float64               `json:"price"       validate:"gt=0"`
	MaxGuests   int                   `json:"max_guests"  validate:"min=1"`
	Status      string                `json:"status"      validate:"omitempty,oneof=available maintenance"`
	Image       *multipart.FileHeader `json:"image"       validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=2"`
	ImageFile   multipart.File        `json:"-"`
}

// FromForm reads a multipart room form. Unparseable numbers are left at zero for validation to reject.
func (c *CreateRoomRequest) FromForm(r *http.Request) error {
	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		return fmt.Errorf("failed to parse multipart form: %w", err)
	}

	c.Name = r.FormValue(model.FieldName)
	c.RoomType = r.FormValue(model.FieldRoomType)
	c.Description = r.FormValue(model.FieldDescription)
	c.Status = r.FormValue(model.FieldStatus)
	c.Price, _ = shared.ConvertStringToFloat(r.FormValue(model.FieldPrice))
	c.MaxGuests, _ = shared.ConvertStringToInt(r.FormValue(model.FieldMaxGuests))

	file, header, err := formFile(r)
	c.Image, c.ImageFile = header, file

	return err
}

func (c *CreateRoomRequest) ToModel(user string, imageURL string) model.Room {
	status := c.Status
	if status == constant.Empty {
		status = model.StatusAvailable
	}

	room := model.Room{
		ID:        uuid.NewString(),
		Name:      c.Name,
		RoomType:  c.RoomType,
		Price:     c.Price,
		MaxGuests: c.MaxGuests,
		Status:    status,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if c.Description != constant.Empty {
		room.Description = &c.Description
	}

	if imageURL != constant.Empty {
		room.Image = &imageURL
	}

	return room
}

type UpdateRoomRequest struct {
	Name        string                `db:"name"        json:"name"        validate:"omitempty,max=100"`
	RoomType    string                `db:"room_type"   json:"room_type"   validate:"omitempty,max=50"`
	Description *string               `db:"description" json:"description" validate:"omitempty,max=1000"`
	Price       *float64              `db:"price"       json:"price"       validate:"omitempty,gt=0"`
	MaxGuests   *int                  `db:"max_guests"  json:"max_guests"  validate:"omitempty,min=1"`
	Status      string                `db:"status"      json:"status"      validate:"omitempty,oneof=available maintenance"`
	Image       *multipart.FileHeader `json:"image"     validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=2"`
	ImageFile   multipart.File        `json:"-"`
}

// FromForm reads the fields present in a multipart room form.
func (u *UpdateRoomRequest) FromForm(r *http.Request) error {
	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		return fmt.Errorf("failed to parse multipart form: %w", err)
	}

	u.Name = r.FormValue(model.FieldName)
	u.RoomType = r.FormValue(model.FieldRoomType)
	u.Status = r.FormValue(model.FieldStatus)

	if description := r.FormValue(model.FieldDescription); description != constant.Empty {
		u.Description = &description
	}

	if price, err := shared.ConvertStringToFloat(r.FormValue(model.FieldPrice)); err == nil {
		u.Price = &price
	}

	if maxGuests, err := shared.ConvertStringToInt(r.FormValue(model.FieldMaxGuests)); err == nil {
		u.MaxGuests = &maxGuests
	}

	file, header, err := formFile(r)
	u.Image, u.ImageFile = header, file

	return err
}

type RoomResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	RoomType    string  `json:"room_type"`
	Description *string `json:"description"`
	Price       float64 `json:"price"`
	MaxGuests   int     `json:"max_guests"`
	Image       *string `json:"image"`
	Status      string  `json:"status"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Name = model.Name
	r.RoomType = model.RoomType
	r.Description = model.Description
	r.Price = model.Price
	r.MaxGuests = model.MaxGuests
	r.Image = model.Image
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

// ListFilter narrows the room list. Empty fields are ignored.
type ListFilter struct {
	Name      string
	RoomType  string
	Status    string
	MinGuests int
}

func (f *ListFilter) FromRequest(r *http.Request) {
	query := r.URL.Query()

	f.Name = query.Get(model.FieldName)
	f.RoomType = query.Get(model.FieldRoomType)
	f.Status = query.Get(model.FieldStatus)
	f.MinGuests, _ = shared.ConvertStringToInt(query.Get("guests"))
}

func (f *ListFilter) ToFilterGroup() gDto.FilterGroup {
	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if f.Name != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    f.Name,
			Table:    model.TableName,
		})
	}

	if f.RoomType != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRoomType,
			Operator: gDto.FilterOperatorEq,
			Value:    f.RoomType,
			Table:    model.TableName,
		})
	}

	if f.Status != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    f.Status,
			Table:    model.TableName,
		})
	}

	if f.MinGuests > 0 {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldMaxGuests,
			Operator: gDto.FilterOperatorGreaterEq,
			Value:    f.MinGuests,
			Table:    model.TableName,
		})
	}

	return filterGroup
}

func formFile(r *http.Request) (multipart.File, *multipart.FileHeader, error) {
	file, header, err := r.FormFile(formImage)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil, nil
		}

		return nil, nil, fmt.Errorf("failed to read image: %w", err)
	}

	return file, header, nil
}
