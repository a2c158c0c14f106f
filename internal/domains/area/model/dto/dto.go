package dto

import (
	"net/http"

	"github.com/GioMjds/paynal-prajik/internal/domains/area/model"
	"github.com/GioMjds/paynal-prajik/shared"
	"github.com/GioMjds/paynal-prajik/shared/constant"
	gDto "github.com/GioMjds/paynal-prajik/shared/dto"
	gModel "github.com/GioMjds/paynal-prajik/shared/model"
	"github.com/GioMjds/paynal-prajik/shared/timezone"

	"github.com/google/uuid"
)

type CreateAreaRequest struct {
	Name         string  `json:"name"           validate:"required,max=100"`
	Description  string  `json:"description"    validate:"omitempty,max=1000"`
	Capacity     int     `json:"capacity"       validate:"min=1"`
	PricePerHour float64 `json:"price_per_hour" validate:"gt=0"`
	Status       string  `json:"status"         validate:"omitempty,oneof=available maintenance"`
	// Image is a base64 data URL.
	Image string `json:"image" validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=3"`
}

func (c *CreateAreaRequest) ToModel(user, imageURL string) model.Area {
	status := c.Status
	if status == constant.Empty {
		status = model.StatusAvailable
	}

	area := model.Area{
		ID:           uuid.NewString(),
		Name:         c.Name,
		Capacity:     c.Capacity,
		PricePerHour: c.PricePerHour,
		Status:       status,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if c.Description != constant.Empty {
		area.Description = &c.Description
	}

	if imageURL != constant.Empty {
		area.Image = &imageURL
	}

	return area
}

type AreaResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	Capacity     int     `json:"capacity"`
	PricePerHour float64 `json:"price_per_hour"`
	Image        *string `json:"image"`
	Status       string  `json:"status"`
	gDto.Metadata
}

func (r *AreaResponse) FromModel(model model.Area) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.Capacity = model.Capacity
	r.PricePerHour = model.PricePerHour
	r.Image = model.Image
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetAreasResponse struct {
	Areas     []AreaResponse `json:"areas"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetAreasResponse) FromModels(models []model.Area, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Areas = make([]AreaResponse, len(models))
	for i, mod := range models {
		r.Areas[i].FromModel(mod)
	}
}

// FilterFromRequest narrows the area list by name and status.
func FilterFromRequest(r *http.Request) gDto.FilterGroup {
	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if name := r.URL.Query().Get(model.FieldName); name != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.TableName,
		})
	}

	if status := r.URL.Query().Get(model.FieldStatus); status != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	return filterGroup
}
