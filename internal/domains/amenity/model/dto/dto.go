package dto

import (
	"net/http"
	"strings"

	"github.com/GioMjds/paynal-prajik/internal/domains/amenity/model"
	"github.com/GioMjds/paynal-prajik/shared"
	"github.com/GioMjds/paynal-prajik/shared/constant"
	gDto "github.com/GioMjds/paynal-prajik/shared/dto"
	gModel "github.com/GioMjds/paynal-prajik/shared/model"
	"github.com/GioMjds/paynal-prajik/shared/timezone"

	"github.com/google/uuid"
)

type CreateAmenityRequest struct {
	Description string `json:"description" validate:"required,max=100"`
}

func (c *CreateAmenityRequest) ToModel(user string) model.Amenity {
	return model.Amenity{
		ID:          uuid.NewString(),
		Description: strings.TrimSpace(c.Description),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateAmenityRequest struct {
	Description string `db:"description" json:"description" validate:"required,max=100"`
}

type AmenityResponse struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	gDto.Metadata
}

func (r *AmenityResponse) FromModel(model model.Amenity) {
	r.ID = model.ID
	r.Description = model.Description
	r.Metadata.FromModel(model.Metadata)
}

type GetAmenitiesResponse struct {
	Amenities []AmenityResponse `json:"amenities"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetAmenitiesResponse) FromModels(models []model.Amenity, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Amenities = make([]AmenityResponse, len(models))
	for i, mod := range models {
		r.Amenities[i].FromModel(mod)
	}
}

func FilterFromRequest(r *http.Request) gDto.FilterGroup {
	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if description := r.URL.Query().Get(model.FieldDescription); description != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldDescription,
			Operator: gDto.FilterOperatorLike,
			Value:    description,
			Table:    model.TableName,
		})
	}

	return filterGroup
}
