package dto

import (
	"net/http"
	"time"

	"github.com/GioMjds/paynal-prajik/internal/domains/user/model"
	"github.com/GioMjds/paynal-prajik/shared"
	"github.com/GioMjds/paynal-prajik/shared/constant"
	gDto "github.com/GioMjds/paynal-prajik/shared/dto"
)

type UserResponse struct {
	ID              string     `json:"id"`
	Email           string     `json:"email"`
	Role            string     `json:"role"`
	FirstName       string     `json:"first_name"`
	LastName        string     `json:"last_name"`
	PhoneNumber     *string    `json:"phone_number,omitempty"`
	ProfileImage    *string    `json:"profile_image,omitempty"`
	IsVerified      bool       `json:"is_verified"`
	LastLogin       *time.Time `json:"last_login,omitempty"`
	LastBookingDate *string    `json:"last_booking_date,omitempty"`
	Active          bool       `json:"active"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Email = model.Email
	r.Role = model.Role
	r.FirstName = model.FirstName
	r.LastName = model.LastName
	r.PhoneNumber = model.PhoneNumber
	r.ProfileImage = model.ProfileImage
	r.IsVerified = model.IsVerified
	r.LastLogin = model.LastLogin
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)

	if model.LastBookingDate != nil {
		date := model.LastBookingDate.Format(constant.DateFormat)
		r.LastBookingDate = &date
	}
}

// UpdateUserRequest is the admin view of a user: role and activation only.
type UpdateUserRequest struct {
	Role   string `db:"role"   json:"role"   validate:"omitempty,oneof=guest admin superadmin"`
	Active *bool  `db:"active" json:"active"`
}

func (u *UpdateUserRequest) IsEmpty() bool {
	return u.Role == constant.Empty && u.Active == nil
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}

// FilterFromRequest reads the email, role and active query filters.
func FilterFromRequest(r *http.Request) gDto.FilterGroup {
	query := r.URL.Query()
	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if email := query.Get(model.FieldEmail); email != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldEmail,
			Operator: gDto.FilterOperatorLike,
			Value:    email,
			Table:    model.TableName,
		})
	}

	if role := query.Get(model.FieldRole); role != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRole,
			Operator: gDto.FilterOperatorEq,
			Value:    role,
			Table:    model.TableName,
		})
	}

	if active := shared.ConvertStringToBool(query.Get(model.FieldActive)); active != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
			Table:    model.TableName,
		})
	}

	return filterGroup
}
