package dto

import (
	"net/http"
	"strings"

	bookingModel "github.com/GioMjds/paynal-prajik/internal/domains/booking/model"
	"github.com/GioMjds/paynal-prajik/internal/domains/review/model"
	"github.com/GioMjds/paynal-prajik/shared"
	"github.com/GioMjds/paynal-prajik/shared/constant"
	gDto "github.com/GioMjds/paynal-prajik/shared/dto"
	gModel "github.com/GioMjds/paynal-prajik/shared/model"
	"github.com/GioMjds/paynal-prajik/shared/timezone"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	Rating  int    `json:"rating"  validate:"min=1,max=5"`
	Comment string `json:"comment" validate:"omitempty,max=1000"`
}

// ToModel ties the review to the booking's room or area so listings per resource need no join.
func (c *CreateReviewRequest) ToModel(booking bookingModel.Booking, user string) model.Review {
	review := model.Review{
		ID:        uuid.NewString(),
		BookingID: booking.ID,
		UserID:    user,
		RoomID:    booking.RoomID,
		AreaID:    booking.AreaID,
		Rating:    c.Rating,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if comment := strings.TrimSpace(c.Comment); comment != constant.Empty {
		review.Comment = &comment
	}

	return review
}

type UpdateReviewRequest struct {
	Rating  int     `db:"rating"  json:"rating"  validate:"omitempty,min=1,max=5"`
	Comment *string `db:"comment" json:"comment" validate:"omitempty,max=1000"`
}

type ReviewResponse struct {
	ID        string  `json:"id"`
	BookingID string  `json:"booking_id"`
	UserID    string  `json:"user_id"`
	RoomID    *string `json:"room_id"`
	AreaID    *string `json:"area_id"`
	Rating    int     `json:"rating"`
	Comment   *string `json:"comment"`
	gDto.Metadata
}

func (r *ReviewResponse) FromModel(model model.Review) {
	r.ID = model.ID
	r.BookingID = model.BookingID
	r.UserID = model.UserID
	r.RoomID = model.RoomID
	r.AreaID = model.AreaID
	r.Rating = model.Rating
	r.Comment = model.Comment
	r.Metadata.FromModel(model.Metadata)
}

type GetReviewsResponse struct {
	Reviews   []ReviewResponse `json:"reviews"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetReviewsResponse) FromModels(models []model.Review, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reviews = make([]ReviewResponse, len(models))
	for i, mod := range models {
		r.Reviews[i].FromModel(mod)
	}
}

// ListFilter narrows the review list. Empty fields are ignored.
type ListFilter struct {
	BookingID string
	UserID    string
	RoomID    string
	AreaID    string
	Rating    string
}

func (f *ListFilter) FromRequest(r *http.Request) {
	f.Rating = r.URL.Query().Get(model.FieldRating)
}

func (f *ListFilter) ToFilterGroup() gDto.FilterGroup {
	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	fields := []struct {
		name  string
		value string
	}{
		{model.FieldBookingID, f.BookingID},
		{model.FieldUserID, f.UserID},
		{model.FieldRoomID, f.RoomID},
		{model.FieldAreaID, f.AreaID},
		{model.FieldRating, f.Rating},
	}

	for _, field := range fields {
		if field.value == constant.Empty {
			continue
		}

		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    field.name,
			Operator: gDto.FilterOperatorEq,
			Value:    field.value,
			Table:    model.TableName,
		})
	}

	return filterGroup
}
