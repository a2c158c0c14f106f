package dto

import (
	"fmt"
	"net/http"
	"time"

	"github.com/GioMjds/paynal-prajik/internal/domains/commission/model"
	"github.com/GioMjds/paynal-prajik/shared"
	"github.com/GioMjds/paynal-prajik/shared/constant"
	gDto "github.com/GioMjds/paynal-prajik/shared/dto"
	gModel "github.com/GioMjds/paynal-prajik/shared/model"
	"github.com/GioMjds/paynal-prajik/shared/timezone"

	"github.com/google/uuid"
)

// FoodOrderEvent is the payload published on the food-orders topic by the ordering service.
type FoodOrderEvent struct {
	OrderID        string    `json:"order_id"        validate:"required"`
	BookingID      *string   `json:"booking_id"`
	RoomID         *string   `json:"room_id"         validate:"omitempty,uuid"`
	AreaID         *string   `json:"area_id"         validate:"omitempty,uuid"`
	GuestName      string    `json:"guest_name"      validate:"omitempty,max=200"`
	GuestEmail     string    `json:"guest_email"     validate:"omitempty,email"`
	TotalAmount    float64   `json:"total_amount"    validate:"gte=0"`
	CommissionRate *float64  `json:"commission_rate" validate:"omitempty,gte=0,lte=100"`
	Status         string    `json:"status"          validate:"omitempty,oneof=Pending Processing Completed Cancelled Reviewed"`
	OrderedAt      time.Time `json:"ordered_at"`
}

func (e *FoodOrderEvent) Rate() float64 {
	if e.CommissionRate == nil {
		return model.DefaultRate
	}

	return *e.CommissionRate
}

func (e *FoodOrderEvent) OrderStatus() string {
	if e.Status == constant.Empty {
		return model.OrderStatusPending
	}

	return e.Status
}

func (e *FoodOrderEvent) ToModel() model.Commission {
	orderedAt := e.OrderedAt
	if orderedAt.IsZero() {
		orderedAt = timezone.Now()
	}

	return model.Commission{
		ID:               uuid.NewString(),
		OrderID:          e.OrderID,
		BookingID:        e.BookingID,
		RoomID:           e.RoomID,
		AreaID:           e.AreaID,
		GuestName:        e.GuestName,
		GuestEmail:       e.GuestEmail,
		TotalOrderValue:  e.TotalAmount,
		CommissionRate:   e.Rate(),
		CommissionAmount: model.Amount(e.TotalAmount, e.Rate()),
		OrderStatus:      e.OrderStatus(),
		OrderedAt:        orderedAt,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  constant.ContextSystem,
			ModifiedBy: constant.ContextSystem,
		},
	}
}

// ToUpdate returns the columns a repeated event for a known order refreshes.
func (e *FoodOrderEvent) ToUpdate() map[string]any {
	return map[string]any{
		model.FieldOrderStatus:      e.OrderStatus(),
		model.FieldTotalOrderValue:  e.TotalAmount,
		model.FieldCommissionRate:   e.Rate(),
		model.FieldCommissionAmount: model.Amount(e.TotalAmount, e.Rate()),
		constant.FieldModifiedAt:    timezone.Now(),
		constant.FieldModifiedBy:    constant.ContextSystem,
	}
}

type MarkPaidRequest struct {
	Notes string `json:"notes" validate:"omitempty,max=1000"`
}

type CommissionResponse struct {
	ID               string     `json:"id"`
	OrderID          string     `json:"order_id"`
	BookingID        *string    `json:"booking_id"`
	RoomID           *string    `json:"room_id"`
	AreaID           *string    `json:"area_id"`
	GuestName        string     `json:"guest_name"`
	GuestEmail       string     `json:"guest_email"`
	TotalOrderValue  float64    `json:"total_order_value"`
	CommissionRate   float64    `json:"commission_rate"`
	CommissionAmount float64    `json:"commission_amount"`
	OrderStatus      string     `json:"order_status"`
	OrderedAt        time.Time  `json:"ordered_at"`
	IsPaid           bool       `json:"is_paid"`
	PaidAt           *time.Time `json:"paid_at"`
	Notes            *string    `json:"notes"`
	gDto.Metadata
}

func (r *CommissionResponse) FromModel(model model.Commission) {
	r.ID = model.ID
	r.OrderID = model.OrderID
	r.BookingID = model.BookingID
	r.RoomID = model.RoomID
	r.AreaID = model.AreaID
	r.GuestName = model.GuestName
	r.GuestEmail = model.GuestEmail
	r.TotalOrderValue = model.TotalOrderValue
	r.CommissionRate = model.CommissionRate
	r.CommissionAmount = model.CommissionAmount
	r.OrderStatus = model.OrderStatus
	r.OrderedAt = model.OrderedAt
	r.IsPaid = model.IsPaid
	r.PaidAt = model.PaidAt
	r.Notes = model.Notes
	r.Metadata.FromModel(model.Metadata)
}

type GetCommissionsResponse struct {
	Commissions []CommissionResponse `json:"commissions"`
	TotalPage   int                  `json:"total_page"`
	TotalData   int                  `json:"total_data"`
}

func (r *GetCommissionsResponse) FromModels(models []model.Commission, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Commissions = make([]CommissionResponse, len(models))
	for i, mod := range models {
		r.Commissions[i].FromModel(mod)
	}
}

type SummaryResponse struct {
	TotalOrders       int     `json:"total_orders"`
	TotalSales        float64 `json:"total_sales"`
	CompletedOrders   int     `json:"completed_orders"`
	CompletedSales    float64 `json:"completed_sales"`
	TotalCommission   float64 `json:"total_commission"`
	UnpaidCommission  float64 `json:"unpaid_commission"`
	AverageCommission float64 `json:"average_commission_per_order"`
}

// ListFilter narrows commissions. From and To are inclusive order dates.
type ListFilter struct {
	OrderStatus string
	IsPaid      *bool
	RoomID      string
	AreaID      string
	From        string
	To          string
}

func (f *ListFilter) FromRequest(r *http.Request) {
	query := r.URL.Query()

	f.OrderStatus = query.Get(model.FieldOrderStatus)
	f.IsPaid = shared.ConvertStringToBool(query.Get(model.FieldIsPaid))
	f.RoomID = query.Get(model.FieldRoomID)
	f.AreaID = query.Get(model.FieldAreaID)
	f.From = query.Get("from")
	f.To = query.Get("to")
}

func (f *ListFilter) ToFilterGroup() (gDto.FilterGroup, error) {
	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	equals := []struct{ field, value string }{
		{model.FieldOrderStatus, f.OrderStatus},
		{model.FieldRoomID, f.RoomID},
		{model.FieldAreaID, f.AreaID},
	}

	for _, eq := range equals {
		if eq.value != constant.Empty {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    eq.field,
				Operator: gDto.FilterOperatorEq,
				Value:    eq.value,
				Table:    model.TableName,
			})
		}
	}

	if f.IsPaid != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldIsPaid,
			Operator: gDto.FilterOperatorEq,
			Value:    *f.IsPaid,
			Table:    model.TableName,
		})
	}

	if f.From != constant.Empty {
		from, err := timezone.Parse(constant.DateFormat, f.From)
		if err != nil {
			return filterGroup, fmt.Errorf("invalid from date: %w", err)
		}

		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			ArgName:  "ordered_from",
			Field:    model.FieldOrderedAt,
			Operator: gDto.FilterOperatorGreaterEq,
			Value:    from,
			Table:    model.TableName,
		})
	}

	if f.To != constant.Empty {
		to, err := timezone.Parse(constant.DateFormat, f.To)
		if err != nil {
			return filterGroup, fmt.Errorf("invalid to date: %w", err)
		}

		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			ArgName:  "ordered_to",
			Field:    model.FieldOrderedAt,
			Operator: gDto.FilterOperatorLess,
			Value:    to.AddDate(0, 0, 1),
			Table:    model.TableName,
		})
	}

	return filterGroup, nil
}

// With returns a copy of group with filters appended.
func With(group gDto.FilterGroup, filters ...gDto.Filter) gDto.FilterGroup {
	combined := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  make([]any, 0, len(group.Filters)+len(filters)),
	}

	combined.Filters = append(combined.Filters, group.Filters...)
	for _, filter := range filters {
		combined.Filters = append(combined.Filters, filter)
	}

	return combined
}
