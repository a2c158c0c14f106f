package model

import (
	"math"
	"time"

	"github.com/GioMjds/paynal-prajik/shared/constant"
	"github.com/GioMjds/paynal-prajik/shared/model"
)

const (
	TableName  = "commissions"
	EntityName = "commission"

	FieldID               = "id"
	FieldOrderID          = "order_id"
	FieldBookingID        = "booking_id"
	FieldRoomID           = "room_id"
	FieldAreaID           = "area_id"
	FieldOrderStatus      = "order_status"
	FieldTotalOrderValue  = "total_order_value"
	FieldCommissionRate   = "commission_rate"
	FieldCommissionAmount = "commission_amount"
	FieldIsPaid           = "is_paid"
	FieldPaidAt           = "paid_at"
	FieldOrderedAt        = "ordered_at"
	FieldNotes            = "notes"
)

// SortableColumns are the columns a list request may order by.
var SortableColumns = []string{FieldOrderedAt, FieldTotalOrderValue, FieldCommissionAmount, constant.FieldCreatedAt}

const (
	OrderStatusPending    = "Pending"
	OrderStatusProcessing = "Processing"
	OrderStatusCompleted  = "Completed"
	OrderStatusCancelled  = "Cancelled"
	OrderStatusReviewed   = "Reviewed"
)

// DefaultRate is the commission percentage applied when an order does not carry its own.
const DefaultRate = 10.0

type Commission struct {
	ID               string     `db:"id"`
	OrderID          string     `db:"order_id"`
	BookingID        *string    `db:"booking_id"`
	RoomID           *string    `db:"room_id"`
	AreaID           *string    `db:"area_id"`
	GuestName        string     `db:"guest_name"`
	GuestEmail       string     `db:"guest_email"`
	TotalOrderValue  float64    `db:"total_order_value"`
	CommissionRate   float64    `db:"commission_rate"`
	CommissionAmount float64    `db:"commission_amount"`
	OrderStatus      string     `db:"order_status"`
	OrderedAt        time.Time  `db:"ordered_at"`
	IsPaid           bool       `db:"is_paid"`
	PaidAt           *time.Time `db:"paid_at"`
	Notes            *string    `db:"notes"`
	model.Metadata
}

// Amount is total × rate / 100 rounded to centavos.
func Amount(total, rate float64) float64 {
	return math.Round(total*rate) / 100
}
