package model

import (
	"time"

	"github.com/GioMjds/paynal-prajik/shared/constant"
	"github.com/GioMjds/paynal-prajik/shared/model"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID              = "id"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldRole            = "role"
	FieldFirstName       = "first_name"
	FieldLastName        = "last_name"
	FieldPhoneNumber     = "phone_number"
	FieldProfileImage    = "profile_image"
	FieldIsVerified      = "is_verified"
	FieldLastLogin       = "last_login"
	FieldLastBookingDate = "last_booking_date"
	FieldActive          = "active"
)

// SortableColumns are the columns a list request may order by.
var SortableColumns = []string{FieldEmail, FieldFirstName, FieldLastName, FieldLastLogin, constant.FieldCreatedAt}

type User struct {
	ID              string     `db:"id"`
	Email           string     `db:"email"`
	Password        string     `db:"password"`
	Role            string     `db:"role"`
	FirstName       string     `db:"first_name"`
	LastName        string     `db:"last_name"`
	PhoneNumber     *string    `db:"phone_number"`
	ProfileImage    *string    `db:"profile_image"`
	IsVerified      bool       `db:"is_verified"`
	LastLogin       *time.Time `db:"last_login"`
	LastBookingDate *time.Time `db:"last_booking_date"`
	Active          bool       `db:"active"`
	model.Metadata
}
