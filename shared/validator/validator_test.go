package validator_test

import (
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"testing"

	"github.com/GioMjds/paynal-prajik/shared/failure"
	"github.com/GioMjds/paynal-prajik/shared/validator"

	"github.com/stretchr/testify/assert"
)

type availabilityQuery struct {
	RoomID string `json:"room_id" validate:"required,uuid"`
	From   string `json:"from"    validate:"required,date"`
	To     string `json:"to"      validate:"required,date"`
	Status string `json:"status"  validate:"omitempty,oneof=pending reserved confirmed"`
}

type upload struct {
	Image *multipart.FileHeader `validate:"omitempty,mimetypes=image/png image/jpeg,maxfilesize=1"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		data    availabilityQuery
		wantErr string
	}{
		{
			name: "valid query",
			data: availabilityQuery{RoomID: "7f1c6f0e-8a55-4f44-9c57-0b8c51b0d9a3", From: "2025-06-01", To: "2025-06-05"},
		},
		{
			name:    "missing room",
			data:    availabilityQuery{From: "2025-06-01", To: "2025-06-05"},
			wantErr: "room_id is required",
		},
		{
			name:    "bad date layout",
			data:    availabilityQuery{RoomID: "7f1c6f0e-8a55-4f44-9c57-0b8c51b0d9a3", From: "06/01/2025", To: "2025-06-05"},
			wantErr: "from must be a date in YYYY-MM-DD format",
		},
		{
			name:    "unknown status",
			data:    availabilityQuery{RoomID: "7f1c6f0e-8a55-4f44-9c57-0b8c51b0d9a3", From: "2025-06-01", To: "2025-06-05", Status: "cancelled"},
			wantErr: "status must be one of pending reserved confirmed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateStruct_Fields(t *testing.T) {
	err := validator.ValidateStruct(&availabilityQuery{From: "tomorrow"})

	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	assert.Equal(t, map[string]string{
		"room_id": "room_id is required",
		"from":    "from must be a date in YYYY-MM-DD format",
		"to":      "to is required",
	}, failure.GetFields(err))
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name    string
		field   any
		tag     string
		wantErr bool
	}{
		{name: "valid clock", field: "14:00", tag: "clock"},
		{name: "invalid clock", field: "2pm", tag: "clock", wantErr: true},
		{name: "valid email", field: "guest@example.com", tag: "email"},
		{name: "invalid email", field: "guest@", tag: "email", wantErr: true},
		{name: "number in range", field: 10, tag: "gte=0,lte=100"},
		{name: "number out of range", field: 150, tag: "gte=0,lte=100", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	var query availabilityQuery

	err := validator.Validate(strings.NewReader(`{"room_id":"7f1c6f0e-8a55-4f44-9c57-0b8c51b0d9a3","from":"2025-06-01","to":"2025-06-02"}`), &query)
	assert.NoError(t, err)
	assert.Equal(t, "2025-06-02", query.To)

	err = validator.Validate(strings.NewReader(`{"room_id":`), &query)
	assert.ErrorContains(t, err, "failed to decode request body")
}

func TestFileValidation(t *testing.T) {
	header := func(contentType string, size int64) *multipart.FileHeader {
		return &multipart.FileHeader{
			Filename: "room.png",
			Size:     size,
			Header:   textproto.MIMEHeader{"Content-Type": []string{contentType}},
		}
	}

	tests := []struct {
		name    string
		image   *multipart.FileHeader
		wantErr bool
	}{
		{name: "no file", image: nil},
		{name: "png within limit", image: header("image/png", 1024*1024)},
		{name: "pdf rejected", image: header("application/pdf", 512), wantErr: true},
		{name: "over one megabyte", image: header("image/jpeg", 1024*1024+1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&upload{Image: tt.image})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
