package base64_test

import (
	"testing"

	"github.com/GioMjds/paynal-prajik/shared/base64"

	"github.com/stretchr/testify/assert"
)

const pixelPNG = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNk+M9QDwADhgGAWjR9awAAAABJRU5ErkJggg=="

func TestGetContentType(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "png data url", input: pixelPNG, expected: "image/png"},
		{name: "plain text data url", input: "data:text/plain;base64,SGVsbG8gV29ybGQ=", expected: "text/plain"},
		{name: "missing marker", input: "data:image/png,abc", expected: ""},
		{name: "not a data url", input: "image/png;base64,abc", expected: ""},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, base64.GetContentType(tt.input))
		})
	}
}

func TestDecode(t *testing.T) {
	contentType, data, err := base64.Decode("data:text/plain;base64,SGVsbG8gV29ybGQ=")

	assert.NoError(t, err)
	assert.Equal(t, "text/plain", contentType)
	assert.Equal(t, []byte("Hello World"), data)

	_, _, err = base64.Decode("hello")
	assert.ErrorIs(t, err, base64.ErrNotDataURL)

	_, _, err = base64.Decode("data:image/png;base64,***")
	assert.Error(t, err)
}
