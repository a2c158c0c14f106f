package password_test

import (
	"strings"
	"testing"

	"github.com/GioMjds/paynal-prajik/shared/password"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestHash(t *testing.T) {
	hash, err := password.Hash("guestPassword123")

	assert.NoError(t, err)
	assert.NotEqual(t, "guestPassword123", hash)

	_, err = password.Hash("")
	assert.ErrorIs(t, err, password.ErrEmptyPassword)

	_, err = password.Hash(strings.Repeat("a", 73))
	assert.ErrorIs(t, err, password.ErrTooLong)

	assert.False(t, password.NeedsRehash(hash))
}

func TestNeedsRehash(t *testing.T) {
	weak, err := bcrypt.GenerateFromPassword([]byte("guestPassword123"), bcrypt.MinCost)
	assert.NoError(t, err)

	assert.True(t, password.NeedsRehash(string(weak)))
	assert.True(t, password.NeedsRehash("not-a-hash"))
}

func TestVerify(t *testing.T) {
	hash, err := password.Hash("guestPassword123")
	assert.NoError(t, err)

	tests := []struct {
		name     string
		password string
		hash     string
		wantErr  error
	}{
		{name: "matching password", password: "guestPassword123", hash: hash},
		{name: "wrong password", password: "otherPassword", hash: hash, wantErr: password.ErrInvalidPassword},
		{name: "empty password", password: "", hash: hash, wantErr: password.ErrInvalidPassword},
		{name: "empty hash", password: "guestPassword123", hash: "", wantErr: password.ErrInvalidPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.password, tt.hash)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
