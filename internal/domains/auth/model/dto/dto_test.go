package dto_test

import (
	"testing"

	"github.com/GioMjds/paynal-prajik/infras/jwt"
	"github.com/GioMjds/paynal-prajik/internal/domains/auth/model/dto"
	"github.com/GioMjds/paynal-prajik/shared/constant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterRequest_ToUserModel(t *testing.T) {
	req := dto.RegisterRequest{
		Email:     " Juan@Example.com ",
		FirstName: "Juan ",
		LastName:  "Dela Cruz",
	}

	user := req.ToUserModel("hashed")

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "juan@example.com", user.Email)
	assert.Equal(t, "Juan", user.FirstName)
	assert.Equal(t, constant.RoleGuest, user.Role)
	assert.Equal(t, "hashed", user.Password)
	assert.True(t, user.Active)
	assert.False(t, user.IsVerified)
	assert.Nil(t, user.PhoneNumber)
	assert.Equal(t, constant.ContextGuest, user.CreatedBy)

	req.PhoneNumber = "09171234567"
	user = req.ToUserModel("hashed")

	require.NotNil(t, user.PhoneNumber)
	assert.Equal(t, "09171234567", *user.PhoneNumber)
}

func TestLoginResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "test-access-token",
		RefreshToken: "test-refresh-token",
		TokenType:    "Bearer",
		ExpiresIn:    900,
	}

	var response dto.LoginResponse
	response.FromTokenPair(tokenPair)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
	assert.Equal(t, "Bearer", response.TokenType)
	assert.Equal(t, int64(900), response.ExpiresIn)
}

func TestRefreshTokenResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "new-access-token",
		RefreshToken: "new-refresh-token",
	}

	var response dto.RefreshTokenResponse
	response.FromTokenPair(tokenPair)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
}
