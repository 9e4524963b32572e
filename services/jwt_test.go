package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopherpath/gopherpath_api/shared"
)

func newTestJWTService() *JWTService {
	return &JWTService{
		AccessTokenDuration: time.Hour,
		jwtSecretKey:        "test-secret",
	}
}

func TestJWTRoundTrip(t *testing.T) {
	svc := newTestJWTService()

	token, err := svc.ToJWT(shared.Identity{
		UserID: "user_abc",
		Email:  "gopher@example.com",
		Name:   "Go Gopher",
	})
	require.NoError(t, err)

	identity, err := svc.VerifyJWTToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user_abc", identity.UserID)
	assert.Equal(t, "gopher@example.com", identity.Email)
	assert.Equal(t, "Go Gopher", identity.Name)
}

func TestJWTRejectsExpiredToken(t *testing.T) {
	svc := newTestJWTService()
	svc.AccessTokenDuration = -time.Minute

	token, err := svc.ToJWT(shared.Identity{UserID: "user_abc"})
	require.NoError(t, err)

	_, err = svc.VerifyJWTToken(token)
	assert.Error(t, err)
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	token, err := newTestJWTService().ToJWT(shared.Identity{UserID: "user_abc"})
	require.NoError(t, err)

	other := &JWTService{AccessTokenDuration: time.Hour, jwtSecretKey: "different"}
	_, err = other.VerifyJWTToken(token)
	assert.Error(t, err)
}

func TestExtractTokenFromHeader(t *testing.T) {
	svc := newTestJWTService()

	token, err := svc.ExtractTokenFromHeader("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = svc.ExtractTokenFromHeader("")
	assert.Error(t, err)

	_, err = svc.ExtractTokenFromHeader("Token abc")
	assert.Error(t, err)
}
