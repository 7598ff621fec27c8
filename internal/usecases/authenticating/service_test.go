package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/vfg2006/sales-insights-api/internal/config"
)

func newTestService(t *testing.T) Authenticator {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	return NewService(&config.Config{
		Auth: config.Auth{
			Secret:               "test-signing-secret",
			OperatorUsername:     "operator",
			OperatorPasswordHash: string(hash),
			TokenTTLMinutes:      60,
		},
	})
}

func TestService_Login(t *testing.T) {
	service := newTestService(t)

	token, err := service.Login("operator", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestService_Login_InvalidCredentials(t *testing.T) {
	service := newTestService(t)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "wrong password", username: "operator", password: "wrong"},
		{name: "unknown user", username: "intruder", password: "s3cret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Login(tt.username, tt.password)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestService_Login_OperatorNotConfigured(t *testing.T) {
	service := NewService(&config.Config{})

	_, err := service.Login("operator", "s3cret")
	assert.ErrorIs(t, err, ErrOperatorNotSet)
}

func TestService_ValidateToken(t *testing.T) {
	service := newTestService(t)

	token, err := service.Login("operator", "s3cret")
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "operator", claims.Username)
}

func TestService_ValidateToken_Invalid(t *testing.T) {
	service := newTestService(t)

	_, err := service.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestService_ValidateToken_WrongSecret(t *testing.T) {
	service := newTestService(t)

	token, err := service.Login("operator", "s3cret")
	require.NoError(t, err)

	other := NewService(&config.Config{
		Auth: config.Auth{Secret: "a-different-secret"},
	})

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}
