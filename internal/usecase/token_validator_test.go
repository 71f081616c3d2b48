//go:build unit

package usecase_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cusco-tours/internal/pkg/jwt"
	"cusco-tours/internal/usecase"
)

func TestTokenValidator(t *testing.T) {
	service := jwt.NewService("test-secret-key-for-unit-tests", 15*time.Minute, time.Hour)
	validator := usecase.NewTokenValidator(service)
	userID := uuid.New()

	t.Run("accepts an access token", func(t *testing.T) {
		token, err := service.GenerateAccessToken(userID)
		require.NoError(t, err)

		got, err := validator.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, got)
	})

	t.Run("rejects a refresh token for API access", func(t *testing.T) {
		token, err := service.GenerateRefreshToken(userID)
		require.NoError(t, err)

		_, err = validator.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("rejects a malformed token", func(t *testing.T) {
		_, err := validator.ValidateToken("bogus")
		assert.Error(t, err)
	})
}
