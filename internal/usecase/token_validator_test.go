//go:build unit

package usecase_test

import (
	"testing"
	"time"

	"rental-admin/internal/domain/user"
	"rental-admin/internal/pkg/jwt"
	"rental-admin/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenValidator(t *testing.T) {
	svc := jwt.NewService("validator-secret", 15*time.Minute, time.Hour)
	validator := usecase.NewTokenValidator(svc)
	userID := uuid.New()

	t.Run("access token yields principal", func(t *testing.T) {
		token, err := svc.GenerateAccessToken(userID, user.RoleOperator)
		require.NoError(t, err)

		p, err := validator.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, p.UserID)
		assert.Equal(t, user.RoleOperator, p.Role)
	})

	t.Run("refresh token is refused", func(t *testing.T) {
		token, _, err := svc.GenerateRefreshToken(userID, user.RoleAdmin)
		require.NoError(t, err)

		_, err = validator.ValidateToken(token)
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := validator.ValidateToken("not-a-token")
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("token signed with another key", func(t *testing.T) {
		other := jwt.NewService("other-secret", 15*time.Minute, time.Hour)
		token, err := other.GenerateAccessToken(userID, user.RoleViewer)
		require.NoError(t, err)

		_, err = validator.ValidateToken(token)
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
