//go:build unit

package password_test

import (
	"strings"
	"testing"

	"rental-admin/internal/pkg/errs"
	"rental-admin/internal/pkg/password"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCompare(t *testing.T) {
	hash, err := password.HashPasswordWithCost("password123", bcrypt.MinCost)
	require.NoError(t, err)

	require.NoError(t, password.ComparePassword(hash, "password123"))
	require.ErrorIs(t, password.ComparePassword(hash, "wrong-pass"), password.ErrComparisonFailed)
	require.ErrorIs(t, password.ComparePassword("", "password123"), password.ErrInvalidPassword)

	_, err = password.HashPassword("")
	require.ErrorIs(t, err, password.ErrInvalidPassword)
}

func TestHashRejectsTruncatedInput(t *testing.T) {
	_, err := password.HashPasswordWithCost(strings.Repeat("a", 73), bcrypt.MinCost)
	require.ErrorIs(t, err, password.ErrPasswordTooLong)
	require.ErrorIs(t, err, errs.ErrValidation)

	_, err = password.HashPasswordWithCost(strings.Repeat("a", 72), bcrypt.MinCost)
	require.NoError(t, err)
}

func TestCompareMalformedHash(t *testing.T) {
	err := password.ComparePassword("not-a-bcrypt-hash", "password123")
	require.Error(t, err)
	require.NotErrorIs(t, err, password.ErrComparisonFailed)
}
