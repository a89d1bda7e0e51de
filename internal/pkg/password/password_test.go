//go:build unit

package password_test

import (
	"strings"
	"testing"

	"room-booking/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCompare(t *testing.T) {
	hash, err := password.HashPasswordWithCost("secret123", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.NoError(t, password.ComparePassword(hash, "secret123"))
	assert.ErrorIs(t, password.ComparePassword(hash, "wrong"), password.ErrComparisonFailed)
}

func TestInvalidInput(t *testing.T) {
	_, err := password.HashPassword("")
	assert.ErrorIs(t, err, password.ErrInvalidPassword)

	assert.ErrorIs(t, password.ComparePassword("", "x"), password.ErrInvalidPassword)
	assert.ErrorIs(t, password.ComparePassword("hash", ""), password.ErrInvalidPassword)
}

func TestLengthLimit(t *testing.T) {
	_, err := password.HashPasswordWithCost(strings.Repeat("p", password.MaxLength), bcrypt.MinCost)
	assert.NoError(t, err)

	_, err = password.HashPasswordWithCost(strings.Repeat("p", password.MaxLength+1), bcrypt.MinCost)
	assert.ErrorIs(t, err, password.ErrInvalidPassword)

	hash, err := password.HashPasswordWithCost("secret123", bcrypt.MinCost)
	require.NoError(t, err)
	assert.ErrorIs(t, password.ComparePassword(hash, strings.Repeat("p", password.MaxLength+1)), password.ErrComparisonFailed)
}
