//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"room-booking/internal/pkg/clock"
	"room-booking/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	secret   = "unit-test-secret"
	issuer   = "room-booking"
	audience = "room-booking-clients"
)

func newService(clk clock.Clock) *jwt.Service {
	return jwt.NewService(secret, issuer, audience, time.Hour, clk)
}

func TestGenerateAndValidate(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(now)
	svc := newService(clk)

	sub := jwt.Subject{
		UserID:      uuid.New(),
		Username:    "alice",
		DisplayName: "Alice",
		Roles:       []string{"Admin"},
	}

	token, expiresAt, err := svc.GenerateToken(sub)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, now.Add(time.Hour), expiresAt)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)

	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, sub.UserID, id)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "Alice", claims.DisplayName)
	assert.Equal(t, []string{"Admin"}, claims.Roles)
}

func TestValidateToken_Errors(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("expired token", func(t *testing.T) {
		clk := clock.NewMockClock(now)
		svc := newService(clk)
		token, _, err := svc.GenerateToken(jwt.Subject{UserID: uuid.New(), Username: "bob"})
		require.NoError(t, err)

		clk.Add(2 * time.Hour)
		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		clk := clock.NewMockClock(now)
		token, _, err := jwt.NewService("other-secret", issuer, audience, time.Hour, clk).
			GenerateToken(jwt.Subject{UserID: uuid.New()})
		require.NoError(t, err)

		_, err = newService(clk).ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("wrong audience", func(t *testing.T) {
		clk := clock.NewMockClock(now)
		token, _, err := jwt.NewService(secret, issuer, "someone-else", time.Hour, clk).
			GenerateToken(jwt.Subject{UserID: uuid.New()})
		require.NoError(t, err)

		_, err = newService(clk).ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := newService(clock.NewMockClock(now)).ValidateToken("not-a-token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
