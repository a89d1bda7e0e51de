//go:build unit

package usecase_test

import (
	"testing"
	"time"

	"room-booking/internal/domain/user"
	"room-booking/internal/pkg/clock"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/pkg/jwt"
	"room-booking/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticator_Authenticate(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(now)
	svc := jwt.NewService("secret", "room-booking", "room-booking-clients", time.Hour, clk)
	auth := usecase.NewAuthenticator(svc)

	userID := uuid.New()
	token, _, err := svc.GenerateToken(jwt.Subject{
		UserID:      userID,
		Username:    "alice",
		DisplayName: "Alice",
		Roles:       []string{"Admin"},
	})
	require.NoError(t, err)

	t.Run("valid token", func(t *testing.T) {
		id, err := auth.Authenticate(token)
		require.NoError(t, err)
		assert.Equal(t, userID, id.UserID)
		assert.Equal(t, "alice", id.Username)
		assert.Equal(t, user.Roles{user.RoleAdmin}, id.Roles)
		assert.True(t, id.IsAdmin())
	})

	t.Run("empty token", func(t *testing.T) {
		_, err := auth.Authenticate("")
		assert.True(t, errs.Is(err, usecase.ErrAuthenticationFailed))
	})

	t.Run("tampered token", func(t *testing.T) {
		_, err := auth.Authenticate(token + "x")
		assert.True(t, errs.Is(err, usecase.ErrAuthenticationFailed))
	})

	t.Run("expired token", func(t *testing.T) {
		clk.Add(2 * time.Hour)
		defer clk.Set(now)

		_, err := auth.Authenticate(token)
		assert.True(t, errs.Is(err, usecase.ErrTokenExpired))
	})
}
