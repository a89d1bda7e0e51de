//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"room-booking/internal/handler/dto/request"
	"room-booking/internal/pkg/clock"
	"room-booking/internal/pkg/config"
	"room-booking/internal/pkg/cookie"
	"room-booking/internal/pkg/jwt"
	"room-booking/internal/testutil/dbtest"
	"room-booking/internal/testutil/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, username string, roles ...string) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, h.cfg.Issuer, h.cfg.Audience, h.cfg.Duration, clock.NewRealClock())
	token, _, err := service.GenerateToken(jwt.Subject{
		UserID:      userID,
		Username:    username,
		DisplayName: username,
		Roles:       roles,
	})
	require.NoError(t, err)
	return token
}

func LoginUser(t *testing.T, router *gin.Engine, username, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/v1/auth/login",
		request.LoginRequest{Username: username, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	accessCookie := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
	require.NotNil(t, accessCookie, "Access token not found in cookies")
	require.NotEmpty(t, accessCookie.Value, "Access token cookie is empty")

	return accessCookie.Value
}

// CreateAndLogin inserts a user with dbtest.DefaultPassword and returns its id and token.
func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, username string, roles ...string) (uuid.UUID, string) {
	t.Helper()
	id := dbtest.CreateTestUser(t, db, username, roles...)
	return id, LoginUser(t, router, username, dbtest.DefaultPassword)
}
