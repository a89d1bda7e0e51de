package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"room-booking/internal/domain/user"
	"room-booking/internal/handler/httperr"
	"room-booking/internal/pkg/cookie"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase"
	"room-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	authenticator usecase.Authenticator
}

const (
	ctxIdentityKey = "identity"
	ctxClaimsKey   = "jwt_claims"
)

func NewAuthMiddleware(authenticator usecase.Authenticator) *AuthMiddleware {
	return &AuthMiddleware{
		authenticator: authenticator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Access token required", nil)
			return
		}

		identity, err := m.authenticator.Authenticate(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			msg := "Invalid or expired token"
			if errs.Is(err, usecase.ErrTokenExpired) {
				msg = "Token expired"
			}
			httperr.AbortWithError(c, http.StatusUnauthorized, err, msg, nil)
			return
		}

		setIdentity(c, identity)
		c.Next()
	}
}

// RequireRole must be chained after RequireAuth.
func (m *AuthMiddleware) RequireRole(role user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
			return
		}

		if !identity.Roles.Has(role) {
			httperr.AbortWithError(c, http.StatusForbidden, errs.ErrForbidden, "Insufficient permissions", nil)
			return
		}

		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func setIdentity(c *gin.Context, identity shared.Identity) {
	c.Set(ctxIdentityKey, identity)
	c.Set(ctxClaimsKey, map[string]any{
		"user_id": identity.UserID.String(),
		"role":    strings.Join(identity.Roles.Strings(), ","),
	})
}

func GetIdentity(c *gin.Context) (shared.Identity, bool) {
	v, exists := c.Get(ctxIdentityKey)
	if !exists {
		return shared.Identity{}, false
	}

	identity, ok := v.(shared.Identity)
	return identity, ok
}
