//go:build unit

package api_test

import (
	"room-booking/internal/domain/user"
	"room-booking/internal/handler/httperr"
	"room-booking/internal/handler/middleware"
	usecasemock "room-booking/internal/mock/usecase"
	"room-booking/internal/usecase"
	"room-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

const (
	memberToken = "member-token"
	otherToken  = "other-token"
	adminToken  = "admin-token"
)

var (
	member = shared.Identity{
		UserID:      uuid.MustParse("0b6f3f0e-6a43-4c39-9d5e-2f1a1c1e0a01"),
		Username:    "alice",
		DisplayName: "Alice",
		Roles:       user.Roles{},
	}
	other = shared.Identity{
		UserID:      uuid.MustParse("0b6f3f0e-6a43-4c39-9d5e-2f1a1c1e0a02"),
		Username:    "bob",
		DisplayName: "Bob",
		Roles:       user.Roles{},
	}
	admin = shared.Identity{
		UserID:      uuid.MustParse("0b6f3f0e-6a43-4c39-9d5e-2f1a1c1e0a03"),
		Username:    "admin",
		DisplayName: "Administrator",
		Roles:       user.Roles{user.RoleAdmin},
	}
)

// newTestEngine wires the real auth middleware to a mocked authenticator that
// knows the three fixed tokens above.
func newTestEngine(ctrl *gomock.Controller) (*gin.Engine, *middleware.AuthMiddleware) {
	gin.SetMode(gin.TestMode)
	httperr.UseJSONFieldNames()

	engine := gin.New()
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.ErrorHandler())

	authn := usecasemock.NewMockAuthenticator(ctrl)
	authn.EXPECT().Authenticate(memberToken).Return(member, nil).AnyTimes()
	authn.EXPECT().Authenticate(otherToken).Return(other, nil).AnyTimes()
	authn.EXPECT().Authenticate(adminToken).Return(admin, nil).AnyTimes()
	authn.EXPECT().Authenticate(gomock.Any()).Return(shared.Identity{}, usecase.ErrAuthenticationFailed).AnyTimes()

	return engine, middleware.NewAuthMiddleware(authn)
}
