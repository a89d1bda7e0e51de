package usecase

//go:generate mockgen -source=authenticator.go -destination=../mock/usecase/mock_authenticator.go -package=usecasemock

import (
	"room-booking/internal/domain/user"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/pkg/jwt"
	"room-booking/internal/usecase/shared"
)

var (
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenExpired         = errs.New("token expired")
)

// Authenticator turns a bearer token into the caller's identity for middleware
type Authenticator interface {
	Authenticate(token string) (shared.Identity, error)
}

type authenticatorImpl struct {
	jwtService *jwt.Service
}

func NewAuthenticator(jwtService *jwt.Service) Authenticator {
	return &authenticatorImpl{
		jwtService: jwtService,
	}
}

func (a *authenticatorImpl) Authenticate(token string) (shared.Identity, error) {
	if token == "" {
		return shared.Identity{}, ErrAuthenticationFailed
	}

	claims, err := a.jwtService.ValidateToken(token)
	if err != nil {
		if errs.Is(err, jwt.ErrExpiredToken) {
			return shared.Identity{}, errs.Mark(err, ErrTokenExpired)
		}
		return shared.Identity{}, errs.Mark(err, ErrAuthenticationFailed)
	}

	userID, err := claims.UserID()
	if err != nil {
		return shared.Identity{}, errs.Mark(err, ErrAuthenticationFailed)
	}

	return shared.Identity{
		UserID:      userID,
		Username:    claims.Username,
		DisplayName: claims.DisplayName,
		Roles:       user.RolesFromStrings(claims.Roles),
	}, nil
}
