package commands

import (
	"context"
	"time"

	"room-booking/internal/infra"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/pkg/jwt"
	"room-booking/internal/pkg/password"
	"room-booking/internal/usecase/queries"
)

type LoginResult struct {
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
	User        *queries.UserView
}

type AuthCommands interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
}

type authCommandsImpl struct {
	readStore  queries.UserReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(readStore queries.UserReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		readStore:  readStore,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, username, plainPassword string) (*LoginResult, error) {
	view, hash, err := a.readStore.FindByUsername(ctx, username)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := password.ComparePassword(hash, plainPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := a.jwtService.GenerateToken(jwt.Subject{
		UserID:      view.ID,
		Username:    view.Username,
		DisplayName: view.DisplayName,
		Roles:       view.Roles,
	})
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		AccessToken: token,
		TokenType:   jwt.TokenType,
		ExpiresAt:   expiresAt,
		User:        view,
	}, nil
}
