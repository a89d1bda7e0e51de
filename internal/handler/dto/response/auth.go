package response

import (
	"time"

	"room-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type RegisterResponse struct {
	ID       uuid.UUID `json:"id"`
	UserName string    `json:"userName"`
}

type LoginResponse struct {
	AccessToken string        `json:"accessToken"`
	TokenType   string        `json:"tokenType"`
	ExpiresAt   time.Time     `json:"expiresAt"`
	User        *UserResponse `json:"user"`
}

func FromLoginResult(res *commands.LoginResult) (*LoginResponse, error) {
	user, err := FromUserView(res.User)
	if err != nil {
		return nil, err
	}
	return &LoginResponse{
		AccessToken: res.AccessToken,
		TokenType:   res.TokenType,
		ExpiresAt:   res.ExpiresAt,
		User:        user,
	}, nil
}
