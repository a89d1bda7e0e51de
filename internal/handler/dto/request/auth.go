package request

import (
	"room-booking/internal/usecase/commands"
)

type RegisterRequest struct {
	Username    string `json:"username" binding:"required,max=64"`
	Password    string `json:"password" binding:"required,max=72"`
	DisplayName string `json:"displayName" binding:"max=100"`
	IsAdmin     bool   `json:"isAdmin"`
}

func (r RegisterRequest) ToInput() commands.RegisterInput {
	return commands.RegisterInput{
		Username:    r.Username,
		Password:    r.Password,
		DisplayName: r.DisplayName,
		IsAdmin:     r.IsAdmin,
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
