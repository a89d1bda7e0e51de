package commands

//go:generate mockgen -destination=../../mock/commands/mock_commands.go -package=commandsmock room-booking/internal/usecase/commands AuthCommands,BookingCommands,RoomCommands,UserCommands

import (
	"room-booking/internal/pkg/errs"
)

var (
	ErrDomainValidation   = errs.New("domain validation error")
	ErrInvalidCredentials = errs.New("invalid username or password")
	ErrTokenGeneration    = errs.New("token generation failed")
	ErrPasswordHashing    = errs.New("password hashing failed")
	ErrCallerGone         = errs.New("authenticated user no longer exists")
)
