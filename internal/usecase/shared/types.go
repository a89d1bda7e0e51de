package shared

import (
	"time"

	"room-booking/internal/domain/user"

	"github.com/google/uuid"
)

// Minimal snapshot for command read operations
type BookingSnapshot struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	RoomID      uuid.UUID
	BookingDate time.Time
}

type UserSnapshot struct {
	ID          uuid.UUID
	Username    string
	DisplayName string
	Roles       []string
	CreatedAt   time.Time
}

// Identity is the authenticated caller of an operation.
type Identity struct {
	UserID      uuid.UUID
	Username    string
	DisplayName string
	Roles       user.Roles
}

func (i Identity) IsAdmin() bool {
	return i.Roles.IsAdmin()
}
