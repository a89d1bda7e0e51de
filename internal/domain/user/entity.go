package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	id           uuid.UUID
	username     Username
	displayName  DisplayName
	passwordHash string
	roles        Roles
	createdAt    time.Time
}

func NewUser(username Username, displayName DisplayName, passwordHash string, roles Roles, now time.Time) *User {
	if roles == nil {
		roles = Roles{}
	}
	return &User{
		id:           uuid.New(),
		username:     username,
		displayName:  displayName,
		passwordHash: passwordHash,
		roles:        roles,
		createdAt:    now,
	}
}

func (u *User) ID() uuid.UUID            { return u.id }
func (u *User) Username() Username       { return u.username }
func (u *User) DisplayName() DisplayName { return u.displayName }
func (u *User) PasswordHash() string     { return u.passwordHash }
func (u *User) Roles() Roles             { return u.roles }
func (u *User) CreatedAt() time.Time     { return u.createdAt }
