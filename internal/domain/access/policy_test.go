//go:build unit

package access_test

import (
	"testing"

	"room-booking/internal/domain/access"
	"room-booking/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCanAccess(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()
	admin := user.Roles{user.RoleAdmin}
	member := user.Roles{"Member"}

	cases := []struct {
		name   string
		caller uuid.UUID
		roles  user.Roles
		target uuid.UUID
		want   bool
	}{
		{name: "owner without roles", caller: owner, roles: nil, target: owner, want: true},
		{name: "owner with other roles", caller: owner, roles: member, target: owner, want: true},
		{name: "non-owner without admin", caller: other, roles: member, target: owner, want: false},
		{name: "non-owner with no roles", caller: other, roles: user.Roles{}, target: owner, want: false},
		{name: "admin on someone else's resource", caller: other, roles: admin, target: owner, want: true},
		{name: "admin on own resource", caller: owner, roles: admin, target: owner, want: true},
		{name: "lowercase admin label is not admin", caller: other, roles: user.Roles{"admin"}, target: owner, want: false},
		{name: "nil caller never matches nil owner", caller: uuid.Nil, roles: nil, target: uuid.Nil, want: false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, access.CanAccess(c.caller, c.roles, c.target))
		})
	}
}
