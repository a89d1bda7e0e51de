package user

import "strings"

type Role string

const RoleAdmin Role = "Admin"

func (r Role) String() string {
	return string(r)
}

func NewRole(s string) (Role, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrInvalidRole
	}
	return Role(s), nil
}

// Roles is the set of role labels carried by an identity.
type Roles []Role

func RolesFromStrings(ss []string) Roles {
	roles := make(Roles, 0, len(ss))
	for _, s := range ss {
		if r, err := NewRole(s); err == nil {
			roles = append(roles, r)
		}
	}
	return roles
}

// Has compares labels case-sensitively, matching how role claims are issued.
func (rs Roles) Has(role Role) bool {
	for _, r := range rs {
		if r == role {
			return true
		}
	}
	return false
}

func (rs Roles) IsAdmin() bool {
	return rs.Has(RoleAdmin)
}

func (rs Roles) Strings() []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.String()
	}
	return out
}
