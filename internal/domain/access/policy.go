// Package access holds the single ownership rule shared by bookings and user records.
package access

import (
	"room-booking/internal/domain/user"

	"github.com/google/uuid"
)

// CanAccess reports whether the caller may act on a resource owned by targetOwnerID:
// admins always may, everyone else only on their own resources.
func CanAccess(callerUserID uuid.UUID, callerRoles user.Roles, targetOwnerID uuid.UUID) bool {
	if callerRoles.IsAdmin() {
		return true
	}
	return callerUserID != uuid.Nil && callerUserID == targetOwnerID
}
