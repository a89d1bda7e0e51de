package converter

import (
	"room-booking/internal/domain/user"
	sqlc "room-booking/internal/infra/sqlc/generated"
	"room-booking/internal/pkg/pgconv"
	"room-booking/internal/usecase/shared"
)

func UserToCreateParams(u *user.User) sqlc.CreateUserParams {
	return sqlc.CreateUserParams{
		ID:           u.ID(),
		Username:     u.Username().Value(),
		DisplayName:  u.DisplayName().Value(),
		PasswordHash: u.PasswordHash(),
		Roles:        u.Roles().Strings(),
		CreatedAt:    pgconv.TimeToPgtype(u.CreatedAt()),
	}
}

func UserSnapshotFromUpdateRow(row sqlc.UpdateUserDisplayNameRow) *shared.UserSnapshot {
	roles := row.Roles
	if roles == nil {
		roles = []string{}
	}
	return &shared.UserSnapshot{
		ID:          row.ID,
		Username:    row.Username,
		DisplayName: row.DisplayName,
		Roles:       roles,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
