package readstore

import (
	"context"

	"room-booking/internal/infra"
	sqlc "room-booking/internal/infra/sqlc/generated"
	"room-booking/internal/pkg/pgconv"
	"room-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadQueries interface {
	ListUsers(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListUsersRow, error)
	FindUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.FindUserByIDRow, error)
	FindUserByUsername(ctx context.Context, db sqlc.DBTX, username string) (sqlc.Users, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries UserReadQueries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) List(ctx context.Context) ([]*queries.UserView, error) {
	rows, err := r.queries.ListUsers(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}

	views := make([]*queries.UserView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toUserView(sqlc.FindUserByIDRow(row)))
	}
	return views, nil
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	row, err := r.queries.FindUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return toUserView(row), nil
}

// FindByUsername also returns the password hash for credential checks.
func (r *UserReadStore) FindByUsername(ctx context.Context, username string) (*queries.UserView, string, error) {
	row, err := r.queries.FindUserByUsername(ctx, r.db, username)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by username", err)
	}

	view := toUserView(sqlc.FindUserByIDRow{
		ID:          row.ID,
		Username:    row.Username,
		DisplayName: row.DisplayName,
		Roles:       row.Roles,
		CreatedAt:   row.CreatedAt,
	})
	return view, row.PasswordHash, nil
}

func toUserView(row sqlc.FindUserByIDRow) *queries.UserView {
	roles := row.Roles
	if roles == nil {
		roles = []string{}
	}
	return &queries.UserView{
		ID:          row.ID,
		Username:    row.Username,
		DisplayName: row.DisplayName,
		Roles:       roles,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
