package repository

import (
	"context"

	"room-booking/internal/domain/user"
	"room-booking/internal/infra"
	"room-booking/internal/infra/repository/converter"
	sqlc "room-booking/internal/infra/sqlc/generated"
	"room-booking/internal/pkg/pgconv"
	"room-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) error
	UserExistsByUsername(ctx context.Context, db sqlc.DBTX, username string) (bool, error)
	UpdateUserDisplayName(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserDisplayNameParams) (sqlc.UpdateUserDisplayNameRow, error)
	DeleteUser(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type UserRepository struct {
	queries UserWriteQueries
	db      sqlc.DBTX
}

func NewUserRepository(queries UserWriteQueries, db sqlc.DBTX) *UserRepository {
	return &UserRepository{
		queries: queries,
		db:      db,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	if err := r.queries.CreateUser(ctx, r.db, converter.UserToCreateParams(u)); err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	exists, err := r.queries.UserExistsByUsername(ctx, r.db, username)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check username", err)
	}
	return exists, nil
}

func (r *UserRepository) UpdateDisplayName(ctx context.Context, id uuid.UUID, displayName user.DisplayName) (*shared.UserSnapshot, error) {
	row, err := r.queries.UpdateUserDisplayName(ctx, r.db, sqlc.UpdateUserDisplayNameParams{
		ID:          id,
		DisplayName: displayName.Value(),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update user", err)
	}
	return converter.UserSnapshotFromUpdateRow(row), nil
}

// Delete removes the user; their bookings go with them through ON DELETE CASCADE.
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.queries.DeleteUser(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete user", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
