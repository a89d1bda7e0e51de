//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"room-booking/internal/domain/user"
	"room-booking/internal/infra"
	"room-booking/internal/infra/repository"
	sqlc "room-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserWriteQueries struct {
	mock.Mock
}

func (m *MockUserWriteQueries) CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockUserWriteQueries) UserExistsByUsername(ctx context.Context, db sqlc.DBTX, username string) (bool, error) {
	args := m.Called(ctx, db, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserWriteQueries) UpdateUserDisplayName(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserDisplayNameParams) (sqlc.UpdateUserDisplayNameRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.UpdateUserDisplayNameRow), args.Error(1)
}

func (m *MockUserWriteQueries) DeleteUser(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

func TestUserRepository_Create(t *testing.T) {
	ctx := context.Background()
	username, err := user.NewUsername("alice")
	require.NoError(t, err)
	displayName, err := user.NewDisplayName("Alice")
	require.NoError(t, err)
	u := user.NewUser(username, displayName, "hash", user.Roles{user.RoleAdmin}, time.Now())

	t.Run("success", func(t *testing.T) {
		q := &MockUserWriteQueries{}
		db := &mockDBTX{}
		q.On("CreateUser", ctx, db, mock.MatchedBy(func(p sqlc.CreateUserParams) bool {
			return p.ID == u.ID() && p.Username == "alice" && p.PasswordHash == "hash" &&
				len(p.Roles) == 1 && p.Roles[0] == "Admin"
		})).Return(nil)

		assert.NoError(t, repository.NewUserRepository(q, db).Create(ctx, u))
		q.AssertExpectations(t)
	})

	t.Run("duplicate username", func(t *testing.T) {
		q := &MockUserWriteQueries{}
		db := &mockDBTX{}
		q.On("CreateUser", ctx, db, mock.Anything).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: infra.ConstraintUsernameUnique})

		err := repository.NewUserRepository(q, db).Create(ctx, u)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})
}

func TestUserRepository_UpdateDisplayName(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	name, err := user.NewDisplayName("Bobby")
	require.NoError(t, err)
	params := sqlc.UpdateUserDisplayNameParams{ID: id, DisplayName: "Bobby"}

	t.Run("success", func(t *testing.T) {
		q := &MockUserWriteQueries{}
		db := &mockDBTX{}
		q.On("UpdateUserDisplayName", ctx, db, params).Return(sqlc.UpdateUserDisplayNameRow{
			ID:          id,
			Username:    "bob",
			DisplayName: "Bobby",
			CreatedAt:   pgtype.Timestamptz{Time: time.Now(), Valid: true},
		}, nil)

		snap, err := repository.NewUserRepository(q, db).UpdateDisplayName(ctx, id, name)
		require.NoError(t, err)
		assert.Equal(t, "Bobby", snap.DisplayName)
		assert.Equal(t, []string{}, snap.Roles)
	})

	t.Run("not found", func(t *testing.T) {
		q := &MockUserWriteQueries{}
		db := &mockDBTX{}
		q.On("UpdateUserDisplayName", ctx, db, params).Return(sqlc.UpdateUserDisplayNameRow{}, pgx.ErrNoRows)

		_, err := repository.NewUserRepository(q, db).UpdateDisplayName(ctx, id, name)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestUserRepository_Delete(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	q := &MockUserWriteQueries{}
	db := &mockDBTX{}
	q.On("DeleteUser", ctx, db, id).Return(int64(0), nil)

	err := repository.NewUserRepository(q, db).Delete(ctx, id)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}
