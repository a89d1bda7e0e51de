//go:build unit

package repository_test

import (
	"context"
	"testing"

	"room-booking/internal/domain/room"
	"room-booking/internal/infra"
	"room-booking/internal/infra/repository"
	sqlc "room-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRoomWriteQueries struct {
	mock.Mock
}

func (m *MockRoomWriteQueries) CreateRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRoomParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockRoomWriteQueries) UpdateRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateRoomParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRoomWriteQueries) DeleteRoom(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRoomWriteQueries) RoomExists(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, db, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockRoomWriteQueries) CountRooms(ctx context.Context, db sqlc.DBTX) (int64, error) {
	args := m.Called(ctx, db)
	return args.Get(0).(int64), args.Error(1)
}

func TestRoomRepository_Create(t *testing.T) {
	ctx := context.Background()
	location := "2F"
	r, err := room.NewRoom("R-201", "Blue", 8, &location)
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		q := &MockRoomWriteQueries{}
		db := &mockDBTX{}
		q.On("CreateRoom", ctx, db, sqlc.CreateRoomParams{
			ID:       r.ID(),
			Code:     "R-201",
			Name:     "Blue",
			Capacity: 8,
			Location: pgtype.Text{String: "2F", Valid: true},
		}).Return(nil)

		assert.NoError(t, repository.NewRoomRepository(q, db).Create(ctx, r))
		q.AssertExpectations(t)
	})

	t.Run("duplicate code", func(t *testing.T) {
		q := &MockRoomWriteQueries{}
		db := &mockDBTX{}
		q.On("CreateRoom", ctx, db, mock.Anything).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: infra.ConstraintRoomCodeUnique})

		err := repository.NewRoomRepository(q, db).Create(ctx, r)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
		assert.Equal(t, infra.ConstraintRoomCodeUnique, infra.ConstraintOf(err))
	})
}

func TestRoomRepository_UpdateAndDelete_NotFound(t *testing.T) {
	ctx := context.Background()
	r, err := room.ReconstructRoom(uuid.New(), "R-1", "Red", 4, nil)
	require.NoError(t, err)

	q := &MockRoomWriteQueries{}
	db := &mockDBTX{}
	q.On("UpdateRoom", ctx, db, mock.Anything).Return(int64(0), nil)
	q.On("DeleteRoom", ctx, db, r.ID()).Return(int64(0), nil)
	repo := repository.NewRoomRepository(q, db)

	assert.True(t, infra.IsKind(repo.Update(ctx, r), infra.KindNotFound))
	assert.True(t, infra.IsKind(repo.Delete(ctx, r.ID()), infra.KindNotFound))
}

func TestRoomRepository_ExistsAndCount(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	q := &MockRoomWriteQueries{}
	db := &mockDBTX{}
	q.On("RoomExists", ctx, db, id).Return(false, nil)
	q.On("CountRooms", ctx, db).Return(int64(0), assert.AnError)
	repo := repository.NewRoomRepository(q, db)

	exists, err := repo.Exists(ctx, id)
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = repo.Count(ctx)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}
