package repository

import (
	"context"

	"room-booking/internal/domain/room"
	"room-booking/internal/infra"
	"room-booking/internal/infra/repository/converter"
	sqlc "room-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type RoomWriteQueries interface {
	CreateRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRoomParams) error
	UpdateRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateRoomParams) (int64, error)
	DeleteRoom(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	RoomExists(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (bool, error)
	CountRooms(ctx context.Context, db sqlc.DBTX) (int64, error)
}

type RoomRepository struct {
	queries RoomWriteQueries
	db      sqlc.DBTX
}

func NewRoomRepository(queries RoomWriteQueries, db sqlc.DBTX) *RoomRepository {
	return &RoomRepository{
		queries: queries,
		db:      db,
	}
}

func (r *RoomRepository) Create(ctx context.Context, rm *room.Room) error {
	if err := r.queries.CreateRoom(ctx, r.db, converter.RoomToCreateParams(rm)); err != nil {
		return infra.WrapRepoErr("failed to create room", err)
	}
	return nil
}

func (r *RoomRepository) Update(ctx context.Context, rm *room.Room) error {
	affected, err := r.queries.UpdateRoom(ctx, r.db, converter.RoomToUpdateParams(rm))
	if err != nil {
		return infra.WrapRepoErr("failed to update room", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}

// Delete removes the room; its bookings go with it through ON DELETE CASCADE.
func (r *RoomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.queries.DeleteRoom(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete room", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RoomRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	exists, err := r.queries.RoomExists(ctx, r.db, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check room", err)
	}
	return exists, nil
}

func (r *RoomRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.queries.CountRooms(ctx, r.db)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count rooms", err)
	}
	return n, nil
}
