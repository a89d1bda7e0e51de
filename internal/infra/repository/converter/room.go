package converter

import (
	"room-booking/internal/domain/room"
	sqlc "room-booking/internal/infra/sqlc/generated"
	"room-booking/internal/pkg/pgconv"
)

func RoomToCreateParams(r *room.Room) sqlc.CreateRoomParams {
	return sqlc.CreateRoomParams{
		ID:       r.ID(),
		Code:     r.Code(),
		Name:     r.Name(),
		Capacity: pgconv.IntToInt32(r.Capacity()),
		Location: pgconv.StringPtrToPgtype(r.Location()),
	}
}

func RoomToUpdateParams(r *room.Room) sqlc.UpdateRoomParams {
	return sqlc.UpdateRoomParams{
		ID:       r.ID(),
		Code:     r.Code(),
		Name:     r.Name(),
		Capacity: pgconv.IntToInt32(r.Capacity()),
		Location: pgconv.StringPtrToPgtype(r.Location()),
	}
}
