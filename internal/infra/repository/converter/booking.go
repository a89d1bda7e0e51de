package converter

import (
	"room-booking/internal/domain/booking"
	sqlc "room-booking/internal/infra/sqlc/generated"
	"room-booking/internal/pkg/pgconv"
	"room-booking/internal/usecase/shared"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	return sqlc.CreateBookingParams{
		ID:          b.ID(),
		UserID:      b.UserID(),
		RoomID:      b.RoomID(),
		BookingDate: pgconv.DateToPgtype(b.BookingDate()),
		Purpose:     pgconv.StringPtrToPgtype(b.Purpose()),
		CreatedAt:   pgconv.TimeToPgtype(b.CreatedAt()),
	}
}

func BookingSlotToParams(slot booking.Slot) sqlc.BookingExistsForSlotParams {
	return sqlc.BookingExistsForSlotParams{
		RoomID:      slot.RoomID,
		BookingDate: pgconv.DateToPgtype(slot.Date),
	}
}

func BookingSnapshotFromRow(row sqlc.FindBookingByIDForUpdateRow) *shared.BookingSnapshot {
	return &shared.BookingSnapshot{
		ID:          row.ID,
		UserID:      row.UserID,
		RoomID:      row.RoomID,
		BookingDate: pgconv.DateFromPgtype(row.BookingDate),
	}
}
