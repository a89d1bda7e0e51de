package readstore

import (
	"context"
	"time"

	"room-booking/internal/domain/booking"
	"room-booking/internal/infra"
	sqlc "room-booking/internal/infra/sqlc/generated"
	"room-booking/internal/pkg/pgconv"
	"room-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingReadQueries interface {
	ListBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsParams) ([]sqlc.ListBookingsRow, error)
	FindBookingViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.FindBookingViewByIDRow, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) List(ctx context.Context, filter queries.BookingFilter) ([]*queries.BookingView, error) {
	var date *time.Time
	if filter.Date != nil {
		d := booking.NormalizeDate(*filter.Date)
		date = &d
	}

	rows, err := r.queries.ListBookings(ctx, r.db, sqlc.ListBookingsParams{
		BookingDate: pgconv.DatePtrToPgtype(date),
		RoomID:      pgconv.UUIDPtrToPgtype(filter.RoomID),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}

	views := make([]*queries.BookingView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toBookingView(sqlc.FindBookingViewByIDRow(row)))
	}
	return views, nil
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.FindBookingViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return toBookingView(row), nil
}

func toBookingView(row sqlc.FindBookingViewByIDRow) *queries.BookingView {
	return &queries.BookingView{
		ID:          row.ID,
		UserID:      row.UserID,
		Username:    row.Username,
		RoomID:      row.RoomID,
		RoomName:    row.RoomName,
		BookingDate: pgconv.DateFromPgtype(row.BookingDate),
		Purpose:     pgconv.StringPtrFromPgtype(row.Purpose),
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
