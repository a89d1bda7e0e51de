package commands

import (
	"context"
	"log/slog"
	"time"

	"room-booking/internal/domain/access"
	"room-booking/internal/domain/booking"
	"room-booking/internal/infra"
	"room-booking/internal/pkg/clock"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/queries"
	"room-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateBookingInput struct {
	RoomID  uuid.UUID
	Date    time.Time
	Purpose *string
}

type BookingCommands interface {
	// Create books the room for the actor; the owner is never taken from the input.
	Create(ctx context.Context, in CreateBookingInput, actor shared.Identity) (*queries.BookingView, error)
	Cancel(ctx context.Context, bookingID uuid.UUID, actor shared.Identity) error
}

type bookingCommandsImpl struct {
	uow            shared.UnitOfWork
	bookingQueries queries.BookingQueries
	clock          clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, bookingQueries queries.BookingQueries, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{
		uow:            uow,
		bookingQueries: bookingQueries,
		clock:          clk,
	}
}

func (c *bookingCommandsImpl) Create(ctx context.Context, in CreateBookingInput, actor shared.Identity) (*queries.BookingView, error) {
	b, err := booking.NewBooking(in.RoomID, actor.UserID, in.Date, in.Purpose, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		exists, derr := tx.Rooms().Exists(ctx, b.RoomID())
		if derr != nil {
			return derr
		}
		if !exists {
			return errs.ErrRoomNotFound
		}

		taken, derr := tx.Bookings().ExistsForSlot(ctx, b.Slot())
		if derr != nil {
			return derr
		}
		if taken {
			return errs.ErrBookingConflict
		}

		return tx.Bookings().Create(ctx, b)
	})
	if err != nil {
		return nil, translateBookingWriteErr(err)
	}

	slog.Info("booking created",
		"booking_id", b.ID().String(),
		"room_id", b.RoomID().String(),
		"user_id", b.UserID().String(),
		"date", booking.FormatDate(b.BookingDate()))

	return c.bookingQueries.GetByID(ctx, b.ID())
}

func (c *bookingCommandsImpl) Cancel(ctx context.Context, bookingID uuid.UUID, actor shared.Identity) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Bookings().FindByIDForUpdate(ctx, bookingID)
		if derr != nil {
			return derr
		}
		if !access.CanAccess(actor.UserID, actor.Roles, snap.UserID) {
			return errs.ErrForbidden
		}
		return tx.Bookings().Delete(ctx, bookingID)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrBookingNotFound)
		}
		return err
	}

	slog.Info("booking cancelled", "booking_id", bookingID.String(), "actor_id", actor.UserID.String())
	return nil
}

// A racing insert that loses on the slot constraint ends up here as DUPLICATE_KEY.
func translateBookingWriteErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindDuplicateKey):
		return errs.Mark(err, errs.ErrBookingConflict)
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		if infra.ConstraintOf(err) == infra.ConstraintBookingUserFK {
			return errs.Mark(err, ErrCallerGone)
		}
		return errs.Mark(err, errs.ErrRoomNotFound)
	default:
		return err
	}
}
