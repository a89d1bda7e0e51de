//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"room-booking/internal/domain/booking"
	"room-booking/internal/domain/user"
	"room-booking/internal/infra"
	queriesmock "room-booking/internal/mock/queries"
	"room-booking/internal/pkg/clock"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/commands"
	"room-booking/internal/usecase/queries"
	"room-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)

func TestBookingCommands_Create(t *testing.T) {
	ctx := context.Background()
	actor := shared.Identity{UserID: uuid.New(), Username: "alice"}
	roomID := uuid.New()
	day := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	slotViolation := infra.WrapRepoErr("failed to create booking",
		&pgconn.PgError{Code: "23505", ConstraintName: infra.ConstraintBookingSlot})
	roomFKViolation := infra.WrapRepoErr("failed to create booking",
		&pgconn.PgError{Code: "23503", ConstraintName: infra.ConstraintBookingRoomFK})
	userFKViolation := infra.WrapRepoErr("failed to create booking",
		&pgconn.PgError{Code: "23503", ConstraintName: infra.ConstraintBookingUserFK})

	testCases := []struct {
		name    string
		input   commands.CreateBookingInput
		setup   func(m *txMocks, q *queriesmock.MockBookingQueries)
		wantErr error
	}{
		{
			name:  "success: owner is the actor and the date is normalized",
			input: commands.CreateBookingInput{RoomID: roomID, Date: time.Date(2025, 3, 1, 23, 0, 0, 0, time.UTC)},
			setup: func(m *txMocks, q *queriesmock.MockBookingQueries) {
				m.rooms.EXPECT().Exists(gomock.Any(), roomID).Return(true, nil)
				m.bookings.EXPECT().ExistsForSlot(gomock.Any(), booking.Slot{RoomID: roomID, Date: day}).Return(false, nil)
				m.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b *booking.Booking) error {
					assert.Equal(t, actor.UserID, b.UserID())
					assert.Equal(t, day, b.BookingDate())
					return nil
				})
				q.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(&queries.BookingView{UserID: actor.UserID, BookingDate: day}, nil)
			},
		},
		{
			name:  "error: unknown room",
			input: commands.CreateBookingInput{RoomID: roomID, Date: day},
			setup: func(m *txMocks, _ *queriesmock.MockBookingQueries) {
				m.rooms.EXPECT().Exists(gomock.Any(), roomID).Return(false, nil)
			},
			wantErr: errs.ErrRoomNotFound,
		},
		{
			name:  "error: slot already booked",
			input: commands.CreateBookingInput{RoomID: roomID, Date: day},
			setup: func(m *txMocks, _ *queriesmock.MockBookingQueries) {
				m.rooms.EXPECT().Exists(gomock.Any(), roomID).Return(true, nil)
				m.bookings.EXPECT().ExistsForSlot(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr: errs.ErrBookingConflict,
		},
		{
			name:  "error: racing insert loses on the unique constraint",
			input: commands.CreateBookingInput{RoomID: roomID, Date: day},
			setup: func(m *txMocks, _ *queriesmock.MockBookingQueries) {
				m.rooms.EXPECT().Exists(gomock.Any(), roomID).Return(true, nil)
				m.bookings.EXPECT().ExistsForSlot(gomock.Any(), gomock.Any()).Return(false, nil)
				m.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(slotViolation)
			},
			wantErr: errs.ErrBookingConflict,
		},
		{
			name:  "error: room deleted between check and insert",
			input: commands.CreateBookingInput{RoomID: roomID, Date: day},
			setup: func(m *txMocks, _ *queriesmock.MockBookingQueries) {
				m.rooms.EXPECT().Exists(gomock.Any(), roomID).Return(true, nil)
				m.bookings.EXPECT().ExistsForSlot(gomock.Any(), gomock.Any()).Return(false, nil)
				m.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(roomFKViolation)
			},
			wantErr: errs.ErrRoomNotFound,
		},
		{
			name:  "error: caller deleted while the token is still valid",
			input: commands.CreateBookingInput{RoomID: roomID, Date: day},
			setup: func(m *txMocks, _ *queriesmock.MockBookingQueries) {
				m.rooms.EXPECT().Exists(gomock.Any(), roomID).Return(true, nil)
				m.bookings.EXPECT().ExistsForSlot(gomock.Any(), gomock.Any()).Return(false, nil)
				m.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(userFKViolation)
			},
			wantErr: commands.ErrCallerGone,
		},
		{
			name:    "error: missing date",
			input:   commands.CreateBookingInput{RoomID: roomID},
			setup:   func(*txMocks, *queriesmock.MockBookingQueries) {},
			wantErr: commands.ErrDomainValidation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := newTxMocks(ctrl)
			q := queriesmock.NewMockBookingQueries(ctrl)
			tc.setup(m, q)

			cmd := commands.NewBookingCommands(m.uow, q, clock.NewMockClock(testNow))
			view, err := cmd.Create(ctx, tc.input, actor)

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.wantErr), "expected %v, got %v", tc.wantErr, err)
				assert.Nil(t, view)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, actor.UserID, view.UserID)
		})
	}
}

func TestBookingCommands_Cancel(t *testing.T) {
	ctx := context.Background()
	bookingID := uuid.New()
	owner := uuid.New()
	snapshot := &shared.BookingSnapshot{ID: bookingID, UserID: owner, RoomID: uuid.New()}

	testCases := []struct {
		name    string
		actor   shared.Identity
		setup   func(m *txMocks)
		wantErr error
	}{
		{
			name:  "owner cancels",
			actor: shared.Identity{UserID: owner},
			setup: func(m *txMocks) {
				m.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), bookingID).Return(snapshot, nil)
				m.bookings.EXPECT().Delete(gomock.Any(), bookingID).Return(nil)
			},
		},
		{
			name:  "admin cancels someone else's booking",
			actor: shared.Identity{UserID: uuid.New(), Roles: user.Roles{user.RoleAdmin}},
			setup: func(m *txMocks) {
				m.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), bookingID).Return(snapshot, nil)
				m.bookings.EXPECT().Delete(gomock.Any(), bookingID).Return(nil)
			},
		},
		{
			name:  "other user is forbidden",
			actor: shared.Identity{UserID: uuid.New()},
			setup: func(m *txMocks) {
				m.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), bookingID).Return(snapshot, nil)
			},
			wantErr: errs.ErrForbidden,
		},
		{
			name:  "role labels are case-sensitive",
			actor: shared.Identity{UserID: uuid.New(), Roles: user.Roles{"admin"}},
			setup: func(m *txMocks) {
				m.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), bookingID).Return(snapshot, nil)
			},
			wantErr: errs.ErrForbidden,
		},
		{
			name:  "missing booking",
			actor: shared.Identity{UserID: owner},
			setup: func(m *txMocks) {
				m.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), bookingID).
					Return(nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound))
			},
			wantErr: errs.ErrBookingNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := newTxMocks(ctrl)
			tc.setup(m)

			cmd := commands.NewBookingCommands(m.uow, queriesmock.NewMockBookingQueries(ctrl), clock.NewMockClock(testNow))
			err := cmd.Cancel(ctx, bookingID, tc.actor)

			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errs.Is(err, tc.wantErr), "expected %v, got %v", tc.wantErr, err)
		})
	}
}
