//go:build unit

package commands_test

import (
	"context"

	sharedmock "room-booking/internal/mock/shared"
	"room-booking/internal/usecase/shared"

	"go.uber.org/mock/gomock"
)

type txMocks struct {
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	bookings *sharedmock.MockBookingRepository
	rooms    *sharedmock.MockRoomRepository
	users    *sharedmock.MockUserRepository
}

// newTxMocks wires a unit of work whose Within runs fn against the mocked repositories.
func newTxMocks(ctrl *gomock.Controller) *txMocks {
	m := &txMocks{
		uow:      sharedmock.NewMockUnitOfWork(ctrl),
		tx:       sharedmock.NewMockTx(ctrl),
		bookings: sharedmock.NewMockBookingRepository(ctrl),
		rooms:    sharedmock.NewMockRoomRepository(ctrl),
		users:    sharedmock.NewMockUserRepository(ctrl),
	}
	m.tx.EXPECT().Bookings().Return(m.bookings).AnyTimes()
	m.tx.EXPECT().Rooms().Return(m.rooms).AnyTimes()
	m.tx.EXPECT().Users().Return(m.users).AnyTimes()
	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		}).AnyTimes()
	return m
}
