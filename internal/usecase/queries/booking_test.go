//go:build unit

package queries_test

import (
	"context"
	"testing"

	"room-booking/internal/infra"
	queriesmock "room-booking/internal/mock/queries"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestBookingQueries_GetByID_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	rs := queriesmock.NewMockBookingReadStore(ctrl)
	id := uuid.New()
	rs.EXPECT().FindByID(gomock.Any(), id).Return(nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound))

	_, err := queries.NewBookingQueries(rs).GetByID(context.Background(), id)
	assert.True(t, errs.Is(err, errs.ErrBookingNotFound))
}

func TestRoomQueries_GetByID_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	rs := queriesmock.NewMockRoomReadStore(ctrl)
	id := uuid.New()
	rs.EXPECT().FindByID(gomock.Any(), id).Return(nil, infra.WrapRepoErr("room not found", nil, infra.KindNotFound))

	_, err := queries.NewRoomQueries(rs).GetByID(context.Background(), id)
	assert.True(t, errs.Is(err, errs.ErrRoomNotFound))
}

func TestBookingQueries_ListPassesFilterThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	rs := queriesmock.NewMockBookingReadStore(ctrl)
	roomID := uuid.New()
	filter := queries.BookingFilter{RoomID: &roomID}
	rs.EXPECT().List(gomock.Any(), filter).Return([]*queries.BookingView{}, nil)

	got, err := queries.NewBookingQueries(rs).List(context.Background(), filter)
	assert.NoError(t, err)
	assert.Empty(t, got)
}
