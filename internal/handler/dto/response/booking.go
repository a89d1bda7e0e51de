package response

import (
	"time"

	"room-booking/internal/domain/booking"
	"room-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID          uuid.UUID `json:"id"`
	RoomID      uuid.UUID `json:"roomId"`
	RoomName    string    `json:"roomName"`
	UserID      uuid.UUID `json:"userId"`
	UserName    string    `json:"userName"`
	BookingDate string    `json:"bookingDate"`
	Purpose     *string   `json:"purpose"`
	CreatedAt   time.Time `json:"createdAt"`
}

// booking dates leave the service as plain calendar days
var bookingCopyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: time.Time{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				t, ok := src.(time.Time)
				if !ok {
					return nil, booking.ErrInvalidDate
				}
				return booking.FormatDate(t), nil
			},
		},
	},
}

func FromBookingView(v *queries.BookingView) (*BookingResponse, error) {
	var res BookingResponse
	if err := copier.CopyWithOption(&res, v, bookingCopyOption); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromBookingViews(views []*queries.BookingView) ([]*BookingResponse, error) {
	res := make([]*BookingResponse, 0, len(views))
	for _, v := range views {
		item, err := FromBookingView(v)
		if err != nil {
			return nil, err
		}
		res = append(res, item)
	}
	return res, nil
}
