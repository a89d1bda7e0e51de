package request

import (
	"room-booking/internal/domain/booking"
	"room-booking/internal/usecase/commands"
	"room-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

// CreateBookingRequest has no owner field; the owner is always the caller.
type CreateBookingRequest struct {
	RoomID      uuid.UUID `json:"roomId" binding:"required"`
	BookingDate string    `json:"bookingDate" binding:"required"`
	Purpose     *string   `json:"purpose" binding:"omitempty,max=500"`
}

func (r CreateBookingRequest) ToInput() (commands.CreateBookingInput, error) {
	date, err := booking.ParseDate(r.BookingDate)
	if err != nil {
		return commands.CreateBookingInput{}, err
	}
	return commands.CreateBookingInput{
		RoomID:  r.RoomID,
		Date:    date,
		Purpose: r.Purpose,
	}, nil
}

type ListBookingsQuery struct {
	Date   string `form:"date"`
	RoomID string `form:"roomId"`
}

// ToFilter reports the name of the first malformed parameter alongside the error.
func (q ListBookingsQuery) ToFilter() (queries.BookingFilter, string, error) {
	var filter queries.BookingFilter

	if q.Date != "" {
		date, err := booking.ParseDate(q.Date)
		if err != nil {
			return queries.BookingFilter{}, "date", err
		}
		filter.Date = &date
	}

	if q.RoomID != "" {
		roomID, err := uuid.Parse(q.RoomID)
		if err != nil {
			return queries.BookingFilter{}, "roomId", err
		}
		filter.RoomID = &roomID
	}

	return filter, "", nil
}
