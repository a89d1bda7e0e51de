package queries

//go:generate mockgen -destination=../../mock/queries/mock_queries.go -package=queriesmock room-booking/internal/usecase/queries BookingReadStore,BookingQueries,RoomReadStore,RoomQueries,UserReadStore,UserQueries

import (
	"time"

	"github.com/google/uuid"
)

// RoomView represents read-optimized room data
type RoomView struct {
	ID       uuid.UUID `json:"id"`
	Code     string    `json:"code"`
	Name     string    `json:"name"`
	Capacity int       `json:"capacity"`
	Location *string   `json:"location,omitempty"`
}

// BookingView is a booking joined with its room name and owner username
type BookingView struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Username    string    `json:"username"`
	RoomID      uuid.UUID `json:"room_id"`
	RoomName    string    `json:"room_name"`
	BookingDate time.Time `json:"booking_date"`
	Purpose     *string   `json:"purpose,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type UserView struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	Roles       []string  `json:"roles"`
	CreatedAt   time.Time `json:"created_at"`
}

// BookingFilter narrows a booking listing; nil fields are not applied.
type BookingFilter struct {
	Date   *time.Time
	RoomID *uuid.UUID
}
