package request

import (
	"room-booking/internal/usecase/commands"
)

// RoomRequest is used for both create and full-replace update.
type RoomRequest struct {
	Code     string  `json:"code" binding:"required,max=50"`
	Name     string  `json:"name" binding:"required,max=255"`
	Capacity int     `json:"capacity" binding:"gte=0,lte=2147483647"`
	Location *string `json:"location" binding:"omitempty,max=255"`
}

func (r RoomRequest) ToInput() commands.RoomInput {
	return commands.RoomInput{
		Code:     r.Code,
		Name:     r.Name,
		Capacity: r.Capacity,
		Location: r.Location,
	}
}
