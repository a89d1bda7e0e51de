package response

import (
	"room-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RoomResponse struct {
	ID       uuid.UUID `json:"id"`
	Code     string    `json:"code"`
	Name     string    `json:"name"`
	Capacity int       `json:"capacity"`
	Location *string   `json:"location"`
}

func FromRoomView(v *queries.RoomView) (*RoomResponse, error) {
	var res RoomResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromRoomViews(views []*queries.RoomView) ([]*RoomResponse, error) {
	res := make([]*RoomResponse, 0, len(views))
	for _, v := range views {
		item, err := FromRoomView(v)
		if err != nil {
			return nil, err
		}
		res = append(res, item)
	}
	return res, nil
}
