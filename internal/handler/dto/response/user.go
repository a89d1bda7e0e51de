package response

import (
	"room-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	UserName    string    `json:"userName"`
	DisplayName string    `json:"displayName"`
	Roles       []string  `json:"roles"`
}

func FromUserView(v *queries.UserView) (*UserResponse, error) {
	var res UserResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	if res.Roles == nil {
		res.Roles = []string{}
	}
	return &res, nil
}

func FromUserViews(views []*queries.UserView) ([]*UserResponse, error) {
	res := make([]*UserResponse, 0, len(views))
	for _, v := range views {
		item, err := FromUserView(v)
		if err != nil {
			return nil, err
		}
		res = append(res, item)
	}
	return res, nil
}
