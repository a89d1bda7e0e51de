package request

type UpdateUserRequest struct {
	DisplayName string `json:"displayName" binding:"required,max=100"`
}
