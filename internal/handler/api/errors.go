package api

import (
	"net/http"

	"room-booking/internal/handler/httperr"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type errorMapping struct {
	target error
	status int
	msg    string
}

// first match wins; anything unmatched is a 500 with a generic message
var errorMappings = []errorMapping{
	{target: commands.ErrDomainValidation, status: http.StatusBadRequest, msg: "Validation failed"},
	{target: commands.ErrInvalidCredentials, status: http.StatusUnauthorized, msg: "Invalid username or password"},
	{target: commands.ErrCallerGone, status: http.StatusUnauthorized, msg: "Account no longer exists"},
	{target: errs.ErrForbidden, status: http.StatusForbidden, msg: "Forbidden"},
	{target: errs.ErrRoomNotFound, status: http.StatusNotFound, msg: "Room not found"},
	{target: errs.ErrBookingNotFound, status: http.StatusNotFound, msg: "Booking not found"},
	{target: errs.ErrUserNotFound, status: http.StatusNotFound, msg: "User not found"},
	{target: errs.ErrBookingConflict, status: http.StatusConflict, msg: "Room is already booked on this date"},
	{target: errs.ErrDuplicateRoomCode, status: http.StatusConflict, msg: "Room code already exists"},
	{target: errs.ErrDuplicateUsername, status: http.StatusConflict, msg: "Username already exists"},
}

func abortWithUseCaseError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if !errs.Is(err, m.target) {
			continue
		}
		var details []string
		if m.status == http.StatusBadRequest {
			details = []string{err.Error()}
		}
		httperr.AbortWithError(c, m.status, err, m.msg, details)
		return
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}

func abortWithBindError(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", httperr.ValidationMessages(err))
}

func abortUnauthenticated(c *gin.Context) {
	httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
}

func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", []string{"path parameter id must be a UUID"})
		return uuid.Nil, false
	}
	return id, true
}
