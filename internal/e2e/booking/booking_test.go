//go:build e2e

package booking_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	nethttptest "net/http/httptest"
	"sync"
	"testing"

	"room-booking/internal/domain/user"
	"room-booking/internal/e2e"
	resdto "room-booking/internal/handler/dto/response"
	"room-booking/internal/testutil/authtest"
	"room-booking/internal/testutil/dbtest"
	"room-booking/internal/testutil/httptest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL = "/api/v1/bookings"
	roomsURL    = "/api/v1/rooms"
	usersURL    = "/api/v1/users"
)

type bookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

func (s *bookingSuite) createBooking(token string, roomID uuid.UUID, date, purpose string) *nethttptest.ResponseRecorder {
	body := map[string]any{"roomId": roomID, "bookingDate": date}
	if purpose != "" {
		body["purpose"] = purpose
	}
	return httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, body, token)
}

func (s *bookingSuite) listBookings(token, query string) []resdto.BookingResponse {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, bookingsURL+query, nil, token)
	var res []resdto.BookingResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
	return res
}

func (s *bookingSuite) TestCreateAndCancelScenario() {
	s.Run("second caller conflicts until the first cancels", func() {
		t := s.T()
		r1 := dbtest.CreateTestRoom(t, s.DB, "R1", "Room One")
		aliceID, alice := authtest.CreateAndLogin(t, s.DB, s.Router, "alice")
		bobID, bob := authtest.CreateAndLogin(t, s.DB, s.Router, "bob")

		w := s.createBooking(alice, r1, "2025-03-01", "sync")
		var b1 resdto.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &b1)
		s.Equal(aliceID, b1.UserID)

		w = s.createBooking(bob, r1, "2025-03-01", "standup")
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "")
		s.Equal(1, dbtest.CountBookings(t, s.DB, r1, "2025-03-01"))

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, bookingsURL+"/"+b1.ID.String(), nil, alice)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		w = s.createBooking(bob, r1, "2025-03-01", "standup")
		var b2 resdto.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &b2)
		s.Equal(bobID, b2.UserID)

		listed := s.listBookings(alice, "?roomId="+r1.String()+"&date=2025-03-01")
		require.Len(t, listed, 1)
		s.Equal(b2.ID, listed[0].ID)
		s.Equal("standup", *listed[0].Purpose)
		s.Equal("bob", listed[0].UserName)
		s.Equal("Room One", listed[0].RoomName)
	})
}

func (s *bookingSuite) TestSlotUniqueness() {
	s.Run("concurrent creates on one slot: exactly one wins", func() {
		t := s.T()
		roomID := dbtest.CreateTestRoom(t, s.DB, "R-RACE", "Race Room")
		_, token := authtest.CreateAndLogin(t, s.DB, s.Router, "racer")

		payload, err := json.Marshal(map[string]any{"roomId": roomID, "bookingDate": "2025-04-01"})
		require.NoError(t, err)

		const callers = 10
		codes := make([]int, callers)
		var wg sync.WaitGroup
		for i := range callers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				req := nethttptest.NewRequest(http.MethodPost, bookingsURL, bytes.NewReader(payload))
				req.Header.Set("Content-Type", "application/json")
				req.Header.Set("Authorization", "Bearer "+token)
				w := nethttptest.NewRecorder()
				s.Router.ServeHTTP(w, req)
				codes[i] = w.Code
			}()
		}
		wg.Wait()

		created, conflicted := 0, 0
		for _, code := range codes {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
				conflicted++
			}
		}
		s.Equal(1, created, "codes: %v", codes)
		s.Equal(callers-1, conflicted, "codes: %v", codes)
		s.Equal(1, dbtest.CountBookings(t, s.DB, roomID, "2025-04-01"))
	})

	s.Run("times of day collapse to the same slot", func() {
		t := s.T()
		roomID := dbtest.CreateTestRoom(t, s.DB, "R-DAY", "Day Room")
		_, token := authtest.CreateAndLogin(t, s.DB, s.Router, "early")

		w := s.createBooking(token, roomID, "2025-01-10T09:00:00", "")
		var res resdto.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
		s.Equal("2025-01-10", res.BookingDate)

		w = s.createBooking(token, roomID, "2025-01-10T23:00:00", "")
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "")
		s.Equal(1, dbtest.CountBookings(t, s.DB, roomID, "2025-01-10"))
	})

	s.Run("same day in another room is free", func() {
		t := s.T()
		a := dbtest.CreateTestRoom(t, s.DB, "R-A", "A")
		b := dbtest.CreateTestRoom(t, s.DB, "R-B", "B")
		_, token := authtest.CreateAndLogin(t, s.DB, s.Router, "multi")

		s.Equal(http.StatusCreated, s.createBooking(token, a, "2025-05-05", "").Code)
		s.Equal(http.StatusCreated, s.createBooking(token, b, "2025-05-05", "").Code)
	})

	s.Run("unknown room: 404", func() {
		_, token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "lost")
		w := s.createBooking(token, uuid.New(), "2025-05-05", "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Room not found")
	})
}

func (s *bookingSuite) TestOwnership() {
	s.Run("owner in the body is ignored", func() {
		t := s.T()
		roomID := dbtest.CreateTestRoom(t, s.DB, "R-OWN", "Own")
		aliceID, alice := authtest.CreateAndLogin(t, s.DB, s.Router, "alice")
		bobID := dbtest.CreateTestUser(t, s.DB, "bob")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			map[string]any{"roomId": roomID, "bookingDate": "2025-06-01", "userId": bobID}, alice)

		var res resdto.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
		s.Equal(aliceID, res.UserID)
	})

	s.Run("cancel: owner, stranger and admin", func() {
		t := s.T()
		roomID := dbtest.CreateTestRoom(t, s.DB, "R-CXL", "Cancel")
		_, alice := authtest.CreateAndLogin(t, s.DB, s.Router, "alice")
		_, bob := authtest.CreateAndLogin(t, s.DB, s.Router, "bob")
		_, admin := authtest.CreateAndLogin(t, s.DB, s.Router, "root", string(user.RoleAdmin))

		var first, second resdto.BookingResponse
		httptest.AssertSuccessResponse(t, s.createBooking(alice, roomID, "2025-07-01", ""), http.StatusCreated, &first)
		httptest.AssertSuccessResponse(t, s.createBooking(alice, roomID, "2025-07-02", ""), http.StatusCreated, &second)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, bookingsURL+"/"+first.ID.String(), nil, bob)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "")
		s.Equal(1, dbtest.CountBookings(t, s.DB, roomID, "2025-07-01"))

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, bookingsURL+"/"+first.ID.String(), nil, alice)
		s.Equal(http.StatusNoContent, w.Code)
		s.Empty(s.listBookings(alice, "?date=2025-07-01"))

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, bookingsURL+"/"+second.ID.String(), nil, admin)
		s.Equal(http.StatusNoContent, w.Code)
		s.Equal(0, dbtest.CountRows(t, s.DB, "bookings"))

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, bookingsURL+"/"+second.ID.String(), nil, admin)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "")
	})

	s.Run("everyone sees every booking", func() {
		t := s.T()
		roomID := dbtest.CreateTestRoom(t, s.DB, "R-VIS", "Visible")
		_, alice := authtest.CreateAndLogin(t, s.DB, s.Router, "alice")
		_, bob := authtest.CreateAndLogin(t, s.DB, s.Router, "bob")

		s.Equal(http.StatusCreated, s.createBooking(alice, roomID, "2025-08-01", "private sync").Code)

		listed := s.listBookings(bob, "")
		require.Len(t, listed, 1)
		s.Equal("private sync", *listed[0].Purpose)
	})
}

func (s *bookingSuite) TestListOrder() {
	s.Run("newest booking date first", func() {
		t := s.T()
		roomID := dbtest.CreateTestRoom(t, s.DB, "R-ORD", "Ordered")
		other := dbtest.CreateTestRoom(t, s.DB, "R-ORD-2", "Ordered Too")
		_, token := authtest.CreateAndLogin(t, s.DB, s.Router, "alice")

		s.Equal(http.StatusCreated, s.createBooking(token, roomID, "2025-02-10", "").Code)
		s.Equal(http.StatusCreated, s.createBooking(token, roomID, "2025-12-01", "").Code)
		s.Equal(http.StatusCreated, s.createBooking(token, other, "2025-06-15", "").Code)

		listed := s.listBookings(token, "")
		require.Len(t, listed, 3)
		dates := []string{listed[0].BookingDate, listed[1].BookingDate, listed[2].BookingDate}
		s.Equal([]string{"2025-12-01", "2025-06-15", "2025-02-10"}, dates)

		listed = s.listBookings(token, "?roomId="+roomID.String())
		require.Len(t, listed, 2)
		s.Equal("2025-12-01", listed[0].BookingDate)
		s.Equal("2025-02-10", listed[1].BookingDate)
	})
}

func (s *bookingSuite) TestCascade() {
	s.Run("deleting a room removes its bookings", func() {
		t := s.T()
		roomID := dbtest.CreateTestRoom(t, s.DB, "R-DEL", "Doomed")
		_, token := authtest.CreateAndLogin(t, s.DB, s.Router, "alice")
		s.Equal(http.StatusCreated, s.createBooking(token, roomID, "2025-09-01", "").Code)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, roomsURL+"/"+roomID.String(), nil, token)
		s.Equal(http.StatusNoContent, w.Code)
		s.Equal(0, dbtest.CountRows(t, s.DB, "bookings"))
	})

	s.Run("deleting a user removes their bookings", func() {
		t := s.T()
		roomID := dbtest.CreateTestRoom(t, s.DB, "R-KEEP", "Kept")
		aliceID, alice := authtest.CreateAndLogin(t, s.DB, s.Router, "alice")
		s.Equal(http.StatusCreated, s.createBooking(alice, roomID, "2025-09-02", "").Code)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, usersURL+"/"+aliceID.String(), nil, alice)
		s.Equal(http.StatusNoContent, w.Code)
		s.Equal(0, dbtest.CountRows(t, s.DB, "bookings"))
		s.Equal(1, dbtest.CountRows(t, s.DB, "rooms"))
	})
}

func (s *bookingSuite) TestValidation() {
	s.Run("invalid body lists the problems", func() {
		_, token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "alice")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, map[string]any{}, token)
		res := httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "")
		s.Contains(res.Errors, "field roomId is required")
		s.Contains(res.Errors, "field bookingDate is required")
	})

	s.Run("no credential: 401", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, bookingsURL, nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "")
	})
}
