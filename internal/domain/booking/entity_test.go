//go:build unit

package booking_test

import (
	"strings"
	"testing"
	"time"

	"room-booking/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func TestNewBooking(t *testing.T) {
	roomID, userID := uuid.New(), uuid.New()

	t.Run("normalizes date and trims purpose", func(t *testing.T) {
		b, err := booking.NewBooking(roomID, userID, time.Date(2025, 1, 10, 9, 30, 0, 0, time.UTC), strPtr("  sync "), now)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, b.ID())
		assert.Equal(t, roomID, b.RoomID())
		assert.Equal(t, userID, b.UserID())
		assert.Equal(t, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), b.BookingDate())
		require.NotNil(t, b.Purpose())
		assert.Equal(t, "sync", *b.Purpose())
		assert.Equal(t, now, b.CreatedAt())
	})

	t.Run("same day at different times shares a slot", func(t *testing.T) {
		morning, err := booking.NewBooking(roomID, userID, time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC), nil, now)
		require.NoError(t, err)
		night, err := booking.NewBooking(roomID, uuid.New(), time.Date(2025, 1, 10, 23, 0, 0, 0, time.UTC), nil, now)
		require.NoError(t, err)

		assert.Equal(t, morning.Slot(), night.Slot())
	})

	t.Run("blank purpose becomes nil", func(t *testing.T) {
		b, err := booking.NewBooking(roomID, userID, now, strPtr("   "), now)
		require.NoError(t, err)
		assert.Nil(t, b.Purpose())
	})

	cases := []struct {
		name    string
		roomID  uuid.UUID
		userID  uuid.UUID
		date    time.Time
		purpose *string
		errIs   error
	}{
		{name: "missing room NG", userID: userID, date: now, errIs: booking.ErrMissingRoom},
		{name: "missing owner NG", roomID: roomID, date: now, errIs: booking.ErrMissingOwner},
		{name: "zero date NG", roomID: roomID, userID: userID, errIs: booking.ErrInvalidDate},
		{name: "long purpose NG", roomID: roomID, userID: userID, date: now, purpose: strPtr(strings.Repeat("p", booking.MaxPurposeLength+1)), errIs: booking.ErrPurposeTooLong},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b, err := booking.NewBooking(c.roomID, c.userID, c.date, c.purpose, now)
			require.Nil(t, b)
			require.ErrorIs(t, err, c.errIs)
		})
	}
}

func TestParseDate(t *testing.T) {
	want := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	valid := []string{
		"2025-03-01",
		"2025-03-01T09:00:00Z",
		"2025-03-01T23:59:59+07:00",
		"2025-03-01T00:00:01-05:00",
		"2025-03-01T10:15:00",
		" 2025-03-01 ",
	}
	for _, s := range valid {
		t.Run("valid "+s, func(t *testing.T) {
			got, err := booking.ParseDate(s)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}

	invalid := []string{"", "01/03/2025", "2025-13-01", "tomorrow"}
	for _, s := range invalid {
		t.Run("invalid "+s, func(t *testing.T) {
			_, err := booking.ParseDate(s)
			require.ErrorIs(t, err, booking.ErrInvalidDate)
		})
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "2025-03-01", booking.FormatDate(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)))
}
