package booking

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

var (
	ErrMissingRoom    = errors.New("room is required")
	ErrMissingOwner   = errors.New("owner is required")
	ErrPurposeTooLong = errors.New("purpose is too long (max 500 characters)")
)

const MaxPurposeLength = 500

// Booking reserves a room for one whole calendar day. It is never mutated after creation.
type Booking struct {
	id          uuid.UUID
	userID      uuid.UUID
	roomID      uuid.UUID
	bookingDate time.Time
	purpose     *string
	createdAt   time.Time
}

func NewBooking(roomID, userID uuid.UUID, date time.Time, purpose *string, now time.Time) (*Booking, error) {
	if roomID == uuid.Nil {
		return nil, ErrMissingRoom
	}
	if userID == uuid.Nil {
		return nil, ErrMissingOwner
	}
	if date.IsZero() {
		return nil, ErrInvalidDate
	}

	p, err := normalizePurpose(purpose)
	if err != nil {
		return nil, err
	}

	return &Booking{
		id:          uuid.New(),
		userID:      userID,
		roomID:      roomID,
		bookingDate: NormalizeDate(date),
		purpose:     p,
		createdAt:   now,
	}, nil
}

func normalizePurpose(purpose *string) (*string, error) {
	if purpose == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*purpose)
	if trimmed == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(trimmed) > MaxPurposeLength {
		return nil, ErrPurposeTooLong
	}
	return &trimmed, nil
}

// Slot is the unit of conflict.
type Slot struct {
	RoomID uuid.UUID
	Date   time.Time
}

func (b *Booking) Slot() Slot {
	return Slot{RoomID: b.roomID, Date: b.bookingDate}
}

func (b *Booking) ID() uuid.UUID          { return b.id }
func (b *Booking) UserID() uuid.UUID      { return b.userID }
func (b *Booking) RoomID() uuid.UUID      { return b.roomID }
func (b *Booking) BookingDate() time.Time { return b.bookingDate }
func (b *Booking) Purpose() *string       { return b.purpose }
func (b *Booking) CreatedAt() time.Time   { return b.createdAt }
