package room

import (
	"errors"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

var (
	ErrEmptyRoomCode    = errors.New("room code cannot be empty")
	ErrEmptyRoomName    = errors.New("room name cannot be empty")
	ErrNegativeCapacity = errors.New("capacity cannot be negative")
	ErrCapacityTooLarge = errors.New("capacity is too large")
	ErrRoomCodeTooLong  = errors.New("room code is too long (max 50 characters)")
	ErrRoomNameTooLong  = errors.New("room name is too long (max 255 characters)")
	ErrLocationTooLong  = errors.New("location is too long (max 255 characters)")
)

const (
	MaxCodeLength     = 50
	MaxNameLength     = 255
	MaxLocationLength = 255

	// capacity is stored as a 32-bit integer
	MaxCapacity = math.MaxInt32
)

type Room struct {
	id       uuid.UUID
	code     string
	name     string
	capacity int
	location *string
}

// NewRoom assigns a fresh identifier.
func NewRoom(code, name string, capacity int, location *string) (*Room, error) {
	return ReconstructRoom(uuid.New(), code, name, capacity, location)
}

// ReconstructRoom builds the full replacement for an existing room.
func ReconstructRoom(id uuid.UUID, code, name string, capacity int, location *string) (*Room, error) {
	code = strings.TrimSpace(code)
	name = strings.TrimSpace(name)

	switch {
	case code == "":
		return nil, ErrEmptyRoomCode
	case utf8.RuneCountInString(code) > MaxCodeLength:
		return nil, ErrRoomCodeTooLong
	case name == "":
		return nil, ErrEmptyRoomName
	case utf8.RuneCountInString(name) > MaxNameLength:
		return nil, ErrRoomNameTooLong
	case capacity < 0:
		return nil, ErrNegativeCapacity
	case capacity > MaxCapacity:
		return nil, ErrCapacityTooLarge
	}

	loc, err := normalizeLocation(location)
	if err != nil {
		return nil, err
	}

	return &Room{
		id:       id,
		code:     code,
		name:     name,
		capacity: capacity,
		location: loc,
	}, nil
}

func normalizeLocation(location *string) (*string, error) {
	if location == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*location)
	if trimmed == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(trimmed) > MaxLocationLength {
		return nil, ErrLocationTooLong
	}
	return &trimmed, nil
}

func (r *Room) ID() uuid.UUID     { return r.id }
func (r *Room) Code() string      { return r.code }
func (r *Room) Name() string      { return r.name }
func (r *Room) Capacity() int     { return r.capacity }
func (r *Room) Location() *string { return r.location }
