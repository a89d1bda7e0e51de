package shared

//go:generate mockgen -source=uow.go -destination=../../mock/shared/mock_uow.go -package=sharedmock

import (
	"context"

	"room-booking/internal/domain/booking"
	"room-booking/internal/domain/room"
	"room-booking/internal/domain/user"
	sqlc "room-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Rooms() RoomRepository
	Bookings() BookingRepository
	Users() UserRepository
	DB() sqlc.DBTX
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	ExistsForSlot(ctx context.Context, slot booking.Slot) (bool, error)
	// FindByIDForUpdate locks the row until the surrounding transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type RoomRepository interface {
	Create(ctx context.Context, r *room.Room) error
	Update(ctx context.Context, r *room.Room) error
	Delete(ctx context.Context, id uuid.UUID) error
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	UpdateDisplayName(ctx context.Context, id uuid.UUID, displayName user.DisplayName) (*UserSnapshot, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
