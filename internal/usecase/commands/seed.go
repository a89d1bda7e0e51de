package commands

import (
	"context"
	"log/slog"

	"room-booking/internal/pkg/errs"
	"room-booking/internal/pkg/ptr"
	"room-booking/internal/usecase/shared"
)

type SeedInput struct {
	AdminUsername string
	AdminPassword string
}

// Seeder makes a fresh database usable: one admin account and a starter set of rooms.
// Running it again is a no-op.
type Seeder interface {
	Seed(ctx context.Context, in SeedInput) error
}

type seederImpl struct {
	uow   shared.UnitOfWork
	users UserCommands
	rooms RoomCommands
}

func NewSeeder(uow shared.UnitOfWork, users UserCommands, rooms RoomCommands) Seeder {
	return &seederImpl{uow: uow, users: users, rooms: rooms}
}

var defaultRooms = []RoomInput{
	{Code: "KLB-MTG-01", Name: "Executive Meeting Room", Capacity: 12, Location: ptr.To("Head Office - Floor 3")},
	{Code: "KLB-MTG-02", Name: "Project War Room", Capacity: 8, Location: ptr.To("Head Office - Floor 2")},
	{Code: "KLB-TRN-01", Name: "Training Room", Capacity: 30, Location: ptr.To("Learning Center - Floor 1")},
	{Code: "KLB-BRD-01", Name: "Board Room", Capacity: 16, Location: ptr.To("Head Office - Floor 5")},
	{Code: "KLB-INT-01", Name: "Interview Room", Capacity: 4, Location: ptr.To("HR Area - Floor 2")},
}

func (s *seederImpl) Seed(ctx context.Context, in SeedInput) error {
	if err := s.seedAdmin(ctx, in); err != nil {
		return err
	}
	return s.seedRooms(ctx)
}

func (s *seederImpl) seedAdmin(ctx context.Context, in SeedInput) error {
	if in.AdminPassword == "" {
		slog.Warn("admin seed skipped: SEED_ADMIN_PASSWORD is not set", "username", in.AdminUsername)
		return nil
	}

	_, err := s.users.Register(ctx, RegisterInput{
		Username:    in.AdminUsername,
		Password:    in.AdminPassword,
		DisplayName: "Administrator",
		IsAdmin:     true,
	})
	if err != nil {
		if errs.Is(err, errs.ErrDuplicateUsername) {
			slog.Debug("admin seed skipped: user exists", "username", in.AdminUsername)
			return nil
		}
		return errs.Wrap(err, "seed admin user")
	}
	return nil
}

func (s *seederImpl) seedRooms(ctx context.Context) error {
	var count int64
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, cerr := tx.Rooms().Count(ctx)
		count = n
		return cerr
	})
	if err != nil {
		return errs.Wrap(err, "count rooms")
	}
	if count > 0 {
		return nil
	}

	for _, in := range defaultRooms {
		if _, err := s.rooms.Create(ctx, in); err != nil {
			if errs.Is(err, errs.ErrDuplicateRoomCode) {
				continue
			}
			return errs.Wrap(err, "seed room "+in.Code)
		}
	}
	slog.Info("seeded default rooms", "count", len(defaultRooms))
	return nil
}
