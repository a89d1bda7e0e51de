package commands

import (
	"context"

	"room-booking/internal/domain/room"
	"room-booking/internal/infra"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/queries"
	"room-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type RoomInput struct {
	Code     string
	Name     string
	Capacity int
	Location *string
}

type RoomCommands interface {
	Create(ctx context.Context, in RoomInput) (*queries.RoomView, error)
	// Update replaces every field of the room.
	Update(ctx context.Context, id uuid.UUID, in RoomInput) (*queries.RoomView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type roomCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewRoomCommands(uow shared.UnitOfWork) RoomCommands {
	return &roomCommandsImpl{uow: uow}
}

func (c *roomCommandsImpl) Create(ctx context.Context, in RoomInput) (*queries.RoomView, error) {
	r, err := room.NewRoom(in.Code, in.Name, in.Capacity, in.Location)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Rooms().Create(ctx, r)
	})
	if err != nil {
		return nil, translateRoomWriteErr(err)
	}
	return toRoomView(r), nil
}

func (c *roomCommandsImpl) Update(ctx context.Context, id uuid.UUID, in RoomInput) (*queries.RoomView, error) {
	r, err := room.ReconstructRoom(id, in.Code, in.Name, in.Capacity, in.Location)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Rooms().Update(ctx, r)
	})
	if err != nil {
		return nil, translateRoomWriteErr(err)
	}
	return toRoomView(r), nil
}

// Delete also removes every booking of the room.
func (c *roomCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Rooms().Delete(ctx, id)
	})
	if err != nil {
		return translateRoomWriteErr(err)
	}
	return nil
}

func translateRoomWriteErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, errs.ErrRoomNotFound)
	case infra.IsKind(err, infra.KindDuplicateKey):
		return errs.Mark(err, errs.ErrDuplicateRoomCode)
	default:
		return err
	}
}

func toRoomView(r *room.Room) *queries.RoomView {
	return &queries.RoomView{
		ID:       r.ID(),
		Code:     r.Code(),
		Name:     r.Name(),
		Capacity: r.Capacity(),
		Location: r.Location(),
	}
}
