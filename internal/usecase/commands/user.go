package commands

import (
	"context"
	"log/slog"

	"room-booking/internal/domain/access"
	"room-booking/internal/domain/user"
	"room-booking/internal/infra"
	"room-booking/internal/pkg/clock"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/pkg/password"
	"room-booking/internal/usecase/queries"
	"room-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type RegisterInput struct {
	Username    string
	Password    string
	DisplayName string
	IsAdmin     bool
}

type UserCommands interface {
	Register(ctx context.Context, in RegisterInput) (*queries.UserView, error)
	UpdateDisplayName(ctx context.Context, id uuid.UUID, displayName string, actor shared.Identity) (*queries.UserView, error)
	Delete(ctx context.Context, id uuid.UUID, actor shared.Identity) error
}

type userCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewUserCommands(uow shared.UnitOfWork, clk clock.Clock) UserCommands {
	return &userCommandsImpl{uow: uow, clock: clk}
}

func (c *userCommandsImpl) Register(ctx context.Context, in RegisterInput) (*queries.UserView, error) {
	username, err := user.NewUsername(in.Username)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	displayName, err := user.NewDisplayName(in.DisplayName)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	hash, err := password.HashPassword(in.Password)
	if err != nil {
		if errs.Is(err, password.ErrInvalidPassword) {
			return nil, errs.Mark(err, ErrDomainValidation)
		}
		return nil, errs.Mark(err, ErrPasswordHashing)
	}

	var roles user.Roles
	if in.IsAdmin {
		roles = user.Roles{user.RoleAdmin}
	}
	u := user.NewUser(username, displayName, hash, roles, c.clock.Now())

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		taken, derr := tx.Users().ExistsByUsername(ctx, username.Value())
		if derr != nil {
			return derr
		}
		if taken {
			return errs.ErrDuplicateUsername
		}
		return tx.Users().Create(ctx, u)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, errs.ErrDuplicateUsername)
		}
		return nil, err
	}

	slog.Info("user registered", "user_id", u.ID().String(), "username", username.Value(), "admin", in.IsAdmin)

	return &queries.UserView{
		ID:          u.ID(),
		Username:    username.Value(),
		DisplayName: displayName.Value(),
		Roles:       u.Roles().Strings(),
		CreatedAt:   u.CreatedAt(),
	}, nil
}

func (c *userCommandsImpl) UpdateDisplayName(ctx context.Context, id uuid.UUID, displayName string, actor shared.Identity) (*queries.UserView, error) {
	if !access.CanAccess(actor.UserID, actor.Roles, id) {
		return nil, errs.ErrForbidden
	}

	name, err := user.NewDisplayName(displayName)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var snap *shared.UserSnapshot
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var derr error
		snap, derr = tx.Users().UpdateDisplayName(ctx, id, name)
		return derr
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrUserNotFound)
		}
		return nil, err
	}

	return &queries.UserView{
		ID:          snap.ID,
		Username:    snap.Username,
		DisplayName: snap.DisplayName,
		Roles:       snap.Roles,
		CreatedAt:   snap.CreatedAt,
	}, nil
}

// Delete also removes every booking owned by the user.
func (c *userCommandsImpl) Delete(ctx context.Context, id uuid.UUID, actor shared.Identity) error {
	if !access.CanAccess(actor.UserID, actor.Roles, id) {
		return errs.ErrForbidden
	}

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Delete(ctx, id)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrUserNotFound)
		}
		return err
	}

	slog.Info("user deleted", "user_id", id.String(), "actor_id", actor.UserID.String())
	return nil
}
