package queries

import (
	"context"

	"room-booking/internal/domain/access"
	"room-booking/internal/infra"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserReadStore interface {
	List(ctx context.Context) ([]*UserView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*UserView, error)
	FindByUsername(ctx context.Context, username string) (*UserView, string, error)
}

type UserQueries interface {
	List(ctx context.Context, actor shared.Identity) ([]*UserView, error)
	GetByID(ctx context.Context, id uuid.UUID, actor shared.Identity) (*UserView, error)
	GetCurrentUser(ctx context.Context, actor shared.Identity) (*UserView, error)
}

type userQueriesImpl struct {
	repo UserReadStore
}

func NewUserQueries(repo UserReadStore) UserQueries {
	return &userQueriesImpl{repo: repo}
}

func (q *userQueriesImpl) List(ctx context.Context, actor shared.Identity) ([]*UserView, error) {
	if !actor.IsAdmin() {
		return nil, errs.ErrForbidden
	}
	return q.repo.List(ctx)
}

// GetByID reports Forbidden before NotFound.
func (q *userQueriesImpl) GetByID(ctx context.Context, id uuid.UUID, actor shared.Identity) (*UserView, error) {
	if !access.CanAccess(actor.UserID, actor.Roles, id) {
		return nil, errs.ErrForbidden
	}
	return q.find(ctx, id)
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, actor shared.Identity) (*UserView, error) {
	return q.find(ctx, actor.UserID)
}

func (q *userQueriesImpl) find(ctx context.Context, id uuid.UUID) (*UserView, error) {
	uv, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, err
	}
	return uv, nil
}
