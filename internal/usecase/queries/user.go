package queries

import (
	"context"
	"time"

	"rental-admin/internal/infra"
	"rental-admin/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound = errs.NotFound("user not found")
	ErrUserInactive = errs.Forbidden("user inactive")
)

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error)
	List(ctx context.Context, cursor *Cursor, limit int) ([]*UserView, *Cursor, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserView, error)
	FindByEmail(ctx context.Context, email string) (*UserView, string, error)
	List(ctx context.Context, after *Keyset, limit int32) ([]*UserView, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error) {
	user, err := q.readStore.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, ErrUserInactive
	}

	return user, nil
}

func (q *userQueriesImpl) List(ctx context.Context, cursor *Cursor, limit int) ([]*UserView, *Cursor, error) {
	after, err := decodeKeyset(cursor)
	if err != nil {
		return nil, nil, err
	}
	limit = ValidateLimit(limit)

	rows, err := q.readStore.List(ctx, after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}
	page, next := paginate(rows, limit, func(u *UserView) (time.Time, uuid.UUID) { return u.CreatedAt, u.ID })
	return page, next, nil
}
