//go:build unit

package readstore

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"rental-admin/internal/infra"
	sqlc "rental-admin/internal/infra/sqlc/generated"
	"rental-admin/internal/usecase/queries"
	"rental-admin/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserReadQueries struct {
	mock.Mock
}

func (m *MockUserReadQueries) GetUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func (m *MockUserReadQueries) GetUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Users, error) {
	args := m.Called(ctx, db, email)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func (m *MockUserReadQueries) ListUsers(ctx context.Context, db sqlc.DBTX, arg sqlc.ListUsersParams) ([]sqlc.Users, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.Users), args.Error(1)
}

func TestUserFindByEmail(t *testing.T) {
	activeUser := builder.NewUserBuilder().BuildInfra()
	inactiveUser := builder.NewUserBuilder().WithEmail("gone@example.com").AsInactive().BuildInfra()

	tests := []struct {
		name       string
		email      string
		mockReturn sqlc.Users
		mockError  error
		wantKind   infra.RepositoryErrorKind
	}{
		{
			name:       "success - active user",
			email:      activeUser.Email,
			mockReturn: activeUser,
		},
		{
			name:       "success - inactive user still returned",
			email:      inactiveUser.Email,
			mockReturn: inactiveUser,
		},
		{
			name:      "user not found",
			email:     "notfound@example.com",
			mockError: sql.ErrNoRows,
			wantKind:  infra.KindNotFound,
		},
		{
			name:      "pgx no rows",
			email:     "notfound@example.com",
			mockError: pgx.ErrNoRows,
			wantKind:  infra.KindNotFound,
		},
		{
			name:      "database error",
			email:     activeUser.Email,
			mockError: assert.AnError,
			wantKind:  infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserReadQueries)
			mockQueries.On("GetUserByEmail", mock.Anything, mock.Anything, tt.email).Return(tt.mockReturn, tt.mockError)

			readStore := NewUserReadStore(mockQueries, nil)
			view, hash, err := readStore.FindByEmail(context.Background(), tt.email)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
				assert.Nil(t, view)
				assert.Empty(t, hash)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.email, view.Email)
				assert.Equal(t, tt.mockReturn.PasswordHash, hash)
				assert.Equal(t, tt.mockReturn.IsActive, view.IsActive)
				assert.Nil(t, view.LastLogin)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestUserFindByID(t *testing.T) {
	row := builder.NewUserBuilder().WithRole("viewer").BuildInfra()

	t.Run("maps row to view", func(t *testing.T) {
		mockQueries := new(MockUserReadQueries)
		mockQueries.On("GetUserByID", mock.Anything, mock.Anything, row.ID).Return(row, nil)

		view, err := NewUserReadStore(mockQueries, nil).FindByID(context.Background(), row.ID)

		require.NoError(t, err)
		assert.Equal(t, row.ID, view.ID)
		assert.Equal(t, "viewer", view.Role)
		assert.Equal(t, row.CreatedAt.Time, view.CreatedAt)
		mockQueries.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockQueries := new(MockUserReadQueries)
		mockQueries.On("GetUserByID", mock.Anything, mock.Anything, row.ID).Return(sqlc.Users{}, pgx.ErrNoRows)

		view, err := NewUserReadStore(mockQueries, nil).FindByID(context.Background(), row.ID)

		assert.Nil(t, view)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestUserList(t *testing.T) {
	first := builder.NewUserBuilder().BuildInfra()
	second := builder.NewUserBuilder().WithEmail("b@example.com").BuildInfra()
	after := &queries.Keyset{CreatedAt: time.Date(2025, time.May, 2, 0, 0, 0, 0, time.UTC), ID: uuid.New()}

	tests := []struct {
		name       string
		after      *queries.Keyset
		wantCursor bool
	}{
		{name: "first page sends null cursor", after: nil, wantCursor: false},
		{name: "next page sends keyset", after: after, wantCursor: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserReadQueries)
			mockQueries.On("ListUsers", mock.Anything, mock.Anything, mock.MatchedBy(func(arg sqlc.ListUsersParams) bool {
				if arg.Limit != 3 || arg.CursorCreatedAt.Valid != tt.wantCursor || arg.CursorID.Valid != tt.wantCursor {
					return false
				}
				return !tt.wantCursor || uuid.UUID(arg.CursorID.Bytes) == tt.after.ID
			})).Return([]sqlc.Users{first, second}, nil)

			views, err := NewUserReadStore(mockQueries, nil).List(context.Background(), tt.after, 3)

			require.NoError(t, err)
			require.Len(t, views, 2)
			assert.Equal(t, second.Email, views[1].Email)
			mockQueries.AssertExpectations(t)
		})
	}
}
