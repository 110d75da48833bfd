//go:build unit

package commands_test

import (
	"context"
	"testing"

	"rental-admin/internal/domain/auth"
	"rental-admin/internal/domain/customer"
	"rental-admin/internal/domain/user"
	"rental-admin/internal/infra"
	"rental-admin/internal/usecase/commands"
	"rental-admin/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCustomerCommands(t *testing.T) {
	ctx := context.Background()
	operator := principal(user.RoleOperator)

	t.Run("create", func(t *testing.T) {
		h := newHarness(t)
		uc := commands.NewCustomerCommands(h.uow, h.clock)
		h.customers.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		id, err := uc.CreateCustomer(ctx, operator, builder.NewCustomerBuilder().Params())
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)
	})

	t.Run("viewers cannot write", func(t *testing.T) {
		h := newHarness(t)
		uc := commands.NewCustomerCommands(h.uow, h.clock)
		_, err := uc.CreateCustomer(ctx, principal(user.RoleViewer), builder.NewCustomerBuilder().Params())
		assert.ErrorIs(t, err, auth.ErrInsufficientRole)
	})

	t.Run("update rejects a bad phone", func(t *testing.T) {
		h := newHarness(t)
		uc := commands.NewCustomerCommands(h.uow, h.clock)
		stored, err := builder.NewCustomerBuilder().BuildDomain()
		require.NoError(t, err)
		h.reads.EXPECT().CustomerByID(gomock.Any(), stored.ID()).Return(stored, nil)

		params := builder.NewCustomerBuilder().With(func(b *builder.CustomerBuilder) { b.Phone = "abc" }).Params()
		err = uc.UpdateCustomer(ctx, operator, stored.ID(), params)
		assert.ErrorIs(t, err, customer.ErrInvalidPhone)
	})

	t.Run("update to a taken email", func(t *testing.T) {
		h := newHarness(t)
		uc := commands.NewCustomerCommands(h.uow, h.clock)
		stored, err := builder.NewCustomerBuilder().BuildDomain()
		require.NoError(t, err)
		h.reads.EXPECT().CustomerByID(gomock.Any(), stored.ID()).Return(stored, nil)
		h.customers.EXPECT().Update(gomock.Any(), gomock.Any(), stored).
			Return(infra.WrapRepoErr("failed to update customer", nil, infra.KindDuplicateKey))

		err = uc.UpdateCustomer(ctx, operator, stored.ID(), builder.NewCustomerBuilder().Params())
		assert.ErrorIs(t, err, commands.ErrEmailTaken)
	})

	t.Run("delete with bookings", func(t *testing.T) {
		h := newHarness(t)
		uc := commands.NewCustomerCommands(h.uow, h.clock)
		id := uuid.New()
		h.customers.EXPECT().Delete(gomock.Any(), gomock.Any(), id).
			Return(infra.WrapRepoErr("failed to delete customer", nil, infra.KindForeignKeyViolated))

		assert.ErrorIs(t, uc.DeleteCustomer(ctx, operator, id), commands.ErrCustomerInUse)
	})
}
