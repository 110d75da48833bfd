//go:build unit

package customer_test

import (
	"testing"

	"rental-admin/internal/domain/customer"
	"rental-admin/internal/domain/user"
	"rental-admin/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*builder.CustomerBuilder)
		errIs  error
	}{
		{name: "basic success case", mutate: func(b *builder.CustomerBuilder) {}},
		{name: "phone is optional", mutate: func(b *builder.CustomerBuilder) { b.Phone = "" }},
		{name: "empty name", mutate: func(b *builder.CustomerBuilder) { b.Name = " " }, errIs: customer.ErrEmptyName},
		{name: "bad email", mutate: func(b *builder.CustomerBuilder) { b.Email = "asha" }, errIs: user.ErrInvalidEmail},
		{name: "bad phone", mutate: func(b *builder.CustomerBuilder) { b.Phone = "call me" }, errIs: customer.ErrInvalidPhone},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := builder.NewCustomerBuilder().With(tc.mutate).BuildDomain()
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "asha@example.com", c.Email().Value())
		})
	}
}

func TestCustomer_Revise(t *testing.T) {
	c, err := builder.NewCustomerBuilder().BuildDomain()
	require.NoError(t, err)

	bad := builder.NewCustomerBuilder().With(func(b *builder.CustomerBuilder) { b.Name = "" })
	require.Error(t, c.Revise(bad.Params(), c.CreatedAt()))
	assert.Equal(t, "Asha Rao", c.Name())

	good := builder.NewCustomerBuilder().With(func(b *builder.CustomerBuilder) { b.Notes = " repeat guest " })
	require.NoError(t, c.Revise(good.Params(), c.CreatedAt()))
	assert.Equal(t, "repeat guest", c.Notes())
}
