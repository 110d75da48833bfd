//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"rental-admin/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errSample = errs.Validation("sample is broken")

func TestCategories(t *testing.T) {
	t.Run("invalid unwraps to both the sentinel and the category", func(t *testing.T) {
		err := errs.Invalid("price", errSample)

		require.ErrorIs(t, err, errSample)
		require.ErrorIs(t, err, errs.ErrValidation)
		assert.Equal(t, "price: sample is broken", err.Error())
	})

	t.Run("wrapping keeps the category", func(t *testing.T) {
		notFound := errs.NotFound("thing not found")
		err := errs.Wrap(notFound, "loading thing")

		assert.True(t, errors.Is(err, notFound))
		assert.True(t, errors.Is(err, errs.ErrNotFound))
		assert.False(t, errors.Is(err, errs.ErrValidation))
	})

	t.Run("mark is visible through errs.Is", func(t *testing.T) {
		marker := errs.New("marker")
		err := errs.Mark(errors.New("low level"), marker)

		assert.True(t, errs.Is(err, marker))
	})

	t.Run("mark with nil returns the marker", func(t *testing.T) {
		marker := errs.Conflict("busy")
		assert.Equal(t, marker, errs.Mark(nil, marker))
	})
}

func TestExtractStackLines(t *testing.T) {
	assert.Nil(t, errs.ExtractStackLines(nil, 5))

	err := errs.Wrap(errs.New("root cause"), "outer")
	lines := errs.ExtractStackLines(err, 3)
	require.Len(t, lines, 3)
	assert.Equal(t, "outer: root cause", lines[0])
	for _, l := range lines {
		assert.NotEmpty(t, l)
	}

	assert.Greater(t, len(errs.ExtractStackLines(err, 0)), 3)
}
