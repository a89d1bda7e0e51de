//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"room-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark(t *testing.T) {
	t.Run("marked error matches both the cause and the mark", func(t *testing.T) {
		cause := errors.New("unique_violation")
		err := errs.Mark(cause, errs.ErrBookingConflict)

		assert.True(t, errs.Is(err, errs.ErrBookingConflict))
		assert.True(t, errs.Is(err, cause))
		assert.False(t, errs.Is(err, errs.ErrRoomNotFound))
	})

	t.Run("nil error returns the mark itself", func(t *testing.T) {
		assert.Equal(t, errs.ErrForbidden, errs.Mark(nil, errs.ErrForbidden))
	})
}

func TestWrap(t *testing.T) {
	assert.NoError(t, errs.Wrap(nil, "ignored"))

	err := errs.Wrap(errs.ErrUserNotFound, "load caller")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrUserNotFound)
	assert.Contains(t, err.Error(), "load caller")
}

func TestExtractStackLines(t *testing.T) {
	assert.Nil(t, errs.ExtractStackLines(nil, 5))

	lines := errs.ExtractStackLines(errs.New("boom"), 3)
	require.NotEmpty(t, lines)
	assert.LessOrEqual(t, len(lines), 3)
	assert.Contains(t, lines[0], "boom")
}
