package sink

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gratefultolord/study_request_bot/internal/models"
)

type recordingSink struct {
	calls int
	err   error
}

func (r *recordingSink) Append(context.Context, models.Submission) error {
	r.calls++
	return r.err
}

func TestFanout(t *testing.T) {
	t.Run("mirror failure is not returned", func(t *testing.T) {
		primary := &recordingSink{}
		broken := &recordingSink{err: errors.New("db down")}
		healthy := &recordingSink{}

		f := NewFanout(Named{"sheets", primary}, Named{"journal", broken}, Named{"managers", healthy})
		require.NoError(t, f.Append(context.Background(), models.Submission{}))

		assert.Equal(t, 1, primary.calls)
		assert.Equal(t, 1, broken.calls)
		assert.Equal(t, 1, healthy.calls)
	})

	t.Run("primary failure skips mirrors", func(t *testing.T) {
		primary := &recordingSink{err: errors.New("quota")}
		mirror := &recordingSink{}

		f := NewFanout(Named{"sheets", primary}, Named{"journal", mirror})
		err := f.Append(context.Background(), models.Submission{})

		assert.ErrorContains(t, err, "sheets")
		assert.Equal(t, 0, mirror.calls)
	})

	t.Run("no mirrors", func(t *testing.T) {
		primary := &recordingSink{}
		require.NoError(t, NewFanout(Named{"sheets", primary}).Append(context.Background(), models.Submission{}))
		assert.Equal(t, 1, primary.calls)
	})
}
