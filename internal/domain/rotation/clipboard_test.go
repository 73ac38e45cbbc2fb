package rotation

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClipboard_StagePasteClears(t *testing.T) {
	r := New("", nil)
	r.AddInning()
	r.AddInning()
	require.NoError(t, r.Assign(1, PositionPitcher, "Ava"))

	var clip Clipboard
	require.NoError(t, clip.Stage(r, 1))
	assert.True(t, clip.Staged())
	assert.Equal(t, 1, clip.Source())

	// edits after staging do not leak into the paste
	require.NoError(t, r.Assign(1, PositionPitcher, "Ben"))

	require.NoError(t, clip.PasteInto(r, []int{2, 3}))
	assert.False(t, clip.Staged())
	assert.Zero(t, clip.Source())

	for _, n := range []int{2, 3} {
		in, _ := r.Inning(n)
		assert.Equal(t, Inning{PositionPitcher: "Ava"}, in)
	}
}

func TestClipboard_Errors(t *testing.T) {
	r := New("", nil)
	var clip Clipboard

	assert.True(t, errors.Is(clip.PasteInto(r, []int{1}), ErrNoCopiedData))
	assert.True(t, errors.Is(clip.Stage(r, 4), ErrInningNotFound))

	require.NoError(t, clip.Stage(r, 1))
	assert.True(t, errors.Is(clip.PasteInto(r, nil), ErrEmptySelection))
	assert.True(t, errors.Is(clip.PasteInto(r, []int{1, 2}), ErrInningNotFound))
	assert.True(t, clip.Staged(), "failed paste keeps copy mode")

	clip.Clear()
	assert.False(t, clip.Staged())
}
