package rotation

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func TestParsePosition(t *testing.T) {
	pos, err := ParsePosition(" ss ")
	assert.NoError(t, err)
	assert.Equal(t, PositionShortstop, pos)

	_, err = ParsePosition("Pitcher")
	assert.True(t, errors.Is(err, ErrUnknownPosition))
}

func TestAllPositions_Order(t *testing.T) {
	want := []Position{"P", "C", "1B", "2B", "3B", "SS", "LF", "CF", "RF", "DH", "EH"}
	assert.Equal(t, want, AllPositions())

	got := AllPositions()
	got[0] = "X"
	assert.Equal(t, PositionPitcher, AllPositions()[0])
}
