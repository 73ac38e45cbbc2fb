package rotation

import (
	"testing"

	"github.com/coachboard/coachboard/internal/domain/gameday"
	"github.com/coachboard/coachboard/internal/domain/roster"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRecord_AndPayload(t *testing.T) {
	gameID := int64(3)
	r, err := FromRecord(gameday.RotationRecord{
		ID:               11,
		Title:            "Rotation for vs Hawks",
		AssociatedGameID: &gameID,
		Innings: map[int]map[string]string{
			1: {"p": "Ava", "1b": "Ben"},
			3: {"CF": "Cal"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, r.Innings())

	p := r.Payload()
	assert.EqualValues(t, 11, p.ID)
	assert.Equal(t, map[string]map[string]string{
		"1": {"P": "Ava", "1B": "Ben"},
		"3": {"CF": "Cal"},
	}, p.Innings)
	assert.EqualValues(t, 3, *p.AssociatedGameID)
}

func TestFromRecord_PlayerKeepsOneSlotPerInning(t *testing.T) {
	r, err := FromRecord(gameday.RotationRecord{Innings: map[int]map[string]string{
		1: {"CF": "Ava", "P": "Ava", "C": "Ben", "SS": " Ben "},
	}})
	require.NoError(t, err)

	in, ok := r.Inning(1)
	require.True(t, ok)
	assert.Equal(t, Inning{PositionPitcher: "Ava", PositionCatcher: "Ben"}, in)

	idx := roster.NewIndex([]roster.Player{{ID: 1, Name: "Ava"}, {ID: 2, Name: "Ben"}, {ID: 3, Name: "Cal"}}, nil)
	bench, err := r.Bench(1, idx)
	require.NoError(t, err)
	require.Len(t, bench, 1)
	assert.Equal(t, "Cal", bench[0].Name)
}

func TestFromRecord_RejectsUnknownLabel(t *testing.T) {
	_, err := FromRecord(gameday.RotationRecord{Innings: map[int]map[string]string{1: {"Rover": "Ava"}}})
	assert.True(t, errors.Is(err, ErrUnknownPosition))
}
