package rotation

import (
	"testing"

	"github.com/coachboard/coachboard/internal/domain/roster"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRoster(names ...string) *roster.Index {
	players := make([]roster.Player, 0, len(names))
	for i, name := range names {
		players = append(players, roster.Player{ID: int64(i + 1), Name: name})
	}
	return roster.NewIndex(players, nil)
}

func TestSummarize_TwoInnings(t *testing.T) {
	r, err := FromInnings(0, "", nil, map[int]Inning{
		1: {PositionPitcher: "A", PositionCatcher: "B"},
		2: {PositionPitcher: "B", PositionCatcher: "A"},
	})
	require.NoError(t, err)

	got := Summarize(r, testRoster("C", "A", "B"))

	want := []PlayingTime{
		{Name: "A", InningsOnField: 2, InningsOnBench: 0, Positions: []Position{PositionPitcher, PositionCatcher}},
		{Name: "B", InningsOnField: 2, InningsOnBench: 0, Positions: []Position{PositionPitcher, PositionCatcher}},
		{Name: "C", InningsOnField: 0, InningsOnBench: 2, Positions: []Position{}},
	}
	assert.Equal(t, want, got)
}

func TestSummarize_IgnoresPlayersOutsideRoster(t *testing.T) {
	r := New("", nil)
	require.NoError(t, r.Assign(1, PositionCenterField, "Ghost"))
	require.NoError(t, r.Assign(1, PositionRightField, "Ava"))

	got := Summarize(r, testRoster("Ava"))
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].InningsOnField)
	assert.Equal(t, []Position{PositionRightField}, got[0].Positions)
}

func TestBench_PlusFieldEqualsRoster(t *testing.T) {
	idx := testRoster("Ava", "Ben", "Cal", "Dee", "Eli")
	r := New("", nil)
	r.AddInning()
	require.NoError(t, r.Assign(1, PositionPitcher, "Ben"))
	require.NoError(t, r.Assign(1, PositionFirstBase, "Dee"))
	require.NoError(t, r.Assign(2, PositionShortstop, "Eli"))

	for _, n := range r.Innings() {
		bench, err := r.Bench(n, idx)
		require.NoError(t, err)
		in, _ := r.Inning(n)
		assert.Equal(t, idx.Len(), len(bench)+len(in.onField()), "inning %d", n)
	}

	bench, err := r.Bench(1, idx)
	require.NoError(t, err)
	names := make([]string, 0, len(bench))
	for _, p := range bench {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"Ava", "Cal", "Eli"}, names)

	_, err = r.Bench(3, idx)
	assert.True(t, errors.Is(err, ErrInningNotFound))
}
