package exec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mosoi-variant/vareng/internal/board"
	"github.com/mosoi-variant/vareng/internal/moveset"
	"github.com/mosoi-variant/vareng/internal/rules"
)

func standardBoard() *board.Board {
	rset := rules.Default()
	registry := moveset.StandardRegistry()
	return board.FromPlacements(rset, registry, board.StandardPlacements(), rset.TurnOrder[0])
}

// TestPerftFromStandardStart checks perft from the orthodox starting
// placements for the first two plies (§8 "move generator correctness").
// The board has no edges, so these are not the 8x8 counts: knights and
// the king may step off the 8x8 area, and every open ray is enumerated
// to movegenHorizon (64) squares.
func TestPerftFromStandardStart(t *testing.T) {
	cases := []struct {
		depth int
		want  uint64
	}{
		{1, 737},
		{2, 543169},
	}
	for _, c := range cases {
		b := standardBoard()
		got := Perft(b, c.depth)
		assert.Equalf(t, c.want, got, "perft(%d)", c.depth)
	}
}

func TestSimulateRewindsBoard(t *testing.T) {
	b := standardBoard()
	before := b.Hash()
	moves := Legal(b)
	require.NotEmpty(t, moves, "expected legal moves from the starting position")
	Simulate(b, moves[0], func() {
		assert.NotEqual(t, before, b.Hash(), "hash should differ inside the simulated move")
	})
	assert.Equal(t, before, b.Hash(), "board should be restored to its original hash after Simulate returns")
}
