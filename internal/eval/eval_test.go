package eval

import (
	"testing"

	"github.com/mosoi-variant/vareng/internal/board"
	"github.com/mosoi-variant/vareng/internal/coord"
	"github.com/mosoi-variant/vareng/internal/moveset"
	"github.com/mosoi-variant/vareng/internal/piece"
	"github.com/mosoi-variant/vareng/internal/rules"
)

func TestMaterialBalanceStartIsZero(t *testing.T) {
	rset := rules.Default()
	registry := moveset.StandardRegistry()
	b := board.FromPlacements(rset, registry, board.StandardPlacements(), rset.TurnOrder[0])
	values := StandardValues()
	s := Material(b, values)
	if s.M != 0 || s.E != 0 {
		t.Errorf("starting position material should balance to zero, got %+v", s)
	}
}

func TestMaterialFavorsExtraQueen(t *testing.T) {
	rset := rules.Default()
	registry := moveset.StandardRegistry()
	b := board.FromPlacements(rset, registry, []board.Placement{
		{Raw: piece.RawKing, Player: piece.White, At: coord.New(5, 1)},
		{Raw: piece.RawKing, Player: piece.Black, At: coord.New(5, 8)},
		{Raw: piece.RawQueen, Player: piece.White, At: coord.New(4, 1)},
	}, piece.White)
	values := StandardValues()
	s := Material(b, values)
	if s.M <= 0 {
		t.Error("white should be materially ahead with an extra queen")
	}
}

func TestPhaseSaturatesAtStart(t *testing.T) {
	rset := rules.Default()
	registry := moveset.StandardRegistry()
	b := board.FromPlacements(rset, registry, board.StandardPlacements(), rset.TurnOrder[0])
	values := StandardValues()
	if Phase(b, values) != 256 {
		t.Errorf("expected full midgame phase at the starting position, got %d", Phase(b, values))
	}
}
