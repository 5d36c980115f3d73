package check

import (
	"testing"

	"github.com/mosoi-variant/vareng/internal/board"
	"github.com/mosoi-variant/vareng/internal/coord"
	"github.com/mosoi-variant/vareng/internal/moveset"
	"github.com/mosoi-variant/vareng/internal/piece"
	"github.com/mosoi-variant/vareng/internal/rules"
)

func TestRookChecksKingAlongOpenFile(t *testing.T) {
	rset := rules.Default()
	registry := moveset.StandardRegistry()
	b := board.FromPlacements(rset, registry, []board.Placement{
		{Raw: piece.RawKing, Player: piece.White, At: coord.New(5, 1)},
		{Raw: piece.RawRook, Player: piece.Black, At: coord.New(5, 8)},
	}, piece.White)
	if !InCheck(b, piece.White) {
		t.Error("king should be in check from the rook down an open file")
	}
}

func TestNoCheckWhenBlocked(t *testing.T) {
	rset := rules.Default()
	registry := moveset.StandardRegistry()
	b := board.FromPlacements(rset, registry, []board.Placement{
		{Raw: piece.RawKing, Player: piece.White, At: coord.New(5, 1)},
		{Raw: piece.RawRook, Player: piece.Black, At: coord.New(5, 8)},
		{Raw: piece.RawPawn, Player: piece.White, At: coord.New(5, 4)},
	}, piece.White)
	if InCheck(b, piece.White) {
		t.Error("a blocking pawn should prevent check")
	}
}

func TestKnightCheck(t *testing.T) {
	rset := rules.Default()
	registry := moveset.StandardRegistry()
	b := board.FromPlacements(rset, registry, []board.Placement{
		{Raw: piece.RawKing, Player: piece.White, At: coord.New(5, 1)},
		{Raw: piece.RawKnight, Player: piece.Black, At: coord.New(4, 3)},
	}, piece.White)
	if !InCheck(b, piece.White) {
		t.Error("knight on d3 should check the king on e1")
	}
}
