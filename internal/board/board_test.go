package board

import (
	"testing"

	"github.com/mosoi-variant/vareng/internal/coord"
	"github.com/mosoi-variant/vareng/internal/move"
	"github.com/mosoi-variant/vareng/internal/moveset"
	"github.com/mosoi-variant/vareng/internal/piece"
	"github.com/mosoi-variant/vareng/internal/rules"
)

func standardBoard() *Board {
	rset := rules.Default()
	registry := moveset.StandardRegistry()
	return FromPlacements(rset, registry, StandardPlacements(), rset.TurnOrder[0])
}

func TestFromPlacementsPopulatesSquares(t *testing.T) {
	b := standardBoard()
	if len(b.Pieces()) != 32 {
		t.Fatalf("expected 32 pieces on the starting position, got %d", len(b.Pieces()))
	}
	if b.PieceAt(coord.New(5, 1)).Type.GetRaw() != piece.RawKing {
		t.Error("expected white king on e1 (5,1)")
	}
}

func TestApplyAndUndoMoveRestoresState(t *testing.T) {
	b := standardBoard()
	before := b.Hash()
	m := move.Move{From: coord.New(5, 2), To: coord.New(5, 4), Piece: piece.Build(piece.RawPawn, piece.White), Kind: move.DoubleStep}
	b.ApplyMove(m)
	if b.PieceAt(coord.New(5, 2)) != nil {
		t.Error("origin square should be empty after applying the move")
	}
	if b.PieceAt(coord.New(5, 4)) == nil {
		t.Error("destination square should hold the moved pawn")
	}
	if b.Turn() != piece.Black {
		t.Error("turn should pass to black")
	}
	b.UndoMove(m)
	if b.Hash() != before {
		t.Error("hash should be restored exactly after undo")
	}
	if b.Turn() != piece.White {
		t.Error("turn should revert to white")
	}
	if b.PieceAt(coord.New(5, 2)) == nil {
		t.Error("pawn should be back on its origin square")
	}
}

func TestNeighborsOnOrganizedLine(t *testing.T) {
	b := standardBoard()
	dir := coord.Normalize(0, 1)
	neg, pos := b.Neighbors(dir, coord.New(5, 2))
	if neg == nil || neg.Type.GetRaw() != piece.RawKing {
		t.Error("expected the white king as the nearer neighbor behind the e-pawn")
	}
	if pos == nil || pos.Type.GetRaw() != piece.RawPawn {
		t.Error("expected the black e-pawn as the nearer neighbor ahead")
	}
}
