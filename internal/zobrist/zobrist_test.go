package zobrist

import (
	"testing"

	"github.com/mosoi-variant/vareng/internal/coord"
	"github.com/mosoi-variant/vareng/internal/piece"
)

func TestPieceAtIsStableAndDistinct(t *testing.T) {
	tab := NewTable(1)
	a := tab.PieceAt(piece.Build(piece.RawPawn, piece.White), coord.New(1, 1).Key())
	b := tab.PieceAt(piece.Build(piece.RawPawn, piece.White), coord.New(1, 1).Key())
	if a != b {
		t.Error("the same (piece, square) must hash to the same key across calls")
	}
	c := tab.PieceAt(piece.Build(piece.RawPawn, piece.Black), coord.New(1, 1).Key())
	if a == c {
		t.Error("different players on the same square should get different keys")
	}
}

func TestSideKeyNonZero(t *testing.T) {
	tab := NewTable(7)
	if tab.Side() == 0 {
		t.Error("side-to-move key should be a nonzero random value with overwhelming probability")
	}
}
