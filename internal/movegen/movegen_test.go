package movegen

import (
	"testing"

	"github.com/mosoi-variant/vareng/internal/board"
	"github.com/mosoi-variant/vareng/internal/coord"
	"github.com/mosoi-variant/vareng/internal/moveset"
	"github.com/mosoi-variant/vareng/internal/piece"
	"github.com/mosoi-variant/vareng/internal/rules"
)

func standardBoard() *board.Board {
	rset := rules.Default()
	registry := moveset.StandardRegistry()
	return board.FromPlacements(rset, registry, board.StandardPlacements(), rset.TurnOrder[0])
}

func TestPawnDoubleStepFromStart(t *testing.T) {
	b := standardBoard()
	p := b.PieceAt(coord.New(5, 2))
	moves := Calculate(b, p, Options{})
	var hasSingle, hasDouble bool
	for _, m := range moves {
		if m.To.Equal(coord.New(5, 3)) {
			hasSingle = true
		}
		if m.To.Equal(coord.New(5, 4)) {
			hasDouble = true
		}
	}
	if !hasSingle || !hasDouble {
		t.Error("expected both single and double advance from the starting rank")
	}
}

func TestKnightMovesFromStart(t *testing.T) {
	b := standardBoard()
	p := b.PieceAt(coord.New(2, 1))
	moves := Calculate(b, p, Options{})
	// The board has no edges: of the eight leaps from b1 only d2 (own
	// pawn) is blocked.
	if len(moves) != 7 {
		t.Fatalf("expected 7 knight destinations from b1, got %d", len(moves))
	}
}

func TestRookBlockedAtStart(t *testing.T) {
	b := standardBoard()
	p := b.PieceAt(coord.New(1, 1))
	moves := Calculate(b, p, Options{})
	// Own pawn (a2) and knight (b1) block two rays; the two rays leading
	// off the 8x8 area are open and enumerated to movegenHorizon each.
	if len(moves) != 2*movegenHorizon {
		t.Errorf("rook should be blocked toward a2 and b1 and slide %d squares along each open ray, got %d moves", movegenHorizon, len(moves))
	}
}

func TestSlidingStopsAtEnemyCapture(t *testing.T) {
	rset := rules.Default()
	registry := moveset.StandardRegistry()
	b := board.FromPlacements(rset, registry, []board.Placement{
		{Raw: piece.RawRook, Player: piece.White, At: coord.New(1, 1)},
		{Raw: piece.RawPawn, Player: piece.Black, At: coord.New(1, 4)},
	}, piece.White)
	p := b.PieceAt(coord.New(1, 1))
	moves := Calculate(b, p, Options{})
	var furthest int64
	for _, m := range moves {
		if m.To.X == 1 && m.To.Y > furthest {
			furthest = m.To.Y
		}
	}
	if furthest != 4 {
		t.Errorf("rook should be able to capture on y=4 but not beyond, furthest reached y=%d", furthest)
	}
}
