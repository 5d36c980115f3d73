package resolve

import (
	"testing"

	"github.com/mosoi-variant/vareng/internal/board"
	"github.com/mosoi-variant/vareng/internal/coord"
	"github.com/mosoi-variant/vareng/internal/move"
	"github.com/mosoi-variant/vareng/internal/moveset"
	"github.com/mosoi-variant/vareng/internal/piece"
	"github.com/mosoi-variant/vareng/internal/rules"
)

func TestPinnedPieceCannotMoveOffLine(t *testing.T) {
	rset := rules.Default()
	registry := moveset.StandardRegistry()
	b := board.FromPlacements(rset, registry, []board.Placement{
		{Raw: piece.RawKing, Player: piece.White, At: coord.New(5, 1)},
		{Raw: piece.RawBishop, Player: piece.White, At: coord.New(5, 2)},
		{Raw: piece.RawRook, Player: piece.Black, At: coord.New(5, 8)},
	}, piece.White)
	bishop := b.PieceAt(coord.New(5, 2))
	pseudo := []move.Move{
		{From: bishop.Coords, To: coord.New(4, 3), Piece: bishop.Type},
		{From: bishop.Coords, To: coord.New(5, 3), Piece: bishop.Type},
	}
	// Legal filters by check only, so the hand-built candidate that stays
	// on the file keeps the pin closed and survives.
	legal := Legal(b, piece.White, pseudo)
	if len(legal) != 1 || !legal[0].To.Equal(coord.New(5, 3)) {
		t.Errorf("pinned bishop must not be able to leave the file; expected only the on-file move to remain, got %d legal moves", len(legal))
	}
}

func TestUnfilteredWhenNotUsingCheckmate(t *testing.T) {
	rset := rules.Default()
	rset.Players[piece.White].WinConditions = map[rules.WinCondition]bool{rules.RoyalCapture: true}
	registry := moveset.StandardRegistry()
	b := board.FromPlacements(rset, registry, []board.Placement{
		{Raw: piece.RawKing, Player: piece.White, At: coord.New(5, 1)},
	}, piece.White)
	pseudo := []move.Move{{From: coord.New(5, 1), To: coord.New(5, 2), Piece: b.PieceAt(coord.New(5, 1)).Type}}
	legal := Legal(b, piece.White, pseudo)
	if len(legal) != 1 {
		t.Error("royal-capture rulesets should not filter self-check moves")
	}
}
