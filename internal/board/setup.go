package board

import (
	"github.com/mosoi-variant/vareng/internal/coord"
	"github.com/mosoi-variant/vareng/internal/moveset"
	"github.com/mosoi-variant/vareng/internal/piece"
	"github.com/mosoi-variant/vareng/internal/rules"
)

// Placement is one piece to seed onto a freshly constructed board.
type Placement struct {
	Raw    piece.Raw
	Player piece.Player
	At     coord.Coord

	// SpecialRight grants the piece its first-move right (castling
	// eligibility for kings/rooks, double-step eligibility for pawns)
	// at setup time.
	SpecialRight bool
}

// FromPlacements builds a board and populates it from placements, the
// entry point the worker protocol's "lf" loader and perft test
// fixtures both use instead of hand-building a Board field by field.
func FromPlacements(rset *rules.Config, registry *moveset.Registry, placements []Placement, turn piece.Player) *Board {
	b := New(rset, registry)
	b.turn = turn
	index := 0
	for _, pl := range placements {
		p := &piece.Piece{Type: piece.Build(pl.Raw, pl.Player), Coords: pl.At, Index: index}
		index++
		b.SetPiece(p)
		if pl.SpecialRight {
			b.GrantSpecialRight(pl.At)
		}
	}
	return b
}

// StandardPlacements returns the orthodox chess starting placements on
// an 8x1-indexed rank/file board (ranks 1..8, files 1..8), the fixture
// perft tests and the worker protocol's default position both share.
func StandardPlacements() []Placement {
	back := []piece.Raw{piece.RawRook, piece.RawKnight, piece.RawBishop, piece.RawQueen, piece.RawKing, piece.RawBishop, piece.RawKnight, piece.RawRook}
	var out []Placement
	for file := int64(1); file <= 8; file++ {
		out = append(out, Placement{Raw: back[file-1], Player: piece.White, At: coord.New(file, 1), SpecialRight: back[file-1] == piece.RawRook || back[file-1] == piece.RawKing})
		out = append(out, Placement{Raw: piece.RawPawn, Player: piece.White, At: coord.New(file, 2), SpecialRight: true})
		out = append(out, Placement{Raw: piece.RawPawn, Player: piece.Black, At: coord.New(file, 7), SpecialRight: true})
		out = append(out, Placement{Raw: back[file-1], Player: piece.Black, At: coord.New(file, 8), SpecialRight: back[file-1] == piece.RawRook || back[file-1] == piece.RawKing})
	}
	return out
}
