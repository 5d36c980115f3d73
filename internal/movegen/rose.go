package movegen

import (
	"github.com/mosoi-variant/vareng/internal/board"
	"github.com/mosoi-variant/vareng/internal/move"
	"github.com/mosoi-variant/vareng/internal/moveset"
	"github.com/mosoi-variant/vareng/internal/piece"
)

// roseMoves rides the rose's waypoint cycle in both rotational
// directions, stopping at (and possibly including, if capturable) the
// first occupied square, the exotic mover spec.md's examples call for
// (E6).
func roseMoves(b *board.Board, p *piece.Piece, opts Options) []move.Move {
	var out []move.Move
	for _, cw := range []bool{true, false} {
		for _, wp := range moveset.RoseWaypoints(p.Coords, cw) {
			target := b.PieceAt(wp)
			if target == nil {
				if !opts.ViolentOnly {
					out = append(out, move.Move{From: p.Coords, To: wp, Piece: p.Type})
				}
				continue
			}
			if target.Type.GetColor() != p.Type.GetColor() && target.Type.GetRaw() != piece.RawVoid {
				out = append(out, move.Move{From: p.Coords, To: wp, Piece: p.Type, Captured: target})
			}
			break
		}
	}
	return out
}
