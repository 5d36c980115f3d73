package movegen

import (
	"github.com/mosoi-variant/vareng/internal/board"
	"github.com/mosoi-variant/vareng/internal/coord"
	"github.com/mosoi-variant/vareng/internal/move"
	"github.com/mosoi-variant/vareng/internal/piece"
)

// forwardDY returns the pawn's forward direction: +1 for White's
// advancing rank order, -1 for Black, generalizing the teacher's
// POV()-flipped shift direction.
func forwardDY(pl piece.Player) int64 {
	if pl == piece.Black {
		return -1
	}
	return 1
}

// pawnMoves computes straight advances (single/double), diagonal
// captures, en-passant, and promotion expansion for a pawn-type piece.
func pawnMoves(b *board.Board, p *piece.Piece, opts Options) []move.Move {
	var out []move.Move
	_, pl := piece.Split(p.Type)
	dy := forwardDY(pl)

	ahead := p.Coords.Add(coord.Offset{DX: 0, DY: dy})
	if b.PieceAt(ahead) == nil {
		if !opts.ViolentOnly || b.Rules.IsPromotionRank(pl, ahead.Y) {
			out = append(out, expandPromotion(b, p, pl, move.Move{From: p.Coords, To: ahead, Piece: p.Type})...)
		}
		if b.HasSpecialRight(p.Coords) {
			twoAhead := p.Coords.Add(coord.Offset{DX: 0, DY: 2 * dy})
			if b.PieceAt(twoAhead) == nil && !opts.ViolentOnly {
				out = append(out, move.Move{From: p.Coords, To: twoAhead, Piece: p.Type, Kind: move.DoubleStep})
			}
		}
	}

	for _, dx := range []int64{-1, 1} {
		dst := p.Coords.Add(coord.Offset{DX: dx, DY: dy})
		target := b.PieceAt(dst)
		if target != nil && target.Type.GetColor() != pl && target.Type.GetRaw() != piece.RawVoid {
			out = append(out, expandPromotion(b, p, pl, move.Move{From: p.Coords, To: dst, Piece: p.Type, Captured: target})...)
			continue
		}
		if ep, victim := b.EnPassant(); ep != nil && ep.Equal(dst) {
			out = append(out, move.Move{
				From: p.Coords, To: dst, Piece: p.Type, Kind: move.EnPassant,
				Captured: b.PieceAt(*victim),
			})
		}
	}
	return out
}

// expandPromotion turns a bare advance/capture into one move per
// allowed promotion type when it lands on a promotion rank, or
// returns m unchanged otherwise.
func expandPromotion(b *board.Board, p *piece.Piece, pl piece.Player, m move.Move) []move.Move {
	if !b.Rules.IsPromotionRank(pl, m.To.Y) {
		return []move.Move{m}
	}
	allowed := b.Rules.AllowedPromotions(pl)
	out := make([]move.Move, 0, len(allowed))
	for _, raw := range allowed {
		pm := m
		pm.Kind = move.Promotion
		pm.PromoteTo = raw
		out = append(out, pm)
	}
	return out
}
