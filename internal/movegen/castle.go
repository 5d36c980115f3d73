package movegen

import (
	"github.com/mosoi-variant/vareng/internal/board"
	"github.com/mosoi-variant/vareng/internal/check"
	"github.com/mosoi-variant/vareng/internal/coord"
	"github.com/mosoi-variant/vareng/internal/move"
	"github.com/mosoi-variant/vareng/internal/piece"
)

// castleMoves generates castling candidates for a king-type piece:
// any rook-like piece on the king's rank sharing the king's special
// right, with an empty transit path and no attacked square between
// (inclusive of origin and destination), generalizing the teacher's
// fixed kingside/queenside pair into "nearest special-right partner in
// either direction."
func castleMoves(b *board.Board, king *piece.Piece) []move.Move {
	if !b.HasSpecialRight(king.Coords) {
		return nil
	}
	_, pl := piece.Split(king.Type)
	var out []move.Move
	for _, dx := range []int64{1, -1} {
		partner, ok := findCastlePartner(b, king, dx)
		if !ok {
			continue
		}
		kingTo := king.Coords.Add(coord.Offset{DX: 2 * dx, DY: 0})
		rookTo := king.Coords.Add(coord.Offset{DX: dx, DY: 0})
		if !spanEmptyExcept(b, king.Coords, partner.Coords, king, partner) {
			continue
		}
		if !transitClear(b, king.Coords, kingTo, pl) {
			continue
		}
		out = append(out, move.Move{
			From: king.Coords, To: kingTo, Piece: king.Type, Kind: move.Castle,
			RookFrom: partner.Coords, RookTo: rookTo, RookPiece: partner,
			LosesSpecialRight: []coord.Coord{partner.Coords},
		})
	}
	return out
}

// rankDir is the normalized horizontal slide direction, the organized
// line every piece on a rank is indexed under.
var rankDir = coord.Normalize(1, 0)

// findCastlePartner looks up the king's nearest neighbor on its rank
// in direction dx via the board's organized-line index — a binary
// search on the line rather than stepping square-by-square, which would never
// terminate along an empty direction on an unbounded board. It
// qualifies as a castling partner if it shares the king's special
// right and player.
func findCastlePartner(b *board.Board, king *piece.Piece, dx int64) (*piece.Piece, bool) {
	_, pl := piece.Split(king.Type)
	neg, pos := b.Neighbors(rankDir, king.Coords)
	p := pos
	if dx < 0 {
		p = neg
	}
	if p == nil || p.Type.GetColor() != pl || !b.HasSpecialRight(p.Coords) {
		return nil, false
	}
	return p, true
}

// spanEmptyExcept verifies every square strictly between a and z on
// their shared rank is empty, ignoring the king and rook themselves.
func spanEmptyExcept(b *board.Board, a, z coord.Coord, king, rook *piece.Piece) bool {
	dx := int64(1)
	if z.X < a.X {
		dx = -1
	}
	cur := a.Add(coord.Offset{DX: dx, DY: 0})
	for !cur.Equal(z) {
		if p := b.PieceAt(cur); p != nil && p != king && p != rook {
			return false
		}
		cur = cur.Add(coord.Offset{DX: dx, DY: 0})
	}
	return true
}

// transitClear verifies every square the king crosses (inclusive of
// from/to, exclusive of squares only the rook crosses) is unattacked,
// the "king may not pass through or land in check" rule (§4.2), and
// that every square after from is empty, so a partner standing one or
// two squares from the king never qualifies.
func transitClear(b *board.Board, from, to coord.Coord, pl piece.Player) bool {
	dx := int64(1)
	if to.X < from.X {
		dx = -1
	}
	cur := from
	for {
		if check.IsAttacked(b, cur, pl.Opposite()) {
			return false
		}
		if !cur.Equal(from) && b.PieceAt(cur) != nil {
			return false
		}
		if cur.Equal(to) {
			return true
		}
		cur = cur.Add(coord.Offset{DX: dx, DY: 0})
	}
}
