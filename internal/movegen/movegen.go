// Package movegen is the Move Generator (C3): turns a piece's
// descriptor plus current board state into the set of pseudo-legal
// moves it could make (check legality is resolve's job, C5).
//
// zurichess sources: movegen.go's genPawnMoves/genKnightMoves/
// genBishopMoves/genKingMoves, generalized from bitboard shifts/masks
// to descriptor-driven offset walks and organized-line scans.
package movegen

import (
	"github.com/mosoi-variant/vareng/internal/board"
	"github.com/mosoi-variant/vareng/internal/coord"
	"github.com/mosoi-variant/vareng/internal/move"
	"github.com/mosoi-variant/vareng/internal/moveset"
	"github.com/mosoi-variant/vareng/internal/piece"
)

// Options narrows generation to the quiescence subset (violent moves
// only) for the search engine's quiescence phase (§4.8).
type Options struct {
	ViolentOnly bool
}

// Calculate returns p's pseudo-legal moves on b: individual leaps,
// sliding rays respecting descriptor limits and blocking, and special
// movers (pawn advances/captures/en-passant/promotion, king
// castling, rose waypoint rides).
func Calculate(b *board.Board, p *piece.Piece, opts Options) []move.Move {
	desc := b.Registry.GetPieceMoveset(p.Type.GetRaw())
	var moves []move.Move

	moves = append(moves, individualMoves(b, p, desc, opts)...)
	moves = append(moves, slidingMoves(b, p, desc, opts)...)

	switch desc.Special {
	case moveset.SpecialPawn:
		moves = append(moves, pawnMoves(b, p, opts)...)
	case moveset.SpecialKing:
		moves = append(moves, castleMoves(b, p)...)
	case moveset.SpecialRose:
		moves = append(moves, roseMoves(b, p, opts)...)
	}
	return moves
}

func individualMoves(b *board.Board, p *piece.Piece, desc *moveset.Descriptor, opts Options) []move.Move {
	var out []move.Move
	for _, off := range desc.Individual {
		dst := p.Coords.Add(off)
		target := b.PieceAt(dst)
		if target != nil && (target.Type.GetColor() == p.Type.GetColor() || target.Type.GetRaw() == piece.RawVoid) {
			continue
		}
		if opts.ViolentOnly && target == nil {
			continue
		}
		m := move.Move{From: p.Coords, To: dst, Piece: p.Type}
		if target != nil {
			m.Captured = target
		}
		out = append(out, m)
	}
	return out
}

func slidingMoves(b *board.Board, p *piece.Piece, desc *moveset.Descriptor, opts Options) []move.Move {
	var out []move.Move
	blocking := desc.GetBlockingFunction()
	ignore := desc.GetIgnoreFunction()
	for dir, limits := range desc.Sliding {
		out = append(out, rayMoves(b, p, dir, limits.Pos, blocking, ignore, opts)...)
		out = append(out, rayMoves(b, p, negate(dir), limits.Neg, blocking, ignore, opts)...)
	}
	return out
}

func negate(d coord.Dir) coord.Dir { return coord.Dir{DX: -d.DX, DY: -d.DY} }

// movegenHorizon caps the quiet destinations generated along a
// direction whose organized line has no blocker at all — the one case
// board.Neighbors can't turn into a bounded scan on its own, since an
// empty ray has no next occupied square to jump to. Ordinary captures
// and blocker-bounded rays never consult this; it only trims how far
// an open slide is enumerated into truly empty space.
const movegenHorizon = 64

// rayMoves walks along dir from p's square up to limit steps,
// consulting blocking/ignore at each occupied square. It jumps
// directly between occupied squares via board.Neighbors (the same
// organized-line lookup castleMoves' findCastlePartner uses) instead
// of stepping one square at a time, since limit may be coord.Infinite
// and the line between p and its nearest blocker may be empty for an
// arbitrary distance.
func rayMoves(b *board.Board, p *piece.Piece, dir coord.Dir, limit int64, blocking moveset.BlockingFunc, ignore moveset.IgnoreFunc, opts Options) []move.Move {
	if limit <= 0 {
		return nil
	}
	var out []move.Move
	canon := coord.Normalize(dir.DX, dir.DY)
	positive := dir == canon
	off := coord.Offset{DX: dir.DX, DY: dir.DY}
	ownStep := coord.Step(canon, p.Coords)

	// addQuiet appends quiet destinations at distances from..to
	// (inclusive, 1-based) along dir from p's square.
	addQuiet := func(from, to int64) {
		if opts.ViolentOnly || to < from {
			return
		}
		cur := p.Coords.Add(coord.Offset{DX: off.DX * (from - 1), DY: off.DY * (from - 1)})
		for s := from; s <= to; s++ {
			cur = cur.Add(off)
			out = append(out, move.Move{From: p.Coords, To: cur, Piece: p.Type})
		}
	}

	at := p.Coords
	done := int64(0)
	for done < limit {
		neg, pos := b.Neighbors(canon, at)
		next := pos
		if !positive {
			next = neg
		}
		if next == nil {
			end := limit
			if end-done > movegenHorizon {
				end = done + movegenHorizon
			}
			addQuiet(done+1, end)
			return out
		}
		nextStep := abs64(coord.Step(canon, next.Coords) - ownStep)
		if nextStep > limit {
			addQuiet(done+1, limit)
			return out
		}
		addQuiet(done+1, nextStep-1)
		done = nextStep
		at = next.Coords

		if ignore(p, next.Coords) {
			continue
		}
		switch blocking(p.Type.GetColor(), next, p.Coords) {
		case moveset.Transparent:
			continue
		case moveset.BlockedAfter:
			if next.Type.GetColor() != p.Type.GetColor() {
				out = append(out, move.Move{From: p.Coords, To: next.Coords, Piece: p.Type, Captured: next})
			}
			return out
		default: // BlockedBefore
			return out
		}
	}
	return out
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
