// Package check is the Check Detector (C4): given a board and a
// player, finds every enemy piece currently attacking that player's
// royal square(s) without generating full movesets.
//
// zurichess sources: engine/position.go's GetAttacker (smallest
// attacker lookup used for SEE), generalized into a full attacker
// enumeration driven by the moveset registry's vicinity tables instead
// of a fixed per-figure attack-bitboard table.
package check

import (
	"github.com/mosoi-variant/vareng/internal/board"
	"github.com/mosoi-variant/vareng/internal/coord"
	"github.com/mosoi-variant/vareng/internal/moveset"
	"github.com/mosoi-variant/vareng/internal/piece"
)

// Attackers returns every enemy piece currently attacking sq, scanning
// in the three passes described in §4.3: jumpers via the vicinity
// table, special movers via the special-vicinity table (re-verified),
// then sliders by walking each registered direction from sq outward
// using the board's organized lines.
func Attackers(b *board.Board, sq coord.Coord, by piece.Player) []*piece.Piece {
	var out []*piece.Piece
	seen := make(map[*piece.Piece]bool)
	add := func(p *piece.Piece) {
		if p != nil && !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}

	for _, off := range b.Registry.VicinityOffsets() {
		// A jumper at sq+off would reach sq via -off from its own
		// square; so candidates sit at sq plus the offset (symmetric
		// for all registered jump patterns, since Individual sets are
		// built without assuming direction).
		from := sq.Add(off)
		p := b.PieceAt(from)
		if p == nil || p.Type.GetColor() != by {
			continue
		}
		desc := b.Registry.GetPieceMoveset(p.Type.GetRaw())
		if containsOffset(desc.Individual, from.Sub(sq)) || containsOffset(desc.Individual, sq.Sub(from)) {
			add(p)
		}
	}

	for _, off := range b.Registry.SpecialVicinityOffsets() {
		// The table holds offsets a special mover reaches from its own
		// square, so a candidate attacker sits at sq minus the offset.
		from := sq.Add(coord.Offset{DX: -off.DX, DY: -off.DY})
		p := b.PieceAt(from)
		if p == nil || p.Type.GetColor() != by {
			continue
		}
		if attacksSpecially(b, p, sq) {
			add(p)
		}
	}

	for _, dir := range b.Registry.SlidingDirections() {
		if p := firstSliderHit(b, sq, dir, by); p != nil {
			add(p)
		}
		if p := firstSliderHit(b, sq, negateDir(dir), by); p != nil {
			add(p)
		}
	}
	return out
}

// IsAttacked reports whether any enemy of by's opponent attacks sq —
// shorthand used by castling legality (king's transit squares) and
// the resolver's existing-check test.
func IsAttacked(b *board.Board, sq coord.Coord, byPlayer piece.Player) bool {
	return len(Attackers(b, sq, byPlayer)) > 0
}

// InCheck reports whether any of pl's royal pieces are attacked.
func InCheck(b *board.Board, pl piece.Player) bool {
	for _, royal := range b.Royals(pl) {
		if IsAttacked(b, royal.Coords, pl.Opposite()) {
			return true
		}
	}
	return false
}

func containsOffset(offsets []coord.Offset, o coord.Offset) bool {
	for _, c := range offsets {
		if c == o {
			return true
		}
	}
	return false
}

func negateDir(d coord.Dir) coord.Dir { return coord.Dir{DX: -d.DX, DY: -d.DY} }

// firstSliderHit finds the nearest occupied square from sq along dir
// via the board's organized-line index (board.Neighbors), the same
// binary-search lookup castleMoves' findCastlePartner uses — walking square by
// square here would never terminate along an empty direction on an
// unbounded board. Returns the piece there if it's an enemy slider
// whose descriptor includes dir (or its negation) and reaches far
// enough.
func firstSliderHit(b *board.Board, sq coord.Coord, dir coord.Dir, by piece.Player) *piece.Piece {
	canon := coord.Normalize(dir.DX, dir.DY)
	neg, pos := b.Neighbors(canon, sq)
	p := pos
	if dir != canon {
		p = neg
	}
	if p == nil || p.Type.GetColor() != by {
		return nil
	}
	desc := b.Registry.GetPieceMoveset(p.Type.GetRaw())
	lim, ok := desc.Sliding[canon]
	if !ok {
		return nil
	}
	step := abs64(coord.Step(canon, p.Coords) - coord.Step(canon, sq))
	if dir == canon && step <= lim.Neg {
		return p
	}
	if dir != canon && step <= lim.Pos {
		return p
	}
	return nil
}

// attacksSpecially re-verifies whether a special mover at p.Coords
// actually threatens sq, since specialVicinity only records candidate
// offsets (pawn diagonals are color-specific; rose waypoints depend
// on occupancy along the ride).
func attacksSpecially(b *board.Board, p *piece.Piece, sq coord.Coord) bool {
	desc := b.Registry.GetPieceMoveset(p.Type.GetRaw())
	switch desc.Special {
	case moveset.SpecialPawn:
		_, pl := piece.Split(p.Type)
		dy := int64(1)
		if pl == piece.Black {
			dy = -1
		}
		off := sq.Sub(p.Coords)
		return off.DY == dy && (off.DX == 1 || off.DX == -1)
	case moveset.SpecialKing:
		off := sq.Sub(p.Coords)
		return abs64(off.DX) <= 1 && abs64(off.DY) <= 1 && (off.DX != 0 || off.DY != 0)
	case moveset.SpecialRose:
		for _, cw := range []bool{true, false} {
			for _, wp := range moveset.RoseWaypoints(p.Coords, cw) {
				if wp.Equal(sq) {
					return true
				}
				if b.PieceAt(wp) != nil {
					break
				}
			}
		}
		return false
	}
	return false
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
