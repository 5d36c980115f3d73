// Package eval is the Evaluator (C7): scores a position from the
// side-to-move's perspective for the search engine's leaf nodes.
//
// zurichess sources: search.go's Score{M,E}/Eval{M,E} midgame/endgame
// pair and .Feed(phase) blend, kept verbatim in shape; material values
// are reread from a table keyed by raw type instead of the teacher's
// fixed per-Figure array, since raw types are open.
package eval

import (
	"github.com/mosoi-variant/vareng/internal/board"
	"github.com/mosoi-variant/vareng/internal/piece"
)

// Score pairs a midgame and endgame centipawn value, blended by game
// phase the way the teacher's tapered eval does.
type Score struct {
	M, E int32
}

func (s Score) Add(o Score) Score { return Score{s.M + o.M, s.E + o.E} }
func (s Score) Neg() Score        { return Score{-s.M, -s.E} }

// Feed blends M/E by phase, a 0..256 value where 256 is full midgame
// material and 0 is bare-kings endgame.
func (s Score) Feed(phase int32) int32 {
	return (s.M*phase + s.E*(256-phase)) / 256
}

// Values holds the material table a variant can override; raw types
// with no entry default to 0 (a custom piece the designer intends as
// purely positional).
type Values struct {
	Material map[piece.Raw]Score
	// PhaseWeight is how many phase units a raw type's presence
	// contributes, used to compute the 0..256 taper.
	PhaseWeight map[piece.Raw]int32
}

// StandardValues is the orthodox material table, the values the
// teacher's search.go hardcodes in its Figure-indexed arrays.
func StandardValues() *Values {
	return &Values{
		Material: map[piece.Raw]Score{
			piece.RawPawn:   {M: 100, E: 120},
			piece.RawKnight: {M: 320, E: 300},
			piece.RawBishop: {M: 330, E: 320},
			piece.RawRook:   {M: 500, E: 520},
			piece.RawQueen:  {M: 900, E: 940},
			piece.RawRose:   {M: 380, E: 360},
		},
		PhaseWeight: map[piece.Raw]int32{
			piece.RawKnight: 1,
			piece.RawBishop: 1,
			piece.RawRook:   2,
			piece.RawQueen:  4,
		},
	}
}

const totalPhase = 24 // 2N+2B+2R*2+Q per side at game start, teacher's taper denominator

// Material returns the raw, unweighted material balance from White's
// perspective.
func Material(b *board.Board, values *Values) Score {
	var total Score
	for _, p := range b.Pieces() {
		raw, pl := piece.Split(p.Type)
		s := values.Material[raw]
		if pl == piece.Black {
			s = s.Neg()
		}
		total = total.Add(s)
	}
	return total
}

// Phase computes the 0..256 taper value from remaining non-pawn
// material, saturating at the extremes.
func Phase(b *board.Board, values *Values) int32 {
	var sum int32
	for _, p := range b.Pieces() {
		raw, _ := piece.Split(p.Type)
		sum += values.PhaseWeight[raw]
	}
	if sum > totalPhase {
		sum = totalPhase
	}
	return sum * 256 / totalPhase
}

// Evaluate scores the position from the side-to-move's perspective,
// the negamax convention the teacher's search.go relies on throughout.
func Evaluate(b *board.Board, values *Values) int32 {
	score := Material(b, values)
	v := score.Feed(Phase(b, values))
	if b.Turn() == piece.Black {
		return -v
	}
	return v
}
