// Package move defines the move representation used across the
// generator, resolver, executor, search, and notation packages.
//
// zurichess sources: movegen.go's packed uint32 Move, generalized to a
// plain struct since coordinates no longer fit in 6 bits each.
package move

import (
	"fmt"

	"github.com/mosoi-variant/vareng/internal/coord"
	"github.com/mosoi-variant/vareng/internal/piece"
)

// Kind distinguishes move shapes that need special execution handling
// beyond "piece goes from From to To."
type Kind uint8

const (
	Normal Kind = iota
	DoubleStep
	EnPassant
	Castle
	Promotion
)

// Move is one fully-specified move: enough to apply, undo, and render
// without consulting the board again (§3 "Move").
type Move struct {
	From, To  coord.Coord
	Piece     piece.Type // mover's type before the move
	Captured  *piece.Piece
	Kind      Kind
	PromoteTo piece.Raw // valid iff Kind == Promotion

	// RookFrom/RookTo are populated for Kind == Castle: the paired
	// rook-like piece's own origin/destination, generalizing the
	// teacher's fixed CastlingRook lookup to whatever piece a variant
	// designates as the castling partner.
	RookFrom, RookTo coord.Coord
	RookPiece        *piece.Piece

	// LosesSpecialRight lists further squares whose special right
	// (first-move eligibility) this move revokes — for a castle, the
	// partner's origin. The mover's origin and a captured piece's square
	// are not listed; ApplyMove always revokes those.
	LosesSpecialRight []coord.Coord
}

// IsCapture reports whether the move removes an enemy piece from the
// board (including en-passant, whose captured square differs from To).
func (m Move) IsCapture() bool { return m.Captured != nil }

// IsViolent reports whether m is a capture or promotion, the
// quiescence search boundary (§4.8 note mirroring the teacher's
// IsViolent on packed moves).
func (m Move) IsViolent() bool {
	return m.IsCapture() || m.Kind == Promotion
}

// String renders m in the compact notation S>E[P] (§5): origin,
// destination, and an optional bracketed promotion raw id.
func (m Move) String() string {
	if m.Kind == Promotion {
		return fmt.Sprintf("%s>%s[%d]", m.From, m.To, m.PromoteTo)
	}
	return fmt.Sprintf("%s>%s", m.From, m.To)
}

// Equal compares two moves by their board-visible effect (From, To,
// Kind, PromoteTo) — used by search move-ordering tables (killer,
// counter-move) to match moves across plies without caring about the
// Captured pointer identity.
func (m Move) Equal(o Move) bool {
	return m.From.Equal(o.From) && m.To.Equal(o.To) && m.Kind == o.Kind && m.PromoteTo == o.PromoteTo
}
