// Package board is the Board Model (C1): piece storage, organized
// lines for O(line length) sliding scans, special-move rights,
// en-passant state, and the invariant-preserving mutation primitives
// every other package builds on.
//
// zurichess sources: engine/position.go (Position's ByFigure/ByColor
// storage, states/curr stack, pushState/popState) generalized from
// bitboards to coordinate maps, since the board is unbounded.
package board

import (
	"fmt"
	"sort"

	"github.com/mosoi-variant/vareng/internal/coord"
	"github.com/mosoi-variant/vareng/internal/moveset"
	"github.com/mosoi-variant/vareng/internal/piece"
	"github.com/mosoi-variant/vareng/internal/rules"
	"github.com/mosoi-variant/vareng/internal/zobrist"
)

// lineEntry is one piece's position on an organized line, kept sorted
// by Step so a slider's scan walks outward from its own position in
// O(1) amortized per direction instead of rescanning every piece.
type lineEntry struct {
	step  int64
	piece *piece.Piece
}

// state is the undoable portion of board state, pushed by
// ApplyMove/ApplyNullMove and popped by UndoMove/UndoNullMove the way
// zurichess's states stack works.
type state struct {
	turn            piece.Player
	moveIndex       int
	enpassant       *coord.Coord
	enpassantVictim *coord.Coord
	moveRuleCounter int
	hash            zobrist.Hash
	revokedRights   []coord.Key // special rights cleared by the move being undone
}

// Board is the mutable game position.
type Board struct {
	Rules    *rules.Config
	Registry *moveset.Registry
	zobrist  *zobrist.Table

	squares map[coord.Key]*piece.Piece

	// lines[dir][lineKey] holds every piece on that line under dir,
	// sorted by Step — the organized-line structure §9 calls for.
	lines map[coord.Dir]map[coord.Key][]lineEntry

	specialRights map[coord.Key]bool

	turn            piece.Player
	moveIndex       int
	enpassant       *coord.Coord // square a pawn may capture onto
	enpassantVictim *coord.Coord // square the captured pawn actually sits on
	moveRuleCounter int

	hash zobrist.Hash

	states []state
}

// New creates an empty board ready for SetPiece calls, the way a
// position-setup routine (FEN/ICN parser) populates it before play.
func New(rset *rules.Config, registry *moveset.Registry) *Board {
	b := &Board{
		Rules:         rset,
		Registry:      registry,
		zobrist:       zobrist.NewTable(1),
		squares:       make(map[coord.Key]*piece.Piece),
		lines:         make(map[coord.Dir]map[coord.Key][]lineEntry),
		specialRights: make(map[coord.Key]bool),
		turn:          piece.White,
	}
	if len(rset.TurnOrder) > 0 {
		b.turn = rset.TurnOrder[0]
	}
	for _, dir := range registry.SlidingDirections() {
		b.lines[dir] = make(map[coord.Key][]lineEntry)
	}
	return b
}

// Turn returns the player to move.
func (b *Board) Turn() piece.Player { return b.turn }

// MoveIndex returns the half-move counter since game start.
func (b *Board) MoveIndex() int { return b.moveIndex }

// Hash returns the current incremental zobrist hash.
func (b *Board) Hash() zobrist.Hash { return b.hash }

// PieceAt returns the piece on sq, or nil if empty.
func (b *Board) PieceAt(sq coord.Coord) *piece.Piece {
	return b.squares[sq.Key()]
}

// SetPiece places p at its Coords, used by setup code before play
// begins. Not for use mid-game; MakeMove owns all in-game mutation.
func (b *Board) SetPiece(p *piece.Piece) {
	b.squares[p.Coords.Key()] = p
	b.indexIntoLines(p)
	b.hash ^= b.zobrist.PieceAt(p.Type, p.Coords.Key())
}

// GrantSpecialRight marks sq's occupant as still holding its special
// (first-move) right — castling eligibility, pawn double-step
// eligibility, or any variant-defined equivalent.
func (b *Board) GrantSpecialRight(sq coord.Coord) {
	b.specialRights[sq.Key()] = true
	b.hash ^= b.zobrist.SpecialRight(sq.Key())
}

// HasSpecialRight reports whether the piece originally set up at sq
// (identified by its origin square, the way castling rights are keyed
// by rook/king starting squares) still holds its right.
func (b *Board) HasSpecialRight(sq coord.Coord) bool {
	return b.specialRights[sq.Key()]
}

func (b *Board) revokeSpecialRight(sq coord.Coord) bool {
	if !b.specialRights[sq.Key()] {
		return false
	}
	delete(b.specialRights, sq.Key())
	b.hash ^= b.zobrist.SpecialRight(sq.Key())
	return true
}

// EnPassant returns the current en-passant target square and the
// victim pawn's actual square, or (nil, nil) if none is live.
func (b *Board) EnPassant() (*coord.Coord, *coord.Coord) {
	return b.enpassant, b.enpassantVictim
}

func (b *Board) setEnPassant(target, victim *coord.Coord) {
	if b.enpassant != nil {
		b.hash ^= b.zobrist.EnPassant(b.enpassant.Key())
	}
	b.enpassant, b.enpassantVictim = target, victim
	if target != nil {
		b.hash ^= b.zobrist.EnPassant(target.Key())
	}
}

// MoveRuleCounter returns the current move-rule (e.g. fifty-move)
// ply count since the last capture or pawn advance.
func (b *Board) MoveRuleCounter() int { return b.moveRuleCounter }

// indexIntoLines inserts p into every organized line it belongs on,
// keeping each line sorted by Step so insertion and the neighbor
// lookup during sliding scans are binary searches.
func (b *Board) indexIntoLines(p *piece.Piece) {
	for dir, byLine := range b.lines {
		lk := coord.LineKey(dir, p.Coords)
		entries := byLine[lk]
		step := coord.Step(dir, p.Coords)
		idx := sort.Search(len(entries), func(i int) bool { return entries[i].step >= step })
		entries = append(entries, lineEntry{})
		copy(entries[idx+1:], entries[idx:])
		entries[idx] = lineEntry{step: step, piece: p}
		byLine[lk] = entries
	}
}

func (b *Board) removeFromLines(p *piece.Piece) {
	for dir, byLine := range b.lines {
		lk := coord.LineKey(dir, p.Coords)
		entries := byLine[lk]
		for i, e := range entries {
			if e.piece == p {
				byLine[lk] = append(entries[:i], entries[i+1:]...)
				break
			}
		}
	}
}

// Neighbors returns the pieces on p's line under dir adjacent to it in
// the positive and negative direction (nil if none), the primitive
// the move generator and check detector use to find the first
// blocker along a ray without scanning the whole line (§9).
func (b *Board) Neighbors(dir coord.Dir, at coord.Coord) (neg, pos *piece.Piece) {
	byLine, ok := b.lines[dir]
	if !ok {
		return nil, nil
	}
	lk := coord.LineKey(dir, at)
	entries := byLine[lk]
	step := coord.Step(dir, at)
	idx := sort.Search(len(entries), func(i int) bool { return entries[i].step >= step })
	if idx < len(entries) && entries[idx].step == step {
		if idx > 0 {
			neg = entries[idx-1].piece
		}
		if idx+1 < len(entries) {
			pos = entries[idx+1].piece
		}
		return neg, pos
	}
	if idx > 0 {
		neg = entries[idx-1].piece
	}
	if idx < len(entries) {
		pos = entries[idx].piece
	}
	return neg, pos
}

// LineEntries returns every piece on the line through at under dir,
// in ascending Step order — used for full-line scans (check detector
// slider pass, §4.3 step 3).
func (b *Board) LineEntries(dir coord.Dir, at coord.Coord) []*piece.Piece {
	byLine, ok := b.lines[dir]
	if !ok {
		return nil
	}
	lk := coord.LineKey(dir, at)
	entries := byLine[lk]
	out := make([]*piece.Piece, len(entries))
	for i, e := range entries {
		out[i] = e.piece
	}
	return out
}

// Pieces returns every piece currently on the board, for perft-style
// full scans and evaluator initialization. Order is unspecified.
func (b *Board) Pieces() []*piece.Piece {
	out := make([]*piece.Piece, 0, len(b.squares))
	for _, p := range b.squares {
		out = append(out, p)
	}
	return out
}

// PiecesOf returns pl's pieces.
func (b *Board) PiecesOf(pl piece.Player) []*piece.Piece {
	var out []*piece.Piece
	for _, p := range b.squares {
		if p.Type.GetColor() == pl {
			out = append(out, p)
		}
	}
	return out
}

// Royals returns pl's pieces whose raw type is configured royal.
func (b *Board) Royals(pl piece.Player) []*piece.Piece {
	var out []*piece.Piece
	for _, p := range b.squares {
		raw, owner := piece.Split(p.Type)
		if owner == pl && b.Rules.IsRoyal(raw) {
			out = append(out, p)
		}
	}
	return out
}

func (b *Board) String() string {
	return fmt.Sprintf("board(turn=%d, pieces=%d, ply=%d)", b.turn, len(b.squares), b.moveIndex)
}
