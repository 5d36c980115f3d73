// Package zobrist computes incremental position hashes, used as the
// transposition table's keys.
//
// zurichess sources: search.go's HashTable probing scheme and
// position.go's Zobrist field/piece keys, generalized from a
// fixed 12-piece*64-square key table to a table keyed by (raw type,
// player, coordinate key) pairs allocated on demand, since the board
// is unbounded and piece types are open.
package zobrist

import (
	"math/rand"

	"github.com/mosoi-variant/vareng/internal/coord"
	"github.com/mosoi-variant/vareng/internal/piece"
)

// Hash is a 64-bit position fingerprint. Collisions are possible and
// are the transposition table's concern (depth/kind guard a probe),
// not this package's.
type Hash uint64

// pieceKey identifies one (raw, player, square) triple.
type pieceKey struct {
	raw    piece.Raw
	player piece.Player
	sq     coord.Key
}

// Table hands out and caches random keys for pieces, side-to-move,
// en-passant target squares, and special rights, the way zurichess's package-level random tables
// do, but grown lazily since the coordinate space is unbounded.
type Table struct {
	rng       *rand.Rand
	pieces    map[pieceKey]uint64
	enpassant map[coord.Key]uint64
	special   map[coord.Key]uint64
	side      uint64
}

// NewTable builds a key table seeded deterministically so replaying
// the same game from the same seed reproduces identical hashes (used
// by tests and by the worker protocol's reproducibility requirement).
func NewTable(seed int64) *Table {
	r := rand.New(rand.NewSource(seed))
	return &Table{
		rng:       r,
		pieces:    make(map[pieceKey]uint64),
		enpassant: make(map[coord.Key]uint64),
		special:   make(map[coord.Key]uint64),
		side:      r.Uint64(),
	}
}

func (t *Table) pieceKeyFor(raw piece.Raw, pl piece.Player, sq coord.Key) uint64 {
	k := pieceKey{raw: raw, player: pl, sq: sq}
	if v, ok := t.pieces[k]; ok {
		return v
	}
	v := t.rng.Uint64()
	t.pieces[k] = v
	return v
}

// PieceAt returns (and lazily assigns) the key for a piece of type t
// standing on sq.
func (t *Table) PieceAt(typ piece.Type, sq coord.Key) Hash {
	raw, pl := piece.Split(typ)
	return Hash(t.pieceKeyFor(raw, pl, sq))
}

// EnPassant returns the key contributed by an en-passant target square.
func (t *Table) EnPassant(sq coord.Key) Hash {
	if v, ok := t.enpassant[sq]; ok {
		return Hash(v)
	}
	v := t.rng.Uint64()
	t.enpassant[sq] = v
	return Hash(v)
}

// SpecialRight returns the key contributed by one piece retaining a
// special right (castling-style first-move eligibility), keyed by the
// piece's origin square since the board has no fixed castling-rook
// slots to enumerate ahead of time.
func (t *Table) SpecialRight(sq coord.Key) Hash {
	if v, ok := t.special[sq]; ok {
		return Hash(v)
	}
	v := t.rng.Uint64()
	t.special[sq] = v
	return Hash(v)
}

// Side returns the key toggled whenever side to move changes.
func (t *Table) Side() Hash { return Hash(t.side) }
