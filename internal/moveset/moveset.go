// Package moveset is the Moveset Registry (C2): per-raw-type movement
// descriptors plus the vicinity tables move generation and check
// detection consult.
//
// zurichess sources: movegen.go's per-figure constants (Pawn..King)
// generalized from a fixed array into a registry so a variant can add
// raw types (e.g. "rose") without recompiling the figure enum.
package moveset

import (
	"github.com/mosoi-variant/vareng/internal/coord"
	"github.com/mosoi-variant/vareng/internal/piece"
)

// BlockResult is the outcome of testing one piece found along a slide
// direction (§3 Moveset descriptor "blocking").
type BlockResult int

const (
	Transparent   BlockResult = iota // piece does not block the ray at all (e.g. void with ignore semantics)
	BlockedBefore                    // ray stops one square before this piece (friendly block)
	BlockedAfter                     // ray includes this square then stops (enemy capture)
)

// BlockingFunc decides how a piece found along a ray blocks it.
type BlockingFunc func(mover piece.Player, onLine *piece.Piece, moverCoords coord.Coord) BlockResult

// IgnoreFunc reports whether a square should be skipped entirely when
// generating moves for mover (used by squares with "ignore" semantics,
// e.g. impassable terrain that isn't a piece).
type IgnoreFunc func(mover *piece.Piece, target coord.Coord) bool

// SpecialKind tags which closed-form special mover a descriptor uses,
// resolved at board-init per the §9 design note ("SpecialFn is a sum
// of concrete kinds").
type SpecialKind int

const (
	SpecialNone SpecialKind = iota
	SpecialPawn
	SpecialKing
	SpecialRose
)

// Limits is the signed [neg, pos] step bound along a slide direction
// (§4.2 "Sliding distance limit"). Values may be coord.Infinite.
type Limits struct {
	Neg, Pos int64
}

// Descriptor is the immutable per-raw-type moveset record (§3).
type Descriptor struct {
	Raw        piece.Raw
	Individual []coord.Offset
	Sliding    map[coord.Dir]Limits
	Blocking   BlockingFunc
	Ignore     IgnoreFunc
	Special    SpecialKind
}

// DefaultBlocking implements the orthodox rule: friendly pieces and
// void squares block one square before themselves, enemy pieces block
// on their own square (capturable), matching the teacher's implicit
// occupancy rule in genBishopMoves/genRookMoves (mask built from
// occupied/enemy bitboards).
func DefaultBlocking(mover piece.Player, onLine *piece.Piece, _ coord.Coord) BlockResult {
	if onLine.Type.GetColor() == mover || onLine.Type.GetRaw() == piece.RawVoid {
		return BlockedBefore
	}
	return BlockedAfter
}

// DefaultIgnore never skips a square.
func DefaultIgnore(_ *piece.Piece, _ coord.Coord) bool { return false }

// GetBlockingFunction returns d's blocking function, or
// DefaultBlocking if unset.
func (d *Descriptor) GetBlockingFunction() BlockingFunc {
	if d.Blocking != nil {
		return d.Blocking
	}
	return DefaultBlocking
}

// GetIgnoreFunction returns d's ignore function, or DefaultIgnore if
// unset.
func (d *Descriptor) GetIgnoreFunction() IgnoreFunc {
	if d.Ignore != nil {
		return d.Ignore
	}
	return DefaultIgnore
}

// Registry maps raw piece types to their descriptor, plus the derived
// vicinity tables (§4.1).
type Registry struct {
	descriptors map[piece.Raw]*Descriptor

	// vicinity maps an offset to the raw types whose Individual
	// moveset includes it — "what jumper types could capture a
	// square from this offset."
	vicinity map[coord.Offset][]piece.Raw

	// specialVicinity is the same shape for special movers whose
	// attack squares are only potential and require per-move
	// verification (pawn diagonals, rose waypoints).
	specialVicinity map[coord.Offset][]piece.Raw
}

// NewRegistry builds a registry from the game's active descriptors,
// computing the vicinity tables at construction time (§4.1: "built
// from the game's active piece types only").
func NewRegistry(descriptors []*Descriptor) *Registry {
	r := &Registry{
		descriptors:     make(map[piece.Raw]*Descriptor, len(descriptors)),
		vicinity:        make(map[coord.Offset][]piece.Raw),
		specialVicinity: make(map[coord.Offset][]piece.Raw),
	}
	for _, d := range descriptors {
		r.descriptors[d.Raw] = d
		for _, off := range d.Individual {
			r.vicinity[off] = append(r.vicinity[off], d.Raw)
		}
		for _, off := range specialVicinityOffsets(d) {
			r.specialVicinity[off] = append(r.specialVicinity[off], d.Raw)
		}
	}
	return r
}

// specialVicinityOffsets returns the candidate attack offsets a
// special mover might reach from, used only to seed specialVicinity;
// actual reachability is re-verified per-move by the move generator.
func specialVicinityOffsets(d *Descriptor) []coord.Offset {
	switch d.Special {
	case SpecialPawn:
		// Diagonal captures, one step forward in either color's
		// direction since raw descriptors are color-agnostic; the
		// generator filters by actual mover color.
		return []coord.Offset{{DX: -1, DY: 1}, {DX: 1, DY: 1}, {DX: -1, DY: -1}, {DX: 1, DY: -1}}
	case SpecialRose:
		return roseWaypointOffsets()
	default:
		return nil
	}
}

// GetPieceMoveset returns the descriptor registered for raw, or an
// empty descriptor for unregistered/neutral raws (§4.1: "neutral
// pieces yield empty").
func (r *Registry) GetPieceMoveset(raw piece.Raw) *Descriptor {
	if d, ok := r.descriptors[raw]; ok {
		return d
	}
	return &Descriptor{Raw: raw}
}

// Vicinity returns the raw types that could jump-attack a square from
// offset off.
func (r *Registry) Vicinity(off coord.Offset) []piece.Raw {
	return r.vicinity[off]
}

// SpecialVicinity returns the raw types whose special mover might
// reach a square from offset off (candidate only; caller must verify).
func (r *Registry) SpecialVicinity(off coord.Offset) []piece.Raw {
	return r.specialVicinity[off]
}

// VicinityOffsets lists every offset with at least one registered
// jumper — iterated by the check detector's jumper scan (§4.3 step 1).
func (r *Registry) VicinityOffsets() []coord.Offset {
	out := make([]coord.Offset, 0, len(r.vicinity))
	for off := range r.vicinity {
		out = append(out, off)
	}
	return out
}

// SpecialVicinityOffsets lists every offset with at least one
// registered special mover (§4.3 step 2).
func (r *Registry) SpecialVicinityOffsets() []coord.Offset {
	out := make([]coord.Offset, 0, len(r.specialVicinity))
	for off := range r.specialVicinity {
		out = append(out, off)
	}
	return out
}

// SlidingDirections lists every slide direction used by any registered
// descriptor — iterated by the check detector's slider scan (§4.3
// step 3) and the board's organized-line builder.
func (r *Registry) SlidingDirections() []coord.Dir {
	seen := make(map[coord.Dir]bool)
	var out []coord.Dir
	for _, d := range r.descriptors {
		for dir := range d.Sliding {
			if !seen[dir] {
				seen[dir] = true
				out = append(out, dir)
			}
		}
	}
	return out
}

// Descriptors returns every registered descriptor, for board-init
// iteration (e.g. precomputing organized lines for each raw type's
// directions).
func (r *Registry) Descriptors() []*Descriptor {
	out := make([]*Descriptor, 0, len(r.descriptors))
	for _, d := range r.descriptors {
		out = append(out, d)
	}
	return out
}

// knightOffsets are the eight (±1,±2)/(±2,±1) leaps shared by Knight
// and as the base pattern for Rose waypoints.
var knightOffsets = []coord.Offset{
	{DX: 1, DY: 2}, {DX: 2, DY: 1}, {DX: 2, DY: -1}, {DX: 1, DY: -2},
	{DX: -1, DY: -2}, {DX: -2, DY: -1}, {DX: -2, DY: 1}, {DX: -1, DY: 2},
}

// StandardRegistry builds the registry for the orthodox piece set plus
// the Rose exotic mover, the set spec.md's examples exercise (E1-E6).
func StandardRegistry() *Registry {
	return NewRegistry([]*Descriptor{
		VoidDescriptor(),
		PawnDescriptor(),
		KnightDescriptor(),
		BishopDescriptor(),
		RookDescriptor(),
		QueenDescriptor(),
		KingDescriptor(),
		RoseDescriptor(),
	})
}

// VoidDescriptor occupies a square, moves nowhere, and blocks every
// ray that touches it regardless of color (a wall square).
func VoidDescriptor() *Descriptor {
	return &Descriptor{
		Raw: piece.RawVoid,
		Blocking: func(_ piece.Player, _ *piece.Piece, _ coord.Coord) BlockResult {
			return BlockedBefore
		},
	}
}

func KnightDescriptor() *Descriptor {
	return &Descriptor{Raw: piece.RawKnight, Individual: append([]coord.Offset(nil), knightOffsets...)}
}

var diagonalDirs = []coord.Dir{{DX: 1, DY: 1}, {DX: 1, DY: -1}}
var orthogonalDirs = []coord.Dir{{DX: 1, DY: 0}, {DX: 0, DY: 1}}

func unboundedSliding(dirs []coord.Dir) map[coord.Dir]Limits {
	m := make(map[coord.Dir]Limits, len(dirs))
	for _, d := range dirs {
		m[d] = Limits{Neg: coord.Infinite, Pos: coord.Infinite}
	}
	return m
}

func BishopDescriptor() *Descriptor {
	return &Descriptor{Raw: piece.RawBishop, Sliding: unboundedSliding(diagonalDirs)}
}

func RookDescriptor() *Descriptor {
	return &Descriptor{Raw: piece.RawRook, Sliding: unboundedSliding(orthogonalDirs)}
}

func QueenDescriptor() *Descriptor {
	return &Descriptor{Raw: piece.RawQueen, Sliding: unboundedSliding(append(append([]coord.Dir{}, diagonalDirs...), orthogonalDirs...))}
}

func KingDescriptor() *Descriptor {
	offsets := make([]coord.Offset, 0, 8)
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			offsets = append(offsets, coord.Offset{DX: dx, DY: dy})
		}
	}
	return &Descriptor{Raw: piece.RawKing, Individual: offsets, Special: SpecialKing}
}

func PawnDescriptor() *Descriptor {
	return &Descriptor{Raw: piece.RawPawn, Special: SpecialPawn}
}

func RoseDescriptor() *Descriptor {
	return &Descriptor{Raw: piece.RawRose, Special: SpecialRose}
}
