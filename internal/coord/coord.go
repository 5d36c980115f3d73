// Package coord implements board coordinates for a board whose extent
// is not bounded by a fixed rank/file count.
//
// zurichess sources: movegen.go (Square/RankFile/Relative)
package coord

import (
	"fmt"

	"github.com/holiman/uint256"
)

// Coord is a point on the board. Most games fit comfortably inside a
// native int64 pair; Big exists for the rare board whose generator
// asks for coordinates beyond that range.
type Coord struct {
	X, Y int64

	// big is nil for the hot path. It is only allocated when a
	// variant's board generator requests a coordinate magnitude that
	// does not fit in int64.
	big *bigPair
}

type bigPair struct {
	x, y uint256.Int
	negX, negY bool
}

// New returns the native-range coordinate (x, y).
func New(x, y int64) Coord {
	return Coord{X: x, Y: y}
}

// NewBig returns a coordinate backed by arbitrary-magnitude integers.
// Used only by board generators for variants whose board extends past
// the native 64-bit range.
func NewBig(x, y *uint256.Int, negX, negY bool) Coord {
	return Coord{big: &bigPair{x: *x, y: *y, negX: negX, negY: negY}}
}

// Key is a canonical map key for a coordinate, used by Board.squares.
type Key string

// Key returns the canonical map key for c.
func (c Coord) Key() Key {
	if c.big == nil {
		return Key(fmt.Sprintf("%d,%d", c.X, c.Y))
	}
	sx, sy := "+", "+"
	if c.big.negX {
		sx = "-"
	}
	if c.big.negY {
		sy = "-"
	}
	return Key(fmt.Sprintf("%s%s,%s%s", sx, c.big.x.Hex(), sy, c.big.y.Hex()))
}

// IsBig reports whether c needs arbitrary-magnitude arithmetic.
func (c Coord) IsBig() bool { return c.big != nil }

// Offset is a displacement used by moveset descriptors (jumps, slide
// directions). Offsets always fit in native range — no registered
// piece moves by an amount that doesn't.
type Offset struct {
	DX, DY int64
}

// Add returns c translated by o. Panics if c is a Big coordinate;
// callers translate Big coordinates through AddBig instead.
func (c Coord) Add(o Offset) Coord {
	if c.big != nil {
		return c.AddBig(o)
	}
	return Coord{X: c.X + o.DX, Y: c.Y + o.DY}
}

// AddBig translates a Big coordinate by a native-range offset.
func (c Coord) AddBig(o Offset) Coord {
	if c.big == nil {
		return c.Add(o)
	}
	nx, ny := c.big.x, c.big.y
	negX, negY := c.big.negX, c.big.negY
	negX, nx = addSigned(negX, nx, o.DX)
	negY, ny = addSigned(negY, ny, o.DY)
	return Coord{big: &bigPair{x: nx, y: ny, negX: negX, negY: negY}}
}

func addSigned(neg bool, mag uint256.Int, delta int64) (bool, uint256.Int) {
	d := uint256.NewInt(uint64(delta))
	if delta < 0 {
		d = uint256.NewInt(uint64(-delta))
	}
	sameSign := (delta >= 0) != neg
	if sameSign {
		var out uint256.Int
		out.Add(&mag, d)
		return neg, out
	}
	if mag.Cmp(d) >= 0 {
		var out uint256.Int
		out.Sub(&mag, d)
		return neg, out
	}
	var out uint256.Int
	out.Sub(d, &mag)
	return !neg, out
}

// Sub returns the displacement from o to c, expressed as a native
// Offset. Only valid for coordinates in native range; callers must not
// call this on Big coordinates whose difference could overflow.
func (c Coord) Sub(o Coord) Offset {
	return Offset{DX: c.X - o.X, DY: c.Y - o.Y}
}

// Equal reports whether c and o denote the same square.
func (c Coord) Equal(o Coord) bool {
	return c.Key() == o.Key()
}

// String renders "x,y" the way ICN notation expects.
func (c Coord) String() string {
	if c.big == nil {
		return fmt.Sprintf("%d,%d", c.X, c.Y)
	}
	return string(c.Key())
}

// Dir is a slide direction, normalized so that the first nonzero
// component is positive (canonical orientation for a line).
type Dir struct {
	DX, DY int64
}

// Normalize reduces (dx,dy) by their gcd and fixes orientation so
// opposite-pointing directions produce the same Dir — a slider's line
// is undirected.
func Normalize(dx, dy int64) Dir {
	g := gcd(abs(dx), abs(dy))
	if g == 0 {
		return Dir{}
	}
	dx, dy = dx/g, dy/g
	if dx < 0 || (dx == 0 && dy < 0) {
		dx, dy = -dx, -dy
	}
	return Dir{DX: dx, DY: dy}
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs(a int64) int64 {
	if a < 0 {
		return -a
	}
	return a
}

// LineKey canonicalizes any point on the line through p with direction
// d to the same key, satisfying lineKey(d,p1) == lineKey(d,p2) iff
// p2-p1 is an integer multiple of d (§9 design note).
func LineKey(d Dir, p Coord) Key {
	if p.IsBig() {
		// Big boards only ever appear on sparse custom generators;
		// canonicalize by the raw coordinate key plus direction,
		// accepting that organized-line lookups degrade to per-piece
		// scans for such boards (never on the 64-bit hot path).
		return Key(fmt.Sprintf("big|%d,%d|%s", d.DX, d.DY, p.Key()))
	}
	if d.DX == 0 {
		return Key(fmt.Sprintf("v|%d", p.X))
	}
	if d.DY == 0 {
		return Key(fmt.Sprintf("h|%d", p.Y))
	}
	// c such that p.Y - d.DY/d.DX * p.X is constant along the line;
	// avoid fractions by cross-multiplying.
	c := p.Y*d.DX - p.X*d.DY
	return Key(fmt.Sprintf("d|%d,%d|%d", d.DX, d.DY, c))
}

// Step returns how many multiples of d separate p from the line's
// canonical origin — used to order pieces along an organized line and
// to test whether a destination lies within a sliding limit. Normalize
// always hands back a Dir with a positive leading component, so the
// divisor here is always positive and floorDiv stays monotonic along
// the whole line, including the points that straddle zero.
func Step(d Dir, p Coord) int64 {
	if d.DX != 0 {
		return floorDiv(p.X, d.DX)
	}
	if d.DY != 0 {
		return floorDiv(p.Y, d.DY)
	}
	return 0
}

// floorDiv is floor division for a positive divisor b. Go's native /
// truncates toward zero, which collapses distinct points on a
// multi-square-reduced line (e.g. a (2,1) rider) onto the same Step
// when they straddle zero — floor division keeps them distinct.
func floorDiv(a, b int64) int64 {
	q := a / b
	if r := a % b; r < 0 {
		q--
	}
	return q
}

// Infinite is the sentinel sliding-limit magnitude standing in for an
// unbounded ray (§9). Arithmetic on Infinite saturates rather than
// overflowing.
const Infinite int64 = 1 << 48

// SaturatingAdd adds delta to limit, clamping at ±Infinite so bounds
// arithmetic on an unbounded ray never wraps.
func SaturatingAdd(limit, delta int64) int64 {
	if limit >= Infinite {
		return Infinite
	}
	if limit <= -Infinite {
		return -Infinite
	}
	sum := limit + delta
	if sum > Infinite {
		return Infinite
	}
	if sum < -Infinite {
		return -Infinite
	}
	return sum
}
