package moveset

import "github.com/mosoi-variant/vareng/internal/coord"

// roseCycle is the eight knight-leap directions in the circular order
// the rose piece rides around its origin square, as in the fairy-chess
// rose (a knight whose leaps are chained instead of single).
var roseCycle = []coord.Offset{
	{DX: 1, DY: 2}, {DX: -1, DY: 2}, {DX: -2, DY: 1}, {DX: -2, DY: -1},
	{DX: -1, DY: -2}, {DX: 1, DY: -2}, {DX: 2, DY: -1}, {DX: 2, DY: 1},
}

// roseWaypointOffsets returns every square reachable by riding the
// rose cycle for 1..7 steps in either rotational direction, seeding
// the special-vicinity table. The move generator recomputes the exact
// ridden path (it must stop at the first occupied waypoint) rather
// than trusting this set directly.
func roseWaypointOffsets() []coord.Offset {
	var out []coord.Offset
	for _, start := range []int{0, 1} {
		cur := coord.Offset{}
		idx := 0
		for step := 0; step < len(roseCycle)-1; step++ {
			var delta coord.Offset
			if start == 0 {
				delta = roseCycle[idx%len(roseCycle)]
			} else {
				delta = roseCycle[(len(roseCycle)-idx)%len(roseCycle)]
			}
			cur = coord.Offset{DX: cur.DX + delta.DX, DY: cur.DY + delta.DY}
			out = append(out, cur)
			idx++
		}
	}
	return out
}

// RoseWaypoints returns the ordered sequence of squares a rose at
// origin rides through going clockwise (clockwise=true) or
// counterclockwise, stopping the caller's iteration at the first
// occupied square (movegen's responsibility, not this function's).
func RoseWaypoints(origin coord.Coord, clockwise bool) []coord.Coord {
	out := make([]coord.Coord, 0, len(roseCycle)-1)
	cur := origin
	for step := 0; step < len(roseCycle)-1; step++ {
		var idx int
		if clockwise {
			idx = step % len(roseCycle)
		} else {
			idx = (len(roseCycle) - step) % len(roseCycle)
		}
		cur = cur.Add(roseCycle[idx])
		out = append(out, cur)
	}
	return out
}
