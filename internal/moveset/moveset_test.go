package moveset

import (
	"testing"

	"github.com/mosoi-variant/vareng/internal/coord"
	"github.com/mosoi-variant/vareng/internal/piece"
)

func TestStandardRegistryVicinity(t *testing.T) {
	r := StandardRegistry()
	knights := r.Vicinity(coord.Offset{DX: 1, DY: 2})
	found := false
	for _, raw := range knights {
		if raw == piece.RawKnight {
			found = true
		}
	}
	if !found {
		t.Error("expected knight to be registered at offset (1,2)")
	}
}

func TestGetPieceMovesetUnregisteredIsEmpty(t *testing.T) {
	r := StandardRegistry()
	d := r.GetPieceMoveset(piece.RawCustomBase + 99)
	if len(d.Individual) != 0 || len(d.Sliding) != 0 {
		t.Error("unregistered raw types should yield an empty descriptor")
	}
}

func TestSlidingDirectionsIncludesDiagonalAndOrthogonal(t *testing.T) {
	r := StandardRegistry()
	dirs := r.SlidingDirections()
	wantDiag := coord.Normalize(1, 1)
	wantOrth := coord.Normalize(1, 0)
	var hasDiag, hasOrth bool
	for _, d := range dirs {
		if d == wantDiag {
			hasDiag = true
		}
		if d == wantOrth {
			hasOrth = true
		}
	}
	if !hasDiag || !hasOrth {
		t.Error("expected both diagonal and orthogonal sliding directions from bishop/rook/queen")
	}
}

func TestDefaultBlocking(t *testing.T) {
	friend := &piece.Piece{Type: piece.Build(piece.RawPawn, piece.White)}
	enemy := &piece.Piece{Type: piece.Build(piece.RawPawn, piece.Black)}
	if DefaultBlocking(piece.White, friend, coord.Coord{}) != BlockedBefore {
		t.Error("friendly piece should block before")
	}
	if DefaultBlocking(piece.White, enemy, coord.Coord{}) != BlockedAfter {
		t.Error("enemy piece should block after (capturable)")
	}
}

func TestRoseWaypointsSevenPerDirection(t *testing.T) {
	origin := coord.New(0, 0)
	cw := RoseWaypoints(origin, true)
	ccw := RoseWaypoints(origin, false)
	if len(cw) != 7 || len(ccw) != 7 {
		t.Fatalf("expected 7 waypoints per direction, got %d and %d", len(cw), len(ccw))
	}
}
