package piece

import "testing"

func TestBuildSplitRoundTrip(t *testing.T) {
	for _, raw := range []Raw{RawPawn, RawKnight, RawQueen, RawCustomBase + 7} {
		for _, pl := range []Player{White, Black, Neutral} {
			typ := Build(raw, pl)
			gotRaw, gotPl := Split(typ)
			if gotRaw != raw || gotPl != pl {
				t.Errorf("Build(%v,%v) round-trip got (%v,%v)", raw, pl, gotRaw, gotPl)
			}
		}
	}
}

func TestOpposite(t *testing.T) {
	if White.Opposite() != Black || Black.Opposite() != White {
		t.Error("White/Black must be opposites of each other")
	}
}

func TestBuiltinRoyal(t *testing.T) {
	if !RawKing.BuiltinRoyal() {
		t.Error("king should be builtin-royal")
	}
	if RawPawn.BuiltinRoyal() {
		t.Error("pawn should not be builtin-royal")
	}
}
