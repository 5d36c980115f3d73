package rules

import (
	"testing"

	"github.com/mosoi-variant/vareng/internal/piece"
)

func TestDefaultRuleset(t *testing.T) {
	c := Default()
	if !c.UsesCheckmate(piece.White) {
		t.Error("default ruleset should use checkmate for white")
	}
	if !c.IsRoyal(piece.RawKing) {
		t.Error("king should be royal by default")
	}
	if c.NextPlayer(piece.White) != piece.Black {
		t.Error("white should be followed by black")
	}
	if c.NextPlayer(piece.Black) != piece.White {
		t.Error("black should be followed by white")
	}
}

func TestDecodeCustomRuleset(t *testing.T) {
	data := []byte(`
turn_order = ["white", "black"]
move_rule = 0
royal_raws = [6]

[[player]]
player = "white"
win_conditions = ["royalcapture"]
promotion_ranks = [8]
promotion_types = [5]

[[player]]
player = "black"
win_conditions = ["royalcapture"]
promotion_ranks = [1]
promotion_types = [5]
`)
	c, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if c.UsesCheckmate(piece.White) {
		t.Error("royalcapture ruleset should not use checkmate-style filtering")
	}
	if !c.IsPromotionRank(piece.White, 8) {
		t.Error("rank 8 should be white's promotion rank")
	}
	if c.IsPromotionRank(piece.White, 1) {
		t.Error("rank 1 should not be white's promotion rank")
	}
}
