package notation

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mosoi-variant/vareng/internal/coord"
	"github.com/mosoi-variant/vareng/internal/piece"
)

func TestParseMoveWithoutPromotion(t *testing.T) {
	from, to, promo, err := ParseMove("2,2>2,4")
	if err != nil {
		t.Fatalf("ParseMove: %v", err)
	}
	if !from.Equal(coord.New(2, 2)) || !to.Equal(coord.New(2, 4)) || promo != 0 {
		t.Errorf("got from=%v to=%v promo=%v", from, to, promo)
	}
}

func TestParseMoveWithPromotion(t *testing.T) {
	_, _, promo, err := ParseMove("7,7>7,8[6]")
	if err != nil {
		t.Fatalf("ParseMove: %v", err)
	}
	if promo != piece.RawQueen {
		t.Errorf("expected promotion to queen, got %v", promo)
	}
}

func TestParseMoveRejectsMalformed(t *testing.T) {
	if _, _, _, err := ParseMove("not-a-move"); err == nil {
		t.Error("expected an error for malformed notation")
	}
}

func TestICNRoundTrip(t *testing.T) {
	entries := []PieceEntry{
		{Raw: piece.RawKing, Player: piece.White, At: coord.New(5, 1)},
		{Raw: piece.RawRook, Player: piece.Black, At: coord.New(1, 8)},
	}
	s := FormatICN(entries)
	parsed, err := ParseICN(s)
	if err != nil {
		t.Fatalf("ParseICN: %v", err)
	}
	if diff := cmp.Diff(entries, parsed); diff != "" {
		t.Errorf("ICN round trip mismatch (-want +got):\n%s", diff)
	}
}
