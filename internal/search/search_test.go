package search

import (
	"context"
	"testing"
	"time"

	"github.com/mosoi-variant/vareng/internal/board"
	"github.com/mosoi-variant/vareng/internal/coord"
	"github.com/mosoi-variant/vareng/internal/eval"
	"github.com/mosoi-variant/vareng/internal/moveset"
	"github.com/mosoi-variant/vareng/internal/piece"
	"github.com/mosoi-variant/vareng/internal/rules"
)

func TestEngineFindsMateInOne(t *testing.T) {
	rset := rules.Default()
	registry := moveset.StandardRegistry()
	// Rank-8 mate: white rook delivers mate along the 8th rank; black
	// king boxed in by its own pawns on the 7th. The board has no edge,
	// so a second white rook covers the 9th rank.
	b := board.FromPlacements(rset, registry, []board.Placement{
		{Raw: piece.RawKing, Player: piece.White, At: coord.New(1, 1)},
		{Raw: piece.RawRook, Player: piece.White, At: coord.New(2, 1)},
		{Raw: piece.RawRook, Player: piece.White, At: coord.New(1, 9)},
		{Raw: piece.RawKing, Player: piece.Black, At: coord.New(7, 8)},
		{Raw: piece.RawPawn, Player: piece.Black, At: coord.New(6, 7)},
		{Raw: piece.RawPawn, Player: piece.Black, At: coord.New(7, 7)},
		{Raw: piece.RawPawn, Player: piece.Black, At: coord.New(8, 7)},
	}, piece.White)

	engine := NewEngine(b, eval.StandardValues())
	stats := engine.Play(context.Background(), 3, TimeControl{Deadline: time.Now().Add(2 * time.Second)})
	if !stats.BestMove.To.Equal(coord.New(2, 8)) {
		t.Errorf("expected the mating rook lift to (2,8), got %v", stats.BestMove)
	}
}

func TestTranspositionTableStoreProbe(t *testing.T) {
	tt := NewTranspositionTable(1024)
	e := ttEntry{hash: 42, depth: 3, kind: ttExact, score: 17}
	tt.store(e)
	got, ok := tt.probe(42)
	if !ok || got.score != 17 {
		t.Errorf("expected to probe back the stored entry, got %+v ok=%v", got, ok)
	}
}
