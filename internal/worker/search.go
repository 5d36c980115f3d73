package worker

import (
	"context"
	"time"

	"github.com/mosoi-variant/vareng/internal/board"
	"github.com/mosoi-variant/vareng/internal/eval"
	"github.com/mosoi-variant/vareng/internal/search"
)

// searchBestMove runs one bounded search over b, the worker's sole
// caller into the search engine.
func searchBestMove(ctx context.Context, b *board.Board, values *eval.Values, maxDepth int, moveTime time.Duration) bestMoveResult {
	engine := search.NewEngine(b, values)
	tc := search.TimeControl{Deadline: time.Now().Add(moveTime)}
	stats := engine.Play(ctx, maxDepth, tc)
	return bestMoveResult{bestMove: stats.BestMove, score: stats.BestScore, depth: stats.Depth, nodes: stats.Nodes}
}
