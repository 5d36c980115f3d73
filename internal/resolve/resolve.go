// Package resolve is the Check Resolver (C5): filters a player's
// pseudo-legal moves down to the ones that do not leave (or place)
// their own royal pieces in check, for rulesets that use a
// checkmate-style win condition.
//
// zurichess sources: search.go's in-loop legality recheck after
// DoMove (searchTree calls pos.GetAttacker to confirm the mover's own
// king survived), generalized into a dedicated filter pass since here
// legality also affects a non-search caller (perft, the worker
// protocol's legal-move listing).
package resolve

import (
	"github.com/mosoi-variant/vareng/internal/board"
	"github.com/mosoi-variant/vareng/internal/check"
	"github.com/mosoi-variant/vareng/internal/move"
	"github.com/mosoi-variant/vareng/internal/piece"
)

// Legal filters moves (assumed pseudo-legal, already generated for
// mover) down to those that leave none of mover's royal pieces
// attacked afterward. If the ruleset does not use a checkmate-style
// win condition for mover, every move is returned unfiltered (§4.4
// step 1).
func Legal(b *board.Board, mover piece.Player, moves []move.Move) []move.Move {
	if !b.Rules.UsesCheckmate(mover) {
		return moves
	}
	out := make([]move.Move, 0, len(moves))
	for _, m := range moves {
		if leavesKingSafe(b, mover, m) {
			out = append(out, m)
		}
	}
	return out
}

// leavesKingSafe applies m, tests check, and undoes it — the
// simulate-then-rewind approach every invariant-preserving legality
// test in this engine uses, so the board is never left mutated by a
// failed candidate (§4.4/§5 single-mutator rule).
func leavesKingSafe(b *board.Board, mover piece.Player, m move.Move) bool {
	b.ApplyMove(m)
	safe := !check.InCheck(b, mover)
	b.UndoMove(m)
	return safe
}

// InCheck reports whether mover's royal pieces are currently attacked,
// re-exported from check for callers that only have this package
// imported (search's is-in-check branch, exec's checkmate/stalemate
// classification).
func InCheck(b *board.Board, mover piece.Player) bool {
	return check.InCheck(b, mover)
}
