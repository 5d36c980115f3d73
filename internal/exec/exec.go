// Package exec is the Move Executor (C6): wraps application, a caller
// callback, and rewind into one invariant-preserving unit, the entry
// point search and perft mutate boards through (§5 single-mutator
// concurrency model). The resolver, which exec itself depends on,
// applies and undoes candidate moves on the board directly.
//
// zurichess sources: search.go's tryMove/searchTree DoMove-callback-
// UndoMove pattern, lifted out of the search engine into a standalone
// wrapper any caller (perft, the worker's legal-move listing, search)
// can reuse.
package exec

import (
	"github.com/mosoi-variant/vareng/internal/board"
	"github.com/mosoi-variant/vareng/internal/move"
	"github.com/mosoi-variant/vareng/internal/movegen"
	"github.com/mosoi-variant/vareng/internal/resolve"
)

// Legal returns every legal move for the player to move on b.
func Legal(b *board.Board) []move.Move {
	mover := b.Turn()
	var pseudo []move.Move
	for _, p := range b.PiecesOf(mover) {
		pseudo = append(pseudo, movegen.Calculate(b, p, movegen.Options{})...)
	}
	return resolve.Legal(b, mover, pseudo)
}

// LegalViolent returns only mover's legal captures/promotions, the
// quiescence search's move source (§4.8).
func LegalViolent(b *board.Board) []move.Move {
	mover := b.Turn()
	var pseudo []move.Move
	for _, p := range b.PiecesOf(mover) {
		pseudo = append(pseudo, movegen.Calculate(b, p, movegen.Options{ViolentOnly: true})...)
	}
	legal := resolve.Legal(b, mover, pseudo)
	out := legal[:0]
	for _, m := range legal {
		if m.IsViolent() {
			out = append(out, m)
		}
	}
	return out
}

// Simulate applies m, invokes fn, then unconditionally rewinds —
// callers (search, perft) use this instead of ApplyMove/UndoMove
// directly so a panic inside fn still leaves the board correctly
// restored via the deferred rewind.
func Simulate(b *board.Board, m move.Move, fn func()) {
	b.ApplyMove(m)
	defer b.UndoMove(m)
	fn()
}

// SimulateNull passes the turn without moving a piece, invokes fn,
// then unconditionally rewinds — the search engine's null-move pruning
// probe, sharing Simulate's apply/callback/rewind shape so a panic
// inside fn still leaves the board restored.
func SimulateNull(b *board.Board, fn func()) {
	b.ApplyNullMove()
	defer b.UndoNullMove()
	fn()
}

// MakeMove applies m to b permanently, with no matching rewind.
func MakeMove(b *board.Board, m move.Move) {
	b.ApplyMove(m)
}

// Perft counts leaf positions reached by playing out every legal move
// to depth plies, the standard move-generator correctness harness
// (§8 testable properties).
func Perft(b *board.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var count uint64
	for _, m := range Legal(b) {
		Simulate(b, m, func() {
			count += Perft(b, depth-1)
		})
	}
	return count
}

// IsTerminal reports whether mover has no legal moves, the shared
// precondition for checkmate/stalemate detection (§4.4 step 2); the
// caller distinguishes the two by checking resolve.InCheck.
func IsTerminal(b *board.Board) bool {
	return len(Legal(b)) == 0
}

// Outcome classifies the position for mover-to-move: ongoing, or which
// terminal condition (if any) applies, generalizing §4.4's mate/stale
// determination across whatever win conditions the ruleset enables.
type Outcome int

const (
	Ongoing Outcome = iota
	Checkmate
	Stalemate
)

// Evaluate determines the terminal outcome for the side to move, or
// Ongoing if the game continues.
func Evaluate(b *board.Board) Outcome {
	mover := b.Turn()
	if !IsTerminal(b) {
		return Ongoing
	}
	if resolve.InCheck(b, mover) {
		return Checkmate
	}
	return Stalemate
}
