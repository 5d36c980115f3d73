// Package search is the Search Engine (C8): iterative-deepening
// negamax with alpha-beta, aspiration windows, null-move/futility
// pruning, PVS with late-move reductions, a transposition table,
// quiescence search, and killer/history/counter-move move ordering.
//
// zurichess sources: search.go (Engine, HashTable, historyTable,
// Stats, TimeControl, searchTree, tryMove, searchQuiescence, the
// aspiration-window search loop, Play) kept in shape; Position/Move
// are replaced throughout by board.Board/move.Move, and mate-distance/
// null-move/LMR constants are retuned for an unbounded board where
// move counts per node run far higher than an 8x8 board's. Quiescence
// deliberately diverges from the teacher in one place: the teacher
// always stands pat even in check (a tested tradeoff it keeps, see its
// own TODO on the point); this engine instead searches every legal
// evasion when in check, since a standing-pat score is meaningless for
// a side with no way to simply decline to move.
package search

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/mosoi-variant/vareng/internal/board"
	"github.com/mosoi-variant/vareng/internal/eval"
	"github.com/mosoi-variant/vareng/internal/exec"
	"github.com/mosoi-variant/vareng/internal/move"
	"github.com/mosoi-variant/vareng/internal/piece"
	"github.com/mosoi-variant/vareng/internal/resolve"
	"github.com/mosoi-variant/vareng/internal/zobrist"
)

const (
	infScore  = 1 << 20
	mateScore = infScore - 1000
	maxPly    = 64

	// mateBound is the score magnitude above which a value is "mate-ish"
	// and needs ply adjustment on TT store/load rather than being
	// treated as a plain evaluation.
	mateBound = mateScore - maxPly

	initialAspirationWindow = 21
	aspirationDepthLimit    = 4 // aspiration windows disabled below this depth, the teacher's own cutoff

	nullMoveMinDepth     = 3
	reverseFutilityLimit = 3
	extendedFutilityLimit = 5
	lmrMinDepth          = 3
	lmrMinMoveIndex      = 3 // 0-based; reductions only kick in from the 4th move onward

	historyCap = 1 << 14
)

// Stats accumulates node counts the way the teacher's Stats struct
// does, surfaced to callers for UCI-style "info" reporting over the
// worker protocol.
type Stats struct {
	Nodes     uint64
	QNodes    uint64
	Depth     int
	BestMove  move.Move
	BestScore int32
}

// TimeControl bounds a search the way the teacher's TimeControl does,
// reduced to a single hard deadline.
type TimeControl struct {
	Deadline time.Time
}

func (tc *TimeControl) expired() bool {
	return !tc.Deadline.IsZero() && time.Now().After(tc.Deadline)
}

// ttKind records why a transposition entry's score is trustworthy at
// what bound, mirroring the teacher's hashEntry kind byte.
type ttKind uint8

const (
	ttExact ttKind = iota
	ttLower
	ttUpper
)

type ttEntry struct {
	hash  zobrist.Hash
	depth int
	kind  ttKind
	score int32
	move  move.Move
}

// TranspositionTable is a fixed-size hash table keyed by zobrist hash
// modulo size — the teacher's HashTable shape, sized smaller by default
// since board state here is heavier per entry. A store replaces the
// slot's entry unless that entry is for the same hash at greater depth.
type TranspositionTable struct {
	entries []ttEntry
	has     []bool
}

func NewTranspositionTable(size int) *TranspositionTable {
	return &TranspositionTable{entries: make([]ttEntry, size), has: make([]bool, size)}
}

func (t *TranspositionTable) index(h zobrist.Hash) int {
	return int(uint64(h) % uint64(len(t.entries)))
}

func (t *TranspositionTable) probe(h zobrist.Hash) (ttEntry, bool) {
	i := t.index(h)
	if t.has[i] && t.entries[i].hash == h {
		return t.entries[i], true
	}
	return ttEntry{}, false
}

func (t *TranspositionTable) store(e ttEntry) {
	i := t.index(e.hash)
	if t.has[i] && t.entries[i].depth > e.depth && t.entries[i].hash == e.hash {
		return
	}
	t.entries[i] = e
	t.has[i] = true
}

func (t *TranspositionTable) Clear() {
	for i := range t.has {
		t.has[i] = false
	}
}

// scoreToTT and scoreFromTT adjust a mate score on TT store/load so it
// stays correct when the same position is reached at a different ply
// via transposition: a mate score always bakes in the ply at which it
// was detected, so it's re-measured from the storing node on store
// (moved the storing node's ply further from zero) and re-derived
// relative to the probing node's ply on load (moved back toward zero).
func scoreToTT(score int32, ply int) int32 {
	switch {
	case score > mateBound:
		return score + int32(ply)
	case score < -mateBound:
		return score - int32(ply)
	default:
		return score
	}
}

func scoreFromTT(score int32, ply int) int32 {
	switch {
	case score > mateBound:
		return score - int32(ply)
	case score < -mateBound:
		return score + int32(ply)
	default:
		return score
	}
}

// historyKey is the comparable subset of a move's identity usable as a
// map key (move.Move itself carries a slice field and so cannot be
// compared or hashed directly).
type historyKey struct {
	from, to  string
	kind      move.Kind
	promoteTo uint16
}

func keyOf(m move.Move) historyKey {
	return historyKey{from: m.From.String(), to: m.To.String(), kind: m.Kind, promoteTo: uint16(m.PromoteTo)}
}

// historyTable scores quiet moves by how often they've caused a
// beta cutoff, the teacher's history-heuristic move-ordering table.
type historyTable map[historyKey]int32

// contKey indexes the continuation-history table by the move that led
// to this node plus the candidate move being ordered, so a quiet reply
// that has historically answered a given quiet threat well is tried
// before one with no such track record.
type contKey struct {
	prev, cur historyKey
}

// bump adds a depth-squared bonus to a history-style table, halving
// the entry when it saturates past historyCap — the teacher's history
// scoring rule, generalized to the two tables this engine keeps.
func bumpHistory(t historyTable, k historyKey, depth int) {
	v := t[k] + int32(depth*depth)
	if v > historyCap {
		v /= 2
	}
	t[k] = v
}

func bumpContinuation(t map[contKey]int32, k contKey, depth int) {
	v := t[k] + int32(depth*depth)
	if v > historyCap {
		v /= 2
	}
	t[k] = v
}

// Engine owns one search over one board, the way the teacher's Engine
// wraps a *Position. Not safe for concurrent use — §5 dedicates one
// worker goroutine and one board copy per search.
type Engine struct {
	Board                *board.Board
	Values               *eval.Values
	TT                   *TranspositionTable
	History              historyTable
	ContinuationHistory  map[contKey]int32
	CounterMove          map[historyKey]move.Move
	Killers              [maxPly][2]move.Move

	stats Stats
	tc    TimeControl
}

// NewEngine constructs a search engine over b, allocating a fresh
// transposition table sized for a single search session.
func NewEngine(b *board.Board, values *eval.Values) *Engine {
	return &Engine{
		Board:               b,
		Values:              values,
		TT:                  NewTranspositionTable(1 << 16),
		History:             make(historyTable),
		ContinuationHistory: make(map[contKey]int32),
		CounterMove:         make(map[historyKey]move.Move),
	}
}

// decayHistory ages the history/continuation tables by a fixed factor
// once per completed iterative-deepening depth, so stale bonuses from
// earlier, shallower iterations don't dominate move ordering forever.
func (e *Engine) decayHistory() {
	for k, v := range e.History {
		e.History[k] = v * 9 / 10
	}
	for k, v := range e.ContinuationHistory {
		e.ContinuationHistory[k] = v * 9 / 10
	}
}

// Play runs iterative deepening from depth 1 up to maxDepth or until
// ctx is done / tc's deadline passes, returning the best move found at
// the deepest completed iteration — the teacher's Play loop, retargeted
// at context.Context cancellation instead of an atomic stop flag.
func (e *Engine) Play(ctx context.Context, maxDepth int, tc TimeControl) Stats {
	e.tc = tc
	var best Stats
	var prevScore int32
	for depth := 1; depth <= maxDepth; depth++ {
		select {
		case <-ctx.Done():
			return best
		default:
		}
		if e.tc.expired() {
			return best
		}
		e.decayHistory()
		score, pv, nodes, qnodes := e.search(ctx, depth, prevScore)
		if e.tc.expired() && depth > 1 {
			return best
		}
		best = Stats{Nodes: best.Nodes + nodes, QNodes: best.QNodes + qnodes, Depth: depth, BestScore: score}
		if len(pv) > 0 {
			best.BestMove = pv[0]
		}
		prevScore = score
	}
	return best
}

// search runs one iterative-deepening iteration at depth, the
// teacher's search() helper: a narrow aspiration window around the
// previous iteration's score, widened on fail-high/fail-low until the
// result lands strictly inside the window (or the window has grown to
// cover the whole score range). Aspiration is skipped below
// aspirationDepthLimit, matching the teacher's own cutoff — a shallow
// iteration's score is too volatile for a narrow window to pay off.
func (e *Engine) search(ctx context.Context, depth int, prevScore int32) (int32, []move.Move, uint64, uint64) {
	var nodes, qnodes uint64
	var pv []move.Move

	if depth < aspirationDepthLimit {
		score := e.negamax(ctx, depth, 0, -infScore, infScore, move.Move{}, true, &nodes, &qnodes, &pv)
		return score, pv, nodes, qnodes
	}

	window := int32(initialAspirationWindow)
	alpha, beta := prevScore-window, prevScore+window
	for {
		if alpha < -infScore {
			alpha = -infScore
		}
		if beta > infScore {
			beta = infScore
		}
		pv = nil
		score := e.negamax(ctx, depth, 0, alpha, beta, move.Move{}, true, &nodes, &qnodes, &pv)
		if e.tc.expired() {
			return score, pv, nodes, qnodes
		}
		if score <= alpha && alpha > -infScore {
			alpha -= window
			window += window / 2
			continue
		}
		if score >= beta && beta < infScore {
			beta += window
			window += window / 2
			continue
		}
		return score, pv, nodes, qnodes
	}
}

// negamax is the main search recursion: mate-distance pruning, TT
// probe, static-eval-gated reverse/extended futility and null-move
// pruning, move generation and ordering, and a PVS move loop with late-
// move reductions — the teacher's searchTree/tryMove generalized to
// move.Move/board.Board. prevMove is the move that led to this node
// (used for counter-move/continuation-history lookups); allowNull is
// false only on the child of a null-move probe, preventing two
// consecutive null moves.
func (e *Engine) negamax(ctx context.Context, depth, ply int, alpha, beta int32, prevMove move.Move, allowNull bool, nodes, qnodes *uint64, pv *[]move.Move) int32 {
	*nodes++
	if ply >= maxPly {
		return eval.Evaluate(e.Board, e.Values)
	}
	if depth <= 0 {
		return e.quiescence(ply, alpha, beta, qnodes)
	}
	if ply > 0 && e.tc.expired() {
		return eval.Evaluate(e.Board, e.Values)
	}

	if ply > 0 {
		if mateAlpha := -mateScore + int32(ply); alpha < mateAlpha {
			alpha = mateAlpha
		}
		if mateBeta := mateScore - int32(ply); beta > mateBeta {
			beta = mateBeta
		}
		if alpha >= beta {
			return alpha
		}
	}

	h := e.Board.Hash()
	var ttMove move.Move
	if entry, ok := e.TT.probe(h); ok {
		ttMove = entry.move
		if entry.depth >= depth {
			score := scoreFromTT(entry.score, ply)
			switch entry.kind {
			case ttExact:
				return score
			case ttLower:
				if score > alpha {
					alpha = score
				}
			case ttUpper:
				if score < beta {
					beta = score
				}
			}
			if alpha >= beta {
				return score
			}
		}
	}

	mover := e.Board.Turn()
	inCheck := resolve.InCheck(e.Board, mover)
	pvNode := beta-alpha > 1

	staticEval := eval.Evaluate(e.Board, e.Values)
	if inCheck {
		staticEval = -mateScore + int32(ply)
	}

	if !inCheck && !pvNode {
		if depth < reverseFutilityLimit {
			margin := int32(125 * depth)
			if staticEval-margin >= beta {
				return staticEval
			}
		}
		if depth >= nullMoveMinDepth && allowNull && beta < mateBound && hasNonPawnMaterial(e.Board, mover) {
			r := 3 + depth/6
			var nullPV []move.Move
			var score int32
			exec.SimulateNull(e.Board, func() {
				score = -e.negamax(ctx, depth-1-r, ply+1, -beta, -beta+1, move.Move{}, false, nodes, qnodes, &nullPV)
			})
			if score >= beta {
				return beta
			}
		}
	}

	moves := exec.Legal(e.Board)
	if len(moves) == 0 {
		if outcome := exec.Evaluate(e.Board); outcome == exec.Checkmate {
			return -mateScore + int32(ply)
		}
		return 0
	}
	e.orderMoves(moves, ttMove, prevMove, ply)

	best := int32(-infScore)
	var bestMove move.Move
	origAlpha := alpha
	killers := [2]move.Move{}
	if ply < maxPly {
		killers = e.Killers[ply]
	}

	for i, m := range moves {
		quiet := !m.IsViolent()
		isOrdered := m.Equal(ttMove) || m.Equal(killers[0]) || m.Equal(killers[1])
		if quiet && i > 0 && !inCheck && !isOrdered && depth < extendedFutilityLimit {
			if staticEval+int32(depth)*100 <= alpha {
				continue
			}
		}

		var childPV []move.Move
		var score int32
		exec.Simulate(e.Board, m, func() {
			givesCheck := resolve.InCheck(e.Board, e.Board.Turn())
			if i == 0 {
				score = -e.negamax(ctx, depth-1, ply+1, -beta, -alpha, m, true, nodes, qnodes, &childPV)
				return
			}
			reduction := 0
			if quiet && !givesCheck && depth >= lmrMinDepth && i >= lmrMinMoveIndex {
				reduction = lmrReduction(depth, i)
			}
			score = -e.negamax(ctx, depth-1-reduction, ply+1, -alpha-1, -alpha, m, true, nodes, qnodes, &childPV)
			if score > alpha && reduction > 0 {
				score = -e.negamax(ctx, depth-1, ply+1, -alpha-1, -alpha, m, true, nodes, qnodes, &childPV)
			}
			if score > alpha && score < beta {
				score = -e.negamax(ctx, depth-1, ply+1, -beta, -alpha, m, true, nodes, qnodes, &childPV)
			}
		})

		if score > best {
			best = score
			bestMove = m
			*pv = append([]move.Move{m}, childPV...)
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			if quiet {
				e.recordKiller(m, ply)
				k := keyOf(m)
				bumpHistory(e.History, k, depth)
				// prevMove is the zero value at the root; recording a
				// counter-move/continuation bonus against it there is
				// harmless (nothing else keys off an empty move) and
				// keeps this branch uniform for every ply.
				e.CounterMove[keyOf(prevMove)] = m
				bumpContinuation(e.ContinuationHistory, contKey{keyOf(prevMove), k}, depth)
			}
			break
		}
	}

	kind := ttExact
	if best <= origAlpha {
		kind = ttUpper
	} else if best >= beta {
		kind = ttLower
	}
	e.TT.store(ttEntry{hash: h, depth: depth, kind: kind, score: scoreToTT(best, ply), move: bestMove})
	return best
}

// lmrReduction computes a late-move reduction for the moveIndex'th
// (0-based) move searched at depth, a standard log-scaled schedule
// generalizing the teacher's simpler depth/quiet-count formula, clamped
// so a reduced search never drops below depth 1 below the current ply.
func lmrReduction(depth, moveIndex int) int {
	r := 1 + int(math.Log(float64(moveIndex))*math.Log(float64(depth))/3)
	if r < 1 {
		r = 1
	}
	if limit := depth - 2; r > limit {
		r = limit
	}
	if r < 0 {
		r = 0
	}
	return r
}

// hasNonPawnMaterial reports whether pl has any piece besides pawns and
// royals, the null-move pruning precondition that avoids zugzwang
// positions (bare-king-and-pawns endings) where passing the turn isn't
// a safe lower bound on the side's options.
func hasNonPawnMaterial(b *board.Board, pl piece.Player) bool {
	for _, p := range b.PiecesOf(pl) {
		raw, _ := piece.Split(p.Type)
		if raw != piece.RawPawn && !b.Rules.IsRoyal(raw) {
			return true
		}
	}
	return false
}

// quiescence extends search along capture lines past the horizon to
// avoid the tactical blindness of evaluating a position mid-exchange,
// the teacher's searchQuiescence. Unlike the teacher, it does not stand
// pat while in check: a side with no option to simply decline to move
// has no valid "do nothing" baseline, so every legal evasion is tried
// instead.
func (e *Engine) quiescence(ply int, alpha, beta int32, qnodes *uint64) int32 {
	*qnodes++
	if ply >= maxPly {
		return eval.Evaluate(e.Board, e.Values)
	}

	mover := e.Board.Turn()
	inCheck := resolve.InCheck(e.Board, mover)

	var moves []move.Move
	if inCheck {
		moves = exec.Legal(e.Board)
		if len(moves) == 0 {
			return -mateScore + int32(ply)
		}
	} else {
		standPat := eval.Evaluate(e.Board, e.Values)
		if standPat >= beta {
			return beta
		}
		if standPat > alpha {
			alpha = standPat
		}
		moves = exec.LegalViolent(e.Board)
	}

	sortByMVVLVA(e.Board, moves)
	for _, m := range moves {
		var score int32
		exec.Simulate(e.Board, m, func() {
			score = -e.quiescence(ply+1, -beta, -alpha, qnodes)
		})
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}

func (e *Engine) recordKiller(m move.Move, ply int) {
	if ply >= maxPly {
		return
	}
	if e.Killers[ply][0].Equal(m) {
		return
	}
	e.Killers[ply][1] = e.Killers[ply][0]
	e.Killers[ply][0] = m
}

// orderMoves sorts moves in place: TT move first, then captures by
// MVV-LVA, then killers at this ply, then the counter-move to
// prevMove, then quiet moves by history/continuation-history score —
// the teacher's move-ordering priority chain extended with
// counter-move and continuation-history tiers the teacher's zurichess
// lineage doesn't have.
func (e *Engine) orderMoves(moves []move.Move, ttMove, prevMove move.Move, ply int) {
	var killers [2]move.Move
	if ply < maxPly {
		killers = e.Killers[ply]
	}
	counter := e.CounterMove[keyOf(prevMove)]
	values := eval.StandardValues()
	mvvlva := func(m move.Move) int32 {
		var victim int32
		if m.Captured != nil {
			raw, _ := piece.Split(m.Captured.Type)
			victim = values.Material[raw].M
		}
		raw, _ := piece.Split(m.Piece)
		attacker := values.Material[raw].M
		return victim*16 - attacker
	}
	score := func(m move.Move) int32 {
		switch {
		case m.Equal(ttMove):
			return 1 << 30
		case m.IsViolent():
			return (1 << 24) + mvvlva(m)
		case m.Equal(killers[0]):
			return 1 << 20
		case m.Equal(killers[1]):
			return 1 << 19
		case m.Equal(counter):
			return 1 << 18
		}
		return e.History[keyOf(m)] + e.ContinuationHistory[contKey{keyOf(prevMove), keyOf(m)}]
	}
	sort.SliceStable(moves, func(i, j int) bool { return score(moves[i]) > score(moves[j]) })
}

// sortByMVVLVA orders captures most-valuable-victim, least-valuable-
// attacker first, the teacher's quiescence move-ordering table,
// rebuilt per call from eval.StandardValues' material table (not the
// engine's own Values) rather than a precompiled 6x6 array.
func sortByMVVLVA(b *board.Board, moves []move.Move) {
	values := eval.StandardValues()
	score := func(m move.Move) int32 {
		var victim int32
		if m.Captured != nil {
			raw, _ := piece.Split(m.Captured.Type)
			victim = values.Material[raw].M
		}
		raw, _ := piece.Split(m.Piece)
		attacker := values.Material[raw].M
		return victim*16 - attacker
	}
	sort.SliceStable(moves, func(i, j int) bool { return score(moves[i]) > score(moves[j]) })
}
