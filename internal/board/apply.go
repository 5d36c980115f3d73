package board

import (
	"github.com/mosoi-variant/vareng/internal/coord"
	"github.com/mosoi-variant/vareng/internal/move"
	"github.com/mosoi-variant/vareng/internal/piece"
)

// ApplyMove mutates the board to reflect m and pushes an undo record,
// mirroring zurichess's DoMove/pushState pairing. Callers (exec.Simulate)
// are responsible for ensuring m was produced by the move generator for
// the current position; ApplyMove does not re-validate legality.
func (b *Board) ApplyMove(m move.Move) {
	st := state{
		turn:            b.turn,
		moveIndex:       b.moveIndex,
		enpassant:       b.enpassant,
		enpassantVictim: b.enpassantVictim,
		moveRuleCounter: b.moveRuleCounter,
		hash:            b.hash,
	}

	mover := b.squares[m.From.Key()]

	if m.Captured != nil {
		capSq := m.To
		if m.Kind == move.EnPassant && b.enpassantVictim != nil {
			capSq = *b.enpassantVictim
		}
		victim := b.squares[capSq.Key()]
		b.hash ^= b.zobrist.PieceAt(victim.Type, capSq.Key())
		b.removePiece(victim)
		if b.revokeSpecialRight(capSq) {
			st.revokedRights = append(st.revokedRights, capSq.Key())
		}
	}

	b.hash ^= b.zobrist.PieceAt(mover.Type, m.From.Key())
	b.relocate(mover, m.To)

	if m.Kind == move.Promotion {
		_, owner := piece.Split(mover.Type)
		mover.Type = piece.Build(m.PromoteTo, owner)
	}
	b.hash ^= b.zobrist.PieceAt(mover.Type, m.To.Key())

	if m.Kind == move.Castle && m.RookPiece != nil {
		b.hash ^= b.zobrist.PieceAt(m.RookPiece.Type, m.RookFrom.Key())
		b.relocate(m.RookPiece, m.RookTo)
		b.hash ^= b.zobrist.PieceAt(m.RookPiece.Type, m.RookTo.Key())
	}

	for _, sq := range m.LosesSpecialRight {
		if b.revokeSpecialRight(sq) {
			st.revokedRights = append(st.revokedRights, sq.Key())
		}
	}
	if b.revokeSpecialRight(m.From) {
		st.revokedRights = append(st.revokedRights, m.From.Key())
	}

	if m.Kind == move.DoubleStep {
		mid := coord.New((m.From.X+m.To.X)/2, (m.From.Y+m.To.Y)/2)
		target := mid
		victim := m.To
		b.setEnPassant(&target, &victim)
	} else {
		b.setEnPassant(nil, nil)
	}

	if m.IsCapture() || m.Piece.GetRaw() == piece.RawPawn {
		b.moveRuleCounter = 0
	} else {
		b.moveRuleCounter++
	}

	b.turn = b.Rules.NextPlayer(b.turn)
	b.moveIndex++
	b.hash ^= b.zobrist.Side()

	b.states = append(b.states, st)
}

// UndoMove reverses the most recently applied move, restoring the
// board to the exact prior state (§3 "exact undo").
func (b *Board) UndoMove(m move.Move) {
	n := len(b.states)
	st := b.states[n-1]
	b.states = b.states[:n-1]

	mover := b.squares[m.To.Key()]

	if m.Kind == move.Castle && m.RookPiece != nil {
		b.relocate(m.RookPiece, m.RookFrom)
	}

	if m.Kind == move.Promotion {
		mover.Type = m.Piece
	}

	b.relocate(mover, m.From)

	if m.Captured != nil {
		capSq := m.To
		if m.Kind == move.EnPassant && st.enpassantVictim != nil {
			capSq = *st.enpassantVictim
		}
		b.restorePiece(m.Captured, capSq)
	}

	for _, key := range st.revokedRights {
		b.specialRights[key] = true
	}

	b.turn = st.turn
	b.moveIndex = st.moveIndex
	b.enpassant = st.enpassant
	b.enpassantVictim = st.enpassantVictim
	b.moveRuleCounter = st.moveRuleCounter
	b.hash = st.hash
}

// ApplyNullMove passes the turn without moving a piece — the search
// engine's null-move pruning probe (§4.7). It only touches the state
// a real move would touch anyway (turn, move index, en-passant, hash), pushed onto
// the same undo stack ApplyMove/UndoMove use so UndoNullMove can pop
// it symmetrically.
func (b *Board) ApplyNullMove() {
	st := state{
		turn:            b.turn,
		moveIndex:       b.moveIndex,
		enpassant:       b.enpassant,
		enpassantVictim: b.enpassantVictim,
		moveRuleCounter: b.moveRuleCounter,
		hash:            b.hash,
	}
	b.setEnPassant(nil, nil)
	b.turn = b.Rules.NextPlayer(b.turn)
	b.moveIndex++
	b.hash ^= b.zobrist.Side()
	b.states = append(b.states, st)
}

// UndoNullMove reverses the most recently applied ApplyNullMove.
func (b *Board) UndoNullMove() {
	n := len(b.states)
	st := b.states[n-1]
	b.states = b.states[:n-1]
	b.turn = st.turn
	b.moveIndex = st.moveIndex
	b.enpassant = st.enpassant
	b.enpassantVictim = st.enpassantVictim
	b.moveRuleCounter = st.moveRuleCounter
	b.hash = st.hash
}

// relocate moves p's bookkeeping (squares map, organized lines) from
// its current Coords to dst without touching move-history state.
func (b *Board) relocate(p *piece.Piece, dst coord.Coord) {
	delete(b.squares, p.Coords.Key())
	b.removeFromLines(p)
	p.Coords = dst
	b.squares[dst.Key()] = p
	b.indexIntoLines(p)
}

func (b *Board) removePiece(p *piece.Piece) {
	delete(b.squares, p.Coords.Key())
	b.removeFromLines(p)
}

func (b *Board) restorePiece(p *piece.Piece, sq coord.Coord) {
	p.Coords = sq
	b.squares[sq.Key()] = p
	b.indexIntoLines(p)
}
