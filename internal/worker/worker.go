// Package worker implements the engine's external interface (§5, §6):
// a JSON request/response loop over stdin/stdout, replacing the
// teacher's UCI/XBOARD text protocol with a line-delimited JSON
// protocol suited to an embedding host process rather than a terminal
// GUI.
//
// zurichess sources: interface.go's Run/ExecuteLine dispatch loop
// (read one line, dispatch, write a response) kept in shape; the
// UCI/XBOARD option parsing and the book-building subsystem it also
// contained are dropped (see DESIGN.md).
package worker

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mosoi-variant/vareng/internal/board"
	"github.com/mosoi-variant/vareng/internal/eval"
	"github.com/mosoi-variant/vareng/internal/exec"
	"github.com/mosoi-variant/vareng/internal/move"
	"github.com/mosoi-variant/vareng/internal/moveset"
	"github.com/mosoi-variant/vareng/internal/notation"
	"github.com/mosoi-variant/vareng/internal/rules"
)

// Request is one line of worker-protocol input. "lf" carries the
// position in ICN short form (§6); "rules" optionally carries a TOML
// ruleset (the orthodox default when empty); maxDepth and moveTimeMs
// bound the search (6 plies and 2s when unset). A request without
// "lf" is a handshake answered with Ready.
type Request struct {
	ID       string `json:"id,omitempty"`
	LF       string `json:"lf,omitempty"`
	Rules    string `json:"rules,omitempty"`
	MaxDepth int    `json:"maxDepth,omitempty"`
	MoveTime int    `json:"moveTimeMs,omitempty"`
}

// MoveDraft is the worker's proposed-move response (§6).
type MoveDraft struct {
	ID    string `json:"id,omitempty"`
	Move  string `json:"move"`
	Score int32  `json:"score"`
	Depth int    `json:"depth"`
	Nodes uint64 `json:"nodes"`
}

// Ready is sent in reply to a handshake-only request with no position.
type Ready struct {
	ID     string `json:"id,omitempty"`
	Status string `json:"status"`
}

// ErrorResponse reports a malformed request or a position the worker
// could not handle. The loop keeps reading after every error and never
// sets Fatal.
type ErrorResponse struct {
	ID    string `json:"id,omitempty"`
	Error string `json:"error"`
	Fatal bool   `json:"fatal,omitempty"`
}

// Server runs the stdin/stdout request loop.
type Server struct {
	Registry *moveset.Registry
	Values   *eval.Values
	Log      *zap.Logger

	in  *bufio.Scanner
	out io.Writer
}

// NewServer constructs a worker reading from in and writing responses
// to out, using registry for move generation and values for evaluation.
func NewServer(in io.Reader, out io.Writer, registry *moveset.Registry, values *eval.Values, log *zap.Logger) *Server {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	return &Server{Registry: registry, Values: values, Log: log, in: sc, out: out}
}

// Run drives the loop until EOF or a read error, the teacher's Run
// generalized from a UCI command switch to one JSON message kind per
// line.
func (s *Server) Run(ctx context.Context) error {
	for s.in.Scan() {
		line := s.in.Bytes()
		if len(line) == 0 {
			continue
		}
		var req Request
		if err := json.Unmarshal(line, &req); err != nil {
			s.writeJSON(ErrorResponse{Error: fmt.Sprintf("parse: %v", err)})
			continue
		}
		if req.ID == "" {
			req.ID = uuid.NewString()
		}
		if req.LF == "" {
			s.writeJSON(Ready{ID: req.ID, Status: "readyok"})
			continue
		}
		if err := s.handlePosition(ctx, req); err != nil {
			s.Log.Error("handle position failed", zap.String("id", req.ID), zap.Error(err))
			s.writeJSON(ErrorResponse{ID: req.ID, Error: err.Error()})
		}
	}
	return s.in.Err()
}

func (s *Server) handlePosition(ctx context.Context, req Request) error {
	rset := rules.Default()
	if req.Rules != "" {
		parsed, err := rules.Decode([]byte(req.Rules))
		if err != nil {
			return fmt.Errorf("rules: %w", err)
		}
		rset = parsed
	}

	entries, err := notation.ParseICN(req.LF)
	if err != nil {
		return fmt.Errorf("position: %w", err)
	}
	placements := make([]board.Placement, len(entries))
	for i, e := range entries {
		placements[i] = board.Placement{Raw: e.Raw, Player: e.Player, At: e.At, SpecialRight: true}
	}
	if len(rset.TurnOrder) == 0 {
		return fmt.Errorf("rules: turn_order must name at least one player")
	}
	b := board.FromPlacements(rset, s.Registry, placements, rset.TurnOrder[0])

	maxDepth := req.MaxDepth
	if maxDepth <= 0 {
		maxDepth = 6
	}
	moveTime := time.Duration(req.MoveTime) * time.Millisecond
	if moveTime <= 0 {
		moveTime = 2 * time.Second
	}

	moves := exec.Legal(b)
	if len(moves) == 0 {
		return fmt.Errorf("position: no legal moves for side to move")
	}

	stats := searchBestMove(ctx, b, s.Values, maxDepth, moveTime)
	s.writeJSON(MoveDraft{
		ID:    req.ID,
		Move:  notation.FormatMove(stats.bestMove),
		Score: stats.score,
		Depth: stats.depth,
		Nodes: stats.nodes,
	})
	return nil
}

func (s *Server) writeJSON(v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		s.Log.Error("marshal response failed", zap.Error(err))
		return
	}
	s.out.Write(append(data, '\n'))
}

// bestMoveResult is the subset of search.Stats the worker reports.
type bestMoveResult struct {
	bestMove move.Move
	score    int32
	depth    int
	nodes    uint64
}
