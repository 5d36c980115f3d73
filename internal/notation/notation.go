// Package notation renders and parses the engine's two text formats
// (§5): compact move notation "S>E[P]" and the ICN short-form position
// description "type x,y | type x,y | ...".
//
// zurichess sources: movegen.go's Move.UCI()/LAN() string builders,
// generalized since coordinates are no longer single-letter files.
package notation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mosoi-variant/vareng/internal/coord"
	"github.com/mosoi-variant/vareng/internal/move"
	"github.com/mosoi-variant/vareng/internal/piece"
)

// FormatMove renders m as "S>E" or "S>E[P]" for a promotion, the
// compact notation used on the worker protocol's MoveDraft output.
func FormatMove(m move.Move) string {
	return m.String()
}

// ParseMove parses compact notation back into a partial Move: From,
// To, and PromoteTo (if bracketed) are populated; Piece/Captured/Kind
// must be filled in by matching the result against the board's legal
// moves, since notation alone can't disambiguate en-passant/castle/
// double-step without board context.
func ParseMove(s string) (coord.Coord, coord.Coord, piece.Raw, error) {
	var promote piece.Raw
	body := s
	if i := strings.IndexByte(s, '['); i >= 0 {
		if !strings.HasSuffix(s, "]") {
			return coord.Coord{}, coord.Coord{}, 0, fmt.Errorf("notation: malformed promotion suffix in %q", s)
		}
		n, err := strconv.Atoi(s[i+1 : len(s)-1])
		if err != nil {
			return coord.Coord{}, coord.Coord{}, 0, fmt.Errorf("notation: bad promotion type in %q: %w", s, err)
		}
		promote = piece.Raw(n)
		body = s[:i]
	}
	parts := strings.SplitN(body, ">", 2)
	if len(parts) != 2 {
		return coord.Coord{}, coord.Coord{}, 0, fmt.Errorf("notation: expected \"from>to\", got %q", s)
	}
	from, err := ParseCoord(parts[0])
	if err != nil {
		return coord.Coord{}, coord.Coord{}, 0, err
	}
	to, err := ParseCoord(parts[1])
	if err != nil {
		return coord.Coord{}, coord.Coord{}, 0, err
	}
	return from, to, promote, nil
}

// ParseCoord parses an "x,y" coordinate pair.
func ParseCoord(s string) (coord.Coord, error) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return coord.Coord{}, fmt.Errorf("notation: expected \"x,y\", got %q", s)
	}
	x, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return coord.Coord{}, fmt.Errorf("notation: bad x in %q: %w", s, err)
	}
	y, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return coord.Coord{}, fmt.Errorf("notation: bad y in %q: %w", s, err)
	}
	return coord.New(x, y), nil
}

// PieceEntry is one piece in an ICN short-form position description.
type PieceEntry struct {
	Raw    piece.Raw
	Player piece.Player
	At     coord.Coord
}

// FormatICN renders entries as "type x,y | type x,y | ...", the short
// form used to seed a board in the worker protocol's "lf" payload.
func FormatICN(entries []PieceEntry) string {
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = fmt.Sprintf("%d%s %s", e.Raw, playerSuffix(e.Player), e.At)
	}
	return strings.Join(parts, " | ")
}

func playerSuffix(p piece.Player) string {
	switch p {
	case piece.White:
		return "w"
	case piece.Black:
		return "b"
	default:
		return "n"
	}
}

func playerFromSuffix(s string) (piece.Player, error) {
	switch s {
	case "w":
		return piece.White, nil
	case "b":
		return piece.Black, nil
	case "n":
		return piece.Neutral, nil
	}
	return piece.NoPlayer, fmt.Errorf("notation: unknown player suffix %q", s)
}

// ParseICN parses a short-form position description into entries.
func ParseICN(s string) ([]PieceEntry, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	fields := strings.Split(s, "|")
	out := make([]PieceEntry, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		tok := strings.Fields(f)
		if len(tok) != 2 {
			return nil, fmt.Errorf("notation: malformed ICN entry %q", f)
		}
		if len(tok[0]) < 2 {
			return nil, fmt.Errorf("notation: malformed ICN type/player %q", tok[0])
		}
		rawStr, playerStr := tok[0][:len(tok[0])-1], tok[0][len(tok[0])-1:]
		raw, err := strconv.Atoi(rawStr)
		if err != nil {
			return nil, fmt.Errorf("notation: bad raw type in %q: %w", f, err)
		}
		pl, err := playerFromSuffix(playerStr)
		if err != nil {
			return nil, err
		}
		at, err := ParseCoord(tok[1])
		if err != nil {
			return nil, err
		}
		out = append(out, PieceEntry{Raw: piece.Raw(raw), Player: pl, At: at})
	}
	return out, nil
}
