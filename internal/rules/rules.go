// Package rules holds the game-configuration surface described in
// spec.md §6: turn order, per-player win conditions, promotion ranks
// and allowed promotion pieces, and the move-rule threshold.
//
// zurichess sources: interface.go's VARIANT_* tables (Config plays the
// role the teacher's per-variant globals played, but as data instead
// of package-level var sets, so a new variant needs no code change).
package rules

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/mosoi-variant/vareng/internal/piece"
)

// WinCondition enumerates the recognized win conditions a player can
// be assigned (§6).
type WinCondition string

const (
	Checkmate        WinCondition = "checkmate"
	RoyalCapture     WinCondition = "royalcapture"
	AllRoyalsCaptured WinCondition = "allroyalscaptured"
	ThreeCheck       WinCondition = "threecheck"
	KOTH             WinCondition = "koth"
	Stalemate        WinCondition = "stalemate"
)

// PlayerConfig is one player's share of a ruleset.
type PlayerConfig struct {
	Player          piece.Player
	WinConditions   map[WinCondition]bool
	PromotionRanks  []int64
	PromotionTypes  []piece.Raw
}

// Config is a complete game-rules configuration (§6 "Game rules
// (configuration)").
type Config struct {
	TurnOrder []piece.Player
	Players   map[piece.Player]*PlayerConfig
	MoveRule  int // 0 disables the move-rule counter

	// RoyalRaws lists which raw types count as "royal" for check/mate
	// purposes — generalizes the teacher's hardcoded King figure.
	RoyalRaws map[piece.Raw]bool
}

// tomlConfig is the on-disk shape decoded by BurntSushi/toml before
// being expanded into Config's map-keyed form.
type tomlConfig struct {
	TurnOrder []string `toml:"turn_order"`
	MoveRule  int      `toml:"move_rule"`
	RoyalRaws []int    `toml:"royal_raws"`
	Players   []struct {
		Player         string   `toml:"player"`
		WinConditions  []string `toml:"win_conditions"`
		PromotionRanks []int64  `toml:"promotion_ranks"`
		PromotionTypes []int    `toml:"promotion_types"`
	} `toml:"player"`
}

func playerFromString(s string) (piece.Player, error) {
	switch s {
	case "white":
		return piece.White, nil
	case "black":
		return piece.Black, nil
	case "neutral":
		return piece.Neutral, nil
	}
	return piece.NoPlayer, fmt.Errorf("rules: unknown player %q", s)
}

// Load decodes a ruleset from a TOML file on disk. The worker decodes
// the inline TOML of a request with Decode instead.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("rules: read %s: %w", path, err)
	}
	return Decode(data)
}

// Decode parses ruleset TOML bytes into a Config.
func Decode(data []byte) (*Config, error) {
	var raw tomlConfig
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return nil, fmt.Errorf("rules: decode: %w", err)
	}

	cfg := &Config{
		Players:   make(map[piece.Player]*PlayerConfig),
		MoveRule:  raw.MoveRule,
		RoyalRaws: make(map[piece.Raw]bool),
	}
	for _, r := range raw.RoyalRaws {
		cfg.RoyalRaws[piece.Raw(r)] = true
	}
	if len(cfg.RoyalRaws) == 0 {
		cfg.RoyalRaws[piece.RawKing] = true
	}
	for _, s := range raw.TurnOrder {
		p, err := playerFromString(s)
		if err != nil {
			return nil, err
		}
		cfg.TurnOrder = append(cfg.TurnOrder, p)
	}
	for _, pc := range raw.Players {
		p, err := playerFromString(pc.Player)
		if err != nil {
			return nil, err
		}
		entry := &PlayerConfig{
			Player:         p,
			WinConditions:  make(map[WinCondition]bool),
			PromotionRanks: pc.PromotionRanks,
		}
		for _, wc := range pc.WinConditions {
			entry.WinConditions[WinCondition(wc)] = true
		}
		for _, pt := range pc.PromotionTypes {
			entry.PromotionTypes = append(entry.PromotionTypes, piece.Raw(pt))
		}
		cfg.Players[p] = entry
	}
	return cfg, nil
}

// Default returns the orthodox two-player ruleset: checkmate win
// condition, standard promotion ranks/types, 50-move rule.
func Default() *Config {
	mkPlayer := func(p piece.Player, rank int64) *PlayerConfig {
		return &PlayerConfig{
			Player:         p,
			WinConditions:  map[WinCondition]bool{Checkmate: true},
			PromotionRanks: []int64{rank},
			PromotionTypes: []piece.Raw{piece.RawQueen, piece.RawRook, piece.RawBishop, piece.RawKnight},
		}
	}
	return &Config{
		TurnOrder: []piece.Player{piece.White, piece.Black},
		Players: map[piece.Player]*PlayerConfig{
			piece.White: mkPlayer(piece.White, 8),
			piece.Black: mkPlayer(piece.Black, 1),
		},
		MoveRule:  100, // ply count, i.e. 50 full moves
		RoyalRaws: map[piece.Raw]bool{piece.RawKing: true},
	}
}

// NextPlayer returns who moves after p, cycling through TurnOrder.
func (c *Config) NextPlayer(p piece.Player) piece.Player {
	for i, candidate := range c.TurnOrder {
		if candidate == p {
			return c.TurnOrder[(i+1)%len(c.TurnOrder)]
		}
	}
	if len(c.TurnOrder) == 0 {
		return p
	}
	return c.TurnOrder[0]
}

// UsesCheckmate reports whether p's win condition requires filtering
// self-check moves (§4.4 step 1).
func (c *Config) UsesCheckmate(p piece.Player) bool {
	pc, ok := c.Players[p]
	if !ok {
		return true
	}
	return pc.WinConditions[Checkmate] || pc.WinConditions[ThreeCheck] || pc.WinConditions[Stalemate]
}

// IsRoyal reports whether raw counts as a royal type.
func (c *Config) IsRoyal(r piece.Raw) bool {
	return c.RoyalRaws[r]
}

// IsPromotionRank reports whether rank is one of p's promotion ranks.
func (c *Config) IsPromotionRank(p piece.Player, rank int64) bool {
	pc, ok := c.Players[p]
	if !ok {
		return false
	}
	for _, r := range pc.PromotionRanks {
		if r == rank {
			return true
		}
	}
	return false
}

// AllowedPromotions returns the raw types p may promote a pawn into.
func (c *Config) AllowedPromotions(p piece.Player) []piece.Raw {
	pc, ok := c.Players[p]
	if !ok {
		return nil
	}
	return pc.PromotionTypes
}
