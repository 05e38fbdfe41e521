package minimax

import (
	"encoding/json"
	"strings"
)

type Config struct {
	Depth    int            `json:"depth"`
	TieBreak TieBreakPolicy `json:"tie_break"`
	Memo     MemoPolicy     `json:"memo"`
	Pruning  bool           `json:"pruning"`
}

func (c Config) String() string {
	builder := strings.Builder{}
	_ = json.NewEncoder(&builder).Encode(c)
	return strings.TrimSpace(builder.String())
}

const (
	// Enough to solve the classic 3x3 board
	DefaultDepth    int            = 9
	DefaultTieBreak TieBreakPolicy = TieBreakFirst
	DefaultMemo     MemoPolicy     = MemoBounded
)

func DefaultConfig() *Config {
	return &Config{
		Depth:    DefaultDepth,
		TieBreak: DefaultTieBreak,
		Memo:     DefaultMemo,
		Pruning:  true,
	}
}

// Set the search depth used by Engine.Move, must be positive
func (c *Config) SetDepth(depth int) *Config {
	c.Depth = depth
	return c
}

// Set the policy choosing between equally scored moves
func (c *Config) SetTieBreak(policy TieBreakPolicy) *Config {
	c.TieBreak = policy
	return c
}

func (c *Config) SetMemo(policy MemoPolicy) *Config {
	c.Memo = policy
	return c
}

// Enable or disable alpha-beta cutoffs, without them the search is
// an exhaustive minimax
func (c *Config) SetPruning(pruning bool) *Config {
	c.Pruning = pruning
	return c
}

func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
