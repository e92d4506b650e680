// Package config loads simulation setups from HCL files: one game block for
// the blind structure and run parameters, plus a seat block per player.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/nolimit/internal/agent"
	"github.com/lox/nolimit/internal/betting"
)

// File is the root of a configuration file.
type File struct {
	Game  GameSettings `hcl:"game,block"`
	Seats []SeatConfig `hcl:"seat,block"`
}

// GameSettings holds blind structure and run parameters.
type GameSettings struct {
	SmallBlind    int    `hcl:"small_blind,optional"`
	BigBlind      int    `hcl:"big_blind,optional"`
	MinRaise      int    `hcl:"min_raise,optional"`
	StartingStack int    `hcl:"starting_stack,optional"`
	Hands         int    `hcl:"hands,optional"`
	Workers       int    `hcl:"workers,optional"`
	Seed          int64  `hcl:"seed,optional"`
	LogLevel      string `hcl:"log_level,optional"`
}

// SeatConfig configures one player.
type SeatConfig struct {
	Name     string `hcl:"name,label"`
	Strategy string `hcl:"strategy"`
	Stack    int    `hcl:"stack,optional"`
}

// Default returns the configuration used when no file is given: a four-way
// table of the built-in strategies.
func Default() *File {
	return &File{
		Game: GameSettings{
			SmallBlind:    50,
			BigBlind:      100,
			StartingStack: 10000,
			Hands:         100,
			Workers:       1,
			LogLevel:      "info",
		},
		Seats: []SeatConfig{
			{Name: "hero", Strategy: "strength"},
			{Name: "chaos", Strategy: "random"},
			{Name: "station", Strategy: "call"},
			{Name: "nit", Strategy: "fold"},
		},
	}
}

// Load reads a configuration file, falling back to Default when the path is
// empty or the file does not exist.
func Load(filename string) (*File, error) {
	if filename == "" {
		return Default(), nil
	}
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg File
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (f *File) applyDefaults() {
	def := Default()
	if f.Game.SmallBlind == 0 {
		f.Game.SmallBlind = def.Game.SmallBlind
	}
	if f.Game.BigBlind == 0 {
		f.Game.BigBlind = def.Game.BigBlind
	}
	if f.Game.StartingStack == 0 {
		f.Game.StartingStack = def.Game.StartingStack
	}
	if f.Game.Hands == 0 {
		f.Game.Hands = def.Game.Hands
	}
	if f.Game.Workers == 0 {
		f.Game.Workers = def.Game.Workers
	}
	if f.Game.LogLevel == "" {
		f.Game.LogLevel = def.Game.LogLevel
	}
	if len(f.Seats) == 0 {
		f.Seats = def.Seats
	}
	for i := range f.Seats {
		if f.Seats[i].Stack == 0 {
			f.Seats[i].Stack = f.Game.StartingStack
		}
	}
}

// Validate checks the configuration for usability.
func (f *File) Validate() error {
	if f.Game.SmallBlind <= 0 {
		return fmt.Errorf("small blind must be positive, got %d", f.Game.SmallBlind)
	}
	if f.Game.BigBlind < f.Game.SmallBlind {
		return fmt.Errorf("big blind %d below small blind %d", f.Game.BigBlind, f.Game.SmallBlind)
	}
	if f.Game.MinRaise < 0 {
		return fmt.Errorf("min raise must not be negative, got %d", f.Game.MinRaise)
	}
	if f.Game.Hands <= 0 {
		return fmt.Errorf("hands must be positive, got %d", f.Game.Hands)
	}
	if f.Game.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", f.Game.Workers)
	}
	if len(f.Seats) < 2 || len(f.Seats) > 6 {
		return fmt.Errorf("configuration needs 2..6 seats, got %d", len(f.Seats))
	}

	valid := make(map[string]bool)
	for _, name := range agent.Strategies() {
		valid[name] = true
	}
	seen := make(map[string]bool)
	for _, seat := range f.Seats {
		if seat.Name == "" {
			return fmt.Errorf("every seat needs a name")
		}
		if seen[seat.Name] {
			return fmt.Errorf("duplicate seat name %q", seat.Name)
		}
		seen[seat.Name] = true
		if !valid[seat.Strategy] {
			return fmt.Errorf("seat %q: unknown strategy %q (have %v)", seat.Name, seat.Strategy, agent.Strategies())
		}
		if seat.Stack <= 0 {
			return fmt.Errorf("seat %q: stack must be positive, got %d", seat.Name, seat.Stack)
		}
		if seat.Stack < f.Game.BigBlind {
			return fmt.Errorf("seat %q: stack %d cannot cover the big blind %d", seat.Name, seat.Stack, f.Game.BigBlind)
		}
	}
	return nil
}

// BettingConfig returns the blind structure for the betting core.
func (f *File) BettingConfig() betting.Config {
	cfg := betting.NewConfig(f.Game.SmallBlind, f.Game.BigBlind)
	if f.Game.MinRaise > 0 {
		cfg.MinRaiseIncrement = f.Game.MinRaise
	}
	return cfg
}
