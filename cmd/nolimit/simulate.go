package main

import (
	"context"
	"fmt"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/lox/nolimit/internal/config"
	"github.com/lox/nolimit/internal/simulator"
)

// SimulateCmd runs a large batch of hands across parallel workers and
// reports the aggregate statistics.
type SimulateCmd struct {
	Hands   int   `help:"Total hands to simulate (overrides config)"`
	Workers int   `help:"Parallel workers (-1 = one per CPU, 0 = use config)"`
	Seed    int64 `help:"RNG seed (0 for time-based)"`
}

func (c *SimulateCmd) Run(cli *CLI) error {
	logger := setupLogger(cli.Debug)

	cfg, err := config.Load(cli.Config)
	if err != nil {
		return err
	}
	if c.Hands > 0 {
		cfg.Game.Hands = c.Hands
	}
	if c.Workers > 0 {
		cfg.Game.Workers = c.Workers
	} else if c.Workers < 0 {
		cfg.Game.Workers = runtime.NumCPU()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	seats := make([]simulator.Seat, len(cfg.Seats))
	for i, seat := range cfg.Seats {
		seats[i] = simulator.Seat{Name: seat.Name, Strategy: seat.Strategy, Stack: seat.Stack}
	}

	seed := resolveSeed(c.Seed)
	logger.Info("starting simulation",
		"hands", cfg.Game.Hands,
		"workers", cfg.Game.Workers,
		"seats", len(seats),
		"seed", seed)

	sim, err := simulator.New(simulator.Config{
		Betting: cfg.BettingConfig(),
		Seats:   seats,
		Hands:   cfg.Game.Hands,
		Workers: cfg.Game.Workers,
		Seed:    seed,
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	stats, err := sim.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Println(renderStats(stats))
	return nil
}
