package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/lox/nolimit/internal/agent"
	"github.com/lox/nolimit/internal/config"
	"github.com/lox/nolimit/internal/holdem"
	"github.com/lox/nolimit/internal/randutil"
)

// PlayCmd runs one session and prints each hand as it finishes.
type PlayCmd struct {
	Hands int   `help:"Number of hands to play (overrides config)"`
	Seed  int64 `help:"RNG seed (0 for time-based)"`
	Quiet bool  `short:"q" help:"Suppress per-action logging"`
}

func (c *PlayCmd) Run(cli *CLI) error {
	logger := setupLogger(cli.Debug)

	cfg, err := config.Load(cli.Config)
	if err != nil {
		return err
	}
	if c.Hands > 0 {
		cfg.Game.Hands = c.Hands
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	seed := resolveSeed(c.Seed)
	logger.Info("starting session",
		"hands", cfg.Game.Hands,
		"seats", len(cfg.Seats),
		"blinds", fmt.Sprintf("%d/%d", cfg.Game.SmallBlind, cfg.Game.BigBlind),
		"seed", seed)

	players, err := buildPlayers(cfg, seed, logger)
	if err != nil {
		return err
	}

	var observer holdem.Observer = holdem.NopObserver{}
	if !c.Quiet {
		observer = holdem.NewLogObserver(logger)
	}

	session, err := holdem.NewSession(holdem.SessionConfig{
		Betting:  cfg.BettingConfig(),
		Players:  players,
		Hands:    cfg.Game.Hands,
		Seed:     seed,
		Logger:   logger,
		Observer: observer,
	})
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	results, err := session.Run(ctx)
	if err != nil {
		return err
	}

	for i, result := range results {
		fmt.Println(renderHand(i+1, result))
	}
	fmt.Println(renderChipCounts(session.Players()))
	return nil
}

// buildPlayers constructs one agent per configured seat, each with its own
// derived rng so seat order never couples agent randomness.
func buildPlayers(cfg *config.File, seed int64, logger *log.Logger) ([]holdem.Player, error) {
	players := make([]holdem.Player, len(cfg.Seats))
	for i, seat := range cfg.Seats {
		a, err := agent.New(seat.Strategy, randutil.ForHand(seed, i), logger)
		if err != nil {
			return nil, err
		}
		players[i] = holdem.Player{Name: seat.Name, Agent: a, Chips: seat.Stack}
	}
	return players, nil
}
