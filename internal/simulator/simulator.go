// Package simulator runs batches of hands between configured strategies and
// aggregates the outcomes. Work is split across parallel workers, each
// playing an independent session with its own derived seed, so runs are
// reproducible for a given seed regardless of scheduling.
package simulator

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/nolimit/internal/agent"
	"github.com/lox/nolimit/internal/betting"
	"github.com/lox/nolimit/internal/holdem"
	"github.com/lox/nolimit/internal/randutil"
	"github.com/lox/nolimit/internal/statistics"
)

// Seat configures one simulated player.
type Seat struct {
	Name     string
	Strategy string
	Stack    int
}

// Config holds simulation parameters. Hands is the total across all
// workers; each worker plays its share in one session.
type Config struct {
	Betting betting.Config
	Seats   []Seat
	Hands   int
	Workers int
	Seed    int64
	Timeout time.Duration
	Logger  *log.Logger
}

// Simulator runs the configured simulation.
type Simulator struct {
	cfg Config
}

// New validates the configuration and builds a simulator.
func New(cfg Config) (*Simulator, error) {
	if len(cfg.Seats) < 2 || len(cfg.Seats) > 6 {
		return nil, fmt.Errorf("simulations take 2..6 seats, got %d", len(cfg.Seats))
	}
	if cfg.Hands <= 0 {
		return nil, fmt.Errorf("simulation needs a positive hand count, got %d", cfg.Hands)
	}
	if cfg.Logger == nil {
		return nil, fmt.Errorf("simulation requires a logger")
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.Workers > cfg.Hands {
		cfg.Workers = cfg.Hands
	}
	seen := make(map[string]bool, len(cfg.Seats))
	for _, seat := range cfg.Seats {
		if seat.Name == "" {
			return nil, fmt.Errorf("every seat needs a name")
		}
		if seen[seat.Name] {
			return nil, fmt.Errorf("duplicate seat name %q", seat.Name)
		}
		seen[seat.Name] = true
		if seat.Stack <= 0 {
			return nil, fmt.Errorf("seat %q needs a positive stack, got %d", seat.Name, seat.Stack)
		}
		if _, err := agent.New(seat.Strategy, randutil.New(0), cfg.Logger); err != nil {
			return nil, fmt.Errorf("seat %q: %w", seat.Name, err)
		}
	}
	return &Simulator{cfg: cfg}, nil
}

// Run plays the configured hands and returns the merged tally.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	cfg := s.cfg
	tallies := make([]*statistics.Statistics, cfg.Workers)

	g, ctx := errgroup.WithContext(ctx)
	for worker := 0; worker < cfg.Workers; worker++ {
		g.Go(func() error {
			tally, err := s.runWorker(ctx, worker, s.workerHands(worker))
			if err != nil {
				return fmt.Errorf("worker %d: %w", worker, err)
			}
			tallies[worker] = tally
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := statistics.New()
	for _, tally := range tallies {
		merged.Merge(tally)
	}
	if err := merged.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}
	return merged, nil
}

// workerHands splits the total hand count as evenly as possible, earlier
// workers taking the remainder.
func (s *Simulator) workerHands(worker int) int {
	hands := s.cfg.Hands / s.cfg.Workers
	if worker < s.cfg.Hands%s.cfg.Workers {
		hands++
	}
	return hands
}

func (s *Simulator) runWorker(ctx context.Context, worker, hands int) (*statistics.Statistics, error) {
	cfg := s.cfg
	// Each worker gets a disjoint seed stream so sessions never share rng
	// state and the merged result is independent of worker count only in
	// distribution, not hand-for-hand.
	workerSeed := cfg.Seed + int64(worker)*1_000_003

	players := make([]holdem.Player, len(cfg.Seats))
	for i, seat := range cfg.Seats {
		a, err := agent.New(seat.Strategy, randutil.ForHand(workerSeed, i), cfg.Logger)
		if err != nil {
			return nil, err
		}
		players[i] = holdem.Player{Name: seat.Name, Agent: a, Chips: seat.Stack}
	}

	session, err := holdem.NewSession(holdem.SessionConfig{
		Betting:         cfg.Betting,
		Players:         players,
		Hands:           hands,
		Seed:            workerSeed,
		Logger:          cfg.Logger,
		DecisionTimeout: cfg.Timeout,
	})
	if err != nil {
		return nil, err
	}

	results, err := session.Run(ctx)
	if err != nil {
		return nil, err
	}

	tally := statistics.New()
	for _, result := range results {
		if err := tally.Add(toRecord(cfg.Betting, result)); err != nil {
			return nil, err
		}
	}
	return tally, nil
}

func toRecord(cfg betting.Config, result *holdem.HandResult) statistics.HandRecord {
	net := make(map[string]int, len(result.Names))
	for seat, name := range result.Names {
		net[name] = result.Net[seat]
	}
	return statistics.HandRecord{
		BigBlind:      cfg.BigBlind,
		Pot:           result.Pot,
		Winner:        result.WinnerName,
		Showdown:      result.Showdown,
		WinningRank:   result.WinningRank,
		StreetReached: result.StreetReached.String(),
		Net:           net,
	}
}
