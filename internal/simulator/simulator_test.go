package simulator

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/nolimit/internal/betting"
)

func testLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func twoSeats() []Seat {
	return []Seat{
		{Name: "caller", Strategy: "call", Stack: 10000},
		{Name: "folder", Strategy: "fold", Stack: 10000},
	}
}

func TestNewValidation(t *testing.T) {
	base := Config{
		Betting: betting.NewConfig(50, 100),
		Seats:   twoSeats(),
		Hands:   10,
		Logger:  testLogger(),
	}

	_, err := New(base)
	require.NoError(t, err)

	cfg := base
	cfg.Seats = cfg.Seats[:1]
	_, err = New(cfg)
	assert.Error(t, err, "too few seats")

	cfg = base
	cfg.Hands = 0
	_, err = New(cfg)
	assert.Error(t, err, "zero hands")

	cfg = base
	cfg.Logger = nil
	_, err = New(cfg)
	assert.Error(t, err, "missing logger")

	cfg = base
	cfg.Seats = []Seat{
		{Name: "a", Strategy: "call", Stack: 1000},
		{Name: "a", Strategy: "fold", Stack: 1000},
	}
	_, err = New(cfg)
	assert.Error(t, err, "duplicate name")

	cfg = base
	cfg.Seats = []Seat{
		{Name: "a", Strategy: "call", Stack: 1000},
		{Name: "b", Strategy: "maniac", Stack: 1000},
	}
	_, err = New(cfg)
	assert.Error(t, err, "unknown strategy")

	cfg = base
	cfg.Seats = []Seat{
		{Name: "a", Strategy: "call", Stack: 1000},
		{Name: "b", Strategy: "fold", Stack: 0},
	}
	_, err = New(cfg)
	assert.Error(t, err, "non-positive stack")
}

func TestRunTalliesEveryHand(t *testing.T) {
	sim, err := New(Config{
		Betting: betting.NewConfig(50, 100),
		Seats:   twoSeats(),
		Hands:   20,
		Workers: 1,
		Seed:    42,
		Logger:  testLogger(),
	})
	require.NoError(t, err)

	stats, err := sim.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 20, stats.Hands)
	require.NoError(t, stats.Validate())
	require.Contains(t, stats.Players, "caller")
	require.Contains(t, stats.Players, "folder")
	assert.Equal(t, 20, stats.Players["caller"].Hands)
	assert.Equal(t, 20, stats.Players["folder"].Hands)
	assert.Equal(t, 0, stats.Players["caller"].NetChips+stats.Players["folder"].NetChips)
}

func TestRunSplitsHandsAcrossWorkers(t *testing.T) {
	sim, err := New(Config{
		Betting: betting.NewConfig(50, 100),
		Seats:   twoSeats(),
		Hands:   21,
		Workers: 4,
		Seed:    7,
		Logger:  testLogger(),
	})
	require.NoError(t, err)

	stats, err := sim.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 21, stats.Hands)
	require.NoError(t, stats.Validate())
}

func TestRunDeterministicForSeed(t *testing.T) {
	run := func() *Config {
		return &Config{
			Betting: betting.NewConfig(50, 100),
			Seats: []Seat{
				{Name: "a", Strategy: "strength", Stack: 10000},
				{Name: "b", Strategy: "random", Stack: 10000},
				{Name: "c", Strategy: "call", Stack: 10000},
			},
			Hands:   30,
			Workers: 3,
			Seed:    99,
			Logger:  testLogger(),
		}
	}

	first, err := New(*run())
	require.NoError(t, err)
	second, err := New(*run())
	require.NoError(t, err)

	a, err := first.Run(context.Background())
	require.NoError(t, err)
	b, err := second.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, a.Hands, b.Hands)
	assert.Equal(t, a.Players, b.Players)
	assert.Equal(t, a.StreetCounts, b.StreetCounts)
	assert.Equal(t, a.BiggestPot, b.BiggestPot)
}

func TestRunMixedStrategiesStayBalanced(t *testing.T) {
	sim, err := New(Config{
		Betting: betting.NewConfig(50, 100),
		Seats: []Seat{
			{Name: "a", Strategy: "strength", Stack: 5000},
			{Name: "b", Strategy: "random", Stack: 5000},
			{Name: "c", Strategy: "call", Stack: 5000},
			{Name: "d", Strategy: "fold", Stack: 5000},
		},
		Hands:   40,
		Workers: 2,
		Seed:    123,
		Logger:  testLogger(),
	})
	require.NoError(t, err)

	stats, err := sim.Run(context.Background())
	require.NoError(t, err)

	// Sessions may end early when a single player holds all the chips, so
	// the tally can come in under the requested count, never over.
	assert.Greater(t, stats.Hands, 0)
	assert.LessOrEqual(t, stats.Hands, 40)
	require.NoError(t, stats.Validate())

	total := 0
	for _, p := range stats.Players {
		total += p.NetChips
	}
	assert.Equal(t, 0, total)
}

func TestRunHonorsCancelledContext(t *testing.T) {
	sim, err := New(Config{
		Betting: betting.NewConfig(50, 100),
		Seats: []Seat{
			{Name: "caller", Strategy: "call", Stack: 1_000_000},
			{Name: "folder", Strategy: "fold", Stack: 1_000_000},
		},
		Hands:   5000,
		Workers: 1,
		Seed:    1,
		Logger:  testLogger(),
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = sim.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
