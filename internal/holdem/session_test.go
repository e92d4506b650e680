package holdem

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/nolimit/internal/betting"
)

func TestNewSessionValidation(t *testing.T) {
	_, err := NewSession(SessionConfig{
		Betting: betting.NewConfig(50, 100),
		Players: []Player{{Name: "a", Agent: checkCallAgent{}, Chips: 1000}},
		Hands:   1,
		Logger:  testLogger(),
	})
	assert.Error(t, err, "too few players")

	_, err = NewSession(SessionConfig{
		Betting: betting.NewConfig(50, 100),
		Players: []Player{
			{Name: "a", Agent: checkCallAgent{}, Chips: 1000},
			{Name: "b", Agent: checkCallAgent{}, Chips: 1000},
		},
		Hands:  0,
		Logger: testLogger(),
	})
	assert.Error(t, err, "hand count must be positive")

	_, err = NewSession(SessionConfig{
		Betting: betting.NewConfig(50, 100),
		Players: []Player{
			{Name: "a", Agent: checkCallAgent{}, Chips: 1000},
			{Name: "b", Agent: checkCallAgent{}, Chips: 1000},
		},
		Hands: 1,
	})
	assert.Error(t, err, "logger required")
}

func TestSessionCarriesStacksBetweenHands(t *testing.T) {
	session, err := NewSession(SessionConfig{
		Betting: betting.NewConfig(50, 100),
		Players: []Player{
			{Name: "alice", Agent: checkCallAgent{}, Chips: 1000},
			{Name: "bob", Agent: checkCallAgent{}, Chips: 1000},
		},
		Hands:  10,
		Seed:   42,
		Logger: testLogger(),
	})
	require.NoError(t, err)

	results, err := session.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 10)

	total := 0
	for _, p := range session.Players() {
		total += p.Chips
	}
	assert.Equal(t, 2000, total)

	// Stacks at the start of each hand are the previous hand's finish.
	for i := 1; i < len(results); i++ {
		prev := results[i-1].FinalStacks
		sum := 0
		for _, s := range prev {
			sum += s
		}
		assert.Equal(t, 2000, sum, "hand %d", i)
	}
}

func TestSessionStopsWhenOnePlayerHoldsAllChips(t *testing.T) {
	// An always-folding seat bleeds blinds every hand and eventually
	// busts; the session must stop early rather than deal heads-up to a
	// zero stack.
	folder := &scriptedAgent{decisions: []Decision{{Action: betting.Fold}}}
	session, err := NewSession(SessionConfig{
		Betting: betting.NewConfig(50, 100),
		Players: []Player{
			{Name: "caller", Agent: checkCallAgent{}, Chips: 10000},
			{Name: "folder", Agent: folder, Chips: 200},
		},
		Hands:  1000,
		Seed:   7,
		Logger: testLogger(),
	})
	require.NoError(t, err)

	results, err := session.Run(context.Background())
	require.NoError(t, err)
	assert.Less(t, len(results), 1000)

	players := session.Players()
	assert.Equal(t, 10200, players[0].Chips)
	assert.Equal(t, 0, players[1].Chips)
}

func TestSessionStopsWhenContextCancelled(t *testing.T) {
	session, err := NewSession(SessionConfig{
		Betting: betting.NewConfig(50, 100),
		Players: []Player{
			{Name: "alice", Agent: checkCallAgent{}, Chips: 1000},
			{Name: "bob", Agent: checkCallAgent{}, Chips: 1000},
		},
		Hands:  1000,
		Seed:   3,
		Logger: testLogger(),
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := session.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, results)
}

func TestSessionDeterministicForSeed(t *testing.T) {
	run := func() []*HandResult {
		session, err := NewSession(SessionConfig{
			Betting: betting.NewConfig(50, 100),
			Players: []Player{
				{Name: "alice", Agent: checkCallAgent{}, Chips: 1000},
				{Name: "bob", Agent: checkCallAgent{}, Chips: 1000},
			},
			Hands:  5,
			Seed:   99,
			Logger: testLogger(),
		})
		require.NoError(t, err)
		results, err := session.Run(context.Background())
		require.NoError(t, err)
		return results
	}

	a, b := run(), run()
	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i].Board, b[i].Board, "hand %d", i)
		assert.Equal(t, a[i].Winner, b[i].Winner, "hand %d", i)
		assert.Equal(t, a[i].FinalStacks, b[i].FinalStacks, "hand %d", i)
	}
}
