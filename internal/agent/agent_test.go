package agent

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/nolimit/internal/betting"
	"github.com/lox/nolimit/internal/deck"
	"github.com/lox/nolimit/internal/holdem"
	"github.com/lox/nolimit/internal/randutil"
)

func testLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func viewFacingBet() holdem.GameView {
	return holdem.GameView{
		View: betting.View{
			Street:            betting.Preflop,
			TotalPot:          150,
			PlayerCount:       3,
			ActorSeat:         0,
			Stacks:            []int{1000, 950, 900},
			Committed:         []int{0, 50, 100},
			Folded:            []bool{false, false, false},
			AllIn:             []bool{false, false, false},
			ToCall:            100,
			MinRaiseIncrement: 100,
			LegalActions:      []betting.Action{betting.Fold, betting.Call, betting.Raise, betting.AllIn},
		},
		Hole: []deck.Card{deck.MustParse("As"), deck.MustParse("Ah")},
	}
}

func viewUnopened() holdem.GameView {
	return holdem.GameView{
		View: betting.View{
			Street:            betting.Flop,
			TotalPot:          300,
			PlayerCount:       3,
			ActorSeat:         1,
			Stacks:            []int{900, 900, 900},
			Committed:         []int{0, 0, 0},
			Folded:            []bool{false, false, false},
			AllIn:             []bool{false, false, false},
			ToCall:            0,
			MinRaiseIncrement: 100,
			LegalActions:      []betting.Action{betting.Fold, betting.Check, betting.Bet},
		},
		Hole:  []deck.Card{deck.MustParse("Ks"), deck.MustParse("Kh")},
		Board: []deck.Card{deck.MustParse("Kd"), deck.MustParse("8c"), deck.MustParse("3s")},
	}
}

func TestRegistry(t *testing.T) {
	assert.Equal(t, []string{"call", "fold", "random", "strength"}, Strategies())

	for _, name := range Strategies() {
		a, err := New(name, randutil.New(1), testLogger())
		require.NoError(t, err)
		require.NotNil(t, a)
	}

	_, err := New("maniac", randutil.New(1), testLogger())
	assert.Error(t, err)
}

func TestFoldAgent(t *testing.T) {
	a := NewFoldAgent(testLogger())

	d := a.Decide(viewFacingBet())
	assert.Equal(t, betting.Fold, d.Action)

	d = a.Decide(viewUnopened())
	assert.Equal(t, betting.Check, d.Action)
}

func TestCallingAgent(t *testing.T) {
	a := NewCallingAgent(testLogger())

	d := a.Decide(viewFacingBet())
	assert.Equal(t, betting.Call, d.Action)

	d = a.Decide(viewUnopened())
	assert.Equal(t, betting.Check, d.Action)
}

func TestRandomAgentStaysLegal(t *testing.T) {
	a := NewRandomAgent(randutil.New(99), testLogger())

	for i := 0; i < 200; i++ {
		view := viewFacingBet()
		d := a.Decide(view)
		assert.Contains(t, view.LegalActions, d.Action)
		if d.Action == betting.Raise {
			// Requested target never exceeds what the seat can put in.
			assert.LessOrEqual(t, d.Amount, view.Stacks[0]+view.Committed[0])
			assert.GreaterOrEqual(t, d.Amount, 200)
		}
	}
}

func TestStrengthAgentStaysLegal(t *testing.T) {
	a := NewStrengthAgent(randutil.New(7), testLogger())

	for i := 0; i < 200; i++ {
		for _, view := range []holdem.GameView{viewFacingBet(), viewUnopened()} {
			d := a.Decide(view)
			assert.Contains(t, view.LegalActions, d.Action)
		}
	}
}

func TestStrengthAgentFoldsMoreWithWeakHands(t *testing.T) {
	weak := NewStrengthAgent(randutil.New(11), testLogger())
	strong := NewStrengthAgent(randutil.New(11), testLogger())

	weakView := viewFacingBet()
	weakView.Hole = []deck.Card{deck.MustParse("7s"), deck.MustParse("2h")}
	weakView.Board = []deck.Card{deck.MustParse("Ad"), deck.MustParse("Kc"), deck.MustParse("9s"), deck.MustParse("5d"), deck.MustParse("3c")}
	weakView.Street = betting.River

	strongView := viewFacingBet()
	strongView.Hole = []deck.Card{deck.MustParse("As"), deck.MustParse("Ah")}
	strongView.Board = []deck.Card{deck.MustParse("Ad"), deck.MustParse("Kc"), deck.MustParse("9s"), deck.MustParse("5d"), deck.MustParse("3c")}
	strongView.Street = betting.River

	weakFolds, strongFolds := 0, 0
	for i := 0; i < 500; i++ {
		if weak.Decide(weakView).Action == betting.Fold {
			weakFolds++
		}
		if strong.Decide(strongView).Action == betting.Fold {
			strongFolds++
		}
	}
	assert.Greater(t, weakFolds, strongFolds)
}
