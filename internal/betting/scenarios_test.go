package betting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Heads-up: the small blind folds pre-flop, the hand ends without a flop and
// the blinds form the pot.
func TestScenarioHeadsUpFold(t *testing.T) {
	e := newTestEngine(t, 2, 0, []int{1000, 1000})
	l := e.Ledger()

	require.Equal(t, 1, l.ActorSeat())
	require.NoError(t, e.Apply(Fold, 0))

	assert.Equal(t, Closed, l.Street())
	assert.True(t, l.IsFolded(1))
	assert.Equal(t, 150, l.Pot())
	assert.Equal(t, 950, l.StackOf(1))
	assert.Equal(t, 900, l.StackOf(0))
	assert.Equal(t, 2000, l.TotalChips())
}

// A short stack shoves for 200 total, both opponents call, and the street
// closes with the short stack all-in.
func TestScenarioShortStackAllIn(t *testing.T) {
	e := newTestEngine(t, 3, 0, []int{200, 1000, 1000})
	l := e.Ledger()

	require.Equal(t, 0, l.ActorSeat())
	require.NoError(t, e.Apply(AllIn, 0))
	require.NoError(t, e.Apply(Call, 0))
	require.NoError(t, e.Apply(Call, 0))

	assert.Equal(t, 0, l.StackOf(0))
	assert.True(t, l.IsAllIn(0))
	assert.Equal(t, Flop, l.Street())
	assert.Equal(t, 600, l.Pot())
	assert.Equal(t, []int{0, 0, 0}, l.Committed())
	assert.Equal(t, 2200, l.TotalChips())
}

// Six seats check the flop around; the street closes exactly once and play
// advances to the turn with all commitments reset.
func TestScenarioCheckAround(t *testing.T) {
	stacks := []int{1000, 1000, 1000, 1000, 1000, 1000}
	e := newTestEngine(t, 6, 0, stacks)
	l := e.Ledger()

	// Everyone limps pre-flop and the big blind checks the option.
	for l.Street() == Preflop {
		if l.ToCall(l.ActorSeat()) > 0 {
			require.NoError(t, e.Apply(Call, 0))
		} else {
			require.NoError(t, e.Apply(Check, 0))
		}
	}
	require.Equal(t, Flop, l.Street())
	require.Equal(t, 600, l.Pot())

	for i := 0; i < 5; i++ {
		require.NoError(t, e.Apply(Check, 0))
		require.Equal(t, Flop, l.Street(), "street closed early after %d checks", i+1)
	}
	require.NoError(t, e.Apply(Check, 0))

	assert.Equal(t, Turn, l.Street())
	assert.Equal(t, 600, l.Pot())
	assert.Equal(t, make([]int, 6), l.Committed())
}

// An under-sized raise request commits only the call amount and leaves the
// raise increment untouched.
func TestScenarioUndersizedRaiseDegrades(t *testing.T) {
	e := newTestEngine(t, 3, 0, []int{1000, 1000, 1000})
	l := e.Ledger()

	require.Equal(t, 100, l.LastRaiseIncrement())
	toCall := l.ToCall(0)
	require.NoError(t, e.Apply(Raise, 150))

	assert.Equal(t, toCall, l.CommittedFor(0))
	assert.Equal(t, 100, l.LastRaiseIncrement())
}
