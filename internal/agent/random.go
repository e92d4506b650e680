package agent

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/nolimit/internal/betting"
	"github.com/lox/nolimit/internal/holdem"
)

// RandomAgent picks uniformly among the legal actions. Bets and raises are
// sized at the minimum plus a random slice of the remaining stack.
type RandomAgent struct {
	rng    *rand.Rand
	logger *log.Logger
}

// NewRandomAgent creates a new RandomAgent.
func NewRandomAgent(rng *rand.Rand, logger *log.Logger) *RandomAgent {
	return &RandomAgent{rng: rng, logger: logger}
}

func (r *RandomAgent) Decide(view holdem.GameView) holdem.Decision {
	if len(view.LegalActions) == 0 {
		return holdem.Decision{Action: betting.Fold, Reasoning: "random-agent has no legal actions"}
	}

	action := view.LegalActions[r.rng.IntN(len(view.LegalActions))]
	amount := 0

	switch action {
	case betting.Bet, betting.Raise:
		currentMax := 0
		for _, c := range view.Committed {
			currentMax = max(currentMax, c)
		}
		minTarget := currentMax + view.MinRaiseIncrement
		spare := view.Stacks[view.ActorSeat] + view.Committed[view.ActorSeat] - minTarget
		amount = minTarget
		if spare > 0 {
			amount += r.rng.IntN(spare + 1)
		}
	}

	return holdem.Decision{Action: action, Amount: amount, Reasoning: "random-agent random action"}
}
