package agent

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/nolimit/internal/betting"
	"github.com/lox/nolimit/internal/eval"
	"github.com/lox/nolimit/internal/holdem"
)

// StrengthAgent mixes its actions by evaluated hand strength and pot odds:
// stronger hands bet and raise more often and size their bets larger, weak
// hands facing bad pot odds fold more.
type StrengthAgent struct {
	rng    *rand.Rand
	logger *log.Logger
}

// NewStrengthAgent creates a new StrengthAgent.
func NewStrengthAgent(rng *rand.Rand, logger *log.Logger) *StrengthAgent {
	return &StrengthAgent{rng: rng, logger: logger}
}

func (s *StrengthAgent) Decide(view holdem.GameView) holdem.Decision {
	strength := eval.Strength(view.Hole, view.Board)
	multiplier := 0.5 + strength*1.5

	if view.ToCall == 0 {
		return s.decideUnopened(view, strength, multiplier)
	}
	return s.decideFacingBet(view, strength, multiplier)
}

func (s *StrengthAgent) decideUnopened(view holdem.GameView, strength, multiplier float64) holdem.Decision {
	var base float64
	switch view.Street {
	case betting.Preflop:
		base = 0.30
	case betting.Flop:
		base = 0.40
	case betting.Turn:
		base = 0.45
	default:
		base = 0.50
	}

	betProb := min(base*multiplier, 1.0)
	if !hasAction(view.LegalActions, betting.Bet) {
		betProb = 0
	}

	if s.rng.Float64() < betProb {
		target := s.betTarget(view, strength, multiplier)
		return holdem.Decision{
			Action:    betting.Bet,
			Amount:    target,
			Reasoning: fmt.Sprintf("betting with strength %.2f", strength),
		}
	}
	if hasAction(view.LegalActions, betting.Check) {
		return holdem.Decision{Action: betting.Check, Reasoning: "checking"}
	}
	return holdem.Decision{Action: betting.Fold, Reasoning: "nothing else legal"}
}

func (s *StrengthAgent) decideFacingBet(view holdem.GameView, strength, multiplier float64) holdem.Decision {
	potOdds := 0.0
	if view.TotalPot+view.ToCall > 0 {
		potOdds = float64(view.ToCall) / float64(view.TotalPot+view.ToCall)
	}
	callProb := min(clamp(1.0-potOdds, 0.10, 0.90)*multiplier, 0.95)

	raiseProb := 0.0
	if hasAction(view.LegalActions, betting.Raise) {
		raiseProb = min(0.15*multiplier, 0.3)
	}
	allInProb := 0.0
	if hasAction(view.LegalActions, betting.AllIn) {
		allInProb = min(0.02*multiplier, 0.1)
	}

	roll := s.rng.Float64()
	switch {
	case roll < allInProb:
		return holdem.Decision{Action: betting.AllIn, Reasoning: fmt.Sprintf("shoving with strength %.2f", strength)}
	case roll < allInProb+raiseProb:
		target := view.ToCall + view.Committed[view.ActorSeat] + s.betTarget(view, strength, multiplier)
		return holdem.Decision{
			Action:    betting.Raise,
			Amount:    target,
			Reasoning: fmt.Sprintf("raising with strength %.2f", strength),
		}
	case roll < allInProb+raiseProb+callProb:
		return holdem.Decision{Action: betting.Call, Reasoning: fmt.Sprintf("calling with strength %.2f at odds %.2f", strength, potOdds)}
	default:
		return holdem.Decision{Action: betting.Fold, Reasoning: fmt.Sprintf("folding with strength %.2f at odds %.2f", strength, potOdds)}
	}
}

// betTarget sizes a bet between half pot and full pot, scaled by strength
// and clamped to the stack.
func (s *StrengthAgent) betTarget(view holdem.GameView, strength, multiplier float64) int {
	minInc := max(view.MinRaiseIncrement, 1)
	pot := view.TotalPot
	options := []int{
		max(minInc, int(float64(pot)*0.5)),
		max(minInc, int(float64(pot)*0.66)),
		max(minInc, pot),
	}
	pick := options[s.rng.IntN(len(options))]
	adjusted := int(float64(pick) * multiplier)

	stack := view.Stacks[view.ActorSeat] + view.Committed[view.ActorSeat]
	return max(minInc, min(adjusted, stack))
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}
