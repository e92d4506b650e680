package agent

import (
	"github.com/charmbracelet/log"

	"github.com/lox/nolimit/internal/betting"
	"github.com/lox/nolimit/internal/holdem"
)

// CallingAgent checks when it can and calls any bet. It never raises and
// never folds while calling is possible.
type CallingAgent struct {
	logger *log.Logger
}

// NewCallingAgent creates a new CallingAgent.
func NewCallingAgent(logger *log.Logger) *CallingAgent {
	return &CallingAgent{logger: logger}
}

func (c *CallingAgent) Decide(view holdem.GameView) holdem.Decision {
	if hasAction(view.LegalActions, betting.Check) {
		return holdem.Decision{Action: betting.Check, Reasoning: "calling-agent checking"}
	}
	if hasAction(view.LegalActions, betting.Call) {
		return holdem.Decision{Action: betting.Call, Reasoning: "calling-agent calling"}
	}
	return holdem.Decision{Action: betting.Fold, Reasoning: "calling-agent cannot call"}
}
