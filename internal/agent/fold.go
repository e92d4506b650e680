package agent

import (
	"github.com/charmbracelet/log"

	"github.com/lox/nolimit/internal/betting"
	"github.com/lox/nolimit/internal/holdem"
)

// FoldAgent always folds, checking instead when checking is free.
type FoldAgent struct {
	logger *log.Logger
}

// NewFoldAgent creates a new FoldAgent.
func NewFoldAgent(logger *log.Logger) *FoldAgent {
	return &FoldAgent{logger: logger}
}

func (f *FoldAgent) Decide(view holdem.GameView) holdem.Decision {
	if hasAction(view.LegalActions, betting.Check) {
		return holdem.Decision{Action: betting.Check, Reasoning: "fold-agent checking for free"}
	}
	return holdem.Decision{Action: betting.Fold, Reasoning: "fold-agent folding"}
}
