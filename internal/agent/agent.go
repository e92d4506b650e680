// Package agent provides the built-in decision policies that drive seats in
// simulated hands. Each agent implements holdem.Agent: an immutable view in,
// a decision out.
package agent

import (
	"fmt"
	rand "math/rand/v2"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/lox/nolimit/internal/betting"
	"github.com/lox/nolimit/internal/holdem"
)

// Strategies returns the registered strategy names in sorted order.
func Strategies() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var registry = map[string]func(rng *rand.Rand, logger *log.Logger) holdem.Agent{
	"fold":     func(_ *rand.Rand, logger *log.Logger) holdem.Agent { return NewFoldAgent(logger) },
	"call":     func(_ *rand.Rand, logger *log.Logger) holdem.Agent { return NewCallingAgent(logger) },
	"random":   func(rng *rand.Rand, logger *log.Logger) holdem.Agent { return NewRandomAgent(rng, logger) },
	"strength": func(rng *rand.Rand, logger *log.Logger) holdem.Agent { return NewStrengthAgent(rng, logger) },
}

// New builds an agent by strategy name.
func New(strategy string, rng *rand.Rand, logger *log.Logger) (holdem.Agent, error) {
	build, ok := registry[strategy]
	if !ok {
		return nil, fmt.Errorf("unknown strategy %q (have %v)", strategy, Strategies())
	}
	return build(rng, logger), nil
}

func hasAction(actions []betting.Action, want betting.Action) bool {
	for _, a := range actions {
		if a == want {
			return true
		}
	}
	return false
}
