package holdem

import (
	"github.com/charmbracelet/log"

	"github.com/lox/nolimit/internal/betting"
	"github.com/lox/nolimit/internal/deck"
)

// Observer receives hand lifecycle events from the driver. The betting core
// itself emits no I/O; anything that wants to watch a hand (logging, event
// streaming, statistics) hangs off this interface.
type Observer interface {
	HandStarted(handID string, names []string, button int, stacks []int)
	ActionApplied(handID string, seat int, street betting.Street, action betting.Action, amount, pot int)
	StreetAdvanced(handID string, street betting.Street, board []deck.Card, pot int)
	HandFinished(result *HandResult)
}

// NopObserver ignores every event.
type NopObserver struct{}

func (NopObserver) HandStarted(string, []string, int, []int)                            {}
func (NopObserver) ActionApplied(string, int, betting.Street, betting.Action, int, int) {}
func (NopObserver) StreetAdvanced(string, betting.Street, []deck.Card, int)             {}
func (NopObserver) HandFinished(*HandResult)                                            {}

// LogObserver writes every event to a structured logger.
type LogObserver struct {
	logger *log.Logger
}

// NewLogObserver creates an observer that logs hand events.
func NewLogObserver(logger *log.Logger) *LogObserver {
	return &LogObserver{logger: logger.WithPrefix("hand")}
}

func (o *LogObserver) HandStarted(handID string, names []string, button int, stacks []int) {
	o.logger.Info("hand started", "handID", handID, "players", names, "button", button, "stacks", stacks)
}

func (o *LogObserver) ActionApplied(handID string, seat int, street betting.Street, action betting.Action, amount, pot int) {
	o.logger.Info("action", "handID", handID, "seat", seat, "street", street, "action", action, "amount", amount, "pot", pot)
}

func (o *LogObserver) StreetAdvanced(handID string, street betting.Street, board []deck.Card, pot int) {
	o.logger.Info("street", "handID", handID, "street", street, "board", board, "pot", pot)
}

func (o *LogObserver) HandFinished(result *HandResult) {
	o.logger.Info("hand finished",
		"handID", result.HandID,
		"winner", result.WinnerName,
		"pot", result.Pot,
		"showdown", result.Showdown,
		"rank", result.WinningRank)
}

// MultiObserver fans events out to several observers in order.
type MultiObserver []Observer

func (m MultiObserver) HandStarted(handID string, names []string, button int, stacks []int) {
	for _, o := range m {
		o.HandStarted(handID, names, button, stacks)
	}
}

func (m MultiObserver) ActionApplied(handID string, seat int, street betting.Street, action betting.Action, amount, pot int) {
	for _, o := range m {
		o.ActionApplied(handID, seat, street, action, amount, pot)
	}
}

func (m MultiObserver) StreetAdvanced(handID string, street betting.Street, board []deck.Card, pot int) {
	for _, o := range m {
		o.StreetAdvanced(handID, street, board, pot)
	}
}

func (m MultiObserver) HandFinished(result *HandResult) {
	for _, o := range m {
		o.HandFinished(result)
	}
}
