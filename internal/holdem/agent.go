package holdem

import (
	"github.com/lox/nolimit/internal/betting"
	"github.com/lox/nolimit/internal/deck"
)

// GameView is the immutable snapshot an agent decides from: the betting
// ledger's view plus the cards the acting seat is entitled to see.
type GameView struct {
	betting.View
	Hole  []deck.Card
	Board []deck.Card
}

// Decision is an agent's chosen action. Amount is the requested total
// this-street commitment for bets and raises and is ignored otherwise.
type Decision struct {
	Action    betting.Action
	Amount    int
	Reasoning string
}

// Agent decides actions for a seat. Agents receive immutable state and
// return decisions; they never mutate game state.
type Agent interface {
	Decide(view GameView) Decision
}
