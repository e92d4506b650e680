// Package betting implements the no-limit betting-round state machine: a
// per-hand Ledger of stacks, street commitments and fold/all-in flags, and a
// stateless Engine that interprets player actions into ledger mutations, turn
// rotation and street transitions.
package betting

import "fmt"

// Street represents a betting phase of the hand. Streets advance in a fixed
// order and never go backwards; Closed is terminal.
type Street int

const (
	Preflop Street = iota
	Flop
	Turn
	River
	Closed
)

func (s Street) String() string {
	names := [...]string{"preflop", "flop", "turn", "river", "closed"}
	if s < 0 || int(s) >= len(names) {
		return fmt.Sprintf("street(%d)", int(s))
	}
	return names[s]
}

// next returns the street that follows s. River closes out the hand.
func (s Street) next() Street {
	if s >= River {
		return Closed
	}
	return s + 1
}

// Action represents a player action
type Action int

const (
	Fold Action = iota
	Check
	Call
	Bet
	Raise
	AllIn
)

func (a Action) String() string {
	names := [...]string{"fold", "check", "call", "bet", "raise", "allin"}
	if a < 0 || int(a) >= len(names) {
		return fmt.Sprintf("action(%d)", int(a))
	}
	return names[a]
}
