package betting

import "errors"

var (
	// ErrInvalidConfiguration is returned by NewLedger for bad constructor
	// arguments: player count outside 2..6 or a stacks slice of the wrong
	// length.
	ErrInvalidConfiguration = errors.New("invalid betting configuration")

	// ErrUnsupportedAction is returned by Engine.Apply when an action value
	// outside the known set reaches the engine. This is a programming error
	// in the driver, not a player mistake.
	ErrUnsupportedAction = errors.New("unsupported action")

	// ErrBettingClosed is returned by Engine.Apply once the hand's betting
	// has closed. The ledger is never mutated after closure.
	ErrBettingClosed = errors.New("betting already closed")
)
