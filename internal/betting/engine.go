package betting

import "fmt"

// Engine interprets player actions against a Ledger. It holds no state of
// its own: every Apply call reads the acting seat from the ledger, mutates
// the ledger, and either rotates the actor or transitions the street.
type Engine struct {
	ledger *Ledger
}

// NewEngine wraps a ledger for the duration of a hand.
func NewEngine(ledger *Ledger) *Engine {
	return &Engine{ledger: ledger}
}

// Ledger returns the ledger the engine mutates.
func (e *Engine) Ledger() *Ledger { return e.ledger }

// Apply performs one action for the current actor. amount is the requested
// total this-street commitment for Bet and Raise and is ignored otherwise.
// Chip arithmetic is clamped to the actor's stack, so an oversized bet or
// call naturally becomes an all-in. Once betting is closed Apply mutates
// nothing and reports ErrBettingClosed.
func (e *Engine) Apply(action Action, amount int) error {
	l := e.ledger
	if l.Street() == Closed {
		return ErrBettingClosed
	}
	actor := l.ActorSeat()

	switch action {
	case Fold:
		l.MarkFold(actor)
		if l.ContestingCount() <= 1 {
			// Hand is over; nobody else gets to act.
			l.close()
		} else {
			l.RotateActor()
		}

	case Check:
		e.closeOrRotate(actor)

	case Call:
		l.Commit(actor, l.ToCall(actor))
		e.closeOrRotate(actor)

	case Bet:
		currentMax := l.MaxCommitted()
		target := max(amount, currentMax+l.LastRaiseIncrement())
		l.Commit(actor, target-l.CommittedFor(actor))
		l.setLastRaise(target - currentMax)
		l.SetRoundStartToNextOf(actor)
		l.RotateActor()

	case Raise:
		currentMax := l.MaxCommitted()
		minTarget := currentMax + max(l.LastRaiseIncrement(), l.Config().minRaise())
		if amount < minTarget {
			// Under-sized raise degrades to a call; the round keeps going.
			l.Commit(actor, l.ToCall(actor))
			l.RotateActor()
			break
		}
		l.Commit(actor, amount-l.CommittedFor(actor))
		l.setLastRaise(amount - currentMax)
		l.SetRoundStartToNextOf(actor)
		l.RotateActor()

	case AllIn:
		pushed := l.StackOf(actor)
		l.Commit(actor, pushed)
		// A short all-in can leave this below the table's true minimum
		// raise; that is the reference behaviour and is kept as-is.
		l.setLastRaise(max(l.LastRaiseIncrement(), pushed))
		l.SetRoundStartToNextOf(actor)
		l.RotateActor()

	default:
		return fmt.Errorf("%w: %d", ErrUnsupportedAction, int(action))
	}
	return nil
}

// closeOrRotate runs the round-closure test after a passive action (check or
// call) and either transitions the street or hands the turn to the next
// seat.
func (e *Engine) closeOrRotate(actor int) {
	if e.roundClosedAfter(actor) {
		e.ledger.NextStreet()
	} else {
		e.ledger.RotateActor()
	}
}

// roundClosedAfter reports whether the street's betting is finished once the
// given seat has acted: the rotation from the seat after the actor must run
// into the round-start marker without passing any contesting seat, and every
// contesting seat must have matched the current bet.
func (e *Engine) roundClosedAfter(actor int) bool {
	l := e.ledger

	for seat := l.nextSeat(actor); seat != l.RoundStartSeat(); seat = l.nextSeat(seat) {
		if !l.IsFolded(seat) && !l.IsAllIn(seat) {
			return false
		}
	}

	for seat := 0; seat < l.PlayerCount(); seat++ {
		if l.IsFolded(seat) || l.IsAllIn(seat) {
			continue
		}
		if l.ToCall(seat) > 0 {
			return false
		}
	}
	return true
}
