package betting

import "fmt"

// Ledger is the mutable per-hand record of the betting round: remaining
// stacks, current-street commitments, fold/all-in flags, the pot, the street
// and whose turn it is. It is constructed once per hand (posting the blinds
// in the process), mutated only by the Engine, and discarded when the hand
// ends.
//
// Chips committed during a street live in committedThisStreet until the
// street transition sweeps them into the pot, so at every point
//
//	sum(stacks) + pot + sum(committedThisStreet)
//
// equals the chips the hand started with.
type Ledger struct {
	cfg         Config
	playerCount int
	buttonSeat  int
	stacks      []int
	committed   []int
	folded      []bool
	allIn       []bool
	pot         int
	street      Street
	actorSeat   int
	roundStart  int
	lastRaise   int
}

// NewLedger builds the ledger for a fresh hand and posts the blinds: the
// small blind from the seat after the button, the big blind from the seat
// after that, each capped at the poster's stack (a short poster goes all-in
// for what they have). The first actor is the seat after the big blind.
func NewLedger(cfg Config, playerCount, buttonSeat int, stacks []int) (*Ledger, error) {
	if playerCount < 2 || playerCount > 6 {
		return nil, fmt.Errorf("%w: player count must be 2..6, got %d", ErrInvalidConfiguration, playerCount)
	}
	if len(stacks) != playerCount {
		return nil, fmt.Errorf("%w: %d stacks for %d players", ErrInvalidConfiguration, len(stacks), playerCount)
	}
	if buttonSeat < 0 || buttonSeat >= playerCount {
		return nil, fmt.Errorf("%w: button seat %d out of range", ErrInvalidConfiguration, buttonSeat)
	}

	l := &Ledger{
		cfg:         cfg,
		playerCount: playerCount,
		buttonSeat:  buttonSeat,
		stacks:      append([]int(nil), stacks...),
		committed:   make([]int, playerCount),
		folded:      make([]bool, playerCount),
		allIn:       make([]bool, playerCount),
		street:      Preflop,
	}

	l.Commit(l.smallBlindSeat(), cfg.SmallBlind)
	l.Commit(l.bigBlindSeat(), cfg.BigBlind)
	l.actorSeat = l.nextSeat(l.bigBlindSeat())
	l.skipIneligible()
	l.roundStart = l.actorSeat
	l.lastRaise = cfg.BigBlind
	return l, nil
}

func (l *Ledger) nextSeat(seat int) int {
	return (seat + 1) % l.playerCount
}

func (l *Ledger) smallBlindSeat() int { return l.nextSeat(l.buttonSeat) }
func (l *Ledger) bigBlindSeat() int   { return l.nextSeat(l.smallBlindSeat()) }

// checkSeat guards every seat-indexed entry point. An out-of-range seat is a
// programming error in the driver, never a recoverable condition.
func (l *Ledger) checkSeat(seat int) {
	if seat < 0 || seat >= l.playerCount {
		panic(fmt.Sprintf("betting: seat index %d out of range [0,%d)", seat, l.playerCount))
	}
}

// Commit moves min(amount, stack) chips from the seat's stack into its
// current-street commitment, marking the seat all-in when the stack hits
// zero. A non-positive amount is a no-op.
func (l *Ledger) Commit(seat, amount int) {
	l.checkSeat(seat)
	if amount <= 0 {
		return
	}
	pay := min(amount, l.stacks[seat])
	l.stacks[seat] -= pay
	l.committed[seat] += pay
	if l.stacks[seat] == 0 {
		l.allIn[seat] = true
	}
}

// MarkFold folds the seat out of the hand.
func (l *Ledger) MarkFold(seat int) {
	l.checkSeat(seat)
	l.folded[seat] = true
}

// ToCall returns how many chips the seat must commit to match the table's
// current maximum commitment.
func (l *Ledger) ToCall(seat int) int {
	l.checkSeat(seat)
	return max(0, l.MaxCommitted()-l.committed[seat])
}

// MaxCommitted returns the highest current-street commitment at the table.
func (l *Ledger) MaxCommitted() int {
	m := 0
	for _, c := range l.committed {
		m = max(m, c)
	}
	return m
}

// LegalActions returns the actions the seat may take. Folded seats have
// none. Raising (and moving all-in over a bet) is shut off once any
// contesting seat is all-in.
func (l *Ledger) LegalActions(seat int) []Action {
	l.checkSeat(seat)
	if l.folded[seat] {
		return nil
	}
	actions := []Action{Fold}
	if l.ToCall(seat) == 0 {
		actions = append(actions, Check, Bet)
		return actions
	}
	actions = append(actions, Call)
	if !l.hasAllInContender() {
		actions = append(actions, Raise, AllIn)
	}
	return actions
}

// hasAllInContender reports whether any non-folded seat is already all-in.
func (l *Ledger) hasAllInContender() bool {
	for i := 0; i < l.playerCount; i++ {
		if !l.folded[i] && (l.allIn[i] || l.stacks[i] == 0) {
			return true
		}
	}
	return false
}

// RotateActor advances the actor to the next seat, skipping seats that are
// folded or all-in. The scan is bounded by the table size so a fully
// ineligible table cannot spin.
func (l *Ledger) RotateActor() {
	l.actorSeat = l.nextSeat(l.actorSeat)
	l.skipIneligible()
}

func (l *Ledger) skipIneligible() {
	for tries := 0; tries < l.playerCount && (l.folded[l.actorSeat] || l.allIn[l.actorSeat]); tries++ {
		l.actorSeat = l.nextSeat(l.actorSeat)
	}
}

// SetRoundStartToNextOf re-anchors the round-start marker at the first
// eligible seat after the given one. Called on every bet or raise: the
// rotation must come back around to this seat with no further aggression
// before the street can close.
func (l *Ledger) SetRoundStartToNextOf(seat int) {
	l.checkSeat(seat)
	idx := l.nextSeat(seat)
	for tries := 0; tries < l.playerCount && (l.folded[idx] || l.allIn[idx]); tries++ {
		idx = l.nextSeat(idx)
	}
	l.roundStart = idx
}

// NextStreet sweeps all current-street commitments into the pot and advances
// to the next street. Unless the hand is now closed, the actor and round
// start reset to the first eligible seat after the previous actor and the
// minimum raise increment is cleared for the street's first bet to set.
func (l *Ledger) NextStreet() {
	l.sweepCommitted()
	l.street = l.street.next()
	if l.street == Closed {
		return
	}
	l.SetRoundStartToNextOf(l.actorSeat)
	l.actorSeat = l.roundStart
	l.lastRaise = 0
}

// close ends the hand's betting immediately, sweeping outstanding
// commitments into the pot. Used when a fold leaves a single contester.
func (l *Ledger) close() {
	l.sweepCommitted()
	l.street = Closed
}

func (l *Ledger) sweepCommitted() {
	for i := range l.committed {
		l.pot += l.committed[i]
		l.committed[i] = 0
	}
}

func (l *Ledger) setLastRaise(size int) {
	l.lastRaise = max(0, size)
}

// ContestingCount returns the number of seats still contesting the pot
// (not folded; all-in seats still contest).
func (l *Ledger) ContestingCount() int {
	n := 0
	for _, f := range l.folded {
		if !f {
			n++
		}
	}
	return n
}

// TotalChips returns every chip the ledger tracks: stacks, pot and
// outstanding commitments. Constant for the life of a hand.
func (l *Ledger) TotalChips() int {
	total := l.pot
	for i := 0; i < l.playerCount; i++ {
		total += l.stacks[i] + l.committed[i]
	}
	return total
}

// Pot returns the chips already swept into the pot on completed streets.
func (l *Ledger) Pot() int { return l.pot }

// TotalPot returns the pot plus all outstanding current-street commitments:
// the amount the winner will collect if no more chips go in.
func (l *Ledger) TotalPot() int {
	total := l.pot
	for _, c := range l.committed {
		total += c
	}
	return total
}

func (l *Ledger) Street() Street          { return l.street }
func (l *Ledger) PlayerCount() int        { return l.playerCount }
func (l *Ledger) ButtonSeat() int         { return l.buttonSeat }
func (l *Ledger) ActorSeat() int          { return l.actorSeat }
func (l *Ledger) RoundStartSeat() int     { return l.roundStart }
func (l *Ledger) LastRaiseIncrement() int { return l.lastRaise }
func (l *Ledger) Config() Config          { return l.cfg }

// StackOf returns the seat's remaining chips.
func (l *Ledger) StackOf(seat int) int {
	l.checkSeat(seat)
	return l.stacks[seat]
}

// CommittedFor returns the seat's current-street commitment.
func (l *Ledger) CommittedFor(seat int) int {
	l.checkSeat(seat)
	return l.committed[seat]
}

// IsFolded reports whether the seat has folded.
func (l *Ledger) IsFolded(seat int) bool {
	l.checkSeat(seat)
	return l.folded[seat]
}

// IsAllIn reports whether the seat is all-in.
func (l *Ledger) IsAllIn(seat int) bool {
	l.checkSeat(seat)
	return l.allIn[seat]
}

// Stacks returns a copy of all remaining stacks.
func (l *Ledger) Stacks() []int { return append([]int(nil), l.stacks...) }

// Committed returns a copy of all current-street commitments.
func (l *Ledger) Committed() []int { return append([]int(nil), l.committed...) }

// Folded returns a copy of the fold flags.
func (l *Ledger) Folded() []bool { return append([]bool(nil), l.folded...) }

// AllIn returns a copy of the all-in flags.
func (l *Ledger) AllIn() []bool { return append([]bool(nil), l.allIn...) }
