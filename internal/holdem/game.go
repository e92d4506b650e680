// Package holdem drives complete hands of no-limit hold'em: it owns the
// deal, feeds agent decisions through the betting engine, runs the showdown
// and awards the pot. The betting ledger stays the single source of truth
// for chips; this package only orchestrates.
package holdem

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/nolimit/internal/betting"
	"github.com/lox/nolimit/internal/deck"
	"github.com/lox/nolimit/internal/eval"
	"github.com/lox/nolimit/internal/handid"
)

// GameConfig configures a single hand.
type GameConfig struct {
	Betting betting.Config
	Names   []string
	Agents  []Agent
	Stacks  []int
	Button  int
	Rng     *rand.Rand
	Logger  *log.Logger

	// Observer receives hand events; defaults to NopObserver.
	Observer Observer

	// DecisionTimeout bounds each agent decision; zero means wait forever.
	// The Clock exists so tests can drive timeouts with a mock.
	DecisionTimeout time.Duration
	Clock           quartz.Clock
}

// Game plays one hand.
type Game struct {
	cfg GameConfig
}

// NewGame validates the configuration for a hand. Seat-count bounds are
// enforced by the betting ledger at deal time.
func NewGame(cfg GameConfig) (*Game, error) {
	if len(cfg.Agents) != len(cfg.Stacks) {
		return nil, fmt.Errorf("%d agents for %d stacks", len(cfg.Agents), len(cfg.Stacks))
	}
	if cfg.Rng == nil {
		return nil, errors.New("game requires an rng")
	}
	if cfg.Logger == nil {
		return nil, errors.New("game requires a logger")
	}
	if cfg.Observer == nil {
		cfg.Observer = NopObserver{}
	}
	if cfg.Clock == nil {
		cfg.Clock = quartz.NewReal()
	}
	if len(cfg.Names) == 0 {
		cfg.Names = make([]string, len(cfg.Stacks))
		for i := range cfg.Names {
			cfg.Names[i] = fmt.Sprintf("seat%d", i)
		}
	}
	return &Game{cfg: cfg}, nil
}

// ActionRecord is one applied action in a hand's log.
type ActionRecord struct {
	Seat      int
	Street    betting.Street
	Action    betting.Action
	Amount    int
	Reasoning string
}

// HandResult is the outcome of a completed hand.
type HandResult struct {
	HandID        string
	Names         []string
	Winner        int
	WinnerName    string
	Pot           int
	Showdown      bool
	WinningRank   string
	StreetReached betting.Street
	Board         []deck.Card
	FinalStacks   []int
	Net           []int
	Actions       []ActionRecord
}

// PlayHand runs a complete hand from deal to pot award. The whole pot goes
// to a single winner seat; multi-tier side pots are not modelled.
func (g *Game) PlayHand() (*HandResult, error) {
	cfg := g.cfg
	ledger, err := betting.NewLedger(cfg.Betting, len(cfg.Stacks), cfg.Button, cfg.Stacks)
	if err != nil {
		return nil, err
	}
	engine := betting.NewEngine(ledger)
	startingTotal := ledger.TotalChips()

	d := deck.New(cfg.Rng)
	d.Shuffle()
	holes := make([][]deck.Card, len(cfg.Stacks))
	for seat := range holes {
		holes[seat] = d.DrawN(2)
	}
	var board []deck.Card

	id := handid.Generate()
	cfg.Observer.HandStarted(id, cfg.Names, cfg.Button, append([]int(nil), cfg.Stacks...))

	var actions []ActionRecord
	streetReached := betting.Preflop

	for ledger.Street() != betting.Closed {
		street := ledger.Street()
		streetReached = street
		actor := ledger.ActorSeat()

		if ledger.IsFolded(actor) || ledger.IsAllIn(actor) {
			// Nobody left with chips to act this street; run the board out.
			ledger.NextStreet()
			board = g.dealBoard(ledger, d, board, id)
			continue
		}

		view := GameView{
			View:  ledger.View(),
			Hole:  append([]deck.Card(nil), holes[actor]...),
			Board: append([]deck.Card(nil), board...),
		}
		decision := g.decide(actor, view)

		if err := engine.Apply(decision.Action, decision.Amount); err != nil {
			// An action outside the known set is an agent bug; fold the
			// seat rather than abort the hand.
			cfg.Logger.Error("invalid agent decision", "seat", actor, "action", decision.Action, "err", err)
			decision = Decision{Action: betting.Fold, Reasoning: "invalid decision"}
			if err := engine.Apply(betting.Fold, 0); err != nil {
				return nil, err
			}
		}

		actions = append(actions, ActionRecord{
			Seat:      actor,
			Street:    street,
			Action:    decision.Action,
			Amount:    decision.Amount,
			Reasoning: decision.Reasoning,
		})
		cfg.Observer.ActionApplied(id, actor, street, decision.Action, decision.Amount, ledger.TotalPot())

		if ledger.Street() != street {
			board = g.dealBoard(ledger, d, board, id)
		}
	}

	result := g.settle(ledger, id, holes, board, streetReached, actions)

	total := 0
	for _, s := range result.FinalStacks {
		total += s
	}
	if total != startingTotal {
		return nil, fmt.Errorf("chip conservation violated: started %d, ended %d", startingTotal, total)
	}

	cfg.Observer.HandFinished(result)
	return result, nil
}

// dealBoard brings the board up to the card count for the ledger's current
// street and emits a street event. No-op once betting is closed.
func (g *Game) dealBoard(ledger *betting.Ledger, d *deck.Deck, board []deck.Card, id string) []deck.Card {
	var want int
	switch ledger.Street() {
	case betting.Flop:
		want = 3
	case betting.Turn:
		want = 4
	case betting.River:
		want = 5
	default:
		return board
	}
	if len(board) < want {
		board = append(board, d.DrawN(want-len(board))...)
	}
	g.cfg.Observer.StreetAdvanced(id, ledger.Street(), append([]deck.Card(nil), board...), ledger.Pot())
	return board
}

// settle determines the winner, awards the pot and assembles the result.
func (g *Game) settle(ledger *betting.Ledger, id string, holes [][]deck.Card, board []deck.Card, streetReached betting.Street, actions []ActionRecord) *HandResult {
	winner := -1
	showdown := false
	rank := ""

	var contesting []int
	for seat := 0; seat < ledger.PlayerCount(); seat++ {
		if !ledger.IsFolded(seat) {
			contesting = append(contesting, seat)
		}
	}

	if len(contesting) == 1 {
		winner = contesting[0]
	} else {
		// Showdown: best five-card hand takes the whole pot. Ties go to
		// the lowest seat index.
		showdown = true
		var best eval.RankedHand
		for _, seat := range contesting {
			hand := eval.Rank(append(append([]deck.Card(nil), holes[seat]...), board...))
			if winner == -1 || hand.Compare(best) > 0 {
				winner = seat
				best = hand
			}
		}
		rank = best.Category.String()
	}

	pot := ledger.Pot()
	finalStacks := ledger.Stacks()
	finalStacks[winner] += pot

	net := make([]int, len(finalStacks))
	for seat := range net {
		net[seat] = finalStacks[seat] - g.cfg.Stacks[seat]
	}

	return &HandResult{
		HandID:        id,
		Names:         append([]string(nil), g.cfg.Names...),
		Winner:        winner,
		WinnerName:    g.cfg.Names[winner],
		Pot:           pot,
		Showdown:      showdown,
		WinningRank:   rank,
		StreetReached: streetReached,
		Board:         board,
		FinalStacks:   finalStacks,
		Net:           net,
		Actions:       actions,
	}
}

// decide asks the seat's agent for a decision, folding on timeout.
func (g *Game) decide(seat int, view GameView) Decision {
	agent := g.cfg.Agents[seat]
	if g.cfg.DecisionTimeout <= 0 {
		return agent.Decide(view)
	}

	decisionCh := make(chan Decision, 1)
	go func() { decisionCh <- agent.Decide(view) }()

	timedOut := make(chan struct{})
	timer := g.cfg.Clock.AfterFunc(g.cfg.DecisionTimeout, func() {
		close(timedOut)
	})
	defer timer.Stop()

	select {
	case d := <-decisionCh:
		return d
	case <-timedOut:
		g.cfg.Logger.Warn("decision timed out, folding", "seat", seat, "timeout", g.cfg.DecisionTimeout)
		return Decision{Action: betting.Fold, Reasoning: "decision timeout"}
	}
}
