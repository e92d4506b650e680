package holdem

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/nolimit/internal/betting"
	"github.com/lox/nolimit/internal/randutil"
)

// Player is one participant in a session: a named agent with a chip count
// carried from hand to hand.
type Player struct {
	Name  string
	Agent Agent
	Chips int
}

// SessionConfig configures a multi-hand session.
type SessionConfig struct {
	Betting betting.Config
	Players []Player
	Hands   int
	Seed    int64
	Logger  *log.Logger

	Observer        Observer
	DecisionTimeout time.Duration
	Clock           quartz.Clock
}

// Session plays a sequence of hands, rotating the button, carrying stacks
// between hands and dropping busted players. Each hand gets a fresh ledger
// and a deterministic per-hand rng derived from the session seed.
type Session struct {
	cfg     SessionConfig
	players []Player
	button  int
}

// NewSession validates and builds a session.
func NewSession(cfg SessionConfig) (*Session, error) {
	if len(cfg.Players) < 2 || len(cfg.Players) > 6 {
		return nil, fmt.Errorf("sessions take 2..6 players, got %d", len(cfg.Players))
	}
	if cfg.Hands <= 0 {
		return nil, fmt.Errorf("session needs a positive hand count, got %d", cfg.Hands)
	}
	if cfg.Logger == nil {
		return nil, fmt.Errorf("session requires a logger")
	}
	if cfg.Observer == nil {
		cfg.Observer = NopObserver{}
	}
	players := append([]Player(nil), cfg.Players...)
	return &Session{cfg: cfg, players: players}, nil
}

// Players returns the current players with their chip counts.
func (s *Session) Players() []Player {
	return append([]Player(nil), s.players...)
}

// Run plays up to the configured number of hands, stopping early when fewer
// than two players still have chips or the context is cancelled. Results for
// hands completed before cancellation are returned alongside the context
// error.
func (s *Session) Run(ctx context.Context) ([]*HandResult, error) {
	results := make([]*HandResult, 0, s.cfg.Hands)

	for hand := 0; hand < s.cfg.Hands; hand++ {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		funded := s.fundedIndexes()
		if len(funded) < 2 {
			s.cfg.Logger.Debug("session over, one player holds all chips", "hands", hand)
			break
		}

		names := make([]string, len(funded))
		agents := make([]Agent, len(funded))
		stacks := make([]int, len(funded))
		for seat, idx := range funded {
			names[seat] = s.players[idx].Name
			agents[seat] = s.players[idx].Agent
			stacks[seat] = s.players[idx].Chips
		}

		game, err := NewGame(GameConfig{
			Betting:         s.cfg.Betting,
			Names:           names,
			Agents:          agents,
			Stacks:          stacks,
			Button:          s.button % len(funded),
			Rng:             randutil.ForHand(s.cfg.Seed, hand),
			Logger:          s.cfg.Logger,
			Observer:        s.cfg.Observer,
			DecisionTimeout: s.cfg.DecisionTimeout,
			Clock:           s.cfg.Clock,
		})
		if err != nil {
			return results, err
		}

		result, err := game.PlayHand()
		if err != nil {
			return results, fmt.Errorf("hand %d: %w", hand, err)
		}
		results = append(results, result)

		for seat, idx := range funded {
			s.players[idx].Chips = result.FinalStacks[seat]
		}
		s.button++
	}

	return results, nil
}

func (s *Session) fundedIndexes() []int {
	var funded []int
	for i, p := range s.players {
		if p.Chips > 0 {
			funded = append(funded, i)
		}
	}
	return funded
}
