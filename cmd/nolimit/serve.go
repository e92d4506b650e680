package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/nolimit/internal/config"
	"github.com/lox/nolimit/internal/holdem"
	"github.com/lox/nolimit/internal/stream"
)

// ServeCmd plays sessions back to back and streams every hand event to
// websocket subscribers on /ws.
type ServeCmd struct {
	Addr  string        `default:":8080" help:"Listen address"`
	Seed  int64         `help:"RNG seed (0 for time-based)"`
	Delay time.Duration `default:"1s" help:"Pause between hands so streams are watchable"`
}

func (c *ServeCmd) Run(cli *CLI) error {
	logger := setupLogger(cli.Debug)

	cfg, err := config.Load(cli.Config)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	broadcaster := stream.NewBroadcaster(logger)
	defer broadcaster.Close()

	mux := http.NewServeMux()
	mux.Handle("/ws", broadcaster)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	server := &http.Server{Addr: c.Addr, Handler: mux}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	go func() {
		logger.Info("listening", "addr", c.Addr, "path", "/ws")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", "err", err)
			cancel()
		}
	}()

	go c.playSessions(ctx, cfg, broadcaster, logger)

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	return server.Shutdown(shutdownCtx)
}

// playSessions runs sessions in a loop until the context is cancelled,
// restacking every seat at the start of each session.
func (c *ServeCmd) playSessions(ctx context.Context, cfg *config.File, broadcaster *stream.Broadcaster, logger *log.Logger) {
	seed := resolveSeed(c.Seed)
	for session := 0; ctx.Err() == nil; session++ {
		players, err := buildPlayers(cfg, seed+int64(session), logger)
		if err != nil {
			logger.Error("building players failed", "err", err)
			return
		}

		observer := holdem.MultiObserver{
			broadcaster,
			newPacingObserver(ctx, c.Delay),
		}
		s, err := holdem.NewSession(holdem.SessionConfig{
			Betting:  cfg.BettingConfig(),
			Players:  players,
			Hands:    cfg.Game.Hands,
			Seed:     seed + int64(session),
			Logger:   logger,
			Observer: observer,
		})
		if err != nil {
			logger.Error("building session failed", "err", err)
			return
		}

		logger.Info("starting session", "session", session, "hands", cfg.Game.Hands)
		if _, err := s.Run(ctx); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			logger.Error("session failed", "session", session, "err", err)
			return
		}
	}
}

// pacingObserver sleeps after each hand so subscribers can follow along.
type pacingObserver struct {
	holdem.NopObserver
	ctx   context.Context
	delay time.Duration
}

func newPacingObserver(ctx context.Context, delay time.Duration) *pacingObserver {
	return &pacingObserver{ctx: ctx, delay: delay}
}

func (p *pacingObserver) HandFinished(*holdem.HandResult) {
	if p.delay <= 0 {
		return
	}
	select {
	case <-time.After(p.delay):
	case <-p.ctx.Done():
	}
}
