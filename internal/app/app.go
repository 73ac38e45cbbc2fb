package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/coachboard/coachboard/internal/config"
	"github.com/coachboard/coachboard/internal/domain/gameday"
	"github.com/coachboard/coachboard/internal/infrastructure/gateway/httpgateway"
	"github.com/coachboard/coachboard/internal/infrastructure/gateway/memory"
	"github.com/coachboard/coachboard/internal/infrastructure/live"
	"github.com/coachboard/coachboard/internal/interfaces/httpapi"
	"github.com/coachboard/coachboard/internal/platform/logging"
	"github.com/coachboard/coachboard/internal/platform/resilience"
	"github.com/coachboard/coachboard/internal/usecase"
	"github.com/sourcegraph/conc"
)

const shutdownTimeout = 10 * time.Second

// App is one game-day session with its loopback API and live-update feed.
type App struct {
	logger     *logging.Logger
	session    *usecase.GamedaySession
	server     *http.Server
	subscriber *live.Subscriber
	memory     *memory.Gateway
}

// New builds the gateway, loads the game snapshot and wires the session.
func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	a := &App{logger: logger.Named("app")}

	var gateway gameday.Gateway
	switch cfg.GatewayMode {
	case config.GatewayMemory:
		a.memory = memory.NewGateway(memory.SeedGames(time.Now()))
		gateway = a.memory
	default:
		client, err := httpgateway.NewClient(httpgateway.ClientConfig{
			BaseURL:       cfg.BaseURL,
			SessionCookie: cfg.SessionCookie,
			Timeout:       cfg.GatewayTimeout,
			Logger:        logger,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.GatewayCircuitEnabled,
				FailureThreshold: cfg.GatewayCircuitFailureCount,
				OpenTimeout:      cfg.GatewayCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.GatewayCircuitHalfOpenMaxReq,
			},
		})
		if err != nil {
			return nil, fmt.Errorf("build team server client: %w", err)
		}
		gateway = client
	}

	snapshot, err := gateway.LoadSnapshot(ctx, cfg.GameID)
	if err != nil {
		return nil, fmt.Errorf("load game %d: %w", cfg.GameID, err)
	}

	session, err := usecase.NewGamedaySession(snapshot, gateway, logger)
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	a.session = session

	if cfg.LiveEnabled {
		sub, err := live.NewSubscriber(live.Config{
			URL:            cfg.LiveURL,
			SessionCookie:  cfg.SessionCookie,
			ReconnectDelay: cfg.LiveReconnectDelay,
			Logger:         logger,
		}, func(ctx context.Context, _ live.Message) error {
			return session.Reload(ctx)
		})
		if err != nil {
			return nil, fmt.Errorf("build live subscriber: %w", err)
		}
		a.subscriber = sub
	}

	handler := httpapi.NewHandler(session, logger)
	a.server = &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if a.server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	a.logger.Info("session ready",
		"session_id", session.ID(),
		"game_id", cfg.GameID,
		"gateway", cfg.GatewayMode,
		"live_enabled", cfg.LiveEnabled,
	)
	return a, nil
}

func (a *App) Session() *usecase.GamedaySession {
	return a.session
}

func (a *App) Handler() http.Handler {
	return a.server.Handler
}

// Run serves the loopback API and follows live updates until ctx ends.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	serveErr := make(chan error, 1)
	var wg conc.WaitGroup

	wg.Go(func() {
		a.logger.Info("http server starting", "addr", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
			cancel()
		}
	})
	wg.Go(func() {
		<-ctx.Done()
		shutdownCtx, stop := context.WithTimeout(context.Background(), shutdownTimeout)
		defer stop()
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			a.logger.Error("graceful shutdown failed", "error", err)
		}
	})
	if a.subscriber != nil {
		wg.Go(func() {
			_ = a.subscriber.Run(ctx)
		})
	}
	if a.memory != nil {
		wg.Go(func() {
			a.followMemory(ctx)
		})
	}

	wg.Wait()
	a.logger.Info("http server stopped")

	select {
	case err := <-serveErr:
		return fmt.Errorf("http server: %w", err)
	default:
		return nil
	}
}

// followMemory reloads the session after every save to the in-process
// server, the way a live-update feed would.
func (a *App) followMemory(ctx context.Context) {
	updates := make(chan struct{}, 1)
	a.memory.Subscribe(func(string) {
		select {
		case updates <- struct{}{}:
		default:
		}
	})

	for {
		select {
		case <-ctx.Done():
			return
		case <-updates:
			if err := a.session.Reload(ctx); err != nil {
				a.logger.WarnContext(ctx, "reload after local save failed", "error", err)
			}
		}
	}
}
