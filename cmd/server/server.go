// @title           Joyce Token Service
// @version         1.0
// @description     Token-issuing service for the Joyce voice assistant.
// @description     Mints LiveKit participant tokens consumed by the mobile client.

// @host      localhost:3000
// @BasePath  /

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/joycehq/joyce/internal/config"
	"github.com/joycehq/joyce/internal/domain/session"
	"github.com/joycehq/joyce/internal/infrastructure/auth"
	"github.com/joycehq/joyce/internal/infrastructure/livekit"
	"github.com/joycehq/joyce/internal/infrastructure/logger"
	"github.com/joycehq/joyce/internal/infrastructure/observability"
	"github.com/joycehq/joyce/internal/infrastructure/store"
	"github.com/joycehq/joyce/internal/interfaces/httpserver"
)

// Application holds the main application components.
type Application struct {
	httpServer *httpserver.HTTPServer
	syncer     *store.Syncer
	log        zerolog.Logger
}

// NewApplication creates a new application instance.
func NewApplication(httpServer *httpserver.HTTPServer, syncer *store.Syncer, log zerolog.Logger) *Application {
	return &Application{
		httpServer: httpServer,
		syncer:     syncer,
		log:        log,
	}
}

// Start runs the application.
func (a *Application) Start(ctx context.Context) error {
	// Start the session syncer
	a.syncer.Start(ctx)

	// Run HTTP server (blocks until context cancelled)
	err := a.httpServer.Run(ctx)

	a.syncer.Stop()

	return err
}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Setup observability
	shutdownTelemetry, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize observability")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("failed to shutdown telemetry")
		}
	}()

	// Initialize auth validator (pass-through unless AUTH_ENABLED)
	authValidator, err := auth.NewValidator(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize auth validator")
	}

	// Initialize LiveKit clients
	tokenMinter := livekit.NewTokenMinter(cfg)
	roomClient := livekit.NewRoomClient(cfg)

	// Initialize session store and syncer
	sessionStore := store.NewMemoryStore(log)
	syncer := store.NewSyncer(sessionStore, roomClient, cfg.SessionStaleTTL, cfg.SessionCleanupInterval, log)

	// Initialize session service
	sessionService := session.NewService(
		sessionStore,
		tokenMinter,
		cfg.LiveKitURL,
		cfg.LiveKitConfigured(),
		cfg.LiveKitTokenTTL,
		log,
	)

	// Initialize HTTP server
	httpServer := httpserver.New(cfg, log, sessionService, authValidator)

	app := NewApplication(httpServer, syncer, log)

	log.Info().
		Str("service", cfg.ServiceName).
		Int("port", cfg.HTTPPort).
		Str("environment", cfg.Environment).
		Str("livekit_url", cfg.LiveKitURL).
		Bool("livekit_configured", cfg.LiveKitConfigured()).
		Msg("starting application")

	if err := app.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("application stopped with error")
	}

	log.Info().Msg("application exited cleanly")
}

func loadEnvFiles() {
	paths := []string{".env", "../.env", "../../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
