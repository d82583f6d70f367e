//go:build wireinject
// +build wireinject

package main

import (
	"context"

	"github.com/google/wire"
	"github.com/rs/zerolog"

	"github.com/joycehq/joyce/internal/config"
	"github.com/joycehq/joyce/internal/domain/session"
	"github.com/joycehq/joyce/internal/infrastructure/auth"
	"github.com/joycehq/joyce/internal/infrastructure/livekit"
	"github.com/joycehq/joyce/internal/infrastructure/store"
	"github.com/joycehq/joyce/internal/interfaces/httpserver"
)

// ProviderSet is the wire provider set for the application.
var ProviderSet = wire.NewSet(
	// Infrastructure providers
	ProvideTokenMinter,
	ProvideRoomClient,
	ProvideSessionStore,
	ProvideSyncer,
	ProvideAuthValidator,

	// Domain providers
	ProvideSessionService,

	// Interface providers
	httpserver.New,

	// Application
	NewApplication,
)

// ProvideTokenMinter provides a LiveKit token minter.
func ProvideTokenMinter(cfg *config.Config) session.TokenMinter {
	return livekit.NewTokenMinter(cfg)
}

// ProvideRoomClient provides a LiveKit room client.
func ProvideRoomClient(cfg *config.Config) *livekit.RoomClient {
	return livekit.NewRoomClient(cfg)
}

// ProvideSessionStore provides a session store.
func ProvideSessionStore(log zerolog.Logger) session.Store {
	return store.NewMemoryStore(log)
}

// ProvideSyncer provides a session syncer.
func ProvideSyncer(
	sessionStore session.Store,
	roomClient *livekit.RoomClient,
	cfg *config.Config,
	log zerolog.Logger,
) *store.Syncer {
	return store.NewSyncer(sessionStore, roomClient, cfg.SessionStaleTTL, cfg.SessionCleanupInterval, log)
}

// ProvideAuthValidator provides an auth validator.
func ProvideAuthValidator(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*auth.Validator, error) {
	return auth.NewValidator(ctx, cfg, log)
}

// ProvideSessionService provides a session service.
func ProvideSessionService(
	sessionStore session.Store,
	minter session.TokenMinter,
	cfg *config.Config,
	log zerolog.Logger,
) session.Service {
	return session.NewService(
		sessionStore,
		minter,
		cfg.LiveKitURL,
		cfg.LiveKitConfigured(),
		cfg.LiveKitTokenTTL,
		log,
	)
}

// CreateApplication creates the application with all dependencies wired.
func CreateApplication(
	ctx context.Context,
	cfg *config.Config,
	log zerolog.Logger,
) (*Application, *store.Syncer, error) {
	wire.Build(ProviderSet)
	return nil, nil, nil
}
