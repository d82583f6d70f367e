package handlers

import (
	"github.com/google/wire"

	"github.com/joycehq/joyce/internal/domain/session"
)

// Provider holds all HTTP handlers.
type Provider struct {
	Token *TokenHandler
}

// NewProvider creates a new handler provider.
func NewProvider(sessionService session.Service) *Provider {
	return &Provider{
		Token: NewTokenHandler(sessionService),
	}
}

// HandlerProvider provides all handlers for wire.
var HandlerProvider = wire.NewSet(
	NewTokenHandler,
	NewProvider,
)
