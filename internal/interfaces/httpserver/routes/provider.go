package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/joycehq/joyce/internal/config"
	"github.com/joycehq/joyce/internal/infrastructure/auth"
	"github.com/joycehq/joyce/internal/interfaces/httpserver/handlers"
	"github.com/joycehq/joyce/internal/interfaces/httpserver/routes/api"
)

// Provider holds all route providers.
type Provider struct {
	API           *api.Routes
	authValidator *auth.Validator
}

// NewProvider creates a new route provider.
func NewProvider(cfg *config.Config, handlerProvider *handlers.Provider, authValidator *auth.Validator) *Provider {
	return &Provider{
		API:           api.NewRoutes(cfg, handlerProvider),
		authValidator: authValidator,
	}
}

// Register registers all routes on the engine.
func (p *Provider) Register(engine *gin.Engine) {
	if p.authValidator != nil {
		p.API.Register(engine, p.authValidator.Middleware())
	} else {
		p.API.Register(engine, nil)
	}
}
