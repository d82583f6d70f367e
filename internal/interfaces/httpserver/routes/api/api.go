package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joycehq/joyce/internal/config"
	domainsession "github.com/joycehq/joyce/internal/domain/session"
	"github.com/joycehq/joyce/internal/interfaces/httpserver/handlers"
	"github.com/joycehq/joyce/internal/interfaces/httpserver/requests"
	"github.com/joycehq/joyce/internal/interfaces/httpserver/responses"
)

// Routes holds the /api route configuration.
type Routes struct {
	cfg      *config.Config
	handlers *handlers.Provider
}

// NewRoutes creates a new /api routes instance.
func NewRoutes(cfg *config.Config, handlerProvider *handlers.Provider) *Routes {
	return &Routes{
		cfg:      cfg,
		handlers: handlerProvider,
	}
}

// Register registers the /api routes on the engine. The health endpoint stays
// public; the token endpoint is gated by authMiddleware when provided.
func (r *Routes) Register(engine *gin.Engine, authMiddleware gin.HandlerFunc) {
	group := engine.Group("/api")
	group.GET("/health", r.health)
	if authMiddleware != nil {
		group.POST("/token", authMiddleware, r.issueToken)
	} else {
		group.POST("/token", r.issueToken)
	}
}

// issueToken godoc
// @Summary      Mint a participant token
// @Description  Creates a LiveKit access token for joining a room.
// @Tags         Token API
// @Accept       json
// @Produce      json
// @Param        request body requests.TokenRequest true "Room and participant"
// @Success      200 {object} responses.TokenResponse
// @Failure      400 {object} responses.ErrorResponse
// @Failure      500 {object} responses.ErrorResponse
// @Router       /api/token [post]
func (r *Routes) issueToken(c *gin.Context) {
	var req requests.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleValidationError(c, "room_name and participant_name are required")
		return
	}

	grant, err := r.handlers.Token.IssueToken(c.Request.Context(), &domainsession.IssueTokenRequest{
		RoomName:        req.RoomName,
		ParticipantName: req.ParticipantName,
	})
	if err != nil {
		responses.HandleError(c, err, "failed to mint token")
		return
	}

	c.JSON(http.StatusOK, responses.NewTokenResponse(grant))
}

// health godoc
// @Summary      Detailed health check
// @Description  Reports LiveKit configuration and tracked session counts.
// @Tags         Token API
// @Produce      json
// @Success      200 {object} responses.HealthResponse
// @Router       /api/health [get]
func (r *Routes) health(c *gin.Context) {
	active := 0
	if sessions, err := r.handlers.Token.ActiveSessions(c.Request.Context()); err == nil {
		active = len(sessions)
	}

	c.JSON(http.StatusOK, responses.HealthResponse{
		Status: "healthy",
		LiveKit: responses.LiveKitHealth{
			Configured: r.cfg.LiveKitConfigured(),
			URL:        r.cfg.LiveKitURL,
		},
		Sessions: responses.SessionHealth{
			Active: active,
		},
	})
}
