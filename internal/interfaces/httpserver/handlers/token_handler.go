package handlers

import (
	"context"

	"github.com/joycehq/joyce/internal/domain/session"
)

// TokenHandler handles token and session related HTTP requests.
type TokenHandler struct {
	service session.Service
}

// NewTokenHandler creates a new token handler.
func NewTokenHandler(service session.Service) *TokenHandler {
	return &TokenHandler{service: service}
}

// IssueToken mints a participant token for joining a room.
func (h *TokenHandler) IssueToken(ctx context.Context, req *session.IssueTokenRequest) (*session.Grant, error) {
	return h.service.IssueToken(ctx, req)
}

// ActiveSessions returns all currently tracked sessions.
func (h *TokenHandler) ActiveSessions(ctx context.Context) ([]*session.Session, error) {
	return h.service.ActiveSessions(ctx)
}
