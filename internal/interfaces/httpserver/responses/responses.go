// Package responses contains HTTP response DTOs for the token server.
package responses

import (
	domainsession "github.com/joycehq/joyce/internal/domain/session"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error *ErrorDetail `json:"error"`
}

// ErrorDetail contains error details.
type ErrorDetail struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

// TokenResponse is the body returned by the token endpoint. Field names are
// the ones the mobile client decodes.
type TokenResponse struct {
	ServerURL        string `json:"serverUrl"`
	ParticipantToken string `json:"participantToken"`
	RoomName         string `json:"roomName"`
}

// NewTokenResponse creates a TokenResponse from a domain Grant.
func NewTokenResponse(grant *domainsession.Grant) *TokenResponse {
	return &TokenResponse{
		ServerURL:        grant.ServerURL,
		ParticipantToken: grant.ParticipantToken,
		RoomName:         grant.RoomName,
	}
}

// HealthResponse is the body returned by the health endpoint.
type HealthResponse struct {
	Status   string        `json:"status"`
	LiveKit  LiveKitHealth `json:"livekit"`
	Sessions SessionHealth `json:"sessions"`
}

// LiveKitHealth reports LiveKit configuration state.
type LiveKitHealth struct {
	Configured bool   `json:"configured"`
	URL        string `json:"url"`
}

// SessionHealth reports tracked session counts.
type SessionHealth struct {
	Active int `json:"active"`
}

// BannerResponse is the body returned by the service root.
type BannerResponse struct {
	Message           string `json:"message"`
	Version           string `json:"version"`
	LiveKitConfigured bool   `json:"livekit_configured"`
}
