package livekit

import (
	"time"

	"github.com/livekit/protocol/auth"

	"github.com/joycehq/joyce/internal/config"
)

// TokenMinter mints LiveKit access tokens for room participants.
type TokenMinter struct {
	apiKey    string
	apiSecret string
}

// NewTokenMinter creates a new token minter.
func NewTokenMinter(cfg *config.Config) *TokenMinter {
	return &TokenMinter{
		apiKey:    cfg.LiveKitAPIKey,
		apiSecret: cfg.LiveKitAPISecret,
	}
}

// Mint creates an access token letting identity join room and publish
// audio/video/data, matching what the voice assistant session needs.
func (m *TokenMinter) Mint(room, identity string, ttl time.Duration) (string, error) {
	at := auth.NewAccessToken(m.apiKey, m.apiSecret)

	canPublish := true
	canSubscribe := true
	canPublishData := true

	grant := &auth.VideoGrant{
		RoomJoin:       true,
		Room:           room,
		CanPublish:     &canPublish,
		CanSubscribe:   &canSubscribe,
		CanPublishData: &canPublishData,
	}

	at.AddGrant(grant).
		SetIdentity(identity).
		SetName(identity).
		SetValidFor(ttl)

	return at.ToJWT()
}
