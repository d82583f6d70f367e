// Package bootstrap acquires the url/token pair a client needs to join a
// Joyce realtime session. It either returns a statically configured pair or
// asks the token server for one; every failure collapses to "no session
// available" so callers never see an error, only absence.
package bootstrap

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
)

const (
	// DefaultTokenServerURL is the token server address used when none is
	// configured.
	DefaultTokenServerURL = "http://localhost:3000"

	tokenPath = "/api/token"

	// Fixed identifiers sent to the token server. Dynamic room or
	// participant naming is the server's concern, not the client's.
	roomName        = "joyce-room"
	participantName = "mobile-user"
)

// ConnectionDetails is a fully populated url/token pair. The client either
// produces both fields non-empty or nothing at all; partial values are never
// handed to consumers.
type ConnectionDetails struct {
	URL   string
	Token string
}

// Client requests connection details from the token server.
type Client struct {
	cfg        Config
	httpClient *http.Client
	log        zerolog.Logger
}

// New creates a bootstrap client. An empty base URL falls back to
// DefaultTokenServerURL.
func New(cfg Config, log zerolog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultTokenServerURL
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{},
		log:        log.With().Str("component", "bootstrap").Logger(),
	}
}

type tokenRequest struct {
	RoomName        string `json:"room_name"`
	ParticipantName string `json:"participant_name"`
}

type tokenResponse struct {
	ServerURL        string `json:"serverUrl"`
	ParticipantToken string `json:"participantToken"`
}

// AcquireConnectionDetails resolves the url/token pair for one session join.
// When a static override pair is fully configured it is returned as-is and no
// request is made. Otherwise a single POST to the token server is issued; the
// transport's own timeout applies, no retry is attempted, and nothing is
// cached between calls. A nil result means no session is available right now.
func (c *Client) AcquireConnectionDetails(ctx context.Context) *ConnectionDetails {
	if o := c.cfg.StaticOverride; o != nil && o.URL != "" && o.Token != "" {
		return &ConnectionDetails{URL: o.URL, Token: o.Token}
	}

	body, err := json.Marshal(tokenRequest{
		RoomName:        roomName,
		ParticipantName: participantName,
	})
	if err != nil {
		c.log.Error().Err(err).Msg("failed to encode token request")
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+tokenPath, bytes.NewReader(body))
	if err != nil {
		c.log.Error().Err(err).Str("base_url", c.cfg.BaseURL).Msg("failed to build token request")
		return nil
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error().Err(err).Str("base_url", c.cfg.BaseURL).Msg("token request failed")
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.log.Error().Int("status", resp.StatusCode).Msg("token server returned non-success status")
		return nil
	}

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		c.log.Error().Err(err).Msg("failed to decode token response")
		return nil
	}

	// A well-formed body without both fields is a normal "no session"
	// outcome, not an error.
	if tr.ServerURL == "" || tr.ParticipantToken == "" {
		return nil
	}

	return &ConnectionDetails{URL: tr.ServerURL, Token: tr.ParticipantToken}
}
