package session

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/joycehq/joyce/internal/infrastructure/metrics"
	"github.com/joycehq/joyce/internal/utils/idgen"
)

// ErrNotConfigured is returned when LiveKit credentials are missing.
var ErrNotConfigured = errors.New("livekit credentials not configured")

// TokenMinter defines the interface for minting LiveKit access tokens.
type TokenMinter interface {
	Mint(room, identity string, ttl time.Duration) (token string, err error)
}

// Service defines the business operations for issuing tokens and inspecting
// tracked sessions.
type Service interface {
	IssueToken(ctx context.Context, req *IssueTokenRequest) (*Grant, error)
	ActiveSessions(ctx context.Context) ([]*Session, error)
}

type service struct {
	store      Store
	minter     TokenMinter
	serverURL  string
	configured bool
	tokenTTL   time.Duration
	log        zerolog.Logger
}

// NewService creates a new session service.
func NewService(store Store, minter TokenMinter, serverURL string, configured bool, tokenTTL time.Duration, log zerolog.Logger) Service {
	return &service{
		store:      store,
		minter:     minter,
		serverURL:  serverURL,
		configured: configured,
		tokenTTL:   tokenTTL,
		log:        log.With().Str("component", "session-service").Logger(),
	}
}

func (s *service) IssueToken(ctx context.Context, req *IssueTokenRequest) (*Grant, error) {
	if !s.configured {
		return nil, ErrNotConfigured
	}

	start := time.Now()
	token, err := s.minter.Mint(req.RoomName, req.ParticipantName, s.tokenTTL)
	if err != nil {
		metrics.TokenErrors.Inc()
		s.log.Error().Err(err).Str("room", req.RoomName).Msg("failed to mint token")
		return nil, err
	}
	metrics.TokenGenerationDuration.Observe(time.Since(start).Seconds())

	sessionID, err := idgen.GenerateSecureID("sess", 24)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to generate session ID")
		return nil, err
	}

	now := time.Now()
	expiresAt := now.Add(s.tokenTTL)

	sess := &Session{
		ID:        sessionID,
		RoomName:  req.RoomName,
		Identity:  req.ParticipantName,
		State:     StateCreated,
		CreatedAt: now,
		ExpiresAt: expiresAt,
	}

	if err := s.store.Create(ctx, sess); err != nil {
		s.log.Error().Err(err).Str("session_id", sessionID).Msg("failed to store session")
		return nil, err
	}
	metrics.RecordTokenIssued()

	s.log.Info().
		Str("session_id", sessionID).
		Str("room", req.RoomName).
		Str("identity", req.ParticipantName).
		Time("expires_at", expiresAt).
		Msg("token issued")

	return &Grant{
		ServerURL:        s.serverURL,
		ParticipantToken: token,
		RoomName:         req.RoomName,
		Identity:         req.ParticipantName,
		ExpiresAt:        expiresAt,
	}, nil
}

func (s *service) ActiveSessions(ctx context.Context) ([]*Session, error) {
	return s.store.List(ctx)
}
