package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/joycehq/joyce/internal/config"
	"github.com/joycehq/joyce/internal/domain/session"
	"github.com/joycehq/joyce/internal/interfaces/httpserver/handlers"
	"github.com/joycehq/joyce/internal/interfaces/httpserver/routes/api"
)

// mockService is a session.Service backed by function fields.
type mockService struct {
	IssueTokenFunc     func(ctx context.Context, req *session.IssueTokenRequest) (*session.Grant, error)
	ActiveSessionsFunc func(ctx context.Context) ([]*session.Session, error)
}

func (m *mockService) IssueToken(ctx context.Context, req *session.IssueTokenRequest) (*session.Grant, error) {
	if m.IssueTokenFunc != nil {
		return m.IssueTokenFunc(ctx, req)
	}
	return nil, nil
}

func (m *mockService) ActiveSessions(ctx context.Context) ([]*session.Session, error) {
	if m.ActiveSessionsFunc != nil {
		return m.ActiveSessionsFunc(ctx)
	}
	return nil, nil
}

func newTestEngine(cfg *config.Config, svc session.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	routes := api.NewRoutes(cfg, handlers.NewProvider(svc))
	routes.Register(engine, nil)
	return engine
}

func TestIssueToken_OK(t *testing.T) {
	svc := &mockService{
		IssueTokenFunc: func(ctx context.Context, req *session.IssueTokenRequest) (*session.Grant, error) {
			if req.RoomName != "joyce-room" {
				t.Errorf("expected room joyce-room, got %q", req.RoomName)
			}
			if req.ParticipantName != "mobile-user" {
				t.Errorf("expected participant mobile-user, got %q", req.ParticipantName)
			}
			return &session.Grant{
				ServerURL:        "ws://localhost:7880",
				ParticipantToken: "jwt-token",
				RoomName:         req.RoomName,
				Identity:         req.ParticipantName,
				ExpiresAt:        time.Now().Add(time.Hour),
			}, nil
		},
	}
	engine := newTestEngine(&config.Config{LiveKitURL: "ws://localhost:7880"}, svc)

	body := bytes.NewBufferString(`{"room_name":"joyce-room","participant_name":"mobile-user"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/token", body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["serverUrl"] != "ws://localhost:7880" {
		t.Errorf("unexpected serverUrl: %q", resp["serverUrl"])
	}
	if resp["participantToken"] != "jwt-token" {
		t.Errorf("unexpected participantToken: %q", resp["participantToken"])
	}
	if resp["roomName"] != "joyce-room" {
		t.Errorf("unexpected roomName: %q", resp["roomName"])
	}
}

func TestIssueToken_MissingFields(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty body", body: `{}`},
		{name: "missing participant", body: `{"room_name":"joyce-room"}`},
		{name: "missing room", body: `{"participant_name":"mobile-user"}`},
		{name: "not json", body: `nope`},
	}

	engine := newTestEngine(&config.Config{}, &mockService{})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/token", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			engine.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", w.Code)
			}
		})
	}
}

func TestIssueToken_NotConfigured(t *testing.T) {
	svc := &mockService{
		IssueTokenFunc: func(ctx context.Context, req *session.IssueTokenRequest) (*session.Grant, error) {
			return nil, session.ErrNotConfigured
		},
	}
	engine := newTestEngine(&config.Config{}, svc)

	body := bytes.NewBufferString(`{"room_name":"joyce-room","participant_name":"mobile-user"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/token", body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}

	var resp struct {
		Error struct {
			Type string `json:"type"`
		} `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if resp.Error.Type != "configuration_error" {
		t.Errorf("expected configuration_error, got %q", resp.Error.Type)
	}
}

func TestHealth(t *testing.T) {
	svc := &mockService{
		ActiveSessionsFunc: func(ctx context.Context) ([]*session.Session, error) {
			return []*session.Session{{ID: "sess_1"}}, nil
		},
	}
	cfg := &config.Config{
		LiveKitURL:       "ws://localhost:7880",
		LiveKitAPIKey:    "devkey",
		LiveKitAPISecret: "secret",
	}
	engine := newTestEngine(cfg, svc)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Status  string `json:"status"`
		LiveKit struct {
			Configured bool   `json:"configured"`
			URL        string `json:"url"`
		} `json:"livekit"`
		Sessions struct {
			Active int `json:"active"`
		} `json:"sessions"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "healthy" {
		t.Errorf("unexpected status: %q", resp.Status)
	}
	if !resp.LiveKit.Configured {
		t.Error("expected livekit to be configured")
	}
	if resp.LiveKit.URL != "ws://localhost:7880" {
		t.Errorf("unexpected livekit URL: %q", resp.LiveKit.URL)
	}
	if resp.Sessions.Active != 1 {
		t.Errorf("expected 1 active session, got %d", resp.Sessions.Active)
	}
}
