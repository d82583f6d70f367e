package session_test

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/joycehq/joyce/internal/domain/session"
)

// mockMinter is a TokenMinter backed by a function field.
type mockMinter struct {
	MintFunc func(room, identity string, ttl time.Duration) (string, error)
}

func (m *mockMinter) Mint(room, identity string, ttl time.Duration) (string, error) {
	if m.MintFunc != nil {
		return m.MintFunc(room, identity, ttl)
	}
	return "jwt-token", nil
}

// mockStore is a session.Store backed by function fields.
type mockStore struct {
	CreateFunc func(ctx context.Context, sess *session.Session) error
	ListFunc   func(ctx context.Context) ([]*session.Session, error)

	created []*session.Session
}

func (m *mockStore) Create(ctx context.Context, sess *session.Session) error {
	m.created = append(m.created, sess)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, sess)
	}
	return nil
}

func (m *mockStore) Get(ctx context.Context, id string) (*session.Session, error) {
	return nil, nil
}

func (m *mockStore) GetByRoom(ctx context.Context, room string) ([]*session.Session, error) {
	return nil, nil
}

func (m *mockStore) Delete(ctx context.Context, id string) error { return nil }

func (m *mockStore) List(ctx context.Context) ([]*session.Session, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockStore) UpdateState(ctx context.Context, id string, state session.State) error {
	return nil
}

func testLogger() zerolog.Logger {
	return zerolog.New(os.Stderr).Level(zerolog.Disabled)
}

func TestIssueToken(t *testing.T) {
	store := &mockStore{}
	minter := &mockMinter{
		MintFunc: func(room, identity string, ttl time.Duration) (string, error) {
			if room != "joyce-room" {
				t.Errorf("expected room joyce-room, got %q", room)
			}
			if identity != "mobile-user" {
				t.Errorf("expected identity mobile-user, got %q", identity)
			}
			if ttl != 6*time.Hour {
				t.Errorf("expected ttl 6h, got %s", ttl)
			}
			return "jwt-token", nil
		},
	}

	svc := session.NewService(store, minter, "ws://localhost:7880", true, 6*time.Hour, testLogger())

	grant, err := svc.IssueToken(context.Background(), &session.IssueTokenRequest{
		RoomName:        "joyce-room",
		ParticipantName: "mobile-user",
	})
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	if grant.ServerURL != "ws://localhost:7880" {
		t.Errorf("unexpected server URL: %q", grant.ServerURL)
	}
	if grant.ParticipantToken != "jwt-token" {
		t.Errorf("unexpected token: %q", grant.ParticipantToken)
	}
	if grant.RoomName != "joyce-room" {
		t.Errorf("unexpected room: %q", grant.RoomName)
	}
	if grant.ExpiresAt.Before(time.Now()) {
		t.Error("expected expiry in the future")
	}

	if len(store.created) != 1 {
		t.Fatalf("expected 1 stored session, got %d", len(store.created))
	}
	sess := store.created[0]
	if !strings.HasPrefix(sess.ID, "sess_") {
		t.Errorf("expected session ID with sess_ prefix, got %q", sess.ID)
	}
	if sess.State != session.StateCreated {
		t.Errorf("expected state created, got %q", sess.State)
	}
}

func TestIssueToken_NotConfigured(t *testing.T) {
	svc := session.NewService(&mockStore{}, &mockMinter{}, "ws://localhost:7880", false, time.Hour, testLogger())

	_, err := svc.IssueToken(context.Background(), &session.IssueTokenRequest{
		RoomName:        "joyce-room",
		ParticipantName: "mobile-user",
	})
	if !errors.Is(err, session.ErrNotConfigured) {
		t.Errorf("expected ErrNotConfigured, got %v", err)
	}
}

func TestIssueToken_MintFailure(t *testing.T) {
	mintErr := errors.New("bad key")
	store := &mockStore{}
	minter := &mockMinter{
		MintFunc: func(room, identity string, ttl time.Duration) (string, error) {
			return "", mintErr
		},
	}

	svc := session.NewService(store, minter, "ws://localhost:7880", true, time.Hour, testLogger())

	_, err := svc.IssueToken(context.Background(), &session.IssueTokenRequest{
		RoomName:        "joyce-room",
		ParticipantName: "mobile-user",
	})
	if !errors.Is(err, mintErr) {
		t.Errorf("expected mint error, got %v", err)
	}
	if len(store.created) != 0 {
		t.Errorf("expected no stored session after mint failure, got %d", len(store.created))
	}
}

func TestIssueToken_StoreFailure(t *testing.T) {
	storeErr := errors.New("store full")
	store := &mockStore{
		CreateFunc: func(ctx context.Context, sess *session.Session) error {
			return storeErr
		},
	}

	svc := session.NewService(store, &mockMinter{}, "ws://localhost:7880", true, time.Hour, testLogger())

	_, err := svc.IssueToken(context.Background(), &session.IssueTokenRequest{
		RoomName:        "joyce-room",
		ParticipantName: "mobile-user",
	})
	if !errors.Is(err, storeErr) {
		t.Errorf("expected store error, got %v", err)
	}
}

func TestActiveSessions(t *testing.T) {
	want := []*session.Session{{ID: "sess_1"}, {ID: "sess_2"}}
	store := &mockStore{
		ListFunc: func(ctx context.Context) ([]*session.Session, error) {
			return want, nil
		},
	}

	svc := session.NewService(store, &mockMinter{}, "ws://localhost:7880", true, time.Hour, testLogger())

	got, err := svc.ActiveSessions(context.Background())
	if err != nil {
		t.Fatalf("ActiveSessions failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 sessions, got %d", len(got))
	}
}
