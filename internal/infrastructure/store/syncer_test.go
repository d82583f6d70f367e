package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/joycehq/joyce/internal/domain/session"
	"github.com/joycehq/joyce/internal/infrastructure/livekit"
)

type fakeRoomLister struct {
	rooms map[string]livekit.RoomInfo
	err   error
}

func (f *fakeRoomLister) ListActiveRooms(ctx context.Context) (map[string]livekit.RoomInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rooms, nil
}

func TestSync_MarksConnected(t *testing.T) {
	s := NewMemoryStore(testLogger())
	ctx := context.Background()

	if err := s.Create(ctx, newSession("sess_1", "joyce-room")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	rooms := &fakeRoomLister{rooms: map[string]livekit.RoomInfo{
		"joyce-room": {Name: "joyce-room", NumParticipants: 1},
	}}
	syncer := NewSyncer(s, rooms, 10*time.Minute, time.Minute, testLogger())

	syncer.sync(ctx)

	got, err := s.Get(ctx, "sess_1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.State != session.StateConnected {
		t.Errorf("expected connected state, got %q", got.State)
	}
}

func TestSync_DeletesConnectedWhenRoomGone(t *testing.T) {
	s := NewMemoryStore(testLogger())
	ctx := context.Background()

	sess := newSession("sess_1", "joyce-room")
	sess.State = session.StateConnected
	if err := s.Create(ctx, sess); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	rooms := &fakeRoomLister{rooms: map[string]livekit.RoomInfo{}}
	syncer := NewSyncer(s, rooms, 10*time.Minute, time.Minute, testLogger())

	syncer.sync(ctx)

	if _, err := s.Get(ctx, "sess_1"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected session to be deleted, got %v", err)
	}
}

func TestSync_KeepsFreshCreatedSession(t *testing.T) {
	s := NewMemoryStore(testLogger())
	ctx := context.Background()

	if err := s.Create(ctx, newSession("sess_1", "joyce-room")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	rooms := &fakeRoomLister{rooms: map[string]livekit.RoomInfo{}}
	syncer := NewSyncer(s, rooms, 10*time.Minute, time.Minute, testLogger())

	syncer.sync(ctx)

	if _, err := s.Get(ctx, "sess_1"); err != nil {
		t.Errorf("fresh created session should survive sync: %v", err)
	}
}

func TestSync_DeletesStaleCreatedSession(t *testing.T) {
	s := NewMemoryStore(testLogger())
	ctx := context.Background()

	sess := newSession("sess_1", "joyce-room")
	sess.CreatedAt = time.Now().Add(-time.Hour)
	if err := s.Create(ctx, sess); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	rooms := &fakeRoomLister{rooms: map[string]livekit.RoomInfo{}}
	syncer := NewSyncer(s, rooms, 10*time.Minute, time.Minute, testLogger())

	syncer.sync(ctx)

	if _, err := s.Get(ctx, "sess_1"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected stale session to be deleted, got %v", err)
	}
}

func TestSync_TTLFallbackWhenLiveKitUnreachable(t *testing.T) {
	s := NewMemoryStore(testLogger())
	ctx := context.Background()

	stale := newSession("sess_stale", "joyce-room")
	stale.CreatedAt = time.Now().Add(-time.Hour)
	if err := s.Create(ctx, stale); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	connected := newSession("sess_live", "other-room")
	connected.State = session.StateConnected
	if err := s.Create(ctx, connected); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	rooms := &fakeRoomLister{err: errors.New("livekit unreachable")}
	syncer := NewSyncer(s, rooms, 10*time.Minute, time.Minute, testLogger())

	syncer.sync(ctx)

	if _, err := s.Get(ctx, "sess_stale"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected stale session to be cleaned up, got %v", err)
	}
	// Connected sessions are left alone when LiveKit cannot be asked.
	if _, err := s.Get(ctx, "sess_live"); err != nil {
		t.Errorf("connected session should survive TTL fallback: %v", err)
	}
}

func TestSyncer_StartStop(t *testing.T) {
	s := NewMemoryStore(testLogger())
	rooms := &fakeRoomLister{rooms: map[string]livekit.RoomInfo{}}
	syncer := NewSyncer(s, rooms, time.Minute, 10*time.Millisecond, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	syncer.Start(ctx)
	syncer.Start(ctx) // second call is a no-op
	time.Sleep(30 * time.Millisecond)
	syncer.Stop()
	syncer.Stop() // second call is a no-op
}
