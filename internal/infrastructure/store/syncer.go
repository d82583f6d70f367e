package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/joycehq/joyce/internal/domain/session"
	"github.com/joycehq/joyce/internal/infrastructure/livekit"
	"github.com/joycehq/joyce/internal/infrastructure/metrics"
)

// RoomLister is the slice of the LiveKit room API the syncer needs.
type RoomLister interface {
	ListActiveRooms(ctx context.Context) (map[string]livekit.RoomInfo, error)
}

// Syncer reconciles tracked sessions with LiveKit room state:
// - created → connected when the session's room has participants
// - delete connected sessions whose room is gone or empty
// - delete stale created sessions that never connected (after staleTTL)
type Syncer struct {
	store     session.Store
	rooms     RoomLister
	staleTTL  time.Duration
	interval  time.Duration
	log       zerolog.Logger
	done      chan struct{}
	wg        sync.WaitGroup
	startOnce sync.Once
	stopOnce  sync.Once
}

// NewSyncer creates a new session syncer.
func NewSyncer(
	store session.Store,
	rooms RoomLister,
	staleTTL time.Duration,
	interval time.Duration,
	log zerolog.Logger,
) *Syncer {
	return &Syncer{
		store:    store,
		rooms:    rooms,
		staleTTL: staleTTL,
		interval: interval,
		log:      log.With().Str("component", "session-syncer").Logger(),
		done:     make(chan struct{}),
	}
}

// Start begins the sync loop in background.
// Safe to call multiple times - only the first call starts the syncer.
func (s *Syncer) Start(ctx context.Context) {
	s.startOnce.Do(func() {
		s.wg.Add(1)
		go s.run(ctx)
		s.log.Info().Msg("session syncer started")
	})
}

// Stop gracefully shuts down the syncer.
// Safe to call multiple times - only the first call stops the syncer.
func (s *Syncer) Stop() {
	s.stopOnce.Do(func() {
		close(s.done)
		s.wg.Wait()
		s.log.Info().Msg("session syncer stopped")
	})
}

func (s *Syncer) run(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Debug().Msg("context cancelled, shutting down syncer")
			return
		case <-s.done:
			s.log.Debug().Msg("done signal received, shutting down syncer")
			return
		case <-ticker.C:
			s.sync(ctx)
		}
	}
}

// sync polls LiveKit and reconciles session state.
func (s *Syncer) sync(ctx context.Context) {
	start := time.Now()
	defer func() {
		metrics.LiveKitSyncDuration.Observe(time.Since(start).Seconds())
	}()

	activeRooms, err := s.rooms.ListActiveRooms(ctx)
	if err != nil {
		metrics.LiveKitSyncErrors.Inc()
		s.log.Warn().Err(err).Msg("failed to list rooms from LiveKit, falling back to TTL cleanup")
		s.cleanupByTTL(ctx)
		return
	}

	sessions, err := s.store.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list sessions from store")
		return
	}

	tracked := make([]string, 0, len(sessions))
	for _, sess := range sessions {
		tracked = append(tracked, fmt.Sprintf("%s(%s)", sess.RoomName, sess.State))
	}
	s.log.Debug().
		Int("livekit_rooms", len(activeRooms)).
		Strs("tracked_sessions", tracked).
		Msg("sync cycle")

	now := time.Now()

	for _, sess := range sessions {
		roomInfo, roomExists := activeRooms[sess.RoomName]

		switch {
		case !roomExists || roomInfo.NumParticipants == 0:
			if sess.State == session.StateConnected {
				// Was connected, now room is gone
				if err := s.store.Delete(ctx, sess.ID); err == nil {
					metrics.RecordSessionEvicted()
					s.log.Info().
						Str("action", "deleted").
						Str("room", sess.RoomName).
						Str("reason", "room_empty").
						Msg("session cleanup")
				}
			} else if sess.State == session.StateCreated && now.Sub(sess.CreatedAt) > s.staleTTL {
				// Never connected and stale
				if err := s.store.Delete(ctx, sess.ID); err == nil {
					metrics.RecordSessionEvicted()
					s.log.Info().
						Str("action", "deleted").
						Str("room", sess.RoomName).
						Str("reason", "stale").
						Dur("age", now.Sub(sess.CreatedAt)).
						Msg("session cleanup")
				}
			}

		case roomInfo.NumParticipants > 0 && sess.State == session.StateCreated:
			if err := s.store.UpdateState(ctx, sess.ID, session.StateConnected); err == nil {
				metrics.RecordStateTransition(string(session.StateCreated), string(session.StateConnected))
				s.log.Info().
					Str("action", "connected").
					Str("room", sess.RoomName).
					Int("participants", roomInfo.NumParticipants).
					Msg("session updated")
			}
		}
	}
}

// cleanupByTTL is a fallback when LiveKit is unreachable.
// Only cleans up stale sessions that never connected.
func (s *Syncer) cleanupByTTL(ctx context.Context) {
	sessions, err := s.store.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list sessions for TTL cleanup")
		return
	}

	now := time.Now()
	stale := 0

	for _, sess := range sessions {
		if sess.State == session.StateCreated && now.Sub(sess.CreatedAt) > s.staleTTL {
			if err := s.store.Delete(ctx, sess.ID); err == nil {
				metrics.RecordSessionEvicted()
				stale++
			}
		}
	}

	if stale > 0 {
		s.log.Info().
			Int("stale_deleted", stale).
			Msg("TTL fallback cleanup completed")
	}
}
