// Command joyce-cli is a development client for the Joyce token server.
//
// It acquires connection details the same way the mobile client does
// (static override first, token server second), joins the LiveKit room,
// and stays connected until interrupted so the voice agent pipeline can
// be exercised end to end from a terminal.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	lksdk "github.com/livekit/server-sdk-go/v2"
	"github.com/rs/zerolog"

	"github.com/joycehq/joyce/pkg/bootstrap"
)

func main() {
	stayFor := flag.Duration("stay", 0, "disconnect after this duration (0 = until interrupted)")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	cfg, err := bootstrap.ConfigFromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read environment")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := bootstrap.New(cfg, log)
	details := client.AcquireConnectionDetails(ctx)
	if details == nil {
		log.Fatal().Msg("no connection details available, is the token server running?")
	}

	log.Info().Str("url", details.URL).Msg("joining room")

	room := lksdk.NewRoom(&lksdk.RoomCallback{
		OnDisconnected: func() {
			log.Info().Msg("disconnected from room")
			stop()
		},
	})

	if err := room.JoinWithToken(details.URL, details.Token); err != nil {
		log.Fatal().Err(err).Msg("failed to join room")
	}

	log.Info().
		Str("room", room.Name()).
		Str("sid", room.SID()).
		Str("identity", room.LocalParticipant.Identity()).
		Msg("joined room")

	for _, p := range room.GetRemoteParticipants() {
		log.Info().Str("identity", p.Identity()).Msg("remote participant present")
	}

	if *stayFor > 0 {
		select {
		case <-ctx.Done():
		case <-time.After(*stayFor):
		}
	} else {
		<-ctx.Done()
	}

	room.Disconnect()
	log.Info().Msg("bye")
}
