package session

import "time"

// State represents the lifecycle of a tracked session.
type State string

const (
	// StateCreated indicates a token was minted, waiting for the participant
	// to join the room.
	StateCreated State = "created"
	// StateConnected indicates the participant has joined the LiveKit room.
	StateConnected State = "connected"
)

// Session records a participant token handed out by the token endpoint.
type Session struct {
	ID        string
	RoomName  string
	Identity  string
	State     State
	CreatedAt time.Time
	ExpiresAt time.Time
}

// IssueTokenRequest is the input for minting a participant token.
type IssueTokenRequest struct {
	RoomName        string
	ParticipantName string
}

// Grant is the result of a successful token mint: everything a client needs
// to join the room.
type Grant struct {
	ServerURL        string
	ParticipantToken string
	RoomName         string
	Identity         string
	ExpiresAt        time.Time
}
