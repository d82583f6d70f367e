// Package requests contains HTTP request DTOs for the token server.
package requests

// TokenRequest is the request body for minting a participant token.
// Field names match what the mobile client sends.
type TokenRequest struct {
	RoomName        string `json:"room_name" binding:"required"`
	ParticipantName string `json:"participant_name" binding:"required"`
}
