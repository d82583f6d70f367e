package idgen

import (
	"crypto/rand"
	"fmt"
)

const charset = "0123456789abcdefghijklmnopqrstuvwxyz"

// GenerateSecureID returns a prefixed, cryptographically random identifier
// made of lowercase alphanumerics, e.g. "sess_k2v9...".
func GenerateSecureID(prefix string, length int) (string, error) {
	raw := make([]byte, length)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	encoded := make([]byte, length)
	for i := range raw {
		encoded[i] = charset[int(raw[i])%len(charset)]
	}

	return fmt.Sprintf("%s_%s", prefix, encoded), nil
}
