package session

import (
	"crypto/rand"
	"encoding/base64"

	"github.com/pkg/errors"
)

// idSize is 32 bytes, 256 bits of entropy.
const idSize = 32

// generateID returns a URL-safe random session ID.
func generateID() (string, error) {
	b := make([]byte, idSize)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Wrap(err, "session: failed to generate id")
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}
