package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"errors"

	"github.com/amincahcepu/Remote-Docling/pkg/logger"
)

// HeaderAPIKey is the request header carrying the client key.
const HeaderAPIKey = "X-API-Key"

// ErrInvalidKey reports a missing or mismatched API key.
var ErrInvalidKey = errors.New("invalid API key")

// Guard checks client API keys against the configured one. With no key
// configured every request passes.
type Guard struct {
	enabled bool
	keySum  [sha256.Size]byte
	logger  logger.Logger
}

// NewGuard creates a guard for the configured key.
func NewGuard(apiKey string, log logger.Logger) *Guard {
	g := &Guard{
		enabled: apiKey != "",
		logger:  log,
	}
	if g.enabled {
		g.keySum = sha256.Sum256([]byte(apiKey))
	}
	return g
}

// Enabled reports whether a key is configured.
func (g *Guard) Enabled() bool {
	return g.enabled
}

// Verify checks the key a client provided. A missing header counts as
// a mismatch. Keys are hashed before the constant-time comparison so
// the check leaks neither content nor length.
func (g *Guard) Verify(provided string) error {
	if !g.enabled {
		return nil
	}

	providedSum := sha256.Sum256([]byte(provided))
	if subtle.ConstantTimeCompare(providedSum[:], g.keySum[:]) != 1 {
		g.logger.Warn("Invalid API key attempt")
		return ErrInvalidKey
	}
	return nil
}
