package util

import (
	"crypto/rand"
	"encoding/hex"
)

// NewOpaque returns a random hex string, optionally prefixed. Used for
// refresh tokens and token ids; row ids come from google/uuid instead.
func NewOpaque(prefix string) string {
	bytes := make([]byte, 16)
	_, _ = rand.Read(bytes)
	if prefix == "" {
		return hex.EncodeToString(bytes)
	}
	return prefix + "_" + hex.EncodeToString(bytes)
}
