// Package shared holds small helpers for handling secrets.
package shared

import (
	"crypto/rand"
	"encoding/hex"
)

// NewSecret returns size random bytes, hex encoded. It is meant for HMAC
// signing keys, so the result is twice size characters long.
func NewSecret(size int) (string, error) {

	b := make([]byte, size)
	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(b), nil
}

// WipeByteArray overwrites b with zeros. A nil slice is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
