package crypto

import (
	"crypto/sha256"
	"crypto/subtle"
)

// SecretsEqual compares two secrets in constant time. Both sides are hashed
// first so the comparison does not leak the expected length.
func SecretsEqual(given, expected string) bool {
	a := sha256.Sum256([]byte(given))
	b := sha256.Sum256([]byte(expected))
	return subtle.ConstantTimeCompare(a[:], b[:]) == 1
}
