package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Keyer generates cache keys.
type Keyer interface {
	// AnswerKey returns the key for the answers of one puzzle day solved
	// against the input with the given hash.
	AnswerKey(year, day int, inputHash string) string
}

// DefaultKeyer produces keys of the form "answer:<year>:<day>:<hash>".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// AnswerKey implements [Keyer].
func (DefaultKeyer) AnswerKey(year, day int, inputHash string) string {
	return fmt.Sprintf("answer:%d:%02d:%s", year, day, inputHash)
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
