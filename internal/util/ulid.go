package util

import (
	"crypto/rand"

	"github.com/oklog/ulid/v2"
)

// NewULID returns a new monotonic ULID string. Safe for concurrent use.
func NewULID() string {
	return ulid.Make().String()
}

// NewULIDWithEntropy uses a caller supplied entropy source, mainly for tests.
func NewULIDWithEntropy(entropy *ulid.MonotonicEntropy) string {
	return ulid.MustNew(ulid.Now(), entropy).String()
}

// DefaultEntropy returns a monotonic reader over crypto/rand.
func DefaultEntropy() *ulid.MonotonicEntropy {
	return ulid.Monotonic(rand.Reader, 0)
}
