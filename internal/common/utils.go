package common

import (
	"crypto/rand"
	"fmt"
)

// randRead is a test seam for crypto/rand.Read.
var randRead = rand.Read

// GenerateRandByteArray returns size bytes from the system CSPRNG.
// A failing entropy source is reported as ErrEntropyExhausted.
func GenerateRandByteArray(size int) ([]byte, error) {
	b := make([]byte, size)
	if _, err := randRead(b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEntropyExhausted, err)
	}
	return b, nil
}

// WipeByteArray overwrites the contents of b with zeros. Nil is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// MessageLimit is the gRPC message size both ends must accept to carry a
// payload of maxPayload bytes.
func MessageLimit(maxPayload int64) int {
	if maxPayload <= 0 {
		maxPayload = DefaultMaxPayloadBytes
	}
	return int(maxPayload + MessageOverhead)
}
