package common

import (
	"math"
	"time"
)

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// owner access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// KeySize is the length in bytes of every symmetric key handled by the vault.
const KeySize = 32

// DefaultMaxPayloadBytes is the default ceiling on a sealed plaintext.
const DefaultMaxPayloadBytes = 100 << 20

// MessageOverhead is the room a gRPC message needs beyond its payload for
// the remaining fields and framing.
const MessageOverhead = 1 << 20

// MaxTTLSeconds is the longest ttl, in seconds, a time.Duration can hold.
const MaxTTLSeconds = math.MaxInt64 / int64(time.Second)
