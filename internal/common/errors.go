// Package common defines shared constants, sentinel errors and small helpers
// used across client and server layers of sealvault. Callers should use
// errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Auth errors (invalid, malformed or expired token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Sharing policy errors. Once returned for an item they never reverse.
	ErrExpired        = errors.New("link expired")
	ErrQuotaExhausted = errors.New("download limit reached")

	// ErrInvalidCredential covers both a wrong passphrase and a wrong access key.
	ErrInvalidCredential = errors.New("invalid credential")

	// ErrMalformedPayload means the stored ciphertext or iv is corrupt.
	ErrMalformedPayload = errors.New("malformed payload")

	// ErrStorageUnavailable wraps backend I/O failures; callers may retry.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrEntropyExhausted is fatal: random key or iv generation failed.
	ErrEntropyExhausted = errors.New("entropy source exhausted")

	// Validation errors.
	ErrValidation      = errors.New("validation error")
	ErrPayloadTooLarge = errors.New("payload too large")
)
