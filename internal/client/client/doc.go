// Package client contains the client side of sealvault.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) covering
//     Seal, Unseal, PeekInfo and Delete.
//  2. A concrete gRPC implementation (see GRPCClient) that manages a
//     connection, injects the owner access token via an interceptor, applies
//     a per-call timeout and maps status errors back to sentinel errors.
//
// # Error Handling
//
// Vault failures come back as the sentinels of package common (for example
// common.ErrQuotaExhausted or common.ErrInvalidCredential) and can be matched
// with errors.Is. Transport failures map to ErrUnavailable.
//
// Concurrency & Contexts
//
// GRPCClient is safe for concurrent use. All operations accept
// context.Context and honor cancellation.
package client
