// Package api maps vault errors to gRPC statuses and back. The kind travels
// in an ErrorInfo detail so the client can restore the sentinel.
package api

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/sealvault/internal/common"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrorDomain tags the ErrorInfo detail attached to every mapped status.
const ErrorDomain = "sealvault"

type errorKind struct {
	err    error
	code   codes.Code
	reason string
}

// kinds is ordered: the first sentinel matched by errors.Is wins, so more
// specific kinds come before the generic storage error they may wrap.
var kinds = []errorKind{
	{common.ErrorNotFound, codes.NotFound, "NOT_FOUND"},
	{common.ErrExpired, codes.FailedPrecondition, "EXPIRED"},
	{common.ErrQuotaExhausted, codes.FailedPrecondition, "QUOTA_EXHAUSTED"},
	{common.ErrInvalidCredential, codes.PermissionDenied, "INVALID_CREDENTIAL"},
	{common.ErrMalformedPayload, codes.DataLoss, "MALFORMED_PAYLOAD"},
	{common.ErrPayloadTooLarge, codes.InvalidArgument, "PAYLOAD_TOO_LARGE"},
	{common.ErrValidation, codes.InvalidArgument, "VALIDATION"},
	{common.ErrTokenExpired, codes.Unauthenticated, "TOKEN_EXPIRED"},
	{common.ErrInvalidToken, codes.Unauthenticated, "INVALID_TOKEN"},
	{common.ErrorUnauthorized, codes.Unauthenticated, "UNAUTHORIZED"},
	{common.ErrStorageUnavailable, codes.Unavailable, "STORAGE_UNAVAILABLE"},
	{common.ErrEntropyExhausted, codes.Internal, "ENTROPY_EXHAUSTED"},
}

// StatusError converts a vault error into a gRPC status error carrying an
// ErrorInfo detail, so the client can restore the sentinel. The message is
// the sentinel text only; wrapped context never leaves the server.
func StatusError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	if errors.Is(err, context.Canceled) {
		return status.Error(codes.Canceled, err.Error())
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return status.Error(codes.DeadlineExceeded, err.Error())
	}

	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return withReason(k.code, k.err.Error(), k.reason)
		}
	}
	return withReason(codes.Internal, common.ErrorInternal.Error(), "INTERNAL")
}

func withReason(code codes.Code, msg, reason string) error {
	st := status.New(code, msg)
	detailed, err := st.WithDetails(&errdetails.ErrorInfo{Reason: reason, Domain: ErrorDomain})
	if err != nil {
		return st.Err()
	}
	return detailed.Err()
}

// FromStatus restores the vault sentinel from a status error returned by the
// server. Statuses without a vault ErrorInfo, such as transport failures or
// deadlines, are returned unchanged.
func FromStatus(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	for _, d := range st.Details() {
		info, ok := d.(*errdetails.ErrorInfo)
		if !ok || info.GetDomain() != ErrorDomain {
			continue
		}
		for _, k := range kinds {
			if k.reason == info.GetReason() {
				return k.err
			}
		}
		if info.GetReason() == "INTERNAL" {
			return common.ErrorInternal
		}
	}
	return err
}
