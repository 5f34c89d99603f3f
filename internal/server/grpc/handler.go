package grpc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/sealvault/internal/api"
	"github.com/dmitrijs2005/sealvault/internal/common"
	pb "github.com/dmitrijs2005/sealvault/internal/proto"
	"github.com/dmitrijs2005/sealvault/internal/server/services"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func ttlFromSeconds(seconds int64) (time.Duration, error) {
	if seconds < 0 || seconds > common.MaxTTLSeconds {
		return 0, fmt.Errorf("%w: ttl must be between 0 and %d seconds", common.ErrValidation, common.MaxTTLSeconds)
	}
	return time.Duration(seconds) * time.Second, nil
}

func (s *GRPCServer) Seal(ctx context.Context, req *pb.SealRequest) (*pb.SealResponse, error) {
	ownerID, ok := ownerIDFromContext(ctx)
	if !ok {
		return nil, api.StatusError(common.ErrorUnauthorized)
	}

	opts := services.SealOptions{
		Passphrase:  req.GetPassphrase(),
		Quota:       req.MaxDownloads,
		OwnerID:     ownerID,
		FileName:    req.GetFileName(),
		ContentType: req.GetContentType(),
	}
	if req.TtlSeconds != nil {
		ttl, err := ttlFromSeconds(req.GetTtlSeconds())
		if err != nil {
			return nil, s.fail(ctx, "seal", err)
		}
		opts.TTL = &ttl
	}

	res, err := s.vault.Seal(ctx, req.GetPayload(), opts)
	if err != nil {
		return nil, s.fail(ctx, "seal", err)
	}

	return &pb.SealResponse{Id: res.ID, AccessKey: res.AccessKey}, nil
}

func (s *GRPCServer) Unseal(ctx context.Context, req *pb.UnsealRequest) (*pb.UnsealResponse, error) {
	plaintext, item, err := s.vault.Unseal(ctx, req.GetId(), services.Presented{
		Passphrase: req.GetPassphrase(),
		AccessKey:  req.GetAccessKey(),
	})
	if err != nil {
		return nil, s.fail(ctx, "unseal", err)
	}

	return &pb.UnsealResponse{
		Payload:       plaintext,
		FileName:      item.FileName,
		ContentType:   item.ContentType,
		DownloadCount: item.DownloadCount,
	}, nil
}

func (s *GRPCServer) PeekInfo(ctx context.Context, req *pb.PeekInfoRequest) (*pb.PeekInfoResponse, error) {
	info, err := s.vault.PeekInfo(ctx, req.GetId())
	if err != nil {
		return nil, s.fail(ctx, "peek", err)
	}

	resp := &pb.PeekInfoResponse{
		Id:                 info.ID,
		RequiresPassphrase: info.RequiresPassphrase,
		Liveness:           string(info.Liveness),
		QuotaRemaining:     info.QuotaRemaining,
		DownloadCount:      info.DownloadCount,
		CreatedAt:          timestamppb.New(info.CreatedAt),
		FileName:           info.FileName,
		ContentType:        info.ContentType,
		Size:               info.Size,
	}
	if info.ExpiresAt != nil {
		resp.ExpiresAt = timestamppb.New(*info.ExpiresAt)
	}
	return resp, nil
}

func (s *GRPCServer) Delete(ctx context.Context, req *pb.DeleteRequest) (*pb.DeleteResponse, error) {
	ownerID, ok := ownerIDFromContext(ctx)
	if !ok {
		return nil, api.StatusError(common.ErrorUnauthorized)
	}

	if err := s.vault.Delete(ctx, req.GetId(), ownerID); err != nil {
		return nil, s.fail(ctx, "delete", err)
	}
	return &pb.DeleteResponse{}, nil
}

// fail logs server-side failures and converts err to a status. Caller
// mistakes such as a wrong credential are not logged as errors.
func (s *GRPCServer) fail(ctx context.Context, op string, err error) error {
	if !isCallerError(err) {
		s.logger.Error(ctx, op+" failed", "error", err)
	}
	return api.StatusError(err)
}

func isCallerError(err error) bool {
	for _, known := range []error{
		common.ErrorNotFound, common.ErrExpired, common.ErrQuotaExhausted,
		common.ErrInvalidCredential, common.ErrValidation, common.ErrPayloadTooLarge,
		common.ErrorUnauthorized,
	} {
		if errors.Is(err, known) {
			return true
		}
	}
	return false
}
