package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/sealvault/internal/api"
	"github.com/dmitrijs2005/sealvault/internal/common"
	pb "github.com/dmitrijs2005/sealvault/internal/proto"
	"github.com/dmitrijs2005/sealvault/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const ownerIDKey ctxKey = "ownerID"

// ownerMethods need an owner token; unseal and peek are reached by anyone
// holding the link.
var ownerMethods = map[string]struct{}{
	pb.VaultService_Seal_FullMethodName:   {},
	pb.VaultService_Delete_FullMethodName: {},
}

func ownerIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ownerIDKey).(string)
	return id, ok && id != ""
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if _, ok := ownerMethods[info.FullMethod]; !ok {
		return handler(ctx, req)
	}

	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(common.AccessTokenHeaderName); len(values) > 0 {
			accessToken = values[0]
		}
	}
	if accessToken == "" {
		return nil, api.StatusError(common.ErrorUnauthorized)
	}

	ownerID, err := auth.GetOwnerIDFromToken(accessToken, s.jwtSecret)
	if err != nil {
		return nil, api.StatusError(err)
	}

	return handler(context.WithValue(ctx, ownerIDKey, ownerID), req)
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	s.logger.Debug(ctx, "request handled",
		"method", info.FullMethod,
		"code", status.Code(err).String(),
		"duration", time.Since(start))
	return resp, err
}
