// Package grpc exposes the vault over gRPC using the protobuf contract of
// package proto.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/sealvault/internal/logging"
	"github.com/dmitrijs2005/sealvault/internal/server/models"
	pb "github.com/dmitrijs2005/sealvault/internal/proto"
	"github.com/dmitrijs2005/sealvault/internal/server/services"
	"google.golang.org/grpc"
)

// Vault is the part of services.VaultService the handlers use.
type Vault interface {
	Seal(ctx context.Context, plaintext []byte, opts services.SealOptions) (*services.SealResult, error)
	Unseal(ctx context.Context, id string, cred services.Presented) ([]byte, *models.SealedItem, error)
	PeekInfo(ctx context.Context, id string) (*services.Info, error)
	Delete(ctx context.Context, id, ownerID string) error
}

type GRPCServer struct {
	pb.UnimplementedVaultServiceServer
	address   string
	vault     Vault
	logger    logging.Logger
	jwtSecret []byte
	maxBytes  int
}

// NewGRPCServer builds a server for vault. maxMsgBytes bounds messages in
// both directions and must leave room for the largest payload plus its
// envelope; zero keeps the gRPC defaults.
func NewGRPCServer(a string, l logging.Logger, v Vault, secretKey string, maxMsgBytes int) *GRPCServer {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		vault:     v,
		jwtSecret: []byte(secretKey),
		maxBytes:  maxMsgBytes,
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	opts := []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor),
	}
	if s.maxBytes > 0 {
		opts = append(opts, grpc.MaxRecvMsgSize(s.maxBytes), grpc.MaxSendMsgSize(s.maxBytes))
	}

	srv := grpc.NewServer(opts...)
	pb.RegisterVaultServiceServer(srv, s)
	return srv
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve serves on lis until ctx is cancelled, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	return srv.Serve(lis)
}
