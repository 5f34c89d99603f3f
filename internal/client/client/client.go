package client

import (
	"context"

	pb "github.com/dmitrijs2005/sealvault/internal/proto"
)

// Client is the transport-agnostic contract used by the CLI.
type Client interface {
	Close() error
	Seal(ctx context.Context, req *pb.SealRequest) (*pb.SealResponse, error)
	Unseal(ctx context.Context, req *pb.UnsealRequest) (*pb.UnsealResponse, error)
	PeekInfo(ctx context.Context, id string) (*pb.PeekInfoResponse, error)
	Delete(ctx context.Context, id string) error
}
