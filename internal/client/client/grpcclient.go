package client

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/sealvault/internal/api"
	"github.com/dmitrijs2005/sealvault/internal/common"
	pb "github.com/dmitrijs2005/sealvault/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.VaultServiceClient
	accessToken string
	timeout     time.Duration
	maxMsgBytes int
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if s.accessToken != "" {
		ctx = withAccessToken(ctx, s.accessToken)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

// NewGRPCClient connects to the vault at endpointURL. accessToken may be
// empty for anonymous use. maxMsgBytes bounds messages in both directions
// and should match the server's limit; zero selects the limit for the
// default payload ceiling. Extra dial options are appended after the
// defaults, which lets tests swap the transport.
func NewGRPCClient(endpointURL, accessToken string, timeout time.Duration, maxMsgBytes int, opts ...grpc.DialOption) (*GRPCClient, error) {
	if maxMsgBytes <= 0 {
		maxMsgBytes = common.MessageLimit(common.DefaultMaxPayloadBytes)
	}
	c := &GRPCClient{endpointURL: endpointURL, accessToken: accessToken, timeout: timeout, maxMsgBytes: maxMsgBytes}
	if err := c.InitGRPCClient(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient(opts ...grpc.DialOption) error {
	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
		grpc.WithDefaultCallOptions(
			grpc.MaxCallRecvMsgSize(s.maxMsgBytes),
			grpc.MaxCallSendMsgSize(s.maxMsgBytes),
		),
	}, opts...)

	conn, err := grpc.NewClient(s.endpointURL, dialOpts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewVaultServiceClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *GRPCClient) Seal(ctx context.Context, req *pb.SealRequest) (*pb.SealResponse, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.Seal(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) Unseal(ctx context.Context, req *pb.UnsealRequest) (*pb.UnsealResponse, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.Unseal(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) PeekInfo(ctx context.Context, id string) (*pb.PeekInfoResponse, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.PeekInfo(ctx, &pb.PeekInfoRequest{Id: id})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) Delete(ctx context.Context, id string) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if _, err := s.client.Delete(ctx, &pb.DeleteRequest{Id: id}); err != nil {
		return s.mapError(err)
	}
	return nil
}

// mapError restores vault sentinels first; whatever is left is a transport
// level status.
func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	if mapped := api.FromStatus(err); mapped != err {
		return mapped
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
