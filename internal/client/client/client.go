// Package client connects escrowctl to the escrow gRPC service.
package client

import (
	"context"

	pb "github.com/dmitrijs2005/keyescrow/internal/proto"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
)

// RequestIDHeader matches the header the server reads its request id from.
const RequestIDHeader = "x-request-id"

type Client struct {
	pb.EscrowClient
	conn *grpc.ClientConn
}

// New creates a client for addr. The connection is established lazily on
// the first call.
func New(addr string, opts ...grpc.DialOption) (*Client, error) {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(requestIDInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, err
	}
	return &Client{EscrowClient: pb.NewEscrowClient(conn), conn: conn}, nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}

// requestIDInterceptor tags every call with a fresh request id so server
// logs can be matched to a single command.
func requestIDInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if md, ok := metadata.FromOutgoingContext(ctx); !ok || len(md.Get(RequestIDHeader)) == 0 {
		ctx = metadata.AppendToOutgoingContext(ctx, RequestIDHeader, uuid.NewString())
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}
