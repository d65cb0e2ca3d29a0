package client

import (
	"context"
	"net"
	"testing"

	pb "github.com/dmitrijs2005/keyescrow/internal/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

// pingServer records the request id of the last Ping.
type pingServer struct {
	pb.UnimplementedEscrowServer
	requestID string
}

func (s *pingServer) Ping(ctx context.Context, _ *pb.PingRequest) (*pb.PingResponse, error) {
	md, _ := metadata.FromIncomingContext(ctx)
	if v := md.Get(RequestIDHeader); len(v) > 0 {
		s.requestID = v[0]
	}
	return &pb.PingResponse{Status: "OK"}, nil
}

func newTestClient(t *testing.T, srv pb.EscrowServer) *Client {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	gs := grpc.NewServer()
	pb.RegisterEscrowServer(gs, srv)
	go func() { _ = gs.Serve(lis) }()
	t.Cleanup(gs.Stop)

	c, err := New("passthrough:///bufnet", grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return lis.DialContext(ctx)
	}))
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestClient_PingSendsRequestID(t *testing.T) {
	srv := &pingServer{}
	c := newTestClient(t, srv)

	resp, err := c.Ping(context.Background(), &pb.PingRequest{})
	require.NoError(t, err)
	assert.Equal(t, "OK", resp.GetStatus())
	assert.Len(t, srv.requestID, 36)
}

func TestClient_KeepsCallerRequestID(t *testing.T) {
	srv := &pingServer{}
	c := newTestClient(t, srv)

	ctx := metadata.AppendToOutgoingContext(context.Background(), RequestIDHeader, "trace-1")
	_, err := c.Ping(ctx, &pb.PingRequest{})
	require.NoError(t, err)
	assert.Equal(t, "trace-1", srv.requestID)
}

func TestClient_UnimplementedMethod(t *testing.T) {
	c := newTestClient(t, &pingServer{})

	_, err := c.RemoveOwner(context.Background(), &pb.RemoveOwnerRequest{KeyId: "k"})
	assert.Equal(t, codes.Unimplemented, status.Code(err))
}
