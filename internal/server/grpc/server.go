package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/keyescrow/internal/logging"
	pb "github.com/dmitrijs2005/keyescrow/internal/proto"
	"github.com/dmitrijs2005/keyescrow/internal/server/models"
	"github.com/dmitrijs2005/keyescrow/internal/timex"
	"google.golang.org/grpc"
)

// Escrow is implemented by escrow.Service.
type Escrow interface {
	CreateKey(ctx context.Context, identifier, pin string) (string, error)
	AddOwner(ctx context.Context, keyID, identifier, pin string) error
	VerifyOwner(ctx context.Context, keyID, identifier, code string) error
	RequestCode(ctx context.Context, keyID, identifier string, op models.Operation) error
	ReadKey(ctx context.Context, keyID, identifier, code, pin string) (*models.VaultKey, error)
	ChangePin(ctx context.Context, keyID, identifier, code, pin, newPin string) error
	ResetPin(ctx context.Context, keyID, identifier, code, newPin string) error
	RemoveKey(ctx context.Context, keyID, identifier, code, pin string) error
	RemoveOwner(ctx context.Context, keyID, identifier, code, pin string) error
}

type GRPCServer struct {
	address string
	escrow  Escrow
	clock   timex.Clock
	logger  logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, es Escrow, clock timex.Clock) *GRPCServer {
	if clock == nil {
		clock = timex.SystemClock
	}
	return &GRPCServer{
		address: a,
		logger:  logging.ForModule(l, "grpc_server"),
		escrow:  es,
		clock:   clock,
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.recoveryInterceptor, s.loggingInterceptor))
	pb.RegisterEscrowServer(srv, &handler{server: s})
	return srv
}

// Serve accepts connections on lis until ctx is cancelled.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(context.Background(), "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	return srv.Serve(lis)
}

func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}
