package grpc

import (
	"context"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const requestIDKey ctxKey = "requestID"

// RequestIDHeader is the metadata key carrying the caller's request id.
const RequestIDHeader = "x-request-id"

// RequestID returns the id assigned to the current call.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

func incomingRequestID(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(RequestIDHeader); len(values) > 0 && values[0] != "" {
			return values[0]
		}
	}
	return uuid.NewString()
}

// loggingInterceptor tags the call with a request id and logs its outcome.
// Request and response bodies carry PINs, codes and keys and are never logged.
func (s *GRPCServer) loggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	id := incomingRequestID(ctx)
	ctx = context.WithValue(ctx, requestIDKey, id)
	_ = grpc.SetHeader(ctx, metadata.Pairs(RequestIDHeader, id))

	start := time.Now()
	resp, err := handler(ctx, req)

	code := status.Code(err)
	args := []any{"method", info.FullMethod, "request_id", id, "code", code.String(), "duration", time.Since(start)}
	switch code {
	case codes.OK:
		s.logger.Info(ctx, "rpc", args...)
	case codes.Internal, codes.Unknown:
		s.logger.Error(ctx, "rpc", args...)
	default:
		s.logger.Warn(ctx, "rpc", args...)
	}

	return resp, err
}

// recoveryInterceptor turns a handler panic into an Internal status.
func (s *GRPCServer) recoveryInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error(ctx, "panic in handler", "method", info.FullMethod, "panic", r)
			resp, err = nil, status.Error(codes.Internal, "internal error")
		}
	}()
	return handler(ctx, req)
}
