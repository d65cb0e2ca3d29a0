package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/keyescrow/internal/api"
	"github.com/dmitrijs2005/keyescrow/internal/common"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/durationpb"
)

// toStatus converts a service error into the status sent to clients.
// Only the category leaves the server; internal detail is logged.
func (s *GRPCServer) toStatus(ctx context.Context, method string, err error) error {
	switch {
	case errors.Is(err, common.ErrorInvalidArgument):
		return status.Error(codes.InvalidArgument, "invalid argument")
	case errors.Is(err, common.ErrorNotFound), errors.Is(err, common.ErrorInvalidCredential):
		return status.Error(codes.NotFound, "invalid params")
	case errors.Is(err, common.ErrRateLimited):
		until, _ := common.Deadline(err)
		return s.retryStatus(codes.ResourceExhausted, "too many invalid attempts", api.ReasonRateLimited, api.MetaCooldownUntil, until)
	case errors.Is(err, common.ErrTimeLocked):
		until, _ := common.Deadline(err)
		return s.retryStatus(codes.FailedPrecondition, "time locked", api.ReasonTimeLocked, api.MetaLockedUntil, until)
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "canceled")
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "deadline exceeded")
	}

	s.logger.Error(ctx, "request failed", "method", method, "error", err)
	return status.Error(codes.Internal, "internal error")
}

func (s *GRPCServer) retryStatus(code codes.Code, msg, reason, key string, until time.Time) error {
	delay := until.Sub(s.clock.Now())
	if delay < 0 {
		delay = 0
	}

	st := status.New(code, msg)
	detailed, err := st.WithDetails(
		&errdetails.RetryInfo{RetryDelay: durationpb.New(delay)},
		&errdetails.ErrorInfo{
			Reason:   reason,
			Domain:   api.ErrorDomain,
			Metadata: map[string]string{key: until.UTC().Format(time.RFC3339)},
		},
	)
	if err != nil {
		return st.Err()
	}
	return detailed.Err()
}
