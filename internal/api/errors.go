// Package api holds the status detail vocabulary shared by the escrow gRPC
// server and its clients. The messages and service stubs are generated into
// internal/proto from api/escrow/v1/escrow.proto.
package api

import (
	"time"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/status"
)

// Status detail vocabulary for rate-limit and time-lock rejections.
const (
	ErrorDomain = "keyescrow"

	ReasonRateLimited = "RATE_LIMITED"
	ReasonTimeLocked  = "TIME_LOCKED"

	MetaCooldownUntil = "cooldown_until"
	MetaLockedUntil   = "locked_until"
)

// RetryDeadline reads the deadline carried by a rate-limit or time-lock
// status.
func RetryDeadline(err error) (time.Time, bool) {
	st, ok := status.FromError(err)
	if !ok {
		return time.Time{}, false
	}
	for _, d := range st.Details() {
		info, ok := d.(*errdetails.ErrorInfo)
		if !ok || info.Domain != ErrorDomain {
			continue
		}
		for _, key := range []string{MetaCooldownUntil, MetaLockedUntil} {
			if v, ok := info.Metadata[key]; ok {
				t, err := time.Parse(time.RFC3339, v)
				return t, err == nil
			}
		}
	}
	return time.Time{}, false
}
