package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/keyescrow/internal/api"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// describe turns a call error into a message for the terminal.
func describe(err error, addr string) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	switch st.Code() {
	case codes.InvalidArgument:
		return errors.New("invalid input: check the identifier, key id, code and PIN format")
	case codes.NotFound:
		return errors.New("rejected: unknown key or owner, or wrong code or PIN")
	case codes.ResourceExhausted:
		if until, ok := api.RetryDeadline(err); ok {
			return fmt.Errorf("too many invalid attempts, retry after %s", until.Local().Format(time.RFC1123))
		}
		return errors.New("too many invalid attempts")
	case codes.FailedPrecondition:
		if until, ok := api.RetryDeadline(err); ok {
			return fmt.Errorf("PIN reset pending until %s; request a new reset-pin code after that", until.Local().Format(time.RFC1123))
		}
		return errors.New("PIN reset pending")
	case codes.Unavailable:
		return fmt.Errorf("server unavailable at %s", addr)
	case codes.DeadlineExceeded:
		return errors.New("request timed out")
	}
	return fmt.Errorf("server error: %s", st.Message())
}
