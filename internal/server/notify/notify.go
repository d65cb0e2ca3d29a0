// Package notify delivers one-time codes to owners: SMS for phone numbers,
// email for addresses, or a NATS subject for an external delivery worker.
package notify

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/keyescrow/internal/logging"
	"github.com/dmitrijs2005/keyescrow/internal/server/models"
)

const (
	EmailSubject = "Verify your email address"
	bodyFormat   = "Your verification code is: %s"
)

// Body renders the message text for code.
func Body(code string) string {
	return fmt.Sprintf(bodyFormat, code)
}

// Sender delivers code to destination.
type Sender interface {
	Send(ctx context.Context, destination, code string) error
}

// Router picks a Sender by owner type. Delivery failures are logged and
// swallowed: the code is already persisted and the caller can ask for a new
// one.
type Router struct {
	senders map[models.OwnerType]Sender
	logger  logging.Logger
}

func NewRouter(sms, email Sender, logger logging.Logger) *Router {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Router{
		senders: map[models.OwnerType]Sender{
			models.OwnerPhone: sms,
			models.OwnerEmail: email,
		},
		logger: logging.ForModule(logger, "notify"),
	}
}

// Dispatch sends code to destination over the channel for t.
func (r *Router) Dispatch(ctx context.Context, t models.OwnerType, destination, code string) {
	s, ok := r.senders[t]
	if !ok || s == nil {
		r.logger.Error(ctx, "no sender for owner type", "type", string(t))
		return
	}
	if err := s.Send(ctx, destination, code); err != nil {
		r.logger.Error(ctx, "code dispatch failed", "type", string(t), "error", err)
	}
}

// LogSender writes codes to the log. Development only.
type LogSender struct {
	logger logging.Logger
}

func NewLogSender(logger logging.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(ctx context.Context, destination, code string) error {
	s.logger.Info(ctx, "one-time code", "destination", destination, "code", code)
	return nil
}
