package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/keyescrow/internal/logging"
	"github.com/dmitrijs2005/keyescrow/internal/server/models"
	"github.com/nats-io/nats.go"
)

// Publisher is satisfied by *nats.Conn.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// Message is the payload published for a delivery worker.
type Message struct {
	Channel     models.OwnerType `json:"channel"`
	Destination string           `json:"destination"`
	Code        string           `json:"code"`
	Subject     string           `json:"subject,omitempty"`
	Body        string           `json:"body"`
}

// NATS publishes codes on subject.<channel>, leaving delivery to a worker.
type NATS struct {
	pub     Publisher
	subject string
	channel models.OwnerType
}

func NewNATS(pub Publisher, subject string, channel models.OwnerType) *NATS {
	return &NATS{pub: pub, subject: subject, channel: channel}
}

func (s *NATS) Send(ctx context.Context, destination, code string) error {
	msg := Message{
		Channel:     s.channel,
		Destination: destination,
		Code:        code,
		Body:        Body(code),
	}
	if s.channel == models.OwnerEmail {
		msg.Subject = EmailSubject
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	if err := s.pub.Publish(s.subject+"."+string(s.channel), data); err != nil {
		return fmt.Errorf("nats publish: %w", err)
	}
	return nil
}

// ConnectNATS opens a connection that logs its state changes.
func ConnectNATS(url string, logger logging.Logger) (*nats.Conn, error) {
	ctx := context.Background()
	conn, err := nats.Connect(url,
		nats.Name("keyescrow"),
		nats.ReconnectWait(2*time.Second),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			logger.Warn(ctx, "nats disconnected", "error", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info(ctx, "nats reconnected", "url", nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}
	return conn, nil
}
