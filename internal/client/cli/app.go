package cli

import (
	"bufio"
	"context"
	"io"

	"github.com/dmitrijs2005/keyescrow/internal/client/client"
	"github.com/dmitrijs2005/keyescrow/internal/client/config"
	pb "github.com/dmitrijs2005/keyescrow/internal/proto"
)

// Escrow is the service surface used by the commands. *client.Client
// implements it.
type Escrow interface {
	pb.EscrowClient
}

// Dialer opens a connection to the escrow service.
type Dialer func(cfg *config.Config) (Escrow, io.Closer, error)

// DialGRPC is the production Dialer.
func DialGRPC(cfg *config.Config) (Escrow, io.Closer, error) {
	c, err := client.New(cfg.ServerEndpointAddr)
	if err != nil {
		return nil, nil, err
	}
	return c, c, nil
}

// App is the state shared by the subcommands of one invocation.
type App struct {
	config   *config.Config
	escrow   Escrow
	closer   io.Closer
	reader   *bufio.Reader
	out      io.Writer
	noPrompt bool
}

func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

func (a *App) withTimeout(parent context.Context) (context.Context, context.CancelFunc) {
	if a.config.Timeout <= 0 {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, a.config.Timeout)
}

// secret returns value when the flag was given and prompts without echo
// otherwise. With --no-prompt a missing secret is empty.
func (a *App) secret(given bool, value, prompt string) (string, error) {
	if given || a.noPrompt {
		return value, nil
	}
	return GetSecret(a.out, prompt)
}

// code returns value when the flag was given and asks for it otherwise.
func (a *App) code(given bool, value string) (string, error) {
	if given || a.noPrompt {
		return value, nil
	}
	return GetSimpleText(a.reader, "Enter the code you received", a.out)
}
