// Package server wires configuration, storage, notification backends and the
// escrow services into a runnable gRPC server with graceful shutdown.
package server

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/dmitrijs2005/keyescrow/internal/logging"
	"github.com/dmitrijs2005/keyescrow/internal/server/awsx"
	"github.com/dmitrijs2005/keyescrow/internal/server/config"
	"github.com/dmitrijs2005/keyescrow/internal/server/escrow"
	"github.com/dmitrijs2005/keyescrow/internal/server/guard"
	"github.com/dmitrijs2005/keyescrow/internal/server/keys"
	"github.com/dmitrijs2005/keyescrow/internal/server/models"
	"github.com/dmitrijs2005/keyescrow/internal/server/notify"
	"github.com/dmitrijs2005/keyescrow/internal/server/owners"
	"github.com/dmitrijs2005/keyescrow/internal/server/salt"
	"github.com/dmitrijs2005/keyescrow/internal/server/sealer"
	"github.com/dmitrijs2005/keyescrow/internal/server/shared/db"
	"github.com/dmitrijs2005/keyescrow/internal/timex"
	"github.com/nats-io/nats.go"

	gs "github.com/dmitrijs2005/keyescrow/internal/server/grpc"
)

const gcInterval = 10 * time.Minute

type App struct {
	config  *config.Config
	logger  logging.Logger
	repos   db.RepositoryManager
	nats    *nats.Conn
	escrow  *escrow.Service
	server  *gs.GRPCServer
	loadAWS db.AWSConfigFunc
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	return newApp(ctx, c, os.Stdout)
}

func newApp(ctx context.Context, c *config.Config, logOut io.Writer) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	logger, err := logging.New(logOut, logging.Options{Backend: c.LogBackend, Level: c.LogLevel, Format: c.LogFormat})
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	app := &App{config: c, logger: logger, loadAWS: awsLoader(c)}

	app.repos, err = db.NewRepositoryManager(ctx, c, app.loadAWS)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := app.build(ctx); err != nil {
		app.close(ctx)
		return nil, err
	}
	return app, nil
}

// awsLoader loads the AWS configuration on first use and shares it between
// every AWS backed component.
func awsLoader(c *config.Config) db.AWSConfigFunc {
	var (
		once sync.Once
		cfg  aws.Config
		err  error
	)
	return func(ctx context.Context) (aws.Config, error) {
		once.Do(func() {
			cfg, err = awsx.Load(ctx, awsx.Settings{
				Region:          c.AWSRegion,
				AccessKeyID:     c.S3RootUser,
				SecretAccessKey: c.S3RootPassword,
			})
		})
		return cfg, err
	}
}

func (app *App) build(ctx context.Context) error {
	c := app.config

	src, err := app.saltSource(ctx)
	if err != nil {
		return err
	}
	ownerSalt, err := salt.Resolve(ctx, src)
	if err != nil {
		return fmt.Errorf("salt init error: %w", err)
	}

	seal, err := app.newSealer(ctx)
	if err != nil {
		return fmt.Errorf("sealer init error: %w", err)
	}

	sms, err := app.sender(ctx, c.NotifySMS, models.OwnerPhone)
	if err != nil {
		return fmt.Errorf("sms sender init error: %w", err)
	}
	email, err := app.sender(ctx, c.NotifyEmail, models.OwnerEmail)
	if err != nil {
		return fmt.Errorf("email sender init error: %w", err)
	}

	clock := timex.SystemClock
	limiter := guard.NewRateLimiter(clock, c.RateLimitThreshold, c.RateLimitWindow)
	lock := guard.NewTimeLock(clock, c.TimeLockDuration)

	ks := keys.NewService(app.repos.Keys(), seal, limiter, lock, app.logger)
	ow := owners.NewService(app.repos.Owners(), ownerSalt, limiter, app.logger)
	app.escrow = escrow.NewService(ks, ow, notify.NewRouter(sms, email, app.logger), app.logger)
	app.server = gs.NewGRPCServer(c.EndpointAddrGRPC, app.logger, app.escrow, clock)
	return nil
}

func (app *App) saltSource(ctx context.Context) (salt.Source, error) {
	c := app.config
	switch c.SaltSource {
	case "config":
		return salt.Static(c.Salt), nil
	case "store":
		return salt.NewStore(app.repos.Store(), c.UsersTable), nil
	case "secretsmanager":
		cfg, err := app.loadAWS(ctx)
		if err != nil {
			return nil, err
		}
		return salt.NewSecretsManagerFromConfig(cfg, c.SaltSecretID), nil
	case "ssm":
		cfg, err := app.loadAWS(ctx)
		if err != nil {
			return nil, err
		}
		return salt.NewSSMFromConfig(cfg, c.SaltParameter), nil
	}
	return nil, fmt.Errorf("unknown salt source %q", c.SaltSource)
}

func (app *App) newSealer(ctx context.Context) (sealer.Sealer, error) {
	c := app.config
	switch c.SealerBackend {
	case "none":
		return sealer.None{}, nil
	case "aesgcm":
		return sealer.NewAESGCM(c.SealerKey)
	case "kms":
		cfg, err := app.loadAWS(ctx)
		if err != nil {
			return nil, err
		}
		return sealer.NewKMSFromConfig(cfg, c.KMSKeyID), nil
	}
	return nil, fmt.Errorf("unknown sealer backend %q", c.SealerBackend)
}

func (app *App) sender(ctx context.Context, backend string, channel models.OwnerType) (notify.Sender, error) {
	switch backend {
	case "log":
		return notify.NewLogSender(logging.ForModule(app.logger, "notify_log")), nil
	case "nats":
		if app.nats == nil {
			conn, err := notify.ConnectNATS(app.config.NATSURL, app.logger)
			if err != nil {
				return nil, err
			}
			app.nats = conn
		}
		return notify.NewNATS(app.nats, app.config.NATSSubject, channel), nil
	case "sns", "ses":
		cfg, err := app.loadAWS(ctx)
		if err != nil {
			return nil, err
		}
		if backend == "sns" {
			return notify.NewSMSFromConfig(cfg), nil
		}
		return notify.NewEmailFromConfig(cfg, app.config.SESFrom), nil
	}
	return nil, fmt.Errorf("unknown notification backend %q", backend)
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

type garbageCollector interface {
	CollectGarbage(discardRatio float64) error
}

// collectGarbage periodically compacts stores that need it (badger).
func (app *App) collectGarbage(ctx context.Context) {
	gc, ok := app.repos.Store().(garbageCollector)
	if !ok {
		return
	}

	ticker := time.NewTicker(gcInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := gc.CollectGarbage(0.5); err != nil {
				app.logger.Warn(ctx, "store garbage collection failed", "error", err)
			}
		}
	}
}

func (app *App) close(ctx context.Context) {
	if app.nats != nil {
		if err := app.nats.Drain(); err != nil {
			app.logger.Warn(ctx, "nats drain failed", "error", err)
		}
	}
	if app.repos != nil {
		if err := app.repos.Close(); err != nil {
			app.logger.Error(ctx, "store close failed", "error", err)
		}
	}
}

// Run serves until ctx is cancelled or a termination signal arrives, then
// releases storage and messaging connections.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "store", app.config.StoreBackend)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.collectGarbage(ctx)
	}()

	wg.Wait()

	app.close(context.Background())
	app.logger.Info(context.Background(), "App stopped")
}
