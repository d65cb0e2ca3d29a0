package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/keyescrow/internal/flagx"
)

// parseFlags populates the most commonly overridden Config fields from
// command-line flags:
//
//	-a string     gRPC bind address (e.g. ":50051")
//	-d string     PostgreSQL DSN
//	-s string     store backend
//	-l string     log level
//	-r string     AWS region
//	-k string     base64 AES-256 sealer key
//	-t int        rate limit threshold
//	-w duration   rate limit window
//	-L duration   PIN reset time lock
//
// os.Args is filtered with flagx.FilterArgs first so flags owned by other
// components do not collide.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-l", "-r", "-k", "-t", "-w", "-L"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.StoreBackend, "s", config.StoreBackend, "store backend")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.StringVar(&config.AWSRegion, "r", config.AWSRegion, "AWS region")
	fs.StringVar(&config.SealerKey, "k", config.SealerKey, "sealer key (base64)")
	fs.IntVar(&config.RateLimitThreshold, "t", config.RateLimitThreshold, "failed attempts allowed per window")
	fs.DurationVar(&config.RateLimitWindow, "w", config.RateLimitWindow, "rate limit window")
	fs.DurationVar(&config.TimeLockDuration, "L", config.TimeLockDuration, "PIN reset time lock")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
