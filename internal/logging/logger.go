// Package logging is the structured logger shared by the escrow server and
// escrowctl. Logger has a log/slog and a zerolog implementation; New picks
// one from configuration.
//
// Values logged under a secret key (see IsSecretKey) are replaced with
// Redacted by both implementations. One-time codes are not secret keys: the
// development "log" notification sender prints them on purpose.
package logging

import "context"

// Logger is a context-aware, structured logger. The variadic args are
// key/value pairs:
//
//	log.Info(ctx, "key created", "key_id", id, "owner_type", t)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given pairs.
	With(args ...any) Logger
}

// ModuleKey tags every line of a component's child logger.
const ModuleKey = "module"

// ForModule returns the child logger of component name.
func ForModule(l Logger, name string) Logger {
	return l.With(ModuleKey, name)
}
