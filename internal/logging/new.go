package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rs/zerolog"
)

// Options selects the backend ("slog" or "zerolog"), the minimum level and
// the output format ("json" or "text").
type Options struct {
	Backend string
	Level   string
	Format  string
}

func parseSlogLevel(level string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return 0, fmt.Errorf("invalid log level %q", level)
	}
	return l, nil
}

// New builds a Logger writing to w.
func New(w io.Writer, opts Options) (Logger, error) {
	if opts.Level == "" {
		opts.Level = "info"
	}

	switch opts.Backend {
	case "", "slog":
		level, err := parseSlogLevel(opts.Level)
		if err != nil {
			return nil, err
		}
		ho := &slog.HandlerOptions{Level: level}
		var h slog.Handler
		if opts.Format == "text" {
			h = slog.NewTextHandler(w, ho)
		} else {
			h = slog.NewJSONHandler(w, ho)
		}
		return NewSlogLogger(slog.New(h)), nil

	case "zerolog":
		level, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q", opts.Level)
		}
		out := w
		if opts.Format == "text" {
			out = zerolog.ConsoleWriter{Out: w, NoColor: true}
		}
		return NewZerologLogger(zerolog.New(out).Level(level).With().Timestamp().Logger()), nil

	default:
		return nil, fmt.Errorf("unknown log backend %q", opts.Backend)
	}
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}
