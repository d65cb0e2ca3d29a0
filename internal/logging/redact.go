package logging

import "log/slog"

// Redacted replaces the value of a secret key.
const Redacted = "[redacted]"

var secretKeys = map[string]struct{}{
	"pin":            {},
	"new_pin":        {},
	"pin_hash":       {},
	"encryption_key": {},
	"salt":           {},
	"sealer_key":     {},
}

// IsSecretKey reports whether values logged under key are redacted.
func IsSecretKey(key string) bool {
	_, ok := secretKeys[key]
	return ok
}

// redact returns args with the values of secret keys replaced. args is not
// modified.
func redact(args []any) []any {
	var out []any
	for i := 0; i < len(args); i++ {
		switch v := args[i].(type) {
		case slog.Attr:
			if IsSecretKey(v.Key) {
				out = copyOnce(out, args)
				out[i] = slog.String(v.Key, Redacted)
			}
		case string:
			if i+1 < len(args) && IsSecretKey(v) {
				out = copyOnce(out, args)
				out[i+1] = Redacted
			}
			i++
		}
	}
	if out == nil {
		return args
	}
	return out
}

func copyOnce(out, args []any) []any {
	if out != nil {
		return out
	}
	return append([]any(nil), args...)
}
