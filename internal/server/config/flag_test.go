package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"cmd",
				"-a", "127.0.0.1:9090", "-d", "db", "-s", "sqlite", "-l", "debug", "-r", "eu-west-1",
				"-k", "a2V5", "-t", "5", "-w", "24h", "-L", "720h",
			},
			expected: &Config{
				EndpointAddrGRPC:   "127.0.0.1:9090",
				DatabaseDSN:        "db",
				StoreBackend:       "sqlite",
				LogLevel:           "debug",
				AWSRegion:          "eu-west-1",
				SealerKey:          "a2V5",
				RateLimitThreshold: 5,
				RateLimitWindow:    24 * time.Hour,
				TimeLockDuration:   720 * time.Hour,
			},
		},
		{
			name:     "foreign flags are ignored",
			args:     []string{"cmd", "-c", "escrow.yaml", "-x", "1", "-a", ":1"},
			expected: &Config{EndpointAddrGRPC: ":1"},
		},
		{
			name:        "bad duration",
			args:        []string{"cmd", "-w", "soon"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config) })
				return
			}
			require.NotPanics(t, func() { parseFlags(config) })
			assert.Empty(t, cmp.Diff(config, tt.expected))
		})
	}
}
