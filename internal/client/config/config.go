package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/keyescrow/internal/flagx"
	"github.com/dmitrijs2005/keyescrow/internal/timex"
	"gopkg.in/yaml.v3"
)

// Config holds runtime settings for escrowctl.
type Config struct {
	ServerEndpointAddr string
	Timeout            time.Duration
}

func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.Timeout = 10 * time.Second
}

// FileConfig is the on-disk form of Config. Absent keys keep the current
// values.
type FileConfig struct {
	ServerEndpointAddr *string         `json:"server_endpoint_addr" yaml:"server_endpoint_addr"`
	Timeout            *timex.Duration `json:"timeout" yaml:"timeout"`
}

// LoadConfig applies defaults and then the file at path, if any.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var fc FileConfig
	if flagx.IsYAML(path) {
		err = yaml.Unmarshal(data, &fc)
	} else {
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if fc.ServerEndpointAddr != nil {
		cfg.ServerEndpointAddr = *fc.ServerEndpointAddr
	}
	if fc.Timeout != nil {
		cfg.Timeout = time.Duration(fc.Timeout.Duration)
	}
	return cfg, nil
}
