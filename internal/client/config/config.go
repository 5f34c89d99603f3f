package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/dmitrijs2005/sealvault/internal/common"
	"github.com/dmitrijs2005/sealvault/internal/timex"
	"gopkg.in/yaml.v3"
)

// Environment variables read by Load.
const (
	EnvServer = "SEALVAULT_SERVER"
	EnvToken  = "SEALVAULT_TOKEN"
)

// Config holds runtime settings for the CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the vault gRPC endpoint.
//   - AccessToken: owner JWT sent with seal and delete.
//   - RequestTimeout: deadline applied to each call.
//   - MaxMessageBytes: largest gRPC message sent or received. It must be at
//     least the server's limit, or large unseal responses are refused after
//     the download was counted.
type Config struct {
	ServerEndpointAddr string
	AccessToken        string
	RequestTimeout     time.Duration
	MaxMessageBytes    int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.AccessToken = ""
	c.RequestTimeout = 30 * time.Second
	c.MaxMessageBytes = common.MessageLimit(common.DefaultMaxPayloadBytes)
}

type fileConfig struct {
	ServerEndpointAddr *string         `json:"server_endpoint_addr" toml:"server_endpoint_addr" yaml:"server_endpoint_addr"`
	AccessToken        *string         `json:"access_token" toml:"access_token" yaml:"access_token"`
	RequestTimeout     *timex.Duration `json:"request_timeout" toml:"request_timeout" yaml:"request_timeout"`
	MaxMessageBytes    *int            `json:"max_message_bytes" toml:"max_message_bytes" yaml:"max_message_bytes"`
}

// Load builds a Config from defaults, the optional file at path and the
// environment, later sources overriding earlier ones.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if path != "" {
		if err := cfg.overlayFile(path); err != nil {
			return nil, err
		}
	}

	if v := os.Getenv(EnvServer); v != "" {
		cfg.ServerEndpointAddr = v
	}
	if v := os.Getenv(EnvToken); v != "" {
		cfg.AccessToken = v
	}
	return cfg, nil
}

func (c *Config) overlayFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		_, err = toml.Decode(string(data), &fc)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if fc.ServerEndpointAddr != nil {
		c.ServerEndpointAddr = *fc.ServerEndpointAddr
	}
	if fc.AccessToken != nil {
		c.AccessToken = *fc.AccessToken
	}
	if fc.RequestTimeout != nil {
		c.RequestTimeout = fc.RequestTimeout.Duration
	}
	if fc.MaxMessageBytes != nil {
		if *fc.MaxMessageBytes <= 0 {
			return fmt.Errorf("parse config %s: max_message_bytes must be positive", path)
		}
		c.MaxMessageBytes = *fc.MaxMessageBytes
	}
	return nil
}
