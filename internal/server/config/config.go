// Package config handles configuration for the server component,
// including defaults, a config file overlay and command-line flags.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/sealvault/internal/common"
)

// Config holds runtime settings for the sealvault server.
//
// Fields:
//   - EndpointAddrGRPC: bind address for the public gRPC endpoint.
//   - StorageDriver / DatabaseDSN: metadata backend ("postgres", "sqlite",
//     "badger" or "memory") and its DSN or directory.
//   - BlobDriver / BlobDir: ciphertext store ("local", "s3" or "memory") and the
//     root directory of the local store.
//   - S3AccessKey / S3SecretKey / S3Bucket / S3Region / S3BaseEndpoint: object
//     storage settings for the s3 driver.
//   - SecretKey: HMAC secret for signing owner JWTs (HS256). Do not use test defaults in prod.
//   - AccessTokenValidityDuration: lifetime of minted owner tokens.
//   - MaxPayloadBytes: largest plaintext accepted by Seal.
//   - ReapInterval / ReapBatchSize: how often and in which page size expired
//     items are purged.
//   - ConsumeRetries: bound on retries of a lost download-count race.
//   - LogLevel: minimum level of the JSON log (debug, info, warn, error).
type Config struct {
	EndpointAddrGRPC            string
	StorageDriver               string
	DatabaseDSN                 string
	BlobDriver                  string
	BlobDir                     string
	S3AccessKey                 string
	S3SecretKey                 string
	S3Bucket                    string
	S3Region                    string
	S3BaseEndpoint              string
	SecretKey                   string
	AccessTokenValidityDuration time.Duration
	MaxPayloadBytes             int64
	ReapInterval                time.Duration
	ReapBatchSize               int
	ConsumeRetries              uint64
	LogLevel                    string
}

// LoadDefaults populates Config with development defaults: SQLite metadata
// and blobs on the local filesystem.
// NOTE: SecretKey must be overridden in production.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50051"
	c.StorageDriver = "sqlite"
	c.DatabaseDSN = "file:sealvault.db"
	c.BlobDriver = "local"
	c.BlobDir = "./data"
	c.S3AccessKey = "admin"
	c.S3SecretKey = "secretpassword"
	c.S3Bucket = "vault"
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000/"
	c.SecretKey = "secretKey"
	c.AccessTokenValidityDuration = 60 * time.Minute
	c.MaxPayloadBytes = common.DefaultMaxPayloadBytes
	c.ReapInterval = time.Minute
	c.ReapBatchSize = 100
	c.ConsumeRetries = 8
	c.LogLevel = "info"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional config file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseFlags(cfg)
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	return cfg
}

// ErrInvalidConfig wraps every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate rejects values the server cannot run with.
func (c *Config) Validate() error {
	if c.ReapInterval <= 0 {
		return fmt.Errorf("%w: reap interval must be positive, got %s", ErrInvalidConfig, c.ReapInterval)
	}
	if c.MaxPayloadBytes <= 0 {
		return fmt.Errorf("%w: max payload bytes must be positive, got %d", ErrInvalidConfig, c.MaxPayloadBytes)
	}
	if c.AccessTokenValidityDuration <= 0 {
		return fmt.Errorf("%w: access token validity must be positive, got %s", ErrInvalidConfig, c.AccessTokenValidityDuration)
	}
	return nil
}
