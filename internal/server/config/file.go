package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/dmitrijs2005/sealvault/internal/flagx"
	"github.com/dmitrijs2005/sealvault/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk shape of the server configuration. Durations use
// timex.Duration, which accepts both strings such as "1m" and integer
// nanoseconds.
//
// It is only an intermediate DTO: it is pre-filled from the current Config so
// that keys missing from the file keep their previous values, and copied back
// after decoding.
type FileConfig struct {
	EndpointAddrGRPC            string         `json:"endpoint_addr_grpc" toml:"endpoint_addr_grpc" yaml:"endpoint_addr_grpc"`
	StorageDriver               string         `json:"storage_driver" toml:"storage_driver" yaml:"storage_driver"`
	DatabaseDSN                 string         `json:"database_dsn" toml:"database_dsn" yaml:"database_dsn"`
	BlobDriver                  string         `json:"blob_driver" toml:"blob_driver" yaml:"blob_driver"`
	BlobDir                     string         `json:"blob_dir" toml:"blob_dir" yaml:"blob_dir"`
	S3AccessKey                 string         `json:"s3_access_key" toml:"s3_access_key" yaml:"s3_access_key"`
	S3SecretKey                 string         `json:"s3_secret_key" toml:"s3_secret_key" yaml:"s3_secret_key"`
	S3Bucket                    string         `json:"s3_bucket" toml:"s3_bucket" yaml:"s3_bucket"`
	S3Region                    string         `json:"s3_region" toml:"s3_region" yaml:"s3_region"`
	S3BaseEndpoint              string         `json:"s3_base_endpoint" toml:"s3_base_endpoint" yaml:"s3_base_endpoint"`
	SecretKey                   string         `json:"secret_key" toml:"secret_key" yaml:"secret_key"`
	AccessTokenValidityDuration timex.Duration `json:"access_token_validity_duration" toml:"access_token_validity_duration" yaml:"access_token_validity_duration"`
	MaxPayloadBytes             int64          `json:"max_payload_bytes" toml:"max_payload_bytes" yaml:"max_payload_bytes"`
	ReapInterval                timex.Duration `json:"reap_interval" toml:"reap_interval" yaml:"reap_interval"`
	ReapBatchSize               int            `json:"reap_batch_size" toml:"reap_batch_size" yaml:"reap_batch_size"`
	ConsumeRetries              uint64         `json:"consume_retries" toml:"consume_retries" yaml:"consume_retries"`
	LogLevel                    string         `json:"log_level" toml:"log_level" yaml:"log_level"`
}

func newFileConfig(c *Config) *FileConfig {
	return &FileConfig{
		EndpointAddrGRPC:            c.EndpointAddrGRPC,
		StorageDriver:               c.StorageDriver,
		DatabaseDSN:                 c.DatabaseDSN,
		BlobDriver:                  c.BlobDriver,
		BlobDir:                     c.BlobDir,
		S3AccessKey:                 c.S3AccessKey,
		S3SecretKey:                 c.S3SecretKey,
		S3Bucket:                    c.S3Bucket,
		S3Region:                    c.S3Region,
		S3BaseEndpoint:              c.S3BaseEndpoint,
		SecretKey:                   c.SecretKey,
		AccessTokenValidityDuration: timex.Duration{Duration: c.AccessTokenValidityDuration},
		MaxPayloadBytes:             c.MaxPayloadBytes,
		ReapInterval:                timex.Duration{Duration: c.ReapInterval},
		ReapBatchSize:               c.ReapBatchSize,
		ConsumeRetries:              c.ConsumeRetries,
		LogLevel:                    c.LogLevel,
	}
}

func (f *FileConfig) apply(c *Config) {
	c.EndpointAddrGRPC = f.EndpointAddrGRPC
	c.StorageDriver = f.StorageDriver
	c.DatabaseDSN = f.DatabaseDSN
	c.BlobDriver = f.BlobDriver
	c.BlobDir = f.BlobDir
	c.S3AccessKey = f.S3AccessKey
	c.S3SecretKey = f.S3SecretKey
	c.S3Bucket = f.S3Bucket
	c.S3Region = f.S3Region
	c.S3BaseEndpoint = f.S3BaseEndpoint
	c.SecretKey = f.SecretKey
	c.AccessTokenValidityDuration = f.AccessTokenValidityDuration.Duration
	c.MaxPayloadBytes = f.MaxPayloadBytes
	c.ReapInterval = f.ReapInterval.Duration
	c.ReapBatchSize = f.ReapBatchSize
	c.ConsumeRetries = f.ConsumeRetries
	c.LogLevel = f.LogLevel
}

// decodeFile unmarshals data into fc using the format implied by the file
// extension: .toml, .yaml/.yml, anything else as JSON.
func decodeFile(path string, data []byte, fc *FileConfig) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		_, err := toml.Decode(string(data), fc)
		return err
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, fc)
	default:
		return json.Unmarshal(data, fc)
	}
}

// parseFile overlays values from the config file named by -c or -config.
// Without the flag nothing is loaded. An unreadable or malformed file
// panics, as do invalid flag values.
func parseFile(config *Config) {
	path := flagx.ConfigFileFlag(os.Args[1:])
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	fc := newFileConfig(config)
	if err := decodeFile(path, data, fc); err != nil {
		panic(fmt.Errorf("config file %s: %w", path, err))
	}
	fc.apply(config)
}
