package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() *Config {
	return &Config{
		EndpointAddrGRPC:            ":50051",
		StorageDriver:               "sqlite",
		DatabaseDSN:                 "file:sealvault.db",
		BlobDriver:                  "local",
		BlobDir:                     "./data",
		S3AccessKey:                 "admin",
		S3SecretKey:                 "secretpassword",
		S3Bucket:                    "vault",
		S3Region:                    "us-east-1",
		S3BaseEndpoint:              "http://127.0.0.1:9000/",
		SecretKey:                   "secretKey",
		AccessTokenValidityDuration: 60 * time.Minute,
		MaxPayloadBytes:             100 << 20,
		ReapInterval:                time.Minute,
		ReapBatchSize:               100,
		ConsumeRetries:              8,
		LogLevel:                    "info",
	}
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()
	assert.Equal(t, defaults(), &c)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	c := LoadConfig()
	require.NotNil(t, c, "LoadConfig must not return nil")
	assert.Equal(t, defaults(), c)
}

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTemp(t, "cfg.yaml", "endpoint_addr_grpc: \":7000\"\nstorage_driver: badger\nreap_batch_size: 5\n")
	os.Args = []string{"testbin", "-c", path, "-a", ":8000"}

	c := LoadConfig()

	assert.Equal(t, ":8000", c.EndpointAddrGRPC)
	assert.Equal(t, "badger", c.StorageDriver)
	assert.Equal(t, 5, c.ReapBatchSize)
	assert.Equal(t, "local", c.BlobDriver)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero reap interval", func(c *Config) { c.ReapInterval = 0 }},
		{"negative reap interval", func(c *Config) { c.ReapInterval = -time.Second }},
		{"zero payload limit", func(c *Config) { c.MaxPayloadBytes = 0 }},
		{"zero token validity", func(c *Config) { c.AccessTokenValidityDuration = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := defaults()
			tt.mutate(c)
			assert.ErrorIs(t, c.Validate(), ErrInvalidConfig)
		})
	}

	assert.NoError(t, defaults().Validate())
}

func TestLoadConfig_PanicsOnZeroReapInterval(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin", "-i", "0"}
	require.Panics(t, func() { LoadConfig() })

	path := writeTemp(t, "cfg.yaml", "reap_interval: 0\n")
	os.Args = []string{"testbin", "-c", path}
	require.Panics(t, func() { LoadConfig() })
}
