package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func Test_parseFile_Formats(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	want := defaults()
	want.StorageDriver = "postgres"
	want.DatabaseDSN = "postgres://vault"
	want.BlobDriver = "s3"
	want.S3Bucket = "sealed"
	want.AccessTokenValidityDuration = 2 * time.Hour
	want.ReapInterval = 90 * time.Second
	want.MaxPayloadBytes = 4096

	files := map[string]string{
		"cfg.json": `{
			"storage_driver": "postgres",
			"database_dsn": "postgres://vault",
			"blob_driver": "s3",
			"s3_bucket": "sealed",
			"access_token_validity_duration": "2h",
			"reap_interval": 90000000000,
			"max_payload_bytes": 4096
		}`,
		"cfg.toml": `
storage_driver = "postgres"
database_dsn = "postgres://vault"
blob_driver = "s3"
s3_bucket = "sealed"
access_token_validity_duration = "2h"
reap_interval = "1m30s"
max_payload_bytes = 4096
`,
		"cfg.yml": `
storage_driver: postgres
database_dsn: postgres://vault
blob_driver: s3
s3_bucket: sealed
access_token_validity_duration: 2h
reap_interval: 90s
max_payload_bytes: 4096
`,
	}

	for name, content := range files {
		t.Run(name, func(t *testing.T) {
			os.Args = []string{"testbin", "-config", writeTemp(t, name, content)}

			cfg := defaults()
			parseFile(cfg)

			assert.Empty(t, cmp.Diff(want, cfg))
		})
	}
}

func Test_parseFile_NoFlagNoChanges(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := defaults()
	parseFile(cfg)
	assert.Equal(t, defaults(), cfg)
}

func Test_parseFile_Panics(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("invalid json", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", writeTemp(t, "bad.json", `{ this is not valid json`)}
		require.Panics(t, func() { parseFile(&Config{}) })
	})

	t.Run("invalid duration", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", writeTemp(t, "bad.toml", `reap_interval = "whenever"`)}
		require.Panics(t, func() { parseFile(&Config{}) })
	})

	t.Run("missing file", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", filepath.Join(t.TempDir(), "nope.yaml")}
		require.Panics(t, func() { parseFile(&Config{}) })
	})
}
