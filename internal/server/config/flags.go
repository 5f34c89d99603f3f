package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/sealvault/internal/flagx"
)

var serverFlags = []string{
	"-a", "-m", "-d", "-o", "-f", "-u", "-p", "-b", "-g", "-e",
	"-s", "-t", "-l", "-i", "-n", "-r", "-v",
}

// parseFlags populates server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string    gRPC bind address (e.g., ":50051")
//	-m string    metadata driver: postgres, sqlite, badger, memory
//	-d string    database DSN (badger: directory)
//	-o string    blob driver: local, s3, memory
//	-f string    local blob root directory
//	-u string    S3 access key
//	-p string    S3 secret key
//	-b string    S3 bucket name
//	-g string    S3 region
//	-e string    S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//	-s string    JWT HMAC secret key
//	-t int       owner token validity, minutes
//	-l int       max payload size, bytes
//	-i duration  reaper interval (e.g., "30s")
//	-n int       reaper batch size
//	-r uint      download-count retry bound
//	-v string    log level: debug, info, warn, error
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, so the -c config flag and subcommands do not collide.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], serverFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.StorageDriver, "m", config.StorageDriver, "metadata storage driver")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.BlobDriver, "o", config.BlobDriver, "blob storage driver")
	fs.StringVar(&config.BlobDir, "f", config.BlobDir, "local blob directory")

	fs.StringVar(&config.S3AccessKey, "u", config.S3AccessKey, "S3 access key")
	fs.StringVar(&config.S3SecretKey, "p", config.S3SecretKey, "S3 secret key")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	accessTokenValidityDuration := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access_token_validity_duration (in minutes)")

	fs.Int64Var(&config.MaxPayloadBytes, "l", config.MaxPayloadBytes, "max payload size in bytes")
	fs.DurationVar(&config.ReapInterval, "i", config.ReapInterval, "reaper interval")
	fs.IntVar(&config.ReapBatchSize, "n", config.ReapBatchSize, "reaper batch size")
	fs.Uint64Var(&config.ConsumeRetries, "r", config.ConsumeRetries, "download-count retry bound")
	fs.StringVar(&config.LogLevel, "v", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.AccessTokenValidityDuration = time.Duration(*accessTokenValidityDuration) * time.Minute
}
