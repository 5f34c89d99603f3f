package blobstore

import (
	"context"
	"fmt"
)

// Supported blob drivers.
const (
	DriverLocal  = "local"
	DriverS3     = "s3"
	DriverMemory = "memory"
)

// Open builds the Store selected by driver. dir is used by the local driver,
// s3 by the s3 driver.
func Open(ctx context.Context, driver, dir string, s3 S3Config) (Store, error) {
	switch driver {
	case DriverLocal:
		return NewLocal(dir)
	case DriverS3:
		return NewS3(ctx, s3)
	case DriverMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown blob driver %q", driver)
	}
}
