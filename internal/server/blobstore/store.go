// Package blobstore keeps ciphertext blobs outside the metadata store.
package blobstore

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Store is the byte-storage abstraction used by the vault.
type Store interface {
	// Write stores data under key, replacing nothing: keys are unique per item.
	Write(ctx context.Context, key string, data []byte) error
	// Read returns the blob or common.ErrorNotFound.
	Read(ctx context.Context, key string) ([]byte, error)
	// Remove deletes the blob. Removing a missing blob is not an error.
	Remove(ctx context.Context, key string) error
}

// StorageKey builds the object key for an item id, bucketed by creation date.
func StorageKey(id string, d time.Time) string {
	return fmt.Sprintf("items/%d/%d/%d/%s", d.Year(), d.Month(), d.Day(), id)
}

func validateKey(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("blob key is required")
	}
	if strings.HasPrefix(key, "/") {
		return fmt.Errorf("blob key must be relative")
	}
	for _, part := range strings.Split(key, "/") {
		if part == ".." || part == "." {
			return fmt.Errorf("invalid blob key")
		}
	}
	return nil
}
