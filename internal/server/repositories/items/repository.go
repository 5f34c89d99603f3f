// Package items persists SealedItem metadata. Every backend implements the
// same contract, including an atomic conditional increment of the download
// counter that is the vault's only cross-request synchronization point.
package items

import (
	"context"
	"time"

	"github.com/dmitrijs2005/sealvault/internal/server/models"
)

// Repository is the storage contract consumed by the vault.
type Repository interface {
	// Create inserts a new item. IDs are never reused.
	Create(ctx context.Context, item *models.SealedItem) error
	// Get returns the item or common.ErrorNotFound.
	Get(ctx context.Context, id string) (*models.SealedItem, error)
	// CompareAndIncrement increments the download count of id by one, but only
	// when the stored count still equals expected, the quota (if any) has a
	// free slot and the item has not expired at now. It reports whether the
	// increment happened; false means a concurrent caller won or the item is
	// no longer consumable.
	CompareAndIncrement(ctx context.Context, id string, expected int64, now time.Time) (bool, error)
	// Delete removes the item. Deleting a missing item is not an error.
	Delete(ctx context.Context, id string) error
	// SelectExpired returns up to limit items whose expiry is before now.
	SelectExpired(ctx context.Context, now time.Time, limit int) ([]*models.SealedItem, error)
}
