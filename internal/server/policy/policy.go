// Package policy evaluates and enforces the sharing policy of a sealed item:
// its expiry and its download quota.
package policy

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/sealvault/internal/common"
	"github.com/dmitrijs2005/sealvault/internal/server/models"
	"github.com/dmitrijs2005/sealvault/internal/server/repositories/items"
	"github.com/sethvargo/go-retry"
)

// Liveness is the consumability state of an item. Transitions only go
// forward: Available to QuotaExhausted or Expired, and anything to Gone.
type Liveness string

const (
	Available      Liveness = "available"
	QuotaExhausted Liveness = "quota_exhausted"
	Expired        Liveness = "expired"
	Gone           Liveness = "gone"
)

// Check is a pure liveness predicate. Expiry wins over quota exhaustion.
func Check(item *models.SealedItem, now time.Time) Liveness {
	if item == nil {
		return Gone
	}
	if item.ExpiresAt != nil && now.After(*item.ExpiresAt) {
		return Expired
	}
	if item.DownloadQuota != nil && item.DownloadCount >= *item.DownloadQuota {
		return QuotaExhausted
	}
	return Available
}

// Err maps a non-available liveness to its error kind, nil for Available.
func Err(l Liveness) error {
	switch l {
	case Available:
		return nil
	case QuotaExhausted:
		return common.ErrQuotaExhausted
	case Expired:
		return common.ErrExpired
	default:
		return common.ErrorNotFound
	}
}

// QuotaRemaining returns the number of downloads left, or nil when unlimited.
func QuotaRemaining(item *models.SealedItem) *int64 {
	if item.DownloadQuota == nil {
		return nil
	}
	left := *item.DownloadQuota - item.DownloadCount
	if left < 0 {
		left = 0
	}
	return &left
}

// DefaultConsumeRetries bounds how often a lost compare-and-increment is
// retried while the item still has free slots.
const DefaultConsumeRetries = 8

// Enforcer records consumptions through the repository's atomic conditional
// increment.
type Enforcer struct {
	repo    items.Repository
	now     func() time.Time
	retries uint64
}

func NewEnforcer(repo items.Repository, now func() time.Time, retries uint64) *Enforcer {
	if now == nil {
		now = time.Now
	}
	if retries == 0 {
		retries = DefaultConsumeRetries
	}
	return &Enforcer{repo: repo, now: now, retries: retries}
}

// RecordConsumption atomically takes one download slot of item.
//
// A lost race against a concurrent consumer reloads the item and tries again
// while it is still Available. When the reload shows the item exhausted,
// expired or deleted, the matching error is returned and nothing is counted.
// On success item.DownloadCount holds the count including this download.
func (e *Enforcer) RecordConsumption(ctx context.Context, item *models.SealedItem) error {
	expected := item.DownloadCount

	backoff := retry.WithMaxRetries(e.retries, retry.NewExponential(time.Millisecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		ok, err := e.repo.CompareAndIncrement(ctx, item.ID, expected, e.now())
		if err != nil {
			return fmt.Errorf("%w: %w", common.ErrStorageUnavailable, err)
		}
		if ok {
			return nil
		}

		current, err := e.repo.Get(ctx, item.ID)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return err
			}
			return fmt.Errorf("%w: %w", common.ErrStorageUnavailable, err)
		}
		if l := Check(current, e.now()); l != Available {
			return Err(l)
		}
		expected = current.DownloadCount
		return retry.RetryableError(errLostRace)
	})
	if errors.Is(err, errLostRace) {
		return fmt.Errorf("%w: too much contention on item %s", common.ErrStorageUnavailable, item.ID)
	}
	if err != nil {
		return err
	}
	item.DownloadCount = expected + 1
	return nil
}

var errLostRace = errors.New("lost consumption race")
