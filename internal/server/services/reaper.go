package services

import (
	"context"
	"time"

	"github.com/dmitrijs2005/sealvault/internal/logging"
	"github.com/dmitrijs2005/sealvault/internal/server/blobstore"
	"github.com/dmitrijs2005/sealvault/internal/server/repositories/items"
)

const DefaultReapBatchSize = 100

// Reaper purges expired items: their ciphertext blob and then their row.
type Reaper struct {
	repo   items.Repository
	blobs  blobstore.Store
	logger logging.Logger
	batch  int
	now    func() time.Time
}

func NewReaper(repo items.Repository, blobs blobstore.Store, logger logging.Logger, batch int, now func() time.Time) *Reaper {
	if batch <= 0 {
		batch = DefaultReapBatchSize
	}
	if now == nil {
		now = time.Now
	}
	return &Reaper{repo: repo, blobs: blobs, logger: logger.With("module", "reaper"), batch: batch, now: now}
}

// RunOnce removes every item that is expired at the time of the call and
// returns how many were removed. A failure on one item is logged and the item
// is skipped; only a failure to list expired items is returned.
func (r *Reaper) RunOnce(ctx context.Context) (int, error) {
	now := r.now()
	removed := 0
	skipped := make(map[string]struct{})

	for {
		limit := r.batch + len(skipped)
		expired, err := r.repo.SelectExpired(ctx, now, limit)
		if err != nil {
			return removed, err
		}

		changed := false
		for _, item := range expired {
			if _, ok := skipped[item.ID]; ok {
				continue
			}
			if err := removeItem(ctx, r.repo, r.blobs, item); err != nil {
				r.logger.Error(ctx, "error reaping item", "id", item.ID, "error", err)
				skipped[item.ID] = struct{}{}
				changed = true
				continue
			}
			removed++
			changed = true
		}

		if !changed || len(expired) < limit {
			break
		}
		if ctx.Err() != nil {
			return removed, ctx.Err()
		}
	}

	if removed > 0 {
		r.logger.Info(ctx, "expired items reaped", "count", removed)
	}
	return removed, nil
}

// Run calls RunOnce every interval until ctx is cancelled.
func (r *Reaper) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := r.RunOnce(ctx); err != nil {
				r.logger.Error(ctx, "reaper pass failed", "error", err)
			}
		}
	}
}
