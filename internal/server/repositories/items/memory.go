package items

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/sealvault/internal/common"
	"github.com/dmitrijs2005/sealvault/internal/server/models"
)

// MemoryRepository keeps items in process memory. Its increment is atomic
// only within one process; use a database backend for multiple workers.
type MemoryRepository struct {
	mu    sync.Mutex
	items map[string]*record
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[string]*record)}
}

func (r *MemoryRepository) Create(ctx context.Context, item *models.SealedItem) error {
	rec, err := toRecord(item)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[rec.ID]; ok {
		return fmt.Errorf("item %s already exists", rec.ID)
	}
	r.items[rec.ID] = rec
	return nil
}

func (r *MemoryRepository) Get(ctx context.Context, id string) (*models.SealedItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.items[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return rec.toItem()
}

func (r *MemoryRepository) CompareAndIncrement(ctx context.Context, id string, expected int64, now time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.items[id]
	if !ok || !rec.consumable(expected, now) {
		return false, nil
	}
	rec.DownloadCount++
	return true, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, id)
	return nil
}

func (r *MemoryRepository) SelectExpired(ctx context.Context, now time.Time, limit int) ([]*models.SealedItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var expired []*record
	for _, rec := range r.items {
		if rec.expiredAt(now) {
			expired = append(expired, rec)
		}
	}
	sort.Slice(expired, func(a, b int) bool { return expired[a].ExpiresAt.Before(*expired[b].ExpiresAt) })
	if limit > 0 && len(expired) > limit {
		expired = expired[:limit]
	}

	result := make([]*models.SealedItem, 0, len(expired))
	for _, rec := range expired {
		item, err := rec.toItem()
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, nil
}
