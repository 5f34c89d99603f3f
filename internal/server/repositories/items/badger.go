package items

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/dmitrijs2005/sealvault/internal/common"
	"github.com/dmitrijs2005/sealvault/internal/server/models"
)

const badgerItemPrefix = "item/"

// BadgerRepository stores items as JSON records in an embedded badger
// database. Badger's optimistic transactions make the conditional increment
// atomic: a concurrent writer on the same key aborts with ErrConflict.
type BadgerRepository struct {
	db *badger.DB
}

func NewBadgerRepository(db *badger.DB) *BadgerRepository {
	return &BadgerRepository{db: db}
}

func badgerKey(id string) []byte {
	return []byte(badgerItemPrefix + id)
}

func (r *BadgerRepository) Create(ctx context.Context, item *models.SealedItem) error {
	rec, err := toRecord(item)
	if err != nil {
		return err
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode item: %w", err)
	}

	err = r.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(badgerKey(rec.ID)); err == nil {
			return fmt.Errorf("item %s already exists", rec.ID)
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		return txn.Set(badgerKey(rec.ID), data)
	})
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *BadgerRepository) Get(ctx context.Context, id string) (*models.SealedItem, error) {
	var rec *record
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		rec, err = loadRecord(txn, id)
		return err
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return rec.toItem()
}

func (r *BadgerRepository) CompareAndIncrement(ctx context.Context, id string, expected int64, now time.Time) (bool, error) {
	updated := false
	err := r.db.Update(func(txn *badger.Txn) error {
		rec, err := loadRecord(txn, id)
		if err != nil {
			return err
		}
		if !rec.consumable(expected, now) {
			return nil
		}
		rec.DownloadCount++
		data, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		if err := txn.Set(badgerKey(id), data); err != nil {
			return err
		}
		updated = true
		return nil
	})
	switch {
	case err == nil:
		return updated, nil
	case errors.Is(err, badger.ErrConflict), errors.Is(err, common.ErrorNotFound):
		return false, nil
	default:
		return false, fmt.Errorf("db error: %w", err)
	}
}

func (r *BadgerRepository) Delete(ctx context.Context, id string) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(badgerKey(id))
	})
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *BadgerRepository) SelectExpired(ctx context.Context, now time.Time, limit int) ([]*models.SealedItem, error) {
	var expired []*record
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(badgerItemPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			rec := &record{}
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, rec)
			}); err != nil {
				return err
			}
			if rec.expiredAt(now) {
				expired = append(expired, rec)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
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

func loadRecord(txn *badger.Txn, id string) (*record, error) {
	it, err := txn.Get(badgerKey(id))
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, err
	}
	rec := &record{}
	if err := it.Value(func(val []byte) error {
		return json.Unmarshal(val, rec)
	}); err != nil {
		return nil, fmt.Errorf("decode item %s: %w", id, err)
	}
	return rec, nil
}
