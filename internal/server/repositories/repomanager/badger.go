package repomanager

import (
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/dmitrijs2005/sealvault/internal/server/repositories/items"
)

var badgerOpen = badger.Open

// BadgerRepositoryManager serves repositories from an embedded badger store.
type BadgerRepositoryManager struct {
	db    *badger.DB
	items items.Repository
}

// NewBadgerRepositoryManager opens the store in dir; an empty dir keeps it in
// memory.
func NewBadgerRepositoryManager(dir string) (*BadgerRepositoryManager, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}

	db, err := badgerOpen(opts)
	if err != nil {
		return nil, fmt.Errorf("badger open error: %w", err)
	}
	return &BadgerRepositoryManager{db: db, items: items.NewBadgerRepository(db)}, nil
}

func (m *BadgerRepositoryManager) Items() items.Repository {
	return m.items
}

func (m *BadgerRepositoryManager) Close() error {
	return m.db.Close()
}
