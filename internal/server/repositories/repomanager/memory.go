package repomanager

import "github.com/dmitrijs2005/sealvault/internal/server/repositories/items"

// InMemoryRepositoryManager keeps everything in process memory. It is meant
// for development and tests: consumption counting is only atomic within
// this process.
type InMemoryRepositoryManager struct {
	items *items.MemoryRepository
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{items: items.NewMemoryRepository()}
}

func (m *InMemoryRepositoryManager) Items() items.Repository {
	return m.items
}

func (m *InMemoryRepositoryManager) Close() error {
	return nil
}
