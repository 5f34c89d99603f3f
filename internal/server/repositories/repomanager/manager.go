// Package repomanager opens the configured metadata backend, prepares its
// schema and vends the items repository bound to it.
package repomanager

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/sealvault/internal/server/repositories/items"
)

// Supported metadata drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverBadger   = "badger"
	DriverMemory   = "memory"
)

// RepositoryManager owns a backend connection and the repositories on it.
type RepositoryManager interface {
	Items() items.Repository
	Close() error
}

// Open connects to driver at dsn and, for the SQL drivers, applies pending
// migrations. For badger the dsn is the data directory.
func Open(ctx context.Context, driver, dsn string) (RepositoryManager, error) {
	switch driver {
	case DriverPostgres, DriverSQLite:
		return NewSQLRepositoryManager(ctx, driver, dsn)
	case DriverBadger:
		return NewBadgerRepositoryManager(dsn)
	case DriverMemory:
		return NewInMemoryRepositoryManager(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}
