package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/sealvault/internal/server/migrations"
	"github.com/dmitrijs2005/sealvault/internal/server/repositories/items"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// seams for testing
var (
	sqlOpen       = sql.Open
	runMigrations = migrations.Up
)

// SQLRepositoryManager serves PostgreSQL (pgx) and SQLite (modernc) backed
// repositories over one *sql.DB.
type SQLRepositoryManager struct {
	db    *sql.DB
	items items.Repository
}

// NewSQLRepositoryManager opens the database, migrates it and builds the
// repository for the dialect.
func NewSQLRepositoryManager(ctx context.Context, driver, dsn string) (*SQLRepositoryManager, error) {
	var (
		sqlDriver string
		dialect   migrations.Dialect
	)
	switch driver {
	case DriverPostgres:
		sqlDriver, dialect = "pgx", migrations.Postgres
	case DriverSQLite:
		sqlDriver, dialect = "sqlite", migrations.SQLite
	default:
		return nil, fmt.Errorf("unsupported sql driver %q", driver)
	}

	db, err := sqlOpen(sqlDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	if driver == DriverSQLite {
		// sqlite allows one writer; a single connection also keeps
		// in-memory databases alive and shared.
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	if err := runMigrations(ctx, db, dialect); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db migration error: %w", err)
	}

	m := &SQLRepositoryManager{db: db}
	if driver == DriverPostgres {
		m.items = items.NewPostgresRepository(db)
	} else {
		m.items = items.NewSQLiteRepository(db)
	}
	return m, nil
}

func (m *SQLRepositoryManager) Items() items.Repository {
	return m.items
}

func (m *SQLRepositoryManager) Close() error {
	return m.db.Close()
}
