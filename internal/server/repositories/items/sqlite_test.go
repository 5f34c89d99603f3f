package items

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"testing"

	"github.com/dmitrijs2005/sealvault/internal/common"
	"github.com/dmitrijs2005/sealvault/internal/server/migrations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func newSQLiteDB(t *testing.T) *sql.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, migrations.Up(context.Background(), db, migrations.SQLite))
	return db
}

func TestSQLiteRepository_Contract(t *testing.T) {
	runContract(t, func(t *testing.T) Repository { return NewSQLiteRepository(newSQLiteDB(t)) })
}

func TestSQLiteRepository_InconsistentCredentialIsMalformed(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewSQLiteRepository(db)

	// bypass the table CHECK by disabling it for this connection
	_, err := db.Exec(`PRAGMA ignore_check_constraints = ON`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO sealed_items (id, blob_key, iv, credential_mode, created_at_us)
		VALUES ('bad', 'k', x'00', 'passphrase', 0)`)
	require.NoError(t, err)

	_, err = repo.Get(context.Background(), "bad")
	assert.ErrorIs(t, err, common.ErrMalformedPayload)
}
