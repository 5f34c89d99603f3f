package items

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/sealvault/internal/common"
	"github.com/dmitrijs2005/sealvault/internal/dbx"
	"github.com/dmitrijs2005/sealvault/internal/server/models"
)

const sqliteItemColumns = `id, blob_key, iv, credential_mode, verifier, download_quota, download_count,
	expires_at_us, created_at_us, owner_id, file_name, content_type, size`

// SQLiteRepository stores items in SQLite. Timestamps are kept as unix
// microseconds so that comparisons in SQL are numeric.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, item *models.SealedItem) error {
	if item.Credential == nil {
		return fmt.Errorf("%w: item %s has no credential", common.ErrValidation, item.ID)
	}
	query := ` INSERT INTO sealed_items (id, blob_key, iv, credential_mode, verifier, download_quota, download_count,
			expires_at_us, created_at_us, owner_id, file_name, content_type, size)
		values (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		item.ID, item.BlobKey, item.IV, string(item.Credential.Mode()), nullBytes(models.VerifierOf(item.Credential)),
		nullInt64(item.DownloadQuota), item.DownloadCount, nullMicros(item.ExpiresAt), item.CreatedAt.UnixMicro(),
		item.OwnerID, item.FileName, item.ContentType, item.Size)
	if err != nil {
		return fmt.Errorf("failed to insert item: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Get(ctx context.Context, id string) (*models.SealedItem, error) {
	query := `select ` + sqliteItemColumns + ` from sealed_items where id=?`

	item, err := scanSQLiteItem(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, err
	}
	return item, nil
}

func (r *SQLiteRepository) CompareAndIncrement(ctx context.Context, id string, expected int64, now time.Time) (bool, error) {
	query := `update sealed_items set download_count = download_count + 1
		where id=? and download_count=?
			and (download_quota is null or download_count < download_quota)
			and (expires_at_us is null or expires_at_us >= ?)`

	result, err := r.db.ExecContext(ctx, query, id, expected, now.UnixMicro())
	if err != nil {
		return false, fmt.Errorf("failed to increment download count: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rowsAffected == 1, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `delete from sealed_items where id=?`, id); err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) SelectExpired(ctx context.Context, now time.Time, limit int) ([]*models.SealedItem, error) {
	query := `select ` + sqliteItemColumns + ` from sealed_items
		where expires_at_us is not null and expires_at_us < ?
		order by expires_at_us limit ?`

	rows, err := r.db.QueryContext(ctx, query, now.UnixMicro(), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to select expired items: %w", err)
	}
	defer rows.Close()

	var result []*models.SealedItem
	for rows.Next() {
		item, err := scanSQLiteItem(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func scanSQLiteItem(row rowScanner) (*models.SealedItem, error) {
	var (
		item      models.SealedItem
		mode      string
		verifier  []byte
		quota     sql.NullInt64
		expiresAt sql.NullInt64
		createdAt int64
	)
	err := row.Scan(&item.ID, &item.BlobKey, &item.IV, &mode, &verifier, &quota, &item.DownloadCount,
		&expiresAt, &createdAt, &item.OwnerID, &item.FileName, &item.ContentType, &item.Size)
	if err != nil {
		return nil, err
	}
	item.CreatedAt = time.UnixMicro(createdAt).UTC()
	if quota.Valid {
		item.DownloadQuota = &quota.Int64
	}
	if expiresAt.Valid {
		t := time.UnixMicro(expiresAt.Int64).UTC()
		item.ExpiresAt = &t
	}
	return withCredential(&item, models.CredentialMode(mode), verifier)
}

func nullMicros(p *time.Time) sql.NullInt64 {
	if p == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: p.UnixMicro(), Valid: true}
}
