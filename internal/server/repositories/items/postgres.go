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

const pgItemColumns = `id, blob_key, iv, credential_mode, verifier, download_quota, download_count,
	expires_at, created_at, owner_id, file_name, content_type, size`

// PostgresRepository implements item storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new sealed item row.
func (r *PostgresRepository) Create(ctx context.Context, item *models.SealedItem) error {
	if item.Credential == nil {
		return fmt.Errorf("%w: item %s has no credential", common.ErrValidation, item.ID)
	}
	query := `
		INSERT INTO sealed_items (id, blob_key, iv, credential_mode, verifier, download_quota, download_count,
			expires_at, created_at, owner_id, file_name, content_type, size)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err := r.db.ExecContext(ctx, query,
		item.ID, item.BlobKey, item.IV, string(item.Credential.Mode()), nullBytes(models.VerifierOf(item.Credential)),
		nullInt64(item.DownloadQuota), item.DownloadCount, nullTime(item.ExpiresAt), item.CreatedAt,
		item.OwnerID, item.FileName, item.ContentType, item.Size)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Get loads a single item by id.
func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.SealedItem, error) {
	query := `SELECT ` + pgItemColumns + ` FROM sealed_items WHERE id = $1`

	item, err := scanPostgresItem(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, err
	}
	return item, nil
}

// CompareAndIncrement performs the conditional update in a single statement,
// so the row lock taken by UPDATE serializes concurrent consumers.
func (r *PostgresRepository) CompareAndIncrement(ctx context.Context, id string, expected int64, now time.Time) (bool, error) {
	query := `
		UPDATE sealed_items SET download_count = download_count + 1
		WHERE id = $1 AND download_count = $2
			AND (download_quota IS NULL OR download_count < download_quota)
			AND (expires_at IS NULL OR expires_at >= $3)
	`
	res, err := r.db.ExecContext(ctx, query, id, expected, now)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fmt.Errorf("unexpected rows affected: %d", n)
	}
}

// Delete removes the item row; a missing row is not an error.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM sealed_items WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	return nil
}

// SelectExpired returns up to limit items with expires_at before now, oldest first.
func (r *PostgresRepository) SelectExpired(ctx context.Context, now time.Time, limit int) ([]*models.SealedItem, error) {
	query := `SELECT ` + pgItemColumns + ` FROM sealed_items
		WHERE expires_at IS NOT NULL AND expires_at < $1
		ORDER BY expires_at LIMIT $2`

	rows, err := r.db.QueryContext(ctx, query, now, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to select expired items: %w", err)
	}
	defer rows.Close()

	var result []*models.SealedItem
	for rows.Next() {
		item, err := scanPostgresItem(rows)
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

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPostgresItem(row rowScanner) (*models.SealedItem, error) {
	var (
		item      models.SealedItem
		mode      string
		verifier  []byte
		quota     sql.NullInt64
		expiresAt sql.NullTime
	)
	err := row.Scan(&item.ID, &item.BlobKey, &item.IV, &mode, &verifier, &quota, &item.DownloadCount,
		&expiresAt, &item.CreatedAt, &item.OwnerID, &item.FileName, &item.ContentType, &item.Size)
	if err != nil {
		return nil, err
	}
	if quota.Valid {
		item.DownloadQuota = &quota.Int64
	}
	if expiresAt.Valid {
		item.ExpiresAt = &expiresAt.Time
	}
	return withCredential(&item, models.CredentialMode(mode), verifier)
}

func withCredential(item *models.SealedItem, mode models.CredentialMode, verifier []byte) (*models.SealedItem, error) {
	cred, ok := models.NewCredential(mode, verifier)
	if !ok {
		return nil, fmt.Errorf("%w: item %s has inconsistent credential", common.ErrMalformedPayload, item.ID)
	}
	item.Credential = cred
	return item, nil
}

func nullBytes(b []byte) any {
	if len(b) == 0 {
		return nil
	}
	return b
}

func nullInt64(p *int64) sql.NullInt64 {
	if p == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *p, Valid: true}
}

func nullTime(p *time.Time) sql.NullTime {
	if p == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *p, Valid: true}
}
