package items

import (
	"bytes"
	"fmt"
	"time"

	"github.com/dmitrijs2005/sealvault/internal/common"
	"github.com/dmitrijs2005/sealvault/internal/server/models"
)

// record is the flat, storable form of a SealedItem used by the key-value
// backends.
type record struct {
	ID            string                `json:"id"`
	BlobKey       string                `json:"blob_key"`
	IV            []byte                `json:"iv"`
	Mode          models.CredentialMode `json:"credential_mode"`
	Verifier      []byte                `json:"verifier,omitempty"`
	DownloadQuota *int64                `json:"download_quota,omitempty"`
	DownloadCount int64                 `json:"download_count"`
	ExpiresAt     *time.Time            `json:"expires_at,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
	OwnerID       string                `json:"owner_id,omitempty"`
	FileName      string                `json:"file_name,omitempty"`
	ContentType   string                `json:"content_type,omitempty"`
	Size          int64                 `json:"size"`
}

func toRecord(i *models.SealedItem) (*record, error) {
	if i.Credential == nil {
		return nil, fmt.Errorf("%w: item %s has no credential", common.ErrValidation, i.ID)
	}
	r := &record{
		ID:            i.ID,
		BlobKey:       i.BlobKey,
		IV:            bytes.Clone(i.IV),
		Mode:          i.Credential.Mode(),
		Verifier:      bytes.Clone(models.VerifierOf(i.Credential)),
		DownloadCount: i.DownloadCount,
		CreatedAt:     i.CreatedAt,
		OwnerID:       i.OwnerID,
		FileName:      i.FileName,
		ContentType:   i.ContentType,
		Size:          i.Size,
	}
	if i.DownloadQuota != nil {
		q := *i.DownloadQuota
		r.DownloadQuota = &q
	}
	if i.ExpiresAt != nil {
		e := *i.ExpiresAt
		r.ExpiresAt = &e
	}
	return r, nil
}

func (r *record) toItem() (*models.SealedItem, error) {
	cred, ok := models.NewCredential(r.Mode, bytes.Clone(r.Verifier))
	if !ok {
		return nil, fmt.Errorf("%w: item %s has inconsistent credential", common.ErrMalformedPayload, r.ID)
	}
	i := &models.SealedItem{
		ID:            r.ID,
		BlobKey:       r.BlobKey,
		IV:            bytes.Clone(r.IV),
		Credential:    cred,
		DownloadCount: r.DownloadCount,
		CreatedAt:     r.CreatedAt,
		OwnerID:       r.OwnerID,
		FileName:      r.FileName,
		ContentType:   r.ContentType,
		Size:          r.Size,
	}
	if r.DownloadQuota != nil {
		q := *r.DownloadQuota
		i.DownloadQuota = &q
	}
	if r.ExpiresAt != nil {
		e := *r.ExpiresAt
		i.ExpiresAt = &e
	}
	return i, nil
}

// consumable mirrors the WHERE clause of the SQL conditional update.
func (r *record) consumable(expected int64, now time.Time) bool {
	if r.DownloadCount != expected {
		return false
	}
	if r.DownloadQuota != nil && r.DownloadCount >= *r.DownloadQuota {
		return false
	}
	if r.ExpiresAt != nil && now.After(*r.ExpiresAt) {
		return false
	}
	return true
}

func (r *record) expiredAt(now time.Time) bool {
	return r.ExpiresAt != nil && r.ExpiresAt.Before(now)
}
