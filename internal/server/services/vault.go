// Package services contains server-side business logic. This file implements
// VaultService, which seals payloads under a passphrase or a random access
// key and hands them back out under the item's download policy.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/sealvault/internal/common"
	"github.com/dmitrijs2005/sealvault/internal/cryptox"
	"github.com/dmitrijs2005/sealvault/internal/logging"
	"github.com/dmitrijs2005/sealvault/internal/server/blobstore"
	"github.com/dmitrijs2005/sealvault/internal/server/models"
	"github.com/dmitrijs2005/sealvault/internal/server/policy"
	"github.com/dmitrijs2005/sealvault/internal/server/repositories/items"
	"github.com/google/uuid"
)

// DefaultMaxPayloadBytes caps the plaintext accepted by Seal.
const DefaultMaxPayloadBytes = common.DefaultMaxPayloadBytes

var newItemID = func() string { return uuid.NewString() }

// SealOptions are the caller-chosen parameters of Seal. An empty Passphrase
// selects keyed-link mode.
type SealOptions struct {
	Passphrase []byte
	// Quota is nil for unlimited downloads.
	Quota *int64
	// TTL is nil for no time-based expiry. Zero expires the item at once.
	TTL *time.Duration

	OwnerID     string
	FileName    string
	ContentType string
}

// SealResult is returned by Seal. AccessKey is set only for keyed links and
// is the only copy of the key; the vault keeps nothing it could decrypt with.
type SealResult struct {
	ID        string
	AccessKey string
}

// Presented is the credential offered to Unseal.
type Presented struct {
	Passphrase []byte
	AccessKey  string
}

// Info is the read-only view of an item returned by PeekInfo.
type Info struct {
	ID                 string
	RequiresPassphrase bool
	Liveness           policy.Liveness
	QuotaRemaining     *int64
	ExpiresAt          *time.Time
	DownloadCount      int64
	CreatedAt          time.Time
	FileName           string
	ContentType        string
	Size               int64
}

// VaultOptions tune a VaultService. Zero values select defaults.
type VaultOptions struct {
	MaxPayloadBytes int64
	ConsumeRetries  uint64
	Now             func() time.Time
}

type VaultService struct {
	repo     items.Repository
	blobs    blobstore.Store
	enforcer *policy.Enforcer
	logger   logging.Logger
	maxBytes int64
	now      func() time.Time
}

func NewVaultService(repo items.Repository, blobs blobstore.Store, logger logging.Logger, opts VaultOptions) *VaultService {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.MaxPayloadBytes <= 0 {
		opts.MaxPayloadBytes = DefaultMaxPayloadBytes
	}
	return &VaultService{
		repo:     repo,
		blobs:    blobs,
		enforcer: policy.NewEnforcer(repo, opts.Now, opts.ConsumeRetries),
		logger:   logger.With("module", "vault"),
		maxBytes: opts.MaxPayloadBytes,
		now:      opts.Now,
	}
}

func (s *VaultService) validate(plaintext []byte, opts SealOptions) error {
	if int64(len(plaintext)) > s.maxBytes {
		return fmt.Errorf("%w: %d bytes, limit %d", common.ErrPayloadTooLarge, len(plaintext), s.maxBytes)
	}
	if opts.Quota != nil && *opts.Quota <= 0 {
		return fmt.Errorf("%w: download quota must be positive", common.ErrValidation)
	}
	if opts.TTL != nil && *opts.TTL < 0 {
		return fmt.Errorf("%w: ttl must not be negative", common.ErrValidation)
	}
	return nil
}

// Seal encrypts plaintext and persists it as a new item.
//
// With a passphrase the cipher key is derived from it and only a verifier is
// stored. Without one a random key is generated and returned hex encoded as
// SealResult.AccessKey. The ciphertext is written before the metadata row, and
// a failed insert removes the blob again, so a failed Seal leaves nothing an
// Unseal could find.
func (s *VaultService) Seal(ctx context.Context, plaintext []byte, opts SealOptions) (*SealResult, error) {
	if err := s.validate(plaintext, opts); err != nil {
		return nil, err
	}

	var (
		key        []byte
		credential models.Credential
		accessKey  string
		err        error
	)
	if len(opts.Passphrase) > 0 {
		verifier, err := cryptox.MakeVerifier(opts.Passphrase)
		if err != nil {
			return nil, fmt.Errorf("error making verifier: %w", err)
		}
		key = cryptox.DeriveKey(opts.Passphrase)
		credential = models.PassphraseProtected{Verifier: verifier}
	} else {
		key, err = cryptox.GenerateRandomKey()
		if err != nil {
			return nil, err
		}
		accessKey = cryptox.EncodeAccessKey(key)
		credential = models.KeyedLink{}
	}
	defer common.WipeByteArray(key)

	ciphertext, iv, err := cryptox.Encrypt(plaintext, key)
	if err != nil {
		return nil, err
	}

	now := s.now()
	item := &models.SealedItem{
		ID:            newItemID(),
		IV:            iv,
		Credential:    credential,
		DownloadQuota: opts.Quota,
		CreatedAt:     now,
		OwnerID:       opts.OwnerID,
		FileName:      opts.FileName,
		ContentType:   opts.ContentType,
		Size:          int64(len(plaintext)),
	}
	item.BlobKey = blobstore.StorageKey(item.ID, now)
	if opts.TTL != nil {
		expiresAt := now.Add(*opts.TTL)
		item.ExpiresAt = &expiresAt
	}

	if err := s.blobs.Write(ctx, item.BlobKey, ciphertext); err != nil {
		return nil, fmt.Errorf("%w: error writing blob: %w", common.ErrStorageUnavailable, err)
	}

	if err := s.repo.Create(ctx, item); err != nil {
		if rmErr := s.blobs.Remove(ctx, item.BlobKey); rmErr != nil {
			s.logger.Error(ctx, "orphan blob left after failed seal", "key", item.BlobKey, "error", rmErr)
		}
		return nil, fmt.Errorf("%w: error creating item: %w", common.ErrStorageUnavailable, err)
	}

	s.logger.Info(ctx, "item sealed", "id", item.ID, "mode", credential.Mode(), "size", item.Size)

	return &SealResult{ID: item.ID, AccessKey: accessKey}, nil
}

// Unseal checks the presented credential against item id and returns its
// plaintext, counting one download.
//
// Dead items are rejected before any key work. A wrong passphrase or access
// key yields ErrInvalidCredential and leaves the download count untouched.
// When the count can no longer be taken because a concurrent caller used the
// last slot, the decrypted plaintext is dropped and ErrQuotaExhausted is
// returned.
func (s *VaultService) Unseal(ctx context.Context, id string, cred Presented) ([]byte, *models.SealedItem, error) {
	item, err := s.load(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	if err := policy.Err(policy.Check(item, s.now())); err != nil {
		return nil, nil, err
	}

	key, err := s.unlockKey(item, cred)
	if err != nil {
		s.logger.Warn(ctx, "credential rejected", "id", id)
		return nil, nil, err
	}
	defer common.WipeByteArray(key)

	ciphertext, err := s.blobs.Read(ctx, item.BlobKey)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil, fmt.Errorf("%w: ciphertext missing for item %s", common.ErrMalformedPayload, id)
		}
		return nil, nil, fmt.Errorf("%w: error reading blob: %w", common.ErrStorageUnavailable, err)
	}

	plaintext, err := cryptox.Decrypt(ciphertext, key, item.IV)
	if err != nil {
		return nil, nil, err
	}

	if err := s.enforcer.RecordConsumption(ctx, item); err != nil {
		common.WipeByteArray(plaintext)
		return nil, nil, err
	}

	s.logger.Info(ctx, "item unsealed", "id", id, "count", item.DownloadCount)

	return plaintext, item, nil
}

func (s *VaultService) unlockKey(item *models.SealedItem, cred Presented) ([]byte, error) {
	switch c := item.Credential.(type) {
	case models.PassphraseProtected:
		if len(cred.Passphrase) == 0 || !cryptox.CheckVerifier(cred.Passphrase, c.Verifier) {
			return nil, common.ErrInvalidCredential
		}
		return cryptox.DeriveKey(cred.Passphrase), nil
	case models.KeyedLink:
		return cryptox.DecodeAccessKey(cred.AccessKey)
	default:
		return nil, fmt.Errorf("%w: unknown credential", common.ErrMalformedPayload)
	}
}

// PeekInfo describes an item without a credential and without counting a
// download.
func (s *VaultService) PeekInfo(ctx context.Context, id string) (*Info, error) {
	item, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	return &Info{
		ID:                 item.ID,
		RequiresPassphrase: item.RequiresPassphrase(),
		Liveness:           policy.Check(item, s.now()),
		QuotaRemaining:     policy.QuotaRemaining(item),
		ExpiresAt:          item.ExpiresAt,
		DownloadCount:      item.DownloadCount,
		CreatedAt:          item.CreatedAt,
		FileName:           item.FileName,
		ContentType:        item.ContentType,
		Size:               item.Size,
	}, nil
}

// Delete removes an item on behalf of its owner. Items sealed without an
// owner cannot be deleted this way and are left to the reaper.
func (s *VaultService) Delete(ctx context.Context, id, ownerID string) error {
	item, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if item.OwnerID == "" || item.OwnerID != ownerID {
		return common.ErrorUnauthorized
	}

	if err := removeItem(ctx, s.repo, s.blobs, item); err != nil {
		return err
	}

	s.logger.Info(ctx, "item deleted", "id", id, "owner", ownerID)
	return nil
}

func (s *VaultService) load(ctx context.Context, id string) (*models.SealedItem, error) {
	item, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: error loading item: %w", common.ErrStorageUnavailable, err)
	}
	return item, nil
}

// removeItem drops the blob first, then the row. Both steps tolerate an
// already missing target.
func removeItem(ctx context.Context, repo items.Repository, blobs blobstore.Store, item *models.SealedItem) error {
	if err := blobs.Remove(ctx, item.BlobKey); err != nil {
		return fmt.Errorf("%w: error removing blob: %w", common.ErrStorageUnavailable, err)
	}
	if err := repo.Delete(ctx, item.ID); err != nil {
		return fmt.Errorf("%w: error deleting item: %w", common.ErrStorageUnavailable, err)
	}
	return nil
}
