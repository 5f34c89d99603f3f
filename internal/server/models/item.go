// Package models defines server-side data models persisted by the vault.
package models

import "time"

// CredentialMode names the kind of key material an item was sealed with.
type CredentialMode string

const (
	ModePassphrase CredentialMode = "passphrase"
	ModeKeyedLink  CredentialMode = "keyed"
)

// Credential is the per-item unlocking scheme. It is a closed set:
// PassphraseProtected or KeyedLink, never both and never neither.
type Credential interface {
	Mode() CredentialMode
	isCredential()
}

// PassphraseProtected items carry a one-way verifier of the passphrase.
// The cipher key is re-derived from the presented passphrase on unseal.
type PassphraseProtected struct {
	Verifier []byte
}

func (PassphraseProtected) Mode() CredentialMode { return ModePassphrase }
func (PassphraseProtected) isCredential()        {}

// KeyedLink items were sealed under a random key whose only copy was handed
// back to the caller as the access key.
type KeyedLink struct{}

func (KeyedLink) Mode() CredentialMode { return ModeKeyedLink }
func (KeyedLink) isCredential()        {}

// SealedItem is the persisted metadata of one sealed payload. The ciphertext
// itself lives in the blob store under BlobKey.
type SealedItem struct {
	ID      string
	BlobKey string
	// IV is the AEAD nonce paired with the ciphertext; write-once.
	IV         []byte
	Credential Credential

	// DownloadQuota is nil for unlimited downloads.
	DownloadQuota *int64
	DownloadCount int64
	// ExpiresAt is nil when the item never expires by time.
	ExpiresAt *time.Time
	CreatedAt time.Time

	OwnerID     string
	FileName    string
	ContentType string
	Size        int64
}

// RequiresPassphrase reports whether the item is passphrase protected.
func (i *SealedItem) RequiresPassphrase() bool {
	_, ok := i.Credential.(PassphraseProtected)
	return ok
}

// NewCredential rebuilds a Credential from its stored form. It returns false
// when the stored form violates the one-credential invariant.
func NewCredential(mode CredentialMode, verifier []byte) (Credential, bool) {
	switch mode {
	case ModePassphrase:
		if len(verifier) == 0 {
			return nil, false
		}
		return PassphraseProtected{Verifier: verifier}, true
	case ModeKeyedLink:
		if len(verifier) != 0 {
			return nil, false
		}
		return KeyedLink{}, true
	default:
		return nil, false
	}
}

// VerifierOf returns the stored verifier of c, or nil for keyed links.
func VerifierOf(c Credential) []byte {
	if p, ok := c.(PassphraseProtected); ok {
		return p.Verifier
	}
	return nil
}
