// Package cryptox holds the cryptographic primitives of the vault: passphrase
// key derivation, random access keys, passphrase verifiers and the AES-GCM
// payload cipher.
package cryptox

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/dmitrijs2005/sealvault/internal/common"
	"golang.org/x/crypto/argon2"
)

// appSalt is the fixed application-wide salt for passphrase key derivation.
// Changing it makes every passphrase-protected item undecryptable.
const appSalt = "sealvault/v1/static-salt"

// Context strings keep the cipher key derivation and the verifier derivation
// cryptographically distinct even though both start from the same passphrase.
const (
	cipherKeyContext = "sealvault/v1/cipher-key"
	verifierContext  = "sealvault/v1/verifier"
)

// argon2id parameters. memory is in KiB.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
)

var cipherKeySalt = func() []byte {
	s := sha256.Sum256([]byte(cipherKeyContext + "|" + appSalt))
	return s[:]
}()

// DeriveKey turns a passphrase into a 32-byte cipher key with argon2id.
// The same passphrase always yields the same key.
func DeriveKey(passphrase []byte) []byte {
	return argon2.IDKey(passphrase, cipherKeySalt, argonTime, argonMemory, argonThreads, common.KeySize)
}

// GenerateRandomKey returns a fresh random 32-byte key unrelated to any
// passphrase. It fails only when the entropy source does.
func GenerateRandomKey() ([]byte, error) {
	return common.GenerateRandByteArray(common.KeySize)
}

// EncodeAccessKey renders a raw key as the lowercase hex string handed to callers.
func EncodeAccessKey(key []byte) string {
	return hex.EncodeToString(key)
}

// DecodeAccessKey parses a caller-presented access key. Anything that is not
// exactly 32 hex-encoded bytes is an invalid credential.
func DecodeAccessKey(s string) ([]byte, error) {
	if len(s) != hex.EncodedLen(common.KeySize) {
		return nil, common.ErrInvalidCredential
	}
	key, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: access key is not hex", common.ErrInvalidCredential)
	}
	return key, nil
}
