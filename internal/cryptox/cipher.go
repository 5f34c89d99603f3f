package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"github.com/dmitrijs2005/sealvault/internal/common"
)

// IVSize is the AES-GCM nonce length stored next to each ciphertext.
const IVSize = 12

// Encrypt seals plaintext with AES-256-GCM under key.
//
// A new random iv is generated for every call, so two items sealed under the
// same key never share one. The iv is returned separately from the
// ciphertext and must be stored with it.
//
// Example:
//
//	key, _ := GenerateRandomKey()
//	ciphertext, iv, err := Encrypt([]byte("hello"), key)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	plaintext, err := Decrypt(ciphertext, key, iv)
func Encrypt(plaintext, key []byte) (ciphertext, iv []byte, err error) {
	aead, err := newGCM(key)
	if err != nil {
		return nil, nil, err
	}

	iv, err = common.GenerateRandByteArray(IVSize)
	if err != nil {
		return nil, nil, err
	}

	ciphertext = aead.Seal(nil, iv, plaintext, nil)
	return ciphertext, iv, nil
}

// Decrypt is the inverse of Encrypt.
//
// A key or iv of the wrong length is reported as ErrMalformedPayload. An
// authentication failure (wrong key or modified ciphertext) is reported as
// ErrInvalidCredential; the two causes are deliberately indistinguishable.
func Decrypt(ciphertext, key, iv []byte) ([]byte, error) {
	if len(iv) != IVSize {
		return nil, fmt.Errorf("%w: iv length %d, want %d", common.ErrMalformedPayload, len(iv), IVSize)
	}

	aead, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	plaintext, err := aead.Open(nil, iv, ciphertext, nil)
	if err != nil {
		return nil, common.ErrInvalidCredential
	}
	if plaintext == nil {
		plaintext = []byte{}
	}
	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != common.KeySize {
		return nil, fmt.Errorf("%w: key length %d, want %d", common.ErrMalformedPayload, len(key), common.KeySize)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
