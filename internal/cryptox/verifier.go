package cryptox

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"

	"golang.org/x/crypto/bcrypt"
)

// VerifierCost is the bcrypt cost used for passphrase verifiers.
const VerifierCost = 10

// verifierCost is a test seam so unit tests can run at bcrypt.MinCost.
var verifierCost = VerifierCost

// prehash binds the passphrase to the verifier context and keeps the bcrypt
// input below its 72-byte limit regardless of passphrase length.
func prehash(passphrase []byte) []byte {
	mac := hmac.New(sha256.New, []byte(verifierContext))
	mac.Write(passphrase)
	sum := mac.Sum(nil)
	out := make([]byte, base64.RawStdEncoding.EncodedLen(len(sum)))
	base64.RawStdEncoding.Encode(out, sum)
	return out
}

// MakeVerifier computes the one-way, salted verifier stored for a
// passphrase-protected item. The passphrase itself is never stored.
func MakeVerifier(passphrase []byte) ([]byte, error) {
	return bcrypt.GenerateFromPassword(prehash(passphrase), verifierCost)
}

// CheckVerifier reports whether passphrase matches verifier. The final hash
// comparison is constant time.
func CheckVerifier(passphrase, verifier []byte) bool {
	if len(verifier) == 0 {
		return false
	}
	return bcrypt.CompareHashAndPassword(verifier, prehash(passphrase)) == nil
}
