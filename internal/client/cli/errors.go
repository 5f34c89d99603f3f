package cli

import (
	"errors"

	"github.com/dmitrijs2005/sealvault/internal/client/client"
	"github.com/dmitrijs2005/sealvault/internal/client/config"
	"github.com/dmitrijs2005/sealvault/internal/common"
)

// FormatError renders err for the terminal, adding a hint line for the
// failures a user can act on.
func FormatError(err error) []string {
	if err == nil {
		return nil
	}

	lines := []string{"error: " + err.Error()}

	switch {
	case errors.Is(err, common.ErrInvalidCredential):
		lines = append(lines, "hint: check the access key or passphrase; failed attempts do not use up a download.")
	case errors.Is(err, common.ErrQuotaExhausted), errors.Is(err, common.ErrExpired):
		lines = append(lines, "hint: ask the sender to seal the file again.")
	case errors.Is(err, common.ErrorUnauthorized), errors.Is(err, common.ErrInvalidToken), errors.Is(err, common.ErrTokenExpired):
		lines = append(lines, "hint: pass a valid owner token with --token or "+config.EnvToken+".")
	case errors.Is(err, client.ErrUnavailable):
		lines = append(lines, "hint: ensure the vault is running at --server or "+config.EnvServer+".")
	}
	return lines
}
