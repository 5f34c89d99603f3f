package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCredential(t *testing.T) {
	tests := []struct {
		name     string
		mode     CredentialMode
		verifier []byte
		want     Credential
		ok       bool
	}{
		{"passphrase", ModePassphrase, []byte("v"), PassphraseProtected{Verifier: []byte("v")}, true},
		{"passphrase without verifier", ModePassphrase, nil, nil, false},
		{"keyed", ModeKeyedLink, nil, KeyedLink{}, true},
		{"keyed with verifier", ModeKeyedLink, []byte("v"), nil, false},
		{"unknown", CredentialMode("other"), nil, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NewCredential(tt.mode, tt.verifier)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRequiresPassphraseAndVerifierOf(t *testing.T) {
	p := &SealedItem{Credential: PassphraseProtected{Verifier: []byte("v")}}
	k := &SealedItem{Credential: KeyedLink{}}

	assert.True(t, p.RequiresPassphrase())
	assert.False(t, k.RequiresPassphrase())
	assert.Equal(t, []byte("v"), VerifierOf(p.Credential))
	assert.Nil(t, VerifierOf(k.Credential))
}
