package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "short flag with separate value",
			args:    []string{"-c", "conf.toml", "-a", "localhost"},
			allowed: []string{"-c"},
			want:    []string{"-c", "conf.toml"},
		},
		{
			name:    "double dash matches single dash name",
			args:    []string{"--config=alt.toml", "-a", "localhost"},
			allowed: []string{"-config"},
			want:    []string{"--config=alt.toml"},
		},
		{
			name:    "order preserved across forms",
			args:    []string{"--config=first.toml", "-c", "second.toml", "-x", "1"},
			allowed: []string{"-c", "-config"},
			want:    []string{"--config=first.toml", "-c", "second.toml"},
		},
		{
			name:    "subcommand and positional args ignored",
			args:    []string{"token", "alice", "-s", "secret"},
			allowed: []string{"-s"},
			want:    []string{"-s", "secret"},
		},
		{
			name:    "flag without value at end is kept",
			args:    []string{"-c"},
			allowed: []string{"-c"},
			want:    []string{"-c"},
		},
		{
			name:    "next flag is not a value",
			args:    []string{"-c", "-a", "x"},
			allowed: []string{"-c"},
			want:    []string{"-c"},
		},
		{
			name:    "negative number is a value",
			args:    []string{"-n", "-5", "-a", "x"},
			allowed: []string{"-n"},
			want:    []string{"-n", "-5"},
		},
		{
			name:    "stops at terminator",
			args:    []string{"-a", ":1", "--", "-a", ":2"},
			allowed: []string{"-a"},
			want:    []string{"-a", ":1"},
		},
		{
			name:    "lone dash is positional",
			args:    []string{"-", "-a", ":1"},
			allowed: []string{"-a"},
			want:    []string{"-a", ":1"},
		},
		{
			name:    "empty args",
			args:    []string{},
			allowed: []string{"-c"},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestConfigFileFlag(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"short", []string{"-a", ":1", "-c", "vault.yaml"}, "vault.yaml"},
		{"long", []string{"-config=vault.toml"}, "vault.toml"},
		{"double dash", []string{"--config", "vault.json", "token", "bob"}, "vault.json"},
		{"absent", []string{"-a", ":1"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConfigFileFlag(tt.args))
		})
	}
}
