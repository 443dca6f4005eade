package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterFlags_AllRegistered(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)

	for _, name := range []string{
		FlagConfig, FlagCipher, FlagTimeout,
		FlagLocalDriver, FlagLocalDSN, FlagSharedDriver, FlagSharedDSN,
		FlagExtensionPath, FlagMirrorBlob, FlagLogLevel, FlagLogFile,
	} {
		assert.NotNil(t, fs.Lookup(name), "flag %q must be registered", name)
	}
	assert.NotNil(t, fs.ShorthandLookup("c"))
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "no flags gives zero config",
			args: nil,
			check: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, &StructuredConfig{}, cfg)
			},
		},
		{
			name: "storage flags",
			args: []string{
				"--local-driver", "memory",
				"--shared-driver", "pgx",
				"--shared-dsn", "postgres://localhost/vault",
				"--extension-path", "/tmp/ext.db",
			},
			check: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "memory", cfg.Storage.Local.Driver)
				assert.Empty(t, cfg.Storage.Local.DSN)
				assert.Equal(t, "pgx", cfg.Storage.Shared.Driver)
				assert.Equal(t, "postgres://localhost/vault", cfg.Storage.Shared.DSN)
				assert.Equal(t, "/tmp/ext.db", cfg.Storage.Extension.Path)
			},
		},
		{
			name: "app, sync and log flags",
			args: []string{
				"--cipher", "xchacha20-poly1305",
				"--timeout", "1m",
				"--mirror-blob",
				"--log-level", "debug",
				"--log-file", "/tmp/vault.log",
			},
			check: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "xchacha20-poly1305", cfg.App.Cipher)
				assert.Equal(t, time.Minute, cfg.App.Timeout)
				assert.True(t, cfg.Sync.MirrorBlob)
				assert.Equal(t, "debug", cfg.Log.Level)
				assert.Equal(t, "/tmp/vault.log", cfg.Log.File)
			},
		},
		{
			name: "config shorthand",
			args: []string{"-c", "/etc/walletvault.json"},
			check: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/etc/walletvault.json", cfg.JSONFilePath)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
			RegisterFlags(fs)
			require.NoError(t, fs.Parse(tt.args))

			cfg, err := parseFlags(fs)
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestParseFlags_BadDuration(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	assert.Error(t, fs.Parse([]string{"--timeout", "later"}))
}
