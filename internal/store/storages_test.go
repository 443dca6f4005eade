package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-wallet-keeper/internal/config"
	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
)

func TestNewStorages_MemoryDomains(t *testing.T) {
	ctx := context.Background()
	s, err := NewStorages(ctx, config.Storage{
		Local:  config.KeyValue{Driver: config.DriverMemory},
		Shared: config.KeyValue{Driver: config.DriverMemory},
	}, logger.Nop())
	require.NoError(t, err)
	defer s.Close()

	// the domains are independent
	require.NoError(t, s.Local.Set(ctx, KeyWalletAddress, "0xabc"))
	_, err = s.Shared.Get(ctx, KeyWalletAddress)
	assert.ErrorIs(t, err, ErrKeyNotFound)
	_, err = s.Extension.Get(ctx, KeyWalletAddress)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestNewStorages_BoltExtension(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "extension.db")

	s, err := NewStorages(ctx, config.Storage{
		Local:     config.KeyValue{Driver: config.DriverMemory},
		Shared:    config.KeyValue{Driver: config.DriverMemory},
		Extension: config.Extension{Path: path},
	}, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, s.Extension.Set(ctx, KeyExtWalletAddress, "0xabc"))
	require.NoError(t, s.Close())

	assert.FileExists(t, path)
}

func TestNewStorages_UnsupportedDriver(t *testing.T) {
	s, err := NewStorages(context.Background(), config.Storage{
		Local:  config.KeyValue{Driver: config.DriverMemory},
		Shared: config.KeyValue{Driver: "mongodb", DSN: "mongodb://localhost"},
	}, logger.Nop())
	assert.Nil(t, s)
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestStorages_CloseSkipsNil(t *testing.T) {
	s := &Storages{Local: NewMemoryStore()}
	assert.NoError(t, s.Close())
}
