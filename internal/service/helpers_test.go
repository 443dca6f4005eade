package service

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-wallet-keeper/internal/crypto"
	"github.com/MKhiriev/go-wallet-keeper/internal/store"
	"github.com/MKhiriev/go-wallet-keeper/internal/utils"
	"github.com/MKhiriev/go-wallet-keeper/internal/validators"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

const testWallet = "0xABC...123"

// seqIDs hands out predictable entry ids.
type seqIDs struct {
	n atomic.Int64
}

func (g *seqIDs) NewEntryID(platform models.Platform) string {
	return fmt.Sprintf("%s_%d", platform, g.n.Add(1))
}

func newCodec(t *testing.T) crypto.CipherCodec {
	t.Helper()
	codec, err := crypto.NewCipherCodec(crypto.CipherAESGCM)
	require.NoError(t, err)
	return codec
}

// newTestStorages returns three independent in-memory domains.
func newTestStorages() *store.Storages {
	return &store.Storages{
		Local:     store.NewMemoryStore(),
		Shared:    store.NewMemoryStore(),
		Extension: store.NewMemoryStore(),
	}
}

// newTestVault wires a vault over in-memory storages with real crypto.
func newTestVault(t *testing.T) (VaultService, *store.Storages, crypto.CipherCodec) {
	t.Helper()
	storages := newTestStorages()
	codec := newCodec(t)
	syncSvc := NewSyncService(storages.Shared, storages.Extension, false)
	vault := NewVaultService(storages.Shared, codec, validators.NewCredentialValidator(), utils.NewUUIDGenerator(), syncSvc)
	return vault, storages, codec
}
