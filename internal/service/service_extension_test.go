package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-wallet-keeper/internal/config"
	"github.com/MKhiriev/go-wallet-keeper/internal/crypto"
	"github.com/MKhiriev/go-wallet-keeper/internal/store"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

func TestCrossContextScenario(t *testing.T) {
	ctx := context.Background()
	storages := newTestStorages()

	// the two sides get separate codecs: nothing but storage is shared
	webApp := NewServices(storages, newCodec(t), config.Sync{})
	extensionCodec, err := crypto.NewCipherCodec(crypto.CipherXChaCha20Poly1305)
	require.NoError(t, err)
	extension := NewExtensionService(
		NewSyncService(storages.Shared, storages.Extension, false),
		storages.Shared, storages.Extension, extensionCodec,
	)

	_, err = extension.Lookup(ctx, models.PlatformInstagram)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = webApp.Vault.Save(ctx, testWallet, models.Credential{Platform: models.PlatformInstagram, Username: "alice", Password: "pw1"})
	require.NoError(t, err)

	entry, err := extension.Lookup(ctx, models.PlatformInstagram)
	require.NoError(t, err)
	assert.Equal(t, "alice", entry.Username)
	assert.Equal(t, "pw1", entry.Password)
	assert.False(t, entry.DecryptionError())

	_, err = extension.Lookup(ctx, models.PlatformDiscord)
	assert.ErrorIs(t, err, ErrNotFound)

	statuses, err := extension.PlatformStatuses(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.PlatformStatus{
		{Platform: models.PlatformInstagram, Registered: true},
		{Platform: models.PlatformDiscord, Registered: false},
		{Platform: models.PlatformLinkedIn, Registered: false},
	}, statuses)
}

func TestExtensionService_NoPointer(t *testing.T) {
	ctx := context.Background()
	storages := newTestStorages()
	svc := NewServices(storages, newCodec(t), config.Sync{})

	_, err := svc.Extension.PlatformStatuses(ctx)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestExtensionService_PointerWithoutVault(t *testing.T) {
	ctx := context.Background()
	storages := newTestStorages()
	svc := NewServices(storages, newCodec(t), config.Sync{})

	require.NoError(t, svc.Sync.PublishPointer(ctx, testWallet))

	statuses, err := svc.Extension.PlatformStatuses(ctx)
	require.NoError(t, err)
	for _, s := range statuses {
		assert.False(t, s.Registered, s.Platform)
	}

	_, err = svc.Extension.Lookup(ctx, models.PlatformInstagram)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestExtensionService_ReadsMirror(t *testing.T) {
	ctx := context.Background()
	webSide := newTestStorages()
	svc := NewServices(webSide, newCodec(t), config.Sync{MirrorBlob: true})

	_, err := svc.Vault.Save(ctx, testWallet, models.Credential{Platform: models.PlatformLinkedIn, Username: "carol", Password: "secret"})
	require.NoError(t, err)

	// an extension that cannot see the web app's shared store
	isolated := NewExtensionService(
		NewSyncService(store.NewMemoryStore(), webSide.Extension, false),
		store.NewMemoryStore(), webSide.Extension, newCodec(t),
	)

	entry, err := isolated.Lookup(ctx, models.PlatformLinkedIn)
	require.NoError(t, err)
	assert.Equal(t, "secret", entry.Password)
}

func TestExtensionService_UnreadableVault(t *testing.T) {
	ctx := context.Background()
	storages := newTestStorages()
	svc := NewServices(storages, newCodec(t), config.Sync{})

	require.NoError(t, svc.Sync.PublishPointer(ctx, testWallet))
	require.NoError(t, storages.Shared.Set(ctx, store.CredentialsKey(testWallet), "garbage"))

	_, err := svc.Extension.Lookup(ctx, models.PlatformInstagram)
	assert.ErrorIs(t, err, ErrVaultUnreadable)
}
