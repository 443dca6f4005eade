package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-wallet-keeper/internal/crypto"
	"github.com/MKhiriev/go-wallet-keeper/internal/store"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

type extensionService struct {
	pointers  SyncService
	shared    store.KeyValueStore
	extension store.KeyValueStore
	codec     crypto.CipherCodec
}

// NewExtensionService builds the extension's read path. The vault blob is
// read from shared first and from the extension's own mirror when shared
// has none.
func NewExtensionService(pointers SyncService, shared, extension store.KeyValueStore, codec crypto.CipherCodec) ExtensionService {
	return &extensionService{
		pointers:  pointers,
		shared:    shared,
		extension: extension,
		codec:     codec,
	}
}

func (e *extensionService) Lookup(ctx context.Context, platform models.Platform) (models.RevealedEntry, error) {
	wallet, listing, err := e.currentVault(ctx)
	if err != nil {
		return models.RevealedEntry{}, err
	}

	entry, ok := listing.Entries.Find(platform)
	if !ok {
		return models.RevealedEntry{}, fmt.Errorf("%w: no credential for %s", ErrNotFound, platform)
	}
	return revealEntry(e.codec, wallet, entry), nil
}

func (e *extensionService) PlatformStatuses(ctx context.Context) ([]models.PlatformStatus, error) {
	_, listing, err := e.currentVault(ctx)
	if err != nil {
		return nil, err
	}

	statuses := make([]models.PlatformStatus, 0, len(models.Platforms()))
	for _, p := range models.Platforms() {
		statuses = append(statuses, models.PlatformStatus{Platform: p, Registered: listing.Entries.Has(p)})
	}
	return statuses, nil
}

// currentVault resolves the published wallet and opens its vault with a key
// derived here, independently of the web app.
func (e *extensionService) currentVault(ctx context.Context) (string, models.VaultListing, error) {
	pointer, err := e.pointers.Resolve(ctx)
	if err != nil {
		return "", models.VaultListing{}, err
	}
	wallet, err := normalizeWallet(pointer)
	if err != nil {
		return "", models.VaultListing{}, err
	}

	listing, err := loadVault(ctx, e.shared, e.codec, wallet)
	if err != nil {
		return "", models.VaultListing{}, err
	}
	if listing.Status == models.VaultAbsent && e.extension != nil {
		listing, err = loadVault(ctx, e.extension, e.codec, wallet)
		if err != nil {
			return "", models.VaultListing{}, err
		}
	}
	if listing.Status == models.VaultUnreadable {
		return "", models.VaultListing{}, fmt.Errorf("%w: %w", ErrVaultUnreadable, listing.Err)
	}

	return wallet, listing, nil
}
