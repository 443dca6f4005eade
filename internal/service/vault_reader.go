package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-wallet-keeper/internal/crypto"
	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/store"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

// normalizeWallet returns the canonical form of walletAddress or
// [crypto.ErrInvalidKeyInput] when nothing is left of it.
func normalizeWallet(walletAddress string) (string, error) {
	wallet := models.NormalizeWallet(walletAddress)
	if wallet == "" {
		return "", fmt.Errorf("%w: wallet address is empty", crypto.ErrInvalidKeyInput)
	}
	return wallet, nil
}

// loadVault reads and opens the vault blob of wallet from kv. Absence and a
// blob that does not open are reported through the listing status; only a
// failing store is an error.
func loadVault(ctx context.Context, kv store.KeyValueStore, codec crypto.CipherCodec, wallet string) (models.VaultListing, error) {
	listing := models.VaultListing{Entries: models.VaultRecord{}, Status: models.VaultAbsent}

	blob, err := kv.Get(ctx, store.CredentialsKey(wallet))
	if errors.Is(err, store.ErrKeyNotFound) {
		return listing, nil
	}
	if err != nil {
		return listing, fmt.Errorf("read vault: %w", err)
	}

	var record models.VaultRecord
	if err = crypto.OpenJSON(codec, blob, wallet, &record); err != nil {
		logger.FromContext(ctx).Warn().
			Err(err).
			Str("func", "loadVault").
			Str("wallet", models.ShortAddress(wallet)).
			Msg("stored vault does not open")
		listing.Status = models.VaultUnreadable
		listing.Err = err
		return listing, nil
	}

	if record != nil {
		listing.Entries = record
	}
	listing.Status = models.VaultLoaded
	return listing, nil
}

// revealEntry opens the password field of entry. A field that does not open
// leaves Password empty and sets Err.
func revealEntry(codec crypto.CipherCodec, wallet string, entry models.CredentialEntry) models.RevealedEntry {
	revealed := models.RevealedEntry{CredentialEntry: entry}

	password, err := codec.Decrypt(entry.Password, wallet)
	if err != nil {
		revealed.Password = ""
		revealed.Err = fmt.Errorf("open password of entry %s: %w", entry.ID, err)
		return revealed
	}

	revealed.Password = password
	return revealed
}
