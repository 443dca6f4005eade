package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-wallet-keeper/internal/crypto"
	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/store"
	"github.com/MKhiriev/go-wallet-keeper/internal/validators"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

// vaultService keeps one encrypted blob per wallet in the shared store.
//
// Passwords are sealed twice: each password field is its own token, and
// the whole entry list is sealed again as one blob. Listing therefore never
// exposes a password; revealing opens the blob and then the field.
type vaultService struct {
	shared    store.KeyValueStore
	codec     crypto.CipherCodec
	validator validators.Validator
	ids       IDGenerator
	pointers  SyncService

	mu    sync.Mutex
	locks map[string]*walletLock
}

// walletLock is dropped from the map once nobody holds or waits for it, so
// the map only ever holds wallets with a save in flight.
type walletLock struct {
	sync.Mutex
	refs int
}

// NewVaultService builds the vault over the shared store. pointers may be
// nil, in which case saves do not publish the extension pointer.
func NewVaultService(
	shared store.KeyValueStore,
	codec crypto.CipherCodec,
	validator validators.Validator,
	ids IDGenerator,
	pointers SyncService,
) VaultService {
	return &vaultService{
		shared:    shared,
		codec:     codec,
		validator: validator,
		ids:       ids,
		pointers:  pointers,
		locks:     make(map[string]*walletLock),
	}
}

func (s *vaultService) GetAll(ctx context.Context, walletAddress string) (models.VaultListing, error) {
	wallet, err := normalizeWallet(walletAddress)
	if err != nil {
		return models.VaultListing{Entries: models.VaultRecord{}}, err
	}

	return loadVault(ctx, s.shared, s.codec, wallet)
}

func (s *vaultService) Save(ctx context.Context, walletAddress string, credential models.Credential) (models.CredentialEntry, error) {
	log := logger.FromContext(ctx)

	wallet, err := normalizeWallet(walletAddress)
	if err != nil {
		return models.CredentialEntry{}, err
	}
	if err = s.validator.Validate(ctx, credential); err != nil {
		return models.CredentialEntry{}, fmt.Errorf("validate credential: %w", err)
	}

	unlock := s.lock(wallet)
	defer unlock()

	listing, err := loadVault(ctx, s.shared, s.codec, wallet)
	if err != nil {
		return models.CredentialEntry{}, err
	}
	if listing.Status == models.VaultUnreadable {
		return models.CredentialEntry{}, fmt.Errorf("%w: %w", ErrVaultUnreadable, listing.Err)
	}
	if listing.Entries.Has(credential.Platform) {
		return models.CredentialEntry{}, fmt.Errorf("%w: %s", ErrAlreadyExists, credential.Platform)
	}

	sealedPassword, err := s.codec.Encrypt(credential.Password, wallet)
	if err != nil {
		return models.CredentialEntry{}, fmt.Errorf("seal password: %w", err)
	}

	entry := models.CredentialEntry{
		ID: s.ids.NewEntryID(credential.Platform),
		Credential: models.Credential{
			Platform: credential.Platform,
			Username: credential.Username,
			Password: sealedPassword,
		},
	}

	record := make(models.VaultRecord, 0, len(listing.Entries)+1)
	record = append(record, listing.Entries...)
	record = append(record, entry)

	blob, err := crypto.SealJSON(s.codec, record, wallet)
	if err != nil {
		return models.CredentialEntry{}, fmt.Errorf("seal vault: %w", err)
	}
	if err = s.shared.Set(ctx, store.CredentialsKey(wallet), blob); err != nil {
		return models.CredentialEntry{}, fmt.Errorf("write vault: %w", err)
	}

	log.Info().
		Str("func", "*vaultService.Save").
		Str("wallet", models.ShortAddress(wallet)).
		Str("platform", credential.Platform.String()).
		Str("entry_id", entry.ID).
		Int("entries", len(record)).
		Msg("credential saved")

	if s.pointers != nil {
		if err = s.pointers.PublishPointer(ctx, wallet); err != nil {
			log.Err(err).Str("func", "*vaultService.Save").Msg("failed to publish extension pointer")
		}
	}

	entry.Password = credential.Password
	return entry, nil
}

func (s *vaultService) HasCredential(ctx context.Context, walletAddress string, platform models.Platform) bool {
	listing, err := s.GetAll(ctx, walletAddress)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*vaultService.HasCredential").Msg("vault lookup failed")
		return false
	}
	return listing.Status == models.VaultLoaded && listing.Entries.Has(platform)
}

func (s *vaultService) RevealAll(ctx context.Context, walletAddress string) ([]models.RevealedEntry, error) {
	listing, err := s.GetAll(ctx, walletAddress)
	if err != nil {
		return nil, err
	}
	if listing.Status == models.VaultUnreadable {
		return nil, fmt.Errorf("%w: %w", ErrVaultUnreadable, listing.Err)
	}

	wallet := models.NormalizeWallet(walletAddress)
	revealed := make([]models.RevealedEntry, 0, len(listing.Entries))
	for _, entry := range listing.Entries {
		revealed = append(revealed, revealEntry(s.codec, wallet, entry))
	}
	return revealed, nil
}

func (s *vaultService) Reveal(ctx context.Context, walletAddress string, platform models.Platform) (models.RevealedEntry, error) {
	listing, err := s.GetAll(ctx, walletAddress)
	if err != nil {
		return models.RevealedEntry{}, err
	}
	if listing.Status == models.VaultUnreadable {
		return models.RevealedEntry{}, fmt.Errorf("%w: %w", ErrVaultUnreadable, listing.Err)
	}

	entry, ok := listing.Entries.Find(platform)
	if !ok {
		return models.RevealedEntry{}, fmt.Errorf("%w: no credential for %s", ErrNotFound, platform)
	}
	return revealEntry(s.codec, models.NormalizeWallet(walletAddress), entry), nil
}

// lock serializes read-modify-write cycles on one wallet's vault and
// returns the matching unlock.
func (s *vaultService) lock(wallet string) func() {
	s.mu.Lock()
	l, exists := s.locks[wallet]
	if !exists {
		l = &walletLock{}
		s.locks[wallet] = l
	}
	l.refs++
	s.mu.Unlock()

	l.Lock()
	return func() {
		l.Unlock()

		s.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.locks, wallet)
		}
		s.mu.Unlock()
	}
}
