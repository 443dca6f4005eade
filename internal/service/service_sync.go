package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/store"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

type syncService struct {
	shared     store.KeyValueStore
	extension  store.KeyValueStore
	mirrorBlob bool
}

// NewSyncService bridges the web app to the extension domain. When
// mirrorBlob is set, publishing also copies the vault blob into extension,
// for setups where the extension cannot read shared.
func NewSyncService(shared, extension store.KeyValueStore, mirrorBlob bool) SyncService {
	return &syncService{shared: shared, extension: extension, mirrorBlob: mirrorBlob}
}

func (s *syncService) PublishPointer(ctx context.Context, walletAddress string) error {
	wallet, err := normalizeWallet(walletAddress)
	if err != nil {
		return err
	}

	if err = s.extension.Set(ctx, store.KeyExtWalletAddress, wallet); err != nil {
		return fmt.Errorf("write extension pointer: %w", err)
	}

	logger.FromContext(ctx).Debug().
		Str("func", "*syncService.PublishPointer").
		Str("wallet", models.ShortAddress(wallet)).
		Bool("mirror_blob", s.mirrorBlob).
		Msg("extension pointer published")

	if !s.mirrorBlob {
		return nil
	}

	key := store.CredentialsKey(wallet)
	blob, err := s.shared.Get(ctx, key)
	if errors.Is(err, store.ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read vault for mirroring: %w", err)
	}
	if err = s.extension.Set(ctx, key, blob); err != nil {
		return fmt.Errorf("mirror vault: %w", err)
	}
	return nil
}

func (s *syncService) Resolve(ctx context.Context) (string, error) {
	wallet, err := s.extension.Get(ctx, store.KeyExtWalletAddress)
	if errors.Is(err, store.ErrKeyNotFound) {
		return "", fmt.Errorf("%w: no wallet published for the extension", ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("read extension pointer: %w", err)
	}

	wallet = strings.TrimSpace(wallet)
	if wallet == "" {
		return "", fmt.Errorf("%w: no wallet published for the extension", ErrNotFound)
	}
	return wallet, nil
}

func (s *syncService) ClearPointer(ctx context.Context) error {
	if err := s.extension.Remove(ctx, store.KeyExtWalletAddress); err != nil {
		return fmt.Errorf("remove extension pointer: %w", err)
	}
	return nil
}
