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

type sessionService struct {
	local    store.KeyValueStore
	pointers SyncService
}

func NewSessionService(local store.KeyValueStore, pointers SyncService) SessionService {
	return &sessionService{local: local, pointers: pointers}
}

func (s *sessionService) Connect(ctx context.Context, provider WalletProvider) (string, error) {
	log := logger.FromContext(ctx)

	address, err := provider.Connect(ctx)
	if errors.Is(err, ErrConnectCancelled) {
		return "", err
	}
	if err != nil {
		return "", fmt.Errorf("connect wallet: %w", err)
	}

	wallet, err := normalizeWallet(address)
	if err != nil {
		return "", err
	}

	if err = s.local.Set(ctx, store.KeyWalletAddress, wallet); err != nil {
		return "", fmt.Errorf("remember wallet: %w", err)
	}
	log.Info().Str("func", "*sessionService.Connect").Str("wallet", models.ShortAddress(wallet)).Msg("wallet connected")

	if err = s.pointers.PublishPointer(ctx, wallet); err != nil {
		log.Err(err).Str("func", "*sessionService.Connect").Msg("failed to publish extension pointer")
	}
	return wallet, nil
}

func (s *sessionService) Disconnect(ctx context.Context, provider WalletProvider) error {
	var errs []error

	if provider != nil {
		if err := provider.Disconnect(ctx); err != nil {
			errs = append(errs, fmt.Errorf("disconnect wallet: %w", err))
		}
	}
	if err := s.local.Remove(ctx, store.KeyWalletAddress); err != nil {
		errs = append(errs, fmt.Errorf("forget wallet: %w", err))
	}
	if err := s.pointers.ClearPointer(ctx); err != nil {
		errs = append(errs, err)
	}

	if len(errs) == 0 {
		logger.FromContext(ctx).Info().Str("func", "*sessionService.Disconnect").Msg("wallet disconnected")
	}
	return errors.Join(errs...)
}

func (s *sessionService) Current(ctx context.Context) (string, error) {
	wallet, err := s.local.Get(ctx, store.KeyWalletAddress)
	if errors.Is(err, store.ErrKeyNotFound) {
		return "", fmt.Errorf("%w: no wallet connected", ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("read connected wallet: %w", err)
	}

	wallet = strings.TrimSpace(wallet)
	if wallet == "" {
		return "", fmt.Errorf("%w: no wallet connected", ErrNotFound)
	}
	return wallet, nil
}
