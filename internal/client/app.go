package client

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/MKhiriev/go-wallet-keeper/internal/config"
	"github.com/MKhiriev/go-wallet-keeper/internal/crypto"
	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/service"
	"github.com/MKhiriev/go-wallet-keeper/internal/store"
)

// App holds everything a command needs once configuration is loaded.
type App struct {
	services  *service.Services
	storages  *store.Storages
	clipboard Clipboard
	in        io.Reader
	timeout   time.Duration
	log       *logger.Logger
}

// NewApp opens the configured storages and builds the services over them.
func NewApp(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*App, error) {
	codec, err := crypto.NewCipherCodec(cfg.App.Cipher)
	if err != nil {
		return nil, fmt.Errorf("create cipher codec: %w", err)
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create storages: %w", err)
	}

	return &App{
		services:  service.NewServices(storages, codec, cfg.Sync),
		storages:  storages,
		clipboard: NewSystemClipboard(),
		in:        os.Stdin,
		timeout:   cfg.App.Timeout,
		log:       log,
	}, nil
}

// Close releases the storages.
func (a *App) Close() error {
	if a.storages == nil {
		return nil
	}
	return a.storages.Close()
}
