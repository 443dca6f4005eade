package service

import (
	"github.com/MKhiriev/go-wallet-keeper/internal/config"
	"github.com/MKhiriev/go-wallet-keeper/internal/crypto"
	"github.com/MKhiriev/go-wallet-keeper/internal/store"
	"github.com/MKhiriev/go-wallet-keeper/internal/utils"
	"github.com/MKhiriev/go-wallet-keeper/internal/validators"
)

// Services aggregates every service of the application. The web-app side
// (Vault, Session) and the extension side (Extension) share only the
// storages passed in.
type Services struct {
	Vault     VaultService
	Sync      SyncService
	Extension ExtensionService
	Session   SessionService
}

func NewServices(storages *store.Storages, codec crypto.CipherCodec, cfg config.Sync) *Services {
	syncSvc := NewSyncService(storages.Shared, storages.Extension, cfg.MirrorBlob)

	return &Services{
		Vault:     NewVaultService(storages.Shared, codec, validators.NewCredentialValidator(), utils.NewUUIDGenerator(), syncSvc),
		Sync:      syncSvc,
		Extension: NewExtensionService(syncSvc, storages.Shared, storages.Extension, codec),
		Session:   NewSessionService(storages.Local, syncSvc),
	}
}
