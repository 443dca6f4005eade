package service

import (
	"context"

	"github.com/MKhiriev/go-wallet-keeper/models"
)

// VaultService is the credential vault of the web app. Every operation
// takes the wallet explicitly; the service keeps no notion of a current
// session.
type VaultService interface {
	// GetAll lists the wallet's entries with passwords still sealed.
	// A missing vault is [models.VaultAbsent] and a blob that does not open
	// is [models.VaultUnreadable]; neither is an error. The error return is
	// reserved for an empty wallet and storage failures.
	GetAll(ctx context.Context, walletAddress string) (models.VaultListing, error)

	// Save appends credential to the wallet's vault and returns the new
	// entry with the plaintext credential. A second entry for the same
	// platform is rejected with [ErrAlreadyExists]; a vault that exists but
	// cannot be opened is never overwritten and yields [ErrVaultUnreadable].
	// On success the extension pointer is published.
	Save(ctx context.Context, walletAddress string, credential models.Credential) (models.CredentialEntry, error)

	// HasCredential reports whether the wallet's vault holds an entry for
	// platform. Any failure reads as false.
	HasCredential(ctx context.Context, walletAddress string, platform models.Platform) bool

	// RevealAll lists the wallet's entries with their passwords opened. An
	// entry whose password field does not open carries the error instead of
	// failing the whole list.
	RevealAll(ctx context.Context, walletAddress string) ([]models.RevealedEntry, error)

	// Reveal returns the entry for platform with its password opened, or
	// [ErrNotFound].
	Reveal(ctx context.Context, walletAddress string, platform models.Platform) (models.RevealedEntry, error)
}

// SyncService moves the wallet pointer from the web app into the
// extension's storage domain. The direction is fixed: the web app writes,
// the extension reads.
type SyncService interface {
	// PublishPointer stores the normalized wallet under ext_wallet_address in
	// the extension domain. With blob mirroring enabled the wallet's vault
	// blob is copied there too.
	PublishPointer(ctx context.Context, walletAddress string) error

	// Resolve returns the published wallet, or [ErrNotFound].
	Resolve(ctx context.Context) (string, error)

	// ClearPointer removes the published wallet. Vault blobs stay.
	ClearPointer(ctx context.Context) error
}

// ExtensionService is the extension's read path. It shares no state with
// the web app besides storage: it resolves the pointer, reads the blob and
// derives the key on its own.
type ExtensionService interface {
	// Lookup returns the revealed credential of the current wallet for
	// platform. [ErrNotFound] covers a missing pointer, a missing vault and
	// a missing entry.
	Lookup(ctx context.Context, platform models.Platform) (models.RevealedEntry, error)

	// PlatformStatuses lists every supported platform with whether the
	// current wallet has credentials registered for it.
	PlatformStatuses(ctx context.Context) ([]models.PlatformStatus, error)
}

// SessionService tracks which wallet the web app is connected to.
type SessionService interface {
	// Connect asks provider for an address, remembers it under walletAddress
	// and publishes the extension pointer. Returns the normalized wallet.
	Connect(ctx context.Context, provider WalletProvider) (string, error)

	// Disconnect forgets the connected wallet and the extension pointer.
	// Vaults are left untouched.
	Disconnect(ctx context.Context, provider WalletProvider) error

	// Current returns the remembered wallet, or [ErrNotFound].
	Current(ctx context.Context) (string, error)
}

// IDGenerator issues entry identifiers unique within a wallet's list.
type IDGenerator interface {
	NewEntryID(platform models.Platform) string
}
