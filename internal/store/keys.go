package store

import (
	"strings"

	"github.com/MKhiriev/go-wallet-keeper/models"
)

// Storage keys shared by both runtime contexts. Their exact spelling is the
// wire format between them.
const (
	// CredentialsKeyPrefix prefixes the key of every vault blob.
	CredentialsKeyPrefix = "credentials_"

	// KeyExtWalletAddress holds the normalized wallet the extension should
	// read. Written by the web app into the extension domain.
	KeyExtWalletAddress = "ext_wallet_address"

	// KeyWalletAddress holds the last connected wallet of the web app.
	KeyWalletAddress = "walletAddress"
)

// CredentialsKey returns the key of the vault blob of walletAddress,
// credentials_<normalized wallet>.
func CredentialsKey(walletAddress string) string {
	return CredentialsKeyPrefix + models.NormalizeWallet(walletAddress)
}

// WalletFromCredentialsKey is the inverse of [CredentialsKey]. It reports
// false for keys that are not vault keys.
func WalletFromCredentialsKey(key string) (string, bool) {
	wallet, ok := strings.CutPrefix(key, CredentialsKeyPrefix)
	if !ok || wallet == "" {
		return "", false
	}
	return wallet, true
}
