package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/go-wallet-keeper/internal/crypto"
)

const (
	appDirName       = "walletvault"
	defaultTimeout   = 10 * time.Second
	defaultLogLevel  = "info"
	sqliteFileName   = "vault.db"
	extensionDBName  = "extension.db"
	fallbackDataRoot = ".walletvault"
)

// defaultConfig is the lowest-priority source. The web-app local domain and
// the shared substrate live in one SQLite file under separate namespaces; the
// extension gets its own bbolt file next to it.
func defaultConfig() *StructuredConfig {
	dir := DataDir()
	return &StructuredConfig{
		App: App{
			Cipher:  crypto.CipherAESGCM,
			Timeout: defaultTimeout,
		},
		Storage: Storage{
			Local: KeyValue{
				Driver: DriverSQLite,
				DSN:    filepath.Join(dir, sqliteFileName),
			},
			Shared: KeyValue{
				Driver: DriverSQLite,
				DSN:    filepath.Join(dir, sqliteFileName),
			},
			Extension: Extension{
				Path: filepath.Join(dir, extensionDBName),
			},
		},
		Log: Log{
			Level: defaultLogLevel,
		},
	}
}

// DataDir returns the directory holding the default database files:
// <user config dir>/walletvault, or ./.walletvault when the user config
// directory cannot be determined.
func DataDir() string {
	base, err := os.UserConfigDir()
	if err != nil || base == "" {
		return fallbackDataRoot
	}
	return filepath.Join(base, appDirName)
}
