package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-wallet-keeper/internal/config"
	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
)

// Namespaces of the SQL domains. Local and Shared may point at the same
// database; the namespace keeps their keys apart.
const (
	NamespaceLocal  = "local"
	NamespaceShared = "shared"
)

// Storages groups the three persistence domains of the application into a
// single value that can be passed around the service layer.
type Storages struct {
	// Local is the web-app domain (the walletAddress session key).
	Local KeyValueStore
	// Shared is the substrate both contexts read (the credentials_<wallet>
	// blobs).
	Shared KeyValueStore
	// Extension is the extension's isolated domain (ext_wallet_address).
	Extension KeyValueStore
}

// NewStorages opens the storage domains described by cfg. It performs the
// following steps:
//  1. Opens a connection per distinct SQL (driver, DSN) pair, so Local and
//     Shared reuse one connection when they point at the same database.
//  2. Runs pending schema migrations on every new connection.
//  3. Opens the extension bbolt file, or an in-memory store when no path is
//     configured.
//
// On failure everything opened so far is closed again.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	conns := make(map[config.KeyValue]*DB)
	s := &Storages{}

	local, err := openKeyValueStore(ctx, cfg.Local, NamespaceLocal, conns, log)
	if err != nil {
		return nil, fmt.Errorf("local store: %w", err)
	}
	s.Local = local

	shared, err := openKeyValueStore(ctx, cfg.Shared, NamespaceShared, conns, log)
	if err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("shared store: %w", err)
	}
	s.Shared = shared

	if cfg.Extension.Path == "" {
		s.Extension = NewMemoryStore()
	} else {
		extension, err := NewBoltKeyValueStore(cfg.Extension.Path, log)
		if err != nil {
			_ = s.Close()
			return nil, fmt.Errorf("extension store: %w", err)
		}
		s.Extension = extension
	}

	return s, nil
}

func openKeyValueStore(ctx context.Context, cfg config.KeyValue, namespace string, conns map[config.KeyValue]*DB, log *logger.Logger) (KeyValueStore, error) {
	if cfg.Driver == config.DriverMemory {
		return NewMemoryStore(), nil
	}

	if db, ok := conns[cfg]; ok {
		return NewSQLKeyValueStore(db, namespace, log), nil
	}

	var (
		db  *DB
		err error
	)
	switch cfg.Driver {
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg, log)
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("%s connection error: %w", cfg.Driver, err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	conns[cfg] = db
	return NewSQLKeyValueStore(db, namespace, log), nil
}

// Close closes every opened domain and joins their errors.
func (s *Storages) Close() error {
	var errs []error
	for _, kv := range []KeyValueStore{s.Local, s.Shared, s.Extension} {
		if kv == nil {
			continue
		}
		if err := kv.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
