// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-wallet-keeper/internal/crypto"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or every violation joined into
// one error otherwise.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	switch cfg.App.Cipher {
	case crypto.CipherAESGCM, crypto.CipherXChaCha20Poly1305:
	default:
		errs = append(errs, fmt.Errorf("%w: unknown cipher %q", ErrInvalidAppConfigs, cfg.App.Cipher))
	}
	if cfg.App.Timeout < 0 {
		errs = append(errs, fmt.Errorf("%w: negative timeout", ErrInvalidAppConfigs))
	}

	if err := cfg.Storage.Local.validate("local"); err != nil {
		errs = append(errs, err)
	}
	if err := cfg.Storage.Shared.validate("shared"); err != nil {
		errs = append(errs, err)
	}

	if cfg.Log.Level != "" {
		if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
			errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err))
		}
	}

	return errors.Join(errs...)
}

func (kv KeyValue) validate(domain string) error {
	switch kv.Driver {
	case DriverMemory:
		return nil
	case DriverSQLite, DriverPostgres:
		if kv.DSN == "" {
			return fmt.Errorf("%w: %s store: empty DSN for driver %q", ErrInvalidStorageConfigs, domain, kv.Driver)
		}
		return nil
	default:
		return fmt.Errorf("%w: %s store: unknown driver %q", ErrInvalidStorageConfigs, domain, kv.Driver)
	}
}
