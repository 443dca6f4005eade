package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"

	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
)

// extensionBucket holds every key of the extension domain.
var extensionBucket = []byte("extension")

// boltKeyValueStore is the [KeyValueStore] of the extension's isolated
// domain, one bbolt file the web app only writes the pointer into.
type boltKeyValueStore struct {
	db     *bbolt.DB
	logger *logger.Logger
}

// NewBoltKeyValueStore opens (or creates) the bbolt file at path.
func NewBoltKeyValueStore(path string, log *logger.Logger) (KeyValueStore, error) {
	// Create directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create extension store directory: %w", err)
	}

	db, err := bbolt.Open(path, 0o600, &bbolt.Options{
		Timeout: 5 * time.Second,
	})
	if err != nil {
		log.Err(err).Str("func", "NewBoltKeyValueStore").Msg("error opening extension store")
		return nil, fmt.Errorf("failed to open extension store: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(extensionBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create extension bucket: %w", err)
	}
	log.Debug().Str("func", "NewBoltKeyValueStore").Str("path", path).Msg("extension store opened")

	return &boltKeyValueStore{db: db, logger: log}, nil
}

func (s *boltKeyValueStore) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var value []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(extensionBucket).Get([]byte(key))
		if v == nil {
			return ErrKeyNotFound
		}
		// bbolt values are only valid inside the transaction
		value = bytes.Clone(v)
		return nil
	})
	if err != nil {
		return "", s.wrap(err)
	}
	return string(value), nil
}

func (s *boltKeyValueStore) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(extensionBucket).Put([]byte(key), []byte(value))
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*boltKeyValueStore.Set").Str("key", key).Msg("error writing value")
		return s.wrap(err)
	}
	return nil
}

func (s *boltKeyValueStore) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(extensionBucket).Delete([]byte(key))
	})
	if err != nil {
		return s.wrap(err)
	}
	return nil
}

func (s *boltKeyValueStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var keys []string
	err := s.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket(extensionBucket).Cursor()
		p := []byte(prefix)
		for k, _ := c.Seek(p); k != nil && bytes.HasPrefix(k, p); k, _ = c.Next() {
			keys = append(keys, string(k))
		}
		return nil
	})
	if err != nil {
		return nil, s.wrap(err)
	}
	return keys, nil
}

func (s *boltKeyValueStore) Close() error {
	return s.db.Close()
}

// wrap maps bbolt's closed-database error onto [ErrStoreClosed].
func (s *boltKeyValueStore) wrap(err error) error {
	if errors.Is(err, bbolt.ErrDatabaseNotOpen) {
		return ErrStoreClosed
	}
	return err
}
