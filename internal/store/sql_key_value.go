package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
)

// sqlKeyValueStore is the SQL implementation of [KeyValueStore]. Several
// domains can share one database: each store only sees rows of its own
// namespace.
type sqlKeyValueStore struct {
	db      *DB
	queries queryBuilder
	logger  *logger.Logger
	closed  atomic.Bool
}

// NewSQLKeyValueStore constructs a [KeyValueStore] over db restricted to
// namespace. The schema must already be migrated.
func NewSQLKeyValueStore(db *DB, namespace string, logger *logger.Logger) KeyValueStore {
	logger.Debug().Str("namespace", namespace).Msg("creating sql key-value store")
	return &sqlKeyValueStore{
		db:      db,
		queries: queryBuilder{namespace: namespace, placeholder: db.placeholder},
		logger:  logger,
	}
}

func (s *sqlKeyValueStore) Get(ctx context.Context, key string) (string, error) {
	if s.closed.Load() {
		return "", ErrStoreClosed
	}
	log := logger.FromContext(ctx)

	query, args, err := s.queries.buildGetQuery(key)
	if err != nil {
		log.Err(err).Str("func", "*sqlKeyValueStore.Get").Msg("error building query")
		return "", err
	}

	var value string
	err = s.db.withRetry(ctx, func() error {
		return s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*sqlKeyValueStore.Get").Str("key", key).Msg("error reading value")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (s *sqlKeyValueStore) Set(ctx context.Context, key, value string) error {
	if s.closed.Load() {
		return ErrStoreClosed
	}
	log := logger.FromContext(ctx)

	query, args, err := s.queries.buildUpsertQuery(key, value)
	if err != nil {
		log.Err(err).Str("func", "*sqlKeyValueStore.Set").Msg("error building query")
		return err
	}

	err = s.db.withRetry(ctx, func() error {
		_, execErr := s.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*sqlKeyValueStore.Set").Str("key", key).Msg("error writing value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqlKeyValueStore) Remove(ctx context.Context, key string) error {
	if s.closed.Load() {
		return ErrStoreClosed
	}
	log := logger.FromContext(ctx)

	query, args, err := s.queries.buildDeleteQuery(key)
	if err != nil {
		log.Err(err).Str("func", "*sqlKeyValueStore.Remove").Msg("error building query")
		return err
	}

	err = s.db.withRetry(ctx, func() error {
		_, execErr := s.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*sqlKeyValueStore.Remove").Str("key", key).Msg("error removing value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqlKeyValueStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	if s.closed.Load() {
		return nil, ErrStoreClosed
	}
	log := logger.FromContext(ctx)

	query, args, err := s.queries.buildKeysQuery(prefix)
	if err != nil {
		log.Err(err).Str("func", "*sqlKeyValueStore.Keys").Msg("error building query")
		return nil, err
	}

	var keys []string
	err = s.db.withRetry(ctx, func() error {
		keys = keys[:0]
		rows, queryErr := s.db.QueryContext(ctx, query, args...)
		if queryErr != nil {
			return queryErr
		}
		defer rows.Close()

		for rows.Next() {
			var key string
			if scanErr := rows.Scan(&key); scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
			}
			keys = append(keys, key)
		}
		return rows.Err()
	})
	if err != nil {
		log.Err(err).Str("func", "*sqlKeyValueStore.Keys").Str("prefix", prefix).Msg("error listing keys")
		if errors.Is(err, ErrScanningRows) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return keys, nil
}

// Close closes the underlying connection. Stores sharing one [DB] may all
// call it: sql.DB.Close is idempotent.
func (s *sqlKeyValueStore) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	return s.db.Close()
}
