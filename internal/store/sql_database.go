package store

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/migrations"
)

const (
	// maxRetries bounds how many extra attempts a retryable failure gets.
	maxRetries = 3
	// retryBaseDelay doubles after every failed attempt.
	retryBaseDelay = 50 * time.Millisecond
)

// DB is an open SQL connection together with what the key-value store needs
// to talk to it: the goose dialect, the squirrel placeholder format and the
// error classifier of the driver.
type DB struct {
	*sql.DB
	dialect            string
	placeholder        sq.PlaceholderFormat
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded schema migrations for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// withRetry runs op and repeats it while the classifier reports the failure
// as [Retryable], waiting longer between attempts. Context cancellation
// stops the loop.
func (db *DB) withRetry(ctx context.Context, op func() error) error {
	err := op()
	delay := retryBaseDelay
	for attempt := 0; err != nil && attempt < maxRetries; attempt++ {
		if db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		logger.FromContext(ctx).Warn().Err(err).
			Int("attempt", attempt+1).
			Msg("retryable database error, retrying")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
		err = op()
	}
	return err
}
