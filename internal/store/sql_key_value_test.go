package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
)

func newTestSQLStore(t *testing.T, placeholder sq.PlaceholderFormat, classifier ErrorClassificator) (KeyValueStore, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	l := logger.Nop()
	db := &DB{
		DB:                 conn,
		placeholder:        placeholder,
		errorClassificator: classifier,
		logger:             l,
	}
	return NewSQLKeyValueStore(db, NamespaceShared, l), mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestSQLKeyValueStore_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		s, mock := newTestSQLStore(t, sq.Question, NewSQLiteErrorClassifier())
		mock.ExpectQuery(regexp.QuoteMeta("SELECT entry_value FROM kv_entries WHERE entry_key = ? AND namespace = ?")).
			WithArgs("credentials_0xabc", NamespaceShared).
			WillReturnRows(sqlmock.NewRows([]string{"entry_value"}).AddRow("blob"))

		got, err := s.Get(ctx, "credentials_0xabc")
		require.NoError(t, err)
		assert.Equal(t, "blob", got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no rows is key not found", func(t *testing.T) {
		s, mock := newTestSQLStore(t, sq.Question, NewSQLiteErrorClassifier())
		mock.ExpectQuery("SELECT entry_value FROM kv_entries").
			WillReturnRows(sqlmock.NewRows([]string{"entry_value"}))

		_, err := s.Get(ctx, "credentials_0xabc")
		assert.ErrorIs(t, err, ErrKeyNotFound)
	})

	t.Run("driver error is not key not found", func(t *testing.T) {
		s, mock := newTestSQLStore(t, sq.Question, NewSQLiteErrorClassifier())
		mock.ExpectQuery("SELECT entry_value FROM kv_entries").
			WillReturnError(errors.New("disk I/O error"))

		_, err := s.Get(ctx, "credentials_0xabc")
		assert.ErrorIs(t, err, ErrExecutingQuery)
		assert.NotErrorIs(t, err, ErrKeyNotFound)
	})
}

func TestSQLKeyValueStore_Set(t *testing.T) {
	ctx := context.Background()

	t.Run("upsert with dollar placeholders", func(t *testing.T) {
		s, mock := newTestSQLStore(t, sq.Dollar, NewPostgresErrorClassifier())
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO kv_entries (namespace,entry_key,entry_value,updated_at) VALUES ($1,$2,$3,CURRENT_TIMESTAMP) ON CONFLICT (namespace, entry_key) DO UPDATE SET")).
			WithArgs(NamespaceShared, "credentials_0xabc", "blob").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, s.Set(ctx, "credentials_0xabc", "blob"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("retryable error is retried", func(t *testing.T) {
		s, mock := newTestSQLStore(t, sq.Dollar, NewPostgresErrorClassifier())
		mock.ExpectExec("INSERT INTO kv_entries").
			WillReturnError(pgError(pgerrcode.SerializationFailure))
		mock.ExpectExec("INSERT INTO kv_entries").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, s.Set(ctx, "k", "v"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("sqlite busy is retried", func(t *testing.T) {
		s, mock := newTestSQLStore(t, sq.Question, NewSQLiteErrorClassifier())
		mock.ExpectExec("INSERT INTO kv_entries").
			WillReturnError(sqlite3.Error{Code: sqlite3.ErrBusy})
		mock.ExpectExec("INSERT INTO kv_entries").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, s.Set(ctx, "k", "v"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("non-retryable error fails at once", func(t *testing.T) {
		s, mock := newTestSQLStore(t, sq.Dollar, NewPostgresErrorClassifier())
		mock.ExpectExec("INSERT INTO kv_entries").
			WillReturnError(pgError(pgerrcode.UndefinedTable))

		err := s.Set(ctx, "k", "v")
		assert.ErrorIs(t, err, ErrExecutingStatement)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("retries are bounded", func(t *testing.T) {
		s, mock := newTestSQLStore(t, sq.Dollar, NewPostgresErrorClassifier())
		for range maxRetries + 1 {
			mock.ExpectExec("INSERT INTO kv_entries").
				WillReturnError(pgError(pgerrcode.DeadlockDetected))
		}

		err := s.Set(ctx, "k", "v")
		require.Error(t, err)
		var pgErr *pgconn.PgError
		assert.True(t, errors.As(err, &pgErr))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSQLKeyValueStore_Remove(t *testing.T) {
	s, mock := newTestSQLStore(t, sq.Question, NewSQLiteErrorClassifier())
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM kv_entries WHERE entry_key = ? AND namespace = ?")).
		WithArgs(KeyWalletAddress, NamespaceShared).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, s.Remove(context.Background(), KeyWalletAddress))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLKeyValueStore_Keys(t *testing.T) {
	ctx := context.Background()

	t.Run("escaped prefix", func(t *testing.T) {
		s, mock := newTestSQLStore(t, sq.Question, NewSQLiteErrorClassifier())
		mock.ExpectQuery("SELECT entry_key FROM kv_entries").
			WithArgs(NamespaceShared, `credentials\_%`).
			WillReturnRows(sqlmock.NewRows([]string{"entry_key"}).
				AddRow("credentials_0xa").
				AddRow("credentials_0xb"))

		keys, err := s.Keys(ctx, CredentialsKeyPrefix)
		require.NoError(t, err)
		assert.Equal(t, []string{"credentials_0xa", "credentials_0xb"}, keys)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("scan error", func(t *testing.T) {
		s, mock := newTestSQLStore(t, sq.Question, NewSQLiteErrorClassifier())
		mock.ExpectQuery("SELECT entry_key FROM kv_entries").
			WillReturnRows(sqlmock.NewRows([]string{"entry_key"}).AddRow(nil))

		_, err := s.Keys(ctx, "")
		assert.ErrorIs(t, err, ErrScanningRows)
	})
}

func TestSQLKeyValueStore_Close(t *testing.T) {
	s, mock := newTestSQLStore(t, sq.Question, NewSQLiteErrorClassifier())
	mock.ExpectClose()

	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	_, err := s.Get(context.Background(), "k")
	assert.ErrorIs(t, err, ErrStoreClosed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithRetry_ContextCancelled(t *testing.T) {
	db := &DB{errorClassificator: NewPostgresErrorClassifier()}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := db.withRetry(ctx, func() error {
		calls++
		return pgError(pgerrcode.ConnectionFailure)
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestClassifiers(t *testing.T) {
	tests := []struct {
		name       string
		classifier ErrorClassificator
		err        error
		want       ErrorClassification
	}{
		{"pg nil", NewPostgresErrorClassifier(), nil, NonRetryable},
		{"pg plain error", NewPostgresErrorClassifier(), errors.New("x"), NonRetryable},
		{"pg connection failure", NewPostgresErrorClassifier(), pgError(pgerrcode.ConnectionFailure), Retryable},
		{"pg too many connections", NewPostgresErrorClassifier(), pgError(pgerrcode.TooManyConnections), Retryable},
		{"pg unique violation", NewPostgresErrorClassifier(), pgError(pgerrcode.UniqueViolation), NonRetryable},
		{"sqlite nil", NewSQLiteErrorClassifier(), nil, NonRetryable},
		{"sqlite busy", NewSQLiteErrorClassifier(), sqlite3.Error{Code: sqlite3.ErrBusy}, Retryable},
		{"sqlite locked", NewSQLiteErrorClassifier(), sqlite3.Error{Code: sqlite3.ErrLocked}, Retryable},
		{"sqlite constraint", NewSQLiteErrorClassifier(), sqlite3.Error{Code: sqlite3.ErrConstraint}, NonRetryable},
		{"sqlite no rows", NewSQLiteErrorClassifier(), sql.ErrNoRows, NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.classifier.Classify(tt.err))
		})
	}
}
