package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
)

const (
	kvTable       = "kv_entries"
	colNamespace  = "namespace"
	colEntryKey   = "entry_key"
	colEntryValue = "entry_value"
	colUpdatedAt  = "updated_at"

	upsertSuffix = "ON CONFLICT (" + colNamespace + ", " + colEntryKey + ") DO UPDATE SET " +
		colEntryValue + " = excluded." + colEntryValue + ", " +
		colUpdatedAt + " = excluded." + colUpdatedAt
)

// likeEscaper escapes LIKE wildcards so that a key prefix such as
// "credentials_" matches literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// queryBuilder renders the key-value statements for one namespace in the
// placeholder format of the connected driver.
type queryBuilder struct {
	namespace   string
	placeholder sq.PlaceholderFormat
}

func (b queryBuilder) buildGetQuery(key string) (string, []any, error) {
	query, args, err := sq.
		Select(colEntryValue).
		From(kvTable).
		Where(sq.Eq{colNamespace: b.namespace, colEntryKey: key}).
		PlaceholderFormat(b.placeholder).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (b queryBuilder) buildUpsertQuery(key, value string) (string, []any, error) {
	query, args, err := sq.
		Insert(kvTable).
		Columns(colNamespace, colEntryKey, colEntryValue, colUpdatedAt).
		Values(b.namespace, key, value, sq.Expr("CURRENT_TIMESTAMP")).
		Suffix(upsertSuffix).
		PlaceholderFormat(b.placeholder).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (b queryBuilder) buildDeleteQuery(key string) (string, []any, error) {
	query, args, err := sq.
		Delete(kvTable).
		Where(sq.Eq{colNamespace: b.namespace, colEntryKey: key}).
		PlaceholderFormat(b.placeholder).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (b queryBuilder) buildKeysQuery(prefix string) (string, []any, error) {
	builder := sq.
		Select(colEntryKey).
		From(kvTable).
		Where(sq.Eq{colNamespace: b.namespace}).
		OrderBy(colEntryKey).
		PlaceholderFormat(b.placeholder)

	if prefix != "" {
		builder = builder.Where(sq.Expr(colEntryKey+` LIKE ? ESCAPE '\'`, likeEscaper.Replace(prefix)+"%"))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
