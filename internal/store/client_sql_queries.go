package store

import (
	sq "github.com/Masterminds/squirrel"
)

const kvTable = "kv"

// sqlite uses "?" placeholders.
var sqliteBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildGetValueQuery(key string) (string, []any, error) {
	return sqliteBuilder.
		Select("value").
		From(kvTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}

func buildSetValueQuery(key string, value []byte) (string, []any, error) {
	return sqliteBuilder.
		Insert(kvTable).
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value").
		ToSql()
}

func buildDeleteValueQuery(key string) (string, []any, error) {
	return sqliteBuilder.
		Delete(kvTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}
