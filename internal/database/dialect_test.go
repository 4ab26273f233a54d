package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialectFor(t *testing.T) {
	pg, err := DialectFor("postgres")
	require.NoError(t, err)
	assert.Equal(t, "pgx", pg.DriverName)
	assert.False(t, pg.UsesSequences)

	ora, err := DialectFor("oracle")
	require.NoError(t, err)
	assert.Equal(t, "oracle", ora.DriverName)
	assert.True(t, ora.UsesSequences)

	_, err = DialectFor("mysql")
	assert.Error(t, err)
}

func TestDialect_BuilderPlaceholders(t *testing.T) {
	query, args, err := Postgres.Builder().Select("id").From("questions").Where("category = ?", 3).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM questions WHERE category = $1", query)
	assert.Equal(t, []interface{}{3}, args)

	query, _, err = Oracle.Builder().Select("id").From("questions").Where("category = ?", 3).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM questions WHERE category = :1", query)
}

func TestDialect_NextIDQuery(t *testing.T) {
	assert.Equal(t, "SELECT questions_seq.NEXTVAL FROM DUAL", Oracle.NextIDQuery("questions"))
}
