package main

import (
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func schemaSQL() string {
	var b strings.Builder
	for _, stmt := range statements {
		b.WriteString(stmt.query)
		b.WriteString("\n")
	}
	return b.String()
}

func TestStatements_Schema(t *testing.T) {
	schema := schemaSQL()

	assert.Contains(t, schema, "UNIQUE (business_id, source, external_id)")
	assert.Contains(t, schema, "version            INTEGER NOT NULL DEFAULT 1")
	assert.Contains(t, schema, "source_connections JSONB NOT NULL DEFAULT '[]'::jsonb")
	assert.Contains(t, schema, "is_deleted  BOOLEAN NOT NULL DEFAULT FALSE")

	for _, stmt := range statements {
		assert.Contains(t, stmt.query, "IF NOT EXISTS", stmt.name)
	}
}

func TestCreateSchema(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	for _, stmt := range statements {
		mock.ExpectExec(regexp.QuoteMeta(stmt.query)).WillReturnResult(sqlmock.NewResult(0, 0))
	}

	createSchema(db)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedBusiness(t *testing.T) {
	t.Setenv("SEED_BUSINESS_OWNER", "user-1")
	t.Setenv("SEED_BUSINESS_NAME", "Tienda")

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs("user-1", "Tienda").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO businesses (id, name, owner_id)")).
		WithArgs(sqlmock.AnyArg(), "Tienda", "user-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	seedBusiness(db)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedBusiness_SkipsWithoutOwner(t *testing.T) {
	t.Setenv("SEED_BUSINESS_OWNER", "")

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	seedBusiness(db)

	assert.NoError(t, mock.ExpectationsWereMet())
}
