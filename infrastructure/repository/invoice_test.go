package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ledger-integrations-api/infrastructure/database/postgres"
	"github.com/vfg2006/ledger-integrations-api/internal/domain"
)

func newInvoiceRepo(t *testing.T) (InvoiceRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewInvoiceRepository(postgres.Wrap(db)), mock
}

func TestInvoiceRepository_Upsert(t *testing.T) {
	now := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		inserted bool
	}{
		{"primeira gravação cria", true},
		{"gravação repetida atualiza", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newInvoiceRepo(t)
			invoice := &domain.UnifiedInvoice{
				BusinessID: "biz-1",
				Source:     domain.SourceAlegra,
				ExternalID: "1",
				Date:       now,
				Subtotal:   90,
				Taxes:      10,
				Total:      999,
			}

			mock.ExpectQuery(regexp.QuoteMeta("ON CONFLICT (business_id, source, external_id) DO UPDATE SET")).
				WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at", "inserted"}).
					AddRow("stored-id", now, now, tt.inserted))

			created, err := repo.Upsert(context.Background(), invoice)

			require.NoError(t, err)
			assert.Equal(t, tt.inserted, created)
			assert.Equal(t, "stored-id", invoice.ID)
			assert.Equal(t, 100.0, invoice.Total)
			assert.Equal(t, domain.DefaultCurrency, invoice.Currency)
			assert.Equal(t, domain.InvoiceStatusPending, invoice.Status)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestInvoiceRepository_Upsert_Error(t *testing.T) {
	repo, mock := newInvoiceRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO invoices")).
		WillReturnError(errors.New("connection refused"))

	_, err := repo.Upsert(context.Background(), &domain.UnifiedInvoice{BusinessID: "biz-1", Source: domain.SourceSiigo, ExternalID: "x"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "siigo/x")
}

func TestInvoiceRepository_ListByBusiness(t *testing.T) {
	repo, mock := newInvoiceRepo(t)
	now := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	source := domain.SourceAlegra

	columns := []string{"id", "business_id", "source", "external_id", "number", "date", "due_date", "client", "items",
		"subtotal", "taxes", "discounts", "total", "currency", "status", "raw_data", "is_deleted", "created_at", "updated_at"}

	mock.ExpectQuery(regexp.QuoteMeta("FROM invoices i WHERE i.business_id = $1 AND i.is_deleted = $2 AND i.source = $3")).
		WithArgs("biz-1", false, "alegra").
		WillReturnRows(sqlmock.NewRows(columns).AddRow(
			"inv-1", "biz-1", "alegra", "1", "FV-1", now, nil,
			[]byte(`{"name":"Cliente"}`), []byte(`[{"name":"Item","quantity":1,"price":90,"tax":10,"total":100}]`),
			90.0, 10.0, 0.0, 100.0, "COP", "paid", []byte(`{"id":"1"}`), false, now, now,
		))

	invoices, err := repo.ListByBusiness(context.Background(), "biz-1", domain.InvoiceFilter{Source: &source})

	require.NoError(t, err)
	require.Len(t, invoices, 1)
	assert.Equal(t, domain.InvoiceStatusPaid, invoices[0].Status)
	assert.Equal(t, "Cliente", invoices[0].Client.Name)
	assert.Len(t, invoices[0].Items, 1)
	assert.Nil(t, invoices[0].DueDate)
	assert.Equal(t, "1", invoices[0].RawData["id"])
	assert.NoError(t, mock.ExpectationsWereMet())
}
