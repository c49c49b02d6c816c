package alegra

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ledger-integrations-api/internal/domain"
)

func TestNormalize(t *testing.T) {
	raw := map[string]any{
		"id":       "101",
		"date":     "2024-03-05",
		"dueDate":  "2024-04-05",
		"status":   "closed",
		"subtotal": float64(90),
		"tax":      float64(10),
		"total":    float64(100),
		"currency": map[string]any{"code": "USD"},
		"client": map[string]any{
			"id":                   float64(7),
			"name":                 "Cliente SAS",
			"identificationObject": map[string]any{"type": "NIT", "number": "900123"},
			"email":                "cliente@sas.co",
		},
		"items": []any{
			map[string]any{"id": "3", "name": "Servicio", "quantity": float64(1), "price": float64(90), "tax": []any{map[string]any{"amount": float64(10)}}, "total": float64(100)},
		},
	}

	invoice, err := Normalize(raw, "biz-1")

	require.NoError(t, err)
	assert.Equal(t, "biz-1", invoice.BusinessID)
	assert.Equal(t, domain.SourceAlegra, invoice.Source)
	assert.Equal(t, "101", invoice.ExternalID)
	assert.Equal(t, "101", invoice.Number)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), invoice.Date)
	require.NotNil(t, invoice.DueDate)
	assert.Equal(t, time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC), *invoice.DueDate)
	assert.Equal(t, domain.InvoiceStatusPaid, invoice.Status)
	assert.Equal(t, 90.0, invoice.Subtotal)
	assert.Equal(t, 10.0, invoice.Taxes)
	assert.Equal(t, "USD", invoice.Currency)
	assert.Equal(t, domain.InvoiceClient{ExternalID: "7", Name: "Cliente SAS", Identification: "900123", Email: "cliente@sas.co"}, invoice.Client)
	require.Len(t, invoice.Items, 1)
	assert.Equal(t, 10.0, invoice.Items[0].Tax)
	assert.Equal(t, "101", invoice.RawData["id"])
}

func TestNormalize_Defaults(t *testing.T) {
	before := time.Now().UTC()

	invoice, err := Normalize(map[string]any{"number": "FV-9"}, "biz-1")

	require.NoError(t, err)
	assert.Equal(t, "FV-9", invoice.ExternalID)
	assert.Equal(t, 0.0, invoice.Subtotal)
	assert.Equal(t, 0.0, invoice.Taxes)
	assert.Equal(t, 0.0, invoice.Discounts)
	assert.Nil(t, invoice.DueDate)
	assert.False(t, invoice.Date.Before(before))
	assert.Equal(t, domain.InvoiceStatusPending, invoice.Status)
	assert.Empty(t, invoice.Items)
}

func TestNormalize_MissingExternalID(t *testing.T) {
	_, err := Normalize(map[string]any{"total": float64(10)}, "biz-1")

	assert.True(t, errors.Is(err, domain.ErrValidation))
}
