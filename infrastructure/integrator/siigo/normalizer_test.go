package siigo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ledger-integrations-api/internal/domain"
)

func TestNormalize(t *testing.T) {
	raw := map[string]any{
		"document_id":        "d-55",
		"name":               "FV-1-55",
		"date":               "2024-02-10",
		"status":             "anulada",
		"total_before_taxes": "200.50",
		"tax":                float64(38),
		"discount":           float64(0.5),
		"total":              float64(1),
		"customer": map[string]any{
			"identification": "1020304050",
			"name":           []any{"Juan", "Perez"},
		},
		"items": []any{
			map[string]any{"code": "SKU-1", "description": "Producto", "quantity": float64(2), "price": float64(100.25), "taxes": []any{map[string]any{"value": float64(38)}}},
		},
	}

	invoice, err := Normalize(raw, "biz-9")

	require.NoError(t, err)
	assert.Equal(t, "d-55", invoice.ExternalID)
	assert.Equal(t, "FV-1-55", invoice.Number)
	assert.Equal(t, domain.SourceSiigo, invoice.Source)
	assert.Equal(t, time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC), invoice.Date)
	assert.Equal(t, domain.InvoiceStatusCancelled, invoice.Status)
	assert.Equal(t, 200.5, invoice.Subtotal)
	assert.Equal(t, 38.0, invoice.Taxes)
	assert.Equal(t, 0.5, invoice.Discounts)
	assert.Equal(t, "1020304050", invoice.Client.ExternalID)
	assert.Equal(t, "Juan Perez", invoice.Client.Name)
	require.Len(t, invoice.Items, 1)
	assert.Equal(t, "SKU-1", invoice.Items[0].ExternalID)
	assert.Equal(t, 38.0, invoice.Items[0].Tax)

	invoice.ApplyTotalInvariant()
	assert.Equal(t, 238.0, invoice.Total)
	assert.Equal(t, domain.DefaultCurrency, invoice.Currency)
}

func TestNormalize_ExternalIDFallbacks(t *testing.T) {
	tests := []struct {
		name     string
		raw      map[string]any
		expected string
	}{
		{"id", map[string]any{"id": "a", "document_id": "b", "number": float64(3)}, "a"},
		{"document_id", map[string]any{"document_id": "b", "number": float64(3)}, "b"},
		{"number", map[string]any{"number": float64(3)}, "3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			invoice, err := Normalize(tt.raw, "biz")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, invoice.ExternalID)
		})
	}
}

func TestNormalize_MissingExternalID(t *testing.T) {
	_, err := Normalize(map[string]any{"status": "open"}, "biz")

	assert.ErrorIs(t, err, domain.ErrValidation)
}
