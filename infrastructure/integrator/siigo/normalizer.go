package siigo

import (
	"time"

	"github.com/vfg2006/ledger-integrations-api/internal/domain"
	"github.com/vfg2006/ledger-integrations-api/pkg/utils"
)

// Normalize converte uma fatura crua do Siigo para UnifiedInvoice.
// Datas ausentes viram "agora" e números ausentes viram 0.
func Normalize(raw map[string]any, businessID string) (*domain.UnifiedInvoice, error) {
	rec := utils.Record(raw)

	externalID := utils.FirstString(rec, "id", "document_id", "number")
	if externalID == "" {
		return nil, domain.NewValidationError(domain.SourceSiigo, "invoice without external id", "id")
	}

	number := utils.FirstString(rec, "number", "name")
	if number == "" {
		number = externalID
	}

	invoice := &domain.UnifiedInvoice{
		BusinessID: businessID,
		Source:     domain.SourceSiigo,
		ExternalID: externalID,
		Number:     number,
		Date:       time.Now().UTC(),
		Client:     customerOf(utils.FirstRecord(rec, "customer", "client")),
		Items:      itemsOf(utils.Records(rec, "items")),
		Subtotal:   utils.FirstNumber(rec, "subtotal", "total_before_taxes"),
		Taxes:      utils.FirstNumber(rec, "taxes", "tax"),
		Discounts:  utils.FirstNumber(rec, "discounts", "discount"),
		Total:      utils.FirstNumber(rec, "total"),
		Currency:   utils.FirstCode(rec, "currency"),
		Status:     domain.ParseInvoiceStatus(utils.FirstString(rec, "status")),
		RawData:    raw,
	}

	if date, ok := utils.FirstTime(rec, "date", "created"); ok {
		invoice.Date = date
	}
	if due, ok := utils.FirstTime(rec, "dueDate", "due_date"); ok {
		invoice.DueDate = &due
	}

	return invoice, nil
}

func customerOf(rec utils.Record) domain.InvoiceClient {
	return domain.InvoiceClient{
		ExternalID:     utils.FirstString(rec, "id", "identification", "code"),
		Name:           utils.FirstString(rec, "name", "fullName", "display_name"),
		Identification: utils.FirstString(rec, "identification"),
		Email:          utils.FirstString(rec, "email"),
	}
}

func itemsOf(records []utils.Record) []domain.InvoiceItem {
	items := make([]domain.InvoiceItem, 0, len(records))
	for _, it := range records {
		items = append(items, domain.InvoiceItem{
			ExternalID:  utils.FirstString(it, "id", "code"),
			Name:        utils.FirstString(it, "name", "code"),
			Description: utils.FirstString(it, "description"),
			Quantity:    utils.FirstNumber(it, "quantity"),
			Price:       utils.FirstNumber(it, "price"),
			Tax:         taxOf(it),
			Total:       utils.FirstNumber(it, "total"),
		})
	}
	return items
}

// no Siigo os impostos do item vêm em taxes: [{"id": 13156, "value": 19}]
func taxOf(item utils.Record) float64 {
	if taxes := utils.Records(item, "taxes"); len(taxes) > 0 {
		var sum float64
		for _, t := range taxes {
			sum += utils.FirstNumber(t, "value", "amount")
		}
		return sum
	}
	return utils.FirstNumber(item, "tax", "taxes")
}
