package alegra

import (
	"time"

	"github.com/vfg2006/ledger-integrations-api/internal/domain"
	"github.com/vfg2006/ledger-integrations-api/pkg/utils"
)

// Normalize converte uma fatura crua do Alegra para UnifiedInvoice.
// Datas ausentes viram "agora" e números ausentes viram 0.
func Normalize(raw map[string]any, businessID string) (*domain.UnifiedInvoice, error) {
	rec := utils.Record(raw)

	externalID := utils.FirstString(rec, "id", "number")
	if externalID == "" {
		return nil, domain.NewValidationError(domain.SourceAlegra, "invoice without external id", "id")
	}

	invoice := &domain.UnifiedInvoice{
		BusinessID: businessID,
		Source:     domain.SourceAlegra,
		ExternalID: externalID,
		Number:     numberOf(rec, externalID),
		Date:       time.Now().UTC(),
		Client:     clientOf(utils.FirstRecord(rec, "client")),
		Items:      itemsOf(utils.Records(rec, "items")),
		Subtotal:   utils.FirstNumber(rec, "subtotal"),
		Taxes:      utils.FirstNumber(rec, "taxes", "tax"),
		Discounts:  utils.FirstNumber(rec, "discounts", "discount"),
		Total:      utils.FirstNumber(rec, "total"),
		Currency:   utils.FirstCode(rec, "currency"),
		Status:     domain.ParseInvoiceStatus(utils.FirstString(rec, "status")),
		RawData:    raw,
	}

	if date, ok := utils.FirstTime(rec, "date", "datetime"); ok {
		invoice.Date = date
	}
	if due, ok := utils.FirstTime(rec, "dueDate"); ok {
		invoice.DueDate = &due
	}

	return invoice, nil
}

// o Alegra às vezes devolve numberTemplate.fullNumber em vez de number
func numberOf(rec utils.Record, fallback string) string {
	if n := utils.FirstString(rec, "number"); n != "" {
		return n
	}
	if n := utils.FirstString(utils.FirstRecord(rec, "numberTemplate"), "fullNumber", "number"); n != "" {
		return n
	}
	return fallback
}

func clientOf(rec utils.Record) domain.InvoiceClient {
	identification := utils.FirstString(rec, "identification")
	if identification == "" {
		// identificationObject: {"type": "NIT", "number": "900123"}
		identification = utils.FirstString(utils.FirstRecord(rec, "identification", "identificationObject"), "number")
	}

	return domain.InvoiceClient{
		ExternalID:     utils.FirstString(rec, "id"),
		Name:           utils.FirstString(rec, "name"),
		Identification: identification,
		Email:          utils.FirstString(rec, "email"),
	}
}

func itemsOf(records []utils.Record) []domain.InvoiceItem {
	items := make([]domain.InvoiceItem, 0, len(records))
	for _, it := range records {
		items = append(items, domain.InvoiceItem{
			ExternalID:  utils.FirstString(it, "id"),
			Name:        utils.FirstString(it, "name"),
			Description: utils.FirstString(it, "description"),
			Quantity:    utils.FirstNumber(it, "quantity"),
			Price:       utils.FirstNumber(it, "price"),
			Tax:         taxOf(it),
			Total:       utils.FirstNumber(it, "total"),
		})
	}
	return items
}

// tax pode vir como número ou como lista de impostos [{"amount": 19}]
func taxOf(item utils.Record) float64 {
	if taxes := utils.Records(item, "tax"); len(taxes) > 0 {
		var sum float64
		for _, t := range taxes {
			sum += utils.FirstNumber(t, "amount")
		}
		return sum
	}
	return utils.FirstNumber(item, "tax")
}
