package repository

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/ledger-integrations-api/infrastructure/database/postgres"
	"github.com/vfg2006/ledger-integrations-api/internal/domain"
	"github.com/vfg2006/ledger-integrations-api/pkg/utils"
)

const (
	invoicesTable   = "invoices i"
	invoiceColumns  = "i.id, i.business_id, i.source, i.external_id, i.number, i.date, i.due_date, i.client, i.items, i.subtotal, i.taxes, i.discounts, i.total, i.currency, i.status, i.raw_data, i.is_deleted, i.created_at, i.updated_at"
	defaultPageSize = 100
)

type InvoiceRepository interface {
	// Upsert grava a fatura pela chave (business, source, externalId) e informa se foi criada
	Upsert(ctx context.Context, invoice *domain.UnifiedInvoice) (bool, error)
	ListByBusiness(ctx context.Context, businessID string, filter domain.InvoiceFilter) ([]*domain.UnifiedInvoice, error)
}

type invoiceRepository struct {
	conn *postgres.Connection
}

func NewInvoiceRepository(conn *postgres.Connection) InvoiceRepository {
	return &invoiceRepository{
		conn: conn,
	}
}

func (r *invoiceRepository) Upsert(ctx context.Context, invoice *domain.UnifiedInvoice) (bool, error) {
	invoice.ApplyTotalInvariant()

	if invoice.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return false, errors.Wrap(err, "erro ao gerar id da fatura")
		}
		invoice.ID = id
	}

	clientJSON, err := json.Marshal(invoice.Client)
	if err != nil {
		return false, errors.Wrap(err, "erro ao serializar cliente para JSON")
	}

	items := invoice.Items
	if items == nil {
		items = []domain.InvoiceItem{}
	}
	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return false, errors.Wrap(err, "erro ao serializar itens para JSON")
	}

	rawJSON, err := json.Marshal(invoice.RawData)
	if err != nil {
		return false, errors.Wrap(err, "erro ao serializar rawData para JSON")
	}

	var dueDate any
	if invoice.DueDate != nil {
		dueDate = *invoice.DueDate
	}

	query, args, err := squirrel.
		Insert("invoices").
		Columns(
			"id", "business_id", "source", "external_id", "number", "date", "due_date",
			"client", "items", "subtotal", "taxes", "discounts", "total",
			"currency", "status", "raw_data",
		).
		Values(
			invoice.ID,
			invoice.BusinessID,
			string(invoice.Source),
			invoice.ExternalID,
			invoice.Number,
			invoice.Date,
			dueDate,
			string(clientJSON),
			string(itemsJSON),
			invoice.Subtotal,
			invoice.Taxes,
			invoice.Discounts,
			invoice.Total,
			invoice.Currency,
			string(invoice.Status),
			string(rawJSON),
		).
		Suffix(`
			ON CONFLICT (business_id, source, external_id) DO UPDATE SET
				number = EXCLUDED.number,
				date = EXCLUDED.date,
				due_date = EXCLUDED.due_date,
				client = EXCLUDED.client,
				items = EXCLUDED.items,
				subtotal = EXCLUDED.subtotal,
				taxes = EXCLUDED.taxes,
				discounts = EXCLUDED.discounts,
				total = EXCLUDED.total,
				currency = EXCLUDED.currency,
				status = EXCLUDED.status,
				raw_data = EXCLUDED.raw_data,
				updated_at = NOW()
			RETURNING id, created_at, updated_at, (xmax = 0) AS inserted
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, errors.Wrap(err, "erro ao construir a query")
	}

	var inserted bool
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&invoice.ID, &invoice.CreatedAt, &invoice.UpdatedAt, &inserted)
	if err != nil {
		return false, errors.Wrapf(err, "erro ao gravar fatura %s/%s", invoice.Source, invoice.ExternalID)
	}

	return inserted, nil
}

// ListByBusiness nunca retorna faturas marcadas como excluídas
func (r *invoiceRepository) ListByBusiness(ctx context.Context, businessID string, filter domain.InvoiceFilter) ([]*domain.UnifiedInvoice, error) {
	builder := squirrel.
		Select(invoiceColumns).
		From(invoicesTable).
		Where(squirrel.Eq{"i.business_id": businessID, "i.is_deleted": false}).
		OrderBy("i.date DESC", "i.id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if filter.Source != nil {
		builder = builder.Where(squirrel.Eq{"i.source": string(*filter.Source)})
	}
	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"i.status": string(*filter.Status)})
	}

	limit := filter.Limit
	if limit == 0 {
		limit = defaultPageSize
	}
	builder = builder.Limit(limit).Offset(filter.Offset)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query")
	}
	defer rows.Close()

	invoices := make([]*domain.UnifiedInvoice, 0)
	for rows.Next() {
		invoice, err := scanInvoice(rows)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear fatura")
		}
		invoices = append(invoices, invoice)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return invoices, nil
}

func scanInvoice(row rowScanner) (*domain.UnifiedInvoice, error) {
	var (
		invoice                        domain.UnifiedInvoice
		source, status                 string
		dueDate                        *time.Time
		clientJSON, itemsJSON, rawJSON []byte
	)

	if err := row.Scan(
		&invoice.ID,
		&invoice.BusinessID,
		&source,
		&invoice.ExternalID,
		&invoice.Number,
		&invoice.Date,
		&dueDate,
		&clientJSON,
		&itemsJSON,
		&invoice.Subtotal,
		&invoice.Taxes,
		&invoice.Discounts,
		&invoice.Total,
		&invoice.Currency,
		&status,
		&rawJSON,
		&invoice.IsDeleted,
		&invoice.CreatedAt,
		&invoice.UpdatedAt,
	); err != nil {
		return nil, err
	}

	invoice.Source = domain.Source(source)
	invoice.Status = domain.InvoiceStatus(status)
	invoice.DueDate = dueDate

	if len(clientJSON) > 0 {
		if err := json.Unmarshal(clientJSON, &invoice.Client); err != nil {
			return nil, errors.Wrap(err, "erro ao desserializar cliente")
		}
	}
	if len(itemsJSON) > 0 {
		if err := json.Unmarshal(itemsJSON, &invoice.Items); err != nil {
			return nil, errors.Wrap(err, "erro ao desserializar itens")
		}
	}
	if len(rawJSON) > 0 {
		if err := json.Unmarshal(rawJSON, &invoice.RawData); err != nil {
			return nil, errors.Wrap(err, "erro ao desserializar rawData")
		}
	}

	return &invoice, nil
}
