package syncing

import (
	"context"
	"time"

	"github.com/vfg2006/ledger-integrations-api/infrastructure/repository"
	"github.com/vfg2006/ledger-integrations-api/internal/domain"
	"github.com/vfg2006/ledger-integrations-api/internal/usecases/integrating"
	"github.com/vfg2006/ledger-integrations-api/pkg/log"
	"github.com/vfg2006/ledger-integrations-api/pkg/metrics"
	"github.com/vfg2006/ledger-integrations-api/pkg/tracing"
	"github.com/vfg2006/ledger-integrations-api/pkg/utils"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	outcomeCreated = "created"
	outcomeUpdated = "updated"
	outcomeFailed  = "failed"
)

type Service struct {
	connections       ConnectionProvider
	invoiceRepository repository.InvoiceRepository
	providers         map[domain.Source]InvoiceProvider
	locker            Locker
	now               func() time.Time
}

func NewService(
	connections ConnectionProvider,
	invoiceRepository repository.InvoiceRepository,
	locker Locker,
	providers ...InvoiceProvider,
) *Service {
	registry := make(map[domain.Source]InvoiceProvider, len(providers))
	for _, p := range providers {
		registry[p.Source()] = p
	}

	if locker == nil {
		locker = NewMemoryLocker()
	}

	return &Service{
		connections:       connections,
		invoiceRepository: invoiceRepository,
		providers:         registry,
		locker:            locker,
		now:               time.Now,
	}
}

// SyncInvoices busca uma página de faturas do provedor e grava cada registro por (negócio, provedor, externalId).
// Falhas de um registro entram em Failed e não interrompem o lote.
func (s *Service) SyncInvoices(ctx context.Context, source domain.Source, businessID string, query domain.SyncQuery) (result *domain.SyncResult, err error) {
	ctx, span := tracing.Tracer().Start(ctx, "sync.invoices")
	span.SetAttributes(
		attribute.String("sync.source", string(source)),
		attribute.String("sync.business_id", businessID),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
		metrics.ObserveSyncRun(string(source), err)
	}()

	provider, ok := s.providers[source]
	if !ok {
		return nil, integrating.NewIntegrationError(domain.ErrUnknownProvider, source, businessID, "no invoice provider registered")
	}

	release, err := s.locker.Acquire(ctx, LockKey(businessID, source))
	if err != nil {
		return nil, integrating.NewIntegrationError(err, source, businessID, "")
	}
	defer func() {
		if releaseErr := release(context.WithoutCancel(ctx)); releaseErr != nil {
			log.ForContext(ctx).WithError(releaseErr).Warn("Erro ao liberar lock de sincronização")
		}
	}()

	conn, err := s.connections.GetActiveConnection(ctx, businessID, source)
	if err != nil {
		return nil, err
	}

	if conn.Credentials.ExpiresAt != nil && conn.Credentials.ExpiresAt.Before(s.now()) {
		log.ForContext(ctx).WithFields(log.Fields{
			"source":      source,
			"business_id": businessID,
		}).Warn("Token do provedor expirado, a busca deve falhar até nova autenticação")
	}

	header, err := s.connections.BuildAuthHeaders(source, conn.Credentials)
	if err != nil {
		return nil, integrating.NewIntegrationError(err, source, businessID, "")
	}

	body, err := provider.FetchInvoices(ctx, header, query)
	if err != nil {
		return nil, integrating.NewIntegrationError(err, source, businessID, "")
	}

	records, err := UnwrapList(body)
	if err != nil {
		return nil, integrating.NewIntegrationError(err, source, businessID, "")
	}

	result = s.processRecords(ctx, provider, businessID, records)
	span.SetAttributes(
		attribute.Int("sync.created", result.Created),
		attribute.Int("sync.updated", result.Updated),
		attribute.Int("sync.failed", len(result.Failed)),
	)

	if err := s.connections.MarkSynced(ctx, businessID, source, s.now()); err != nil {
		log.ForContext(ctx).WithError(err).WithFields(log.Fields{
			"source":      source,
			"business_id": businessID,
		}).Error("Erro ao registrar lastSync após sincronização")
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"source":      source,
		"business_id": businessID,
		"created":     result.Created,
		"updated":     result.Updated,
		"failed":      len(result.Failed),
		"total":       result.Total,
	}).Info("Sincronização de faturas concluída")

	return result, nil
}

func (s *Service) processRecords(ctx context.Context, provider InvoiceProvider, businessID string, records []utils.Record) *domain.SyncResult {
	result := &domain.SyncResult{
		Source: provider.Source(),
		Total:  len(records),
		Failed: []domain.SyncFailure{},
	}

	for _, rec := range records {
		inserted, externalID, err := s.processRecord(ctx, provider, businessID, rec)
		if err != nil {
			log.ForContext(ctx).WithError(err).WithFields(log.Fields{
				"source":      provider.Source(),
				"business_id": businessID,
				"external_id": externalID,
			}).Warn("Registro ignorado na sincronização")

			result.Failed = append(result.Failed, domain.SyncFailure{
				ExternalID: externalID,
				Reason:     err.Error(),
			})
			continue
		}

		if inserted {
			result.Created++
		} else {
			result.Updated++
		}
	}

	source := string(provider.Source())
	metrics.ObserveSyncRecords(source, outcomeCreated, result.Created)
	metrics.ObserveSyncRecords(source, outcomeUpdated, result.Updated)
	metrics.ObserveSyncRecords(source, outcomeFailed, len(result.Failed))

	return result
}

// processRecord normaliza e grava um único registro; o panic de um normalizador vira falha do registro
func (s *Service) processRecord(ctx context.Context, provider InvoiceProvider, businessID string, rec utils.Record) (inserted bool, externalID string, err error) {
	externalID = utils.FirstString(rec, "id", "document_id", "number")

	defer func() {
		if r := recover(); r != nil {
			err = domain.NewValidationError(provider.Source(), "record could not be normalized")
		}
	}()

	invoice, err := provider.Normalize(rec, businessID)
	if err != nil {
		return false, externalID, err
	}
	if invoice.ExternalID == "" {
		return false, externalID, domain.NewValidationError(provider.Source(), "missing external id", "externalId")
	}
	externalID = invoice.ExternalID

	inserted, err = s.invoiceRepository.Upsert(ctx, invoice)
	if err != nil {
		return false, externalID, err
	}

	return inserted, externalID, nil
}
