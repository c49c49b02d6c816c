package integrating

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/vfg2006/ledger-integrations-api/infrastructure/repository"
	"github.com/vfg2006/ledger-integrations-api/internal/domain"
	"github.com/vfg2006/ledger-integrations-api/pkg/log"
)

// MaxWriteAttempts limita o loop de compare-and-swap sobre as conexões do negócio
const MaxWriteAttempts = 3

// Strategy encapsula como autenticar em um provedor e como montar os headers das chamadas de dados
type Strategy interface {
	Source() domain.Source
	Authenticate(ctx context.Context, params domain.AuthParams) (*domain.AuthResult, error)
	BuildAuthHeaders(credentials domain.Credentials) (http.Header, error)
}

type Orchestrator interface {
	Authenticate(ctx context.Context, source domain.Source, businessID string, params domain.AuthParams) (*domain.AuthenticateResponse, error)
	AssertOwnership(ctx context.Context, businessID string, userID domain.UserID) (*domain.Business, error)
	GetActiveConnection(ctx context.Context, businessID string, source domain.Source) (*domain.Connection, error)
	ConnectionStatus(ctx context.Context, businessID string, source domain.Source) (*domain.ConnectionView, error)
	BuildAuthHeaders(source domain.Source, credentials domain.Credentials) (http.Header, error)
	MarkSynced(ctx context.Context, businessID string, source domain.Source, at time.Time) error
}

type Service struct {
	businessRepository repository.BusinessRepository
	strategies         map[domain.Source]Strategy
}

func NewService(businessRepository repository.BusinessRepository, strategies ...Strategy) *Service {
	registry := make(map[domain.Source]Strategy, len(strategies))
	for _, s := range strategies {
		registry[s.Source()] = s
	}

	return &Service{
		businessRepository: businessRepository,
		strategies:         registry,
	}
}

func (s *Service) strategy(source domain.Source) (Strategy, error) {
	strategy, ok := s.strategies[source]
	if !ok {
		return nil, NewIntegrationError(domain.ErrUnknownProvider, source, "", "no strategy registered for "+string(source))
	}
	return strategy, nil
}

// Authenticate obtém credenciais pela estratégia do provedor e grava a conexão no negócio.
// Provedor desconhecido falha antes de qualquer leitura ou escrita.
func (s *Service) Authenticate(ctx context.Context, source domain.Source, businessID string, params domain.AuthParams) (*domain.AuthenticateResponse, error) {
	strategy, err := s.strategy(source)
	if err != nil {
		return nil, err
	}

	if _, err := s.loadBusiness(ctx, businessID); err != nil {
		return nil, err
	}

	result, err := strategy.Authenticate(ctx, params)
	if err != nil {
		return nil, NewIntegrationError(err, source, businessID, "")
	}

	business, err := s.updateConnections(ctx, businessID, func(b *domain.Business) error {
		b.UpsertConnection(source, result.Credentials)
		return nil
	})
	if err != nil {
		return nil, NewIntegrationError(err, source, businessID, "")
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"source":      source,
		"business_id": businessID,
	}).Info("Conexão autenticada")

	return &domain.AuthenticateResponse{
		Business: business.Redacted(),
		Meta:     result.Meta,
	}, nil
}

func (s *Service) AssertOwnership(ctx context.Context, businessID string, userID domain.UserID) (*domain.Business, error) {
	if userID == "" {
		return nil, NewIntegrationError(domain.ErrUnauthorized, "", businessID, "")
	}

	business, err := s.loadBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}

	if !business.IsOwnedBy(userID) {
		return nil, NewIntegrationError(domain.ErrForbidden, "", businessID, "business not owned by caller")
	}

	return business, nil
}

func (s *Service) GetActiveConnection(ctx context.Context, businessID string, source domain.Source) (*domain.Connection, error) {
	business, err := s.loadBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}

	conn := business.ActiveConnection(source)
	if conn == nil {
		return nil, NewIntegrationError(domain.ErrNoActiveConnection, source, businessID, "")
	}

	return conn, nil
}

func (s *Service) ConnectionStatus(ctx context.Context, businessID string, source domain.Source) (*domain.ConnectionView, error) {
	conn, err := s.GetActiveConnection(ctx, businessID, source)
	if err != nil {
		return nil, err
	}

	view := conn.View()
	return &view, nil
}

func (s *Service) BuildAuthHeaders(source domain.Source, credentials domain.Credentials) (http.Header, error) {
	strategy, err := s.strategy(source)
	if err != nil {
		return nil, err
	}

	header, err := strategy.BuildAuthHeaders(credentials)
	if err != nil {
		return nil, NewIntegrationError(err, source, "", "")
	}

	return header, nil
}

// MarkSynced registra lastSync na conexão ativa depois de uma sincronização concluída
func (s *Service) MarkSynced(ctx context.Context, businessID string, source domain.Source, at time.Time) error {
	_, err := s.updateConnections(ctx, businessID, func(b *domain.Business) error {
		conn := b.ActiveConnection(source)
		if conn == nil {
			return domain.ErrNoActiveConnection
		}
		syncedAt := at.UTC()
		conn.LastSync = &syncedAt
		return nil
	})
	if err != nil {
		return NewIntegrationError(err, source, businessID, "")
	}
	return nil
}

func (s *Service) loadBusiness(ctx context.Context, businessID string) (*domain.Business, error) {
	if businessID == "" {
		return nil, NewIntegrationError(domain.NewValidationError("", "businessId is required", "businessId"), "", "", "")
	}

	business, err := s.businessRepository.GetBusinessByID(ctx, businessID)
	if err != nil {
		return nil, NewIntegrationError(err, "", businessID, "")
	}
	if business == nil {
		return nil, NewIntegrationError(domain.ErrNotFound, "", businessID, "business not found")
	}

	return business, nil
}

// updateConnections relê o negócio e reaplica mutate a cada conflito de versão, até MaxWriteAttempts
func (s *Service) updateConnections(ctx context.Context, businessID string, mutate func(*domain.Business) error) (*domain.Business, error) {
	for attempt := 1; attempt <= MaxWriteAttempts; attempt++ {
		business, err := s.loadBusiness(ctx, businessID)
		if err != nil {
			return nil, err
		}

		if err := mutate(business); err != nil {
			return nil, err
		}

		err = s.businessRepository.UpdateConnections(ctx, business)
		if err == nil {
			return business, nil
		}
		if !errors.Is(err, domain.ErrVersionConflict) {
			return nil, err
		}

		log.ForContext(ctx).WithFields(log.Fields{
			"business_id": businessID,
			"attempt":     attempt,
		}).Warn("Conflito de versão ao gravar conexões, relendo negócio")
	}

	return nil, domain.ErrConcurrentUpdate
}
