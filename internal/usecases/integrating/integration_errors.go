package integrating

import (
	"errors"
	"fmt"

	"github.com/vfg2006/ledger-integrations-api/internal/domain"
	"github.com/vfg2006/ledger-integrations-api/pkg/apiErrors"
)

// IntegrationError é um erro com contexto adicional para integrações
type IntegrationError struct {
	Err        error         // Erro base
	Code       string        // Código de erro para API
	Source     domain.Source // Provedor envolvido (quando aplicável)
	BusinessID string        // Negócio envolvido (quando aplicável)
	Details    string        // Detalhes adicionais
}

// Error implementa a interface error
func (e *IntegrationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *IntegrationError) Unwrap() error {
	return e.Err
}

// NewIntegrationError envolve err com o código de API correspondente à sua classe
func NewIntegrationError(err error, source domain.Source, businessID string, details string) *IntegrationError {
	var existing *IntegrationError
	if errors.As(err, &existing) {
		return existing
	}

	return &IntegrationError{
		Err:        err,
		Code:       CodeFor(err),
		Source:     source,
		BusinessID: businessID,
		Details:    details,
	}
}

// CodeFor classifica um erro do núcleo em um código de API
func CodeFor(err error) string {
	var integrationErr *IntegrationError
	if errors.As(err, &integrationErr) && integrationErr.Code != "" {
		return integrationErr.Code
	}

	switch {
	case errors.Is(err, domain.ErrValidation):
		return apiErrors.ErrMissingRequiredData
	case errors.Is(err, domain.ErrUnknownProvider):
		return apiErrors.ErrUnknownProvider
	case errors.Is(err, domain.ErrUnauthorized):
		return apiErrors.ErrInvalidToken
	case errors.Is(err, domain.ErrForbidden):
		return apiErrors.ErrInsufficientPrivilege
	case errors.Is(err, domain.ErrNotFound):
		return apiErrors.ErrResourceNotFound
	case errors.Is(err, domain.ErrNoActiveConnection):
		return apiErrors.ErrNoActiveConnection
	case errors.Is(err, domain.ErrConcurrentUpdate), errors.Is(err, domain.ErrVersionConflict):
		return apiErrors.ErrConcurrentUpdate
	case errors.Is(err, domain.ErrSyncInProgress):
		return apiErrors.ErrSyncInProgress
	case errors.Is(err, domain.ErrUpstreamAuth):
		return apiErrors.ErrUpstreamAuth
	case errors.Is(err, domain.ErrUpstreamFetch):
		return apiErrors.ErrUpstreamFetch
	case errors.Is(err, domain.ErrBadPayloadShape):
		return apiErrors.ErrBadPayloadShape
	default:
		return apiErrors.ErrInternalServer
	}
}
