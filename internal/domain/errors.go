package domain

import (
	"errors"
	"fmt"
)

// Taxonomia de erros do núcleo de integrações
var (
	// Erros de entrada
	ErrValidation      = errors.New("validation error")
	ErrUnknownProvider = errors.New("unknown provider")

	// Erros de identidade e posse
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")

	// Erros de conexão
	ErrNoActiveConnection = errors.New("no active connection")
	ErrVersionConflict    = errors.New("business version conflict")
	ErrConcurrentUpdate   = errors.New("concurrent update on business connections")
	ErrSyncInProgress     = errors.New("sync already in progress")

	// Erros de provedores externos
	ErrUpstreamAuth    = errors.New("upstream authentication failed")
	ErrUpstreamFetch   = errors.New("upstream fetch failed")
	ErrBadPayloadShape = errors.New("unexpected payload shape")
)

// ValidationError descreve quais campos obrigatórios estão ausentes ou inválidos
type ValidationError struct {
	Source Source
	Fields []string
	Reason string
}

func (e *ValidationError) Error() string {
	msg := e.Reason
	if msg == "" {
		msg = "invalid input"
	}
	if len(e.Fields) > 0 {
		msg = fmt.Sprintf("%s: %v", msg, e.Fields)
	}
	if e.Source != "" {
		return fmt.Sprintf("%s: %s", e.Source, msg)
	}
	return msg
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError cria um ValidationError para os campos informados
func NewValidationError(source Source, reason string, fields ...string) *ValidationError {
	return &ValidationError{
		Source: source,
		Fields: fields,
		Reason: reason,
	}
}

// UpstreamError preserva o status e o corpo retornados pelo provedor para diagnóstico
type UpstreamError struct {
	Kind       error // ErrUpstreamAuth ou ErrUpstreamFetch
	Source     Source
	StatusCode int
	Body       string
	Err        error // erro de transporte, quando não houve resposta
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Source, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s: status %d: %s", e.Source, e.Kind, e.StatusCode, e.Body)
}

// Unwrap permite errors.Is tanto contra o tipo (Kind) quanto contra o erro de transporte
func (e *UpstreamError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

// Retryable indica se a falha é transitória (5xx, 429 ou erro de transporte)
func (e *UpstreamError) Retryable() bool {
	if e.Err != nil {
		return true
	}
	return e.StatusCode >= 500 || e.StatusCode == 429
}
