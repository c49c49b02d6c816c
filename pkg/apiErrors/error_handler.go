package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/ledger-integrations-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro retornados ao cliente
const (
	// Erros de autenticação (1000-1999)
	ErrInvalidToken          = "AUTH_006" // Token inválido
	ErrExpiredToken          = "AUTH_007" // Token expirado
	ErrInsufficientPrivilege = "AUTH_008" // Privilégios insuficientes

	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrMethodNotAllowed    = "VAL_004" // Método HTTP não suportado na rota

	// Erros de recurso (3000-3999)
	ErrResourceNotFound = "RES_001" // Recurso não encontrado

	// Erros de integração (4000-4999)
	ErrUnknownProvider    = "INT_001" // Provedor não suportado
	ErrNoActiveConnection = "INT_002" // Sem conexão ativa para o provedor
	ErrUpstreamAuth       = "INT_003" // Provedor recusou a autenticação
	ErrUpstreamFetch      = "INT_004" // Falha ao buscar dados no provedor
	ErrBadPayloadShape    = "INT_005" // Resposta do provedor em formato inesperado
	ErrSyncInProgress     = "INT_006" // Sincronização já em andamento
	ErrConcurrentUpdate   = "INT_007" // Conflito de escrita concorrente

	// Erros do servidor (5000-5999)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrMethodNotAllowed:      http.StatusMethodNotAllowed,
	ErrResourceNotFound:      http.StatusNotFound,
	ErrUnknownProvider:       http.StatusBadRequest,
	ErrNoActiveConnection:    http.StatusConflict,
	ErrUpstreamAuth:          http.StatusBadGateway,
	ErrUpstreamFetch:         http.StatusBadGateway,
	ErrBadPayloadShape:       http.StatusBadGateway,
	ErrSyncInProgress:        http.StatusConflict,
	ErrConcurrentUpdate:      http.StatusConflict,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor retorna o status HTTP associado ao código
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP.
// Detalhes só são expostos em desenvolvimento.
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	if !log.IsDevelopment() {
		details = nil
	}
	WritePublicError(w, code, message, details)
}

// WritePublicError escreve o erro mantendo os detalhes em qualquer ambiente
func WritePublicError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Success: false,
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	if err := json.NewEncoder(w).Encode(apiErr); err != nil {
		log.L.WithError(err).Error("Erro ao serializar resposta de erro")
	}
}

// WriteSuccess escreve {"success": true, ...fields} com o status informado
func WriteSuccess(w http.ResponseWriter, status int, fields map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	body := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		body[k] = v
	}
	body["success"] = true

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.L.WithError(err).Error("Erro ao serializar resposta")
	}
}
