package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/ledger-integrations-api/internal/domain"
	"github.com/vfg2006/ledger-integrations-api/internal/usecases/integrating"
	"github.com/vfg2006/ledger-integrations-api/pkg/apiErrors"
	"github.com/vfg2006/ledger-integrations-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// mensagens públicas por código; o erro original só vai para o log e para details em desenvolvimento
var errorMessages = map[string]string{
	apiErrors.ErrMissingRequiredData:   "Dados obrigatórios ausentes ou inválidos",
	apiErrors.ErrUnknownProvider:       "Provedor não suportado",
	apiErrors.ErrInvalidToken:          "Usuário não autenticado",
	apiErrors.ErrInsufficientPrivilege: "Você não tem permissão para acessar este negócio",
	apiErrors.ErrResourceNotFound:      "Negócio não encontrado",
	apiErrors.ErrNoActiveConnection:    "Não há conexão ativa para o provedor",
	apiErrors.ErrConcurrentUpdate:      "Conflito ao gravar conexões, tente novamente",
	apiErrors.ErrSyncInProgress:        "Sincronização já em andamento para este provedor",
	apiErrors.ErrUpstreamAuth:          "O provedor recusou a autenticação",
	apiErrors.ErrUpstreamFetch:         "Erro ao buscar dados no provedor",
	apiErrors.ErrBadPayloadShape:       "Resposta do provedor em formato inesperado",
}

// writeIntegrationError classifica err e escreve o envelope de erro com o status correspondente
func writeIntegrationError(w http.ResponseWriter, r *http.Request, err error) {
	code := integrating.CodeFor(err)

	message, ok := errorMessages[code]
	if !ok {
		message = "Erro interno do servidor"
	}

	entry := log.ForContext(r.Context()).WithError(err).WithField("code", code)
	if apiErrors.StatusFor(code) >= http.StatusInternalServerError {
		entry.Error("Erro ao processar requisição de integração")
	} else {
		entry.Warn("Requisição de integração recusada")
	}

	// campos ausentes são informação do próprio cliente, então sempre voltam
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		apiErrors.WritePublicError(w, code, message, map[string]any{
			"fields": validationErr.Fields,
			"reason": validationErr.Reason,
		})
		return
	}

	var upstreamErr *domain.UpstreamError
	if errors.As(err, &upstreamErr) {
		apiErrors.WriteError(w, code, message, map[string]any{
			"source":     upstreamErr.Source,
			"statusCode": upstreamErr.StatusCode,
			"body":       upstreamErr.Body,
		})
		return
	}

	apiErrors.WriteError(w, code, message, err.Error())
}
