package alegra

import (
	"context"
	"encoding/base64"
	"net/http"

	"github.com/vfg2006/ledger-integrations-api/infrastructure/integrator"
	alegradomain "github.com/vfg2006/ledger-integrations-api/infrastructure/integrator/alegra/domain"
	"github.com/vfg2006/ledger-integrations-api/internal/domain"
)

const authType = "Basic"

// StaticKeyStrategy trata a API key do Alegra como credencial permanente: não há chamada de login
// e a autenticação apenas valida e guarda {email, apiKey}.
type StaticKeyStrategy struct{}

func NewStrategy() *StaticKeyStrategy {
	return &StaticKeyStrategy{}
}

func (s *StaticKeyStrategy) Source() domain.Source {
	return domain.SourceAlegra
}

func (s *StaticKeyStrategy) Authenticate(_ context.Context, params domain.AuthParams) (*domain.AuthResult, error) {
	var p alegradomain.AuthParams
	if err := integrator.DecodeParams(domain.SourceAlegra, params, &p); err != nil {
		return nil, err
	}

	return &domain.AuthResult{
		Credentials: domain.Credentials{
			Email:  p.Email,
			APIKey: p.APIKey,
		},
		Meta: domain.AuthMeta{
			Provider:  domain.SourceAlegra,
			Type:      authType,
			Validated: false,
		},
	}, nil
}

func (s *StaticKeyStrategy) BuildAuthHeaders(credentials domain.Credentials) (http.Header, error) {
	var missing []string
	if credentials.Email == "" {
		missing = append(missing, "email")
	}
	if credentials.APIKey == "" {
		missing = append(missing, "apiKey")
	}
	if len(missing) > 0 {
		return nil, domain.NewValidationError(domain.SourceAlegra, "incomplete credentials", missing...)
	}

	basic := base64.StdEncoding.EncodeToString([]byte(credentials.Email + ":" + credentials.APIKey))

	header := http.Header{}
	header.Set("Authorization", authType+" "+basic)
	header.Set("Content-Type", "application/json")
	header.Set("Accept", "application/json")
	return header, nil
}
