package siigo

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/ledger-integrations-api/infrastructure/integrator"
	siigodomain "github.com/vfg2006/ledger-integrations-api/infrastructure/integrator/siigo/domain"
	"github.com/vfg2006/ledger-integrations-api/infrastructure/integrator/siigo/siigoclient"
	"github.com/vfg2006/ledger-integrations-api/internal/domain"
	"github.com/vfg2006/ledger-integrations-api/pkg/log"
)

const (
	authType = "Bearer"

	// usado quando o Siigo não informa expires_in
	DefaultTokenTTL = time.Hour
)

// ExpiringTokenStrategy troca usuário e access key por um token de curta duração a cada autenticação
type ExpiringTokenStrategy struct {
	client siigoclient.Client
	now    func() time.Time
}

func NewStrategy(client siigoclient.Client) *ExpiringTokenStrategy {
	return &ExpiringTokenStrategy{
		client: client,
		now:    time.Now,
	}
}

func (s *ExpiringTokenStrategy) Source() domain.Source {
	return domain.SourceSiigo
}

func (s *ExpiringTokenStrategy) Authenticate(ctx context.Context, params domain.AuthParams) (*domain.AuthResult, error) {
	var p siigodomain.AuthParams
	if err := integrator.DecodeParams(domain.SourceSiigo, params, &p); err != nil {
		return nil, err
	}

	response, err := s.client.Login(ctx, p.Username, p.AccessKey)
	if err != nil {
		log.ForContext(ctx).WithField("source", domain.SourceSiigo).WithError(err).Warn("Login no Siigo recusado")
		return nil, err
	}

	expiresAt := CalculateTokenExpiration(s.now(), response.ExpiresIn)

	return &domain.AuthResult{
		Credentials: domain.Credentials{
			AccessToken: response.AccessToken,
			ExpiresAt:   &expiresAt,
		},
		Meta: domain.AuthMeta{
			Provider:  domain.SourceSiigo,
			Type:      authType,
			Validated: true,
			ExpiresAt: &expiresAt,
		},
	}, nil
}

func (s *ExpiringTokenStrategy) BuildAuthHeaders(credentials domain.Credentials) (http.Header, error) {
	if credentials.AccessToken == "" {
		return nil, domain.NewValidationError(domain.SourceSiigo, "incomplete credentials", "accessToken")
	}

	header := http.Header{}
	header.Set("Authorization", authType+" "+credentials.AccessToken)
	header.Set("Content-Type", "application/json")
	header.Set("Accept", "application/json")
	return header, nil
}

// CalculateTokenExpiration retorna now + expiresIn segundos, ou now + DefaultTokenTTL se expiresIn não veio
func CalculateTokenExpiration(now time.Time, expiresIn int64) time.Time {
	if expiresIn <= 0 {
		return now.Add(DefaultTokenTTL)
	}
	return now.Add(time.Duration(expiresIn) * time.Second)
}
