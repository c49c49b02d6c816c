package siigoclient

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/ledger-integrations-api/infrastructure/integrator"
	siigodomain "github.com/vfg2006/ledger-integrations-api/infrastructure/integrator/siigo/domain"
	"github.com/vfg2006/ledger-integrations-api/internal/domain"
	"github.com/vfg2006/ledger-integrations-api/pkg/metrics"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Login troca usuário e access key por um access token. Exatamente uma chamada, sem retry.
func (c *SiigoClient) Login(ctx context.Context, username, accessKey string) (*siigodomain.LoginResponse, error) {
	payload, err := json.Marshal(siigodomain.LoginRequest{Username: username, AccessKey: accessKey})
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar o login: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.authURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Partner-Id", c.partnerID)

	start := time.Now()
	body, err := integrator.Do(c.httpClient, req, domain.SourceSiigo, domain.ErrUpstreamAuth)
	metrics.ObserveProviderCall(string(domain.SourceSiigo), "login", err, time.Since(start))
	if err != nil {
		return nil, err
	}

	var response siigodomain.LoginResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, &domain.UpstreamError{
			Kind:       domain.ErrUpstreamAuth,
			Source:     domain.SourceSiigo,
			StatusCode: http.StatusOK,
			Body:       string(body),
			Err:        fmt.Errorf("erro ao decodificar a resposta: %w", err),
		}
	}

	if response.AccessToken == "" {
		return nil, &domain.UpstreamError{
			Kind:       domain.ErrUpstreamAuth,
			Source:     domain.SourceSiigo,
			StatusCode: http.StatusOK,
			Body:       "response without access_token",
		}
	}

	return &response, nil
}
