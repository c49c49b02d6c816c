package apiErrors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name           string
		env            string
		code           string
		expectedStatus int
		expectDetails  bool
	}{
		{"provedor desconhecido", "development", ErrUnknownProvider, http.StatusBadRequest, true},
		{"sem conexão ativa", "development", ErrNoActiveConnection, http.StatusConflict, true},
		{"falha no provedor", "development", ErrUpstreamFetch, http.StatusBadGateway, true},
		{"detalhes ocultos em produção", "production", ErrInternalServer, http.StatusInternalServerError, false},
		{"código desconhecido", "production", "XYZ_999", http.StatusInternalServerError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("APP_ENV", tt.env)
			rec := httptest.NewRecorder()

			WriteError(rec, tt.code, "mensagem", map[string]string{"field": "x"})

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.code, body["code"])
			_, hasDetails := body["details"]
			assert.Equal(t, tt.expectDetails, hasDetails)
		})
	}
}

func TestWritePublicError_KeepsDetailsInProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	rec := httptest.NewRecorder()

	WritePublicError(rec, ErrUpstreamAuth, "rejeitado", map[string]any{"status": 401})

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.NotNil(t, body["details"])
}

func TestWriteSuccess(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteSuccess(rec, http.StatusCreated, map[string]any{"created": 1, "success": false})

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(1), body["created"])
}
