package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	t.Run("aplica defaults de retry e timeout", func(t *testing.T) {
		cfg := &Config{
			Alegra: Alegra{BaseURL: "http://alegra"},
			Siigo:  Siigo{BaseURL: "http://siigo", AuthURL: "http://siigo/auth"},
		}

		require.NoError(t, cfg.Validate())
		assert.Equal(t, 1, cfg.Provider.RetryMaxAttempts)
		assert.Equal(t, 30*time.Second, cfg.Provider.Timeout)
		assert.Equal(t, 1, cfg.InvoiceSync.MaxConcurrentJobs)
	})

	t.Run("urls dos provedores são obrigatórias", func(t *testing.T) {
		cfg := &Config{Alegra: Alegra{BaseURL: "http://alegra"}}

		assert.Error(t, cfg.Validate())
	})
}
