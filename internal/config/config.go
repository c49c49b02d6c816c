package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Auth        Auth        `mapstructure:",squash"`
	Cors        Cors        `mapstructure:",squash"`
	Alegra      Alegra      `mapstructure:",squash"`
	Siigo       Siigo       `mapstructure:",squash"`
	Provider    Provider    `mapstructure:",squash"`
	Redis       Redis       `mapstructure:",squash"`
	InvoiceSync InvoiceSync `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Alegra struct {
	BaseURL string `mapstructure:"alegra_base_url"`
}

type Siigo struct {
	BaseURL   string `mapstructure:"siigo_base_url"`
	AuthURL   string `mapstructure:"siigo_auth_url"`
	PartnerID string `mapstructure:"siigo_partner_id"`
}

// Provider agrupa timeout e política de retry das chamadas aos provedores
type Provider struct {
	Timeout              time.Duration `mapstructure:"provider_timeout"`
	RetryMaxAttempts     int           `mapstructure:"provider_retry_max_attempts"`
	RetryInitialInterval time.Duration `mapstructure:"provider_retry_initial_interval"`
	RetryMaxInterval     time.Duration `mapstructure:"provider_retry_max_interval"`
}

type Redis struct {
	URL         string        `mapstructure:"redis_url"`
	SyncLockTTL time.Duration `mapstructure:"sync_lock_ttl"`
}

type InvoiceSync struct {
	CronSchedule      string `mapstructure:"invoice_sync_cron"`
	Enabled           bool   `mapstructure:"invoice_sync_enabled"`
	MaxConcurrentJobs int    `mapstructure:"invoice_sync_max_concurrent_jobs"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/integrations?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("ALEGRA_BASE_URL", "https://api.alegra.com/api/v1")

	viper.SetDefault("SIIGO_BASE_URL", "https://api.siigo.com")
	viper.SetDefault("SIIGO_AUTH_URL", "https://api.siigo.com/auth")
	viper.SetDefault("SIIGO_PARTNER_ID", "your_partner_id")

	viper.SetDefault("PROVIDER_TIMEOUT", "30s")
	viper.SetDefault("PROVIDER_RETRY_MAX_ATTEMPTS", 3)
	viper.SetDefault("PROVIDER_RETRY_INITIAL_INTERVAL", "500ms")
	viper.SetDefault("PROVIDER_RETRY_MAX_INTERVAL", "5s")

	// Sem REDIS_URL o lock de sincronização fica em memória
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("SYNC_LOCK_TTL", "5m")

	viper.SetDefault("INVOICE_SYNC_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("INVOICE_SYNC_ENABLED", false)
	viper.SetDefault("INVOICE_SYNC_MAX_CONCURRENT_JOBS", 2)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("APP_ENV", "development")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Validate garante valores mínimos para a política de chamadas aos provedores
func (c *Config) Validate() error {
	if c.Alegra.BaseURL == "" || c.Siigo.BaseURL == "" || c.Siigo.AuthURL == "" {
		return fmt.Errorf("config: provider urls are required")
	}

	if c.Provider.RetryMaxAttempts < 1 {
		c.Provider.RetryMaxAttempts = 1
	}

	if c.InvoiceSync.MaxConcurrentJobs < 1 {
		c.InvoiceSync.MaxConcurrentJobs = 1
	}

	if c.Provider.Timeout <= 0 {
		c.Provider.Timeout = 30 * time.Second
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
