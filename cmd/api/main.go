package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/vfg2006/ledger-integrations-api/infrastructure/cache/redis"
	"github.com/vfg2006/ledger-integrations-api/infrastructure/database/postgres"
	"github.com/vfg2006/ledger-integrations-api/infrastructure/integrator/alegra"
	"github.com/vfg2006/ledger-integrations-api/infrastructure/integrator/alegra/alegraclient"
	"github.com/vfg2006/ledger-integrations-api/infrastructure/integrator/siigo"
	"github.com/vfg2006/ledger-integrations-api/infrastructure/integrator/siigo/siigoclient"
	"github.com/vfg2006/ledger-integrations-api/infrastructure/repository"
	"github.com/vfg2006/ledger-integrations-api/internal/api"
	"github.com/vfg2006/ledger-integrations-api/internal/config"
	"github.com/vfg2006/ledger-integrations-api/internal/scheduler"
	"github.com/vfg2006/ledger-integrations-api/internal/usecases/authenticating"
	"github.com/vfg2006/ledger-integrations-api/internal/usecases/integrating"
	"github.com/vfg2006/ledger-integrations-api/internal/usecases/syncing"
	"github.com/vfg2006/ledger-integrations-api/pkg/log"
	"github.com/vfg2006/ledger-integrations-api/pkg/tracing"
)

const serviceName = "ledger-integrations-api"

func main() {
	chdirToSource()

	cfg, err := config.NewConfig()
	if err != nil {
		log.L.WithError(err).Error("Erro ao carregar configuração")
		os.Exit(1)
	}

	log.Setup(cfg.App.LogLevel)
	log.L.Infof("Nível de log configurado para: %s", cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownTracing, err := tracing.Init(ctx, serviceName, cfg.App.Env)
	if err != nil {
		log.L.WithError(err).Warn("Erro ao inicializar tracing, seguindo sem exportador")
	} else {
		defer func() { _ = shutdownTracing(context.Background()) }()
	}

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	businessRepo := repository.NewBusinessRepository(pgConn)
	invoiceRepo := repository.NewInvoiceRepository(pgConn)

	authenticator, err := authenticating.NewService(cfg.Auth)
	if err != nil {
		log.L.WithError(err).Error("Erro ao configurar autenticação")
		os.Exit(1)
	}

	alegraClient := alegraclient.NewClient(cfg)
	siigoClient := siigoclient.NewClient(cfg)

	orchestrator := integrating.NewService(
		businessRepo,
		alegra.NewStrategy(),
		siigo.NewStrategy(siigoClient),
	)

	syncService := syncing.NewService(
		orchestrator,
		invoiceRepo,
		syncLocker(ctx, cfg.Redis),
		alegra.New(alegraClient),
		siigo.New(siigoClient),
	)

	invoiceSyncService := scheduler.NewInvoiceSyncService(businessRepo, syncService, cfg)
	if err := invoiceSyncService.Start(ctx); err != nil {
		log.L.WithError(err).Error("Erro ao iniciar o agendador de sincronização de faturas")
	} else {
		log.L.Info("Agendador de sincronização de faturas iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		authenticator,
		orchestrator,
		syncService,
		invoiceRepo,
		invoiceSyncService,
	)
	if err != nil {
		log.L.WithError(err).Error("Erro ao criar servidor")
		os.Exit(1)
	}

	if err := server.Run(ctx); err != nil {
		log.L.WithError(err).Error("Erro ao executar servidor")
	}
}

// chdirToSource permite achar o .env local quando executado via go run
func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	_ = os.Chdir(path.Dir(file))
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		log.L.WithError(err).Error("Erro ao conectar ao PostgreSQL")
		os.Exit(1)
	}

	log.L.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

// syncLocker usa Redis quando REDIS_URL está definido; caso contrário o lock fica em memória
func syncLocker(ctx context.Context, cfg config.Redis) syncing.Locker {
	if cfg.URL == "" {
		log.L.Info("REDIS_URL não definido, usando lock de sincronização em memória")
		return syncing.NewMemoryLocker()
	}

	client, err := redis.NewClient(ctx, cfg.URL)
	if err != nil {
		log.L.WithError(err).Warn("Redis indisponível, usando lock de sincronização em memória")
		return syncing.NewMemoryLocker()
	}

	return redis.NewLocker(client, cfg.SyncLockTTL)
}
