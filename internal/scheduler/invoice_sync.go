package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/vfg2006/ledger-integrations-api/infrastructure/repository"
	"github.com/vfg2006/ledger-integrations-api/internal/config"
	"github.com/vfg2006/ledger-integrations-api/internal/domain"
	"github.com/vfg2006/ledger-integrations-api/internal/usecases/syncing"
	"github.com/vfg2006/ledger-integrations-api/pkg/log"
)

// InvoiceSyncConfig representa a configuração do agendador de sincronização de faturas
type InvoiceSyncConfig struct {
	CronSchedule      string
	MaxConcurrentJobs int
	SyncEnabled       bool
}

// InvoiceSyncService sincroniza periodicamente as faturas de todas as conexões ativas
type InvoiceSyncService struct {
	scheduler           *gocron.Scheduler
	config              InvoiceSyncConfig
	businessRepo        repository.BusinessRepository
	syncer              syncing.Syncer
	sources             []domain.Source
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastRun             RunSummary
}

// RunSummary resume a última execução completa
type RunSummary struct {
	Businesses int `json:"businesses"`
	Created    int `json:"created"`
	Updated    int `json:"updated"`
	Failed     int `json:"failed"`
	Errors     int `json:"errors"`
}

func NewInvoiceSyncService(
	businessRepo repository.BusinessRepository,
	syncer syncing.Syncer,
	appConfig *config.Config,
) *InvoiceSyncService {
	syncConfig := InvoiceSyncConfig{
		CronSchedule:      appConfig.InvoiceSync.CronSchedule,
		MaxConcurrentJobs: appConfig.InvoiceSync.MaxConcurrentJobs,
		SyncEnabled:       appConfig.InvoiceSync.Enabled,
	}
	if syncConfig.MaxConcurrentJobs < 1 {
		syncConfig.MaxConcurrentJobs = 1
	}

	log.L.WithFields(log.Fields{
		"cron_schedule":       syncConfig.CronSchedule,
		"max_concurrent_jobs": syncConfig.MaxConcurrentJobs,
		"sync_enabled":        syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de faturas carregada")

	return &InvoiceSyncService{
		scheduler:    gocron.NewScheduler(time.UTC),
		config:       syncConfig,
		businessRepo: businessRepo,
		syncer:       syncer,
		sources:      domain.Sources,
	}
}

// Start inicia o agendador
func (s *InvoiceSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		log.L.Info("Sincronização agendada de faturas desabilitada por configuração")
		return nil
	}

	log.L.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de faturas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAll(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de faturas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("Parando agendador de sincronização de faturas")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync inicia uma sincronização fora do horário agendado.
// Retorna false quando já existe uma execução em andamento.
func (s *InvoiceSyncService) TriggerManualSync(ctx context.Context) bool {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		log.L.Info("Sincronização de faturas já em andamento, ignorando solicitação manual")
		return false
	}

	log.L.Info("Iniciando sincronização manual de faturas")
	go s.syncAll(context.WithoutCancel(ctx))
	return true
}

// GetStatus retorna o status atual do agendador
func (s *InvoiceSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_run":               s.lastRun,
	}
}

type syncJob struct {
	source     domain.Source
	businessID string
}

// syncAll sincroniza cada conexão ativa de cada provedor, com no máximo MaxConcurrentJobs em paralelo
func (s *InvoiceSyncService) syncAll(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		log.L.Info("Sincronização de faturas já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	startTime := time.Now()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	summary := RunSummary{}
	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.lastRun = summary
		s.syncMutex.Unlock()
	}()

	jobs := s.collectJobs(ctx)
	if len(jobs) == 0 {
		log.L.Info("Nenhuma conexão ativa encontrada para sincronização de faturas")
		return
	}

	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup
	var mu sync.Mutex

	for _, job := range jobs {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(job syncJob) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			result, err := s.syncer.SyncInvoices(ctx, job.source, job.businessID, nil)

			mu.Lock()
			defer mu.Unlock()
			summary.Businesses++
			if err != nil {
				summary.Errors++
				log.L.WithError(err).WithFields(log.Fields{
					"source":      job.source,
					"business_id": job.businessID,
				}).Error("Erro na sincronização agendada de faturas")
				return
			}
			summary.Created += result.Created
			summary.Updated += result.Updated
			summary.Failed += len(result.Failed)
		}(job)
	}

	wg.Wait()

	log.L.WithFields(log.Fields{
		"duration":   time.Since(startTime).String(),
		"businesses": summary.Businesses,
		"created":    summary.Created,
		"updated":    summary.Updated,
		"failed":     summary.Failed,
		"errors":     summary.Errors,
	}).Info("Sincronização agendada de faturas concluída")
}

func (s *InvoiceSyncService) collectJobs(ctx context.Context) []syncJob {
	var jobs []syncJob
	for _, source := range s.sources {
		businesses, err := s.businessRepo.ListBusinessesWithActiveConnection(ctx, source)
		if err != nil {
			log.L.WithError(err).WithField("source", source).Error("Erro ao listar negócios com conexão ativa")
			continue
		}
		for _, b := range businesses {
			jobs = append(jobs, syncJob{source: source, businessID: b.ID})
		}
	}
	return jobs
}
