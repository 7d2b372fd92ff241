package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creative-manager-api/infrastructure/repository"
	"github.com/vfg2006/creative-manager-api/internal/config"
	"github.com/vfg2006/creative-manager-api/internal/domain"
	"github.com/vfg2006/creative-manager-api/internal/usecases/syncing"
)

// FullSyncService gerencia o agendamento da sincronização completa de todas
// as contas ativas: estrutura e métricas diárias
type FullSyncService struct {
	scheduler           *gocron.Scheduler
	cfg                 config.FullSync
	accountRepo         repository.AccountRepository
	syncService         syncing.SyncService
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewFullSyncService(
	accountRepo repository.AccountRepository,
	syncService syncing.SyncService,
	appConfig *config.Config,
) *FullSyncService {
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       appConfig.FullSync.CronSchedule,
		"lookback_days":       appConfig.FullSync.LookbackDays,
		"chunk_days":          appConfig.FullSync.ChunkDays,
		"max_concurrent_jobs": appConfig.FullSync.MaxConcurrentJobs,
		"sync_enabled":        appConfig.FullSync.Enabled,
	}).Info("Configuração do agendador de sincronização completa carregada")

	return &FullSyncService{
		scheduler:   scheduler,
		cfg:         appConfig.FullSync,
		accountRepo: accountRepo,
		syncService: syncService,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *FullSyncService) Start(ctx context.Context) error {
	if !s.cfg.Enabled {
		logrus.Info("Sincronização completa desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.cfg.CronSchedule).Info("Iniciando agendador de sincronização completa")

	_, err := s.scheduler.Cron(s.cfg.CronSchedule).Do(func() {
		s.syncAllAccounts()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização completa: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização completa")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllAccounts sincroniza todas as contas ativas, com limite de contas
// em paralelo controlado por semáforo
func (s *FullSyncService) syncAllAccounts() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização completa já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização completa para todas as contas ativas")

	activeAccounts, err := s.getActiveAccounts()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de contas para sincronização completa")
		return
	}

	if len(activeAccounts) == 0 {
		logrus.Info("Nenhuma conta ativa encontrada para sincronização completa")
		return
	}

	semaphore := make(chan struct{}, s.cfg.MaxConcurrentJobs)
	var wg sync.WaitGroup

	for _, account := range activeAccounts {
		if account.ExternalID == "" {
			logrus.WithField("account_id", account.ID).Warn("Conta sem external_id. Pulando.")
			continue
		}

		wg.Add(1)
		semaphore <- struct{}{}

		go func(acc *domain.AdAccount) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			s.syncAccount(acc)
		}(account)
	}

	wg.Wait()

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"accounts": len(activeAccounts),
	}).Info("Sincronização completa concluída")

	s.lastSyncCompletedAt = time.Now()
}

func (s *FullSyncService) syncAccount(account *domain.AdAccount) {
	logger := logrus.WithFields(logrus.Fields{
		"account_id":   account.ID,
		"external_id":  account.ExternalID,
		"account_name": account.Name,
	})
	logger.Info("Processando sincronização completa da conta")

	result, err := s.syncService.RunFullSync(account)
	if err != nil {
		if errors.Is(err, syncing.ErrSyncInProgress) {
			logger.Warn("Conta já com sincronização em andamento, pulando")
			return
		}

		logger.WithError(err).Error("Erro na sincronização completa da conta")
		return
	}

	logger.WithFields(logrus.Fields{
		"campaigns":   result.Structure.Campaigns,
		"adsets":      result.Structure.AdSets,
		"ads":         result.Structure.Ads,
		"metric_rows": result.MetricRowCount,
	}).Info("Conta sincronizada com sucesso")
}

func (s *FullSyncService) getActiveAccounts() ([]*domain.AdAccount, error) {
	activeAccounts, err := s.accountRepo.ListAccounts([]domain.AdAccountStatus{domain.AdAccountStatusActive})
	if err != nil {
		return nil, err
	}

	if len(activeAccounts) == 0 {
		return []*domain.AdAccount{}, nil
	}

	logrus.WithFields(logrus.Fields{
		"active_accounts": len(activeAccounts),
	}).Info("Contas encontradas para sincronização completa")

	return activeAccounts, nil
}

// TriggerManualSync inicia manualmente uma sincronização completa
func (s *FullSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização completa já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização completa manual")
	go s.syncAllAccounts()
}

// GetStatus retorna o status atual do agendador
func (s *FullSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.cfg.Enabled,
		"sync_cron":              s.cfg.CronSchedule,
		"sync_lookback_days":     s.cfg.LookbackDays,
		"sync_chunk_days":        s.cfg.ChunkDays,
		"sync_max_concurrent":    s.cfg.MaxConcurrentJobs,
		"sync_request_delay_s":   s.cfg.RequestDelaySeconds,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
