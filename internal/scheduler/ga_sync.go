package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creative-manager-api/infrastructure/repository"
	"github.com/vfg2006/creative-manager-api/internal/config"
	"github.com/vfg2006/creative-manager-api/internal/domain"
	"github.com/vfg2006/creative-manager-api/internal/usecases/gasync"
)

// GASyncService agenda a importação de sessões do Google Analytics.
// Roda fora do caminho crítico: falhas aqui não afetam as métricas de anúncios.
type GASyncService struct {
	scheduler           *gocron.Scheduler
	cfg                 config.GASync
	accountRepo         repository.AccountRepository
	gaSyncService       gasync.GASyncService
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewGASyncService(
	accountRepo repository.AccountRepository,
	gaSyncService gasync.GASyncService,
	appConfig *config.Config,
) *GASyncService {
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": appConfig.GASync.CronSchedule,
		"lookback_days": appConfig.GASync.LookbackDays,
		"enabled":       appConfig.GASync.Enabled,
	}).Info("Configuração do agendador do Google Analytics carregada")

	return &GASyncService{
		scheduler:     scheduler,
		cfg:           appConfig.GASync,
		accountRepo:   accountRepo,
		gaSyncService: gaSyncService,
	}
}

// Start inicia o agendador
func (s *GASyncService) Start(ctx context.Context) error {
	if !s.cfg.Enabled {
		logrus.Info("Sincronização do Google Analytics desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.cfg.CronSchedule).Info("Iniciando agendador de sincronização do Google Analytics")

	_, err := s.scheduler.Cron(s.cfg.CronSchedule).Do(func() {
		s.syncAllAccounts()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização do Google Analytics: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização do Google Analytics")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *GASyncService) syncAllAccounts() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização do Google Analytics já em andamento, ignorando")
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

	logrus.Info("Iniciando sincronização do Google Analytics para todas as contas ativas")

	activeAccounts, err := s.accountRepo.ListAccounts([]domain.AdAccountStatus{domain.AdAccountStatusActive})
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de contas para sincronização do Google Analytics")
		return
	}

	totalRows := 0
	for _, account := range activeAccounts {
		rows, err := s.gaSyncService.RunAnalyticsSync(account)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": account.ID,
				"error":      err,
			}).Error("Erro na sincronização do Google Analytics da conta")
			continue
		}

		totalRows += rows
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"accounts": len(activeAccounts),
		"rows":     totalRows,
	}).Info("Sincronização do Google Analytics concluída")

	s.lastSyncCompletedAt = time.Now()
}

// TriggerManualSync inicia manualmente uma sincronização do Google Analytics
func (s *GASyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização do Google Analytics já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual do Google Analytics")
	go s.syncAllAccounts()
}

// GetStatus retorna o status atual do agendador
func (s *GASyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.cfg.Enabled,
		"sync_cron":              s.cfg.CronSchedule,
		"sync_lookback_days":     s.cfg.LookbackDays,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
