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
	"github.com/vfg2006/creative-manager-api/internal/usecases/alerting"
)

// AlertDetectService agenda a detecção de alertas sobre as métricas do dia
// anterior, depois que a sincronização completa teve tempo de rodar
type AlertDetectService struct {
	scheduler          *gocron.Scheduler
	cfg                config.AlertSync
	accountRepo        repository.AccountRepository
	alertService       alerting.AlertService
	detectRunning      bool
	detectMutex        sync.Mutex
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
}

func NewAlertDetectService(
	accountRepo repository.AccountRepository,
	alertService alerting.AlertService,
	appConfig *config.Config,
) *AlertDetectService {
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":   appConfig.AlertSync.CronSchedule,
		"spend_threshold": appConfig.AlertSync.SpendThreshold,
		"min_impressions": appConfig.AlertSync.MinImpressions,
		"enabled":         appConfig.AlertSync.Enabled,
	}).Info("Configuração do agendador de detecção de alertas carregada")

	return &AlertDetectService{
		scheduler:    scheduler,
		cfg:          appConfig.AlertSync,
		accountRepo:  accountRepo,
		alertService: alertService,
	}
}

// Start inicia o agendador
func (s *AlertDetectService) Start(ctx context.Context) error {
	if !s.cfg.Enabled {
		logrus.Info("Detecção de alertas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.cfg.CronSchedule).Info("Iniciando agendador de detecção de alertas")

	_, err := s.scheduler.Cron(s.cfg.CronSchedule).Do(func() {
		s.detectAllAccounts()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar detecção de alertas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de detecção de alertas")
		s.scheduler.Stop()
	}()

	return nil
}

// detectAllAccounts roda a detecção sobre o dia anterior de todas as contas
// ativas. A deduplicação na camada de alertas torna a repetição inofensiva.
func (s *AlertDetectService) detectAllAccounts() {
	s.detectMutex.Lock()
	if s.detectRunning {
		s.detectMutex.Unlock()
		logrus.Info("Detecção de alertas já em andamento, ignorando")
		return
	}
	s.detectRunning = true
	s.detectMutex.Unlock()

	startTime := time.Now()
	s.lastRunStartedAt = startTime

	defer func() {
		s.detectMutex.Lock()
		s.detectRunning = false
		s.detectMutex.Unlock()
	}()

	logrus.Info("Iniciando detecção de alertas para todas as contas ativas")

	activeAccounts, err := s.accountRepo.ListAccounts([]domain.AdAccountStatus{domain.AdAccountStatusActive})
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de contas para detecção de alertas")
		return
	}

	yesterday := time.Now().UTC().AddDate(0, 0, -1)

	totalAlerts := 0
	for _, account := range activeAccounts {
		alerts, err := s.alertService.DetectForAccount(account.ID, yesterday)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": account.ID,
				"error":      err,
			}).Error("Erro na detecção de alertas da conta")
			continue
		}

		totalAlerts += len(alerts)
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"accounts": len(activeAccounts),
		"alerts":   totalAlerts,
	}).Info("Detecção de alertas concluída")

	s.lastRunCompletedAt = time.Now()
}

// TriggerManualDetect inicia manualmente uma rodada de detecção
func (s *AlertDetectService) TriggerManualDetect() {
	s.detectMutex.Lock()
	if s.detectRunning {
		s.detectMutex.Unlock()
		logrus.Info("Detecção de alertas já em andamento, ignorando solicitação manual")
		return
	}
	s.detectMutex.Unlock()

	logrus.Info("Iniciando detecção de alertas manual")
	go s.detectAllAccounts()
}

// GetStatus retorna o status atual do agendador
func (s *AlertDetectService) GetStatus() map[string]any {
	return map[string]any{
		"detect_enabled":        s.cfg.Enabled,
		"detect_cron":           s.cfg.CronSchedule,
		"spend_threshold":       s.cfg.SpendThreshold,
		"min_impressions":       s.cfg.MinImpressions,
		"ctr_drop_warn":         s.cfg.CTRDropWarn,
		"ctr_drop_critical":     s.cfg.CTRDropCritical,
		"last_run_started_at":   s.lastRunStartedAt,
		"last_run_completed_at": s.lastRunCompletedAt,
	}
}
