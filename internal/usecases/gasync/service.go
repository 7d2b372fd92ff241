package gasync

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creative-manager-api/infrastructure/integrator/ga/gaclient"
	"github.com/vfg2006/creative-manager-api/infrastructure/repository"
	"github.com/vfg2006/creative-manager-api/internal/config"
	"github.com/vfg2006/creative-manager-api/internal/domain"
)

// GASyncService importa sessões e engajamento do Google Analytics para o
// banco local. Fica fora do caminho crítico do motor de decisão; uma falha
// aqui nunca bloqueia a sincronização de anúncios.
type GASyncService interface {
	RunAnalyticsSync(account *domain.AdAccount) (int, error)
}

type Service struct {
	gaClient          gaclient.Client
	sessionRepository repository.GASessionRepository
	syncRunRepository repository.SyncRunRepository
	cfg               *config.Config
}

func NewService(
	gaClient gaclient.Client,
	sessionRepository repository.GASessionRepository,
	syncRunRepository repository.SyncRunRepository,
	cfg *config.Config,
) GASyncService {
	return &Service{
		gaClient:          gaClient,
		sessionRepository: sessionRepository,
		syncRunRepository: syncRunRepository,
		cfg:               cfg,
	}
}

// RunAnalyticsSync busca as sessões por página da janela de retrovisão e
// grava com upsert por (conta, data, página). Registrada no log de
// execuções com o tipo ANALYTICS.
func (s *Service) RunAnalyticsSync(account *domain.AdAccount) (int, error) {
	run, err := s.syncRunRepository.Create(account.ID, domain.SyncRunKindAnalytics)
	if err != nil {
		return 0, fmt.Errorf("erro ao registrar execução de sincronização: %w", err)
	}

	logger := logrus.WithFields(logrus.Fields{
		"account_id":  account.ID,
		"sync_run_id": run.ID,
	})

	until := time.Now().UTC().AddDate(0, 0, -1)
	since := until.AddDate(0, 0, -(s.cfg.GASync.LookbackDays - 1))

	sessions, err := s.gaClient.GetSessionsByPage(account.ID, since, until)
	if err != nil {
		s.finalize(run.ID, domain.SyncRunStatusFailed, 0, err, logger)
		return 0, fmt.Errorf("erro ao buscar sessões no Google Analytics: %w", err)
	}

	written, err := s.sessionRepository.UpsertBatch(sessions)
	if err != nil {
		s.finalize(run.ID, domain.SyncRunStatusFailed, written, err, logger)
		return written, fmt.Errorf("erro ao salvar sessões do Google Analytics: %w", err)
	}

	s.finalize(run.ID, domain.SyncRunStatusCompleted, written, nil, logger)

	logger.WithField("rows", written).Info("Sincronização do Google Analytics finalizada")

	return written, nil
}

func (s *Service) finalize(runID string, status domain.SyncRunStatus, recordCount int, runErr error, logger *logrus.Entry) {
	var errorText *string
	if runErr != nil {
		text := runErr.Error()
		errorText = &text
	}

	if err := s.syncRunRepository.Finalize(runID, status, recordCount, errorText); err != nil {
		logger.WithField("error", err).Error("Erro ao finalizar registro da sincronização")
	}
}
