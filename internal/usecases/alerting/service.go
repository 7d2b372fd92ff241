package alerting

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creative-manager-api/infrastructure/repository"
	"github.com/vfg2006/creative-manager-api/internal/config"
	"github.com/vfg2006/creative-manager-api/internal/domain"
	"github.com/vfg2006/creative-manager-api/pkg/utils"
)

// Janela de histórico usada como linha de base da fadiga de CTR
const fatigueHistoryDays = 7

// Mínimo de dias com impressões no histórico para a linha de base valer
const fatigueMinHistoryDays = 3

// AlertService examina as métricas recém-sincronizadas de um dia e gera
// alertas de anomalia. A deduplicação por (criativo, tipo, dia) garante que
// reprocessar o mesmo dia não duplica alertas.
type AlertService interface {
	DetectForAccount(accountID string, day time.Time) ([]*domain.Alert, error)
	ListUnresolved(accountID string) ([]*domain.Alert, error)
	Resolve(alertID string) error
}

type Service struct {
	metricRepository repository.DailyMetricRepository
	alertRepository  repository.AlertRepository
	cfg              config.AlertSync
}

func NewService(
	metricRepository repository.DailyMetricRepository,
	alertRepository repository.AlertRepository,
	cfg config.AlertSync,
) AlertService {
	return &Service{
		metricRepository: metricRepository,
		alertRepository:  alertRepository,
		cfg:              cfg,
	}
}

// DetectForAccount roda as duas regras de detecção sobre o dia informado.
// Retorna apenas os alertas efetivamente criados; duplicados do mesmo dia
// são descartados em silêncio.
func (s *Service) DetectForAccount(accountID string, day time.Time) ([]*domain.Alert, error) {
	day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	since := day.AddDate(0, 0, -fatigueHistoryDays)

	rows, err := s.metricRepository.ListRange(accountID, since, day)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar métricas para detecção de alertas: %w", err)
	}

	byCreative := make(map[string][]*domain.AdDailyMetric)
	for _, row := range rows {
		byCreative[row.AdExternalID] = append(byCreative[row.AdExternalID], row)
	}

	created := make([]*domain.Alert, 0)
	for adExternalID, history := range byCreative {
		var dayRow *domain.AdDailyMetric
		for _, row := range history {
			if row.Date.Equal(day) {
				dayRow = row
				break
			}
		}

		if dayRow == nil {
			continue
		}

		if alert := s.detectNoConversions(dayRow, day); alert != nil {
			if s.persistIfNew(alert) {
				created = append(created, alert)
			}
		}

		if alert := s.detectCTRFatigue(adExternalID, dayRow, history, day); alert != nil {
			if s.persistIfNew(alert) {
				created = append(created, alert)
			}
		}
	}

	if len(created) > 0 {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"day":        day.Format("2006-01-02"),
			"alerts":     len(created),
		}).Info("Alertas de anomalia detectados")
	}

	return created, nil
}

// detectNoConversions sinaliza gasto relevante no dia sem nenhuma conversão.
// Acima do dobro do limiar a severidade sobe para CRITICAL.
func (s *Service) detectNoConversions(dayRow *domain.AdDailyMetric, day time.Time) *domain.Alert {
	if dayRow.Conversions > 0 || dayRow.Spend <= s.cfg.SpendThreshold {
		return nil
	}

	severity := domain.AlertSeverityWarning
	if dayRow.Spend > 2*s.cfg.SpendThreshold {
		severity = domain.AlertSeverityCritical
	}

	return &domain.Alert{
		AccountID:    dayRow.AccountID,
		AdExternalID: dayRow.AdExternalID,
		Type:         domain.AlertTypeNoConversions,
		Day:          day,
		Severity:     severity,
		Message: fmt.Sprintf("R$ %.2f gastos em %s sem nenhuma conversão",
			dayRow.Spend, day.Format("02/01/2006")),
	}
}

// detectCTRFatigue compara o CTR do dia com a linha de base dos dias
// anteriores da janela. Sem volume mínimo de impressões ou sem histórico
// suficiente, a regra não opina.
func (s *Service) detectCTRFatigue(adExternalID string, dayRow *domain.AdDailyMetric, history []*domain.AdDailyMetric, day time.Time) *domain.Alert {
	if dayRow.Impressions < s.cfg.MinImpressions {
		return nil
	}

	historyDays := 0
	totalClicks := 0
	totalImpressions := 0
	for _, row := range history {
		if !row.Date.Before(day) {
			continue
		}
		if row.Impressions == 0 {
			continue
		}
		historyDays++
		totalClicks += row.Clicks
		totalImpressions += row.Impressions
	}

	if historyDays < fatigueMinHistoryDays || totalImpressions == 0 {
		return nil
	}

	baselineCTR := float64(totalClicks) / float64(totalImpressions) * 100
	if baselineCTR == 0 {
		return nil
	}

	dayCTR := float64(dayRow.Clicks) / float64(dayRow.Impressions) * 100
	drop := (baselineCTR - dayCTR) / baselineCTR
	if drop <= s.cfg.CTRDropWarn {
		return nil
	}

	severity := domain.AlertSeverityWarning
	if drop > s.cfg.CTRDropCritical {
		severity = domain.AlertSeverityCritical
	}

	return &domain.Alert{
		AccountID:    dayRow.AccountID,
		AdExternalID: adExternalID,
		Type:         domain.AlertTypeCTRFatigue,
		Day:          day,
		Severity:     severity,
		Message: fmt.Sprintf("CTR de %.2f%% em %s, queda de %.0f%% frente à média de %.2f%% dos últimos dias",
			utils.RoundWithTwoDecimalPlace(dayCTR), day.Format("02/01/2006"), drop*100,
			utils.RoundWithTwoDecimalPlace(baselineCTR)),
	}
}

// persistIfNew grava o alerta respeitando a deduplicação por dia.
// Retorna true quando o alerta foi de fato criado.
func (s *Service) persistIfNew(alert *domain.Alert) bool {
	exists, err := s.alertRepository.ExistsForDay(alert.AccountID, alert.AdExternalID, alert.Type, alert.Day)
	if err != nil {
		logrus.WithField("error", err).Error("Erro ao verificar existência de alerta")
		return false
	}

	if exists {
		return false
	}

	if err := s.alertRepository.Create(alert); err != nil {
		logrus.WithField("error", err).Error("Erro ao criar alerta")
		return false
	}

	return true
}

func (s *Service) ListUnresolved(accountID string) ([]*domain.Alert, error) {
	return s.alertRepository.ListUnresolved(accountID)
}

func (s *Service) Resolve(alertID string) error {
	return s.alertRepository.Resolve(alertID)
}
