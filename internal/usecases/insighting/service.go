package insighting

import (
	"time"

	"github.com/vfg2006/creative-manager-api/infrastructure/repository"
	"github.com/vfg2006/creative-manager-api/internal/domain"
	"github.com/vfg2006/creative-manager-api/internal/usecases/deciding"
	"github.com/vfg2006/creative-manager-api/pkg/apiErrors"
)

// Janela padrão de leitura quando o chamador não informa datas
const defaultWindowDays = 7

// Insighter é a camada de leitura dos painéis: métricas agregadas por
// criativo, decisões derivadas, histórico de sincronizações e sessões do
// Google Analytics.
type Insighter interface {
	GetCreativeMetrics(accountID string, filters *domain.InsightFilters) ([]*domain.CreativeMetrics, error)
	GetCreativeDecisions(accountID string, filters *domain.InsightFilters, overrides domain.StatusOverrides) ([]*domain.CreativeDecision, error)
	GetSyncHistory(accountID string, limit int) ([]*domain.SyncRun, error)
	GetGASessions(accountID string, filters *domain.InsightFilters) ([]*domain.GASessionRow, error)
}

type Service struct {
	accountRepository repository.AccountRepository
	metricRepository  repository.DailyMetricRepository
	syncRunRepository repository.SyncRunRepository
	sessionRepository repository.GASessionRepository
	decider           deciding.DecisionService
}

func NewService(
	accountRepository repository.AccountRepository,
	metricRepository repository.DailyMetricRepository,
	syncRunRepository repository.SyncRunRepository,
	sessionRepository repository.GASessionRepository,
	decider deciding.DecisionService,
) Insighter {
	return &Service{
		accountRepository: accountRepository,
		metricRepository:  metricRepository,
		syncRunRepository: syncRunRepository,
		sessionRepository: sessionRepository,
		decider:           decider,
	}
}

func (s *Service) GetCreativeMetrics(accountID string, filters *domain.InsightFilters) ([]*domain.CreativeMetrics, error) {
	account, err := s.accountRepository.GetAccountByID(accountID)
	if err != nil {
		return nil, NewInsightError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao buscar conta no banco de dados")
	}
	if account == nil {
		return nil, NewInsightError(ErrAccountNotFound, apiErrors.ErrAccountNotFound, "Conta não encontrada")
	}

	filters, err = normalizeFilters(filters)
	if err != nil {
		return nil, err
	}

	metrics, err := s.metricRepository.AggregateByCreative(accountID, filters)
	if err != nil {
		return nil, NewInsightError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao agregar métricas por criativo")
	}

	return metrics, nil
}

// GetCreativeDecisions agrega a janela e aplica o motor de decisão sobre o
// lote. O benchmark de CTR é recalculado a cada chamada; decisões nunca são
// persistidas.
func (s *Service) GetCreativeDecisions(accountID string, filters *domain.InsightFilters, overrides domain.StatusOverrides) ([]*domain.CreativeDecision, error) {
	metrics, err := s.GetCreativeMetrics(accountID, filters)
	if err != nil {
		return nil, err
	}

	benchmark := s.decider.Benchmark(metrics)

	decisions := make([]*domain.CreativeDecision, 0, len(metrics))
	for _, m := range metrics {
		decision := s.decider.Classify(m, benchmark, overrides)
		decisions = append(decisions, &domain.CreativeDecision{
			Metrics:  m,
			Decision: decision,
		})
	}

	return decisions, nil
}

func (s *Service) GetSyncHistory(accountID string, limit int) ([]*domain.SyncRun, error) {
	runs, err := s.syncRunRepository.ListByAccount(accountID, limit)
	if err != nil {
		return nil, NewInsightError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao listar histórico de sincronizações")
	}

	return runs, nil
}

func (s *Service) GetGASessions(accountID string, filters *domain.InsightFilters) ([]*domain.GASessionRow, error) {
	filters, err := normalizeFilters(filters)
	if err != nil {
		return nil, err
	}

	sessions, err := s.sessionRepository.ListRange(accountID, *filters.StartDate, *filters.EndDate)
	if err != nil {
		return nil, NewInsightError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao listar sessões do Google Analytics")
	}

	return sessions, nil
}

// normalizeFilters preenche a janela padrão e valida a ordem das datas
func normalizeFilters(filters *domain.InsightFilters) (*domain.InsightFilters, error) {
	if filters == nil {
		filters = &domain.InsightFilters{}
	}

	if filters.EndDate == nil {
		end := time.Now().UTC().AddDate(0, 0, -1)
		end = time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
		filters.EndDate = &end
	}

	if filters.StartDate == nil {
		start := filters.EndDate.AddDate(0, 0, -(defaultWindowDays - 1))
		filters.StartDate = &start
	}

	if filters.StartDate.After(*filters.EndDate) {
		return nil, NewInsightError(ErrInvalidDateRange, apiErrors.ErrInvalidDateRange, "Data inicial posterior à data final")
	}

	return filters, nil
}
