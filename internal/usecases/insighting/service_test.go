package insighting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/creative-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/creative-manager-api/internal/domain"
	"github.com/vfg2006/creative-manager-api/internal/usecases/deciding"
	"go.uber.org/mock/gomock"
)

type insightFixture struct {
	service     Insighter
	accountRepo *mocks.MockAccountRepository
	metricRepo  *mocks.MockDailyMetricRepository
	syncRunRepo *mocks.MockSyncRunRepository
	sessionRepo *mocks.MockGASessionRepository
}

func newInsightFixture(t *testing.T) *insightFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	accountRepo := mocks.NewMockAccountRepository(ctrl)
	metricRepo := mocks.NewMockDailyMetricRepository(ctrl)
	syncRunRepo := mocks.NewMockSyncRunRepository(ctrl)
	sessionRepo := mocks.NewMockGASessionRepository(ctrl)

	decider := deciding.NewService(domain.DefaultDecisionSettings())

	return &insightFixture{
		service:     NewService(accountRepo, metricRepo, syncRunRepo, sessionRepo, decider),
		accountRepo: accountRepo,
		metricRepo:  metricRepo,
		syncRunRepo: syncRunRepo,
		sessionRepo: sessionRepo,
	}
}

func dateOf(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func activeAccount(id string) *domain.AdAccount {
	return &domain.AdAccount{
		ID:         id,
		ExternalID: "ACC001",
		Status:     domain.AdAccountStatusActive,
	}
}

func TestService_GetCreativeMetrics(t *testing.T) {
	f := newInsightFixture(t)

	filters := &domain.InsightFilters{
		StartDate: dateOf(2024, 5, 1),
		EndDate:   dateOf(2024, 5, 7),
	}

	f.accountRepo.EXPECT().GetAccountByID("acc-1").Return(activeAccount("acc-1"), nil)
	f.metricRepo.EXPECT().AggregateByCreative("acc-1", filters).Return([]*domain.CreativeMetrics{
		{AdExternalID: "ad1", Impressions: 1000, Clicks: 20, Spend: 50.0},
	}, nil)

	metrics, err := f.service.GetCreativeMetrics("acc-1", filters)
	require.NoError(t, err)
	require.Len(t, metrics, 1)
	assert.Equal(t, "ad1", metrics[0].AdExternalID)
}

func TestService_GetCreativeMetrics_AccountNotFound(t *testing.T) {
	f := newInsightFixture(t)

	f.accountRepo.EXPECT().GetAccountByID("acc-inexistente").Return(nil, nil)

	_, err := f.service.GetCreativeMetrics("acc-inexistente", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestService_GetCreativeMetrics_InvalidDateRange(t *testing.T) {
	f := newInsightFixture(t)

	f.accountRepo.EXPECT().GetAccountByID("acc-1").Return(activeAccount("acc-1"), nil)

	_, err := f.service.GetCreativeMetrics("acc-1", &domain.InsightFilters{
		StartDate: dateOf(2024, 5, 10),
		EndDate:   dateOf(2024, 5, 1),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestService_GetCreativeMetrics_DefaultWindow(t *testing.T) {
	f := newInsightFixture(t)

	f.accountRepo.EXPECT().GetAccountByID("acc-1").Return(activeAccount("acc-1"), nil)

	var gotFilters *domain.InsightFilters
	f.metricRepo.EXPECT().
		AggregateByCreative("acc-1", gomock.Any()).
		DoAndReturn(func(_ string, filters *domain.InsightFilters) ([]*domain.CreativeMetrics, error) {
			gotFilters = filters
			return nil, nil
		})

	_, err := f.service.GetCreativeMetrics("acc-1", nil)
	require.NoError(t, err)

	require.NotNil(t, gotFilters)
	require.NotNil(t, gotFilters.StartDate)
	require.NotNil(t, gotFilters.EndDate)

	// A janela padrão termina ontem e cobre sete dias completos
	yesterday := time.Now().UTC().AddDate(0, 0, -1)
	yesterday = time.Date(yesterday.Year(), yesterday.Month(), yesterday.Day(), 0, 0, 0, 0, time.UTC)
	assert.Equal(t, yesterday, *gotFilters.EndDate)
	assert.Equal(t, yesterday.AddDate(0, 0, -6), *gotFilters.StartDate)
}

func TestService_GetCreativeDecisions(t *testing.T) {
	f := newInsightFixture(t)

	filters := &domain.InsightFilters{
		StartDate: dateOf(2024, 5, 1),
		EndDate:   dateOf(2024, 5, 7),
	}

	// Dois criativos de venda: um dentro do CPA alvo, outro estourado
	rows := []*domain.CreativeMetrics{
		{
			AdExternalID: "ad-bom",
			CampaignType: domain.CampaignTypeSales,
			Impressions:  10000,
			Clicks:       300,
			Spend:        100.0,
			Conversions:  4,
			Frequency:    1.5,
		},
		{
			AdExternalID: "ad-caro",
			CampaignType: domain.CampaignTypeSales,
			Impressions:  10000,
			Clicks:       100,
			Spend:        300.0,
			Conversions:  4,
			Frequency:    1.5,
		},
	}

	f.accountRepo.EXPECT().GetAccountByID("acc-1").Return(activeAccount("acc-1"), nil)
	f.metricRepo.EXPECT().AggregateByCreative("acc-1", filters).Return(rows, nil)

	decisions, err := f.service.GetCreativeDecisions("acc-1", filters, nil)
	require.NoError(t, err)
	require.Len(t, decisions, 2)

	assert.Equal(t, domain.DecisionScale, decisions[0].Decision.Status)
	assert.Equal(t, "ad-bom", decisions[0].Metrics.AdExternalID)
	assert.Equal(t, domain.DecisionKill, decisions[1].Decision.Status)
}

func TestService_GetCreativeDecisions_OverrideWins(t *testing.T) {
	f := newInsightFixture(t)

	filters := &domain.InsightFilters{
		StartDate: dateOf(2024, 5, 1),
		EndDate:   dateOf(2024, 5, 7),
	}

	rows := []*domain.CreativeMetrics{
		{
			AdExternalID: "ad-caro",
			CampaignType: domain.CampaignTypeSales,
			Impressions:  10000,
			Clicks:       100,
			Spend:        300.0,
			Conversions:  4,
			Frequency:    1.5,
		},
	}

	f.accountRepo.EXPECT().GetAccountByID("acc-1").Return(activeAccount("acc-1"), nil)
	f.metricRepo.EXPECT().AggregateByCreative("acc-1", filters).Return(rows, nil)

	overrides := domain.StatusOverrides{"ad-caro": domain.DecisionScale}

	decisions, err := f.service.GetCreativeDecisions("acc-1", filters, overrides)
	require.NoError(t, err)
	require.Len(t, decisions, 1)

	assert.Equal(t, domain.DecisionForced, decisions[0].Decision.Status)
}

func TestService_GetSyncHistory(t *testing.T) {
	f := newInsightFixture(t)

	finished := time.Date(2024, 5, 7, 3, 10, 0, 0, time.UTC)
	f.syncRunRepo.EXPECT().ListByAccount("acc-1", 10).Return([]*domain.SyncRun{
		{
			ID:          "run-1",
			AccountID:   "acc-1",
			Status:      domain.SyncRunStatusCompleted,
			RecordCount: 120,
			FinishedAt:  &finished,
		},
	}, nil)

	runs, err := f.service.GetSyncHistory("acc-1", 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "run-1", runs[0].ID)
}

func TestService_GetGASessions(t *testing.T) {
	f := newInsightFixture(t)

	start := dateOf(2024, 5, 1)
	end := dateOf(2024, 5, 7)

	f.sessionRepo.EXPECT().ListRange("acc-1", *start, *end).Return([]*domain.GASessionRow{
		{AccountID: "acc-1", PagePath: "/landing", Sessions: 320, EngagedSessions: 180},
	}, nil)

	sessions, err := f.service.GetGASessions("acc-1", &domain.InsightFilters{
		StartDate: start,
		EndDate:   end,
	})
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "/landing", sessions[0].PagePath)
}

func TestService_GetGASessions_InvalidDateRange(t *testing.T) {
	f := newInsightFixture(t)

	_, err := f.service.GetGASessions("acc-1", &domain.InsightFilters{
		StartDate: dateOf(2024, 5, 10),
		EndDate:   dateOf(2024, 5, 1),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}
