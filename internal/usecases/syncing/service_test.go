package syncing

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	metadomain "github.com/vfg2006/creative-manager-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/creative-manager-api/infrastructure/integrator/meta/metaclient"
	clientmocks "github.com/vfg2006/creative-manager-api/infrastructure/integrator/meta/metaclient/mocks"
	"github.com/vfg2006/creative-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/creative-manager-api/internal/config"
	"github.com/vfg2006/creative-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func testSyncConfig() *config.Config {
	return &config.Config{
		CryptoKey: "0123456789abcdef0123456789abcdef",
		FullSync: config.FullSync{
			LookbackDays: 7,
			ChunkDays:    30,
		},
	}
}

type syncFixture struct {
	service       SyncService
	metaClient    *clientmocks.MockClient
	accountRepo   *mocks.MockAccountRepository
	structureRepo *mocks.MockStructureRepository
	metricRepo    *mocks.MockDailyMetricRepository
	syncRunRepo   *mocks.MockSyncRunRepository
	tokenManager  *metaclient.TokenManager
}

func newSyncFixture(t *testing.T, ctrl *gomock.Controller) *syncFixture {
	t.Helper()

	metaClient := clientmocks.NewMockClient(ctrl)
	accountRepo := mocks.NewMockAccountRepository(ctrl)
	structureRepo := mocks.NewMockStructureRepository(ctrl)
	metricRepo := mocks.NewMockDailyMetricRepository(ctrl)
	syncRunRepo := mocks.NewMockSyncRunRepository(ctrl)

	cfg := testSyncConfig()

	tokenManager, err := metaclient.NewTokenManager(cfg, metaClient, accountRepo)
	assert.NoError(t, err)

	service := NewService(metaClient, tokenManager, accountRepo, structureRepo, metricRepo, syncRunRepo, cfg)

	return &syncFixture{
		service:       service,
		metaClient:    metaClient,
		accountRepo:   accountRepo,
		structureRepo: structureRepo,
		metricRepo:    metricRepo,
		syncRunRepo:   syncRunRepo,
		tokenManager:  tokenManager,
	}
}

// syncableAccount monta uma conta ativa com token criptografado de verdade
func (f *syncFixture) syncableAccount(t *testing.T) *domain.AdAccount {
	t.Helper()

	encrypted, err := f.tokenManager.Encrypt("token-em-claro")
	assert.NoError(t, err)

	return &domain.AdAccount{
		ID:              "ACC001",
		UserID:          1,
		ExternalID:      "act_123",
		Name:            "Conta Teste",
		Status:          domain.AdAccountStatusActive,
		ConversionEvent: "purchase",
		AccessTokenEnc:  encrypted,
	}
}

func TestService_RunFullSync_GuardRails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSyncFixture(t, ctrl)

	t.Run("Conta pausada não é sincronizável", func(t *testing.T) {
		account := f.syncableAccount(t)
		account.Status = domain.AdAccountStatusPaused

		_, err := f.service.RunFullSync(account)
		assert.ErrorIs(t, err, ErrAccountNotSyncable)
	})

	t.Run("Conta sem token não é sincronizável", func(t *testing.T) {
		account := f.syncableAccount(t)
		account.AccessTokenEnc = ""

		_, err := f.service.RunFullSync(account)
		assert.ErrorIs(t, err, ErrAccountNotSyncable)
	})

	t.Run("Sincronização já em andamento é rejeitada", func(t *testing.T) {
		account := f.syncableAccount(t)

		f.syncRunRepo.EXPECT().
			HasRunning("ACC001", domain.SyncRunKindFull).
			Return(true, nil)

		_, err := f.service.RunFullSync(account)
		assert.ErrorIs(t, err, ErrSyncInProgress)
	})
}

func TestService_RunFullSync_HappyPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSyncFixture(t, ctrl)
	account := f.syncableAccount(t)

	f.syncRunRepo.EXPECT().
		HasRunning("ACC001", domain.SyncRunKindFull).
		Return(false, nil)
	f.syncRunRepo.EXPECT().
		Create("ACC001", domain.SyncRunKindFull).
		Return(&domain.SyncRun{ID: "run-1"}, nil)

	f.metaClient.EXPECT().
		GetCampaigns("token-em-claro", "act_123").
		Return([]metadomain.Campaign{
			{ID: "c1", Name: "Campanha Vendas", Status: "ACTIVE", Objective: "OUTCOME_SALES"},
		}, nil)
	f.structureRepo.EXPECT().
		UpsertCampaigns(gomock.Len(1)).
		Return(1, nil)

	f.metaClient.EXPECT().
		GetAdSets("token-em-claro", "act_123").
		Return([]metadomain.AdSet{
			{ID: "as1", CampaignID: "c1", Name: "Conjunto A", Status: "ACTIVE"},
		}, nil)
	f.structureRepo.EXPECT().
		UpsertAdSets(gomock.Len(1)).
		Return(1, nil)

	f.metaClient.EXPECT().
		GetAds("token-em-claro", "act_123", metaclient.AdFieldsFull).
		Return([]metadomain.Ad{
			{ID: "ad1", AdSetID: "as1", Name: "Criativo 1", Status: "ACTIVE"},
		}, nil)
	f.structureRepo.EXPECT().
		UpsertAds(gomock.Len(1)).
		Return(1, nil)

	// Janela de 7 dias cabe em um único chunk de 30
	f.metaClient.EXPECT().
		GetDailyInsights("token-em-claro", "act_123", gomock.Any(), gomock.Any()).
		Return([]metadomain.InsightRow{
			{
				AdID:        "ad1",
				DateStart:   "2024-05-09",
				Impressions: "1000",
				Clicks:      "20",
				Spend:       "35.50",
				Reach:       "800",
				Actions:     []metadomain.Action{{ActionType: "purchase", Value: "2"}},
			},
		}, nil)
	f.metricRepo.EXPECT().
		UpsertBatch(gomock.Len(1)).
		Return(1, nil)

	f.syncRunRepo.EXPECT().
		Finalize("run-1", domain.SyncRunStatusCompleted, 4, nil).
		Return(nil)

	result, err := f.service.RunFullSync(account)

	assert.NoError(t, err)
	assert.Equal(t, 1, result.Structure.Campaigns)
	assert.Equal(t, 1, result.Structure.AdSets)
	assert.Equal(t, 1, result.Structure.Ads)
	assert.Equal(t, 1, result.MetricRowCount)
}

func TestService_RunFullSync_TokenExpiredRevokesAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSyncFixture(t, ctrl)
	account := f.syncableAccount(t)

	f.syncRunRepo.EXPECT().
		HasRunning("ACC001", domain.SyncRunKindFull).
		Return(false, nil)
	f.syncRunRepo.EXPECT().
		Create("ACC001", domain.SyncRunKindFull).
		Return(&domain.SyncRun{ID: "run-2"}, nil)

	f.metaClient.EXPECT().
		GetCampaigns("token-em-claro", "act_123").
		Return(nil, &metadomain.APIError{Kind: metadomain.ErrorKindTokenExpired, Code: 190, Message: "token expirado"})

	// A execução é registrada como FAILED com o erro, e a conta é revogada
	f.syncRunRepo.EXPECT().
		Finalize("run-2", domain.SyncRunStatusFailed, 0, gomock.Not(gomock.Nil())).
		Return(nil)
	f.accountRepo.EXPECT().
		UpdateStatus("ACC001", domain.AdAccountStatusRevoked).
		Return(nil)

	_, err := f.service.RunFullSync(account)
	assert.Error(t, err)
	assert.True(t, metadomain.IsTokenExpired(err))
}

func TestService_RunFullSync_PartialCountSurvivesFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSyncFixture(t, ctrl)
	account := f.syncableAccount(t)

	f.syncRunRepo.EXPECT().
		HasRunning("ACC001", domain.SyncRunKindFull).
		Return(false, nil)
	f.syncRunRepo.EXPECT().
		Create("ACC001", domain.SyncRunKindFull).
		Return(&domain.SyncRun{ID: "run-4"}, nil)

	// As campanhas são gravadas antes da falha nos conjuntos de anúncios
	f.metaClient.EXPECT().
		GetCampaigns("token-em-claro", "act_123").
		Return([]metadomain.Campaign{
			{ID: "c1", Name: "Campanha Vendas", Status: "ACTIVE", Objective: "OUTCOME_SALES"},
			{ID: "c2", Name: "Campanha Leads", Status: "ACTIVE", Objective: "OUTCOME_LEADS"},
		}, nil)
	f.structureRepo.EXPECT().
		UpsertCampaigns(gomock.Len(2)).
		Return(2, nil)

	f.metaClient.EXPECT().
		GetAdSets("token-em-claro", "act_123").
		Return(nil, errors.New("erro transitório na API"))

	// A execução falha, mas a contagem do que já foi gravado fica registrada
	f.syncRunRepo.EXPECT().
		Finalize("run-4", domain.SyncRunStatusFailed, 2, gomock.Not(gomock.Nil())).
		Return(nil)

	_, err := f.service.RunFullSync(account)
	assert.Error(t, err)
}

func TestService_RunFullSync_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSyncFixture(t, ctrl)
	account := f.syncableAccount(t)

	f.syncRunRepo.EXPECT().
		HasRunning("ACC001", domain.SyncRunKindFull).
		Return(false, nil).
		Times(2)
	f.syncRunRepo.EXPECT().
		Create("ACC001", domain.SyncRunKindFull).
		Return(&domain.SyncRun{ID: "run-5"}, nil).
		Times(2)

	f.metaClient.EXPECT().
		GetCampaigns("token-em-claro", "act_123").
		Return([]metadomain.Campaign{
			{ID: "c1", Name: "Campanha Vendas", Status: "ACTIVE", Objective: "OUTCOME_SALES"},
		}, nil).
		Times(2)

	var campaignBatches [][]*domain.Campaign
	f.structureRepo.EXPECT().
		UpsertCampaigns(gomock.Any()).
		DoAndReturn(func(campaigns []*domain.Campaign) (int, error) {
			campaignBatches = append(campaignBatches, campaigns)
			return len(campaigns), nil
		}).
		Times(2)

	f.metaClient.EXPECT().
		GetAdSets("token-em-claro", "act_123").
		Return(nil, nil).
		Times(2)
	f.structureRepo.EXPECT().
		UpsertAdSets(gomock.Len(0)).
		Return(0, nil).
		Times(2)

	f.metaClient.EXPECT().
		GetAds("token-em-claro", "act_123", metaclient.AdFieldsFull).
		Return(nil, nil).
		Times(2)
	f.structureRepo.EXPECT().
		UpsertAds(gomock.Len(0)).
		Return(0, nil).
		Times(2)

	f.metaClient.EXPECT().
		GetDailyInsights("token-em-claro", "act_123", gomock.Any(), gomock.Any()).
		Return([]metadomain.InsightRow{
			{
				AdID:        "ad1",
				DateStart:   "2024-05-09",
				Impressions: "1000",
				Clicks:      "20",
				Spend:       "35.50",
				Reach:       "800",
				Actions:     []metadomain.Action{{ActionType: "purchase", Value: "2"}},
			},
		}, nil).
		Times(2)

	var metricBatches [][]*domain.AdDailyMetric
	f.metricRepo.EXPECT().
		UpsertBatch(gomock.Any()).
		DoAndReturn(func(metrics []*domain.AdDailyMetric) (int, error) {
			metricBatches = append(metricBatches, metrics)
			return len(metrics), nil
		}).
		Times(2)

	f.syncRunRepo.EXPECT().
		Finalize("run-5", domain.SyncRunStatusCompleted, 2, nil).
		Return(nil).
		Times(2)

	first, err := f.service.RunFullSync(account)
	assert.NoError(t, err)

	second, err := f.service.RunFullSync(account)
	assert.NoError(t, err)

	// Rodar duas vezes com os mesmos argumentos emite exatamente os mesmos
	// upserts por chave natural; o ON CONFLICT do banco garante o restante
	assert.Equal(t, first, second)
	assert.Equal(t, campaignBatches[0], campaignBatches[1])
	assert.Equal(t, metricBatches[0], metricBatches[1])
}

func TestService_RunFullSync_FieldDegradationAndBackfill(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSyncFixture(t, ctrl)
	account := f.syncableAccount(t)

	tooLarge := &metadomain.APIError{Kind: metadomain.ErrorKindPayloadTooLarge, Code: 1, Message: "reduce the amount of data"}

	f.syncRunRepo.EXPECT().
		HasRunning("ACC001", domain.SyncRunKindFull).
		Return(false, nil)
	f.syncRunRepo.EXPECT().
		Create("ACC001", domain.SyncRunKindFull).
		Return(&domain.SyncRun{ID: "run-3"}, nil)

	f.metaClient.EXPECT().
		GetCampaigns("token-em-claro", "act_123").
		Return(nil, nil)
	f.structureRepo.EXPECT().
		UpsertCampaigns(gomock.Len(0)).
		Return(0, nil)

	f.metaClient.EXPECT().
		GetAdSets("token-em-claro", "act_123").
		Return(nil, nil)
	f.structureRepo.EXPECT().
		UpsertAdSets(gomock.Len(0)).
		Return(0, nil)

	// O conjunto completo estoura o volume; o reduzido responde sem criativo
	f.metaClient.EXPECT().
		GetAds("token-em-claro", "act_123", metaclient.AdFieldsFull).
		Return(nil, tooLarge)
	f.metaClient.EXPECT().
		GetAds("token-em-claro", "act_123", metaclient.AdFieldsReduced).
		Return([]metadomain.Ad{
			{ID: "ad1", AdSetID: "as1", Name: "Criativo 1", Status: "ACTIVE"},
		}, nil)
	f.structureRepo.EXPECT().
		UpsertAds(gomock.Len(1)).
		Return(1, nil)

	// Segunda passada busca o criativo do anúncio degradado
	f.metaClient.EXPECT().
		GetAdCreative("token-em-claro", "ad1").
		Return(&metadomain.Creative{ThumbnailURL: "https://cdn/thumb.jpg", Body: "texto"}, nil)
	f.structureRepo.EXPECT().
		UpdateAdCreative("ACC001", "ad1", "https://cdn/thumb.jpg", "texto").
		Return(nil)

	f.metaClient.EXPECT().
		GetDailyInsights("token-em-claro", "act_123", gomock.Any(), gomock.Any()).
		Return(nil, nil)
	f.metricRepo.EXPECT().
		UpsertBatch(gomock.Len(0)).
		Return(0, nil)

	f.syncRunRepo.EXPECT().
		Finalize("run-3", domain.SyncRunStatusCompleted, 1, nil).
		Return(nil)

	result, err := f.service.RunFullSync(account)

	assert.NoError(t, err)
	assert.Equal(t, 1, result.Structure.Ads)
}

func TestExtractConversions(t *testing.T) {
	actions := []metadomain.Action{
		{ActionType: "purchase", Value: "3"},
		{ActionType: "offsite_conversion.fb_pixel_purchase", Value: "2"},
		{ActionType: "link_click", Value: "50"},
	}

	tests := []struct {
		name            string
		actions         []metadomain.Action
		conversionEvent string
		expected        int
	}{
		{
			name:            "Casamento exato soma apenas o evento configurado",
			actions:         actions,
			conversionEvent: "purchase",
			expected:        3,
		},
		{
			name: "Sem casamento exato cai no fallback por sufixo",
			actions: []metadomain.Action{
				{ActionType: "offsite_conversion.fb_pixel_purchase", Value: "2"},
				{ActionType: "onsite_web_purchase", Value: "1"},
				{ActionType: "link_click", Value: "50"},
			},
			conversionEvent: "purchase",
			expected:        3,
		},
		{
			name: "Sinal qualificado casa com o evento pelo nome base",
			actions: []metadomain.Action{
				{ActionType: "purchase", Value: "3"},
				{ActionType: "link_click", Value: "50"},
			},
			conversionEvent: "offsite_conversion.fb_pixel_purchase",
			expected:        3,
		},
		{
			name: "Sinal qualificado casa com variantes que carregam o nome base",
			actions: []metadomain.Action{
				{ActionType: "onsite_web_purchase", Value: "2"},
				{ActionType: "purchase", Value: "1"},
				{ActionType: "lead", Value: "9"},
			},
			conversionEvent: "offsite_conversion.fb_pixel_purchase",
			expected:        3,
		},
		{
			name:            "Evento não configurado retorna zero",
			actions:         actions,
			conversionEvent: "",
			expected:        0,
		},
		{
			name:            "Nenhuma ação correspondente retorna zero",
			actions:         actions,
			conversionEvent: "lead",
			expected:        0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractConversions(tt.actions, tt.conversionEvent))
		})
	}
}

func TestExtractConversionValue(t *testing.T) {
	values := []metadomain.Action{
		{ActionType: "purchase", Value: "150.75"},
		{ActionType: "offsite_conversion.fb_pixel_purchase", Value: "99.90"},
	}

	assert.Equal(t, 150.75, extractConversionValue(values, "purchase"))

	suffixOnly := []metadomain.Action{
		{ActionType: "offsite_conversion.fb_pixel_purchase", Value: "99.90"},
	}
	assert.Equal(t, 99.90, extractConversionValue(suffixOnly, "purchase"))

	// O sinal configurado com qualificador completo casa com o evento plano
	plainEvent := []metadomain.Action{
		{ActionType: "purchase", Value: "120.50"},
	}
	assert.Equal(t, 120.50, extractConversionValue(plainEvent, "offsite_conversion.fb_pixel_purchase"))

	assert.Equal(t, 0.0, extractConversionValue(values, ""))
}

func TestTrailingSegment(t *testing.T) {
	assert.Equal(t, "purchase", trailingSegment("offsite_conversion.fb_pixel_purchase"))
	assert.Equal(t, "lead", trailingSegment("lead"))
	assert.Equal(t, "reply", trailingSegment("onsite_conversion.messaging_first_reply"))
}

func TestDeriveFrequency(t *testing.T) {
	tests := []struct {
		name     string
		row      metadomain.InsightRow
		expected float64
	}{
		{
			name:     "Frequência reportada tem prioridade",
			row:      metadomain.InsightRow{Frequency: "1.85", Impressions: "1000", Reach: "400"},
			expected: 1.85,
		},
		{
			name:     "Sem frequência deriva de impressões sobre alcance",
			row:      metadomain.InsightRow{Impressions: "1000", Reach: "400"},
			expected: 2.5,
		},
		{
			name:     "Sem alcance retorna zero",
			row:      metadomain.InsightRow{Impressions: "1000"},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := tt.row
			assert.Equal(t, tt.expected, deriveFrequency(&row))
		})
	}
}

func TestService_toDailyMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newSyncFixture(t, ctrl)
	account := &domain.AdAccount{ID: "ACC001", ConversionEvent: "purchase"}

	rows := []metadomain.InsightRow{
		{
			AdID:         "ad1",
			DateStart:    "2024-05-09",
			Impressions:  "1000",
			Clicks:       "20",
			Spend:        "35.50",
			Reach:        "500",
			Actions:      []metadomain.Action{{ActionType: "purchase", Value: "2"}},
			ActionValues: []metadomain.Action{{ActionType: "purchase", Value: "200.00"}},
		},
		{
			AdID:      "ad2",
			DateStart: "data-invalida",
		},
	}

	metrics := f.service.(*Service).toDailyMetrics(account, rows)

	// A linha com data inválida é descartada
	assert.Len(t, metrics, 1)

	m := metrics[0]
	assert.Equal(t, "ACC001", m.AccountID)
	assert.Equal(t, "ad1", m.AdExternalID)
	assert.Equal(t, time.Date(2024, 5, 9, 0, 0, 0, 0, time.UTC), m.Date)
	assert.Equal(t, 1000, m.Impressions)
	assert.Equal(t, 2, m.Conversions)
	assert.Equal(t, 200.00, m.ConversionValue)
	assert.Equal(t, 2.0, m.Frequency)
}
