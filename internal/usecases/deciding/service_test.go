package deciding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/creative-manager-api/internal/config"
	"github.com/vfg2006/creative-manager-api/internal/domain"
)

func newTestService() DecisionService {
	return NewService(domain.DefaultDecisionSettings())
}

func TestService_Benchmark(t *testing.T) {
	service := newTestService()

	tests := []struct {
		name     string
		metrics  []*domain.CreativeMetrics
		expected float64
	}{
		{
			name: "CTR agregado do lote em porcentagem",
			metrics: []*domain.CreativeMetrics{
				{Clicks: 0, Impressions: 1000},
				{Clicks: 20, Impressions: 0},
			},
			expected: 2.0,
		},
		{
			name: "Criativo sem impressões entra na soma sem quebrar",
			metrics: []*domain.CreativeMetrics{
				{Clicks: 10, Impressions: 1000},
				{Clicks: 5, Impressions: 0},
			},
			expected: 1.5,
		},
		{
			name:     "Lote sem impressões cai na semente configurada",
			metrics:  []*domain.CreativeMetrics{{Clicks: 0, Impressions: 0}},
			expected: 1.0,
		},
		{
			name:     "Lote vazio cai na semente configurada",
			metrics:  nil,
			expected: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, service.Benchmark(tt.metrics))
		})
	}
}

func TestService_Classify(t *testing.T) {
	service := newTestService()

	tests := []struct {
		name      string
		metrics   *domain.CreativeMetrics
		benchmark float64
		overrides domain.StatusOverrides
		expected  domain.DecisionStatus
		reasonHas string
	}{
		{
			name: "Override manual curto-circuita o motor",
			metrics: &domain.CreativeMetrics{
				AdExternalID: "ad-1",
				CampaignType: domain.CampaignTypeSales,
				Spend:        500, Conversions: 1, Frequency: 3.5,
			},
			benchmark: 1.0,
			overrides: domain.StatusOverrides{"ad-1": domain.DecisionScale},
			expected:  domain.DecisionForced,
		},
		{
			name: "CPA acima do multiplicador mata mesmo convertendo",
			metrics: &domain.CreativeMetrics{
				AdExternalID: "ad-2",
				CampaignType: domain.CampaignTypeSales,
				Spend:        66, Conversions: 1, // CPA 66 > 50 * 1.3
			},
			benchmark: 1.0,
			expected:  domain.DecisionKill,
		},
		{
			name: "Gasto relevante sem conversão mata",
			metrics: &domain.CreativeMetrics{
				AdExternalID: "ad-3",
				CampaignType: domain.CampaignTypeLeads,
				Spend:        80, Conversions: 0,
				Impressions: 5000, Clicks: 100,
			},
			benchmark: 1.0,
			expected:  domain.DecisionKill,
		},
		{
			name: "Frequência saturada pede variação antes de escalar",
			metrics: &domain.CreativeMetrics{
				AdExternalID: "ad-4",
				CampaignType: domain.CampaignTypeSales,
				Spend:        40, Conversions: 2, Frequency: 3.0, // CPA 20, dentro do alvo
			},
			benchmark: 1.0,
			expected:  domain.DecisionVary,
		},
		{
			name: "Converte dentro do alvo com audiência saudável escala",
			metrics: &domain.CreativeMetrics{
				AdExternalID: "ad-5",
				CampaignType: domain.CampaignTypeSales,
				Spend:        90, Conversions: 3, Frequency: 1.8, // CPA 30
				Impressions: 10000, Clicks: 200,
			},
			benchmark: 1.0,
			expected:  domain.DecisionScale,
		},
		{
			name: "CTR abaixo do benchmark com custo no alvo pede variação, nunca mata",
			metrics: &domain.CreativeMetrics{
				AdExternalID: "ad-6",
				CampaignType: domain.CampaignTypeSales,
				Spend:        60, Conversions: 2, Frequency: 2.5, // CPA 30, dentro do alvo
				Impressions: 10000, Clicks: 50, // CTR 0.5%
			},
			benchmark: 1.5,
			expected:  domain.DecisionVary,
			reasonHas: "abaixo do benchmark",
		},
		{
			name: "Sem conversão e gasto baixo o CTR não opina; faltam dados",
			metrics: &domain.CreativeMetrics{
				AdExternalID: "ad-6b",
				CampaignType: domain.CampaignTypeLeads,
				Spend:        10, Conversions: 0, Frequency: 1.0,
				Impressions: 10000, Clicks: 50, // CTR 0.5%, abaixo do benchmark
			},
			benchmark: 1.5,
			expected:  domain.DecisionVary,
			reasonHas: "dados insuficientes",
		},
		{
			name: "Frequência em faixa de atenção pede variação",
			metrics: &domain.CreativeMetrics{
				AdExternalID: "ad-7",
				CampaignType: domain.CampaignTypeSales,
				Spend:        45, Conversions: 1, Frequency: 2.5, // CPA 45, dentro do alvo
				Impressions: 10000, Clicks: 300, // CTR 3% acima do benchmark
			},
			benchmark: 1.0,
			expected:  domain.DecisionVary,
		},
		{
			name: "Gasto insuficiente não gera veredito confiável",
			metrics: &domain.CreativeMetrics{
				AdExternalID: "ad-8",
				CampaignType: domain.CampaignTypeLeads,
				Spend:        5, Conversions: 0, Frequency: 1.0,
				Impressions: 1000, Clicks: 30, // CTR 3% acima do benchmark
			},
			benchmark: 1.0,
			expected:  domain.DecisionVary,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := service.Classify(tt.metrics, tt.benchmark, tt.overrides)

			assert.Equal(t, tt.metrics.AdExternalID, decision.AdExternalID)
			assert.Equal(t, tt.expected, decision.Status)
			assert.NotEmpty(t, decision.Reason)
			if tt.reasonHas != "" {
				assert.Contains(t, decision.Reason, tt.reasonHas)
			}
		})
	}
}

func TestService_Classify_KillPrecedesScale(t *testing.T) {
	service := newTestService()

	// CPA 65.50 > 65 (50 * 1.3): o custo estourado vence qualquer outro sinal
	metrics := &domain.CreativeMetrics{
		AdExternalID: "ad-9",
		CampaignType: domain.CampaignTypeSales,
		Spend:        131, Conversions: 2, Frequency: 1.0,
		Impressions: 50000, Clicks: 2000,
	}

	decision := service.Classify(metrics, 1.0, nil)
	assert.Equal(t, domain.DecisionKill, decision.Status)
}

func TestService_ClassifyAll(t *testing.T) {
	service := newTestService()

	metrics := []*domain.CreativeMetrics{
		{
			AdExternalID: "ad-a",
			CampaignType: domain.CampaignTypeSales,
			Spend:        90, Conversions: 3, Frequency: 1.5,
			Impressions: 10000, Clicks: 300, // CTR 3%
		},
		{
			AdExternalID: "ad-b",
			CampaignType: domain.CampaignTypeSales,
			Spend:        50, Conversions: 0, Frequency: 1.5,
			Impressions: 10000, Clicks: 100, // CTR 1%
		},
	}

	decisions := service.ClassifyAll(metrics, nil)

	assert.Len(t, decisions, 2)
	assert.Equal(t, domain.DecisionScale, decisions[0].Status)
	assert.Equal(t, domain.DecisionKill, decisions[1].Status)
}

func TestSettingsFromConfig_Defaults(t *testing.T) {
	// Configuração zerada cai nos limiares padrão do produto
	settings := SettingsFromConfig(config.Decision{})

	assert.Equal(t, domain.DefaultDecisionSettings(), settings)
}

func TestSettingsFromConfig_PartialOverride(t *testing.T) {
	settings := SettingsFromConfig(config.Decision{
		TargetCPA:     80.0,
		FrequencyKill: 3.5,
	})

	assert.Equal(t, 80.0, settings.TargetCPA)
	assert.Equal(t, 3.5, settings.FrequencyKill)
	assert.Equal(t, 15.0, settings.TargetCPL)
	assert.Equal(t, 2.2, settings.FrequencyWarn)
}
