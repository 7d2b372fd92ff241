package deciding

import (
	"fmt"

	"github.com/vfg2006/creative-manager-api/internal/config"
	"github.com/vfg2006/creative-manager-api/internal/domain"
	"github.com/vfg2006/creative-manager-api/pkg/utils"
)

// DecisionService classifica criativos em ESCALAR, VARIAR ou MATAR a partir
// das métricas agregadas da janela. As decisões são derivadas na consulta e
// nunca persistidas.
type DecisionService interface {
	ClassifyAll(metrics []*domain.CreativeMetrics, overrides domain.StatusOverrides) []*domain.Decision
	Classify(metrics *domain.CreativeMetrics, benchmark float64, overrides domain.StatusOverrides) *domain.Decision
	Benchmark(metrics []*domain.CreativeMetrics) float64
}

type Service struct {
	settings domain.DecisionSettings
}

func NewService(settings domain.DecisionSettings) DecisionService {
	return &Service{
		settings: settings,
	}
}

// SettingsFromConfig converte a seção de configuração nos limiares do motor
func SettingsFromConfig(cfg config.Decision) domain.DecisionSettings {
	settings := domain.DecisionSettings{
		TargetCPA:           cfg.TargetCPA,
		TargetCPL:           cfg.TargetCPL,
		CTRBenchmarkSeed:    cfg.CTRBenchmarkSeed,
		MinSpendForDecision: cfg.MinSpendForDecision,
		FrequencyWarn:       cfg.FrequencyWarn,
		FrequencyKill:       cfg.FrequencyKill,
		CostKillMultiplier:  cfg.CostKillMultiplier,
	}

	defaults := domain.DefaultDecisionSettings()
	if settings.TargetCPA <= 0 {
		settings.TargetCPA = defaults.TargetCPA
	}
	if settings.TargetCPL <= 0 {
		settings.TargetCPL = defaults.TargetCPL
	}
	if settings.CTRBenchmarkSeed <= 0 {
		settings.CTRBenchmarkSeed = defaults.CTRBenchmarkSeed
	}
	if settings.MinSpendForDecision <= 0 {
		settings.MinSpendForDecision = defaults.MinSpendForDecision
	}
	if settings.FrequencyWarn <= 0 {
		settings.FrequencyWarn = defaults.FrequencyWarn
	}
	if settings.FrequencyKill <= 0 {
		settings.FrequencyKill = defaults.FrequencyKill
	}
	if settings.CostKillMultiplier <= 0 {
		settings.CostKillMultiplier = defaults.CostKillMultiplier
	}

	return settings
}

// Benchmark calcula o CTR de referência da conta sobre o lote inteiro:
// cliques totais sobre impressões totais, em porcentagem. Recalculado a
// cada lote; sem impressões, cai na semente configurada.
func (s *Service) Benchmark(metrics []*domain.CreativeMetrics) float64 {
	totalClicks := 0
	totalImpressions := 0
	for _, m := range metrics {
		totalClicks += m.Clicks
		totalImpressions += m.Impressions
	}

	if totalImpressions == 0 {
		return s.settings.CTRBenchmarkSeed
	}

	return utils.RoundWithTwoDecimalPlace(float64(totalClicks) / float64(totalImpressions) * 100)
}

func (s *Service) ClassifyAll(metrics []*domain.CreativeMetrics, overrides domain.StatusOverrides) []*domain.Decision {
	benchmark := s.Benchmark(metrics)

	decisions := make([]*domain.Decision, 0, len(metrics))
	for _, m := range metrics {
		decisions = append(decisions, s.Classify(m, benchmark, overrides))
	}

	return decisions
}

// Classify aplica as regras em ordem de precedência. A primeira regra que
// casa determina o veredito; o CTR nunca mata nem escala sozinho, apenas
// pede variação.
func (s *Service) Classify(metrics *domain.CreativeMetrics, benchmark float64, overrides domain.StatusOverrides) *domain.Decision {
	if overrides != nil {
		if status, ok := overrides[metrics.AdExternalID]; ok {
			return &domain.Decision{
				AdExternalID: metrics.AdExternalID,
				Status:       domain.DecisionForced,
				Reason:       fmt.Sprintf("Status %s fixado manualmente pelo gestor", status),
			}
		}
	}

	costTarget := s.settings.CostTarget(metrics.CampaignType)
	costLabel := domain.CostLabel(metrics.CampaignType)
	conversionLabel := domain.ConversionLabel(metrics.CampaignType)
	costPerConversion := metrics.CostPerConversion()

	// Custo por conversão estourado: o criativo queima verba mesmo convertendo
	if metrics.Conversions > 0 && costPerConversion > costTarget*s.settings.CostKillMultiplier {
		return &domain.Decision{
			AdExternalID: metrics.AdExternalID,
			Status:       domain.DecisionKill,
			Reason: fmt.Sprintf("%s de R$ %.2f acima de %.1fx o alvo de R$ %.2f",
				costLabel, costPerConversion, s.settings.CostKillMultiplier, costTarget),
		}
	}

	// Gasto relevante sem nenhuma conversão
	if metrics.Conversions == 0 && metrics.Spend >= s.settings.MinSpendForDecision {
		return &domain.Decision{
			AdExternalID: metrics.AdExternalID,
			Status:       domain.DecisionKill,
			Reason: fmt.Sprintf("R$ %.2f gastos sem nenhuma %s",
				metrics.Spend, conversionLabel),
		}
	}

	// Audiência saturada: variação obrigatória antes de qualquer escala
	if metrics.Frequency >= s.settings.FrequencyKill {
		return &domain.Decision{
			AdExternalID: metrics.AdExternalID,
			Status:       domain.DecisionVary,
			Reason: fmt.Sprintf("Frequência de %.2f acima do limite de %.2f; audiência saturada",
				metrics.Frequency, s.settings.FrequencyKill),
		}
	}

	// Converte dentro do alvo com audiência saudável
	if metrics.Conversions > 0 && costPerConversion <= costTarget && metrics.Frequency < s.settings.FrequencyWarn {
		return &domain.Decision{
			AdExternalID: metrics.AdExternalID,
			Status:       domain.DecisionScale,
			Reason: fmt.Sprintf("%s de R$ %.2f dentro do alvo de R$ %.2f com frequência saudável",
				costLabel, costPerConversion, costTarget),
		}
	}

	// CTR abaixo do benchmark só importa quando o custo está no alvo: é um
	// problema de criativo, não de custo, e nunca é veredito final
	if metrics.Conversions > 0 && costPerConversion <= costTarget && metrics.CTR() < benchmark {
		return &domain.Decision{
			AdExternalID: metrics.AdExternalID,
			Status:       domain.DecisionVary,
			Reason: fmt.Sprintf("CTR de %.2f%% abaixo do benchmark de %.2f%% da conta",
				metrics.CTR(), benchmark),
		}
	}

	// Frequência em faixa de atenção
	if metrics.Frequency >= s.settings.FrequencyWarn {
		return &domain.Decision{
			AdExternalID: metrics.AdExternalID,
			Status:       domain.DecisionVary,
			Reason: fmt.Sprintf("Frequência de %.2f em faixa de atenção (%.2f a %.2f)",
				metrics.Frequency, s.settings.FrequencyWarn, s.settings.FrequencyKill),
		}
	}

	// Gasto insuficiente para confiar em qualquer veredito
	if metrics.Spend < s.settings.MinSpendForDecision {
		return &domain.Decision{
			AdExternalID: metrics.AdExternalID,
			Status:       domain.DecisionVary,
			Reason: fmt.Sprintf("Apenas R$ %.2f gastos; dados insuficientes para decidir",
				metrics.Spend),
		}
	}

	return &domain.Decision{
		AdExternalID: metrics.AdExternalID,
		Status:       domain.DecisionVary,
		Reason:       "Sem sinal claro de escala ou descarte; manter em observação",
	}
}
