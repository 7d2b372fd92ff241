package domain

// DecisionStatus é a classificação operacional de um criativo
type DecisionStatus string

const (
	// DecisionScale indica que o criativo deve receber mais verba
	DecisionScale DecisionStatus = "ESCALAR"
	// DecisionVary indica que o criativo precisa de variação ou revisão
	DecisionVary DecisionStatus = "VARIAR"
	// DecisionKill indica que o criativo deve ser pausado
	DecisionKill DecisionStatus = "MATAR"
	// DecisionForced indica status fixado manualmente pelo gestor
	DecisionForced DecisionStatus = "FORCADO"
)

// DecisionSettings são os limiares configuráveis do motor de decisão.
// Tratados como configuração, não como estado.
type DecisionSettings struct {
	// Custo-alvo por conversão para campanhas de venda (CPA) e de leads (CPL)
	TargetCPA float64 `json:"target_cpa"`
	TargetCPL float64 `json:"target_cpl"`

	// Benchmark de CTR usado quando a conta não tem impressões
	CTRBenchmarkSeed float64 `json:"ctr_benchmark_seed"`

	// Gasto mínimo antes de confiar em um veredito
	MinSpendForDecision float64 `json:"min_spend_for_decision"`

	// Limiares de frequência (fadiga de audiência)
	FrequencyWarn float64 `json:"frequency_warn"`
	FrequencyKill float64 `json:"frequency_kill"`

	// Multiplicador sobre o custo-alvo acima do qual o criativo é morto
	CostKillMultiplier float64 `json:"cost_kill_multiplier"`
}

// DefaultDecisionSettings retorna os limiares padrão do produto
func DefaultDecisionSettings() DecisionSettings {
	return DecisionSettings{
		TargetCPA:           50.0,
		TargetCPL:           15.0,
		CTRBenchmarkSeed:    1.0,
		MinSpendForDecision: 20.0,
		FrequencyWarn:       2.2,
		FrequencyKill:       2.8,
		CostKillMultiplier:  1.3,
	}
}

// CostTarget retorna o custo-alvo adequado ao tipo de campanha
func (s DecisionSettings) CostTarget(campaignType CampaignType) float64 {
	if campaignType == CampaignTypeSales {
		return s.TargetCPA
	}

	return s.TargetCPL
}

// CostLabel retorna o rótulo do custo por conversão conforme o tipo de campanha
func CostLabel(campaignType CampaignType) string {
	if campaignType == CampaignTypeSales {
		return "CPA"
	}

	return "CPL"
}

// ConversionLabel retorna o rótulo da conversão conforme o tipo de campanha
func ConversionLabel(campaignType CampaignType) string {
	if campaignType == CampaignTypeSales {
		return "venda"
	}

	return "lead"
}

// Decision é o resultado derivado do motor de decisão para um criativo.
// Nunca é persistida: é recalculada a cada consulta para refletir os
// dados mais recentes.
type Decision struct {
	AdExternalID string         `json:"ad_external_id"`
	Status       DecisionStatus `json:"status"`
	Reason       string         `json:"reason"`
}

// StatusOverrides mapeia criativo -> status forçado pelo gestor,
// curto-circuitando o motor de decisão.
type StatusOverrides map[string]DecisionStatus

// CreativeDecision junta as métricas agregadas do criativo com o veredito
// do motor, o formato consumido pelos painéis.
type CreativeDecision struct {
	Metrics  *CreativeMetrics `json:"metrics"`
	Decision *Decision        `json:"decision"`
}
