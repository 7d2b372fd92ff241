package domain

import (
	"time"

	"github.com/vfg2006/creative-manager-api/pkg/utils"
)

// AdDailyMetric é uma linha de métricas por (conta, criativo, data).
// Invariante: única por essa tripla; alvo de upsert quando um dia é
// ressincronizado.
type AdDailyMetric struct {
	ID              int64     `json:"id"`
	AccountID       string    `json:"account_id"`
	AdExternalID    string    `json:"ad_external_id"`
	Date            time.Time `json:"date"`
	Impressions     int       `json:"impressions"`
	Clicks          int       `json:"clicks"`
	Spend           float64   `json:"spend"`
	Conversions     int       `json:"conversions"`
	ConversionValue float64   `json:"conversion_value"`
	Frequency       float64   `json:"frequency"`
	Reach           int       `json:"reach"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CreativeMetrics é a agregação derivada de AdDailyMetric em uma janela,
// enriquecida com os nomes da estrutura. Calculada na leitura, nunca
// persistida.
type CreativeMetrics struct {
	AccountID    string       `json:"account_id"`
	AdExternalID string       `json:"ad_external_id"`
	AdName       string       `json:"ad_name"`
	AdSetName    string       `json:"adset_name"`
	CampaignName string       `json:"campaign_name"`
	CampaignType CampaignType `json:"campaign_type"`
	ThumbnailURL string       `json:"thumbnail_url"`

	Impressions     int     `json:"impressions"`
	Clicks          int     `json:"clicks"`
	Spend           float64 `json:"spend"`
	Conversions     int     `json:"conversions"`
	ConversionValue float64 `json:"conversion_value"`
	Frequency       float64 `json:"frequency"`
	Reach           int     `json:"reach"`
}

// CTR retorna a taxa de cliques em porcentagem
func (m *CreativeMetrics) CTR() float64 {
	if m.Impressions == 0 {
		return 0
	}

	return utils.RoundWithTwoDecimalPlace(float64(m.Clicks) / float64(m.Impressions) * 100)
}

// CostPerConversion retorna o custo por conversão (CPA ou CPL conforme o
// tipo de campanha). Retorna 0 quando não há conversões.
func (m *CreativeMetrics) CostPerConversion() float64 {
	if m.Conversions == 0 {
		return 0
	}

	return utils.RoundWithTwoDecimalPlace(m.Spend / float64(m.Conversions))
}
