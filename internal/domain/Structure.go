package domain

import "time"

// Entidades de estrutura espelhadas da plataforma de anúncios.
// São sobrescritas integralmente a cada sincronização de estrutura,
// com upsert pela chave natural (account_id + external_id).

type CampaignType string

const (
	// CampaignTypeSales identifica campanhas de venda (conversão de compra)
	CampaignTypeSales CampaignType = "SALES"
	// CampaignTypeLeads identifica campanhas de captação de leads
	CampaignTypeLeads CampaignType = "LEADS"
)

type Campaign struct {
	ID         int64        `json:"id"`
	AccountID  string       `json:"account_id"`
	ExternalID string       `json:"external_id"`
	Name       string       `json:"name"`
	Status     string       `json:"status"`
	Objective  string       `json:"objective"`
	Type       CampaignType `json:"type"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

type AdSet struct {
	ID                 int64     `json:"id"`
	AccountID          string    `json:"account_id"`
	ExternalID         string    `json:"external_id"`
	CampaignExternalID string    `json:"campaign_external_id"`
	Name               string    `json:"name"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// Ad é o criativo individual, unidade sobre a qual o motor de decisão opera
type Ad struct {
	ID                int64     `json:"id"`
	AccountID         string    `json:"account_id"`
	ExternalID        string    `json:"external_id"`
	AdSetExternalID   string    `json:"adset_external_id"`
	Name              string    `json:"name"`
	Status            string    `json:"status"`
	ThumbnailURL      string    `json:"thumbnail_url"`
	CreativeBody      string    `json:"creative_body"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// CampaignTypeFromObjective mapeia o objetivo da campanha na plataforma
// para o tipo usado pelo motor de decisão. Objetivos de compra viram SALES;
// o restante é tratado como LEADS.
func CampaignTypeFromObjective(objective string) CampaignType {
	switch objective {
	case "OUTCOME_SALES", "CONVERSIONS", "PRODUCT_CATALOG_SALES", "PURCHASE":
		return CampaignTypeSales
	default:
		return CampaignTypeLeads
	}
}
