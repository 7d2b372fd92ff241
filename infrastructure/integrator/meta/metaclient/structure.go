package metaclient

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	metadomain "github.com/vfg2006/creative-manager-api/infrastructure/integrator/meta/domain"
)

// Conjuntos de campos pedidos na listagem de anúncios. A orquestração
// degrada do completo para o mínimo quando a API rejeita o volume.
var (
	AdFieldsFull    = []string{"id", "name", "status", "adset_id", "creative{id,thumbnail_url,body}"}
	AdFieldsReduced = []string{"id", "name", "status", "adset_id", "creative{id,thumbnail_url}"}
	AdFieldsMinimal = []string{"id", "name", "status", "adset_id"}
)

// GetCampaigns lista todas as campanhas da conta, seguindo a paginação
func (c *MetaClient) GetCampaigns(accessToken, accountExternalID string) ([]metadomain.Campaign, error) {
	params := url.Values{}
	params.Set("fields", "id,name,status,objective")

	path := fmt.Sprintf("act_%s/campaigns", accountExternalID)

	items, err := c.CallAllPages(path, accessToken, params)
	if err != nil {
		return nil, err
	}

	campaigns := make([]metadomain.Campaign, 0, len(items))
	for _, item := range items {
		var campaign metadomain.Campaign
		if err := json.Unmarshal(item, &campaign); err != nil {
			return nil, fmt.Errorf("erro ao decodificar campanha: %w", err)
		}
		campaigns = append(campaigns, campaign)
	}

	return campaigns, nil
}

// GetAdSets lista todos os conjuntos de anúncios da conta
func (c *MetaClient) GetAdSets(accessToken, accountExternalID string) ([]metadomain.AdSet, error) {
	params := url.Values{}
	params.Set("fields", "id,name,status,campaign_id")

	path := fmt.Sprintf("act_%s/adsets", accountExternalID)

	items, err := c.CallAllPages(path, accessToken, params)
	if err != nil {
		return nil, err
	}

	adSets := make([]metadomain.AdSet, 0, len(items))
	for _, item := range items {
		var adSet metadomain.AdSet
		if err := json.Unmarshal(item, &adSet); err != nil {
			return nil, fmt.Errorf("erro ao decodificar conjunto de anúncios: %w", err)
		}
		adSets = append(adSets, adSet)
	}

	return adSets, nil
}

// GetAds lista todos os anúncios da conta com o conjunto de campos pedido
func (c *MetaClient) GetAds(accessToken, accountExternalID string, fields []string) ([]metadomain.Ad, error) {
	params := url.Values{}
	params.Set("fields", strings.Join(fields, ","))

	path := fmt.Sprintf("act_%s/ads", accountExternalID)

	items, err := c.CallAllPages(path, accessToken, params)
	if err != nil {
		return nil, err
	}

	ads := make([]metadomain.Ad, 0, len(items))
	for _, item := range items {
		var ad metadomain.Ad
		if err := json.Unmarshal(item, &ad); err != nil {
			return nil, fmt.Errorf("erro ao decodificar anúncio: %w", err)
		}
		ads = append(ads, ad)
	}

	return ads, nil
}

// GetAdCreative busca o criativo de um único anúncio. Usado na segunda
// passada para anúncios que vieram sem thumbnail na listagem em lote.
func (c *MetaClient) GetAdCreative(accessToken, adExternalID string) (*metadomain.Creative, error) {
	params := url.Values{}
	params.Set("fields", "creative{id,thumbnail_url,body}")

	body, err := c.Call(adExternalID, accessToken, params)
	if err != nil {
		return nil, err
	}

	var response struct {
		ID       string               `json:"id"`
		Creative *metadomain.Creative `json:"creative"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar criativo do anúncio %s: %w", adExternalID, err)
	}

	return response.Creative, nil
}
