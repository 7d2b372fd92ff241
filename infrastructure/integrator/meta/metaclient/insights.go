package metaclient

import (
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	metadomain "github.com/vfg2006/creative-manager-api/infrastructure/integrator/meta/domain"
)

// GetDailyInsights busca as linhas de insights com granularidade diária,
// por anúncio, para o intervalo [since, until]. O chamador é responsável
// por dimensionar o intervalo abaixo do teto de volume da API.
func (c *MetaClient) GetDailyInsights(accessToken, accountExternalID string, since, until time.Time) ([]metadomain.InsightRow, error) {
	params := url.Values{}
	params.Set("level", "ad")
	params.Set("time_increment", "1")
	params.Set("fields", "ad_id,ad_name,impressions,clicks,spend,frequency,reach,actions,action_values")
	params.Set("time_range", fmt.Sprintf(`{"since":"%s","until":"%s"}`,
		since.Format(time.DateOnly), until.Format(time.DateOnly)))

	path := fmt.Sprintf("act_%s/insights", accountExternalID)

	items, err := c.CallAllPages(path, accessToken, params)
	if err != nil {
		return nil, err
	}

	rows := make([]metadomain.InsightRow, 0, len(items))
	for _, item := range items {
		var row metadomain.InsightRow
		if err := json.Unmarshal(item, &row); err != nil {
			return nil, fmt.Errorf("erro ao decodificar linha de insights: %w", err)
		}
		rows = append(rows, row)
	}

	return rows, nil
}
