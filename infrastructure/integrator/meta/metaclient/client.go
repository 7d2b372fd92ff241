package metaclient

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/creative-manager-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/creative-manager-api/internal/config"
)

// Client é o cliente da Graph API usado pela sincronização.
// O token de acesso é sempre passado por chamada: o cliente não guarda
// credenciais, permitindo uso concorrente por várias contas.
type Client interface {
	Call(path string, accessToken string, params url.Values) ([]byte, error)
	CallAllPages(path string, accessToken string, params url.Values) ([]json.RawMessage, error)

	GetCampaigns(accessToken, accountExternalID string) ([]metadomain.Campaign, error)
	GetAdSets(accessToken, accountExternalID string) ([]metadomain.AdSet, error)
	GetAds(accessToken, accountExternalID string, fields []string) ([]metadomain.Ad, error)
	GetAdCreative(accessToken, adExternalID string) (*metadomain.Creative, error)
	GetDailyInsights(accessToken, accountExternalID string, since, until time.Time) ([]metadomain.InsightRow, error)

	ExchangeLongLivedToken(currentToken string) (*TokenResponse, error)
}

type MetaClient struct {
	cfg        *config.Config
	httpClient *http.Client
}

// NewClient cria o cliente com o http.Client injetado.
// Passar nil usa um cliente com timeout padrão de 30s.
func NewClient(cfg *config.Config, httpClient *http.Client) Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	return &MetaClient{
		cfg:        cfg,
		httpClient: httpClient,
	}
}

const backoffBase = 1 * time.Second

// Call faz uma requisição GET autenticada a um caminho da Graph API.
// Erros de rate limit são repetidos com backoff exponencial e jitter até
// o teto configurado; token expirado e demais erros propagam imediatamente.
func (c *MetaClient) Call(path string, accessToken string, params url.Values) ([]byte, error) {
	if params == nil {
		params = url.Values{}
	}
	params.Set("access_token", accessToken)

	requestURL := fmt.Sprintf("%s/%s?%s", c.cfg.Meta.URL, path, params.Encode())

	var lastErr error
	for attempt := 0; attempt <= c.cfg.Meta.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := backoffBase*time.Duration(1<<(attempt-1)) +
				time.Duration(rand.Int63n(int64(time.Second)))

			logrus.WithFields(logrus.Fields{
				"path":    path,
				"attempt": attempt,
				"delay":   delay.String(),
			}).Warn("Rate limit da API Meta atingido. Aguardando antes de repetir")

			time.Sleep(delay)
		}

		body, err := c.doRequest(requestURL)
		if err == nil {
			return body, nil
		}

		lastErr = err
		if !metadomain.IsRateLimited(err) {
			return nil, err
		}
	}

	logrus.WithField("path", path).Error("Teto de tentativas por rate limit excedido")
	return nil, lastErr
}

func (c *MetaClient) doRequest(requestURL string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao fazer a requisição: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode == http.StatusOK {
		// Algumas falhas vêm com status 200 e um payload de erro embutido
		if apiErr := classifyBody(body); apiErr != nil {
			return nil, apiErr
		}
		return body, nil
	}

	if apiErr := classifyBody(body); apiErr != nil {
		return nil, apiErr
	}

	return nil, fmt.Errorf("erro na resposta da API. Status: %d, Corpo: %s", resp.StatusCode, string(body))
}

// classifyBody produz o erro tipado quando o corpo carrega um payload de erro
func classifyBody(body []byte) *metadomain.APIError {
	var errorResp metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errorResp); err != nil {
		return nil
	}

	if errorResp.Error.Code == 0 && errorResp.Error.Message == "" {
		return nil
	}

	return errorResp.Classify()
}

// pagedResponse é o envelope genérico de listagens paginadas da Graph API
type pagedResponse struct {
	Data   []json.RawMessage `json:"data"`
	Paging metadomain.Paging `json:"paging"`
}

// CallAllPages segue a paginação por cursor até a última página.
// Um rate limit no meio da paginação é repetido na mesma página pelo
// Call; a paginação nunca recomeça do início.
func (c *MetaClient) CallAllPages(path string, accessToken string, params url.Values) ([]json.RawMessage, error) {
	if params == nil {
		params = url.Values{}
	}
	params.Set("limit", fmt.Sprintf("%d", c.cfg.Meta.PageSize))

	items := make([]json.RawMessage, 0)

	for page := 1; ; page++ {
		body, err := c.Call(path, accessToken, params)
		if err != nil {
			return nil, fmt.Errorf("erro na página %d de %s: %w", page, path, err)
		}

		var response pagedResponse
		if err := json.Unmarshal(body, &response); err != nil {
			return nil, fmt.Errorf("erro ao decodificar página %d de %s: %w", page, path, err)
		}

		items = append(items, response.Data...)

		after := response.Paging.Cursors.After
		if response.Paging.Next == "" || after == "" {
			break
		}

		params.Set("after", after)
	}

	return items, nil
}
