package gaclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	gadomain "github.com/vfg2006/creative-manager-api/infrastructure/integrator/ga/domain"
	"github.com/vfg2006/creative-manager-api/internal/config"
	"github.com/vfg2006/creative-manager-api/internal/domain"
)

// Tetos da API de dados do GA4
const (
	maxRowsPerRequest = 10000
)

// Client é o cliente da API de dados do Google Analytics 4
type Client interface {
	GetSessionsByPage(accountID string, since, until time.Time) ([]*domain.GASessionRow, error)
}

type GAClient struct {
	cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config, httpClient *http.Client) Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	return &GAClient{
		cfg:        cfg,
		httpClient: httpClient,
	}
}

// GetSessionsByPage consulta sessões e sessões engajadas por data e caminho
// de página no período, paginando por offset até esgotar as linhas.
func (c *GAClient) GetSessionsByPage(accountID string, since, until time.Time) ([]*domain.GASessionRow, error) {
	rows := make([]*domain.GASessionRow, 0)

	for offset := 0; ; offset += maxRowsPerRequest {
		report, err := c.runReport(gadomain.RunReportRequest{
			DateRanges: []gadomain.DateRange{{
				StartDate: since.Format(time.DateOnly),
				EndDate:   until.Format(time.DateOnly),
			}},
			Dimensions: []gadomain.Dimension{{Name: "date"}, {Name: "pagePath"}},
			Metrics:    []gadomain.Metric{{Name: "sessions"}, {Name: "engagedSessions"}},
			Limit:      maxRowsPerRequest,
			Offset:     offset,
		})
		if err != nil {
			return nil, err
		}

		for _, row := range report.Rows {
			sessionRow, err := parseSessionRow(accountID, row)
			if err != nil {
				logrus.WithError(err).Warn("Linha de sessões do GA ignorada por formato inválido")
				continue
			}
			rows = append(rows, sessionRow)
		}

		if len(report.Rows) < maxRowsPerRequest {
			break
		}
	}

	return rows, nil
}

func (c *GAClient) runReport(request gadomain.RunReportRequest) (*gadomain.RunReportResponse, error) {
	payload, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar requisição do GA: %w", err)
	}

	requestURL := fmt.Sprintf("%s/properties/%s:runReport",
		c.cfg.GA.BaseURL, c.cfg.GA.PropertyID)

	req, err := http.NewRequest(http.MethodPost, requestURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.GA.APISecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao fazer a requisição: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("erro na resposta do GA. Status: %d, Corpo: %s", resp.StatusCode, string(body))
	}

	var report gadomain.RunReportResponse
	if err := json.Unmarshal(body, &report); err != nil {
		return nil, fmt.Errorf("erro ao decodificar resposta do GA: %w", err)
	}

	return &report, nil
}

func parseSessionRow(accountID string, row gadomain.Row) (*domain.GASessionRow, error) {
	if len(row.DimensionValues) < 2 || len(row.MetricValues) < 2 {
		return nil, fmt.Errorf("linha com dimensões ou métricas faltando")
	}

	// O GA devolve a data no formato compacto YYYYMMDD
	date, err := time.Parse("20060102", row.DimensionValues[0].Value)
	if err != nil {
		return nil, fmt.Errorf("data inválida %q: %w", row.DimensionValues[0].Value, err)
	}

	sessions, err := strconv.Atoi(row.MetricValues[0].Value)
	if err != nil {
		return nil, fmt.Errorf("valor de sessões inválido: %w", err)
	}

	engaged, err := strconv.Atoi(row.MetricValues[1].Value)
	if err != nil {
		return nil, fmt.Errorf("valor de sessões engajadas inválido: %w", err)
	}

	return &domain.GASessionRow{
		AccountID:       accountID,
		Date:            date,
		PagePath:        row.DimensionValues[1].Value,
		Sessions:        sessions,
		EngagedSessions: engaged,
	}, nil
}
