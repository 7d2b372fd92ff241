package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/creative-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/creative-manager-api/internal/domain"
)

// DailyMetricRepository persiste as métricas diárias por criativo e expõe
// as leituras agregadas que alimentam o motor de decisão e os alertas.
type DailyMetricRepository interface {
	UpsertBatch(metrics []*domain.AdDailyMetric) (int, error)
	AggregateByCreative(accountID string, filters *domain.InsightFilters) ([]*domain.CreativeMetrics, error)
	ListRange(accountID string, since, until time.Time) ([]*domain.AdDailyMetric, error)
}

type dailyMetricRepository struct {
	conn      *postgres.Connection
	batchSize int
}

func NewDailyMetricRepository(conn *postgres.Connection, batchSize int) DailyMetricRepository {
	if batchSize <= 0 {
		batchSize = 500
	}

	return &dailyMetricRepository{
		conn:      conn,
		batchSize: batchSize,
	}
}

// UpsertBatch grava as métricas em lotes limitados para não estourar o
// número de parâmetros do driver. A chave de conflito é
// (account_id, ad_external_id, date): ressincronizar um dia sobrescreve
// a linha existente.
func (r *dailyMetricRepository) UpsertBatch(metrics []*domain.AdDailyMetric) (int, error) {
	total := 0

	for start := 0; start < len(metrics); start += r.batchSize {
		end := start + r.batchSize
		if end > len(metrics) {
			end = len(metrics)
		}

		count, err := r.upsertChunk(metrics[start:end])
		if err != nil {
			return total, err
		}

		total += count
	}

	return total, nil
}

func (r *dailyMetricRepository) upsertChunk(metrics []*domain.AdDailyMetric) (int, error) {
	if len(metrics) == 0 {
		return 0, nil
	}

	query := squirrel.StatementBuilder.
		Insert("ad_daily_metrics").
		Columns(
			"account_id",
			"ad_external_id",
			"date",
			"impressions",
			"clicks",
			"spend",
			"conversions",
			"conversion_value",
			"frequency",
			"reach",
		)

	for _, metric := range metrics {
		query = query.Values(
			metric.AccountID,
			metric.AdExternalID,
			metric.Date,
			metric.Impressions,
			metric.Clicks,
			metric.Spend,
			metric.Conversions,
			metric.ConversionValue,
			metric.Frequency,
			metric.Reach,
		)
	}

	query = query.Suffix(`
		ON CONFLICT (account_id, ad_external_id, date) DO UPDATE SET
			impressions = EXCLUDED.impressions,
			clicks = EXCLUDED.clicks,
			spend = EXCLUDED.spend,
			conversions = EXCLUDED.conversions,
			conversion_value = EXCLUDED.conversion_value,
			frequency = EXCLUDED.frequency,
			reach = EXCLUDED.reach,
			updated_at = NOW()
	`).PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err = r.conn.Exec(sqlQuery, args...); err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return len(metrics), nil
}

// AggregateByCreative soma as métricas da janela por criativo e enriquece
// com os nomes da estrutura. A frequência agregada é derivada de
// impressões/alcance, já que a média das frequências diárias não tem
// significado.
func (r *dailyMetricRepository) AggregateByCreative(accountID string, filters *domain.InsightFilters) ([]*domain.CreativeMetrics, error) {
	query := squirrel.
		Select(
			"m.account_id",
			"m.ad_external_id",
			"COALESCE(a.name, '') AS ad_name",
			"COALESCE(s.name, '') AS adset_name",
			"COALESCE(c.name, '') AS campaign_name",
			"COALESCE(c.type, 'LEADS') AS campaign_type",
			"COALESCE(a.thumbnail_url, '') AS thumbnail_url",
			"COALESCE(SUM(m.impressions), 0) AS impressions",
			"COALESCE(SUM(m.clicks), 0) AS clicks",
			"COALESCE(SUM(m.spend), 0) AS spend",
			"COALESCE(SUM(m.conversions), 0) AS conversions",
			"COALESCE(SUM(m.conversion_value), 0) AS conversion_value",
			"CASE WHEN COALESCE(SUM(m.reach), 0) = 0 THEN 0 ELSE SUM(m.impressions)::float / SUM(m.reach) END AS frequency",
			"COALESCE(SUM(m.reach), 0) AS reach",
		).
		From("ad_daily_metrics m").
		LeftJoin("ads a ON a.account_id = m.account_id AND a.external_id = m.ad_external_id").
		LeftJoin("ad_sets s ON s.account_id = a.account_id AND s.external_id = a.adset_external_id").
		LeftJoin("campaigns c ON c.account_id = s.account_id AND c.external_id = s.campaign_external_id").
		Where(squirrel.Eq{"m.account_id": accountID}).
		GroupBy("m.account_id", "m.ad_external_id", "a.name", "s.name", "c.name", "c.type", "a.thumbnail_url").
		OrderBy("spend DESC")

	if filters != nil {
		if filters.StartDate != nil {
			query = query.Where(squirrel.GtOrEq{"m.date": *filters.StartDate})
		}
		if filters.EndDate != nil {
			query = query.Where(squirrel.LtOrEq{"m.date": *filters.EndDate})
		}
	}

	sqlQuery, args, err := query.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	result := make([]*domain.CreativeMetrics, 0)
	for rows.Next() {
		metrics := &domain.CreativeMetrics{}
		err := rows.Scan(
			&metrics.AccountID,
			&metrics.AdExternalID,
			&metrics.AdName,
			&metrics.AdSetName,
			&metrics.CampaignName,
			&metrics.CampaignType,
			&metrics.ThumbnailURL,
			&metrics.Impressions,
			&metrics.Clicks,
			&metrics.Spend,
			&metrics.Conversions,
			&metrics.ConversionValue,
			&metrics.Frequency,
			&metrics.Reach,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear métricas: %w", err)
		}
		result = append(result, metrics)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return result, nil
}

// ListRange devolve as linhas diárias cruas de uma janela, ordenadas por
// criativo e data. O detector de fadiga precisa do histórico dia a dia
// para comparar janelas móveis.
func (r *dailyMetricRepository) ListRange(accountID string, since, until time.Time) ([]*domain.AdDailyMetric, error) {
	sqlQuery, args, err := squirrel.
		Select(
			"id, account_id, ad_external_id, date, impressions, clicks, spend",
			"conversions, conversion_value, frequency, reach, created_at, updated_at",
		).
		From("ad_daily_metrics").
		Where(squirrel.Eq{"account_id": accountID}).
		Where(squirrel.GtOrEq{"date": since}).
		Where(squirrel.LtOrEq{"date": until}).
		OrderBy("ad_external_id ASC", "date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	result := make([]*domain.AdDailyMetric, 0)
	for rows.Next() {
		metric := &domain.AdDailyMetric{}
		err := rows.Scan(
			&metric.ID,
			&metric.AccountID,
			&metric.AdExternalID,
			&metric.Date,
			&metric.Impressions,
			&metric.Clicks,
			&metric.Spend,
			&metric.Conversions,
			&metric.ConversionValue,
			&metric.Frequency,
			&metric.Reach,
			&metric.CreatedAt,
			&metric.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear métrica: %w", err)
		}
		result = append(result, metric)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return result, nil
}
