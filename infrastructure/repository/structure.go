package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/creative-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/creative-manager-api/internal/domain"
)

// StructureRepository persiste as entidades de estrutura espelhadas da
// plataforma. Tudo é upsert pela chave natural (account_id, external_id):
// cada sincronização sobrescreve os metadados sem manter histórico.
type StructureRepository interface {
	UpsertCampaigns(campaigns []*domain.Campaign) (int, error)
	UpsertAdSets(adSets []*domain.AdSet) (int, error)
	UpsertAds(ads []*domain.Ad) (int, error)
	UpdateAdCreative(accountID, adExternalID, thumbnailURL, creativeBody string) error
	ListAdsByAccount(accountID string) ([]*domain.Ad, error)
}

type structureRepository struct {
	conn *postgres.Connection
}

func NewStructureRepository(conn *postgres.Connection) StructureRepository {
	return &structureRepository{
		conn: conn,
	}
}

func (r *structureRepository) UpsertCampaigns(campaigns []*domain.Campaign) (int, error) {
	if len(campaigns) == 0 {
		return 0, nil
	}

	query := squirrel.StatementBuilder.
		Insert("campaigns").
		Columns("account_id", "external_id", "name", "status", "objective", "type")

	for _, campaign := range campaigns {
		query = query.Values(
			campaign.AccountID,
			campaign.ExternalID,
			campaign.Name,
			campaign.Status,
			campaign.Objective,
			campaign.Type,
		)
	}

	query = query.Suffix(`
		ON CONFLICT (account_id, external_id) DO UPDATE SET
			name = EXCLUDED.name,
			status = EXCLUDED.status,
			objective = EXCLUDED.objective,
			type = EXCLUDED.type,
			updated_at = NOW()
	`).PlaceholderFormat(squirrel.Dollar)

	return r.execUpsert(query, len(campaigns))
}

func (r *structureRepository) UpsertAdSets(adSets []*domain.AdSet) (int, error) {
	if len(adSets) == 0 {
		return 0, nil
	}

	query := squirrel.StatementBuilder.
		Insert("ad_sets").
		Columns("account_id", "external_id", "campaign_external_id", "name", "status")

	for _, adSet := range adSets {
		query = query.Values(
			adSet.AccountID,
			adSet.ExternalID,
			adSet.CampaignExternalID,
			adSet.Name,
			adSet.Status,
		)
	}

	query = query.Suffix(`
		ON CONFLICT (account_id, external_id) DO UPDATE SET
			campaign_external_id = EXCLUDED.campaign_external_id,
			name = EXCLUDED.name,
			status = EXCLUDED.status,
			updated_at = NOW()
	`).PlaceholderFormat(squirrel.Dollar)

	return r.execUpsert(query, len(adSets))
}

func (r *structureRepository) UpsertAds(ads []*domain.Ad) (int, error) {
	if len(ads) == 0 {
		return 0, nil
	}

	query := squirrel.StatementBuilder.
		Insert("ads").
		Columns("account_id", "external_id", "adset_external_id", "name", "status", "thumbnail_url", "creative_body")

	for _, ad := range ads {
		query = query.Values(
			ad.AccountID,
			ad.ExternalID,
			ad.AdSetExternalID,
			ad.Name,
			ad.Status,
			ad.ThumbnailURL,
			ad.CreativeBody,
		)
	}

	query = query.Suffix(`
		ON CONFLICT (account_id, external_id) DO UPDATE SET
			adset_external_id = EXCLUDED.adset_external_id,
			name = EXCLUDED.name,
			status = EXCLUDED.status,
			thumbnail_url = EXCLUDED.thumbnail_url,
			creative_body = EXCLUDED.creative_body,
			updated_at = NOW()
	`).PlaceholderFormat(squirrel.Dollar)

	return r.execUpsert(query, len(ads))
}

// UpdateAdCreative preenche o criativo de um anúncio buscado na segunda
// passada, sem tocar nos demais campos
func (r *structureRepository) UpdateAdCreative(accountID, adExternalID, thumbnailURL, creativeBody string) error {
	sqlQuery, args, err := squirrel.
		Update("ads").
		Set("thumbnail_url", thumbnailURL).
		Set("creative_body", creativeBody).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"account_id": accountID, "external_id": adExternalID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err = r.conn.Exec(sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *structureRepository) ListAdsByAccount(accountID string) ([]*domain.Ad, error) {
	sqlQuery, args, err := squirrel.
		Select("id, account_id, external_id, adset_external_id, name, status, thumbnail_url, creative_body, created_at, updated_at").
		From("ads").
		Where(squirrel.Eq{"account_id": accountID}).
		OrderBy("name ASC").
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

	ads := make([]*domain.Ad, 0)
	for rows.Next() {
		ad := &domain.Ad{}
		err := rows.Scan(
			&ad.ID,
			&ad.AccountID,
			&ad.ExternalID,
			&ad.AdSetExternalID,
			&ad.Name,
			&ad.Status,
			&ad.ThumbnailURL,
			&ad.CreativeBody,
			&ad.CreatedAt,
			&ad.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear anúncio: %w", err)
		}
		ads = append(ads, ad)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return ads, nil
}

func (r *structureRepository) execUpsert(query squirrel.InsertBuilder, count int) (int, error) {
	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err = r.conn.Exec(sqlQuery, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return 0, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return count, nil
}
