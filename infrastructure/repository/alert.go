package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/creative-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/creative-manager-api/internal/domain"
	"github.com/vfg2006/creative-manager-api/pkg/utils"
)

// AlertRepository persiste os alertas detectados sobre as métricas.
// A deduplicação por (conta, criativo, tipo, dia) considera apenas alertas
// em aberto: um alerta resolvido no mesmo dia não suprime nova detecção.
type AlertRepository interface {
	ExistsForDay(accountID, adExternalID string, alertType domain.AlertType, day time.Time) (bool, error)
	Create(alert *domain.Alert) error
	ListUnresolved(accountID string) ([]*domain.Alert, error)
	Resolve(id string) error
}

type alertRepository struct {
	conn *postgres.Connection
}

func NewAlertRepository(conn *postgres.Connection) AlertRepository {
	return &alertRepository{
		conn: conn,
	}
}

func (r *alertRepository) ExistsForDay(accountID, adExternalID string, alertType domain.AlertType, day time.Time) (bool, error) {
	sqlQuery, args, err := squirrel.
		Select("1").
		From("alerts").
		Where(squirrel.Eq{
			"account_id":     accountID,
			"ad_external_id": adExternalID,
			"type":           alertType,
			"day":            day,
			"resolved_at":    nil,
		}).
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var one int
	err = r.conn.QueryRow(sqlQuery, args...).Scan(&one)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return true, nil
}

func (r *alertRepository) Create(alert *domain.Alert) error {
	if alert.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar identificador do alerta: %w", err)
		}
		alert.ID = id
	}
	if alert.CreatedAt.IsZero() {
		alert.CreatedAt = time.Now().UTC()
	}

	sqlQuery, args, err := squirrel.
		Insert("alerts").
		Columns("id", "account_id", "ad_external_id", "type", "day", "severity", "message", "created_at").
		Values(
			alert.ID,
			alert.AccountID,
			alert.AdExternalID,
			alert.Type,
			alert.Day,
			alert.Severity,
			alert.Message,
			alert.CreatedAt,
		).
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

func (r *alertRepository) ListUnresolved(accountID string) ([]*domain.Alert, error) {
	sqlQuery, args, err := squirrel.
		Select("id, account_id, ad_external_id, type, day, severity, message, created_at, resolved_at").
		From("alerts").
		Where(squirrel.Eq{"account_id": accountID, "resolved_at": nil}).
		OrderBy("created_at DESC").
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

	alerts := make([]*domain.Alert, 0)
	for rows.Next() {
		alert := &domain.Alert{}
		err := rows.Scan(
			&alert.ID,
			&alert.AccountID,
			&alert.AdExternalID,
			&alert.Type,
			&alert.Day,
			&alert.Severity,
			&alert.Message,
			&alert.CreatedAt,
			&alert.ResolvedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear alerta: %w", err)
		}
		alerts = append(alerts, alert)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return alerts, nil
}

func (r *alertRepository) Resolve(id string) error {
	sqlQuery, args, err := squirrel.
		Update("alerts").
		Set("resolved_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": id, "resolved_at": nil}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao verificar linhas afetadas: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("alerta %s não encontrado ou já resolvido", id)
	}

	return nil
}
