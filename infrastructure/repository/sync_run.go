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

// SyncRunRepository mantém o log append-only das sincronizações.
// Uma linha nasce RUNNING e é finalizada uma única vez.
type SyncRunRepository interface {
	Create(accountID string, kind domain.SyncRunKind) (*domain.SyncRun, error)
	Finalize(id string, status domain.SyncRunStatus, recordCount int, errorText *string) error
	ListByAccount(accountID string, limit int) ([]*domain.SyncRun, error)
	HasRunning(accountID string, kind domain.SyncRunKind) (bool, error)
}

type syncRunRepository struct {
	conn *postgres.Connection
}

func NewSyncRunRepository(conn *postgres.Connection) SyncRunRepository {
	return &syncRunRepository{
		conn: conn,
	}
}

func (r *syncRunRepository) Create(accountID string, kind domain.SyncRunKind) (*domain.SyncRun, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar identificador da execução: %w", err)
	}

	run := &domain.SyncRun{
		ID:        id,
		AccountID: accountID,
		Kind:      kind,
		Status:    domain.SyncRunStatusRunning,
		StartedAt: time.Now().UTC(),
	}

	sqlQuery, args, err := squirrel.
		Insert("sync_runs").
		Columns("id", "account_id", "kind", "status", "started_at").
		Values(run.ID, run.AccountID, run.Kind, run.Status, run.StartedAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err = r.conn.Exec(sqlQuery, args...); err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return run, nil
}

// Finalize fecha a execução. O filtro por status RUNNING garante que uma
// linha já finalizada nunca seja sobrescrita.
func (r *syncRunRepository) Finalize(id string, status domain.SyncRunStatus, recordCount int, errorText *string) error {
	sqlQuery, args, err := squirrel.
		Update("sync_runs").
		Set("status", status).
		Set("finished_at", time.Now().UTC()).
		Set("record_count", recordCount).
		Set("error_text", errorText).
		Where(squirrel.Eq{"id": id, "status": domain.SyncRunStatusRunning}).
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
		return fmt.Errorf("execução %s não encontrada ou já finalizada", id)
	}

	return nil
}

func (r *syncRunRepository) ListByAccount(accountID string, limit int) ([]*domain.SyncRun, error) {
	if limit <= 0 {
		limit = 20
	}

	sqlQuery, args, err := squirrel.
		Select("id, account_id, kind, status, started_at, finished_at, record_count, error_text").
		From("sync_runs").
		Where(squirrel.Eq{"account_id": accountID}).
		OrderBy("started_at DESC").
		Limit(uint64(limit)).
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

	runs := make([]*domain.SyncRun, 0)
	for rows.Next() {
		run := &domain.SyncRun{}
		err := rows.Scan(
			&run.ID,
			&run.AccountID,
			&run.Kind,
			&run.Status,
			&run.StartedAt,
			&run.FinishedAt,
			&run.RecordCount,
			&run.ErrorText,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear execução: %w", err)
		}
		runs = append(runs, run)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return runs, nil
}

// HasRunning indica se já existe sincronização em andamento para a conta,
// usada como guarda contra execuções sobrepostas.
func (r *syncRunRepository) HasRunning(accountID string, kind domain.SyncRunKind) (bool, error) {
	sqlQuery, args, err := squirrel.
		Select("1").
		From("sync_runs").
		Where(squirrel.Eq{
			"account_id": accountID,
			"kind":       kind,
			"status":     domain.SyncRunStatusRunning,
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
