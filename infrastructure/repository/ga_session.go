package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/creative-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/creative-manager-api/internal/domain"
)

// GASessionRepository persiste as sessões importadas do Google Analytics,
// com upsert pela chave natural (account_id, date, page_path).
type GASessionRepository interface {
	UpsertBatch(rows []*domain.GASessionRow) (int, error)
	ListRange(accountID string, since, until time.Time) ([]*domain.GASessionRow, error)
}

type gaSessionRepository struct {
	conn      *postgres.Connection
	batchSize int
}

func NewGASessionRepository(conn *postgres.Connection, batchSize int) GASessionRepository {
	if batchSize <= 0 {
		batchSize = 500
	}

	return &gaSessionRepository{
		conn:      conn,
		batchSize: batchSize,
	}
}

func (r *gaSessionRepository) UpsertBatch(sessions []*domain.GASessionRow) (int, error) {
	total := 0

	for start := 0; start < len(sessions); start += r.batchSize {
		end := start + r.batchSize
		if end > len(sessions) {
			end = len(sessions)
		}

		count, err := r.upsertChunk(sessions[start:end])
		if err != nil {
			return total, err
		}

		total += count
	}

	return total, nil
}

func (r *gaSessionRepository) upsertChunk(sessions []*domain.GASessionRow) (int, error) {
	if len(sessions) == 0 {
		return 0, nil
	}

	query := squirrel.StatementBuilder.
		Insert("ga_sessions").
		Columns("account_id", "date", "page_path", "sessions", "engaged_sessions")

	for _, session := range sessions {
		query = query.Values(
			session.AccountID,
			session.Date,
			session.PagePath,
			session.Sessions,
			session.EngagedSessions,
		)
	}

	query = query.Suffix(`
		ON CONFLICT (account_id, date, page_path) DO UPDATE SET
			sessions = EXCLUDED.sessions,
			engaged_sessions = EXCLUDED.engaged_sessions,
			updated_at = NOW()
	`).PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err = r.conn.Exec(sqlQuery, args...); err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return len(sessions), nil
}

func (r *gaSessionRepository) ListRange(accountID string, since, until time.Time) ([]*domain.GASessionRow, error) {
	sqlQuery, args, err := squirrel.
		Select("id, account_id, date, page_path, sessions, engaged_sessions, created_at, updated_at").
		From("ga_sessions").
		Where(squirrel.Eq{"account_id": accountID}).
		Where(squirrel.GtOrEq{"date": since}).
		Where(squirrel.LtOrEq{"date": until}).
		OrderBy("date ASC", "sessions DESC").
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

	sessions := make([]*domain.GASessionRow, 0)
	for rows.Next() {
		session := &domain.GASessionRow{}
		err := rows.Scan(
			&session.ID,
			&session.AccountID,
			&session.Date,
			&session.PagePath,
			&session.Sessions,
			&session.EngagedSessions,
			&session.CreatedAt,
			&session.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear sessão: %w", err)
		}
		sessions = append(sessions, session)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sessions, nil
}
