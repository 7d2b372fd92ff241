package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/creative-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/creative-manager-api/internal/domain"
)

const (
	accountsTable = "accounts a"
)

type AccountRepository interface {
	GetAccountByID(accountID string) (*domain.AdAccount, error)
	GetAccountByExternalID(accountExternalID string) (*domain.AdAccount, error)
	ListAccounts(availableStatus []domain.AdAccountStatus) ([]*domain.AdAccount, error)
	ListAccountsByUser(userID int) ([]*domain.AdAccount, error)
	CreateAccount(account *domain.AdAccount) error
	UpdateAccount(request *domain.UpdateAdAccountRequest) error
	UpdateStatus(accountID string, status domain.AdAccountStatus) error
	UpdateTokenForUser(userID int, encryptedToken string, expiresAt time.Time) error
}

type accountRepository struct {
	conn *postgres.Connection
}

func NewAccountRepository(conn *postgres.Connection) AccountRepository {
	return &accountRepository{
		conn: conn,
	}
}

const accountColumns = "a.id, a.user_id, a.external_id, a.name, a.status, a.conversion_event, a.access_token_enc, a.token_expires_at, a.created_at, a.updated_at"

func (r *accountRepository) GetAccountByID(accountID string) (*domain.AdAccount, error) {
	return r.getAccount(squirrel.Eq{"a.id": accountID})
}

func (r *accountRepository) GetAccountByExternalID(accountExternalID string) (*domain.AdAccount, error) {
	return r.getAccount(squirrel.Eq{"a.external_id": accountExternalID})
}

func (r *accountRepository) getAccount(whereClause map[string]interface{}) (*domain.AdAccount, error) {
	accountsSQL, accountsArgs, err := squirrel.
		Select(accountColumns).
		From(accountsTable).
		Where(whereClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(accountsSQL, accountsArgs...)

	account, err := scanAccount(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return account, nil
}

func (r *accountRepository) ListAccounts(availableStatus []domain.AdAccountStatus) ([]*domain.AdAccount, error) {
	queryBuilder := squirrel.
		Select(accountColumns).
		From(accountsTable).
		OrderBy("a.name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(availableStatus) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"a.status": availableStatus})
	}

	accountsSQL, accountsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.listAccounts(accountsSQL, accountsArgs)
}

func (r *accountRepository) ListAccountsByUser(userID int) ([]*domain.AdAccount, error) {
	accountsSQL, accountsArgs, err := squirrel.
		Select(accountColumns).
		From(accountsTable).
		Where(squirrel.Eq{"a.user_id": userID}).
		OrderBy("a.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.listAccounts(accountsSQL, accountsArgs)
}

func (r *accountRepository) listAccounts(accountsSQL string, accountsArgs []interface{}) ([]*domain.AdAccount, error) {
	rows, err := r.conn.Query(accountsSQL, accountsArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	accounts := make([]*domain.AdAccount, 0)
	for rows.Next() {
		account, err := scanAccountRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear conta: %w", err)
		}
		accounts = append(accounts, account)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return accounts, nil
}

func (r *accountRepository) CreateAccount(account *domain.AdAccount) error {
	query := squirrel.StatementBuilder.
		Insert("accounts").
		Columns("id", "user_id", "external_id", "name", "status", "conversion_event", "access_token_enc", "token_expires_at").
		Values(
			account.ID,
			account.UserID,
			account.ExternalID,
			account.Name,
			account.Status,
			account.ConversionEvent,
			account.AccessTokenEnc,
			account.TokenExpiresAt,
		).
		Suffix(`
			ON CONFLICT (external_id) DO UPDATE SET
				name = EXCLUDED.name,
				status = EXCLUDED.status,
				conversion_event = EXCLUDED.conversion_event,
				access_token_enc = EXCLUDED.access_token_enc,
				token_expires_at = EXCLUDED.token_expires_at,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err = r.conn.Exec(sqlQuery, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *accountRepository) UpdateAccount(request *domain.UpdateAdAccountRequest) error {
	queryBuilder := squirrel.
		Update("accounts").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": request.ID})

	if request.Name != nil {
		queryBuilder = queryBuilder.Set("name", *request.Name)
	}

	if request.ConversionEvent != nil {
		queryBuilder = queryBuilder.Set("conversion_event", *request.ConversionEvent)
	}

	if request.Status != nil {
		queryBuilder = queryBuilder.Set("status", *request.Status)
	}

	sqlQuery, args, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err = r.conn.Exec(sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *accountRepository) UpdateStatus(accountID string, status domain.AdAccountStatus) error {
	sqlQuery, args, err := squirrel.
		Update("accounts").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": accountID}).
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

// UpdateTokenForUser grava o token renovado em todas as contas do usuário.
// O token do Meta é escopado ao usuário, não à conta.
func (r *accountRepository) UpdateTokenForUser(userID int, encryptedToken string, expiresAt time.Time) error {
	sqlQuery, args, err := squirrel.
		Update("accounts").
		Set("access_token_enc", encryptedToken).
		Set("token_expires_at", expiresAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"user_id": userID}).
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

func scanAccount(row *sql.Row) (*domain.AdAccount, error) {
	account := &domain.AdAccount{}

	err := row.Scan(
		&account.ID,
		&account.UserID,
		&account.ExternalID,
		&account.Name,
		&account.Status,
		&account.ConversionEvent,
		&account.AccessTokenEnc,
		&account.TokenExpiresAt,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return account, nil
}

func scanAccountRows(rows *sql.Rows) (*domain.AdAccount, error) {
	account := &domain.AdAccount{}

	err := rows.Scan(
		&account.ID,
		&account.UserID,
		&account.ExternalID,
		&account.Name,
		&account.Status,
		&account.ConversionEvent,
		&account.AccessTokenEnc,
		&account.TokenExpiresAt,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return account, nil
}
