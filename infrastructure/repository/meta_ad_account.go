package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/aiatende/marketing-dashboard-api/infrastructure/database/postgres"
	"github.com/aiatende/marketing-dashboard-api/internal/domain"
)

type MetaAdAccountRepository interface {
	GetByClientAndAdAccountID(clientID, adAccountID string) (*domain.MetaAdAccount, error)
	ListActive() ([]*domain.MetaAdAccount, error)
}

type metaAdAccountRepository struct {
	conn *postgres.Connection
}

func NewMetaAdAccountRepository(conn *postgres.Connection) MetaAdAccountRepository {
	return &metaAdAccountRepository{
		conn: conn,
	}
}

func (r *metaAdAccountRepository) GetByClientAndAdAccountID(clientID, adAccountID string) (*domain.MetaAdAccount, error) {
	query, args, err := squirrel.
		Select("ma.id, ma.client_id, ma.ad_account_id, ma.name, ma.access_token, ma.status, ma.token_expires_at, ma.created_at, ma.updated_at").
		From(metaAdAccountsTable).
		Where(squirrel.Eq{"ma.client_id": clientID, "ma.ad_account_id": adAccountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	account := &domain.MetaAdAccount{}
	err = row.Scan(
		&account.ID,
		&account.ClientID,
		&account.AdAccountID,
		&account.Name,
		&account.AccessToken,
		&account.Status,
		&account.TokenExpiresAt,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear conta de anúncios: %w", err)
	}

	return account, nil
}

func (r *metaAdAccountRepository) ListActive() ([]*domain.MetaAdAccount, error) {
	query, args, err := squirrel.
		Select("ma.id, ma.client_id, ma.ad_account_id, ma.name, ma.access_token, ma.status, ma.token_expires_at, ma.created_at, ma.updated_at").
		From(metaAdAccountsTable).
		Where(squirrel.Eq{"ma.status": string(domain.AdAccountActive)}).
		OrderBy("ma.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	accounts := make([]*domain.MetaAdAccount, 0)
	for rows.Next() {
		account := &domain.MetaAdAccount{}
		if err := rows.Scan(
			&account.ID,
			&account.ClientID,
			&account.AdAccountID,
			&account.Name,
			&account.AccessToken,
			&account.Status,
			&account.TokenExpiresAt,
			&account.CreatedAt,
			&account.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear conta de anúncios: %w", err)
		}
		accounts = append(accounts, account)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return accounts, nil
}
