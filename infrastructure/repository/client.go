package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/aiatende/marketing-dashboard-api/infrastructure/database/postgres"
	"github.com/aiatende/marketing-dashboard-api/internal/domain"
	"github.com/aiatende/marketing-dashboard-api/pkg/utils"
	"github.com/lib/pq"
)

const (
	clientsTable = "clients c"
)

type ClientRepository interface {
	GetClientByID(clientID string) (*domain.Client, error)
	GetClientByEmail(email string) (*domain.Client, error)
	ListClients() ([]*domain.Client, error)
	CreateClient(client *domain.Client) error
	UpdateClient(client *domain.Client) error
}

type clientRepository struct {
	conn *postgres.Connection
}

func NewClientRepository(conn *postgres.Connection) ClientRepository {
	return &clientRepository{
		conn: conn,
	}
}

func (r *clientRepository) GetClientByID(clientID string) (*domain.Client, error) {
	return r.getClient(squirrel.Eq{"c.id": clientID})
}

func (r *clientRepository) GetClientByEmail(email string) (*domain.Client, error) {
	return r.getClient(squirrel.Eq{"c.email": email})
}

func (r *clientRepository) getClient(whereClause map[string]interface{}) (*domain.Client, error) {
	query, args, err := squirrel.
		Select("c.id, c.name, c.email, c.password_hash, c.role, c.active, c.created_at, c.updated_at, c.deleted_at").
		From(clientsTable).
		Where(whereClause).
		Where(squirrel.Eq{"c.deleted_at": nil}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	client, err := r.deserializeClient(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear cliente: %w", err)
	}

	return client, nil
}

func (r *clientRepository) deserializeClient(row *sql.Row) (*domain.Client, error) {
	client := &domain.Client{}

	if err := row.Scan(
		&client.ID,
		&client.Name,
		&client.Email,
		&client.PasswordHash,
		&client.Role,
		&client.Active,
		&client.CreatedAt,
		&client.UpdatedAt,
		&client.DeletedAt,
	); err != nil {
		return nil, err
	}

	return client, nil
}

func (r *clientRepository) ListClients() ([]*domain.Client, error) {
	query, args, err := squirrel.
		Select("c.id, c.name, c.email, c.password_hash, c.role, c.active, c.created_at, c.updated_at, c.deleted_at").
		From(clientsTable).
		Where(squirrel.Eq{"c.deleted_at": nil}).
		OrderBy("c.name ASC").
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

	clients := make([]*domain.Client, 0)
	for rows.Next() {
		client := &domain.Client{}
		if err := rows.Scan(
			&client.ID,
			&client.Name,
			&client.Email,
			&client.PasswordHash,
			&client.Role,
			&client.Active,
			&client.CreatedAt,
			&client.UpdatedAt,
			&client.DeletedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear cliente: %w", err)
		}
		clients = append(clients, client)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return clients, nil
}

func (r *clientRepository) CreateClient(client *domain.Client) error {
	if client.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar ID do cliente: %w", err)
		}
		client.ID = id
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("clients").
		Columns("id", "name", "email", "password_hash", "role", "active").
		Values(
			client.ID,
			client.Name,
			client.Email,
			client.PasswordHash,
			string(client.Role),
			client.Active,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *clientRepository) UpdateClient(client *domain.Client) error {
	query, args, err := squirrel.StatementBuilder.
		Update("clients").
		Set("name", client.Name).
		Set("email", client.Email).
		Set("password_hash", client.PasswordHash).
		Set("role", string(client.Role)).
		Set("active", client.Active).
		Set("deleted_at", client.DeletedAt).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": client.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}
