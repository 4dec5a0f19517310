package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/aiatende/marketing-dashboard-api/infrastructure/database/postgres"
	"github.com/aiatende/marketing-dashboard-api/internal/domain"
	"github.com/aiatende/marketing-dashboard-api/pkg/utils"
)

const (
	integrationConfigsTable = "integration_configs ic"
)

// kommoConfigPayload é o formato do campo config (jsonb) para o provider KOMMO
type kommoConfigPayload struct {
	Subdomain string `json:"subdomain"`
}

type IntegrationConfigRepository interface {
	// GetActiveByClientAndProvider retorna nil quando não há integração ativa
	// configurada; isso não é um erro.
	GetActiveByClientAndProvider(clientID string, provider domain.Provider) (*domain.IntegrationConfig, error)
	GetByClientAndProvider(clientID string, provider domain.Provider) (*domain.IntegrationConfig, error)
	SaveOrUpdate(config *domain.IntegrationConfig) error
}

type integrationConfigRepository struct {
	conn *postgres.Connection
}

func NewIntegrationConfigRepository(conn *postgres.Connection) IntegrationConfigRepository {
	return &integrationConfigRepository{
		conn: conn,
	}
}

func (r *integrationConfigRepository) GetActiveByClientAndProvider(clientID string, provider domain.Provider) (*domain.IntegrationConfig, error) {
	return r.getConfig(squirrel.Eq{
		"ic.client_id": clientID,
		"ic.provider":  string(provider),
		"ic.is_active": true,
	})
}

func (r *integrationConfigRepository) GetByClientAndProvider(clientID string, provider domain.Provider) (*domain.IntegrationConfig, error) {
	return r.getConfig(squirrel.Eq{
		"ic.client_id": clientID,
		"ic.provider":  string(provider),
	})
}

func (r *integrationConfigRepository) getConfig(whereClause map[string]interface{}) (*domain.IntegrationConfig, error) {
	query, args, err := squirrel.
		Select("ic.id, ic.client_id, ic.provider, ic.is_active, ic.config, ic.journey_map, ic.created_at, ic.updated_at").
		From(integrationConfigsTable).
		Where(whereClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	config := &domain.IntegrationConfig{}
	var configJSON, journeyMapJSON []byte

	err = row.Scan(
		&config.ID,
		&config.ClientID,
		&config.Provider,
		&config.IsActive,
		&configJSON,
		&journeyMapJSON,
		&config.CreatedAt,
		&config.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear configuração de integração: %w", err)
	}

	if configJSON != nil {
		payload := kommoConfigPayload{}
		if err := json.Unmarshal(configJSON, &payload); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de config: %w", err)
		}
		config.Subdomain = payload.Subdomain
	}

	if journeyMapJSON != nil {
		if err := json.Unmarshal(journeyMapJSON, &config.JourneyMap); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de journey_map: %w", err)
		}
	}

	return config, nil
}

func (r *integrationConfigRepository) SaveOrUpdate(config *domain.IntegrationConfig) error {
	if config.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar ID da configuração: %w", err)
		}
		config.ID = id
	}

	configJSON, err := json.Marshal(kommoConfigPayload{Subdomain: config.Subdomain})
	if err != nil {
		return fmt.Errorf("erro ao serializar config para JSON: %w", err)
	}

	journeyMapJSON, err := json.Marshal(config.JourneyMap)
	if err != nil {
		return fmt.Errorf("erro ao serializar journey_map para JSON: %w", err)
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("integration_configs").
		Columns("id", "client_id", "provider", "is_active", "config", "journey_map").
		Values(
			config.ID,
			config.ClientID,
			string(config.Provider),
			config.IsActive,
			configJSON,
			journeyMapJSON,
		).
		Suffix(`
			ON CONFLICT (client_id, provider) DO UPDATE SET
				is_active = EXCLUDED.is_active,
				config = EXCLUDED.config,
				journey_map = EXCLUDED.journey_map,
				updated_at = NOW()
		`).
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
