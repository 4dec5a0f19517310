package domain

import "time"

type Provider string

const (
	ProviderKommo Provider = "KOMMO"
	ProviderMeta  Provider = "META"
)

// JourneyMap é a lista ordenada de nomes de estágios do funil configurada
// pelo cliente. A posição define o estágio: a posição 1 é o topo do funil.
// O schema de saída da evolução é derivado integralmente desta lista.
type JourneyMap []string

// IntegrationConfig representa a configuração de uma integração externa de um
// cliente. Para o provider KOMMO o campo Subdomain identifica a conta no CRM.
type IntegrationConfig struct {
	ID         string     `json:"id"`
	ClientID   string     `json:"client_id"`
	Provider   Provider   `json:"provider"`
	IsActive   bool       `json:"is_active"`
	Subdomain  string     `json:"subdomain,omitempty"`
	JourneyMap JourneyMap `json:"journey_map"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
