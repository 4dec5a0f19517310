package evolution

import (
	"context"

	"github.com/aiatende/marketing-dashboard-api/internal/domain"
)

// Evolutioner define a interface para montar a série temporal de evolução do
// dashboard, combinando os somatórios locais de anúncios com o funil do CRM.
type Evolutioner interface {
	// GetEvolution monta a evolução dos últimos N dias para um cliente.
	// Um registro por dia, em ordem cronológica, terminando em hoje.
	GetEvolution(ctx context.Context, clientID string, days int, dataSource domain.DataSource) (*domain.EvolutionResponse, error)
}
