package kommoclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	kommodomain "github.com/aiatende/marketing-dashboard-api/infrastructure/integrator/kommo/domain"
)

type AggregatedLeadsParams struct {
	Subdomain     string
	JourneyStages []string
	StartDate     time.Time
	EndDate       time.Time
}

func (c *KommoClient) GetAggregatedLeads(ctx context.Context, params AggregatedLeadsParams) (*kommodomain.AggregatedLeadsResponse, error) {
	// Construir a URL da requisição.
	endpoint, err := url.Parse(c.config.Kommo.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "/kommo-leads/aggregated-utm")

	// Adicionar parâmetros de consulta. Os estágios da jornada são enviados
	// como parâmetro repetido, na ordem configurada pelo cliente.
	query := endpoint.Query()
	query.Set("subdomain", params.Subdomain)
	for _, stage := range params.JourneyStages {
		query.Add("lead_journey", stage)
	}
	query.Set("created_at_from", strconv.FormatInt(params.StartDate.Unix(), 10))
	query.Set("created_at_to", strconv.FormatInt(params.EndDate.Unix(), 10))
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, fmt.Errorf("requisição falhou com status %s: %w", resp.Status, kommodomain.ErrInvalidToken)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	response := &kommodomain.AggregatedLeadsResponse{}
	if err := json.NewDecoder(resp.Body).Decode(response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return response, nil
}
