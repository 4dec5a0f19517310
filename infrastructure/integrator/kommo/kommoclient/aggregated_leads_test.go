package kommoclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	kommodomain "github.com/aiatende/marketing-dashboard-api/infrastructure/integrator/kommo/domain"
	"github.com/aiatende/marketing-dashboard-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) Client {
	return NewClient(&config.Config{
		Kommo: config.Kommo{
			BaseURL:        baseURL,
			TimeoutSeconds: 5,
		},
	})
}

func testParams() AggregatedLeadsParams {
	return AggregatedLeadsParams{
		Subdomain:     "acme",
		JourneyStages: []string{"Leads", "Reunião", "Vendas"},
		StartDate:     time.Date(2024, 5, 8, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2024, 5, 8, 23, 59, 59, 0, time.UTC),
	}
}

func TestGetAggregatedLeads(t *testing.T) {
	t.Run("Monta a query com subdomínio, estágios repetidos e janela em Unix", func(t *testing.T) {
		var captured *http.Request

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			captured = r.Clone(context.Background())
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"campaigns":[{"campaign":"c1","totalRevenue":100,"groups":[{"medium":"feed","ads":[{"content":"a1","leadsCount":3,"journey":{"Leads":3}}]}]}]}`))
		}))
		defer server.Close()

		params := testParams()
		response, err := newTestClient(server.URL).GetAggregatedLeads(context.Background(), params)

		require.NoError(t, err)
		require.NotNil(t, captured)

		query := captured.URL.Query()
		assert.Equal(t, "/kommo-leads/aggregated-utm", captured.URL.Path)
		assert.Equal(t, "acme", query.Get("subdomain"))
		assert.Equal(t, []string{"Leads", "Reunião", "Vendas"}, query["lead_journey"])
		assert.Equal(t, strconv.FormatInt(params.StartDate.Unix(), 10), query.Get("created_at_from"))
		assert.Equal(t, strconv.FormatInt(params.EndDate.Unix(), 10), query.Get("created_at_to"))

		require.Len(t, response.Campaigns, 1)
		assert.Equal(t, 100.0, response.Campaigns[0].TotalRevenue)
		assert.Equal(t, 3, response.Campaigns[0].Groups[0].Ads[0].LeadsCount)
	})

	t.Run("Status 401 é classificado como token inválido", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).GetAggregatedLeads(context.Background(), testParams())

		assert.ErrorIs(t, err, kommodomain.ErrInvalidToken)
	})

	t.Run("Status 403 é classificado como token inválido", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).GetAggregatedLeads(context.Background(), testParams())

		assert.ErrorIs(t, err, kommodomain.ErrInvalidToken)
	})

	t.Run("Outros status retornam erro genérico", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).GetAggregatedLeads(context.Background(), testParams())

		require.Error(t, err)
		assert.NotErrorIs(t, err, kommodomain.ErrInvalidToken)
	})
}
