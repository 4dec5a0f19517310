package metaclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	metadomain "github.com/aiatende/marketing-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/aiatende/marketing-dashboard-api/internal/domain"
	"github.com/sirupsen/logrus"
)

// GetDailyAdInsights busca os insights diários no nível de anúncio da conta na
// Graph API, com time_increment=1 (uma linha por anúncio por dia).
func (c *MetaClient) GetDailyAdInsights(account *domain.MetaAdAccount, filters *domain.InsightFilters) ([]metadomain.DailyAdInsight, error) {
	// Garantir o prefixo act_ exigido pela API de anúncios
	apiAdAccountID := account.AdAccountID
	if !strings.HasPrefix(apiAdAccountID, "act_") {
		apiAdAccountID = "act_" + apiAdAccountID
	}

	baseURL := fmt.Sprintf("%s/%s/insights", c.Cfg.Meta.URL, apiAdAccountID)

	timeRange := fmt.Sprintf(
		"{\"since\":\"%s\",\"until\":\"%s\"}",
		filters.StartDate.Format(time.DateOnly),
		filters.EndDate.Format(time.DateOnly),
	)

	params := &url.Values{}
	params.Add("level", "ad")
	params.Add("time_range", timeRange)
	params.Add("time_increment", "1")
	params.Add("fields", strings.Join([]string{
		"date_start",
		"date_stop",
		"campaign_id",
		"campaign_name",
		"adset_id",
		"adset_name",
		"ad_id",
		"ad_name",
		"impressions",
		"clicks",
		"spend",
		"actions",
	}, ","))
	params.Add("limit", "1000")
	params.Add("access_token", account.AccessToken)

	requestURL := baseURL + "?" + params.Encode()

	req, err := http.NewRequest(http.MethodGet, requestURL, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição para a Graph API")
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição para a Graph API")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler a resposta da Graph API: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Graph API retornou status %d: %s", resp.StatusCode, string(body))
	}

	var response metadomain.RawInsightsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON da Graph API")
		return nil, err
	}

	return response.Data, nil
}
