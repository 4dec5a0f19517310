package meta

import (
	"fmt"
	"strconv"
	"time"

	metadomain "github.com/aiatende/marketing-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/aiatende/marketing-dashboard-api/infrastructure/integrator/meta/metaclient"
	"github.com/aiatende/marketing-dashboard-api/internal/config"
	"github.com/aiatende/marketing-dashboard-api/internal/domain"
	"github.com/sirupsen/logrus"
)

type MetaIntegrator interface {
	// FetchDailyInsights converte as linhas da Graph API para o modelo local
	// de insight diário, extraindo leads da lista de ações.
	FetchDailyInsights(account *domain.MetaAdAccount, filters *domain.InsightFilters) ([]*domain.MetaAdInsightDaily, error)
}

type MetaService struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) MetaIntegrator {
	return &MetaService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *MetaService) FetchDailyInsights(account *domain.MetaAdAccount, filters *domain.InsightFilters) ([]*domain.MetaAdInsightDaily, error) {
	rows, err := s.Client.GetDailyAdInsights(account, filters)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar insights diários do Meta: %w", err)
	}

	insights := make([]*domain.MetaAdInsightDaily, 0, len(rows))
	for _, row := range rows {
		date, err := time.Parse(time.DateOnly, row.DateStart)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"ad_account_id": account.AdAccountID,
				"date_start":    row.DateStart,
				"error":         err.Error(),
			}).Warn("Data inválida em linha de insight do Meta, ignorando")
			continue
		}

		insights = append(insights, &domain.MetaAdInsightDaily{
			MetaAdAccountID: account.ID,
			Date:            date,
			CampaignID:      row.CampaignID,
			CampaignName:    row.CampaignName,
			AdsetID:         row.AdsetID,
			AdsetName:       row.AdsetName,
			AdID:            row.AdID,
			AdName:          row.AdName,
			Impressions:     parseIntOrZero(row.Impressions),
			Clicks:          parseIntOrZero(row.Clicks),
			Spend:           parseFloatOrZero(row.Spend),
			Leads:           metadomain.ExtractLeadsFromActions(row.Actions),
		})
	}

	return insights, nil
}

func parseIntOrZero(s string) int {
	if s == "" {
		return 0
	}

	value, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return value
}

func parseFloatOrZero(s string) float64 {
	if s == "" {
		return 0
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return value
}
