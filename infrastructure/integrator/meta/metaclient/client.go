package metaclient

import (
	"net/http"
	"time"

	metadomain "github.com/aiatende/marketing-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/aiatende/marketing-dashboard-api/internal/config"
	"github.com/aiatende/marketing-dashboard-api/internal/domain"
)

type Client interface {
	GetDailyAdInsights(account *domain.MetaAdAccount, filters *domain.InsightFilters) ([]metadomain.DailyAdInsight, error)
}

type MetaClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &MetaClient{
		Cfg: cfg,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}
