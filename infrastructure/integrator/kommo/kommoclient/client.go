package kommoclient

import (
	"context"
	"net/http"
	"time"

	kommodomain "github.com/aiatende/marketing-dashboard-api/infrastructure/integrator/kommo/domain"
	"github.com/aiatende/marketing-dashboard-api/internal/config"
)

type Client interface {
	GetAggregatedLeads(ctx context.Context, params AggregatedLeadsParams) (*kommodomain.AggregatedLeadsResponse, error)
}

type KommoClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	timeout := time.Duration(cfg.Kommo.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &KommoClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config: cfg,
	}
}
