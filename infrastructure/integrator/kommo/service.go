package kommo

import (
	"context"
	"time"

	kommodomain "github.com/aiatende/marketing-dashboard-api/infrastructure/integrator/kommo/domain"
	"github.com/aiatende/marketing-dashboard-api/infrastructure/integrator/kommo/kommoclient"
	"github.com/aiatende/marketing-dashboard-api/internal/config"
	"github.com/aiatende/marketing-dashboard-api/internal/domain"
)

// maxJourneyStages é o limite legado de estágios posicionais do funil.
// Nomes além da quinta posição não recebem contagem do detalhamento.
const maxJourneyStages = 5

type KommoIntegrator interface {
	// GetDailyFunnel busca e agrega o funil de um único dia para o
	// subdomínio. As contagens são somadas posicionalmente pelo nome de cada
	// estágio do JourneyMap.
	GetDailyFunnel(ctx context.Context, subdomain string, journeyMap domain.JourneyMap, day domain.DayWindow) (kommodomain.DailyFunnel, error)
	CheckConnection(ctx context.Context, subdomain string) (bool, error)
}

type KommoService struct {
	cfg    *config.Config
	Client kommoclient.Client
}

func New(cfg *config.Config, client kommoclient.Client) KommoIntegrator {
	return &KommoService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *KommoService) GetDailyFunnel(ctx context.Context, subdomain string, journeyMap domain.JourneyMap, day domain.DayWindow) (kommodomain.DailyFunnel, error) {
	params := kommoclient.AggregatedLeadsParams{
		Subdomain:     subdomain,
		JourneyStages: journeyMap,
		StartDate:     day.StartOfDay(),
		EndDate:       day.EndOfDay(),
	}

	resp, err := s.Client.GetAggregatedLeads(ctx, params)
	if err != nil {
		return kommodomain.ZeroDailyFunnel(journeyMap), err
	}

	return aggregateFunnel(resp, journeyMap), nil
}

func (s *KommoService) CheckConnection(ctx context.Context, subdomain string) (bool, error) {
	// Sonda a conectividade consultando a janela do dia corrente
	now := time.Now()
	day := domain.DayWindow{
		Date:  now,
		Label: now.Format("02/01"),
		ISO:   now.Format(time.DateOnly),
	}

	_, err := s.GetDailyFunnel(ctx, subdomain, domain.JourneyMap{}, day)
	if err != nil {
		return false, err
	}

	return true, nil
}

// aggregateFunnel soma as contagens dos anúncios por posição do JourneyMap.
// Quando um anúncio não traz o detalhamento por estágio mas reporta leads, a
// contagem bruta cai inteira na primeira posição do funil.
func aggregateFunnel(resp *kommodomain.AggregatedLeadsResponse, journeyMap domain.JourneyMap) kommodomain.DailyFunnel {
	funnel := kommodomain.ZeroDailyFunnel(journeyMap)

	positional := journeyMap
	if len(positional) > maxJourneyStages {
		positional = positional[:maxJourneyStages]
	}

	// Nomes repetidos no JourneyMap compartilham a mesma chave no funil;
	// somar uma única vez por anúncio.
	seen := make(map[string]bool, len(positional))
	stageNames := make([]string, 0, len(positional))
	for _, name := range positional {
		if !seen[name] {
			seen[name] = true
			stageNames = append(stageNames, name)
		}
	}

	for _, campaign := range resp.Campaigns {
		for _, group := range campaign.Groups {
			for _, ad := range group.Ads {
				if len(ad.Journey) == 0 && ad.LeadsCount > 0 {
					if len(journeyMap) > 0 {
						funnel.Stages[journeyMap[0]] += ad.LeadsCount
					}
					continue
				}

				for _, stageName := range stageNames {
					funnel.Stages[stageName] += ad.Journey[stageName]
				}
			}
		}

		funnel.Revenue += campaign.TotalRevenue
	}

	return funnel
}
