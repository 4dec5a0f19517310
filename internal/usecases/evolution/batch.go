package evolution

import (
	"context"
	"errors"
	"sync"

	"github.com/aiatende/marketing-dashboard-api/infrastructure/integrator/kommo"
	kommodomain "github.com/aiatende/marketing-dashboard-api/infrastructure/integrator/kommo/domain"
	"github.com/aiatende/marketing-dashboard-api/internal/domain"
	"github.com/sirupsen/logrus"
)

// fetchFunnelInBatches busca o funil diário do CRM para todos os dias do
// intervalo, respeitando o limite de requisições: as buscas de um lote rodam
// em paralelo e os lotes são estritamente sequenciais. O resultado é indexado
// pela chave ISO do dia; dias cuja busca falhou recebem um funil zerado.
func fetchFunnelInBatches(
	ctx context.Context,
	kommoService kommo.KommoIntegrator,
	subdomain string,
	journeyMap domain.JourneyMap,
	days []domain.DayWindow,
	batchSize int,
) map[string]kommodomain.DailyFunnel {
	if batchSize <= 0 {
		batchSize = 1
	}

	funnels := make(map[string]kommodomain.DailyFunnel, len(days))

	// Mutex para proteger o mapa de resultados durante escritas concorrentes
	var mutex sync.Mutex

	for start := 0; start < len(days); start += batchSize {
		end := start + batchSize
		if end > len(days) {
			end = len(days)
		}

		var wg sync.WaitGroup

		for _, day := range days[start:end] {
			wg.Add(1)

			go func(day domain.DayWindow) {
				defer wg.Done()

				funnel, err := kommoService.GetDailyFunnel(ctx, subdomain, journeyMap, day)
				if err != nil {
					// Falhas por dia não interrompem a série: o dia afetado
					// segue na resposta com o funil zerado
					if errors.Is(err, kommodomain.ErrInvalidToken) {
						logrus.WithError(err).WithFields(logrus.Fields{
							"subdomain": subdomain,
							"date":      day.ISO,
						}).Warn("Token do Kommo inválido ou expirado ao buscar funil do dia")
					} else {
						logrus.WithError(err).WithFields(logrus.Fields{
							"subdomain": subdomain,
							"date":      day.ISO,
						}).Warn("Erro ao buscar funil do Kommo para o dia")
					}

					funnel = kommodomain.ZeroDailyFunnel(journeyMap)
				}

				mutex.Lock()
				funnels[day.ISO] = funnel
				mutex.Unlock()
			}(day)
		}

		wg.Wait()
	}

	return funnels
}
