package evolution

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/aiatende/marketing-dashboard-api/infrastructure/integrator/kommo"
	kommodomain "github.com/aiatende/marketing-dashboard-api/infrastructure/integrator/kommo/domain"
	"github.com/aiatende/marketing-dashboard-api/infrastructure/repository"
	"github.com/aiatende/marketing-dashboard-api/internal/config"
	"github.com/aiatende/marketing-dashboard-api/internal/domain"
	"github.com/sirupsen/logrus"
)

// Service implementa a interface Evolutioner
type Service struct {
	cfg                   *config.Config
	kommoService          kommo.KommoIntegrator
	metaInsightRepository repository.MetaInsightDailyRepository
	googleInsightRepo     repository.GoogleInsightDailyRepository
	integrationConfigRepo repository.IntegrationConfigRepository

	// Relógio injetável para tornar o intervalo de dias determinístico em teste
	now func() time.Time
}

// NewService cria uma nova instância do serviço de evolução
func NewService(
	cfg *config.Config,
	kommoService kommo.KommoIntegrator,
	metaInsightRepo repository.MetaInsightDailyRepository,
	googleInsightRepo repository.GoogleInsightDailyRepository,
	integrationConfigRepo repository.IntegrationConfigRepository,
) *Service {
	return &Service{
		cfg:                   cfg,
		kommoService:          kommoService,
		metaInsightRepository: metaInsightRepo,
		googleInsightRepo:     googleInsightRepo,
		integrationConfigRepo: integrationConfigRepo,
		now:                   time.Now,
	}
}

// GetEvolution monta a série de evolução dos últimos N dias para um cliente.
// Os somatórios locais (Meta e Google) são lidos em paralelo e alinhados por
// data com o funil do CRM, buscado dia a dia em lotes. Falhas de consulta
// local abortam a requisição; falhas por dia no CRM degradam para zero.
func (s *Service) GetEvolution(ctx context.Context, clientID string, days int, dataSource domain.DataSource) (*domain.EvolutionResponse, error) {
	if days <= 0 {
		days = s.cfg.Evolution.DefaultDays
	}

	dayRange := buildDayRange(s.now(), days)
	startDate := dayRange[0].StartOfDay()
	endDate := dayRange[len(dayRange)-1].EndOfDay()

	logrus.WithFields(logrus.Fields{
		"client_id":   clientID,
		"days":        days,
		"data_source": dataSource,
		"start_date":  dayRange[0].ISO,
		"end_date":    dayRange[len(dayRange)-1].ISO,
	}).Info("Montando evolução diária do dashboard")

	// Buscar os somatórios locais das duas plataformas em paralelo
	var (
		metaSums   []*domain.MetaDailySum
		googleSums []*domain.GoogleDailySum
		metaErr    error
		googleErr  error
	)

	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		metaSums, metaErr = s.metaInsightRepository.SumByDay(clientID, startDate, endDate)
	}()

	go func() {
		defer wg.Done()
		googleSums, googleErr = s.googleInsightRepo.SumByDay(clientID, startDate, endDate)
	}()

	wg.Wait()

	if metaErr != nil {
		return nil, fmt.Errorf("erro ao buscar somatórios diários do Meta: %w", metaErr)
	}

	if googleErr != nil {
		return nil, fmt.Errorf("erro ao buscar somatórios diários do Google: %w", googleErr)
	}

	metaByDate := make(map[string]*domain.MetaDailySum, len(metaSums))
	for _, sum := range metaSums {
		metaByDate[sum.Date.Format(time.DateOnly)] = sum
	}

	googleByDate := make(map[string]*domain.GoogleDailySum, len(googleSums))
	for _, sum := range googleSums {
		googleByDate[sum.Date.Format(time.DateOnly)] = sum
	}

	// Resolver a configuração do CRM do cliente. A ausência de integração
	// ativa não é erro: a evolução degrada para os dados locais
	journeyMap, subdomain, err := s.resolveKommoConfig(clientID)
	if err != nil {
		return nil, err
	}

	hasKommo := dataSource.IncludesKommo() && subdomain != "" && len(journeyMap) > 0

	var funnels map[string]kommodomain.DailyFunnel
	if hasKommo {
		funnels = fetchFunnelInBatches(
			ctx,
			s.kommoService,
			subdomain,
			journeyMap,
			dayRange,
			s.cfg.Evolution.KommoFetchBatchSize,
		)
	}

	points := make([]domain.EvolutionPoint, 0, len(dayRange))

	for _, day := range dayRange {
		var metaSpend, googleCost float64
		var metaLeads int

		if sum, ok := metaByDate[day.ISO]; ok {
			metaSpend = sum.Spend
			metaLeads = sum.Leads
		}

		if sum, ok := googleByDate[day.ISO]; ok {
			googleCost = sum.Cost
		}

		totalSpend := metaSpend + googleCost

		point := domain.EvolutionPoint{
			Date:   day.Label,
			Spend:  totalSpend,
			Stages: make([]domain.StageValue, 0, len(journeyMap)),
		}

		if hasKommo {
			funnel := funnels[day.ISO]
			point.Revenue = funnel.Revenue

			for _, stageName := range journeyMap {
				point.Stages = append(point.Stages, domain.StageValue{
					Name:  stageName,
					Count: funnel.Stages[stageName],
				})
			}
		} else {
			// Sem CRM o topo do funil vem dos leads de pixel; os estágios
			// mais profundos existem no schema, porém zerados
			for i, stageName := range journeyMap {
				count := 0
				if i == 0 {
					count = metaLeads
				}

				point.Stages = append(point.Stages, domain.StageValue{
					Name:  stageName,
					Count: count,
				})
			}
		}

		if totalSpend > 0 {
			point.ROAS = point.Revenue / totalSpend
		}

		points = append(points, point)
	}

	if journeyMap == nil {
		journeyMap = domain.JourneyMap{}
	}

	return &domain.EvolutionResponse{
		JourneyMap: journeyMap,
		Data:       points,
	}, nil
}

// resolveKommoConfig carrega o JourneyMap e o subdomínio da integração ativa
// do cliente com o Kommo. Integração ausente retorna valores vazios sem erro.
func (s *Service) resolveKommoConfig(clientID string) (domain.JourneyMap, string, error) {
	integrationConfig, err := s.integrationConfigRepo.GetActiveByClientAndProvider(clientID, domain.ProviderKommo)
	if err != nil {
		return nil, "", fmt.Errorf("erro ao buscar configuração da integração com o Kommo: %w", err)
	}

	if integrationConfig == nil {
		logrus.WithField("client_id", clientID).Info("Cliente sem integração ativa com o Kommo")
		return nil, "", nil
	}

	return integrationConfig.JourneyMap, integrationConfig.Subdomain, nil
}
