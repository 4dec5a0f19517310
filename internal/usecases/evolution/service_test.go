package evolution

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	kommodomain "github.com/aiatende/marketing-dashboard-api/infrastructure/integrator/kommo/domain"
	kommomocks "github.com/aiatende/marketing-dashboard-api/infrastructure/integrator/kommo/mocks"
	"github.com/aiatende/marketing-dashboard-api/infrastructure/repository/mocks"
	"github.com/aiatende/marketing-dashboard-api/internal/config"
	"github.com/aiatende/marketing-dashboard-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type evolutionTestEnv struct {
	service        *Service
	mockKommo      *kommomocks.MockKommoIntegrator
	mockMetaRepo   *mocks.MockMetaInsightDailyRepository
	mockGoogleRepo *mocks.MockGoogleInsightDailyRepository
	mockConfigRepo *mocks.MockIntegrationConfigRepository
}

func newEvolutionTestEnv(t *testing.T, now time.Time) (*evolutionTestEnv, *gomock.Controller) {
	ctrl := gomock.NewController(t)

	env := &evolutionTestEnv{
		mockKommo:      kommomocks.NewMockKommoIntegrator(ctrl),
		mockMetaRepo:   mocks.NewMockMetaInsightDailyRepository(ctrl),
		mockGoogleRepo: mocks.NewMockGoogleInsightDailyRepository(ctrl),
		mockConfigRepo: mocks.NewMockIntegrationConfigRepository(ctrl),
	}

	cfg := &config.Config{
		Evolution: config.Evolution{
			DefaultDays:         7,
			KommoFetchBatchSize: 5,
		},
	}

	env.service = NewService(cfg, env.mockKommo, env.mockMetaRepo, env.mockGoogleRepo, env.mockConfigRepo)
	env.service.now = func() time.Time { return now }

	return env, ctrl
}

func kommoConfig(journeyMap domain.JourneyMap) *domain.IntegrationConfig {
	return &domain.IntegrationConfig{
		ID:         "int-1",
		ClientID:   "client-1",
		Provider:   domain.ProviderKommo,
		IsActive:   true,
		Subdomain:  "acme",
		JourneyMap: journeyMap,
	}
}

func TestGetEvolution_HybridWithKommo(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	journeyMap := domain.JourneyMap{"Leads", "Vendas"}

	env, ctrl := newEvolutionTestEnv(t, now)
	defer ctrl.Finish()

	day1 := time.Date(2024, 5, 8, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 5, 9, 0, 0, 0, 0, time.UTC)

	env.mockMetaRepo.EXPECT().
		SumByDay("client-1", gomock.Any(), gomock.Any()).
		Return([]*domain.MetaDailySum{
			{Date: day1, Spend: 100, Leads: 8},
			{Date: day2, Spend: 200, Leads: 12},
		}, nil)

	env.mockGoogleRepo.EXPECT().
		SumByDay("client-1", gomock.Any(), gomock.Any()).
		Return([]*domain.GoogleDailySum{}, nil)

	env.mockConfigRepo.EXPECT().
		GetActiveByClientAndProvider("client-1", domain.ProviderKommo).
		Return(kommoConfig(journeyMap), nil)

	funnels := map[string]kommodomain.DailyFunnel{
		"2024-05-08": {Stages: map[string]int{"Leads": 10, "Vendas": 2}, Revenue: 500},
		"2024-05-09": {Stages: map[string]int{"Leads": 20, "Vendas": 5}, Revenue: 1000},
	}

	env.mockKommo.EXPECT().
		GetDailyFunnel(gomock.Any(), "acme", journeyMap, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ domain.JourneyMap, day domain.DayWindow) (kommodomain.DailyFunnel, error) {
			funnel, ok := funnels[day.ISO]
			if !ok {
				return kommodomain.DailyFunnel{}, fmt.Errorf("falha de rede")
			}
			return funnel, nil
		}).
		Times(3)

	response, err := env.service.GetEvolution(context.Background(), "client-1", 3, domain.DataSourceHybrid)

	require.NoError(t, err)
	require.Len(t, response.Data, 3)
	assert.Equal(t, journeyMap, response.JourneyMap)

	// Dia 1: spend 100, receita 500, roas 5
	assert.Equal(t, "08/05", response.Data[0].Date)
	assert.Equal(t, 100.0, response.Data[0].Spend)
	assert.Equal(t, 500.0, response.Data[0].Revenue)
	assert.Equal(t, 5.0, response.Data[0].ROAS)
	assert.Equal(t, []domain.StageValue{{Name: "Leads", Count: 10}, {Name: "Vendas", Count: 2}}, response.Data[0].Stages)

	// Dia 2: spend 200, receita 1000, roas 5
	assert.Equal(t, "09/05", response.Data[1].Date)
	assert.Equal(t, 1000.0, response.Data[1].Revenue)
	assert.Equal(t, 5.0, response.Data[1].ROAS)

	// Dia 3: busca do funil falhou, tudo zerado e roas 0
	assert.Equal(t, "10/05", response.Data[2].Date)
	assert.Equal(t, 0.0, response.Data[2].Spend)
	assert.Equal(t, 0.0, response.Data[2].Revenue)
	assert.Equal(t, 0.0, response.Data[2].ROAS)
	assert.Equal(t, []domain.StageValue{{Name: "Leads", Count: 0}, {Name: "Vendas", Count: 0}}, response.Data[2].Stages)
}

func TestGetEvolution_ROASIsExactQuotient(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	journeyMap := domain.JourneyMap{"Leads"}

	env, ctrl := newEvolutionTestEnv(t, now)
	defer ctrl.Finish()

	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	env.mockMetaRepo.EXPECT().
		SumByDay("client-1", gomock.Any(), gomock.Any()).
		Return([]*domain.MetaDailySum{{Date: day, Spend: 300}}, nil)

	env.mockGoogleRepo.EXPECT().
		SumByDay("client-1", gomock.Any(), gomock.Any()).
		Return([]*domain.GoogleDailySum{}, nil)

	env.mockConfigRepo.EXPECT().
		GetActiveByClientAndProvider("client-1", domain.ProviderKommo).
		Return(kommoConfig(journeyMap), nil)

	env.mockKommo.EXPECT().
		GetDailyFunnel(gomock.Any(), "acme", journeyMap, gomock.Any()).
		Return(kommodomain.DailyFunnel{Stages: map[string]int{"Leads": 3}, Revenue: 1000}, nil)

	response, err := env.service.GetEvolution(context.Background(), "client-1", 1, domain.DataSourceHybrid)

	require.NoError(t, err)
	require.Len(t, response.Data, 1)

	// O quociente sai sem arredondamento; exibir é papel do consumidor
	assert.Equal(t, 1000.0/300.0, response.Data[0].ROAS)
	assert.Equal(t, 3.3333333333333335, response.Data[0].ROAS)
}

func TestGetEvolution_LocalOnly(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	journeyMap := domain.JourneyMap{"Leads", "Vendas"}

	env, ctrl := newEvolutionTestEnv(t, now)
	defer ctrl.Finish()

	today := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	env.mockMetaRepo.EXPECT().
		SumByDay("client-1", gomock.Any(), gomock.Any()).
		Return([]*domain.MetaDailySum{{Date: today, Spend: 300, Leads: 15}}, nil)

	env.mockGoogleRepo.EXPECT().
		SumByDay("client-1", gomock.Any(), gomock.Any()).
		Return([]*domain.GoogleDailySum{{Date: today, Cost: 50}}, nil)

	env.mockConfigRepo.EXPECT().
		GetActiveByClientAndProvider("client-1", domain.ProviderKommo).
		Return(kommoConfig(journeyMap), nil)

	// dataSource META: o Kommo nunca é chamado
	response, err := env.service.GetEvolution(context.Background(), "client-1", 1, domain.DataSourceMeta)

	require.NoError(t, err)
	require.Len(t, response.Data, 1)

	point := response.Data[0]

	// Gasto soma as duas plataformas; receita zero sem CRM
	assert.Equal(t, 350.0, point.Spend)
	assert.Equal(t, 0.0, point.Revenue)
	assert.Equal(t, 0.0, point.ROAS)

	// Topo do funil vem dos leads de pixel; estágios profundos zerados
	assert.Equal(t, []domain.StageValue{{Name: "Leads", Count: 15}, {Name: "Vendas", Count: 0}}, point.Stages)
}

func TestGetEvolution_WithoutActiveIntegration(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	env, ctrl := newEvolutionTestEnv(t, now)
	defer ctrl.Finish()

	env.mockMetaRepo.EXPECT().
		SumByDay("client-1", gomock.Any(), gomock.Any()).
		Return([]*domain.MetaDailySum{}, nil)

	env.mockGoogleRepo.EXPECT().
		SumByDay("client-1", gomock.Any(), gomock.Any()).
		Return([]*domain.GoogleDailySum{}, nil)

	// Sem integração ativa a evolução degrada para os dados locais, sem erro
	env.mockConfigRepo.EXPECT().
		GetActiveByClientAndProvider("client-1", domain.ProviderKommo).
		Return(nil, nil)

	response, err := env.service.GetEvolution(context.Background(), "client-1", 2, domain.DataSourceHybrid)

	require.NoError(t, err)
	require.Len(t, response.Data, 2)
	assert.Empty(t, response.JourneyMap)
	assert.NotNil(t, response.JourneyMap)

	for _, point := range response.Data {
		assert.Empty(t, point.Stages)
		assert.Equal(t, 0.0, point.Revenue)
	}
}

func TestGetEvolution_LocalQueryFailureIsFatal(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	env, ctrl := newEvolutionTestEnv(t, now)
	defer ctrl.Finish()

	env.mockMetaRepo.EXPECT().
		SumByDay("client-1", gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("conexão recusada"))

	env.mockGoogleRepo.EXPECT().
		SumByDay("client-1", gomock.Any(), gomock.Any()).
		Return([]*domain.GoogleDailySum{}, nil)

	response, err := env.service.GetEvolution(context.Background(), "client-1", 7, domain.DataSourceHybrid)

	assert.Nil(t, response)
	assert.ErrorContains(t, err, "somatórios diários do Meta")
}

func TestGetEvolution_DefaultDays(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	env, ctrl := newEvolutionTestEnv(t, now)
	defer ctrl.Finish()

	env.mockMetaRepo.EXPECT().
		SumByDay("client-1", gomock.Any(), gomock.Any()).
		Return([]*domain.MetaDailySum{}, nil)

	env.mockGoogleRepo.EXPECT().
		SumByDay("client-1", gomock.Any(), gomock.Any()).
		Return([]*domain.GoogleDailySum{}, nil)

	env.mockConfigRepo.EXPECT().
		GetActiveByClientAndProvider("client-1", domain.ProviderKommo).
		Return(nil, nil)

	// days <= 0 usa a janela padrão configurada
	response, err := env.service.GetEvolution(context.Background(), "client-1", 0, domain.DataSourceMeta)

	require.NoError(t, err)
	assert.Len(t, response.Data, 7)
}

func TestGetEvolution_ResponseSerialization(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	journeyMap := domain.JourneyMap{"Leads", "Reunião", "Vendas"}

	env, ctrl := newEvolutionTestEnv(t, now)
	defer ctrl.Finish()

	env.mockMetaRepo.EXPECT().
		SumByDay("client-1", gomock.Any(), gomock.Any()).
		Return([]*domain.MetaDailySum{}, nil)

	env.mockGoogleRepo.EXPECT().
		SumByDay("client-1", gomock.Any(), gomock.Any()).
		Return([]*domain.GoogleDailySum{}, nil)

	env.mockConfigRepo.EXPECT().
		GetActiveByClientAndProvider("client-1", domain.ProviderKommo).
		Return(kommoConfig(journeyMap), nil)

	env.mockKommo.EXPECT().
		GetDailyFunnel(gomock.Any(), "acme", journeyMap, gomock.Any()).
		Return(kommodomain.DailyFunnel{
			Stages:  map[string]int{"Leads": 7, "Reunião": 3, "Vendas": 1},
			Revenue: 900,
		}, nil)

	response, err := env.service.GetEvolution(context.Background(), "client-1", 1, domain.DataSourceHybrid)
	require.NoError(t, err)

	payload, err := json.Marshal(response)
	require.NoError(t, err)

	// Os estágios viram chaves dinâmicas na ordem do JourneyMap
	expected := `{"journeyMap":["Leads","Reunião","Vendas"],"data":[{"date":"10/05","revenue":900,"spend":0,"roas":0,"Leads":7,"Reunião":3,"Vendas":1}]}`
	assert.JSONEq(t, expected, string(payload))

	// A ordem das chaves segue o JourneyMap
	assert.Equal(t, expected, string(payload))
}
