package integrating

import (
	"context"
	"fmt"
	"testing"

	kommomocks "github.com/aiatende/marketing-dashboard-api/infrastructure/integrator/kommo/mocks"
	"github.com/aiatende/marketing-dashboard-api/infrastructure/repository/mocks"
	"github.com/aiatende/marketing-dashboard-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newIntegratingService(t *testing.T) (Integrator, *mocks.MockIntegrationConfigRepository, *kommomocks.MockKommoIntegrator) {
	ctrl := gomock.NewController(t)
	configRepo := mocks.NewMockIntegrationConfigRepository(ctrl)
	kommoService := kommomocks.NewMockKommoIntegrator(ctrl)

	return NewService(configRepo, kommoService), configRepo, kommoService
}

func TestGetConfig(t *testing.T) {
	t.Run("Retorna a configuração existente", func(t *testing.T) {
		service, configRepo, _ := newIntegratingService(t)

		expected := &domain.IntegrationConfig{
			ClientID:   "client-1",
			Provider:   domain.ProviderKommo,
			IsActive:   true,
			Subdomain:  "acme",
			JourneyMap: domain.JourneyMap{"Leads", "Vendas"},
		}

		configRepo.EXPECT().
			GetByClientAndProvider("client-1", domain.ProviderKommo).
			Return(expected, nil)

		config, err := service.GetConfig("client-1", domain.ProviderKommo)

		require.NoError(t, err)
		assert.Equal(t, expected, config)
	})

	t.Run("Configuração inexistente", func(t *testing.T) {
		service, configRepo, _ := newIntegratingService(t)

		configRepo.EXPECT().
			GetByClientAndProvider("client-1", domain.ProviderKommo).
			Return(nil, nil)

		_, err := service.GetConfig("client-1", domain.ProviderKommo)

		assert.ErrorIs(t, err, ErrConfigNotFound)
	})

	t.Run("Provider desconhecido", func(t *testing.T) {
		service, _, _ := newIntegratingService(t)

		_, err := service.GetConfig("client-1", domain.Provider("TIKTOK"))

		assert.ErrorIs(t, err, ErrUnknownProvider)
	})
}

func TestSaveConfig(t *testing.T) {
	t.Run("Normaliza e persiste o mapa de jornada", func(t *testing.T) {
		service, configRepo, _ := newIntegratingService(t)

		configRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			DoAndReturn(func(config *domain.IntegrationConfig) error {
				assert.Equal(t, "client-1", config.ClientID)
				assert.Equal(t, domain.ProviderKommo, config.Provider)
				assert.Equal(t, "acme", config.Subdomain)
				assert.Equal(t, domain.JourneyMap{"Leads", "Reunião", "Vendas"}, config.JourneyMap)
				return nil
			})

		config, err := service.SaveConfig("client-1", domain.ProviderKommo, &UpdateConfigRequest{
			IsActive:   true,
			Subdomain:  " acme ",
			JourneyMap: domain.JourneyMap{" Leads", "Reunião ", "Vendas"},
		})

		require.NoError(t, err)
		assert.True(t, config.IsActive)
	})

	t.Run("Kommo sem subdomínio é rejeitado", func(t *testing.T) {
		service, _, _ := newIntegratingService(t)

		_, err := service.SaveConfig("client-1", domain.ProviderKommo, &UpdateConfigRequest{
			JourneyMap: domain.JourneyMap{"Leads"},
		})

		assert.ErrorIs(t, err, ErrMissingSubdomain)
	})

	t.Run("Estágio vazio é rejeitado", func(t *testing.T) {
		service, _, _ := newIntegratingService(t)

		_, err := service.SaveConfig("client-1", domain.ProviderKommo, &UpdateConfigRequest{
			Subdomain:  "acme",
			JourneyMap: domain.JourneyMap{"Leads", "  "},
		})

		assert.ErrorIs(t, err, ErrEmptyStageName)
	})

	t.Run("Estágio repetido é rejeitado", func(t *testing.T) {
		service, _, _ := newIntegratingService(t)

		_, err := service.SaveConfig("client-1", domain.ProviderKommo, &UpdateConfigRequest{
			Subdomain:  "acme",
			JourneyMap: domain.JourneyMap{"Leads", "Leads"},
		})

		assert.ErrorIs(t, err, ErrDuplicatedStage)
	})

	t.Run("Mapa acima do limite de estágios é rejeitado", func(t *testing.T) {
		service, _, _ := newIntegratingService(t)

		_, err := service.SaveConfig("client-1", domain.ProviderKommo, &UpdateConfigRequest{
			Subdomain:  "acme",
			JourneyMap: domain.JourneyMap{"A", "B", "C", "D", "E", "F"},
		})

		assert.ErrorIs(t, err, ErrTooManyStages)
	})

	t.Run("Mapa vazio é aceito", func(t *testing.T) {
		service, configRepo, _ := newIntegratingService(t)

		configRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)

		config, err := service.SaveConfig("client-1", domain.ProviderKommo, &UpdateConfigRequest{
			Subdomain: "acme",
		})

		require.NoError(t, err)
		assert.Empty(t, config.JourneyMap)
	})
}

func TestCheckKommoConnection(t *testing.T) {
	ctx := context.Background()

	t.Run("Conexão válida", func(t *testing.T) {
		service, configRepo, kommoService := newIntegratingService(t)

		configRepo.EXPECT().
			GetActiveByClientAndProvider("client-1", domain.ProviderKommo).
			Return(&domain.IntegrationConfig{Subdomain: "acme"}, nil)

		kommoService.EXPECT().
			CheckConnection(ctx, "acme").
			Return(true, nil)

		ok, err := service.CheckKommoConnection(ctx, "client-1")

		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Sem configuração ativa", func(t *testing.T) {
		service, configRepo, _ := newIntegratingService(t)

		configRepo.EXPECT().
			GetActiveByClientAndProvider("client-1", domain.ProviderKommo).
			Return(nil, nil)

		_, err := service.CheckKommoConnection(ctx, "client-1")

		assert.ErrorIs(t, err, ErrConfigNotFound)
	})

	t.Run("Falha na comunicação com o Kommo", func(t *testing.T) {
		service, configRepo, kommoService := newIntegratingService(t)

		configRepo.EXPECT().
			GetActiveByClientAndProvider("client-1", domain.ProviderKommo).
			Return(&domain.IntegrationConfig{Subdomain: "acme"}, nil)

		kommoService.EXPECT().
			CheckConnection(ctx, "acme").
			Return(false, fmt.Errorf("timeout"))

		_, err := service.CheckKommoConnection(ctx, "client-1")

		assert.ErrorIs(t, err, ErrNoKommoConnection)
	})
}
