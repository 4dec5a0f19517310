package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/aiatende/marketing-dashboard-api/internal/domain"
	"github.com/aiatende/marketing-dashboard-api/internal/usecases/evolution/mocks"
	"github.com/aiatende/marketing-dashboard-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

func evolutionRequest(t *testing.T, target string, claims *domain.Claims) *http.Request {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	if claims != nil {
		ctx := context.WithValue(req.Context(), middleware.ContextKeyClient, claims)
		req = req.WithContext(ctx)
	}

	return req
}

func TestGetEvolution(t *testing.T) {
	claims := &domain.Claims{ClientID: "client-1", Role: domain.RoleUser}

	t.Run("Repasse dos parâmetros e resposta em JSON", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockEvolutioner(ctrl)

		response := &domain.EvolutionResponse{
			JourneyMap: domain.JourneyMap{"Leads", "Vendas"},
			Data: []domain.EvolutionPoint{
				{
					Date:    "10/05",
					Revenue: 500,
					Spend:   100,
					ROAS:    5,
					Stages:  []domain.StageValue{{Name: "Leads", Count: 12}, {Name: "Vendas", Count: 2}},
				},
			},
		}

		service.EXPECT().
			GetEvolution(gomock.Any(), "client-1", 7, domain.DataSourceHybrid).
			Return(response, nil)

		req := evolutionRequest(t, "/v1/dashboard/evolution?days=7&dataSource=HYBRID", claims)
		recorder := httptest.NewRecorder()

		GetEvolution(service).ServeHTTP(recorder, req)

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
		assert.JSONEq(t,
			`{"journeyMap":["Leads","Vendas"],"data":[{"date":"10/05","revenue":500,"spend":100,"roas":5,"Leads":12,"Vendas":2}]}`,
			recorder.Body.String())
	})

	t.Run("Sem parâmetros usa HYBRID e o período padrão", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockEvolutioner(ctrl)

		service.EXPECT().
			GetEvolution(gomock.Any(), "client-1", 0, domain.DataSourceHybrid).
			Return(&domain.EvolutionResponse{JourneyMap: domain.JourneyMap{}}, nil)

		req := evolutionRequest(t, "/v1/dashboard/evolution", claims)
		recorder := httptest.NewRecorder()

		GetEvolution(service).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("Parâmetro days inválido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockEvolutioner(ctrl)

		req := evolutionRequest(t, "/v1/dashboard/evolution?days=abc", claims)
		recorder := httptest.NewRecorder()

		GetEvolution(service).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("Requisição sem autenticação", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockEvolutioner(ctrl)

		req := evolutionRequest(t, "/v1/dashboard/evolution", nil)
		recorder := httptest.NewRecorder()

		GetEvolution(service).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("Erro do serviço vira 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockEvolutioner(ctrl)

		service.EXPECT().
			GetEvolution(gomock.Any(), "client-1", 0, domain.DataSourceHybrid).
			Return(nil, fmt.Errorf("erro ao buscar somatórios"))

		req := evolutionRequest(t, "/v1/dashboard/evolution", claims)
		recorder := httptest.NewRecorder()

		GetEvolution(service).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})
}
