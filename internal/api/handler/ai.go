package handler

import (
	"encoding/json"
	"net/http"

	"github.com/aiatende/marketing-dashboard-api/infrastructure/integrator/gemini"
	"github.com/aiatende/marketing-dashboard-api/internal/domain"
	"github.com/aiatende/marketing-dashboard-api/pkg/apiErrors"
	"github.com/aiatende/marketing-dashboard-api/pkg/log"
	"github.com/aiatende/marketing-dashboard-api/pkg/middleware"
)

type AnalyzeCampaignsRequest struct {
	Campaigns json.RawMessage `json:"campaigns"`
}

type AnalyzeCampaignsResponse struct {
	Analysis string `json:"analysis"`
}

// AnalyzeCampaigns envia os dados de campanha do corpo da requisição para a
// IA e retorna o texto de análise gerado.
func AnalyzeCampaigns(service gemini.GeminiIntegrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := r.Context().Value(middleware.ContextKeyClient).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Cliente não autenticado", nil)
			return
		}

		var req AnalyzeCampaignsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if len(req.Campaigns) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Dados de campanha não informados", nil)
			return
		}

		logger.WithField("client_id", claims.ClientID).Info("ai: generating campaign analysis")

		analysis := service.AnalyzeCampaignData(r.Context(), req.Campaigns)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(AnalyzeCampaignsResponse{Analysis: analysis})
	})
}
