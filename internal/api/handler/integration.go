package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/aiatende/marketing-dashboard-api/internal/domain"
	"github.com/aiatende/marketing-dashboard-api/internal/usecases/integrating"
	"github.com/aiatende/marketing-dashboard-api/pkg/apiErrors"
	"github.com/aiatende/marketing-dashboard-api/pkg/log"
	"github.com/aiatende/marketing-dashboard-api/pkg/middleware"
)

type CheckKommoConnectionResponse struct {
	Connected bool `json:"connected"`
}

// GetIntegrationConfig retorna a configuração da integração do cliente
// autenticado para o provider informado na URL.
func GetIntegrationConfig(service integrating.Integrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := r.Context().Value(middleware.ContextKeyClient).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Cliente não autenticado", nil)
			return
		}

		provider := providerFromRequest(r)

		config, err := service.GetConfig(claims.ClientID, provider)
		if err != nil {
			writeIntegrationError(w, logger, claims.ClientID, provider, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(config)
	})
}

// UpdateIntegrationConfig cria ou substitui a configuração da integração do
// cliente autenticado, incluindo o mapa de jornada do funil.
func UpdateIntegrationConfig(service integrating.Integrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := r.Context().Value(middleware.ContextKeyClient).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Cliente não autenticado", nil)
			return
		}

		provider := providerFromRequest(r)

		var req integrating.UpdateConfigRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		config, err := service.SaveConfig(claims.ClientID, provider, &req)
		if err != nil {
			writeIntegrationError(w, logger, claims.ClientID, provider, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(config)
	})
}

// CheckKommoConnection verifica se o subdomínio do Kommo configurado para o
// cliente autenticado está acessível.
func CheckKommoConnection(service integrating.Integrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := r.Context().Value(middleware.ContextKeyClient).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Cliente não autenticado", nil)
			return
		}

		connected, err := service.CheckKommoConnection(r.Context(), claims.ClientID)
		if err != nil {
			writeIntegrationError(w, logger, claims.ClientID, domain.ProviderKommo, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(CheckKommoConnectionResponse{Connected: connected})
	})
}

func providerFromRequest(r *http.Request) domain.Provider {
	provider := httprouter.ParamsFromContext(r.Context()).ByName("provider")
	return domain.Provider(strings.ToUpper(provider))
}

func writeIntegrationError(w http.ResponseWriter, logger log.Logger, clientID string, provider domain.Provider, err error) {
	logger.WithFields(log.Fields{
		"client_id": clientID,
		"provider":  provider,
		"error":     err.Error(),
	}).Warn("integration: request failed")

	switch {
	case errors.Is(err, integrating.ErrConfigNotFound):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	case errors.Is(err, integrating.ErrUnknownProvider),
		errors.Is(err, integrating.ErrMissingSubdomain),
		errors.Is(err, integrating.ErrEmptyStageName),
		errors.Is(err, integrating.ErrTooManyStages),
		errors.Is(err, integrating.ErrDuplicatedStage):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)

	case errors.Is(err, integrating.ErrNoKommoConnection):
		apiErrors.WriteError(w, apiErrors.ErrExternalService, err.Error(), nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar configuração de integração", nil)
	}
}
