package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/aiatende/marketing-dashboard-api/internal/domain"
	"github.com/aiatende/marketing-dashboard-api/internal/usecases/reporting"
	"github.com/aiatende/marketing-dashboard-api/pkg/apiErrors"
	"github.com/aiatende/marketing-dashboard-api/pkg/log"
	"github.com/aiatende/marketing-dashboard-api/pkg/middleware"
	"github.com/aiatende/marketing-dashboard-api/pkg/utils"
)

type SyncDailyInsightsResponse struct {
	Synced int `json:"synced"`
}

type CampaignReportResponse struct {
	Campaigns []*domain.CampaignSummary `json:"campaigns"`
}

type AdReportResponse struct {
	Ads []*domain.AdSummary `json:"ads"`
}

// GetDailySpendReport retorna o gasto diário de uma conta de anúncios do
// cliente autenticado no intervalo informado.
func GetDailySpendReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := r.Context().Value(middleware.ContextKeyClient).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Cliente não autenticado", nil)
			return
		}

		adAccountID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		filters, err := parseDateFilters(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"ad_account_id": adAccountID,
				"error":         err.Error(),
			}).Warn("report: invalid date parameters")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		report, err := service.GetDailySpendReport(claims.ClientID, adAccountID, filters)
		if err != nil {
			logger.WithFields(log.Fields{
				"client_id":     claims.ClientID,
				"ad_account_id": adAccountID,
				"error":         err.Error(),
			}).Error("report: failed to build daily spend report")

			if strings.Contains(err.Error(), "não encontrada") {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar relatório de gasto diário", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("report: failed to encode response")
		}
	})
}

// GetCampaignReport retorna as métricas somadas por campanha de uma conta de
// anúncios do cliente autenticado no intervalo informado.
func GetCampaignReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := r.Context().Value(middleware.ContextKeyClient).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Cliente não autenticado", nil)
			return
		}

		adAccountID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		filters, err := parseDateFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		campaigns, err := service.GetCampaignReport(claims.ClientID, adAccountID, filters)
		if err != nil {
			logger.WithFields(log.Fields{
				"client_id":     claims.ClientID,
				"ad_account_id": adAccountID,
				"error":         err.Error(),
			}).Error("report: failed to build campaign report")

			if strings.Contains(err.Error(), "não encontrada") {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar relatório por campanha", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(CampaignReportResponse{Campaigns: campaigns}); err != nil {
			logger.WithError(err).Error("report: failed to encode response")
		}
	})
}

// GetAdReport retorna as métricas somadas por anúncio de uma conta de
// anúncios do cliente autenticado no intervalo informado.
func GetAdReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := r.Context().Value(middleware.ContextKeyClient).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Cliente não autenticado", nil)
			return
		}

		adAccountID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		filters, err := parseDateFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		ads, err := service.GetAdReport(claims.ClientID, adAccountID, filters)
		if err != nil {
			logger.WithFields(log.Fields{
				"client_id":     claims.ClientID,
				"ad_account_id": adAccountID,
				"error":         err.Error(),
			}).Error("report: failed to build ad report")

			if strings.Contains(err.Error(), "não encontrada") {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar relatório por anúncio", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(AdReportResponse{Ads: ads}); err != nil {
			logger.WithError(err).Error("report: failed to encode response")
		}
	})
}

// SyncDailyInsights dispara a sincronização dos insights diários de uma conta
// do cliente autenticado. Sem datas, usa a janela padrão de lookback.
func SyncDailyInsights(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := r.Context().Value(middleware.ContextKeyClient).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Cliente não autenticado", nil)
			return
		}

		adAccountID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		filters, err := parseDateFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		synced, err := service.SyncDailyInsights(claims.ClientID, adAccountID, filters)
		if err != nil {
			logger.WithFields(log.Fields{
				"client_id":     claims.ClientID,
				"ad_account_id": adAccountID,
				"error":         err.Error(),
			}).Error("report: failed to sync daily insights")

			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao sincronizar insights da conta", nil)
			return
		}

		logger.WithFields(log.Fields{
			"ad_account_id": adAccountID,
			"synced":        synced,
		}).Info("report: daily insights synced")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(SyncDailyInsightsResponse{Synced: synced})
	})
}

// parseDateFilters lê start_date e end_date da query string. Parâmetros
// ausentes resultam em filtros nil, deixando a validação para o usecase.
func parseDateFilters(r *http.Request) (*domain.InsightFilters, error) {
	filters := &domain.InsightFilters{}

	if startParam := r.URL.Query().Get("start_date"); startParam != "" {
		startDate, err := utils.ParseDate(startParam)
		if err != nil {
			return nil, err
		}
		filters.StartDate = startDate
	}

	if endParam := r.URL.Query().Get("end_date"); endParam != "" {
		endDate, err := utils.ParseDate(endParam)
		if err != nil {
			return nil, err
		}
		filters.EndDate = endDate
	}

	return filters, nil
}
