package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/aiatende/marketing-dashboard-api/internal/domain"
	"github.com/aiatende/marketing-dashboard-api/internal/usecases/evolution"
	"github.com/aiatende/marketing-dashboard-api/pkg/apiErrors"
	"github.com/aiatende/marketing-dashboard-api/pkg/log"
	"github.com/aiatende/marketing-dashboard-api/pkg/middleware"
)

// GetEvolution monta a série de evolução diária do dashboard para o cliente
// autenticado. Aceita os parâmetros opcionais days e dataSource.
func GetEvolution(service evolution.Evolutioner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := r.Context().Value(middleware.ContextKeyClient).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Cliente não autenticado", nil)
			return
		}

		days := 0
		if daysParam := r.URL.Query().Get("days"); daysParam != "" {
			parsed, err := strconv.Atoi(daysParam)
			if err != nil {
				logger.WithFields(log.Fields{
					"client_id": claims.ClientID,
					"days":      daysParam,
				}).Warn("evolution: invalid days parameter")

				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro days inválido", nil)
				return
			}
			days = parsed
		}

		dataSource := domain.DataSource(r.URL.Query().Get("dataSource"))
		if dataSource == "" {
			dataSource = domain.DataSourceHybrid
		}

		logger.WithFields(log.Fields{
			"client_id":   claims.ClientID,
			"days":        days,
			"data_source": dataSource,
		}).Info("evolution: building daily evolution series")

		response, err := service.GetEvolution(r.Context(), claims.ClientID, days, dataSource)
		if err != nil {
			logger.WithFields(log.Fields{
				"client_id": claims.ClientID,
				"error":     err.Error(),
			}).Error("evolution: failed to build evolution series")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar a evolução do dashboard", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("evolution: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}
