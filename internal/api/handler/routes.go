package handler

import (
	"net/http"

	"github.com/aiatende/marketing-dashboard-api/infrastructure/integrator/gemini"
	"github.com/aiatende/marketing-dashboard-api/internal/api/handler/router"
	"github.com/aiatende/marketing-dashboard-api/internal/usecases/authenticating"
	"github.com/aiatende/marketing-dashboard-api/internal/usecases/evolution"
	"github.com/aiatende/marketing-dashboard-api/internal/usecases/integrating"
	"github.com/aiatende/marketing-dashboard-api/internal/usecases/reporting"
	"github.com/aiatende/marketing-dashboard-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateClient(service),
		},
		{
			Path:        "/v1/clients/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/clients/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Clients(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/clients",
			Method:      http.MethodGet,
			Handler:     ListClients(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/clients",
			Method:      http.MethodPost,
			Handler:     CreateClient(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/clients/:id",
			Method:      http.MethodGet,
			Handler:     GetClient(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/clients/:id",
			Method:      http.MethodPut,
			Handler:     UpdateClient(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Evolution(service evolution.Evolutioner) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard/evolution",
			Method:      http.MethodGet,
			Handler:     GetEvolution(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/adAccounts/:id/report/daily-spend",
			Method:      http.MethodGet,
			Handler:     GetDailySpendReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/adAccounts/:id/report/campaigns",
			Method:      http.MethodGet,
			Handler:     GetCampaignReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/adAccounts/:id/report/ads",
			Method:      http.MethodGet,
			Handler:     GetAdReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/adAccounts/:id/sync-daily",
			Method:      http.MethodPost,
			Handler:     SyncDailyInsights(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Integrations(service integrating.Integrator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/integrations/:provider/config",
			Method:      http.MethodGet,
			Handler:     GetIntegrationConfig(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/integrations/:provider/config",
			Method:      http.MethodPut,
			Handler:     UpdateIntegrationConfig(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/integrations/kommo/check",
			Method:      http.MethodPost,
			Handler:     CheckKommoConnection(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func AI(service gemini.GeminiIntegrator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/ai/insights",
			Method:      http.MethodPost,
			Handler:     AnalyzeCampaigns(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
