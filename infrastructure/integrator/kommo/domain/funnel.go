package domain

import "errors"

// ErrInvalidToken indica falha de autenticação na API do Kommo. O token de
// acesso do subdomínio provavelmente expirou ou foi revogado.
var ErrInvalidToken = errors.New("token do Kommo inválido ou expirado")

// Resposta do endpoint de agregação de leads por UTM. O detalhamento é por
// campanha → grupo (medium) → anúncio (content), com a jornada por estágio
// opcional no nível do anúncio.
type AggregatedAd struct {
	Content      string         `json:"content"`
	LeadsCount   int            `json:"leadsCount"`
	TotalRevenue float64        `json:"totalRevenue"`
	Journey      map[string]int `json:"journey,omitempty"`
}

type AggregatedGroup struct {
	Medium       string         `json:"medium"`
	TotalLeads   int            `json:"totalLeads"`
	TotalRevenue float64        `json:"totalRevenue"`
	Ads          []AggregatedAd `json:"ads"`
}

type AggregatedCampaign struct {
	Campaign     string            `json:"campaign"`
	Source       string            `json:"source,omitempty"`
	TotalLeads   int               `json:"totalLeads"`
	TotalRevenue float64           `json:"totalRevenue"`
	Groups       []AggregatedGroup `json:"groups"`
}

type AggregatedLeadsResponse struct {
	Campaigns []AggregatedCampaign `json:"campaigns"`
}

// DailyFunnel é o funil agregado de um dia: contagem por nome de estágio do
// JourneyMap e receita total das campanhas.
type DailyFunnel struct {
	Stages  map[string]int
	Revenue float64
}

// ZeroDailyFunnel retorna um funil zerado para os estágios informados. Usado
// como substituto quando a busca de um dia falha.
func ZeroDailyFunnel(stageNames []string) DailyFunnel {
	stages := make(map[string]int, len(stageNames))
	for _, name := range stageNames {
		stages[name] = 0
	}
	return DailyFunnel{Stages: stages}
}
