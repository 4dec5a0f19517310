package domain

import "strconv"

// Action é uma entrada da lista de ações da Graph API (conversões, leads...)
type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// DailyAdInsight é uma linha de insight diário no nível de anúncio retornada
// pela Graph API com time_increment=1.
type DailyAdInsight struct {
	DateStart    string   `json:"date_start"`
	DateStop     string   `json:"date_stop"`
	CampaignID   string   `json:"campaign_id"`
	CampaignName string   `json:"campaign_name"`
	AdsetID      string   `json:"adset_id"`
	AdsetName    string   `json:"adset_name"`
	AdID         string   `json:"ad_id"`
	AdName       string   `json:"ad_name"`
	Impressions  string   `json:"impressions"`
	Clicks       string   `json:"clicks"`
	Spend        string   `json:"spend"`
	Actions      []Action `json:"actions,omitempty"`
}

type RawInsightsResponse struct {
	Data []DailyAdInsight `json:"data"`
}

// leadActionTypes são os tipos de ação da Graph API contabilizados como lead
var leadActionTypes = map[string]bool{
	"lead":                           true,
	"leads":                          true,
	"onsite_conversion.lead_grouped": true,
	"offsite_conversion.lead":        true,
}

// ExtractLeadsFromActions soma os valores das ações de lead do anúncio
func ExtractLeadsFromActions(actions []Action) int {
	total := 0
	for _, action := range actions {
		if !leadActionTypes[action.ActionType] {
			continue
		}

		value, err := strconv.Atoi(action.Value)
		if err != nil {
			continue
		}
		total += value
	}

	return total
}
