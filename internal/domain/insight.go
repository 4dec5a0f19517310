package domain

import "time"

type InsightFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// MetaDailySum é a soma das métricas de anúncios do Meta de um cliente em um
// dia. Resultado da query agrupada por data; dias sem linhas ficam ausentes.
type MetaDailySum struct {
	Date        time.Time `json:"date"`
	Spend       float64   `json:"spend"`
	Impressions int       `json:"impressions"`
	Clicks      int       `json:"clicks"`
	Leads       int       `json:"leads"`
	Results     int       `json:"results"`
}

// GoogleDailySum é a soma das métricas do Google Ads de um cliente em um dia
type GoogleDailySum struct {
	Date        time.Time `json:"date"`
	Cost        float64   `json:"cost"`
	Impressions int       `json:"impressions"`
	Clicks      int       `json:"clicks"`
	Conversions float64   `json:"conversions"`
}

// MetaAdInsightDaily é uma linha de insight diário no nível de anúncio,
// sincronizada da Graph API e armazenada localmente.
type MetaAdInsightDaily struct {
	ID              int64     `json:"id"`
	MetaAdAccountID string    `json:"meta_ad_account_id"`
	Date            time.Time `json:"date"`
	CampaignID      string    `json:"campaign_id"`
	CampaignName    string    `json:"campaign_name"`
	AdsetID         string    `json:"adset_id"`
	AdsetName       string    `json:"adset_name"`
	AdID            string    `json:"ad_id"`
	AdName          string    `json:"ad_name"`
	Impressions     int       `json:"impressions"`
	Clicks          int       `json:"clicks"`
	Spend           float64   `json:"spend"`
	Leads           int       `json:"leads"`
	Results         int       `json:"results"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// DailySpend é um item do relatório de gasto diário de uma conta
type DailySpend struct {
	Date       string  `json:"date"`
	TotalSpend float64 `json:"totalSpend"`
}

// CampaignSummary é um item do relatório agrupado por campanha
type CampaignSummary struct {
	CampaignID       string  `json:"campaignId"`
	CampaignName     string  `json:"campaignName"`
	TotalSpend       float64 `json:"totalSpend"`
	TotalImpressions int     `json:"totalImpressions"`
	TotalClicks      int     `json:"totalClicks"`
	TotalLeads       int     `json:"totalLeads"`
}

// AdSummary é um item do relatório agrupado por anúncio
type AdSummary struct {
	AdID             string  `json:"adId"`
	AdName           string  `json:"adName"`
	CampaignID       string  `json:"campaignId"`
	CampaignName     string  `json:"campaignName"`
	TotalSpend       float64 `json:"totalSpend"`
	TotalImpressions int     `json:"totalImpressions"`
	TotalClicks      int     `json:"totalClicks"`
	TotalLeads       int     `json:"totalLeads"`
}
