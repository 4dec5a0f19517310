package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/aiatende/marketing-dashboard-api/infrastructure/database/postgres"
	"github.com/aiatende/marketing-dashboard-api/internal/domain"
	"github.com/lib/pq"
)

const (
	metaInsightsDailyTable = "meta_ad_insights_daily mi"
	metaAdAccountsTable    = "meta_ad_accounts ma"
)

type MetaInsightDailyRepository interface {
	// SumByDay soma as métricas de todas as contas Meta do cliente agrupadas
	// por dia. Dias sem linhas não aparecem no resultado.
	SumByDay(clientID string, startDate, endDate time.Time) ([]*domain.MetaDailySum, error)
	SumSpendByDay(metaAdAccountID string, startDate, endDate time.Time) ([]*domain.DailySpend, error)
	SumByCampaign(metaAdAccountID string, startDate, endDate time.Time) ([]*domain.CampaignSummary, error)
	SumByAd(metaAdAccountID string, startDate, endDate time.Time) ([]*domain.AdSummary, error)
	SaveOrUpdate(insight *domain.MetaAdInsightDaily) error
	DeleteOlderThan(days int) (int64, error)
}

type metaInsightDailyRepository struct {
	conn *postgres.Connection
}

func NewMetaInsightDailyRepository(conn *postgres.Connection) MetaInsightDailyRepository {
	return &metaInsightDailyRepository{
		conn: conn,
	}
}

func (r *metaInsightDailyRepository) SumByDay(clientID string, startDate, endDate time.Time) ([]*domain.MetaDailySum, error) {
	query, args, err := squirrel.
		Select(
			"mi.date",
			"COALESCE(SUM(mi.spend), 0)",
			"COALESCE(SUM(mi.impressions), 0)",
			"COALESCE(SUM(mi.clicks), 0)",
			"COALESCE(SUM(mi.leads), 0)",
			"COALESCE(SUM(mi.results), 0)",
		).
		From(metaInsightsDailyTable).
		Join(metaAdAccountsTable + " ON mi.meta_ad_account_id = ma.id").
		Where(squirrel.Eq{"ma.client_id": clientID}).
		Where(squirrel.GtOrEq{"mi.date": startDate.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"mi.date": endDate.Format("2006-01-02")}).
		GroupBy("mi.date").
		OrderBy("mi.date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	sums := make([]*domain.MetaDailySum, 0)
	for rows.Next() {
		sum := &domain.MetaDailySum{}
		if err := rows.Scan(
			&sum.Date,
			&sum.Spend,
			&sum.Impressions,
			&sum.Clicks,
			&sum.Leads,
			&sum.Results,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear soma diária do Meta: %w", err)
		}
		sums = append(sums, sum)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sums, nil
}

func (r *metaInsightDailyRepository) SumSpendByDay(metaAdAccountID string, startDate, endDate time.Time) ([]*domain.DailySpend, error) {
	query, args, err := squirrel.
		Select("mi.date", "COALESCE(SUM(mi.spend), 0)").
		From(metaInsightsDailyTable).
		Where(squirrel.Eq{"mi.meta_ad_account_id": metaAdAccountID}).
		Where(squirrel.GtOrEq{"mi.date": startDate.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"mi.date": endDate.Format("2006-01-02")}).
		GroupBy("mi.date").
		OrderBy("mi.date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	days := make([]*domain.DailySpend, 0)
	for rows.Next() {
		var date time.Time
		var spend float64
		if err := rows.Scan(&date, &spend); err != nil {
			return nil, fmt.Errorf("erro ao escanear gasto diário: %w", err)
		}
		days = append(days, &domain.DailySpend{
			Date:       date.Format(time.DateOnly),
			TotalSpend: spend,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return days, nil
}

func (r *metaInsightDailyRepository) SumByCampaign(metaAdAccountID string, startDate, endDate time.Time) ([]*domain.CampaignSummary, error) {
	query, args, err := squirrel.
		Select(
			"mi.campaign_id",
			"mi.campaign_name",
			"COALESCE(SUM(mi.spend), 0)",
			"COALESCE(SUM(mi.impressions), 0)",
			"COALESCE(SUM(mi.clicks), 0)",
			"COALESCE(SUM(mi.leads), 0)",
		).
		From(metaInsightsDailyTable).
		Where(squirrel.Eq{"mi.meta_ad_account_id": metaAdAccountID}).
		Where(squirrel.GtOrEq{"mi.date": startDate.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"mi.date": endDate.Format("2006-01-02")}).
		GroupBy("mi.campaign_id", "mi.campaign_name").
		OrderBy("SUM(mi.spend) DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	campaigns := make([]*domain.CampaignSummary, 0)
	for rows.Next() {
		summary := &domain.CampaignSummary{}
		if err := rows.Scan(
			&summary.CampaignID,
			&summary.CampaignName,
			&summary.TotalSpend,
			&summary.TotalImpressions,
			&summary.TotalClicks,
			&summary.TotalLeads,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear resumo da campanha: %w", err)
		}
		campaigns = append(campaigns, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return campaigns, nil
}

func (r *metaInsightDailyRepository) SumByAd(metaAdAccountID string, startDate, endDate time.Time) ([]*domain.AdSummary, error) {
	query, args, err := squirrel.
		Select(
			"mi.ad_id",
			"mi.ad_name",
			"mi.campaign_id",
			"mi.campaign_name",
			"COALESCE(SUM(mi.spend), 0)",
			"COALESCE(SUM(mi.impressions), 0)",
			"COALESCE(SUM(mi.clicks), 0)",
			"COALESCE(SUM(mi.leads), 0)",
		).
		From(metaInsightsDailyTable).
		Where(squirrel.Eq{"mi.meta_ad_account_id": metaAdAccountID}).
		Where(squirrel.GtOrEq{"mi.date": startDate.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"mi.date": endDate.Format("2006-01-02")}).
		GroupBy("mi.ad_id", "mi.ad_name", "mi.campaign_id", "mi.campaign_name").
		OrderBy("SUM(mi.spend) DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	ads := make([]*domain.AdSummary, 0)
	for rows.Next() {
		summary := &domain.AdSummary{}
		if err := rows.Scan(
			&summary.AdID,
			&summary.AdName,
			&summary.CampaignID,
			&summary.CampaignName,
			&summary.TotalSpend,
			&summary.TotalImpressions,
			&summary.TotalClicks,
			&summary.TotalLeads,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear resumo do anúncio: %w", err)
		}
		ads = append(ads, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return ads, nil
}

func (r *metaInsightDailyRepository) SaveOrUpdate(insight *domain.MetaAdInsightDaily) error {
	query := squirrel.StatementBuilder.
		Insert("meta_ad_insights_daily").
		Columns(
			"meta_ad_account_id", "date", "campaign_id", "campaign_name",
			"adset_id", "adset_name", "ad_id", "ad_name",
			"impressions", "clicks", "spend", "leads", "results",
		).
		Values(
			insight.MetaAdAccountID,
			insight.Date.Format("2006-01-02"),
			insight.CampaignID,
			insight.CampaignName,
			insight.AdsetID,
			insight.AdsetName,
			insight.AdID,
			insight.AdName,
			insight.Impressions,
			insight.Clicks,
			insight.Spend,
			insight.Leads,
			insight.Results,
		).
		Suffix(`
			ON CONFLICT (meta_ad_account_id, ad_id, date) DO UPDATE SET
				campaign_id = EXCLUDED.campaign_id,
				campaign_name = EXCLUDED.campaign_name,
				adset_id = EXCLUDED.adset_id,
				adset_name = EXCLUDED.adset_name,
				ad_name = EXCLUDED.ad_name,
				impressions = EXCLUDED.impressions,
				clicks = EXCLUDED.clicks,
				spend = EXCLUDED.spend,
				leads = EXCLUDED.leads,
				results = EXCLUDED.results,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *metaInsightDailyRepository) DeleteOlderThan(days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format("2006-01-02")

	query, args, err := squirrel.
		Delete("meta_ad_insights_daily").
		Where(squirrel.Lt{"date": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}
