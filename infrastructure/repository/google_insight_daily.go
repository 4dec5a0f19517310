package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/aiatende/marketing-dashboard-api/infrastructure/database/postgres"
	"github.com/aiatende/marketing-dashboard-api/internal/domain"
)

const (
	googleInsightsDailyTable = "google_ad_insights_daily gi"
	googleAdAccountsTable    = "google_ad_accounts ga"
)

type GoogleInsightDailyRepository interface {
	// SumByDay soma as métricas de todas as contas Google do cliente
	// agrupadas por dia. Dias sem linhas não aparecem no resultado.
	SumByDay(clientID string, startDate, endDate time.Time) ([]*domain.GoogleDailySum, error)
}

type googleInsightDailyRepository struct {
	conn *postgres.Connection
}

func NewGoogleInsightDailyRepository(conn *postgres.Connection) GoogleInsightDailyRepository {
	return &googleInsightDailyRepository{
		conn: conn,
	}
}

func (r *googleInsightDailyRepository) SumByDay(clientID string, startDate, endDate time.Time) ([]*domain.GoogleDailySum, error) {
	query, args, err := squirrel.
		Select(
			"gi.date",
			"COALESCE(SUM(gi.cost), 0)",
			"COALESCE(SUM(gi.impressions), 0)",
			"COALESCE(SUM(gi.clicks), 0)",
			"COALESCE(SUM(gi.conversions), 0)",
		).
		From(googleInsightsDailyTable).
		Join(googleAdAccountsTable + " ON gi.google_ad_account_id = ga.id").
		Where(squirrel.Eq{"ga.client_id": clientID}).
		Where(squirrel.GtOrEq{"gi.date": startDate.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"gi.date": endDate.Format("2006-01-02")}).
		GroupBy("gi.date").
		OrderBy("gi.date ASC").
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

	sums := make([]*domain.GoogleDailySum, 0)
	for rows.Next() {
		sum := &domain.GoogleDailySum{}
		if err := rows.Scan(
			&sum.Date,
			&sum.Cost,
			&sum.Impressions,
			&sum.Clicks,
			&sum.Conversions,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear soma diária do Google: %w", err)
		}
		sums = append(sums, sum)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sums, nil
}
