package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aiatende/marketing-dashboard-api/infrastructure/database/postgres"
	"github.com/aiatende/marketing-dashboard-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMetaInsightRepo(t *testing.T) (MetaInsightDailyRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	return NewMetaInsightDailyRepository(&postgres.Connection{DB: db}), mock
}

func TestMetaInsightDailyRepository_SumByDay(t *testing.T) {
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 5, 7, 0, 0, 0, 0, time.UTC)

	t.Run("Retorna as somas agrupadas por dia", func(t *testing.T) {
		repo, mock := newMetaInsightRepo(t)

		columns := []string{"date", "spend", "impressions", "clicks", "leads", "results"}

		// Dias sem linhas não aparecem no resultado
		mock.ExpectQuery("SELECT mi.date, COALESCE\\(SUM\\(mi.spend\\), 0\\)").
			WithArgs("client-1", "2024-05-01", "2024-05-07").
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(start, 120.5, 1000, 80, 12, 5).
				AddRow(start.AddDate(0, 0, 2), 99.9, 800, 60, 7, 3))

		sums, err := repo.SumByDay("client-1", start, end)

		require.NoError(t, err)
		require.Len(t, sums, 2)
		assert.Equal(t, 120.5, sums[0].Spend)
		assert.Equal(t, 12, sums[0].Leads)
		assert.Equal(t, "2024-05-03", sums[1].Date.Format(time.DateOnly))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Erro na query é propagado", func(t *testing.T) {
		repo, mock := newMetaInsightRepo(t)

		mock.ExpectQuery("SELECT mi.date").
			WillReturnError(fmt.Errorf("conexão recusada"))

		_, err := repo.SumByDay("client-1", start, end)

		assert.ErrorContains(t, err, "erro ao executar a query")
	})
}

func TestMetaInsightDailyRepository_SumSpendByDay(t *testing.T) {
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)

	repo, mock := newMetaInsightRepo(t)

	mock.ExpectQuery("SELECT mi.date, COALESCE\\(SUM\\(mi.spend\\), 0\\)").
		WithArgs("acc-1", "2024-05-01", "2024-05-02").
		WillReturnRows(sqlmock.NewRows([]string{"date", "spend"}).
			AddRow(start, 55.5).
			AddRow(end, 44.5))

	report, err := repo.SumSpendByDay("acc-1", start, end)

	require.NoError(t, err)
	require.Len(t, report, 2)
	assert.Equal(t, "2024-05-01", report[0].Date)
	assert.Equal(t, 55.5, report[0].TotalSpend)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMetaInsightDailyRepository_SumByCampaign(t *testing.T) {
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 5, 7, 0, 0, 0, 0, time.UTC)

	repo, mock := newMetaInsightRepo(t)

	columns := []string{"campaign_id", "campaign_name", "spend", "impressions", "clicks", "leads"}

	mock.ExpectQuery("SELECT mi.campaign_id, mi.campaign_name, COALESCE\\(SUM\\(mi.spend\\), 0\\)").
		WithArgs("acc-1", "2024-05-01", "2024-05-07").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("c-1", "Promoção Maio", 450.75, 9000, 310, 42).
			AddRow("c-2", "Institucional", 120.0, 3000, 80, 5))

	report, err := repo.SumByCampaign("acc-1", start, end)

	require.NoError(t, err)
	require.Len(t, report, 2)
	assert.Equal(t, "c-1", report[0].CampaignID)
	assert.Equal(t, "Promoção Maio", report[0].CampaignName)
	assert.Equal(t, 450.75, report[0].TotalSpend)
	assert.Equal(t, 42, report[0].TotalLeads)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMetaInsightDailyRepository_SumByAd(t *testing.T) {
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 5, 7, 0, 0, 0, 0, time.UTC)

	repo, mock := newMetaInsightRepo(t)

	columns := []string{"ad_id", "ad_name", "campaign_id", "campaign_name", "spend", "impressions", "clicks", "leads"}

	mock.ExpectQuery("SELECT mi.ad_id, mi.ad_name, mi.campaign_id, mi.campaign_name").
		WithArgs("acc-1", "2024-05-01", "2024-05-07").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("ad-1", "Vídeo A", "c-1", "Promoção Maio", 300.25, 6000, 210, 30))

	report, err := repo.SumByAd("acc-1", start, end)

	require.NoError(t, err)
	require.Len(t, report, 1)
	assert.Equal(t, "ad-1", report[0].AdID)
	assert.Equal(t, "c-1", report[0].CampaignID)
	assert.Equal(t, 300.25, report[0].TotalSpend)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMetaInsightDailyRepository_SaveOrUpdate(t *testing.T) {
	repo, mock := newMetaInsightRepo(t)

	insight := &domain.MetaAdInsightDaily{
		MetaAdAccountID: "acc-1",
		Date:            time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		CampaignID:      "camp-1",
		AdID:            "ad-1",
		Impressions:     1000,
		Clicks:          80,
		Spend:           120.5,
		Leads:           12,
	}

	mock.ExpectExec("INSERT INTO meta_ad_insights_daily").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SaveOrUpdate(insight)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMetaInsightDailyRepository_DeleteOlderThan(t *testing.T) {
	repo, mock := newMetaInsightRepo(t)

	mock.ExpectExec("DELETE FROM meta_ad_insights_daily").
		WillReturnResult(sqlmock.NewResult(0, 37))

	removed, err := repo.DeleteOlderThan(395)

	require.NoError(t, err)
	assert.Equal(t, int64(37), removed)
	assert.NoError(t, mock.ExpectationsWereMet())
}
