package reporting

import (
	"fmt"
	"time"

	"github.com/aiatende/marketing-dashboard-api/infrastructure/integrator/meta"
	"github.com/aiatende/marketing-dashboard-api/infrastructure/repository"
	"github.com/aiatende/marketing-dashboard-api/internal/config"
	"github.com/aiatende/marketing-dashboard-api/internal/domain"
	"github.com/sirupsen/logrus"
)

// Reporter define as operações de relatório e sincronização sobre os insights
// diários armazenados localmente.
type Reporter interface {
	// GetDailySpendReport retorna o gasto por dia de uma conta do cliente
	GetDailySpendReport(clientID, adAccountID string, filters *domain.InsightFilters) ([]*domain.DailySpend, error)

	// GetCampaignReport retorna as métricas somadas por campanha no período
	GetCampaignReport(clientID, adAccountID string, filters *domain.InsightFilters) ([]*domain.CampaignSummary, error)

	// GetAdReport retorna as métricas somadas por anúncio no período
	GetAdReport(clientID, adAccountID string, filters *domain.InsightFilters) ([]*domain.AdSummary, error)

	// SyncDailyInsights baixa os insights diários da conta na Graph API e
	// grava no banco local. Retorna a quantidade de linhas sincronizadas.
	SyncDailyInsights(clientID, adAccountID string, filters *domain.InsightFilters) (int, error)

	// SyncAllActiveAccounts sincroniza todas as contas ativas, respeitando o
	// intervalo entre requisições configurado. Usado pelo agendador noturno.
	SyncAllActiveAccounts() error
}

type Service struct {
	cfg               *config.Config
	metaService       meta.MetaIntegrator
	metaAdAccountRepo repository.MetaAdAccountRepository
	metaInsightRepo   repository.MetaInsightDailyRepository
}

func NewService(
	cfg *config.Config,
	metaService meta.MetaIntegrator,
	metaAdAccountRepo repository.MetaAdAccountRepository,
	metaInsightRepo repository.MetaInsightDailyRepository,
) Reporter {
	return &Service{
		cfg:               cfg,
		metaService:       metaService,
		metaAdAccountRepo: metaAdAccountRepo,
		metaInsightRepo:   metaInsightRepo,
	}
}

func (s *Service) GetDailySpendReport(clientID, adAccountID string, filters *domain.InsightFilters) ([]*domain.DailySpend, error) {
	account, err := s.resolveReportAccount(clientID, adAccountID, filters)
	if err != nil {
		return nil, err
	}

	report, err := s.metaInsightRepo.SumSpendByDay(account.ID, *filters.StartDate, *filters.EndDate)
	if err != nil {
		return nil, fmt.Errorf("erro ao montar relatório de gasto diário: %w", err)
	}

	return report, nil
}

func (s *Service) GetCampaignReport(clientID, adAccountID string, filters *domain.InsightFilters) ([]*domain.CampaignSummary, error) {
	account, err := s.resolveReportAccount(clientID, adAccountID, filters)
	if err != nil {
		return nil, err
	}

	report, err := s.metaInsightRepo.SumByCampaign(account.ID, *filters.StartDate, *filters.EndDate)
	if err != nil {
		return nil, fmt.Errorf("erro ao montar relatório por campanha: %w", err)
	}

	return report, nil
}

func (s *Service) GetAdReport(clientID, adAccountID string, filters *domain.InsightFilters) ([]*domain.AdSummary, error) {
	account, err := s.resolveReportAccount(clientID, adAccountID, filters)
	if err != nil {
		return nil, err
	}

	report, err := s.metaInsightRepo.SumByAd(account.ID, *filters.StartDate, *filters.EndDate)
	if err != nil {
		return nil, fmt.Errorf("erro ao montar relatório por anúncio: %w", err)
	}

	return report, nil
}

// resolveReportAccount valida o período e localiza a conta do cliente usada
// pelos relatórios sobre os insights armazenados.
func (s *Service) resolveReportAccount(clientID, adAccountID string, filters *domain.InsightFilters) (*domain.MetaAdAccount, error) {
	if filters == nil || filters.StartDate == nil || filters.EndDate == nil {
		return nil, fmt.Errorf("é necessário informar as datas de início e fim")
	}

	if filters.StartDate.After(*filters.EndDate) {
		return nil, fmt.Errorf("a data de início não pode ser posterior à data de fim")
	}

	account, err := s.metaAdAccountRepo.GetByClientAndAdAccountID(clientID, adAccountID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar conta de anúncios: %w", err)
	}

	if account == nil {
		return nil, fmt.Errorf("conta de anúncios não encontrada: %s", adAccountID)
	}

	return account, nil
}

func (s *Service) SyncDailyInsights(clientID, adAccountID string, filters *domain.InsightFilters) (int, error) {
	account, err := s.metaAdAccountRepo.GetByClientAndAdAccountID(clientID, adAccountID)
	if err != nil {
		return 0, fmt.Errorf("erro ao buscar conta de anúncios: %w", err)
	}

	if account == nil {
		return 0, fmt.Errorf("conta de anúncios não encontrada: %s", adAccountID)
	}

	if filters == nil || filters.StartDate == nil || filters.EndDate == nil {
		filters = s.defaultSyncWindow()
	}

	return s.syncAccount(account, filters)
}

func (s *Service) SyncAllActiveAccounts() error {
	accounts, err := s.metaAdAccountRepo.ListActive()
	if err != nil {
		return fmt.Errorf("erro ao listar contas ativas: %w", err)
	}

	logrus.WithField("accounts", len(accounts)).Info("Iniciando sincronização de insights diários do Meta")

	filters := s.defaultSyncWindow()
	delay := time.Duration(s.cfg.MetaInsightSync.RequestDelaySeconds) * time.Second

	for i, account := range accounts {
		// Intervalo entre contas para não estourar o rate limit da Graph API
		if i > 0 && delay > 0 {
			time.Sleep(delay)
		}

		synced, err := s.syncAccount(account, filters)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"account_id":    account.ID,
				"ad_account_id": account.AdAccountID,
			}).Warn("Erro ao sincronizar insights da conta, continuando com as demais")
			continue
		}

		logrus.WithFields(logrus.Fields{
			"account_id": account.ID,
			"synced":     synced,
		}).Info("Conta sincronizada")
	}

	return nil
}

func (s *Service) syncAccount(account *domain.MetaAdAccount, filters *domain.InsightFilters) (int, error) {
	insights, err := s.metaService.FetchDailyInsights(account, filters)
	if err != nil {
		return 0, err
	}

	synced := 0
	for _, insight := range insights {
		if err := s.metaInsightRepo.SaveOrUpdate(insight); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"account_id": account.ID,
				"ad_id":      insight.AdID,
				"date":       insight.Date.Format(time.DateOnly),
			}).Warn("Erro ao gravar insight diário, continuando")
			continue
		}
		synced++
	}

	return synced, nil
}

// defaultSyncWindow é a janela padrão de sincronização: os últimos N dias
// configurados, terminando em hoje.
func (s *Service) defaultSyncWindow() *domain.InsightFilters {
	lookback := s.cfg.MetaInsightSync.LookbackDays
	if lookback <= 0 {
		lookback = 7
	}

	end := time.Now()
	start := end.AddDate(0, 0, -(lookback - 1))

	return &domain.InsightFilters{
		StartDate: &start,
		EndDate:   &end,
	}
}
