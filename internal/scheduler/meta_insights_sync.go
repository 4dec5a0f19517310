package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/aiatende/marketing-dashboard-api/infrastructure/repository"
	"github.com/aiatende/marketing-dashboard-api/internal/config"
	"github.com/aiatende/marketing-dashboard-api/internal/usecases/reporting"
	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

// MetaInsightSyncService gerencia o agendamento da sincronização noturna dos
// insights diários do Meta e a retenção das linhas antigas.
type MetaInsightSyncService struct {
	scheduler           *gocron.Scheduler
	cfg                 *config.Config
	reporter            reporting.Reporter
	metaInsightRepo     repository.MetaInsightDailyRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewMetaInsightSyncService cria uma nova instância do serviço de sincronização
func NewMetaInsightSyncService(
	reporter reporting.Reporter,
	metaInsightRepo repository.MetaInsightDailyRepository,
	cfg *config.Config,
) *MetaInsightSyncService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule":         cfg.MetaInsightSync.CronSchedule,
		"lookback_days":         cfg.MetaInsightSync.LookbackDays,
		"request_delay_seconds": cfg.MetaInsightSync.RequestDelaySeconds,
		"retention_days":        cfg.MetaInsightSync.RetentionDays,
		"sync_enabled":          cfg.MetaInsightSync.Enabled,
	}).Info("Configuração do agendador de insights do Meta carregada")

	return &MetaInsightSyncService{
		scheduler:       gocron.NewScheduler(time.Local),
		cfg:             cfg,
		reporter:        reporter,
		metaInsightRepo: metaInsightRepo,
	}
}

// Start inicia o agendador
func (s *MetaInsightSyncService) Start(ctx context.Context) error {
	if !s.cfg.MetaInsightSync.Enabled {
		logrus.Info("Sincronização de insights do Meta desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.cfg.MetaInsightSync.CronSchedule).Info("Iniciando agendador de sincronização de insights do Meta")

	_, err := s.scheduler.Cron(s.cfg.MetaInsightSync.CronSchedule).Do(func() {
		s.runSync()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de insights do Meta: %w", err)
	}

	s.scheduler.StartAsync()

	// Parar o agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de insights do Meta")
		s.scheduler.Stop()
	}()

	return nil
}

// runSync executa uma rodada de sincronização, evitando execuções sobrepostas
func (s *MetaInsightSyncService) runSync() {
	startTime := time.Now()

	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de insights do Meta já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização de insights do Meta para todas as contas ativas")

	if err := s.reporter.SyncAllActiveAccounts(); err != nil {
		logrus.WithError(err).Error("Erro na sincronização de insights do Meta")
		return
	}

	s.pruneOldInsights()

	duration := time.Since(startTime)
	logrus.WithField("duration", duration.String()).Info("Sincronização de insights do Meta concluída")

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()
}

// TriggerManualSync inicia manualmente uma rodada de sincronização
func (s *MetaInsightSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de insights do Meta já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de insights do Meta")
	go s.runSync()
}

// GetStatus retorna o status atual do agendador
func (s *MetaInsightSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	startedAt := s.lastSyncStartedAt
	completedAt := s.lastSyncCompletedAt
	s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.cfg.MetaInsightSync.Enabled,
		"sync_cron":              s.cfg.MetaInsightSync.CronSchedule,
		"sync_lookback_days":     s.cfg.MetaInsightSync.LookbackDays,
		"sync_request_delay_s":   s.cfg.MetaInsightSync.RequestDelaySeconds,
		"retention_days":         s.cfg.MetaInsightSync.RetentionDays,
		"last_sync_started_at":   startedAt,
		"last_sync_completed_at": completedAt,
	}
}

// pruneOldInsights remove as linhas fora da janela de retenção configurada
func (s *MetaInsightSyncService) pruneOldInsights() {
	retention := s.cfg.MetaInsightSync.RetentionDays
	if retention <= 0 {
		return
	}

	removed, err := s.metaInsightRepo.DeleteOlderThan(retention)
	if err != nil {
		logrus.WithError(err).Warn("Erro ao remover insights antigos do Meta")
		return
	}

	if removed > 0 {
		logrus.WithFields(logrus.Fields{
			"removed":        removed,
			"retention_days": retention,
		}).Info("Insights antigos do Meta removidos")
	}
}
