package scheduler

import (
	"fmt"
	"testing"
	"time"

	"github.com/aiatende/marketing-dashboard-api/infrastructure/repository/mocks"
	"github.com/aiatende/marketing-dashboard-api/internal/config"
	reportingmocks "github.com/aiatende/marketing-dashboard-api/internal/usecases/reporting/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newSyncService(t *testing.T, retentionDays int) (*MetaInsightSyncService, *reportingmocks.MockReporter, *mocks.MockMetaInsightDailyRepository, *gomock.Controller) {
	ctrl := gomock.NewController(t)

	mockReporter := reportingmocks.NewMockReporter(ctrl)
	mockInsightRepo := mocks.NewMockMetaInsightDailyRepository(ctrl)

	cfg := &config.Config{
		MetaInsightSync: config.MetaInsightSync{
			CronSchedule:  "0 3 * * *",
			LookbackDays:  7,
			RetentionDays: retentionDays,
			Enabled:       true,
		},
	}

	return NewMetaInsightSyncService(mockReporter, mockInsightRepo, cfg), mockReporter, mockInsightRepo, ctrl
}

func TestMetaInsightSyncService_runSync(t *testing.T) {
	t.Run("Sincroniza todas as contas e remove insights antigos", func(t *testing.T) {
		service, mockReporter, mockInsightRepo, ctrl := newSyncService(t, 395)
		defer ctrl.Finish()

		mockReporter.EXPECT().SyncAllActiveAccounts().Return(nil)
		mockInsightRepo.EXPECT().DeleteOlderThan(395).Return(int64(42), nil)

		service.runSync()

		assert.False(t, service.lastSyncCompletedAt.IsZero())
		assert.False(t, service.syncRunning)
	})

	t.Run("Erro na sincronização não dispara a limpeza", func(t *testing.T) {
		service, mockReporter, _, ctrl := newSyncService(t, 395)
		defer ctrl.Finish()

		mockReporter.EXPECT().SyncAllActiveAccounts().Return(fmt.Errorf("token expirado"))

		service.runSync()

		assert.True(t, service.lastSyncCompletedAt.IsZero())
	})

	t.Run("Retenção desabilitada não remove nada", func(t *testing.T) {
		service, mockReporter, _, ctrl := newSyncService(t, 0)
		defer ctrl.Finish()

		mockReporter.EXPECT().SyncAllActiveAccounts().Return(nil)

		service.runSync()
	})

	t.Run("Erro na limpeza não derruba a rodada", func(t *testing.T) {
		service, mockReporter, mockInsightRepo, ctrl := newSyncService(t, 30)
		defer ctrl.Finish()

		mockReporter.EXPECT().SyncAllActiveAccounts().Return(nil)
		mockInsightRepo.EXPECT().DeleteOlderThan(30).Return(int64(0), fmt.Errorf("timeout"))

		service.runSync()

		assert.False(t, service.lastSyncCompletedAt.IsZero())
	})
}

func TestMetaInsightSyncService_statusDuringSync(t *testing.T) {
	service, mockReporter, mockInsightRepo, ctrl := newSyncService(t, 395)
	defer ctrl.Finish()

	started := make(chan struct{})
	release := make(chan struct{})

	mockReporter.EXPECT().SyncAllActiveAccounts().DoAndReturn(func() error {
		close(started)
		<-release
		return nil
	})
	mockInsightRepo.EXPECT().DeleteOlderThan(395).Return(int64(0), nil)

	go service.runSync()

	<-started

	// Consulta no meio da rodada observa o início mas não a conclusão
	status := service.GetStatus()
	assert.False(t, status["last_sync_started_at"].(time.Time).IsZero())
	assert.True(t, status["last_sync_completed_at"].(time.Time).IsZero())

	close(release)

	assert.Eventually(t, func() bool {
		return !service.GetStatus()["last_sync_completed_at"].(time.Time).IsZero()
	}, time.Second, 10*time.Millisecond)
}

func TestMetaInsightSyncService_overlapGuard(t *testing.T) {
	service, mockReporter, mockInsightRepo, ctrl := newSyncService(t, 395)
	defer ctrl.Finish()

	started := make(chan struct{})
	release := make(chan struct{})

	mockReporter.EXPECT().SyncAllActiveAccounts().DoAndReturn(func() error {
		close(started)
		<-release
		return nil
	})
	mockInsightRepo.EXPECT().DeleteOlderThan(395).Return(int64(0), nil)

	go service.runSync()

	<-started

	// Segunda rodada com a primeira ainda em andamento deve ser ignorada
	service.runSync()

	close(release)

	assert.Eventually(t, func() bool {
		service.syncMutex.Lock()
		defer service.syncMutex.Unlock()
		return !service.syncRunning
	}, time.Second, 10*time.Millisecond)
}
