package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/stockpeak/stock-analytics-api/infrastructure/repository/mocks"
)

func newRetentionService(repo *mocks.MockAnalysisReportRepository, enabled bool) *ReportRetentionService {
	return &ReportRetentionService{
		scheduler: gocron.NewScheduler(time.UTC),
		config: ReportRetentionConfig{
			CronSchedule:     "0 5 1 * *",
			RetentionMonths:  18,
			RetentionEnabled: enabled,
		},
		reportRepo: repo,
	}
}

func TestReportRetentionService_cleanupOldReports(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAnalysisReportRepository(ctrl)
	service := newRetentionService(mockRepo, true)

	mockRepo.EXPECT().
		DeleteOlderThan(18).
		Return(int64(5), nil)

	service.cleanupOldReports()

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, int64(5), status["last_deleted_count"])
	assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
}

func TestReportRetentionService_cleanupKeepsStatusOnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAnalysisReportRepository(ctrl)
	service := newRetentionService(mockRepo, true)

	mockRepo.EXPECT().
		DeleteOlderThan(18).
		Return(int64(0), errors.New("connection refused"))

	service.cleanupOldReports()

	// A falha não pode deixar a limpeza marcada como em andamento
	status := service.GetStatus()
	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, int64(0), status["last_deleted_count"])
	assert.True(t, status["last_sync_completed_at"].(time.Time).IsZero())
}

func TestReportRetentionService_TriggerManualSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAnalysisReportRepository(ctrl)
	service := newRetentionService(mockRepo, true)

	done := make(chan struct{})
	mockRepo.EXPECT().
		DeleteOlderThan(18).
		DoAndReturn(func(months int) (int64, error) {
			close(done)
			return int64(2), nil
		})

	service.TriggerManualSync()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("limpeza manual não executou dentro do tempo esperado")
	}
}

func TestReportRetentionService_StartDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAnalysisReportRepository(ctrl)
	service := newRetentionService(mockRepo, false)

	// Desabilitado: não agenda nada e não toca no repositório
	err := service.Start(context.Background())
	require.NoError(t, err)
	assert.Zero(t, service.scheduler.Len())
}

func TestReportRetentionService_GetStatusFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAnalysisReportRepository(ctrl)
	service := newRetentionService(mockRepo, true)

	status := service.GetStatus()
	assert.Equal(t, "0 5 1 * *", status["sync_cron"])
	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, 18, status["retention_months"])
}
