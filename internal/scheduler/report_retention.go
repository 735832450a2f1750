package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/stockpeak/stock-analytics-api/infrastructure/repository"
	"github.com/stockpeak/stock-analytics-api/internal/config"
)

// ReportRetentionConfig representa a configuração do agendador de retenção de relatórios
type ReportRetentionConfig struct {
	CronSchedule     string
	RetentionMonths  int
	RetentionEnabled bool
}

// ReportRetentionService gerencia o agendamento e execução da limpeza de
// análises antigas persistidas no banco
type ReportRetentionService struct {
	scheduler           *gocron.Scheduler
	config              ReportRetentionConfig
	reportRepo          repository.AnalysisReportRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastDeletedCount    int64
}

// NewReportRetentionService cria uma nova instância do serviço de retenção de relatórios
func NewReportRetentionService(
	reportRepo repository.AnalysisReportRepository,
	appConfig *config.Config,
) *ReportRetentionService {
	retentionConfig := ReportRetentionConfig{
		CronSchedule:     appConfig.ReportRetention.CronSchedule,
		RetentionMonths:  appConfig.ReportRetention.Months,
		RetentionEnabled: appConfig.ReportRetention.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":     retentionConfig.CronSchedule,
		"retention_months":  retentionConfig.RetentionMonths,
		"retention_enabled": retentionConfig.RetentionEnabled,
	}).Info("Configuração do agendador de retenção de relatórios carregada")

	return &ReportRetentionService{
		scheduler:   scheduler,
		config:      retentionConfig,
		reportRepo:  reportRepo,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *ReportRetentionService) Start(ctx context.Context) error {
	if !s.config.RetentionEnabled {
		logrus.Info("Retenção de relatórios desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de retenção de relatórios")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.cleanupOldReports()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar retenção de relatórios: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de retenção de relatórios")
		s.scheduler.Stop()
	}()

	return nil
}

// cleanupOldReports remove análises de períodos além da janela de retenção
func (s *ReportRetentionService) cleanupOldReports() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Limpeza de relatórios já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.WithField("retention_months", s.config.RetentionMonths).Info("Iniciando limpeza de análises antigas")

	deleted, err := s.reportRepo.DeleteOlderThan(s.config.RetentionMonths)
	if err != nil {
		logrus.WithError(err).Error("Erro ao remover análises antigas")
		return
	}

	s.lastDeletedCount = deleted
	s.lastSyncCompletedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"deleted":  deleted,
		"duration": time.Since(startTime).String(),
	}).Info("Limpeza de análises antigas concluída")
}

// TriggerManualSync inicia manualmente uma limpeza de relatórios antigos
func (s *ReportRetentionService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Limpeza de relatórios já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando limpeza manual de relatórios antigos")
	go s.cleanupOldReports()
}

// GetStatus retorna o status atual da limpeza
func (s *ReportRetentionService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.RetentionEnabled,
		"retention_months":       s.config.RetentionMonths,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_deleted_count":     s.lastDeletedCount,
	}
}
