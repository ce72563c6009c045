package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-performance-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ad-performance-api/infrastructure/repository"
	"github.com/vfg2006/ad-performance-api/internal/config"
	"github.com/vfg2006/ad-performance-api/internal/domain"
	"github.com/vfg2006/ad-performance-api/internal/usecases/syncing"
)

// DailyInsightsSyncConfig representa a configuração do histórico diário
type DailyInsightsSyncConfig struct {
	CronSchedule  string
	LookbackDays  int
	RetentionDays int
	SyncEnabled   bool
}

// DailyInsightsSyncService grava um dia de histórico por anúncio ativo de cada marca
type DailyInsightsSyncService struct {
	scheduler   *gocron.Scheduler
	config      DailyInsightsSyncConfig
	connections repository.ConnectionRepository
	insightRepo repository.AdInsightRepository
	sources     meta.Factory
	syncer      syncing.Syncer
	now         func() time.Time

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewDailyInsightsSyncService(
	connections repository.ConnectionRepository,
	insightRepo repository.AdInsightRepository,
	sources meta.Factory,
	syncer syncing.Syncer,
	appConfig *config.Config,
) *DailyInsightsSyncService {
	dailyConfig := DailyInsightsSyncConfig{
		CronSchedule:  appConfig.DailyInsightsSync.CronSchedule,
		LookbackDays:  appConfig.DailyInsightsSync.LookbackDays,
		RetentionDays: appConfig.DailyInsightsSync.RetentionDays,
		SyncEnabled:   appConfig.DailyInsightsSync.Enabled,
	}
	if dailyConfig.LookbackDays < 1 {
		dailyConfig.LookbackDays = 1
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  dailyConfig.CronSchedule,
		"lookback_days":  dailyConfig.LookbackDays,
		"retention_days": dailyConfig.RetentionDays,
		"sync_enabled":   dailyConfig.SyncEnabled,
	}).Info("Configuração do agendador de insights diários carregada")

	return &DailyInsightsSyncService{
		scheduler:   gocron.NewScheduler(time.Local),
		config:      dailyConfig,
		connections: connections,
		insightRepo: insightRepo,
		sources:     sources,
		syncer:      syncer,
		now:         time.Now,
	}
}

// Start inicia o agendador
func (s *DailyInsightsSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de insights diários desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de insights diários")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllDailyInsights(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de insights diários: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return nil
}

func (s *DailyInsightsSyncService) Stop() {
	if s.scheduler.IsRunning() {
		logrus.Info("Parando agendador de insights diários")
		s.scheduler.Stop()
	}
}

// getDatesToProcess começa de ontem e vai para trás, do mais antigo para o mais recente
func (s *DailyInsightsSyncService) getDatesToProcess() []time.Time {
	today := s.now().UTC().Truncate(24 * time.Hour)

	dates := make([]time.Time, 0, s.config.LookbackDays)
	for i := s.config.LookbackDays; i >= 1; i-- {
		dates = append(dates, today.AddDate(0, 0, -i))
	}
	return dates
}

func (s *DailyInsightsSyncService) syncAllDailyInsights(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de insights diários já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = s.now()
		s.syncMutex.Unlock()
	}()

	connections, err := s.connections.ListActive(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar conexões para insights diários")
		return
	}

	dates := s.getDatesToProcess()

	for _, conn := range connections {
		if ctx.Err() != nil {
			return
		}
		s.syncConnection(ctx, conn, dates)
	}

	s.applyRetention(ctx)
}

func (s *DailyInsightsSyncService) syncConnection(ctx context.Context, conn *domain.Connection, dates []time.Time) {
	handle, err := handleFor(ctx, s.connections, conn, s.now())
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"brand_id": conn.BrandID,
			"error":    err.Error(),
		}).Warn("Marca ignorada na sincronização de insights diários")
		return
	}

	source := s.sources.ForToken(handle.AccessToken)

	for _, date := range dates {
		summary, err := s.syncer.SyncDailyInsights(ctx, source, handle, date)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"brand_id": conn.BrandID,
				"date":     date.Format(time.DateOnly),
				"error":    err.Error(),
			}).Error("Erro ao sincronizar insights diários da marca")

			if domain.IsAuth(err) {
				markExpired(ctx, s.connections, conn.BrandID)
				return
			}
			if domain.KindOf(err) == domain.KindPermission {
				return
			}
			continue
		}

		logrus.WithFields(logrus.Fields{
			"brand_id": conn.BrandID,
			"date":     summary.Date,
			"synced":   summary.Synced,
			"errors":   summary.Errors,
		}).Info("Insights diários salvos")
	}
}

func (s *DailyInsightsSyncService) applyRetention(ctx context.Context) {
	if s.config.RetentionDays <= 0 {
		return
	}

	deleted, err := s.insightRepo.DeleteOlderThan(ctx, s.config.RetentionDays)
	if err != nil {
		logrus.WithError(err).Error("Erro ao aplicar retenção dos insights diários")
		return
	}

	logrus.WithFields(logrus.Fields{
		"retention_days": s.config.RetentionDays,
		"deleted":        deleted,
	}).Info("Retenção dos insights diários aplicada")
}

// TriggerManualSync inicia manualmente a sincronização diária
func (s *DailyInsightsSyncService) TriggerManualSync(ctx context.Context) bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de insights diários já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de insights diários")
	go s.syncAllDailyInsights(context.WithoutCancel(ctx))
	return true
}

// GetStatus retorna o status atual do agendador
func (s *DailyInsightsSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"retention_days":         s.config.RetentionDays,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
