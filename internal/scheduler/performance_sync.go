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
	"github.com/vfg2006/ad-performance-api/internal/usecases/breakout"
	"github.com/vfg2006/ad-performance-api/internal/usecases/ranking"
	"github.com/vfg2006/ad-performance-api/internal/usecases/syncing"
	"github.com/vfg2006/ad-performance-api/pkg/log"
)

// PerformanceSyncConfig representa a configuração do ciclo de sincronização e classificação
type PerformanceSyncConfig struct {
	CronSchedule string
	DateWindow   domain.DateWindow
	SyncEnabled  bool
}

// PerformanceSyncService executa, por marca, o ciclo
// retrato de gasto -> sincronização -> classificação -> breakouts -> enriquecimento
type PerformanceSyncService struct {
	scheduler   *gocron.Scheduler
	config      PerformanceSyncConfig
	connections repository.ConnectionRepository
	adRepo      repository.AdRepository
	sources     meta.Factory
	syncer      syncing.Syncer
	classifier  ranking.RankingService
	publisher   BreakoutPublisher
	enrichment  EnrichmentRunner
	now         func() time.Time

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncBrands      int
	lastSyncFailures    int
}

// NewPerformanceSyncService cria o serviço a partir da configuração global
func NewPerformanceSyncService(
	connections repository.ConnectionRepository,
	adRepo repository.AdRepository,
	sources meta.Factory,
	syncer syncing.Syncer,
	classifier ranking.RankingService,
	publisher BreakoutPublisher,
	enrichment EnrichmentRunner,
	appConfig *config.Config,
) (*PerformanceSyncService, error) {
	window, err := domain.ParseDateWindow(appConfig.PerformanceSync.DateWindow)
	if err != nil {
		return nil, err
	}

	syncConfig := PerformanceSyncConfig{
		CronSchedule: appConfig.PerformanceSync.CronSchedule,
		DateWindow:   window,
		SyncEnabled:  appConfig.PerformanceSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"date_window":   syncConfig.DateWindow,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de performance carregada")

	return &PerformanceSyncService{
		scheduler:   gocron.NewScheduler(time.Local),
		config:      syncConfig,
		connections: connections,
		adRepo:      adRepo,
		sources:     sources,
		syncer:      syncer,
		classifier:  classifier,
		publisher:   publisher,
		enrichment:  enrichment,
		now:         time.Now,
	}, nil
}

// Start inicia o agendador
func (s *PerformanceSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de performance desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de performance")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllBrands(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de performance: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return nil
}

// Stop para o agendador; ciclos em andamento terminam normalmente
func (s *PerformanceSyncService) Stop() {
	if s.scheduler.IsRunning() {
		logrus.Info("Parando agendador de sincronização de performance")
		s.scheduler.Stop()
	}
}

// SyncBrand sincroniza uma marca sem classificar, usada pela API
func (s *PerformanceSyncService) SyncBrand(ctx context.Context, brandID string, window domain.DateWindow) (*domain.SyncSummary, error) {
	handle, err := resolveHandle(ctx, s.connections, brandID, s.now())
	if err != nil {
		return nil, err
	}

	return s.sync(ctx, s.sources.ForToken(handle.AccessToken), handle, window)
}

func (s *PerformanceSyncService) sync(ctx context.Context, source meta.Integrator, handle domain.AccountHandle, window domain.DateWindow) (*domain.SyncSummary, error) {
	summary, err := s.syncer.Sync(ctx, source, handle, window)
	if err != nil {
		if domain.IsAuth(err) {
			markExpired(ctx, s.connections, handle.BrandID)
		}
		return nil, err
	}
	return summary, nil
}

// RunCycle executa o ciclo completo para uma marca
func (s *PerformanceSyncService) RunCycle(ctx context.Context, brandID string) (*domain.CycleSummary, error) {
	ctx, runID := log.WithRunID(ctx)
	logger := log.ForContext(ctx).WithField("brand_id", brandID)

	cycle := &domain.CycleSummary{
		BrandID:   brandID,
		RunID:     runID,
		Breakouts: []domain.BreakoutEvent{},
		StartedAt: s.now(),
	}

	handle, err := resolveHandle(ctx, s.connections, brandID, cycle.StartedAt)
	if err != nil {
		return nil, err
	}

	// Retrato antes da sincronização, base para os breakouts
	previous, err := s.adRepo.SpendSnapshot(ctx, brandID)
	if err != nil {
		return nil, fmt.Errorf("erro ao tirar retrato de gasto da marca %s: %w", brandID, err)
	}

	source := s.sources.ForToken(handle.AccessToken)

	cycle.Sync, err = s.sync(ctx, source, handle, s.config.DateWindow)
	if err != nil {
		return nil, err
	}

	cycle.Classification, err = s.classifier.Classify(ctx, brandID, s.config.DateWindow)
	if err != nil {
		return nil, err
	}

	current, err := s.adRepo.ListByBrand(ctx, brandID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar anúncios da marca %s: %w", brandID, err)
	}

	cycle.Breakouts = breakout.DetectBreakouts(previous, current)
	if len(cycle.Breakouts) > 0 {
		if err := s.publisher.Publish(ctx, brandID, runID, cycle.Breakouts); err != nil {
			logger.WithError(err).Error("Erro ao publicar breakouts")
		}
	}

	sent, err := s.enrichment.Run(ctx, source, brandID)
	if err != nil {
		logger.WithError(err).Error("Erro ao entregar lote de enriquecimento")
	}
	cycle.EnrichmentSent = sent

	cycle.CompletedAt = s.now()

	logger.WithFields(log.Fields{
		"synced":          cycle.Sync.Synced,
		"errors":          cycle.Sync.Errors,
		"breakouts":       len(cycle.Breakouts),
		"enrichment_sent": cycle.EnrichmentSent,
		"duration_ms":     cycle.CompletedAt.Sub(cycle.StartedAt).Milliseconds(),
	}).Info("Ciclo de performance concluído")

	return cycle, nil
}

// syncAllBrands roda o ciclo, em sequência, para todas as marcas com conexão ativa
func (s *PerformanceSyncService) syncAllBrands(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de performance já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	brands, failures := 0, 0
	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = s.now()
		s.lastSyncBrands = brands
		s.lastSyncFailures = failures
		s.syncMutex.Unlock()
	}()

	connections, err := s.connections.ListActive(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar conexões para sincronização de performance")
		return
	}

	if len(connections) == 0 {
		logrus.Info("Nenhuma conexão ativa encontrada para sincronização de performance")
		return
	}

	for _, conn := range connections {
		if ctx.Err() != nil {
			logrus.Warn("Sincronização de performance interrompida")
			return
		}

		brands++
		if _, err := s.RunCycle(ctx, conn.BrandID); err != nil {
			failures++
			logrus.WithFields(logrus.Fields{
				"brand_id": conn.BrandID,
				"kind":     domain.KindOf(err),
				"error":    err.Error(),
			}).Error("Erro no ciclo de performance da marca")
		}
	}

	logrus.WithFields(logrus.Fields{
		"brands":   brands,
		"failures": failures,
		"duration": s.now().Sub(s.lastSyncStartedAt).String(),
	}).Info("Sincronização de performance concluída")
}

// TriggerManualSync inicia manualmente o ciclo para todas as marcas
func (s *PerformanceSyncService) TriggerManualSync(ctx context.Context) bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de performance já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de performance")
	go s.syncAllBrands(context.WithoutCancel(ctx))
	return true
}

// GetStatus retorna o status atual do agendador
func (s *PerformanceSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_date_window":       s.config.DateWindow,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_brands":       s.lastSyncBrands,
		"last_sync_failures":     s.lastSyncFailures,
	}
}
