package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metamocks "github.com/vfg2006/ad-performance-api/infrastructure/integrator/meta/mocks"
	repomocks "github.com/vfg2006/ad-performance-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ad-performance-api/internal/domain"
	"github.com/vfg2006/ad-performance-api/internal/scheduler/mocks"
	rankingmocks "github.com/vfg2006/ad-performance-api/internal/usecases/ranking/mocks"
	syncingmocks "github.com/vfg2006/ad-performance-api/internal/usecases/syncing/mocks"
	"go.uber.org/mock/gomock"
)

var refNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func stringPtr(s string) *string {
	return &s
}

func timePtr(t time.Time) *time.Time {
	return &t
}

type performanceFixture struct {
	connections *repomocks.MockConnectionRepository
	adRepo      *repomocks.MockAdRepository
	factory     *metamocks.MockFactory
	source      *metamocks.MockIntegrator
	syncer      *syncingmocks.MockSyncer
	classifier  *rankingmocks.MockRankingService
	publisher   *mocks.MockBreakoutPublisher
	enrichment  *mocks.MockEnrichmentRunner
	service     *PerformanceSyncService
}

func newPerformanceFixture(t *testing.T) *performanceFixture {
	ctrl := gomock.NewController(t)

	f := &performanceFixture{
		connections: repomocks.NewMockConnectionRepository(ctrl),
		adRepo:      repomocks.NewMockAdRepository(ctrl),
		factory:     metamocks.NewMockFactory(ctrl),
		source:      metamocks.NewMockIntegrator(ctrl),
		syncer:      syncingmocks.NewMockSyncer(ctrl),
		classifier:  rankingmocks.NewMockRankingService(ctrl),
		publisher:   mocks.NewMockBreakoutPublisher(ctrl),
		enrichment:  mocks.NewMockEnrichmentRunner(ctrl),
	}

	f.service = &PerformanceSyncService{
		config:      PerformanceSyncConfig{DateWindow: domain.WindowLast30Days, CronSchedule: "0 */6 * * *"},
		connections: f.connections,
		adRepo:      f.adRepo,
		sources:     f.factory,
		syncer:      f.syncer,
		classifier:  f.classifier,
		publisher:   f.publisher,
		enrichment:  f.enrichment,
		now:         func() time.Time { return refNow },
	}
	return f
}

func activeConnection() *domain.Connection {
	return &domain.Connection{
		ID:             "c1",
		BrandID:        "brand1",
		AdAccountID:    stringPtr("123"),
		AccessToken:    "tok",
		TokenExpiresAt: timePtr(refNow.Add(24 * time.Hour)),
		Status:         domain.ConnectionActive,
	}
}

var expectedHandle = domain.AccountHandle{BrandID: "brand1", AccountID: "123", AccessToken: "tok"}

func TestPerformanceSyncService_RunCycle(t *testing.T) {
	syncSummary := &domain.SyncSummary{TotalAds: 2, Synced: 2}
	classification := &domain.ClassificationSummary{BrandID: "brand1", Counts: domain.TierCounts{Winner: 1, Loser: 1}}
	current := []*domain.AdRecord{
		{FbAdID: "a1", PerformanceMetrics: domain.PerformanceMetrics{Spend: 4500}},
		{FbAdID: "a2", PerformanceMetrics: domain.PerformanceMetrics{Spend: 300}},
	}

	tests := []struct {
		name     string
		setup    func(f *performanceFixture)
		validate func(t *testing.T, cycle *domain.CycleSummary, err error)
	}{
		{
			name: "Ciclo completo publica breakouts e entrega enriquecimento",
			setup: func(f *performanceFixture) {
				f.connections.EXPECT().GetByBrand(gomock.Any(), "brand1").Return(activeConnection(), nil)
				f.adRepo.EXPECT().SpendSnapshot(gomock.Any(), "brand1").Return(map[string]float64{"a1": 1000, "a2": 250}, nil)
				f.factory.EXPECT().ForToken("tok").Return(f.source)
				f.syncer.EXPECT().Sync(gomock.Any(), f.source, expectedHandle, domain.WindowLast30Days).Return(syncSummary, nil)
				f.classifier.EXPECT().Classify(gomock.Any(), "brand1", domain.WindowLast30Days).Return(classification, nil)
				f.adRepo.EXPECT().ListByBrand(gomock.Any(), "brand1").Return(current, nil)
				f.publisher.EXPECT().Publish(gomock.Any(), "brand1", gomock.Any(), gomock.Len(1)).Return(nil)
				f.enrichment.EXPECT().Run(gomock.Any(), f.source, "brand1").Return(2, nil)
			},
			validate: func(t *testing.T, cycle *domain.CycleSummary, err error) {
				require.NoError(t, err)
				assert.Equal(t, syncSummary, cycle.Sync)
				assert.Equal(t, classification, cycle.Classification)
				require.Len(t, cycle.Breakouts, 1)
				assert.Equal(t, domain.BreakoutSpendIncrease, cycle.Breakouts[0].Type)
				assert.Equal(t, 2, cycle.EnrichmentSent)
				assert.NotEmpty(t, cycle.RunID)
			},
		},
		{
			name: "Falhas de publicação e enriquecimento não derrubam o ciclo",
			setup: func(f *performanceFixture) {
				f.connections.EXPECT().GetByBrand(gomock.Any(), "brand1").Return(activeConnection(), nil)
				f.adRepo.EXPECT().SpendSnapshot(gomock.Any(), "brand1").Return(map[string]float64{"a1": 1000}, nil)
				f.factory.EXPECT().ForToken("tok").Return(f.source)
				f.syncer.EXPECT().Sync(gomock.Any(), f.source, expectedHandle, domain.WindowLast30Days).Return(syncSummary, nil)
				f.classifier.EXPECT().Classify(gomock.Any(), "brand1", domain.WindowLast30Days).Return(classification, nil)
				f.adRepo.EXPECT().ListByBrand(gomock.Any(), "brand1").Return(current, nil)
				f.publisher.EXPECT().Publish(gomock.Any(), "brand1", gomock.Any(), gomock.Any()).Return(errors.New("redis fora"))
				f.enrichment.EXPECT().Run(gomock.Any(), f.source, "brand1").Return(0, errors.New("redis fora"))
			},
			validate: func(t *testing.T, cycle *domain.CycleSummary, err error) {
				require.NoError(t, err)
				assert.Len(t, cycle.Breakouts, 1)
				assert.Zero(t, cycle.EnrichmentSent)
			},
		},
		{
			name: "Sem breakouts não publica nada",
			setup: func(f *performanceFixture) {
				f.connections.EXPECT().GetByBrand(gomock.Any(), "brand1").Return(activeConnection(), nil)
				f.adRepo.EXPECT().SpendSnapshot(gomock.Any(), "brand1").Return(map[string]float64{}, nil)
				f.factory.EXPECT().ForToken("tok").Return(f.source)
				f.syncer.EXPECT().Sync(gomock.Any(), f.source, expectedHandle, domain.WindowLast30Days).Return(syncSummary, nil)
				f.classifier.EXPECT().Classify(gomock.Any(), "brand1", domain.WindowLast30Days).Return(classification, nil)
				f.adRepo.EXPECT().ListByBrand(gomock.Any(), "brand1").Return(current, nil)
				f.enrichment.EXPECT().Run(gomock.Any(), f.source, "brand1").Return(0, nil)
			},
			validate: func(t *testing.T, cycle *domain.CycleSummary, err error) {
				require.NoError(t, err)
				assert.Empty(t, cycle.Breakouts)
			},
		},
		{
			name: "Marca sem conexão falha antes de qualquer chamada",
			setup: func(f *performanceFixture) {
				f.connections.EXPECT().GetByBrand(gomock.Any(), "brand1").Return(nil, nil)
			},
			validate: func(t *testing.T, cycle *domain.CycleSummary, err error) {
				assert.Nil(t, cycle)
				assert.ErrorIs(t, err, domain.ErrNoActiveConnection)
				assert.Equal(t, domain.KindConfig, domain.KindOf(err))
			},
		},
		{
			name: "Conexão sem conta selecionada é erro de configuração",
			setup: func(f *performanceFixture) {
				conn := activeConnection()
				conn.AdAccountID = nil
				f.connections.EXPECT().GetByBrand(gomock.Any(), "brand1").Return(conn, nil)
			},
			validate: func(t *testing.T, cycle *domain.CycleSummary, err error) {
				assert.Nil(t, cycle)
				assert.ErrorIs(t, err, domain.ErrNoAccountSelected)
			},
		},
		{
			name: "Token vencido marca a conexão antes de sincronizar",
			setup: func(f *performanceFixture) {
				conn := activeConnection()
				conn.TokenExpiresAt = timePtr(refNow.Add(-time.Minute))
				f.connections.EXPECT().GetByBrand(gomock.Any(), "brand1").Return(conn, nil)
				f.connections.EXPECT().MarkExpired(gomock.Any(), "brand1").Return(nil)
			},
			validate: func(t *testing.T, cycle *domain.CycleSummary, err error) {
				assert.Nil(t, cycle)
				assert.ErrorIs(t, err, domain.ErrTokenExpired)
			},
		},
		{
			name: "Erro de autenticação durante a sincronização marca a conexão e interrompe",
			setup: func(f *performanceFixture) {
				f.connections.EXPECT().GetByBrand(gomock.Any(), "brand1").Return(activeConnection(), nil)
				f.adRepo.EXPECT().SpendSnapshot(gomock.Any(), "brand1").Return(map[string]float64{}, nil)
				f.factory.EXPECT().ForToken("tok").Return(f.source)
				f.syncer.EXPECT().Sync(gomock.Any(), f.source, expectedHandle, domain.WindowLast30Days).
					Return(nil, domain.NewError(domain.KindAuth, "/act_123/ads", 190, errors.New("sessão inválida")))
				f.connections.EXPECT().MarkExpired(gomock.Any(), "brand1").Return(nil)
			},
			validate: func(t *testing.T, cycle *domain.CycleSummary, err error) {
				assert.Nil(t, cycle)
				assert.True(t, domain.IsAuth(err))
			},
		},
		{
			name: "Erro transitório na sincronização não marca a conexão",
			setup: func(f *performanceFixture) {
				f.connections.EXPECT().GetByBrand(gomock.Any(), "brand1").Return(activeConnection(), nil)
				f.adRepo.EXPECT().SpendSnapshot(gomock.Any(), "brand1").Return(map[string]float64{}, nil)
				f.factory.EXPECT().ForToken("tok").Return(f.source)
				f.syncer.EXPECT().Sync(gomock.Any(), f.source, expectedHandle, domain.WindowLast30Days).
					Return(nil, domain.NewError(domain.KindTransient, "/act_123/ads", 0, errors.New("503")))
			},
			validate: func(t *testing.T, cycle *domain.CycleSummary, err error) {
				assert.Nil(t, cycle)
				assert.True(t, domain.IsRetryable(err))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newPerformanceFixture(t)
			tt.setup(f)

			cycle, err := f.service.RunCycle(context.Background(), "brand1")
			tt.validate(t, cycle, err)
		})
	}
}

func TestPerformanceSyncService_SyncBrand(t *testing.T) {
	f := newPerformanceFixture(t)

	f.connections.EXPECT().GetByBrand(gomock.Any(), "brand1").Return(activeConnection(), nil)
	f.factory.EXPECT().ForToken("tok").Return(f.source)
	f.syncer.EXPECT().Sync(gomock.Any(), f.source, expectedHandle, domain.WindowLifetime).
		Return(&domain.SyncSummary{TotalAds: 4, Synced: 4}, nil)

	summary, err := f.service.SyncBrand(context.Background(), "brand1", domain.WindowLifetime)

	require.NoError(t, err)
	assert.Equal(t, 4, summary.Synced)
}

func TestPerformanceSyncService_syncAllBrands(t *testing.T) {
	f := newPerformanceFixture(t)

	f.connections.EXPECT().ListActive(gomock.Any()).Return([]*domain.Connection{
		{BrandID: "brand1"},
		{BrandID: "brand2"},
	}, nil)
	f.connections.EXPECT().GetByBrand(gomock.Any(), "brand1").Return(nil, errors.New("db fora"))
	f.connections.EXPECT().GetByBrand(gomock.Any(), "brand2").Return(nil, nil)

	f.service.syncAllBrands(context.Background())

	status := f.service.GetStatus()
	assert.Equal(t, 2, status["last_sync_brands"])
	assert.Equal(t, 2, status["last_sync_failures"])
	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, refNow, status["last_sync_completed_at"])
}
