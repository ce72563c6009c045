package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ad-performance-api/internal/api/handler/mocks"
	"github.com/vfg2006/ad-performance-api/internal/api/handler/router"
	"github.com/vfg2006/ad-performance-api/internal/domain"
	rankingmocks "github.com/vfg2006/ad-performance-api/internal/usecases/ranking/mocks"
	"github.com/vfg2006/ad-performance-api/pkg/apiErrors"
	"github.com/vfg2006/ad-performance-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

type testDeps struct {
	syncer     *mocks.MockBrandSyncer
	classifier *rankingmocks.MockRankingService
	enrichment *mocks.MockEnrichmentLister
	perf       *mocks.MockCronTrigger
	daily      *mocks.MockCronTrigger
}

func newTestRouter(t *testing.T) (router.Router, *testDeps) {
	ctrl := gomock.NewController(t)
	deps := &testDeps{
		syncer:     mocks.NewMockBrandSyncer(ctrl),
		classifier: rankingmocks.NewMockRankingService(ctrl),
		enrichment: mocks.NewMockEnrichmentLister(ctrl),
		perf:       mocks.NewMockCronTrigger(ctrl),
		daily:      mocks.NewMockCronTrigger(ctrl),
	}

	rt := router.New(
		router.WithRoutes(Healthcheck()...),
		router.WithRoutes(Brands(deps.syncer, deps.classifier, deps.enrichment)...),
		router.WithRoutes(CronJobs(CronJobServices{PerformanceSync: deps.perf, DailyInsightsSync: deps.daily})...),
	)
	return rt, deps
}

func do(rt http.Handler, method, target string, roleID int) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if roleID > 0 {
		claims := &domain.Claims{UserID: 1, UserRoleID: roleID}
		req = req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyUser, claims))
	}
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()
	var body apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHealthcheck(t *testing.T) {
	rt, _ := newTestRouter(t)

	rec := do(rt, http.MethodGet, "/healthcheck", 0)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestRotaInexistente(t *testing.T) {
	rt, _ := newTestRouter(t)

	rec := do(rt, http.MethodGet, "/v1/nada", domain.RoleAdmin)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrNotFound, decodeError(t, rec).Code)
}

func TestSyncBrand(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		role       int
		setupMock  func(d *testDeps)
		wantStatus int
		wantCode   string
	}{
		{
			name:   "sucesso com janela padrão",
			target: "/v1/brands/b1/sync",
			role:   domain.RoleOperator,
			setupMock: func(d *testDeps) {
				d.syncer.EXPECT().SyncBrand(gomock.Any(), "b1", domain.WindowLast30Days).
					Return(&domain.SyncSummary{TotalAds: 3, Synced: 3}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "janela lifetime",
			target: "/v1/brands/b1/sync?window=lifetime",
			role:   domain.RoleAdmin,
			setupMock: func(d *testDeps) {
				d.syncer.EXPECT().SyncBrand(gomock.Any(), "b1", domain.WindowLifetime).
					Return(&domain.SyncSummary{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "janela inválida",
			target:     "/v1/brands/b1/sync?window=last_7d",
			role:       domain.RoleAdmin,
			setupMock:  func(d *testDeps) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidRequest,
		},
		{
			name:       "viewer não pode sincronizar",
			target:     "/v1/brands/b1/sync",
			role:       domain.RoleViewer,
			setupMock:  func(d *testDeps) {},
			wantStatus: http.StatusForbidden,
			wantCode:   apiErrors.ErrInsufficientPrivilege,
		},
		{
			name:   "conexão expirada",
			target: "/v1/brands/b1/sync",
			role:   domain.RoleAdmin,
			setupMock: func(d *testDeps) {
				d.syncer.EXPECT().SyncBrand(gomock.Any(), "b1", domain.WindowLast30Days).Return(nil, domain.ErrTokenExpired)
			},
			wantStatus: http.StatusConflict,
			wantCode:   apiErrors.ErrConnectionExpired,
		},
		{
			name:   "marca sem conexão",
			target: "/v1/brands/b1/sync",
			role:   domain.RoleAdmin,
			setupMock: func(d *testDeps) {
				d.syncer.EXPECT().SyncBrand(gomock.Any(), "b1", domain.WindowLast30Days).Return(nil, domain.ErrNoActiveConnection)
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   apiErrors.ErrNotConfigured,
		},
		{
			name:   "limite do provedor",
			target: "/v1/brands/b1/sync",
			role:   domain.RoleAdmin,
			setupMock: func(d *testDeps) {
				d.syncer.EXPECT().SyncBrand(gomock.Any(), "b1", domain.WindowLast30Days).
					Return(nil, domain.NewError(domain.KindRateLimit, "get_ads", 17, nil))
			},
			wantStatus: http.StatusTooManyRequests,
			wantCode:   apiErrors.ErrRateLimited,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt, deps := newTestRouter(t)
			tt.setupMock(deps)

			rec := do(rt, http.MethodPost, tt.target, tt.role)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
			}
		})
	}
}

func TestRunBrandCycle(t *testing.T) {
	rt, deps := newTestRouter(t)
	deps.syncer.EXPECT().RunCycle(gomock.Any(), "b1").Return(&domain.CycleSummary{
		BrandID:        "b1",
		RunID:          "run-1",
		Breakouts:      []domain.BreakoutEvent{},
		EnrichmentSent: 2,
	}, nil)

	rec := do(rt, http.MethodPost, "/v1/brands/b1/cycle", domain.RoleOperator)

	require.Equal(t, http.StatusOK, rec.Code)
	var body domain.CycleSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "run-1", body.RunID)
	assert.Equal(t, 2, body.EnrichmentSent)
}

func TestClassifyBrand(t *testing.T) {
	rt, deps := newTestRouter(t)
	deps.classifier.EXPECT().Classify(gomock.Any(), "b1", domain.WindowLast90Days).Return(&domain.ClassificationSummary{
		BrandID: "b1",
		Window:  domain.WindowLast90Days,
		Counts:  domain.TierCounts{Winner: 1, Loser: 2},
		Tiers:   map[string]domain.Tier{"a1": domain.TierWinner},
	}, nil)

	rec := do(rt, http.MethodPost, "/v1/brands/b1/classify?window=last_90d", domain.RoleAdmin)

	require.Equal(t, http.StatusOK, rec.Code)
	var body domain.ClassificationSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 3, body.Counts.Total())
	assert.Equal(t, domain.TierWinner, body.Tiers["a1"])
}

func TestGetEnrichmentQueue(t *testing.T) {
	t.Run("limite padrão", func(t *testing.T) {
		rt, deps := newTestRouter(t)
		deps.enrichment.EXPECT().Pending(gomock.Any(), "b1", defaultQueueLimit).
			Return([]*domain.AdRecord{{FbAdID: "a1"}, {FbAdID: "a2"}}, nil)

		rec := do(rt, http.MethodGet, "/v1/brands/b1/enrichment-queue", domain.RoleViewer)

		require.Equal(t, http.StatusOK, rec.Code)
		var body struct {
			Count int               `json:"count"`
			Ads   []domain.AdRecord `json:"ads"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, 2, body.Count)
		assert.Equal(t, "a1", body.Ads[0].FbAdID)
	})

	t.Run("limite inválido", func(t *testing.T) {
		rt, _ := newTestRouter(t)

		rec := do(rt, http.MethodGet, "/v1/brands/b1/enrichment-queue?limit=500", domain.RoleViewer)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeError(t, rec).Code)
	})
}

func TestRunCronJob(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		role       int
		setupMock  func(d *testDeps)
		wantStatus int
	}{
		{
			name:   "performance",
			target: "/v1/cron/performance/run",
			role:   domain.RoleAdmin,
			setupMock: func(d *testDeps) {
				d.perf.EXPECT().TriggerManualSync(gomock.Any()).Return(true)
			},
			wantStatus: http.StatusAccepted,
		},
		{
			name:   "todas",
			target: "/v1/cron/all/run",
			role:   domain.RoleAdmin,
			setupMock: func(d *testDeps) {
				d.perf.EXPECT().TriggerManualSync(gomock.Any()).Return(true)
				d.daily.EXPECT().TriggerManualSync(gomock.Any()).Return(false)
			},
			wantStatus: http.StatusAccepted,
		},
		{
			name:       "tipo inválido",
			target:     "/v1/cron/monthly/run",
			role:       domain.RoleAdmin,
			setupMock:  func(d *testDeps) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "operador não pode disparar",
			target:     "/v1/cron/performance/run",
			role:       domain.RoleOperator,
			setupMock:  func(d *testDeps) {},
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt, deps := newTestRouter(t)
			tt.setupMock(deps)

			rec := do(rt, http.MethodPost, tt.target, tt.role)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestGetCronStatus(t *testing.T) {
	rt, deps := newTestRouter(t)
	deps.perf.EXPECT().GetStatus().Return(map[string]any{"running": true})
	deps.daily.EXPECT().GetStatus().Return(map[string]any{"running": false})

	rec := do(rt, http.MethodGet, "/v1/cron/status", domain.RoleViewer)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body[CronJobTypePerformance]["running"])
	assert.Equal(t, false, body[CronJobTypeDailyInsights]["running"])
}
