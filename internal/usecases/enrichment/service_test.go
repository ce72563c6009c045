package enrichment

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ad-performance-api/infrastructure/integrator/meta"
	metamocks "github.com/vfg2006/ad-performance-api/infrastructure/integrator/meta/mocks"
	repomocks "github.com/vfg2006/ad-performance-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ad-performance-api/internal/domain"
	"github.com/vfg2006/ad-performance-api/internal/usecases/enrichment/mocks"
	"go.uber.org/mock/gomock"
)

func stringPtr(s string) *string {
	return &s
}

func tierPtr(t domain.Tier) *domain.Tier {
	return &t
}

func pendingAd(id string, tier *domain.Tier, spend float64) *domain.AdRecord {
	return &domain.AdRecord{
		BrandID:            "brand1",
		FbAdID:             id,
		Name:               id,
		Classification:     tier,
		PerformanceMetrics: domain.PerformanceMetrics{Spend: spend},
	}
}

func ids(ads []*domain.AdRecord) []string {
	out := make([]string, 0, len(ads))
	for _, ad := range ads {
		out = append(out, ad.FbAdID)
	}
	return out
}

func TestPrioritize(t *testing.T) {
	enriched := pendingAd("enriched", tierPtr(domain.TierWinner), 9999)
	enriched.VideoTranscript = stringPtr("transcrição")

	ads := []*domain.AdRecord{
		pendingAd("loser-high", tierPtr(domain.TierLoser), 8000),
		pendingAd("new", tierPtr(domain.TierNew), 10),
		pendingAd("unclassified", nil, 9000),
		pendingAd("potential", tierPtr(domain.TierPotential), 50),
		pendingAd("winner-low", tierPtr(domain.TierWinner), 100),
		pendingAd("winner-high", tierPtr(domain.TierWinner), 500),
		enriched,
	}

	tests := []struct {
		name     string
		limit    int
		expected []string
	}{
		{
			name:     "Ordena por tier e depois por gasto",
			limit:    10,
			expected: []string{"winner-high", "winner-low", "potential", "new", "unclassified", "loser-high"},
		},
		{
			name:     "Respeita o limite do lote",
			limit:    3,
			expected: []string{"winner-high", "winner-low", "potential"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ids(Prioritize(ads, tt.limit)))
		})
	}
}

// slowSource registra quantas buscas de comentários rodam ao mesmo tempo
type slowSource struct {
	meta.Integrator
	inFlight int32
	maxSeen  int32
	mu       sync.Mutex
	failFor  string
}

func (s *slowSource) GetComments(ctx context.Context, storyID string, limit int) ([]domain.AdComment, error) {
	current := atomic.AddInt32(&s.inFlight, 1)
	defer atomic.AddInt32(&s.inFlight, -1)

	s.mu.Lock()
	if current > s.maxSeen {
		s.maxSeen = current
	}
	s.mu.Unlock()

	time.Sleep(5 * time.Millisecond)

	if storyID == s.failFor {
		return nil, errors.New("timeout")
	}
	return []domain.AdComment{{ID: storyID + "_c1", Message: "quero!"}}, nil
}

func TestCommentCollector_Collect(t *testing.T) {
	source := &slowSource{failFor: "story3"}

	ads := make([]*domain.AdRecord, 0, 8)
	for _, id := range []string{"1", "2", "3", "4", "5", "6", "7"} {
		ad := pendingAd("a"+id, nil, 100)
		ad.StoryID = stringPtr("story" + id)
		ads = append(ads, ad)
	}
	ads = append(ads, pendingAd("no-story", nil, 100))

	results := NewCommentCollector(3).Collect(context.Background(), source, ads)

	require.Len(t, results, len(ads))
	assert.LessOrEqual(t, source.maxSeen, int32(3))

	assert.Equal(t, "story1_c1", results[0][0].ID)
	assert.Empty(t, results[2], "falha vira lista vazia")
	assert.NotNil(t, results[2])
	assert.Empty(t, results[7], "anúncio sem post não busca comentários")
	assert.Len(t, results[6], 1)
}

func TestService_Run(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	winner := pendingAd("a1", tierPtr(domain.TierWinner), 900)
	winner.StoryID = stringPtr("post1")
	winner.VideoID = stringPtr("v1")
	loser := pendingAd("a2", tierPtr(domain.TierLoser), 1200)

	tests := []struct {
		name     string
		setup    func(adRepo *repomocks.MockAdRepository, source *metamocks.MockIntegrator, dispatcher *mocks.MockDispatcher)
		validate func(t *testing.T, sent int, err error)
	}{
		{
			name: "Entrega o lote priorizado com comentários",
			setup: func(adRepo *repomocks.MockAdRepository, source *metamocks.MockIntegrator, dispatcher *mocks.MockDispatcher) {
				adRepo.EXPECT().ListNeedingEnrichment(gomock.Any(), "brand1").Return([]*domain.AdRecord{loser, winner}, nil)
				source.EXPECT().GetComments(gomock.Any(), "post1", commentsPerAd).
					Return([]domain.AdComment{{ID: "c1", Message: "onde compro?"}}, nil)
				dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, requests []domain.EnrichmentRequest) error {
						require.Len(t, requests, 2)
						assert.Equal(t, "a1", requests[0].FbAdID)
						assert.Equal(t, domain.TierWinner, requests[0].Tier)
						assert.Equal(t, "v1", *requests[0].VideoID)
						assert.Len(t, requests[0].Comments, 1)
						assert.Equal(t, "a2", requests[1].FbAdID)
						assert.Empty(t, requests[1].Comments)
						assert.Equal(t, now, requests[1].RequestedAt)
						return nil
					})
			},
			validate: func(t *testing.T, sent int, err error) {
				require.NoError(t, err)
				assert.Equal(t, 2, sent)
			},
		},
		{
			name: "Nada pendente não chama o colaborador",
			setup: func(adRepo *repomocks.MockAdRepository, source *metamocks.MockIntegrator, dispatcher *mocks.MockDispatcher) {
				adRepo.EXPECT().ListNeedingEnrichment(gomock.Any(), "brand1").Return(nil, nil)
			},
			validate: func(t *testing.T, sent int, err error) {
				require.NoError(t, err)
				assert.Zero(t, sent)
			},
		},
		{
			name: "Falha do colaborador retorna erro",
			setup: func(adRepo *repomocks.MockAdRepository, source *metamocks.MockIntegrator, dispatcher *mocks.MockDispatcher) {
				adRepo.EXPECT().ListNeedingEnrichment(gomock.Any(), "brand1").Return([]*domain.AdRecord{loser}, nil)
				dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(errors.New("redis fora"))
			},
			validate: func(t *testing.T, sent int, err error) {
				assert.Zero(t, sent)
				assert.ErrorContains(t, err, "redis fora")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			adRepo := repomocks.NewMockAdRepository(ctrl)
			source := metamocks.NewMockIntegrator(ctrl)
			dispatcher := mocks.NewMockDispatcher(ctrl)

			service := NewService(adRepo, NewCommentCollector(DefaultConcurrency), dispatcher, 10)
			service.now = func() time.Time { return now }

			tt.setup(adRepo, source, dispatcher)

			sent, err := service.Run(context.Background(), source, "brand1")
			tt.validate(t, sent, err)
		})
	}
}
