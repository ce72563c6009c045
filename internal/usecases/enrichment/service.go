package enrichment

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/vfg2006/ad-performance-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ad-performance-api/infrastructure/repository"
	"github.com/vfg2006/ad-performance-api/internal/domain"
	"github.com/vfg2006/ad-performance-api/pkg/log"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultBatchSize   = 10
	DefaultConcurrency = 3
	commentsPerAd      = 25
)

// Dispatcher entrega o lote aos colaboradores de enriquecimento
type Dispatcher interface {
	Dispatch(ctx context.Context, requests []domain.EnrichmentRequest) error
}

// Prioritize ordena os anúncios sem enriquecimento por tier (winner, potential, new, loser)
// e depois por gasto decrescente, limitando o resultado
func Prioritize(ads []*domain.AdRecord, limit int) []*domain.AdRecord {
	pending := make([]*domain.AdRecord, 0, len(ads))
	for _, ad := range ads {
		if ad.NeedsEnrichment() {
			pending = append(pending, ad)
		}
	}

	sort.SliceStable(pending, func(i, j int) bool {
		pi, pj := pending[i].TierOrLoser().Priority(), pending[j].TierOrLoser().Priority()
		if pi != pj {
			return pi < pj
		}
		return pending[i].Spend > pending[j].Spend
	})

	if limit > 0 && len(pending) > limit {
		pending = pending[:limit]
	}
	return pending
}

// CommentCollector busca os comentários dos anúncios com concorrência limitada.
// Uma falha em um anúncio resulta em lista vazia apenas para ele.
type CommentCollector struct {
	Concurrency int
	Limit       int
}

func NewCommentCollector(concurrency int) *CommentCollector {
	if concurrency < 1 {
		concurrency = DefaultConcurrency
	}
	return &CommentCollector{Concurrency: concurrency, Limit: commentsPerAd}
}

func (c *CommentCollector) Collect(ctx context.Context, source meta.Integrator, ads []*domain.AdRecord) [][]domain.AdComment {
	results := make([][]domain.AdComment, len(ads))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.Concurrency)

	for i, ad := range ads {
		results[i] = []domain.AdComment{}
		if ad.StoryID == nil || *ad.StoryID == "" {
			continue
		}

		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}

			comments, err := source.GetComments(gctx, *ad.StoryID, c.Limit)
			if err != nil {
				log.ForContext(ctx).WithFields(log.Fields{
					"fb_ad_id": ad.FbAdID,
					"error":    err.Error(),
				}).Warn("Erro ao buscar comentários do anúncio, seguindo sem comentários")
				return nil
			}
			if comments != nil {
				results[i] = comments
			}
			return nil
		})
	}

	_ = g.Wait()
	return results
}

type Service struct {
	AdRepository repository.AdRepository
	Collector    *CommentCollector
	Dispatcher   Dispatcher
	BatchSize    int
	now          func() time.Time
}

func NewService(adRepository repository.AdRepository, collector *CommentCollector, dispatcher Dispatcher, batchSize int) *Service {
	if batchSize < 1 {
		batchSize = DefaultBatchSize
	}
	return &Service{
		AdRepository: adRepository,
		Collector:    collector,
		Dispatcher:   dispatcher,
		BatchSize:    batchSize,
		now:          time.Now,
	}
}

// Pending retorna a fila priorizada de anúncios aguardando enriquecimento
func (s *Service) Pending(ctx context.Context, brandID string, limit int) ([]*domain.AdRecord, error) {
	ads, err := s.AdRepository.ListNeedingEnrichment(ctx, brandID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar anúncios sem enriquecimento da marca %s: %w", brandID, err)
	}
	if limit < 1 {
		limit = s.BatchSize
	}
	return Prioritize(ads, limit), nil
}

// Run seleciona o lote, anexa os comentários e entrega ao colaborador. Retorna quantos foram entregues.
func (s *Service) Run(ctx context.Context, source meta.Integrator, brandID string) (int, error) {
	selected, err := s.Pending(ctx, brandID, s.BatchSize)
	if err != nil {
		return 0, err
	}
	if len(selected) == 0 {
		return 0, nil
	}

	comments := s.Collector.Collect(ctx, source, selected)
	requestedAt := s.now().UTC()

	requests := make([]domain.EnrichmentRequest, 0, len(selected))
	for i, ad := range selected {
		requests = append(requests, domain.EnrichmentRequest{
			BrandID:      ad.BrandID,
			FbAdID:       ad.FbAdID,
			Name:         ad.Name,
			Tier:         ad.TierOrLoser(),
			Spend:        ad.Spend,
			VideoID:      ad.VideoID,
			ImageURL:     ad.ImageURL,
			ThumbnailURL: ad.ThumbnailURL,
			Comments:     comments[i],
			RequestedAt:  requestedAt,
		})
	}

	if err := s.Dispatcher.Dispatch(ctx, requests); err != nil {
		return 0, fmt.Errorf("erro ao entregar lote de enriquecimento da marca %s: %w", brandID, err)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"brand_id": brandID,
		"sent":     len(requests),
	}).Info("Lote de enriquecimento entregue")

	return len(requests), nil
}
