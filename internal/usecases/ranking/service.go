package ranking

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/ad-performance-api/infrastructure/repository"
	"github.com/vfg2006/ad-performance-api/internal/domain"
	"github.com/vfg2006/ad-performance-api/pkg/log"
)

type RankingService interface {
	Classify(ctx context.Context, brandID string, window domain.DateWindow) (*domain.ClassificationSummary, error)
}

type ClassificationService struct {
	BrandRepository         repository.BrandRepository
	AdRepository            repository.AdRepository
	AnalysisCacheRepository repository.AnalysisCacheRepository
	now                     func() time.Time
}

func NewClassificationService(
	brandRepository repository.BrandRepository,
	adRepository repository.AdRepository,
	analysisCacheRepository repository.AnalysisCacheRepository,
) *ClassificationService {
	return &ClassificationService{
		BrandRepository:         brandRepository,
		AdRepository:            adRepository,
		AnalysisCacheRepository: analysisCacheRepository,
		now:                     time.Now,
	}
}

// Classify classifica todos os anúncios da marca, grava os tiers em uma transação
// e guarda o retrato {benchmarks, counts, goals} no cache de análises
func (s *ClassificationService) Classify(ctx context.Context, brandID string, window domain.DateWindow) (*domain.ClassificationSummary, error) {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"brand_id": brandID,
		"window":   string(window),
	})

	brand, err := s.BrandRepository.GetByID(ctx, brandID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar marca %s: %w", brandID, err)
	}
	if brand == nil {
		return nil, domain.NewError(domain.KindConfig, "classify", 0, fmt.Errorf("marca %s não encontrada", brandID))
	}

	ads, err := s.AdRepository.ListByBrand(ctx, brandID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar anúncios da marca %s: %w", brandID, err)
	}

	now := s.now().UTC()
	summary := Classify(ads, brand.Goal(), window, now)
	summary.BrandID = brandID

	if len(summary.Tiers) > 0 {
		if err := s.AdRepository.UpdateClassifications(ctx, brandID, summary.Tiers); err != nil {
			return nil, fmt.Errorf("erro ao gravar classificação da marca %s: %w", brandID, err)
		}
	}

	snapshot := &domain.CachedAnalysis{
		BrandID: brandID,
		Payload: domain.ClassificationSnapshot{
			Window:      window,
			Benchmarks:  summary.Benchmarks,
			Counts:      summary.Counts,
			Goals:       summary.Goals,
			GeneratedAt: now,
		},
		CreatedAt: now,
		ExpiresAt: now.Add(domain.ClassificationCacheTTL),
	}
	if err := s.AnalysisCacheRepository.Save(ctx, snapshot); err != nil {
		logger.WithError(err).Warn("Erro ao gravar retrato da classificação no cache")
	}

	logger.WithFields(log.Fields{
		"winner":    summary.Counts.Winner,
		"potential": summary.Counts.Potential,
		"new":       summary.Counts.New,
		"loser":     summary.Counts.Loser,
	}).Info("Classificação concluída")

	return summary, nil
}
