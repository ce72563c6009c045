package syncing

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/ad-performance-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ad-performance-api/infrastructure/repository"
	"github.com/vfg2006/ad-performance-api/internal/domain"
	"github.com/vfg2006/ad-performance-api/pkg/log"
)

// Syncer define as operações de sincronização de uma conta de anúncios
type Syncer interface {
	// Sync baixa todos os anúncios da conta na janela e grava com merge
	Sync(ctx context.Context, source meta.Integrator, handle domain.AccountHandle, window domain.DateWindow) (*domain.SyncSummary, error)

	// SyncDailyInsights grava o histórico de um dia para os anúncios ativos da marca
	SyncDailyInsights(ctx context.Context, source meta.Integrator, handle domain.AccountHandle, date time.Time) (*domain.DailySyncSummary, error)
}

type Service struct {
	AdRepository            repository.AdRepository
	AdInsightRepository     repository.AdInsightRepository
	AnalysisCacheRepository repository.AnalysisCacheRepository
}

func NewService(
	adRepository repository.AdRepository,
	adInsightRepository repository.AdInsightRepository,
	analysisCacheRepository repository.AnalysisCacheRepository,
) *Service {
	return &Service{
		AdRepository:            adRepository,
		AdInsightRepository:     adInsightRepository,
		AnalysisCacheRepository: analysisCacheRepository,
	}
}

func (s *Service) Sync(ctx context.Context, source meta.Integrator, handle domain.AccountHandle, window domain.DateWindow) (*domain.SyncSummary, error) {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"brand_id":   handle.BrandID,
		"account_id": handle.AccountID,
		"window":     string(window),
	})

	records, skipped, err := source.GetAdRecords(ctx, handle.BrandID, handle.AccountID, window)
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar anúncios da conta")
		return nil, err
	}

	summary := &domain.SyncSummary{TotalAds: len(records) + len(skipped)}
	for _, record := range records {
		if record.Tags != nil {
			summary.Parsed++
		}
	}

	result, err := s.AdRepository.UpsertAds(ctx, records)
	if err != nil {
		logger.WithError(err).Error("Erro ao gravar lote de anúncios")
		return nil, fmt.Errorf("erro ao gravar anúncios da marca %s: %w", handle.BrandID, err)
	}

	summary.Synced = result.Upserted
	summary.Errors = result.Failed + len(skipped)

	// Análises derivadas dependem dos dados que acabaram de mudar
	deleted, err := s.AnalysisCacheRepository.DeleteByBrand(ctx, handle.BrandID)
	if err != nil {
		logger.WithError(err).Warn("Erro ao invalidar cache de análises")
	} else if deleted > 0 {
		logger.WithField("deleted", deleted).Debug("Cache de análises invalidado")
	}

	unprocessed, err := s.AdRepository.CountUnprocessedVideoAds(ctx, handle.BrandID)
	if err != nil {
		logger.WithError(err).Warn("Erro ao contar vídeos sem transcrição")
	}
	summary.UnprocessedVideoAds = unprocessed

	logger.WithFields(log.Fields{
		"total_ads":             summary.TotalAds,
		"synced":                summary.Synced,
		"parsed":                summary.Parsed,
		"errors":                summary.Errors,
		"unprocessed_video_ads": summary.UnprocessedVideoAds,
	}).Info("Sincronização de anúncios concluída")

	return summary, nil
}

func (s *Service) SyncDailyInsights(ctx context.Context, source meta.Integrator, handle domain.AccountHandle, date time.Time) (*domain.DailySyncSummary, error) {
	day := date.Format(time.DateOnly)
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"brand_id": handle.BrandID,
		"date":     day,
	})

	adIDs, err := s.AdRepository.ListActiveAdIDs(ctx, handle.BrandID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar anúncios ativos da marca %s: %w", handle.BrandID, err)
	}

	summary := &domain.DailySyncSummary{Date: day, TotalAds: len(adIDs)}
	snapshots := make([]*domain.InsightSnapshot, 0, len(adIDs))

	for _, adID := range adIDs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		metrics, err := source.GetDailyInsight(ctx, adID, date)
		if err != nil {
			// Token ou permissão inválidos afetam todos os anúncios restantes
			switch domain.KindOf(err) {
			case domain.KindAuth, domain.KindPermission:
				logger.WithError(err).Error("Sincronização diária abortada")
				return nil, err
			}

			logger.WithFields(log.Fields{
				"fb_ad_id": adID,
				"error":    err.Error(),
			}).Warn("Erro ao buscar insight diário do anúncio")
			summary.Errors++
			continue
		}

		if metrics == nil {
			continue
		}

		snapshots = append(snapshots, &domain.InsightSnapshot{
			BrandID:            handle.BrandID,
			FbAdID:             adID,
			Date:               date,
			PerformanceMetrics: *metrics,
		})
	}

	result, err := s.AdInsightRepository.UpsertDailyInsights(ctx, snapshots)
	if err != nil {
		return nil, fmt.Errorf("erro ao gravar insights diários da marca %s: %w", handle.BrandID, err)
	}

	summary.Synced = result.Upserted
	summary.Errors += result.Failed

	logger.WithFields(log.Fields{
		"total_ads": summary.TotalAds,
		"synced":    summary.Synced,
		"errors":    summary.Errors,
	}).Info("Sincronização diária de insights concluída")

	return summary, nil
}
