package handler

import (
	"context"

	"github.com/vfg2006/ad-performance-api/internal/domain"
)

// BrandSyncer dispara a sincronização sob demanda de uma marca
type BrandSyncer interface {
	SyncBrand(ctx context.Context, brandID string, window domain.DateWindow) (*domain.SyncSummary, error)
	RunCycle(ctx context.Context, brandID string) (*domain.CycleSummary, error)
}

// EnrichmentLister expõe a fila priorizada de anúncios a enriquecer
type EnrichmentLister interface {
	Pending(ctx context.Context, brandID string, limit int) ([]*domain.AdRecord, error)
}

// CronTrigger é implementado pelos agendadores
type CronTrigger interface {
	TriggerManualSync(ctx context.Context) bool
	GetStatus() map[string]any
}
