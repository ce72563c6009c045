package scheduler

import (
	"context"

	"github.com/vfg2006/ad-performance-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ad-performance-api/internal/domain"
)

// BreakoutPublisher entrega os breakouts detectados ao colaborador de notificações
type BreakoutPublisher interface {
	Publish(ctx context.Context, brandID, runID string, events []domain.BreakoutEvent) error
}

// EnrichmentRunner seleciona e entrega o lote de anúncios para enriquecimento
type EnrichmentRunner interface {
	Run(ctx context.Context, source meta.Integrator, brandID string) (int, error)
}
