package scheduler

import (
	"context"
	"time"

	"github.com/vfg2006/ad-performance-api/infrastructure/repository"
	"github.com/vfg2006/ad-performance-api/internal/domain"
	"github.com/vfg2006/ad-performance-api/pkg/log"
)

// resolveHandle carrega a conexão da marca e faz a checagem de validade do token
// antes de qualquer chamada à plataforma. Token vencido marca a conexão como expirada.
func resolveHandle(ctx context.Context, connections repository.ConnectionRepository, brandID string, now time.Time) (domain.AccountHandle, error) {
	conn, err := connections.GetByBrand(ctx, brandID)
	if err != nil {
		return domain.AccountHandle{}, err
	}
	if conn == nil {
		return domain.AccountHandle{}, domain.ErrNoActiveConnection
	}

	return handleFor(ctx, connections, conn, now)
}

func handleFor(ctx context.Context, connections repository.ConnectionRepository, conn *domain.Connection, now time.Time) (domain.AccountHandle, error) {
	handle, err := conn.Handle()
	if err != nil {
		return domain.AccountHandle{}, err
	}

	if conn.IsExpired(now) {
		markExpired(ctx, connections, conn.BrandID)
		return domain.AccountHandle{}, domain.ErrTokenExpired
	}

	return handle, nil
}

func markExpired(ctx context.Context, connections repository.ConnectionRepository, brandID string) {
	if err := connections.MarkExpired(ctx, brandID); err != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"brand_id": brandID,
			"error":    err.Error(),
		}).Error("Erro ao marcar conexão como expirada")
		return
	}

	log.ForContext(ctx).WithField("brand_id", brandID).Warn("Conexão marcada como expirada")
}
