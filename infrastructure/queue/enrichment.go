package queue

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/vfg2006/ad-performance-api/internal/domain"
)

// EnrichmentQueue entrega os pedidos de enriquecimento em uma lista FIFO
type EnrichmentQueue struct {
	client redis.UniversalClient
	key    string
}

func NewEnrichmentQueue(client redis.UniversalClient) *EnrichmentQueue {
	return &EnrichmentQueue{client: client, key: EnrichmentListKey}
}

func (q *EnrichmentQueue) Dispatch(ctx context.Context, requests []domain.EnrichmentRequest) error {
	if len(requests) == 0 {
		return nil
	}

	values := make([]any, 0, len(requests))
	for _, req := range requests {
		payload, err := json.Marshal(req)
		if err != nil {
			return fmt.Errorf("erro ao serializar pedido do anúncio %s: %w", req.FbAdID, err)
		}
		values = append(values, payload)
	}

	if err := q.client.RPush(ctx, q.key, values...).Err(); err != nil {
		return fmt.Errorf("erro ao enfileirar pedidos de enriquecimento: %w", err)
	}
	return nil
}

func (q *EnrichmentQueue) Len(ctx context.Context) (int64, error) {
	return q.client.LLen(ctx, q.key).Result()
}
