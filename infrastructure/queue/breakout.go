package queue

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vfg2006/ad-performance-api/internal/domain"
)

// BreakoutMessage é o formato publicado para o colaborador de notificações
type BreakoutMessage struct {
	BrandID    string    `json:"brand_id"`
	RunID      string    `json:"run_id,omitempty"`
	DetectedAt time.Time `json:"detected_at"`
	domain.BreakoutEvent
}

// BreakoutPublisher publica cada evento no canal pub/sub e mantém
// os mais recentes em uma lista limitada para quem não estava inscrito
type BreakoutPublisher struct {
	client     redis.UniversalClient
	channel    string
	listKey    string
	maxHistory int64
	now        func() time.Time
}

func NewBreakoutPublisher(client redis.UniversalClient) *BreakoutPublisher {
	return &BreakoutPublisher{
		client:     client,
		channel:    BreakoutChannel,
		listKey:    BreakoutListKey,
		maxHistory: defaultBreakoutHistory,
		now:        time.Now,
	}
}

func (p *BreakoutPublisher) Publish(ctx context.Context, brandID, runID string, events []domain.BreakoutEvent) error {
	if len(events) == 0 {
		return nil
	}

	detectedAt := p.now().UTC()

	_, err := p.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, event := range events {
			payload, err := json.Marshal(BreakoutMessage{
				BrandID:       brandID,
				RunID:         runID,
				DetectedAt:    detectedAt,
				BreakoutEvent: event,
			})
			if err != nil {
				return fmt.Errorf("erro ao serializar breakout do anúncio %s: %w", event.AdID, err)
			}

			pipe.Publish(ctx, p.channel, payload)
			pipe.LPush(ctx, p.listKey, payload)
		}
		pipe.LTrim(ctx, p.listKey, 0, p.maxHistory-1)
		return nil
	})
	if err != nil {
		return fmt.Errorf("erro ao publicar breakouts da marca %s: %w", brandID, err)
	}

	return nil
}

// Recent retorna até n eventos, do mais novo para o mais antigo
func (p *BreakoutPublisher) Recent(ctx context.Context, n int64) ([]BreakoutMessage, error) {
	raw, err := p.client.LRange(ctx, p.listKey, 0, n-1).Result()
	if err != nil {
		return nil, fmt.Errorf("erro ao ler breakouts recentes: %w", err)
	}

	messages := make([]BreakoutMessage, 0, len(raw))
	for _, item := range raw {
		var msg BreakoutMessage
		if err := json.UnmarshalFromString(item, &msg); err != nil {
			continue
		}
		messages = append(messages, msg)
	}
	return messages, nil
}
