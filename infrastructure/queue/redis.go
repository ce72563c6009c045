package queue

import (
	"context"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
	"github.com/vfg2006/ad-performance-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	BreakoutChannel   = "ads:breakouts"
	BreakoutListKey   = "ads:breakouts:recent"
	EnrichmentListKey = "ads:enrichment"

	defaultBreakoutHistory = 500
)

// NewRedisClient abre a conexão e valida com um ping
func NewRedisClient(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("erro ao conectar no redis: %w", err)
	}

	return client, nil
}
