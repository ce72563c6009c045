package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ad-performance-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-performance-api/internal/domain"
)

const analysisCacheTable = "analysis_cache"

type AnalysisCacheRepository interface {
	Save(ctx context.Context, entry *domain.CachedAnalysis) error
	Get(ctx context.Context, brandID string, analysisType domain.AnalysisType) (*domain.CachedAnalysis, error)
	DeleteByBrand(ctx context.Context, brandID string) (int64, error)
}

type analysisCacheRepository struct {
	conn *postgres.Connection
}

func NewAnalysisCacheRepository(conn *postgres.Connection) AnalysisCacheRepository {
	return &analysisCacheRepository{
		conn: conn,
	}
}

func (r *analysisCacheRepository) Save(ctx context.Context, entry *domain.CachedAnalysis) error {
	payload, err := domain.EncodeAnalysisPayload(entry.Payload)
	if err != nil {
		return fmt.Errorf("erro ao serializar análise: %w", err)
	}

	query, args, err := squirrel.StatementBuilder.
		Insert(analysisCacheTable).
		Columns("brand_id", "analysis_type", "payload", "created_at", "expires_at").
		Values(entry.BrandID, string(entry.Payload.AnalysisType()), payload, entry.CreatedAt, entry.ExpiresAt).
		Suffix(`
			ON CONFLICT (brand_id, analysis_type) DO UPDATE SET
				payload = EXCLUDED.payload,
				created_at = EXCLUDED.created_at,
				expires_at = EXCLUDED.expires_at
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return wrapDBError(err)
	}

	return nil
}

// Get retorna nil quando não há entrada ou quando ela já expirou
func (r *analysisCacheRepository) Get(ctx context.Context, brandID string, analysisType domain.AnalysisType) (*domain.CachedAnalysis, error) {
	query, args, err := squirrel.
		Select("payload", "created_at", "expires_at").
		From(analysisCacheTable).
		Where(squirrel.Eq{"brand_id": brandID}).
		Where(squirrel.Eq{"analysis_type": string(analysisType)}).
		Where("expires_at > NOW()").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	entry := &domain.CachedAnalysis{BrandID: brandID}
	var payload []byte

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&payload, &entry.CreatedAt, &entry.ExpiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapDBError(err)
	}

	entry.Payload, err = domain.DecodeAnalysisPayload(analysisType, payload)
	if err != nil {
		return nil, fmt.Errorf("erro ao decodificar análise: %w", err)
	}

	return entry, nil
}

// DeleteByBrand invalida todas as análises derivadas da marca
func (r *analysisCacheRepository) DeleteByBrand(ctx context.Context, brandID string) (int64, error) {
	query, args, err := squirrel.
		Delete(analysisCacheTable).
		Where(squirrel.Eq{"brand_id": brandID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, wrapDBError(err)
	}

	return result.RowsAffected()
}
