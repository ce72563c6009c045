package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-performance-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-performance-api/internal/domain"
)

const (
	adDailyInsightsTable = "ad_daily_insights"
)

type AdInsightRepository interface {
	UpsertDailyInsights(ctx context.Context, snapshots []*domain.InsightSnapshot) (*UpsertResult, error)
	GetByDateRange(ctx context.Context, brandID, fbAdID string, startDate, endDate time.Time) ([]*domain.InsightSnapshot, error)
	DeleteOlderThan(ctx context.Context, days int) (int64, error)
}

type adInsightRepository struct {
	conn *postgres.Connection
}

func NewAdInsightRepository(conn *postgres.Connection) AdInsightRepository {
	return &adInsightRepository{
		conn: conn,
	}
}

// UpsertDailyInsights grava um dia de histórico por anúncio, com a mesma disciplina de savepoint do upsert de anúncios
func (r *adInsightRepository) UpsertDailyInsights(ctx context.Context, snapshots []*domain.InsightSnapshot) (*UpsertResult, error) {
	result := &UpsertResult{}
	if len(snapshots) == 0 {
		return result, nil
	}

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, s := range snapshots {
			err := postgres.Savepoint(ctx, tx, "insight_upsert", func() error {
				return r.upsertSnapshot(ctx, tx, s)
			})
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"brand_id": s.BrandID,
					"fb_ad_id": s.FbAdID,
					"date":     s.Date.Format(time.DateOnly),
					"error":    err.Error(),
				}).Warn("daily insights: failed to upsert snapshot")

				result.Failed++
				result.Errors = append(result.Errors, domain.NewError(domain.KindData, "upsert_daily_insight", 0, err))
				continue
			}
			result.Upserted++
		}
		return nil
	})
	if err != nil {
		return nil, wrapDBError(err)
	}

	return result, nil
}

func (r *adInsightRepository) upsertSnapshot(ctx context.Context, q postgres.Queryer, s *domain.InsightSnapshot) error {
	query := squirrel.StatementBuilder.
		Insert(adDailyInsightsTable).
		Columns("brand_id", "fb_ad_id", "date", "spend", "impressions", "clicks", "ctr", "cpm", "cpc",
			"purchases", "cpa", "revenue", "roas").
		Values(
			s.BrandID,
			s.FbAdID,
			s.Date.Format(time.DateOnly),
			s.Spend, s.Impressions, s.Clicks, s.CTR, s.CPM, s.CPC,
			s.Purchases, s.CPA, s.Revenue, s.ROAS,
		).
		Suffix(`
			ON CONFLICT (brand_id, fb_ad_id, date) DO UPDATE SET
				spend = EXCLUDED.spend,
				impressions = EXCLUDED.impressions,
				clicks = EXCLUDED.clicks,
				ctr = EXCLUDED.ctr,
				cpm = EXCLUDED.cpm,
				cpc = EXCLUDED.cpc,
				purchases = EXCLUDED.purchases,
				cpa = EXCLUDED.cpa,
				revenue = EXCLUDED.revenue,
				roas = EXCLUDED.roas,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := q.ExecContext(ctx, sqlQuery, args...); err != nil {
		return wrapDBError(err)
	}

	return nil
}

func (r *adInsightRepository) GetByDateRange(ctx context.Context, brandID, fbAdID string, startDate, endDate time.Time) ([]*domain.InsightSnapshot, error) {
	query, args, err := squirrel.
		Select("brand_id, fb_ad_id, date, spend, impressions, clicks, ctr, cpm, cpc, purchases, cpa, revenue, roas").
		From(adDailyInsightsTable).
		Where(squirrel.Eq{"brand_id": brandID, "fb_ad_id": fbAdID}).
		Where(squirrel.GtOrEq{"date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"date": endDate.Format(time.DateOnly)}).
		OrderBy("date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapDBError(err)
	}
	defer rows.Close()

	snapshots := make([]*domain.InsightSnapshot, 0)
	for rows.Next() {
		s := &domain.InsightSnapshot{}
		err := rows.Scan(
			&s.BrandID, &s.FbAdID, &s.Date,
			&s.Spend, &s.Impressions, &s.Clicks, &s.CTR, &s.CPM, &s.CPC,
			&s.Purchases, &s.CPA, &s.Revenue, &s.ROAS,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear insight diário: %w", err)
		}
		snapshots = append(snapshots, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}

func (r *adInsightRepository) DeleteOlderThan(ctx context.Context, days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format(time.DateOnly)

	query, args, err := squirrel.
		Delete(adDailyInsightsTable).
		Where(squirrel.Lt{"date": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, wrapDBError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}
