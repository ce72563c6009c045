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

const brandsTable = "brands"

type BrandRepository interface {
	GetByID(ctx context.Context, brandID string) (*domain.Brand, error)
	UpdateGoals(ctx context.Context, brandID string, goal domain.ClassificationGoal) error
}

type brandRepository struct {
	conn *postgres.Connection
}

func NewBrandRepository(conn *postgres.Connection) BrandRepository {
	return &brandRepository{
		conn: conn,
	}
}

func (r *brandRepository) GetByID(ctx context.Context, brandID string) (*domain.Brand, error) {
	query, args, err := squirrel.
		Select("id", "name", "target_roas", "target_cpa", "created_at", "updated_at").
		From(brandsTable).
		Where(squirrel.Eq{"id": brandID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	brand := &domain.Brand{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&brand.ID, &brand.Name, &brand.TargetROAS, &brand.TargetCPA, &brand.CreatedAt, &brand.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapDBError(err)
	}

	return brand, nil
}

func (r *brandRepository) UpdateGoals(ctx context.Context, brandID string, goal domain.ClassificationGoal) error {
	query, args, err := squirrel.
		Update(brandsTable).
		Set("target_roas", goal.TargetROAS).
		Set("target_cpa", goal.TargetCPA).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": brandID}).
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
