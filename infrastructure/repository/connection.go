package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-performance-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-performance-api/internal/domain"
	"github.com/vfg2006/ad-performance-api/pkg/utils"
)

const connectionsTable = "meta_connections"

// ConnectionRepository é o adaptador do cofre de tokens: entrega {token, conta} já decifrados
type ConnectionRepository interface {
	ListActive(ctx context.Context) ([]*domain.Connection, error)
	GetByBrand(ctx context.Context, brandID string) (*domain.Connection, error)
	MarkExpired(ctx context.Context, brandID string) error
}

type connectionRepository struct {
	conn      *postgres.Connection
	secretKey string
}

func NewConnectionRepository(conn *postgres.Connection, secretKey string) ConnectionRepository {
	return &connectionRepository{
		conn:      conn,
		secretKey: secretKey,
	}
}

func (r *connectionRepository) selectBuilder() squirrel.SelectBuilder {
	return squirrel.
		Select("id", "brand_id", "ad_account_id", "encrypted_token", "token_expires_at", "status").
		From(connectionsTable).
		PlaceholderFormat(squirrel.Dollar)
}

func (r *connectionRepository) ListActive(ctx context.Context) ([]*domain.Connection, error) {
	query, args, err := r.selectBuilder().
		Where(squirrel.Eq{"status": string(domain.ConnectionActive)}).
		OrderBy("brand_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapDBError(err)
	}
	defer rows.Close()

	connections := make([]*domain.Connection, 0)
	for rows.Next() {
		c, err := r.scanConnection(rows)
		if err != nil {
			// Token ilegível: a marca fica fora do ciclo, as demais seguem
			logrus.WithError(err).Error("connections: failed to load connection")
			continue
		}
		connections = append(connections, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return connections, nil
}

// GetByBrand retorna nil quando a marca não tem conexão
func (r *connectionRepository) GetByBrand(ctx context.Context, brandID string) (*domain.Connection, error) {
	query, args, err := r.selectBuilder().
		Where(squirrel.Eq{"brand_id": brandID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	c, err := r.scanConnection(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return c, nil
}

func (r *connectionRepository) MarkExpired(ctx context.Context, brandID string) error {
	query, args, err := squirrel.
		Update(connectionsTable).
		Set("status", string(domain.ConnectionExpired)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"brand_id": brandID}).
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

func (r *connectionRepository) scanConnection(row scanner) (*domain.Connection, error) {
	c := &domain.Connection{}

	var accountID sql.NullString
	var encrypted string
	var expiresAt sql.NullTime
	var status string

	if err := row.Scan(&c.ID, &c.BrandID, &accountID, &encrypted, &expiresAt, &status); err != nil {
		return nil, err
	}

	token, err := utils.DecryptToken(r.secretKey, encrypted)
	if err != nil {
		return nil, domain.NewError(domain.KindConfig, "decrypt_token", 0, fmt.Errorf("marca %s: %w", c.BrandID, err))
	}

	c.AccessToken = token
	c.AdAccountID = nullString(accountID)
	c.TokenExpiresAt = nullTime(expiresAt)
	c.Status = domain.ConnectionStatus(status)

	return c, nil
}
