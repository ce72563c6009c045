package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
)

// UpsertResult conta o resultado de um lote gravado registro a registro
type UpsertResult struct {
	Upserted int
	Failed   int
	Errors   []error
}

func wrapDBError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
	}
	return fmt.Errorf("erro ao executar a query: %w", err)
}

// IsDBError indica que a falha veio do Postgres
func IsDBError(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr)
}

func nullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func nullTime(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time
	return &t
}
