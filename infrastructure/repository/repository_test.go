package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/vfg2006/ad-performance-api/infrastructure/database/postgres"
)

func setupRepositoryTest(t *testing.T) (*postgres.Connection, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}

	cleanup := func() {
		db.Close()
	}

	return postgres.NewConnectionFromDB(db), mock, cleanup
}

func setupCapturingRepositoryTest(t *testing.T) (*postgres.Connection, sqlmock.Sqlmock, *[]string, func()) {
	t.Helper()

	captured := make([]string, 0)
	matcher := sqlmock.QueryMatcherFunc(func(expectedSQL, actualSQL string) error {
		captured = append(captured, actualSQL)
		return sqlmock.QueryMatcherRegexp.Match(expectedSQL, actualSQL)
	})

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(matcher))
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}

	return postgres.NewConnectionFromDB(db), mock, &captured, func() { db.Close() }
}
