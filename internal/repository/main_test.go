package repository

import (
	"context"
	"testing"

	"postboard/internal/config"
	"postboard/internal/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

// setupSQLite returns a fresh in-memory store with the schema applied.
func setupSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(&config.Config{DBDriver: config.DriverSQLite, DBDSN: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, database.ApplySchema(context.Background(), db))
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}
