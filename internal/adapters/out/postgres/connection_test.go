package postgres

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectionConfig_DSN(t *testing.T) {
	cfg := ConnectionConfig{
		Host:     "db",
		Port:     "5432",
		User:     "catering",
		Password: "secret",
		Name:     "orders",
	}

	assert.Equal(t, "host=db port=5432 user=catering password=secret dbname=orders sslmode=disable", cfg.DSN())

	cfg.SSLMode = "require"
	assert.Contains(t, cfg.DSN(), "sslmode=require")
}

func TestOpenWithConn(t *testing.T) {
	t.Run("reachable database", func(t *testing.T) {
		sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer sqlDB.Close()

		mock.ExpectPing()
		mock.ExpectPing()

		db, err := OpenWithConn(sqlDB)
		require.NoError(t, err)
		assert.NotNil(t, db)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("first ping fails", func(t *testing.T) {
		sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)

		mock.ExpectPing().WillReturnError(errors.New("connection refused"))
		mock.ExpectClose()

		_, err = OpenWithConn(sqlDB)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection refused")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database goes away after open", func(t *testing.T) {
		sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)

		mock.ExpectPing()
		mock.ExpectPing().WillReturnError(errors.New("connection reset"))
		mock.ExpectClose()

		_, err = OpenWithConn(sqlDB)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ping postgres")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
