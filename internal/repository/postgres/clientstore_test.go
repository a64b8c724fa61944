package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/avc/orderchat/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestClientStore_Get(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store := NewClientStore(mock, "default")
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`SELECT value FROM client_store`).
			WithArgs("default", domain.KeySessionID).
			WillReturnRows(pgxmock.NewRows([]string{"value"}).AddRow("abc"))

		value, err := store.Get(ctx, domain.KeySessionID)
		require.NoError(t, err)
		assert.Equal(t, "abc", value)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Key not found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT value FROM client_store`).
			WithArgs("default", domain.KeyRegistered).
			WillReturnError(pgx.ErrNoRows)

		_, err := store.Get(ctx, domain.KeyRegistered)
		assert.ErrorIs(t, err, domain.ErrKeyNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(`SELECT value FROM client_store`).
			WithArgs("default", domain.KeyRegistered).
			WillReturnError(errors.New("connection reset"))

		_, err := store.Get(ctx, domain.KeyRegistered)
		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrKeyNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestClientStore_Set(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store := NewClientStore(mock, "kiosk")
	ctx := context.Background()

	mock.ExpectExec(`INSERT INTO client_store`).
		WithArgs("kiosk", domain.KeySessionID, "abc").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, store.Set(ctx, domain.KeySessionID, "abc"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientStore_SetMany(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store := NewClientStore(mock, "default")
	ctx := context.Background()
	values := map[string]string{
		domain.KeyRegistered:    domain.RegisteredValue,
		domain.KeyCustomerName:  "Sam",
		domain.KeyCustomerPhone: "5551234",
	}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO client_store`).
			WithArgs("default", domain.KeyCustomerName, "Sam").
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec(`INSERT INTO client_store`).
			WithArgs("default", domain.KeyCustomerPhone, "5551234").
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec(`INSERT INTO client_store`).
			WithArgs("default", domain.KeyRegistered, domain.RegisteredValue).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()

		require.NoError(t, store.SetMany(ctx, values))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Write failure rolls back", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO client_store`).
			WithArgs("default", domain.KeyCustomerName, "Sam").
			WillReturnError(errors.New("disk full"))
		mock.ExpectRollback()

		assert.Error(t, store.SetMany(ctx, values))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Begin failure", func(t *testing.T) {
		mock.ExpectBegin().WillReturnError(errors.New("begin error"))

		assert.Error(t, store.SetMany(ctx, values))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestClientStore_Ping(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store := NewClientStore(mock, "default")

	mock.ExpectPing()
	assert.NoError(t, store.Ping(context.Background()))

	mock.ExpectPing().WillReturnError(errors.New("down"))
	assert.Error(t, store.Ping(context.Background()))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrations(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS client_store`).
		WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))

	require.NoError(t, RunMigrations(context.Background(), mock, zap.NewNop()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
