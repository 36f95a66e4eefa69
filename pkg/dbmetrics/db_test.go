package dbmetrics

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelBookingService/pkg/metrics"
)

func TestOperation(t *testing.T) {
	assert.Equal(t, "select", operation("SELECT id FROM rooms"))
	assert.Equal(t, "update", operation("  UPDATE bookings SET status = $1"))
	assert.Equal(t, "other", operation("BEGIN"))
}

func TestGetExecutor_PrefersTransaction(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	mock.ExpectBegin()
	tx, err := sqlDB.Begin()
	require.NoError(t, err)

	ctx := WithTx(context.Background(), tx)
	assert.True(t, IsInTransaction(ctx))
	assert.Equal(t, tx, GetExecutor(ctx, sqlDB))
	assert.Equal(t, sqlDB, GetExecutor(context.Background(), sqlDB))

	mock.ExpectRollback()
	require.NoError(t, tx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDB_ObservesFailedQueries(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	m := metrics.NewWithRegisterer(prometheus.NewRegistry(), "test")
	stop := make(chan struct{})
	defer close(stop)
	db := WrapWithDefault(sqlDB, m, "hotel", stop)

	mock.ExpectExec("DELETE FROM bookings").WillReturnError(assert.AnError)

	_, err = db.ExecContext(context.Background(), "DELETE FROM bookings WHERE id = $1", 1)
	assert.Error(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DBQueryErrors.WithLabelValues("delete")))
	assert.NoError(t, mock.ExpectationsWereMet())
}
