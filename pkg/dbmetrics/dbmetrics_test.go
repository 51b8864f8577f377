package dbmetrics

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelOccupancy/pkg/metrics"
)

func TestDB_RecordsQueries(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	m := metrics.NewWithRegistry("test", prometheus.NewRegistry())
	wrapped := Wrap(db, m)

	mock.ExpectExec("DELETE FROM bookings").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT id FROM rooms").WillReturnError(errors.New("boom"))

	_, err = wrapped.ExecContext(context.Background(), "DELETE FROM bookings WHERE id = $1", 1)
	require.NoError(t, err)

	_, err = wrapped.QueryContext(context.Background(), "SELECT id FROM rooms")
	require.Error(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.DBQueriesTotal.WithLabelValues("delete", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DBQueriesTotal.WithLabelValues("select", "error")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDB_WithoutMetrics(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE rooms").WillReturnResult(sqlmock.NewResult(0, 1))

	wrapped := Wrap(db, nil)
	_, err = wrapped.ExecContext(context.Background(), "UPDATE rooms SET name = $1", "A")
	assert.NoError(t, err)
}

func TestQueryOperation(t *testing.T) {
	assert.Equal(t, "select", queryOperation("SELECT * FROM rooms"))
	assert.Equal(t, "insert", queryOperation("  insert into rooms"))
	assert.Equal(t, "unknown", queryOperation(""))
}
