package history

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TestGormRepository_Record_SQLMock exercises the generated SQL against a
// faked database/sql connection, without a real postgres server.
func TestGormRepository_Record_SQLMock(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	repo := NewGormRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "benchmark_runs"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(1, time.Now()))
	mock.ExpectCommit()

	run := &BenchmarkRun{
		Graph:    "rg1000.gr",
		Vertices: 1000,
		Arcs:     4000,
		Method:   "ibfs",
		Reverse:  true,
	}

	err = repo.Record(context.Background(), run)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestGormRepository_ListByGraph_SQLMock exercises the read path similarly.
func TestGormRepository_ListByGraph_SQLMock(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	repo := NewGormRepository(gdb)

	rows := sqlmock.NewRows([]string{
		"id", "graph", "vertices", "arcs", "method", "reverse", "simplify",
		"total_time_ms", "avg_time_ms", "runs", "icount", "ccount", "scount", "created_at",
	}).AddRow(1, "rg1000.gr", 1000, 4000, "ibfs", true, false, 10.0, 1.0, 10, 300, 600, 0, time.Now())

	mock.ExpectQuery(`SELECT \* FROM "benchmark_runs"`).WillReturnRows(rows)

	runs, err := repo.ListByGraph(context.Background(), "rg1000.gr", 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "rg1000.gr", runs[0].Graph)
	assert.NoError(t, mock.ExpectationsWereMet())
}
