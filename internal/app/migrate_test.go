package app

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestParseMigrationName(t *testing.T) {
	v, name, err := parseMigrationName("0004_outbox_events.sql")
	assert.NoError(t, err)
	assert.Equal(t, int64(4), v)
	assert.Equal(t, "outbox_events", name)

	_, _, err = parseMigrationName("outbox.sql")
	assert.Error(t, err)

	_, _, err = parseMigrationName("v1_outbox.sql")
	assert.Error(t, err)
}

func TestLoadMigrations_Ordered(t *testing.T) {
	migrations, err := loadMigrations()
	assert.NoError(t, err)
	assert.Len(t, migrations, 9)
	for i := 1; i < len(migrations); i++ {
		assert.Less(t, migrations[i-1].Version, migrations[i].Version)
	}
	assert.Contains(t, migrations[3].Content, "outbox_events")
}

func TestLoadMigrations_SeedsLookupTypeCounterFromMaxCode(t *testing.T) {
	migrations, err := loadMigrations()
	assert.NoError(t, err)

	last := migrations[len(migrations)-1]
	assert.Equal(t, "seed_lookup_type_counter", last.Name)
	assert.Greater(t, last.Version, migrations[1].Version)
	assert.Contains(t, last.Content, "'lookup_type_code', COALESCE(MAX(code), 0)")
	assert.Contains(t, last.Content, "GREATEST(counters.last_value, EXCLUDED.last_value)")
}

func TestRunMigrations_SkipsApplied(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT COALESCE").WillReturnRows(sqlmock.NewRows([]string{"v"}).AddRow(7))
	mock.ExpectBegin()
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS documents").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO schema_migrations").WithArgs(int64(8)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO counters").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO schema_migrations").WithArgs(int64(9)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.NoError(t, RunMigrations(context.Background(), db, zap.NewNop()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
