package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationFilePath(t *testing.T) {
	path, err := migrationFilePath("create_choices.up")
	require.NoError(t, err)
	assert.Equal(t, "migrations/000002_create_choices.up.sql", path)

	_, err = migrationFilePath("create_users.up")
	assert.Error(t, err)
}

func TestMigrateAppliesUpFilesInOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS questions`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS choices`).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, Migrate(context.Background(), db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrateOne(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`DROP TABLE IF EXISTS choices`).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, MigrateOne(context.Background(), db, "create_choices.down"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
