package store_test

import (
	"context"
	"errors"
	"testing"

	"gamestore/backend/internal/store"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockStore(t *testing.T) (*store.GormStore, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return store.NewGormStore(db), mock
}

func TestInsertGame_ConnectionLossIsPersistenceError(t *testing.T) {
	s, mock := newMockStore(t)
	lost := errors.New("connection reset by peer")

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "games"`).WillReturnError(lost)
	mock.ExpectRollback()

	gw, err := s.Begin(context.Background())
	require.NoError(t, err)
	g := newGame("Foo", 1, "9.99")
	err = gw.InsertGame(&g)

	require.Error(t, err)
	assert.ErrorIs(t, err, lost)
	assert.False(t, store.IsConstraintViolation(err))
	require.NoError(t, gw.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommit_RejectedIsPersistenceError(t *testing.T) {
	s, mock := newMockStore(t)
	rejected := errors.New("could not serialize access")

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "games"`).WithArgs(7).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit().WillReturnError(rejected)

	gw, err := s.Begin(context.Background())
	require.NoError(t, err)
	n, err := gw.DeleteGamesMatching(7)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	err = gw.Commit()
	var perr *store.PersistenceError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "commit", perr.Op)
	assert.ErrorIs(t, err, rejected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteGamesMatching_IssuesDirectDelete(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "games" WHERE id = \$1`).WithArgs(3).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	gw, err := s.Begin(context.Background())
	require.NoError(t, err)
	n, err := gw.DeleteGamesMatching(3)
	require.NoError(t, err)
	assert.Zero(t, n)
	require.NoError(t, gw.Commit())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBegin_FailureIsPersistenceError(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectBegin().WillReturnError(errors.New("too many connections"))

	_, err := s.Begin(context.Background())

	var perr *store.PersistenceError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "begin unit of work", perr.Op)
}

func TestIsConstraintViolation(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{errors.New("timeout"), false},
		{gorm.ErrForeignKeyViolated, true},
		{&store.PersistenceError{Op: "insert game", Err: gorm.ErrDuplicatedKey}, true},
		{errors.New(`ERROR: insert or update on table "games" violates foreign key constraint "fk_games_genre"`), true},
		{errors.New("FOREIGN KEY constraint failed"), true},
		{errors.New("CHECK constraint failed: price >= 0"), true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, store.IsConstraintViolation(tt.err), "%v", tt.err)
	}
}
