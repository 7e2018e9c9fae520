package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockRepository(t *testing.T) (ItineraryRepository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return NewItineraryRepository(db), mock
}

func TestItineraryRepository_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid id skips the query", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		got, err := repo.GetByID(ctx, "not-a-uuid")
		assert.NoError(t, err)
		assert.Nil(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectQuery(`SELECT \* FROM "saved_itineraries" WHERE id = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "destination"}))

		got, err := repo.GetByID(ctx, uuid.NewString())
		assert.NoError(t, err)
		assert.Nil(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("found", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		id := uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "saved_itineraries" WHERE id = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "destination", "traveler_count"}).
				AddRow(id.String(), "Lisbon", 2))

		got, err := repo.GetByID(ctx, id.String())
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, id, got.ID)
		assert.Equal(t, "Lisbon", got.Destination)
		assert.Equal(t, 2, got.TravelerCount)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("driver error", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		boom := errors.New("connection reset")
		mock.ExpectQuery(`SELECT \* FROM "saved_itineraries"`).WillReturnError(boom)

		got, err := repo.GetByID(ctx, uuid.NewString())
		assert.ErrorIs(t, err, boom)
		assert.Nil(t, got)
	})
}

func TestItineraryRepository_ListPaging(t *testing.T) {
	repo, mock := newMockRepository(t)
	first, second := uuid.New(), uuid.New()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "saved_itineraries"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(25))
	mock.ExpectQuery(`SELECT \* FROM "saved_itineraries" .*ORDER BY created_at DESC LIMIT \$1 OFFSET \$2`).
		WithArgs(int64(10), int64(20)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "destination", "created_at"}).
			AddRow(first.String(), "Rome", int64(200)).
			AddRow(second.String(), "Oslo", int64(100)))

	items, total, err := repo.List(context.Background(), 3, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(25), total)
	require.Len(t, items, 2)
	assert.Equal(t, first, items[0].ID)
	assert.Equal(t, "Oslo", items[1].Destination)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItineraryRepository_ListCountError(t *testing.T) {
	repo, mock := newMockRepository(t)
	boom := errors.New("timeout")
	mock.ExpectQuery(`SELECT count\(\*\) FROM "saved_itineraries"`).WillReturnError(boom)

	items, total, err := repo.List(context.Background(), 1, 10)
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, items)
	assert.Zero(t, total)
}
