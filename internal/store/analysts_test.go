// internal/store/analysts_test.go
package store

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Enterprise-CMCS/managed-care-review-sub006/internal/common/logger"
)

// ==========================
// Test Helper Functions
// ==========================

func createTestStore(t *testing.T) (*AnalystStore, sqlmock.Sqlmock, *miniredis.Miniredis) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	return NewAnalystStore(db, rdb, logger.NewTestLogger(t)), mock, mr
}

// ==========================
// Core Functionality Tests
// ==========================

func TestAnalystStore_EmailsForState(t *testing.T) {
	store, mock, _ := createTestStore(t)

	rows := sqlmock.NewRows([]string{"email"}).
		AddRow("analyst1@mn.gov").
		AddRow("analyst2@mn.gov")
	mock.ExpectQuery("SELECT email").
		WithArgs("MN").
		WillReturnRows(rows)

	emails, err := store.EmailsForState(context.Background(), "MN")

	require.NoError(t, err)
	assert.Equal(t, []string{"analyst1@mn.gov", "analyst2@mn.gov"}, emails)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalystStore_EmailsForState_CachesResult(t *testing.T) {
	store, mock, _ := createTestStore(t)

	rows := sqlmock.NewRows([]string{"email"}).AddRow("analyst1@mn.gov")
	mock.ExpectQuery("SELECT email").
		WithArgs("MN").
		WillReturnRows(rows)

	first, err := store.EmailsForState(context.Background(), "MN")
	require.NoError(t, err)

	// Second call must hit the cache; no second query is expected.
	second, err := store.EmailsForState(context.Background(), "MN")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalystStore_EmailsForState_NoAnalysts(t *testing.T) {
	store, mock, _ := createTestStore(t)

	mock.ExpectQuery("SELECT email").
		WithArgs("ZZ").
		WillReturnRows(sqlmock.NewRows([]string{"email"}))

	emails, err := store.EmailsForState(context.Background(), "ZZ")

	require.NoError(t, err)
	assert.Empty(t, emails)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalystStore_EmailsForState_CorruptCacheFallsBack(t *testing.T) {
	store, mock, mr := createTestStore(t)

	require.NoError(t, mr.Set("analysts:MN", "{not json"))

	rows := sqlmock.NewRows([]string{"email"}).AddRow("analyst1@mn.gov")
	mock.ExpectQuery("SELECT email").
		WithArgs("MN").
		WillReturnRows(rows)

	emails, err := store.EmailsForState(context.Background(), "MN")

	require.NoError(t, err)
	assert.Equal(t, []string{"analyst1@mn.gov"}, emails)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ==========================
// Error Handling Tests
// ==========================

func TestAnalystStore_EmailsForState_QueryError(t *testing.T) {
	store, mock, _ := createTestStore(t)

	mock.ExpectQuery("SELECT email").
		WithArgs("MN").
		WillReturnError(assert.AnError)

	_, err := store.EmailsForState(context.Background(), "MN")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "querying state analysts")
}
