package services

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/gopherpath/gopherpath_api/model"
	"github.com/gopherpath/gopherpath_api/shared"
)

var testDBCounter int64

// newTestStore opens a fresh in-memory database and migrates the schema.
func newTestStore(t *testing.T) *PostgresService {
	t.Helper()

	n := atomic.AddInt64(&testDBCounter, 1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	store := &PostgresService{db: db}
	require.NoError(t, store.migrate())

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return store
}

func newTestProgressService(t *testing.T) (*ProgressService, *PostgresService) {
	t.Helper()
	store := newTestStore(t)
	return &ProgressService{sqlSvc: store}, store
}

func newTestAchievementService(t *testing.T) (*AchievementService, *PostgresService) {
	t.Helper()
	store := newTestStore(t)
	require.NoError(t, store.seedAchievements())
	return &AchievementService{sqlSvc: store}, store
}

func newTestCatalogService() *CatalogService {
	return &CatalogService{
		modules:    curriculumModules(),
		challenges: challengeCatalog(),
	}
}

func createTestUser(t *testing.T, store *PostgresService, userID string) *model.User {
	t.Helper()
	user, err := store.CreateUser(&model.User{
		ID:    userID,
		Email: userID + "@example.com",
		Name:  "Test Gopher",
	})
	require.NoError(t, err)
	return user
}

func testIdentity(userID string) shared.Identity {
	return shared.Identity{
		UserID: userID,
		Email:  userID + "@example.com",
		Name:   "Test Gopher",
	}
}

func daysAgo(n int) *time.Time {
	t := time.Now().AddDate(0, 0, -n)
	return &t
}
