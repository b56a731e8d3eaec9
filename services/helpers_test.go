package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"DocTrackerGo/config"
	"DocTrackerGo/models"
	"DocTrackerGo/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testNow = time.Date(2024, 3, 15, 15, 0, 0, 0, time.UTC)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func line(platform, docType, queue string, count, mins float64) models.ProductiveLine {
	return models.ProductiveLine{
		Platform:   platform,
		DocType:    docType,
		Queue:      queue,
		Count:      models.Q(count),
		TimeInMins: models.Q(mins),
	}
}

func entryOn(date string, lines ...models.ProductiveLine) models.Entry {
	return models.Entry{
		ID:              uuid.NewString(),
		OwnerID:         "u1",
		DisplayName:     "alice",
		Date:            day(date),
		DayType:         models.FullDay,
		ProductiveLines: lines,
	}
}

type fakeFetcher struct {
	entries []models.Entry
	err     error
	calls   int
	start   time.Time
	end     time.Time
}

func (f *fakeFetcher) FetchEntries(_ context.Context, _ string, start, end time.Time) ([]models.Entry, error) {
	f.calls++
	f.start, f.end = start, end
	if f.err != nil {
		return nil, f.err
	}
	return f.entries, nil
}

func (f *fakeFetcher) FetchAllEntries(ctx context.Context, start, end time.Time) ([]models.Entry, error) {
	return f.FetchEntries(ctx, "", start, end)
}

// newTestDB opens a private in-memory sqlite database with the schema applied.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := config.OpenGorm(sqlite.Open(dsn), logger.Silent)
	require.NoError(t, err)
	require.NoError(t, config.MigrateDB(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func newTestServices(t *testing.T) (*UserService, *EntryService) {
	db := newTestDB(t)
	return NewUserService(store.NewGormStore[models.User](db)),
		NewEntryService(store.NewGormStore[models.Entry](db))
}
