package services

import (
	"context"
	"testing"
	"time"

	"DocTrackerGo/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createRequest(date string, rows ...models.ProductiveLine) models.CreateEntryRequest {
	if rows == nil {
		rows = []models.ProductiveLine{}
	}
	return models.CreateEntryRequest{Date: date, DayType: models.FullDay, Rows: rows}
}

func TestEntryServiceCreate(t *testing.T) {
	_, entries := newTestServices(t)
	ctx := context.Background()
	actor := &models.User{ID: "u1", Username: "alice", Email: "alice@example.com"}

	entry, err := entries.Create(ctx, actor, createRequest("2024-03-14", line("X", "Y", "Q", 4, 20)), testNow)
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "u1", entry.OwnerID)
	assert.Equal(t, "alice", entry.DisplayName)
	assert.NotNil(t, entry.NonProductiveLines)

	got, err := entries.Get(ctx, entry.ID, "u1")
	require.NoError(t, err)
	assert.True(t, got.Date.Equal(day("2024-03-14")))
	require.Len(t, got.ProductiveLines, 1)
	assert.Equal(t, int64(4), got.ProductiveLines[0].Count.Int())
}

func TestEntryServiceCreateValidation(t *testing.T) {
	_, entries := newTestServices(t)
	actor := &models.User{ID: "u1"}

	_, err := entries.Create(context.Background(), actor, createRequest("14/03/2024"), testNow)
	assert.ErrorIs(t, err, ErrValidation)

	req := createRequest("2024-03-14")
	req.DayType = "Weekend"
	_, err = entries.Create(context.Background(), actor, req, testNow)
	assert.ErrorIs(t, err, ErrValidation)

	req = createRequest("2024-03-14")
	req.Rows = nil
	_, err = entries.Create(context.Background(), actor, req, testNow)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestEntryServiceAdminAttribution(t *testing.T) {
	_, entries := newTestServices(t)
	ctx := context.Background()

	req := createRequest("2024-03-14")
	req.Username = "  bob "

	admin := &models.User{ID: "a1", Username: "admin", IsAdmin: true}
	entry, err := entries.Create(ctx, admin, req, testNow)
	require.NoError(t, err)
	assert.Equal(t, "bob", entry.DisplayName)

	regular := &models.User{ID: "u1", Username: "alice"}
	entry, err = entries.Create(ctx, regular, req, testNow)
	require.NoError(t, err)
	assert.Equal(t, "alice", entry.DisplayName)
}

func TestEntryServiceOwnership(t *testing.T) {
	_, entries := newTestServices(t)
	ctx := context.Background()
	entry, err := entries.Create(ctx, &models.User{ID: "u1"}, createRequest("2024-03-14"), testNow)
	require.NoError(t, err)

	_, err = entries.Get(ctx, entry.ID, "u2")
	assert.ErrorIs(t, err, ErrForbidden)

	dayType := models.HalfDay
	_, err = entries.Update(ctx, entry.ID, "u2", models.UpdateEntryRequest{DayType: &dayType})
	assert.ErrorIs(t, err, ErrForbidden)

	assert.ErrorIs(t, entries.Delete(ctx, entry.ID, "u2"), ErrForbidden)

	_, err = entries.Get(ctx, "missing", "u1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEntryServiceUpdate(t *testing.T) {
	_, entries := newTestServices(t)
	ctx := context.Background()
	entry, err := entries.Create(ctx, &models.User{ID: "u1"}, createRequest("2024-03-14", line("X", "", "", 1, 1)), testNow)
	require.NoError(t, err)

	_, err = entries.Update(ctx, entry.ID, "u1", models.UpdateEntryRequest{})
	assert.ErrorIs(t, err, ErrValidation)

	dayType := models.PTO
	rows := []models.ProductiveLine{line("Z", "", "", 9, 90)}
	updated, err := entries.Update(ctx, entry.ID, "u1", models.UpdateEntryRequest{DayType: &dayType, Rows: &rows})
	require.NoError(t, err)
	assert.Equal(t, models.PTO, updated.DayType)
	require.Len(t, updated.ProductiveLines, 1)
	assert.Equal(t, "Z", updated.ProductiveLines[0].Platform)
	assert.True(t, updated.Date.Equal(entry.Date))
}

func TestEntryServiceDelete(t *testing.T) {
	_, entries := newTestServices(t)
	ctx := context.Background()
	entry, err := entries.Create(ctx, &models.User{ID: "u1"}, createRequest("2024-03-14"), testNow)
	require.NoError(t, err)

	require.NoError(t, entries.Delete(ctx, entry.ID, "u1"))
	_, err = entries.Get(ctx, entry.ID, "u1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEntryServiceListAndFetch(t *testing.T) {
	_, entries := newTestServices(t)
	ctx := context.Background()
	alice := &models.User{ID: "u1"}
	bob := &models.User{ID: "u2"}

	for _, d := range []string{"2024-03-10", "2024-03-01", "2024-03-14", "2024-03-12"} {
		_, err := entries.Create(ctx, alice, createRequest(d), testNow)
		require.NoError(t, err)
	}
	_, err := entries.Create(ctx, bob, createRequest("2024-03-13"), testNow)
	require.NoError(t, err)

	list, err := entries.List(ctx, "u1", models.ListEntriesQuery{})
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-03-14", "2024-03-12", "2024-03-10", "2024-03-01"}, dayKeys(list))

	list, err = entries.List(ctx, "u1", models.ListEntriesQuery{StartDate: "2024-03-05", EndDate: "2024-03-12"})
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-03-12", "2024-03-10"}, dayKeys(list))

	list, err = entries.List(ctx, "u1", models.ListEntriesQuery{Limit: 2, Skip: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-03-12", "2024-03-10"}, dayKeys(list))

	recent, err := entries.Recent(ctx, "u1", 0)
	require.NoError(t, err)
	assert.Len(t, recent, 4)

	_, err = entries.List(ctx, "u1", models.ListEntriesQuery{StartDate: "yesterday"})
	assert.ErrorIs(t, err, ErrValidation)

	w, _ := ResolveWindow(Range1w, testNow)
	fetched, err := entries.FetchEntries(ctx, "u1", w.Start, w.End)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-03-10", "2024-03-12", "2024-03-14"}, dayKeys(fetched))

	all, err := entries.FetchAllEntries(ctx, w.Start, w.End)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-03-10", "2024-03-12", "2024-03-13", "2024-03-14"}, dayKeys(all))
}

func TestProductivityOverStoredEntries(t *testing.T) {
	_, entries := newTestServices(t)
	ctx := context.Background()
	actor := &models.User{ID: "u1"}

	_, err := entries.Create(ctx, actor, createRequest("2024-03-14", line("A", "d", "q", 3, 30)), testNow)
	require.NoError(t, err)
	_, err = entries.Create(ctx, actor, createRequest("2024-03-14", line("A", "d", "q", 4, 30)), testNow)
	require.NoError(t, err)

	stats, err := NewProductivityService(entries).Stats(ctx, "u1", Range1w, testNow)
	require.NoError(t, err)
	assert.Equal(t, int64(7), stats.Breakdown.ByPlatform.Get("A"))
	assert.Equal(t, 1.0, stats.Summary.TotalTimeHours)
	assert.Equal(t, []DayTotal{{Date: "2024-03-14", Documents: 7, Time: 60}}, stats.Timeline)
}

func dayKeys(entries []models.Entry) []string {
	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		keys = append(keys, e.Date.UTC().Format(time.DateOnly))
	}
	return keys
}
