package services

import (
	"context"
	"errors"
	"testing"

	"DocTrackerGo/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsEmptyWindow(t *testing.T) {
	svc := NewProductivityService(&fakeFetcher{})

	stats, err := svc.Stats(context.Background(), "u1", Range1w, testNow)
	require.NoError(t, err)
	assert.Zero(t, stats.Summary.TotalDocuments)
	assert.Zero(t, stats.Summary.AvgDocumentsPerDay)
	assert.Zero(t, stats.Summary.AvgTimePerDocument)
	assert.Empty(t, stats.Timeline)
	assert.NotNil(t, stats.Timeline)
	assert.Zero(t, stats.Breakdown.ByPlatform.Len())
}

func TestStatsSingleEntry(t *testing.T) {
	fetcher := &fakeFetcher{entries: []models.Entry{
		entryOn("2024-03-15", line("X", "Y", "", 10, 60)),
	}}
	svc := NewProductivityService(fetcher)

	stats, err := svc.Stats(context.Background(), "u1", Range24h, testNow)
	require.NoError(t, err)
	assert.Equal(t, int64(10), stats.Summary.TotalDocuments)
	assert.Equal(t, int64(60), stats.Summary.TotalTime)
	assert.Equal(t, 1.0, stats.Summary.TotalTimeHours)
	assert.Equal(t, int64(10), stats.Breakdown.ByPlatform.Get("X"))
	assert.Equal(t, int64(10), stats.Breakdown.ByDocType.Get("Y"))
	assert.Zero(t, stats.Breakdown.ByQueue.Len())
	assert.Equal(t, 1, stats.Summary.DaysActive)

	assert.Equal(t, testNow.AddDate(0, 0, -1), fetcher.start)
	assert.Equal(t, testNow, fetcher.end)
}

func TestFoldSumsSameCategory(t *testing.T) {
	entries := []models.Entry{
		entryOn("2024-03-14", line("A", "", "", 3, 10)),
		entryOn("2024-03-14", line("A", "", "", 4, 10)),
	}
	w, _ := ResolveWindow(Range1w, testNow)

	fold := FoldEntries(entries, w)
	assert.Equal(t, int64(7), fold.ByPlatform.Get("A"))
	require.Len(t, fold.Timeline, 1)
	assert.Equal(t, DayTotal{Date: "2024-03-14", Documents: 7, Time: 20}, fold.Timeline[0])
}

func TestStatsInvalidRange(t *testing.T) {
	fetcher := &fakeFetcher{}
	stats, err := NewProductivityService(fetcher).Stats(context.Background(), "u1", "2h", testNow)

	var rangeErr *InvalidRangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Nil(t, stats)
	assert.Zero(t, fetcher.calls)
}

func TestFoldMissingCount(t *testing.T) {
	entries := []models.Entry{
		entryOn("2024-03-15", models.ProductiveLine{Platform: "X", TimeInMins: models.Q(30)}),
	}
	w, _ := ResolveWindow(Range1w, testNow)

	fold := FoldEntries(entries, w)
	assert.Zero(t, fold.TotalDocuments)
	assert.Equal(t, int64(30), fold.TotalTime)
	assert.Equal(t, int64(0), fold.ByPlatform.Get("X"))
	assert.Equal(t, []string{"X"}, fold.ByPlatform.Keys())
}

func TestFoldMalformedQuantities(t *testing.T) {
	entries := []models.Entry{
		entryOn("2024-03-15",
			line("X", "", "", -5, -10),
			line("X", "", "", 2.9, 15.5),
		),
	}
	w, _ := ResolveWindow(Range1w, testNow)

	fold := FoldEntries(entries, w)
	assert.Equal(t, int64(2), fold.TotalDocuments)
	assert.Equal(t, int64(15), fold.TotalTime)
}

func TestFoldOutOfRangeQuantities(t *testing.T) {
	entries := []models.Entry{
		entryOn("2024-03-15",
			line("X", "D", "Q", 1e20, 1e20),
			line("X", "D", "Q", 3, 30),
		),
	}
	w, _ := ResolveWindow(Range1w, testNow)

	fold := FoldEntries(entries, w)
	assert.Equal(t, int64(3), fold.TotalDocuments)
	assert.Equal(t, int64(30), fold.TotalTime)
	assert.Equal(t, int64(3), fold.ByPlatform.Get("X"))
	assert.Equal(t, int64(3), fold.Timeline[0].Documents)

	s := DeriveSummary(fold.TotalDocuments, fold.TotalTime, len(fold.Timeline), w.SpanDays())
	assert.Equal(t, 10.0, s.AvgTimePerDocument)
}

func TestFoldSkipsEntriesOutsideWindow(t *testing.T) {
	entries := []models.Entry{
		entryOn("2024-03-01", line("old", "", "", 100, 100)),
		entryOn("2024-03-10", line("new", "", "", 1, 1)),
		entryOn("2024-03-20", line("future", "", "", 100, 100)),
	}
	w, _ := ResolveWindow(Range1w, testNow)

	fold := FoldEntries(entries, w)
	assert.Equal(t, int64(1), fold.TotalDocuments)
	assert.Equal(t, []string{"new"}, fold.ByPlatform.Keys())
}

func TestFoldIgnoresNonProductiveLines(t *testing.T) {
	e := entryOn("2024-03-15", line("X", "", "", 1, 5))
	e.NonProductiveLines = []models.NonProductiveLine{{ActivityType: "Meeting", Duration: models.Q(120)}}
	w, _ := ResolveWindow(Range1w, testNow)

	fold := FoldEntries([]models.Entry{e}, w)
	assert.Equal(t, int64(5), fold.TotalTime)
}

func TestTimelineFollowsFirstEncounter(t *testing.T) {
	entries := []models.Entry{
		entryOn("2024-03-10", line("X", "", "", 1, 1)),
		entryOn("2024-03-12", line("X", "", "", 2, 2)),
		entryOn("2024-03-10", line("X", "", "", 3, 3)),
	}
	w, _ := ResolveWindow(Range1w, testNow)

	fold := FoldEntries(entries, w)
	require.Len(t, fold.Timeline, 2)
	assert.Equal(t, "2024-03-10", fold.Timeline[0].Date)
	assert.Equal(t, int64(4), fold.Timeline[0].Documents)
	assert.Equal(t, "2024-03-12", fold.Timeline[1].Date)
}

func TestStatsIsIdempotent(t *testing.T) {
	svc := NewProductivityService(&fakeFetcher{entries: []models.Entry{
		entryOn("2024-03-10", line("B", "d1", "q1", 2, 30), line("A", "d2", "q1", 5, 45)),
		entryOn("2024-03-14", line("A", "d1", "q2", 1, 10)),
	}})

	first, err := svc.Stats(context.Background(), "u1", Range1m, testNow)
	require.NoError(t, err)
	second, err := svc.Stats(context.Background(), "u1", Range1m, testNow)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestStatsFetchFailure(t *testing.T) {
	cause := errors.New("connection reset")
	svc := NewProductivityService(&fakeFetcher{err: cause})

	_, err := svc.Stats(context.Background(), "u1", Range1w, testNow)
	var calcErr *CalculationError
	require.ErrorAs(t, err, &calcErr)
	assert.ErrorIs(t, err, cause)
}
