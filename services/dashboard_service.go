package services

import (
	"context"
	"fmt"
	"time"

	"DocTrackerGo/models"
)

const trendDays = 7

// DashboardSource supplies entries for the dashboard: the caller's own, or
// everybody's when the caller is an admin.
type DashboardSource interface {
	EntryFetcher
	FetchAllEntries(ctx context.Context, start, end time.Time) ([]models.Entry, error)
}

type TodaySummary struct {
	Date           string     `json:"date"`
	TotalDocuments int64      `json:"totalDocuments"`
	TotalHours     float64    `json:"totalHours"`
	Efficiency     float64    `json:"efficiency"`
	ByPlatform     *Breakdown `json:"byPlatform"`
	ByDocType      *Breakdown `json:"byDocType"`
}

// ProcessorSeries is one processor's document counts, aligned with WeeklyTrend.Days.
type ProcessorSeries struct {
	Name   string  `json:"name"`
	Counts []int64 `json:"counts"`
}

type WeeklyTrend struct {
	Days   []string          `json:"days"`
	Series []ProcessorSeries `json:"series"`
}

type Dashboard struct {
	Today       TodaySummary `json:"today"`
	WeeklyTrend WeeklyTrend  `json:"weeklyTrend"`
}

type DashboardService struct {
	entries DashboardSource
}

func NewDashboardService(entries DashboardSource) *DashboardService {
	return &DashboardService{entries: entries}
}

// Build assembles today's summary and the last seven days per processor.
func (s *DashboardService) Build(ctx context.Context, actor *models.User, now time.Time) (*Dashboard, error) {
	today := DayWindow(now)
	week := Window{Start: today.Start.AddDate(0, 0, -(trendDays - 1)), End: today.End}

	var (
		entries []models.Entry
		err     error
	)
	if actor.IsAdmin {
		entries, err = s.entries.FetchAllEntries(ctx, week.Start, week.End)
	} else {
		entries, err = s.entries.FetchEntries(ctx, actor.ID, week.Start, week.End)
	}
	if err != nil {
		return nil, &CalculationError{Err: fmt.Errorf("fetch dashboard entries: %w", err)}
	}

	fold := FoldEntries(entries, today)
	return &Dashboard{
		Today: TodaySummary{
			Date:           today.Start.Format(dayKeyLayout),
			TotalDocuments: fold.TotalDocuments,
			TotalHours:     Hours(fold.TotalTime, 1),
			Efficiency:     Efficiency(fold.TotalDocuments, fold.TotalTime),
			ByPlatform:     fold.ByPlatform,
			ByDocType:      fold.ByDocType,
		},
		WeeklyTrend: weeklyTrend(entries, week),
	}, nil
}

func weeklyTrend(entries []models.Entry, week Window) WeeklyTrend {
	trend := WeeklyTrend{Days: make([]string, trendDays), Series: []ProcessorSeries{}}
	dayIndex := map[string]int{}
	for i := 0; i < trendDays; i++ {
		key := week.Start.AddDate(0, 0, i).Format(dayKeyLayout)
		trend.Days[i] = key
		dayIndex[key] = i
	}

	seriesIndex := map[string]int{}
	for _, entry := range entries {
		day, ok := dayIndex[entry.Date.UTC().Format(dayKeyLayout)]
		if !ok {
			continue
		}
		name := entry.DisplayName
		if name == "" {
			name = "Unknown"
		}
		idx, ok := seriesIndex[name]
		if !ok {
			idx = len(trend.Series)
			seriesIndex[name] = idx
			trend.Series = append(trend.Series, ProcessorSeries{Name: name, Counts: make([]int64, trendDays)})
		}
		for _, line := range entry.ProductiveLines {
			trend.Series[idx].Counts[day] += line.Count.Int()
		}
	}
	return trend
}
