package services

import (
	"context"
	"fmt"
	"time"

	"DocTrackerGo/models"
)

const dayKeyLayout = "2006-01-02"

// EntryFetcher returns a user's entries dated within [start, end], oldest first.
type EntryFetcher interface {
	FetchEntries(ctx context.Context, userID string, start, end time.Time) ([]models.Entry, error)
}

// DayTotal is one point of the timeline.
type DayTotal struct {
	Date      string `json:"date"`
	Documents int64  `json:"documents"`
	Time      int64  `json:"time"`
}

// Fold holds the raw sums of one aggregation pass.
type Fold struct {
	TotalDocuments int64
	TotalTime      int64
	ByPlatform     *Breakdown
	ByDocType      *Breakdown
	ByQueue        *Breakdown
	Timeline       []DayTotal
}

// Aggregate fetches the user's entries for w and folds them.
func Aggregate(ctx context.Context, fetcher EntryFetcher, userID string, w Window) (*Fold, error) {
	entries, err := fetcher.FetchEntries(ctx, userID, w.Start, w.End)
	if err != nil {
		return nil, &CalculationError{Err: fmt.Errorf("fetch entries for %s: %w", userID, err)}
	}
	return FoldEntries(entries, w), nil
}

// FoldEntries sums the productive lines of entries that fall inside w.
// Breakdowns are weighted by document count, not by line occurrences, and
// non-productive lines are never read.
func FoldEntries(entries []models.Entry, w Window) *Fold {
	f := &Fold{
		ByPlatform: NewBreakdown(),
		ByDocType:  NewBreakdown(),
		ByQueue:    NewBreakdown(),
		Timeline:   []DayTotal{},
	}
	days := map[string]int{}

	for _, entry := range entries {
		if !w.Contains(entry.Date) {
			continue
		}
		key := entry.Date.UTC().Format(dayKeyLayout)
		idx, ok := days[key]
		if !ok {
			idx = len(f.Timeline)
			days[key] = idx
			f.Timeline = append(f.Timeline, DayTotal{Date: key})
		}

		for _, line := range entry.ProductiveLines {
			docs := line.Count.Int()
			mins := line.TimeInMins.Int()

			f.TotalDocuments += docs
			f.TotalTime += mins
			f.Timeline[idx].Documents += docs
			f.Timeline[idx].Time += mins

			f.ByPlatform.Add(line.Platform, docs)
			f.ByDocType.Add(line.DocType, docs)
			f.ByQueue.Add(line.Queue, docs)
		}
	}
	return f
}
