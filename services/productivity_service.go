package services

import (
	"context"
	"time"

	"DocTrackerGo/config"
)

// Stats is the full productivity report for one range.
type Stats struct {
	Range     string     `json:"range"`
	StartDate time.Time  `json:"startDate"`
	EndDate   time.Time  `json:"endDate"`
	Summary   Summary    `json:"summary"`
	Breakdown Breakdowns `json:"breakdown"`
	Timeline  []DayTotal `json:"timeline"`
}

type Breakdowns struct {
	ByPlatform *Breakdown `json:"byPlatform"`
	ByDocType  *Breakdown `json:"byDocType"`
	ByQueue    *Breakdown `json:"byQueue"`
}

type TopMetrics struct {
	TopPlatforms []RankedItem `json:"topPlatforms"`
	TopDocTypes  []RankedItem `json:"topDocTypes"`
	TopQueues    []RankedItem `json:"topQueues"`
}

// ProductivityService builds reports from a user's entries. It keeps no
// state between calls; every report is computed from a fresh fetch.
type ProductivityService struct {
	entries EntryFetcher
}

func NewProductivityService(entries EntryFetcher) *ProductivityService {
	return &ProductivityService{entries: entries}
}

// Stats reports on the window rangeToken resolves to at now.
func (s *ProductivityService) Stats(ctx context.Context, userID, rangeToken string, now time.Time) (*Stats, error) {
	w, err := ResolveWindow(rangeToken, now)
	if err != nil {
		return nil, err
	}

	fold, err := Aggregate(ctx, s.entries, userID, w)
	if err != nil {
		config.Logger.Errorw("aggregate productivity failed",
			"error", err,
			"userID", userID,
			"range", rangeToken,
		)
		return nil, err
	}

	config.Logger.Debugw("productivity stats",
		"userID", userID,
		"range", rangeToken,
		"documents", fold.TotalDocuments,
		"days", len(fold.Timeline),
	)

	return &Stats{
		Range:     rangeToken,
		StartDate: w.Start,
		EndDate:   w.End,
		Summary:   DeriveSummary(fold.TotalDocuments, fold.TotalTime, len(fold.Timeline), w.SpanDays()),
		Breakdown: Breakdowns{
			ByPlatform: fold.ByPlatform,
			ByDocType:  fold.ByDocType,
			ByQueue:    fold.ByQueue,
		},
		Timeline: fold.Timeline,
	}, nil
}

// Comparison reports on every supported range. Windows overlap and each is
// fetched separately.
func (s *ProductivityService) Comparison(ctx context.Context, userID string, now time.Time) (map[string]*Stats, error) {
	comparison := make(map[string]*Stats, len(SupportedRanges))
	for _, r := range SupportedRanges {
		stats, err := s.Stats(ctx, userID, r, now)
		if err != nil {
			return nil, err
		}
		comparison[r] = stats
	}
	return comparison, nil
}

func (s *ProductivityService) TopMetrics(ctx context.Context, userID, rangeToken string, now time.Time) (*TopMetrics, error) {
	stats, err := s.Stats(ctx, userID, rangeToken, now)
	if err != nil {
		return nil, err
	}
	return &TopMetrics{
		TopPlatforms: TopN(stats.Breakdown.ByPlatform, DefaultTopN),
		TopDocTypes:  TopN(stats.Breakdown.ByDocType, DefaultTopN),
		TopQueues:    TopN(stats.Breakdown.ByQueue, DefaultTopN),
	}, nil
}
