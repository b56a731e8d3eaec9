package services

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"

	"DocTrackerGo/models"
)

var exportHeader = []string{"Username", "Date", "Day Type", "Platform", "Queue", "Document Type", "Count", "Time (mins)"}

// ExportSource lists entries newest first.
type ExportSource interface {
	List(ctx context.Context, userID string, q models.ListEntriesQuery) ([]models.Entry, error)
	ListAll(ctx context.Context) ([]models.Entry, error)
}

// ExportRow is one productive line flattened with its entry's metadata.
type ExportRow struct {
	Username   string
	Date       string
	DayType    string
	Platform   string
	Queue      string
	DocType    string
	Count      *models.Quantity
	TimeInMins *models.Quantity
}

type ExportService struct {
	entries ExportSource
}

func NewExportService(entries ExportSource) *ExportService {
	return &ExportService{entries: entries}
}

// Rows flattens the actor's entries, or all entries for an admin.
func (s *ExportService) Rows(ctx context.Context, actor *models.User) ([]ExportRow, error) {
	var (
		entries []models.Entry
		err     error
	)
	if actor.IsAdmin {
		entries, err = s.entries.ListAll(ctx)
	} else {
		entries, err = s.entries.List(ctx, actor.ID, models.ListEntriesQuery{})
	}
	if err != nil {
		return nil, err
	}

	rows := []ExportRow{}
	for _, entry := range entries {
		date := entry.Date.UTC().Format(dayKeyLayout)
		for _, line := range entry.ProductiveLines {
			rows = append(rows, ExportRow{
				Username:   entry.DisplayName,
				Date:       date,
				DayType:    string(entry.DayType),
				Platform:   line.Platform,
				Queue:      line.Queue,
				DocType:    line.DocType,
				Count:      line.Count,
				TimeInMins: line.TimeInMins,
			})
		}
	}
	return rows, nil
}

func WriteCSV(w io.Writer, rows []ExportRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{r.Username, r.Date, r.DayType, r.Platform, r.Queue, r.DocType,
			formatQuantity(r.Count), formatQuantity(r.TimeInMins)}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatQuantity(q *models.Quantity) string {
	if q == nil {
		return ""
	}
	return strconv.FormatFloat(float64(*q), 'f', -1, 64)
}
